package core

import (
	"github.com/dkeye/ShareBridge/internal/domain"
	"github.com/rs/zerolog/log"
)

// Bridge is the single entry and exit point between the host and the UI
// runtime. Every method must run on the same goroutine (see app.Looper);
// nothing here locks.
//
// A shared value is either pushed through the attached channel right away,
// or parked in the PendingStore until the UI runtime pulls it. It is never
// delivered twice.
type Bridge struct {
	store   *PendingStore
	policy  PushPolicy
	channel ShareChannel
}

func NewBridge(store *PendingStore, policy PushPolicy) *Bridge {
	if store == nil {
		store = NewPendingStore()
	}
	if policy == nil {
		policy = FallbackPolicy{}
	}
	return &Bridge{store: store, policy: policy}
}

// OnCreateOrResume handles the event the host was started or resumed with.
func (b *Bridge) OnCreateOrResume(ev domain.ShareEvent) {
	b.OnShareReceived(ev)
}

// OnNewExternalEvent handles an event delivered to an already running host.
func (b *Bridge) OnNewExternalEvent(ev domain.ShareEvent) {
	b.OnShareReceived(ev)
}

// OnShareReceived ignores anything but a plain-text send with a payload.
func (b *Bridge) OnShareReceived(ev domain.ShareEvent) {
	content, ok := ev.Content()
	if !ok {
		log.Debug().Str("module", "core.bridge").
			Str("action", ev.Action).
			Str("mime", ev.MimeType).
			Bool("has_text", ev.Text != nil).
			Msg("ignored share event")
		return
	}

	if b.channel == nil {
		b.store.Set(content)
		log.Info().Str("module", "core.bridge").Int("len", len(content)).Msg("share stored as pending")
		return
	}

	err := b.channel.SharedURL(content)
	if err == nil {
		log.Info().Str("module", "core.bridge").Int("len", len(content)).Msg("share pushed")
		return
	}

	switch b.policy.OnPushFailed(content, err) {
	case FallbackToStore:
		log.Warn().Err(err).Str("module", "core.bridge").Msg("push failed, channel detached, share stored as pending")
		b.channel = nil
		b.store.Set(content)
	case DropShare:
		log.Warn().Err(err).Str("module", "core.bridge").Msg("push failed, share dropped")
	}
}

// OnUIReady makes ch the immediate delivery target, replacing any previous one.
// Pending content is not flushed; the UI runtime pulls it when it wants it.
func (b *Bridge) OnUIReady(ch ShareChannel) {
	if ch == nil {
		return
	}
	if b.channel != nil && b.channel != ch {
		log.Info().Str("module", "core.bridge").Msg("replacing attached channel")
	}
	b.channel = ch
	log.Info().Str("module", "core.bridge").Bool("pending", b.store.Pending()).Msg("ui channel attached")
}

// OnUIDetached clears the target if ch is still the attached channel.
// A detach of an already replaced channel is ignored.
func (b *Bridge) OnUIDetached(ch ShareChannel) {
	if ch == nil || b.channel != ch {
		return
	}
	b.channel = nil
	log.Info().Str("module", "core.bridge").Msg("ui channel detached")
}

// PullInitialShared returns and forgets whatever arrived before the UI
// runtime was ready. A second call returns absent.
func (b *Bridge) PullInitialShared() (domain.SharedContent, bool) {
	v, ok := b.store.Take()
	log.Debug().Str("module", "core.bridge").Bool("found", ok).Msg("initial share pulled")
	return v, ok
}

// OnPullUndelivered puts back a pulled value whose reply could not be sent,
// following the same PushPolicy as a failed push. A share that arrived in the
// meantime is newer and keeps the slot.
func (b *Bridge) OnPullUndelivered(v domain.SharedContent, cause error) {
	if b.policy.OnPushFailed(v, cause) != FallbackToStore {
		log.Warn().Err(cause).Str("module", "core.bridge").Msg("pull reply failed, share dropped")
		return
	}
	if b.store.Pending() {
		log.Warn().Err(cause).Str("module", "core.bridge").Msg("pull reply failed, newer share already pending")
		return
	}
	b.store.Set(v)
	log.Warn().Err(cause).Str("module", "core.bridge").Msg("pull reply failed, share stored as pending")
}

func (b *Bridge) Attached() bool { return b.channel != nil }

func (b *Bridge) Pending() bool { return b.store.Pending() }
