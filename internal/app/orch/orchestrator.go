package orch

import (
	"context"
	"fmt"

	"github.com/dkeye/ShareBridge/internal/app"
	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/dkeye/ShareBridge/internal/domain"
	"github.com/rs/zerolog/log"
)

// Orchestrator is what the host and channel adapters talk to. It moves every
// bridge operation onto the Looper so the bridge state is only ever touched
// from one goroutine.
type Orchestrator struct {
	Bridge   *core.Bridge
	Looper   *app.Looper
	Registry *app.Registry
}

type Status struct {
	Attached bool `json:"attached"`
	Pending  bool `json:"pending"`
	Sessions int  `json:"sessions"`
}

// Deliver hands a host share event to the bridge. The returned error only
// reports that the loop is gone; a dropped share is never an error.
func (o *Orchestrator) Deliver(ctx context.Context, lc domain.Lifecycle, ev domain.ShareEvent) error {
	err := o.Looper.Call(ctx, func() {
		switch lc {
		case domain.LifecycleCreateOrResume:
			o.Bridge.OnCreateOrResume(ev)
		default:
			o.Bridge.OnNewExternalEvent(ev)
		}
	})
	if err != nil {
		return fmt.Errorf("deliver share: %w", err)
	}
	return nil
}

// Attach makes ch the delivery target. A previous session under the same sid
// is cancelled.
func (o *Orchestrator) Attach(ctx context.Context, sid core.SessionID, ch core.ShareChannel, cancel context.CancelFunc) error {
	_, oldCancel, replaced := o.Registry.Bind(sid, ch, cancel)
	if replaced && oldCancel != nil {
		log.Info().Str("module", "app.orch").Str("sid", string(sid)).Msg("cancelling superseded channel")
		oldCancel()
	}
	if err := o.Looper.Call(ctx, func() { o.Bridge.OnUIReady(ch) }); err != nil {
		o.Registry.Unbind(sid, ch)
		return fmt.Errorf("attach channel: %w", err)
	}
	return nil
}

func (o *Orchestrator) Detach(ctx context.Context, sid core.SessionID, ch core.ShareChannel) error {
	o.Registry.Unbind(sid, ch)
	if err := o.Looper.Call(ctx, func() { o.Bridge.OnUIDetached(ch) }); err != nil {
		return fmt.Errorf("detach channel: %w", err)
	}
	return nil
}

func (o *Orchestrator) PullInitialShared(ctx context.Context) (domain.SharedContent, bool, error) {
	var (
		v  domain.SharedContent
		ok bool
	)
	if err := o.Looper.Call(ctx, func() { v, ok = o.Bridge.PullInitialShared() }); err != nil {
		return "", false, fmt.Errorf("pull initial share: %w", err)
	}
	return v, ok, nil
}

// ReturnUndelivered hands back a pulled value whose reply never reached the
// UI runtime.
func (o *Orchestrator) ReturnUndelivered(ctx context.Context, v domain.SharedContent, cause error) error {
	if err := o.Looper.Call(ctx, func() { o.Bridge.OnPullUndelivered(v, cause) }); err != nil {
		return fmt.Errorf("return undelivered share: %w", err)
	}
	return nil
}

func (o *Orchestrator) Status(ctx context.Context) (Status, error) {
	var st Status
	err := o.Looper.Call(ctx, func() {
		st.Attached = o.Bridge.Attached()
		st.Pending = o.Bridge.Pending()
	})
	if err != nil {
		return Status{}, fmt.Errorf("status: %w", err)
	}
	st.Sessions = o.Registry.Count()
	return st, nil
}

// Shutdown cancels every connected channel session.
func (o *Orchestrator) Shutdown() {
	o.Registry.CancelAll()
	o.Looper.Stop()
}
