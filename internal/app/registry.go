package app

import (
	"context"
	"sync"

	"github.com/dkeye/ShareBridge/internal/core"
	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	Channel core.ShareChannel
	Cancel  context.CancelFunc
}

// Registry tracks UI runtime channel sessions that are currently connected.
// Only the most recent one is the bridge's delivery target; the rest are kept
// so they can be cancelled on shutdown.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[core.SessionID]*sessionEntry),
	}
}

// Bind stores the session and returns the entry it replaced, if any.
func (r *Registry) Bind(sid core.SessionID, ch core.ShareChannel, cancel context.CancelFunc) (core.ShareChannel, context.CancelFunc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.sessions[sid]
	r.sessions[sid] = &sessionEntry{Channel: ch, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Bool("replaced", ok).Msg("bound channel")
	if !ok {
		return nil, nil, false
	}
	return old.Channel, old.Cancel, true
}

// Unbind removes sid only while it still maps to ch.
func (r *Registry) Unbind(sid core.SessionID, ch core.ShareChannel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok || e.Channel != ch {
		return false
	}
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind channel")
	return true
}

func (r *Registry) CancelAll() {
	r.mu.RLock()
	cancels := make([]context.CancelFunc, 0, len(r.sessions))
	for _, e := range r.sessions {
		if e.Cancel != nil {
			cancels = append(cancels, e.Cancel)
		}
	}
	r.mu.RUnlock()
	for _, cancel := range cancels {
		cancel()
	}
	log.Info().Str("module", "app.registry").Int("count", len(cancels)).Msg("canceled all sessions")
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
