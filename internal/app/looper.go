package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var ErrLooperStopped = errors.New("looper stopped")

// Looper runs tasks one at a time on a single goroutine, in the order they
// were posted. It plays the role of the host's main thread: anything that
// touches core.Bridge goes through it.
type Looper struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

func NewLooper(buffer int) *Looper {
	if buffer < 0 {
		buffer = 0
	}
	return &Looper{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run executes tasks until ctx is done or Stop is called.
func (l *Looper) Run(ctx context.Context) {
	log.Info().Str("module", "app.looper").Msg("looper started")
	defer log.Info().Str("module", "app.looper").Msg("looper stopped")
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.done:
			return
		case fn := <-l.tasks:
			select {
			case <-l.done:
				return
			default:
			}
			l.exec(fn)
		}
	}
}

func (l *Looper) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("module", "app.looper").Interface("panic", r).Msg("task panicked")
		}
	}()
	fn()
}

// Post queues fn without waiting for it to run.
func (l *Looper) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrLooperStopped
	default:
	}
	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrLooperStopped
	}
}

const (
	taskQueued int32 = iota
	taskRunning
	taskAbandoned
)

// Call queues fn and waits until it has run. If ctx ends or the looper stops
// before fn starts, fn is skipped and the error is returned. Once fn has
// started Call always waits for it, so a nil error means fn ran and a non-nil
// error means it never will.
func (l *Looper) Call(ctx context.Context, fn func()) error {
	select {
	case <-l.done:
		return ErrLooperStopped
	default:
	}
	var state atomic.Int32
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		if !state.CompareAndSwap(taskQueued, taskRunning) {
			return
		}
		fn()
	}
	select {
	case l.tasks <- task:
	case <-l.done:
		return ErrLooperStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	var err error
	select {
	case <-finished:
		return nil
	case <-l.done:
		err = ErrLooperStopped
	case <-ctx.Done():
		err = ctx.Err()
	}
	if state.CompareAndSwap(taskQueued, taskAbandoned) {
		return err
	}
	<-finished
	return nil
}

func (l *Looper) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// Done is closed once the looper stops accepting tasks.
func (l *Looper) Done() <-chan struct{} { return l.done }
