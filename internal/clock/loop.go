// Package clock drives session countdowns from a wall-clock ticker.
package clock

import (
	"context"
	"sync"
	"time"
)

// Loop calls a function at a fixed cadence on its own goroutine until it is
// stopped or its context is cancelled. The zero value is ready to use.
type Loop struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches the loop. It returns false if the loop is already running.
func (l *Loop) Start(ctx context.Context, every time.Duration, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return true
}

// Stop cancels the loop and waits for its goroutine to exit. Calling Stop
// on a loop that is not running does nothing.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop has been started and not stopped
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done != nil
}
