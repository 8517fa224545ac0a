// Package authwatch detects completion of an out-of-band authorization
// grant by polling the per-thread session state endpoint at a fixed
// interval. There is no server push; the grant happens in a separate
// browsing context and the only signal is a new state token appearing.
package authwatch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gardeo/concierge/pkg/gateway"
)

const (
	// DefaultInterval is the delay between state checks.
	DefaultInterval = 5 * time.Second

	// DefaultMaxAttempts bounds the watch to roughly one minute.
	DefaultMaxAttempts = 12
)

// StateFetcher fetches the current session state set for a thread.
// *gateway.Client satisfies it.
type StateFetcher interface {
	States(ctx context.Context, threadID string) (*gateway.StateSnapshot, error)
}

// Outcome reports how a watch ended.
type Outcome int

const (
	// OutcomeAuthorized means the expected state token appeared.
	OutcomeAuthorized Outcome = iota
	// OutcomeTimedOut means the attempt budget ran out without a match.
	OutcomeTimedOut
)

// Config configures a Watcher. Zero values fall back to the defaults.
type Config struct {
	Fetcher     StateFetcher
	ThreadID    string
	Interval    time.Duration
	MaxAttempts int
	Logf        func(format string, args ...any)
}

// Watcher is a single-slot authorization poller. Arming it while a
// previous watch is unresolved cancels and discards that watch, so at
// most one timer is ever active per widget instance.
type Watcher struct {
	fetcher     StateFetcher
	threadID    string
	interval    time.Duration
	maxAttempts int
	logf        func(format string, args ...any)

	mu      sync.Mutex
	current *watch
}

type watch struct {
	cancel context.CancelFunc
}

// New creates a Watcher for one conversation thread.
func New(cfg Config) *Watcher {
	w := &Watcher{
		fetcher:     cfg.Fetcher,
		threadID:    cfg.ThreadID,
		interval:    cfg.Interval,
		maxAttempts: cfg.MaxAttempts,
		logf:        cfg.Logf,
	}
	if w.interval <= 0 {
		w.interval = DefaultInterval
	}
	if w.maxAttempts <= 0 {
		w.maxAttempts = DefaultMaxAttempts
	}
	if w.logf == nil {
		w.logf = log.Printf
	}
	return w
}

// Arm starts watching for token. onDone is invoked exactly once, from
// the watcher's goroutine, with the outcome; it is never invoked for a
// watch displaced by a later Arm or by Stop.
func (w *Watcher) Arm(ctx context.Context, token string, onDone func(Outcome)) {
	ctx, cancel := context.WithCancel(ctx)
	cur := &watch{cancel: cancel}

	w.mu.Lock()
	if w.current != nil {
		w.current.cancel()
	}
	w.current = cur
	w.mu.Unlock()

	go func() {
		defer cancel()
		outcome, resolved := w.run(ctx, token)

		w.mu.Lock()
		if w.current == cur {
			w.current = nil
		}
		w.mu.Unlock()

		if resolved {
			onDone(outcome)
		}
	}()
}

func (w *Watcher) run(ctx context.Context, token string) (Outcome, bool) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return 0, false
		case <-ticker.C:
		}

		snap, err := w.fetcher.States(ctx, w.threadID)
		if err != nil {
			if ctx.Err() != nil {
				return 0, false
			}
			// A failed check is not fatal to the loop.
			w.logf("authwatch: state check %d/%d failed: %v", attempt, w.maxAttempts, err)
			continue
		}
		if snap.Contains(token) {
			return OutcomeAuthorized, true
		}
	}
	w.logf("authwatch: gave up waiting for %s after %d attempts", token, w.maxAttempts)
	return OutcomeTimedOut, true
}

// Stop cancels any unresolved watch. Its callback will not fire.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.current != nil {
		w.current.cancel()
		w.current = nil
	}
	w.mu.Unlock()
}

// Active reports whether a watch is currently unresolved.
func (w *Watcher) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current != nil
}
