package conversation

import (
	"errors"
	"sync"
)

// ErrPendingTurn is returned when a new submission is attempted while a
// pending placeholder is still outstanding.
var ErrPendingTurn = errors.New("conversation: a turn is already pending")

// Log holds the ordered, append-only sequence of turns for one
// conversation. At most one pending placeholder exists at any instant;
// callers must resolve or fail it before starting another.
//
// The poller's continuation goroutine appends concurrently with the
// main loop, so the log is guarded by a mutex.
type Log struct {
	mu       sync.Mutex
	turns    []Turn
	onAppend func(Turn)
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// SetOnAppend registers a hook invoked after every append, carrying the
// scroll-to-bottom side effect (the console redraw). The hook runs with
// the log unlocked.
func (l *Log) SetOnAppend(fn func(Turn)) {
	l.mu.Lock()
	l.onAppend = fn
	l.mu.Unlock()
}

// Append adds a resolved turn to the end of the log.
func (l *Log) Append(t Turn) {
	t.Pending = false
	l.mu.Lock()
	l.turns = append(l.turns, t)
	fn := l.onAppend
	l.mu.Unlock()
	if fn != nil {
		fn(t)
	}
}

// StartPending appends a pending placeholder of the given kind. It
// fails if a placeholder is already outstanding; the input form is
// expected to stay disabled until the pending turn resolves.
func (l *Log) StartPending(kind PendingKind) (Turn, error) {
	l.mu.Lock()
	for _, t := range l.turns {
		if t.Pending {
			l.mu.Unlock()
			return Turn{}, ErrPendingTurn
		}
	}
	p := newPendingTurn(kind)
	l.turns = append(l.turns, p)
	fn := l.onAppend
	l.mu.Unlock()
	if fn != nil {
		fn(p)
	}
	return p, nil
}

// ResolvePending removes the pending placeholder and appends the final
// turn in its place at the end of the log. If no placeholder exists the
// final turn is appended anyway.
func (l *Log) ResolvePending(final Turn) {
	final.Pending = false
	l.mu.Lock()
	l.removePendingLocked()
	l.turns = append(l.turns, final)
	fn := l.onAppend
	l.mu.Unlock()
	if fn != nil {
		fn(final)
	}
}

// FailPending removes the pending placeholder and appends an
// agent-authored turn with the given fixed apology text.
func (l *Log) FailPending(apology string) {
	l.ResolvePending(NewNoticeTurn(apology))
}

func (l *Log) removePendingLocked() {
	for i, t := range l.turns {
		if t.Pending {
			l.turns = append(l.turns[:i], l.turns[i+1:]...)
			return
		}
	}
}

// HasPending reports whether a pending placeholder is outstanding.
func (l *Log) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range l.turns {
		if t.Pending {
			return true
		}
	}
	return false
}

// Turns returns a copy of the turn sequence in insertion order.
func (l *Log) Turns() []Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns currently in the log.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}
