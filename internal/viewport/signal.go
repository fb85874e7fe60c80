// Package viewport exposes the width predicate that distinguishes the two
// rendering passes. A Signal answers "is the viewport at least threshold
// units wide" and notifies subscribers when the answer changes. Until the
// environment activates the signal, the answer is always the default: false.
package viewport

import "sync"

// DefaultThreshold is the pixel threshold of the wide-viewport predicate.
// The TUI overrides it with a terminal-column threshold via Config.
const DefaultThreshold = 600

// Config contains the tunable parameters of a Signal.
type Config struct {
	// Threshold is the minimum width, in the caller's units, for the
	// predicate to read true.
	Threshold int
}

// DefaultConfig returns a Config with the pixel-contract threshold.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// WithThreshold returns a copy of the config with a different threshold.
func (c Config) WithThreshold(w int) Config {
	c.Threshold = w
	return c
}

// Signal is a width-predicate source. The zero value is not usable; create
// one with NewSignal. A nil *Signal is valid and models an absent source:
// the predicate stays false forever and subscriptions are no-ops.
type Signal struct {
	mu        sync.Mutex
	threshold int
	width     int
	active    bool
	nextID    int
	listeners map[int]func(bool)
}

// NewSignal creates an inactive Signal. Wide reads false until Activate has
// run and a width has been reported.
func NewSignal(cfg Config) *Signal {
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Signal{
		threshold: threshold,
		listeners: make(map[int]func(bool)),
	}
}

// Wide reports the current value of the predicate. Before activation it is
// always false, regardless of any width already reported.
func (s *Signal) Wide() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wideLocked()
}

func (s *Signal) wideLocked() bool {
	return s.active && s.width >= s.threshold
}

// Active reports whether the environment has activated the signal yet.
func (s *Signal) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Activate marks the signal live. Typically called when the first width
// report arrives from the environment. If the predicate value changes as a
// result, subscribers are notified.
func (s *Signal) Activate() {
	if s == nil {
		return
	}
	s.mu.Lock()
	before := s.wideLocked()
	s.active = true
	after := s.wideLocked()
	fns := s.snapshotLocked(before != after)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(after)
	}
}

// Set records the current viewport width. Subscribers are notified only when
// the width crosses the threshold, not on every report.
func (s *Signal) Set(width int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	before := s.wideLocked()
	s.width = width
	after := s.wideLocked()
	fns := s.snapshotLocked(before != after)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(after)
	}
}

// Subscribe registers fn against the predicate. fn is invoked synchronously
// with the current value before Subscribe returns, then again on every
// subsequent threshold crossing. The returned cancel releases the
// subscription; it is safe to call more than once.
func (s *Signal) Subscribe(fn func(wide bool)) (cancel func()) {
	if s == nil || fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.wideLocked()
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// snapshotLocked copies the listener set when notify is true so callbacks
// run outside the lock.
func (s *Signal) snapshotLocked(notify bool) []func(bool) {
	if !notify || len(s.listeners) == 0 {
		return nil
	}
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}
