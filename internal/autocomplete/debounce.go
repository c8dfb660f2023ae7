package autocomplete

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used when no positive delay is configured
const DefaultDebounceDelay = 300 * time.Millisecond

// Timer is the handle returned by an AfterFunc. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// AfterFunc arms a timer that calls f once d has elapsed
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// DebouncerOption configures a Debouncer
type DebouncerOption func(*Debouncer)

// WithAfterFunc replaces the timer factory, mainly for tests
func WithAfterFunc(fn AfterFunc) DebouncerOption {
	return func(d *Debouncer) {
		if fn != nil {
			d.afterFunc = fn
		}
	}
}

// slot is the single pending timer owned by a Debouncer
type slot struct {
	timer   Timer
	fire    func()
	discard func()
}

// Debouncer holds at most one pending timer. Arming it again stops and
// discards whatever was pending.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	afterFunc AfterFunc
	pending   *slot
}

// NewDebouncer creates a debouncer with the given delay
func NewDebouncer(delay time.Duration, opts ...DebouncerOption) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	d := &Debouncer{
		delay:     delay,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured delay
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Debounce runs fn after the delay unless the debouncer is re-armed or
// cancelled first.
func (d *Debouncer) Debounce(fn func()) {
	d.arm(&slot{fire: fn})
}

// Schedule arms the debouncer and returns a channel that receives true when
// the delay elapses, or false when the slot is superseded or cancelled.
// Exactly one value is ever sent.
func (d *Debouncer) Schedule() <-chan bool {
	ch := make(chan bool, 1)
	d.arm(&slot{
		fire:    func() { ch <- true },
		discard: func() { ch <- false },
	})
	return ch
}

// Cancel stops any pending timer. Safe to call at any time.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	prev := d.pending
	d.pending = nil
	d.mu.Unlock()

	stop(prev)
}

// Pending reports whether a timer is armed and has not fired yet
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) arm(s *slot) {
	d.mu.Lock()
	prev := d.pending
	d.pending = s
	// The timer callback may run before arm returns, so it must take the lock
	s.timer = d.afterFunc(d.delay, func() { d.fire(s) })
	d.mu.Unlock()

	stop(prev)
}

func (d *Debouncer) fire(s *slot) {
	d.mu.Lock()
	if d.pending != s {
		// Superseded between the timer firing and us getting the lock
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	if s.fire != nil {
		s.fire()
	}
}

// stop halts a slot that was already detached from the debouncer. fire
// ignores detached slots, so discard is the only outcome left for it.
func stop(s *slot) {
	if s == nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.discard != nil {
		s.discard()
	}
}
