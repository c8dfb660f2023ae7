package autocomplete

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock hands out timers that only fire when the test says so
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fire runs the timer callback if it is still armed
func (t *fakeTimer) fire() {
	t.clock.mu.Lock()
	if t.stopped || t.fired {
		t.clock.mu.Unlock()
		return
	}
	t.fired = true
	t.clock.mu.Unlock()
	t.fn()
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, NewDebouncer(0).Delay())
	assert.Equal(t, 300*time.Millisecond, NewDebouncer(-5*time.Millisecond).Delay())
	assert.Equal(t, 50*time.Millisecond, NewDebouncer(50*time.Millisecond).Delay())
}

func TestDebouncer_FiresAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, WithAfterFunc(clock.AfterFunc))

	calls := 0
	d.Debounce(func() { calls++ })
	require.True(t, d.Pending())
	assert.Equal(t, 300*time.Millisecond, clock.last().delay)

	clock.last().fire()
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())
}

func TestDebouncer_RearmSupersedesPending(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(300*time.Millisecond, WithAfterFunc(clock.AfterFunc))

	var got []string
	for _, q := range []string{"a", "al", "ali"} {
		d.Debounce(func() { got = append(got, q) })
		assert.Equal(t, 1, clock.armed(), "only one timer may be outstanding")
	}

	// Firing superseded timers does nothing
	for _, tm := range clock.timers[:2] {
		tm.fire()
	}
	clock.last().fire()

	assert.Equal(t, []string{"ali"}, got)
}

func TestDebouncer_CancelPreventsCallback(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(0, WithAfterFunc(clock.AfterFunc))

	called := false
	d.Debounce(func() { called = true })
	d.Cancel()
	clock.last().fire()

	assert.False(t, called)
	assert.False(t, d.Pending())
	assert.Zero(t, clock.armed())

	// Cancelling with nothing pending is a no-op
	d.Cancel()
}

func TestDebouncer_ScheduleReportsOutcome(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(0, WithAfterFunc(clock.AfterFunc))

	first := d.Schedule()
	second := d.Schedule()
	assert.False(t, <-first, "superseded slot reports false")

	clock.last().fire()
	assert.True(t, <-second)

	third := d.Schedule()
	d.Cancel()
	assert.False(t, <-third, "cancelled slot reports false")
}

func TestDebouncer_StaleFireAfterRearm(t *testing.T) {
	clock := &fakeClock{}
	d := NewDebouncer(0, WithAfterFunc(clock.AfterFunc))

	first := d.Schedule()
	stale := clock.last()
	second := d.Schedule()

	// The old timer's callback races in after being superseded
	stale.fired = false
	stale.stopped = false
	stale.fire()

	assert.False(t, <-first)
	select {
	case v := <-second:
		t.Fatalf("second slot resolved early with %v", v)
	default:
	}
	d.Cancel()
	assert.False(t, <-second)
}

func TestDebouncer_RealTimer_RapidCalls(t *testing.T) {
	var called int32
	var lastValue int32
	d := NewDebouncer(40 * time.Millisecond)

	for i := 1; i <= 5; i++ {
		value := int32(i)
		d.Debounce(func() {
			atomic.StoreInt32(&lastValue, value)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&called) == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.Equal(t, int32(5), atomic.LoadInt32(&lastValue))
}

func TestDebouncer_RealTimer_CancelOnTeardown(t *testing.T) {
	var called int32
	d := NewDebouncer(30 * time.Millisecond)
	d.Debounce(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&called))
}
