package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"peoplepicker/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan domain.Person, 1)
	b.Subscribe(EventPersonSelected, func(e DomainEvent) {
		if ev, ok := e.(PersonSelectedEvent); ok {
			got <- ev.Person
		}
	})

	b.Publish(PersonSelectedEvent{Person: domain.Person{Name: "Alice", Slug: "alice"}})

	select {
	case p := <-got:
		assert.Equal(t, "Alice", p.Name)
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestSubscribersOnlySeeTheirEventType(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var seen []EventType
	b.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		mu.Lock()
		seen = append(seen, e.Type())
		mu.Unlock()
	})

	b.Publish(PersonSelectedEvent{})
	b.Publish(SelectionClearedEvent{Query: "Al"})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []EventType{EventSelectionCleared}, seen)
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	calls := 0
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unsubscribe()

	b.Publish(ErrorEvent{Message: "boom"})
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)

	done := make(chan struct{})
	b.Subscribe(EventError, func(DomainEvent) { panic("handler blew up") })
	b.Subscribe(EventError, func(DomainEvent) { close(done) })

	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler did not run")
	}
	b.Close()
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(ErrorEvent{Message: "late"})
	})
	// Closing twice is fine
	b.Close()
}
