package bus

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	_, err := b.Subscribe("lap.completed", func(e Event) error {
		got = e
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("lap.completed", "engine", 2)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got == nil {
		t.Fatal("handler not called")
	}
	if got.Data() != 2 || got.Source() != "engine" {
		t.Fatalf("unexpected event %+v", got)
	}
	if b.Published() != 1 {
		t.Fatalf("published = %d", b.Published())
	}
}

func TestDeliveryOrderAndWildcard(t *testing.T) {
	b := New()
	var order []string
	_, _ = b.Subscribe(Wildcard, func(e Event) error { order = append(order, "all:"+e.Type()); return nil })
	_, _ = b.Subscribe("x", func(e Event) error { order = append(order, "x1"); return nil })
	_, _ = b.Subscribe("x", func(e Event) error { order = append(order, "x2"); return nil })

	_ = b.Publish(NewEvent("x", "src", nil))
	_ = b.Publish(NewEvent("y", "src", nil))

	want := []string{"x1", "x2", "all:x", "all:y"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1 := errors.New("first")
	e2 := errors.New("second")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "src", nil))
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected joined error, got %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	sub, _ := b.Subscribe("x", func(Event) error { count++; return nil })
	_ = b.Publish(NewEvent("x", "src", nil))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active")
	}
	_ = sub.Cancel()
	_ = b.Publish(NewEvent("x", "src", nil))
	if count != 1 {
		t.Fatalf("count = %d", count)
	}
	if err := b.Unsubscribe(nil); err != nil {
		t.Fatalf("nil unsubscribe: %v", err)
	}
}

func TestInvalidArguments(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("", func(Event) error { return nil }); !errors.Is(err, ErrEmptyEventType) {
		t.Fatalf("expected ErrEmptyEventType, got %v", err)
	}
	if _, err := b.Subscribe("x", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler, got %v", err)
	}
	if err := b.Publish(nil); !errors.Is(err, ErrNilEvent) {
		t.Fatalf("expected ErrNilEvent, got %v", err)
	}
}

func TestConcurrentPublish(t *testing.T) {
	b := New()
	var mu sync.Mutex
	count := 0
	_, _ = b.Subscribe("x", func(Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.Publish(NewEventAt("x", "src", j, time.Unix(0, 0)))
			}
		}()
	}
	wg.Wait()
	if count != 800 || b.Published() != 800 {
		t.Fatalf("count = %d, published = %d", count, b.Published())
	}
}

func TestCounter(t *testing.T) {
	b := New()
	c, err := NewCounter(b)
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	_ = b.Publish(NewEvent("boost.fired", "engine", nil))
	_ = b.Publish(NewEvent("lap.completed", "engine", nil))
	_ = b.Publish(NewEvent("lap.completed", "engine", nil))

	if c.Count("lap.completed") != 2 || c.Count("boost.fired") != 1 || c.Count("x") != 0 {
		t.Fatalf("unexpected counts %d %d", c.Count("lap.completed"), c.Count("boost.fired"))
	}
	if types := c.Types(); len(types) != 2 || types[0] != "boost.fired" {
		t.Fatalf("types = %v", types)
	}

	if err = c.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	_ = b.Publish(NewEvent("lap.completed", "engine", nil))
	if c.Count("lap.completed") != 2 {
		t.Fatal("counter still subscribed")
	}
}
