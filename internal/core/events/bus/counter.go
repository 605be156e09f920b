package bus

import (
	"sort"
	"sync"
)

// Counter tallies every event published on a bus, by type.
type Counter struct {
	mu     sync.Mutex
	counts map[string]uint64
	sub    Subscription
}

// NewCounter subscribes a new Counter to every event of b.
func NewCounter(b EventBus) (*Counter, error) {
	c := &Counter{counts: make(map[string]uint64)}
	sub, err := b.Subscribe(Wildcard, c.handle)
	if err != nil {
		return nil, err
	}
	c.sub = sub
	return c, nil
}

func (c *Counter) handle(e Event) error {
	c.mu.Lock()
	c.counts[e.Type()]++
	c.mu.Unlock()
	return nil
}

func (c *Counter) Count(eventType string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[eventType]
}

// Types lists the event types seen so far, sorted.
func (c *Counter) Types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.counts))
	for t := range c.counts {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Stop detaches the counter from its bus; counts are kept.
func (c *Counter) Stop() error { return c.sub.Cancel() }
