package engine

import (
	"sync"
	"time"

	"github.com/zeusync/podracer/internal/core/strategy"
)

// DecisionRecord is one pod's decision for one tick.
type DecisionRecord struct {
	Turn      int
	Action    strategy.Action
	Leader    string
	Duration  time.Duration
	Timestamp time.Time
}

// Journal keeps the most recent decisions of a match, oldest first.
type Journal struct {
	mu      sync.RWMutex
	list    []DecisionRecord
	limit   int
	dropped int
}

// NewJournal creates a journal holding at most limit records. A non-positive
// limit keeps everything.
func NewJournal(limit int) *Journal {
	size := limit
	if size <= 0 || size > 256 {
		size = 256
	}
	return &Journal{list: make([]DecisionRecord, 0, size), limit: limit}
}

func (j *Journal) Append(rec DecisionRecord) {
	j.mu.Lock()
	if j.limit > 0 && len(j.list) == j.limit {
		copy(j.list, j.list[1:])
		j.list = j.list[:len(j.list)-1]
		j.dropped++
	}
	j.list = append(j.list, rec)
	j.mu.Unlock()
}

func (j *Journal) History() []DecisionRecord {
	j.mu.RLock()
	cp := make([]DecisionRecord, len(j.list))
	copy(cp, j.list)
	j.mu.RUnlock()
	return cp
}

// ForPod returns the retained records of one pod, oldest first.
func (j *Journal) ForPod(name string) []DecisionRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []DecisionRecord
	for _, rec := range j.list {
		if rec.Action.Pod == name {
			out = append(out, rec)
		}
	}
	return out
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.list)
}

// Dropped reports how many records were evicted to respect the limit.
func (j *Journal) Dropped() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.dropped
}

func (j *Journal) Reset() {
	j.mu.Lock()
	j.list = j.list[:0]
	j.dropped = 0
	j.mu.Unlock()
}
