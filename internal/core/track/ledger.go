package track

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/podracer/internal/core/geometry"
)

// Checkpoint is a fixed waypoint of the race loop.
type Checkpoint struct {
	Index     int
	Position  geometry.Point
	BestBoost bool
}

// Ledger is the ordered loop of checkpoints. It is either built upfront from the
// full list or grown by Discover while the first lap is driven. Once the loop is
// closed the set of checkpoints never changes.
type Ledger struct {
	checkpoints []Checkpoint
	complete    bool

	// discovery cursor
	current int
	laps    int
}

// NewLedger builds a complete ledger from the full checkpoint list.
func NewLedger(points []geometry.Point) (*Ledger, error) {
	if len(points) < 2 {
		return nil, ErrTooFewCheckpoints
	}
	l := &Ledger{checkpoints: make([]Checkpoint, len(points))}
	for i, p := range points {
		l.checkpoints[i] = Checkpoint{Index: i, Position: p}
	}
	l.complete = true
	l.AssignBestBoost()
	return l, nil
}

// NewDiscoveryLedger returns an empty ledger to be filled by Discover.
func NewDiscoveryLedger() *Ledger {
	return &Ledger{checkpoints: make([]Checkpoint, 0, 8)}
}

// Discover records the checkpoint a pod is currently heading to. It is the
// incremental variant for protocols that reveal one checkpoint at a time.
func (l *Ledger) Discover(pos geometry.Point) {
	if len(l.checkpoints) == 0 {
		l.checkpoints = append(l.checkpoints, Checkpoint{Index: 0, Position: pos})
		l.current = 0
		return
	}
	if l.checkpoints[l.current].Position == pos {
		return
	}
	if l.checkpoints[0].Position == pos {
		l.current = 0
		l.laps++
		if !l.complete && len(l.checkpoints) >= 2 {
			l.complete = true
			l.AssignBestBoost()
		}
		return
	}
	l.current++
	if l.laps == 0 && !l.complete {
		l.checkpoints = append(l.checkpoints, Checkpoint{Index: len(l.checkpoints), Position: pos})
		return
	}
	l.current %= len(l.checkpoints)
}

// AssignBestBoost flags the checkpoint at the far end of the strictly longest
// edge of the loop. Ties keep the first edge in index order.
func (l *Ledger) AssignBestBoost() {
	n := len(l.checkpoints)
	if n < 2 {
		return
	}
	best, longest := 0, -1
	for i := 0; i < n; i++ {
		to := (i + 1) % n
		d := l.checkpoints[i].Position.Dist2(l.checkpoints[to].Position)
		if d > longest {
			longest = d
			best = to
		}
	}
	for i := range l.checkpoints {
		l.checkpoints[i].BestBoost = i == best
	}
}

// Get returns the checkpoint at index, wrapped modulo the loop length.
// Callers must not query an empty ledger.
func (l *Ledger) Get(index int) Checkpoint {
	n := len(l.checkpoints)
	i := index % n
	if i < 0 {
		i += n
	}
	return l.checkpoints[i]
}

// Next returns the checkpoint following index.
func (l *Ledger) Next(index int) Checkpoint { return l.Get(index + 1) }

func (l *Ledger) Count() int     { return len(l.checkpoints) }
func (l *Ledger) Complete() bool { return l.complete }
func (l *Ledger) Empty() bool    { return len(l.checkpoints) == 0 }
func (l *Ledger) Current() int   { return l.current }
func (l *Ledger) Laps() int      { return l.laps }

// BestBoost returns the flagged checkpoint, or false before the loop is known.
func (l *Ledger) BestBoost() (Checkpoint, bool) {
	for _, c := range l.checkpoints {
		if c.BestBoost {
			return c, true
		}
	}
	return Checkpoint{}, false
}

// Checkpoints returns a snapshot of the loop.
func (l *Ledger) Checkpoints() []Checkpoint {
	cp := make([]Checkpoint, len(l.checkpoints))
	copy(cp, l.checkpoints)
	return cp
}

// LegLength is the true distance from checkpoint index to the one after it.
func (l *Ledger) LegLength(index int) float64 {
	return l.Get(index).Position.Dist(l.Next(index).Position)
}

// Fingerprint identifies the map layout independently of where it was read from.
func (l *Ledger) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, c := range l.checkpoints {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.Position.X)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Position.Y)))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
