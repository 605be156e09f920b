package pod

import "github.com/zeusync/podracer/internal/core/track"

// Ahead reports whether a is ahead of b in the race: more laps first, then a
// later next checkpoint, then the shorter squared distance to that checkpoint.
// An exact tie favours a.
func Ahead(a, b *Pod, l *track.Ledger) bool {
	if a.lap != b.lap {
		return a.lap > b.lap
	}
	if a.nextCheckpoint != b.nextCheckpoint {
		return a.nextCheckpoint > b.nextCheckpoint
	}
	da := a.position.Dist2(l.Get(a.nextCheckpoint).Position)
	db := b.position.Dist2(l.Get(b.nextCheckpoint).Position)
	return da <= db
}

// Rank orders two pods of the same team.
func Rank(a, b *Pod, l *track.Ledger) (leader, trailer *Pod) {
	if Ahead(a, b, l) {
		return a, b
	}
	return b, a
}
