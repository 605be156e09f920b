package strategy

import (
	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/track"
)

const (
	baselineBoostDistance = 100
	baselineHaltAngle     = 90
)

// Baseline is the single-pod bot of the early league: aim straight at the next
// checkpoint, burn the boost as soon as possible and cut the engine while the
// checkpoint is behind. It is not a Role; the arena and the legacy driver use
// it on their own.
type Baseline struct {
	BoostDistance float64
	HaltAngle     float64
	maxThrust     int
}

func NewBaseline(rules config.Game) Baseline {
	return Baseline{
		BoostDistance: baselineBoostDistance,
		HaltAngle:     baselineHaltAngle,
		maxThrust:     rules.MaxThrust,
	}
}

// Compute decides from the pod's own telemetry.
func (b Baseline) Compute(p *pod.Pod, l *track.Ledger) Action {
	cp := l.Get(p.NextCheckpoint()).Position
	delta := 0.0
	if !p.FacingFree() {
		if bearing, err := AngleToward(p.Position(), cp); err == nil {
			delta = geometry.AngleDelta(bearing, p.Angle())
		}
	}
	return b.Steer(p, cp, delta, p.Position().Dist(cp))
}

// Steer decides from a checkpoint the caller already measured. delta is the
// unsigned angle between facing and checkpoint in degrees.
func (b Baseline) Steer(p *pod.Pod, cp geometry.Point, delta, dist float64) Action {
	p.SetTarget(cp)
	switch {
	case dist >= b.BoostDistance && p.RequestBoost():
		p.SetThrust(b.maxThrust)
	case delta > b.HaltAngle:
		p.SetThrust(0)
	default:
		p.SetThrust(b.maxThrust)
	}
	return ActionOf(p, RoleRacer)
}
