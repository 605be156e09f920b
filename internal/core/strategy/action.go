package strategy

import (
	"strconv"

	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
)

const (
	keywordBoost  = "BOOST"
	keywordShield = "SHIELD"
)

// Action is the decision for one controlled pod for one tick.
// Boost and Shield replace the numeric thrust on the wire.
type Action struct {
	Pod    string
	Role   Role
	Target geometry.Point
	Thrust int
	Boost  bool
	Shield bool
}

// ActionOf packages the pod's current decision.
func ActionOf(p *pod.Pod, role Role) Action {
	return Action{
		Pod:    p.String(),
		Role:   role,
		Target: p.Target(),
		Thrust: p.Thrust(),
		Boost:  p.BoostUsedThisTurn(),
		Shield: p.ShieldUsedThisTurn(),
	}
}

// Power is the third token of the action line.
func (a Action) Power() string {
	switch {
	case a.Shield:
		return keywordShield
	case a.Boost:
		return keywordBoost
	default:
		return strconv.Itoa(a.Thrust)
	}
}

// String renders the action line, e.g. "8000 4500 BOOST".
func (a Action) String() string {
	return strconv.Itoa(a.Target.X) + " " + strconv.Itoa(a.Target.Y) + " " + a.Power()
}
