package pod

import (
	"fmt"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/geometry"
)

// Team tells controlled pods from adversarial ones.
type Team uint8

const (
	Mine Team = iota
	Opponent
)

func (t Team) String() string {
	if t == Mine {
		return "mine"
	}
	return "opponent"
}

// Telemetry is one pod line of a game frame.
type Telemetry struct {
	Position       geometry.Point
	Velocity       geometry.Point
	Angle          int
	NextCheckpoint int
}

// Pod is the kinematic and resource state of one vehicle for the whole match.
// Boost and shield are only reachable through RequestBoost and RequestShield,
// which enforce the single boost and the shield cooldown.
type Pod struct {
	team Team
	slot int

	position   geometry.Point
	velocity   geometry.Point
	angle      float64
	facingFree bool

	nextCheckpoint int
	lap            int
	turns          int

	target    geometry.Point
	thrust    int
	maxThrust int

	boostsLeft     int
	shieldCooldown int
	shieldDuration int

	boostUsed  bool
	shieldUsed bool
}

// New returns a pod in its match-start state.
func New(team Team, slot int, rules config.Game) *Pod {
	return &Pod{
		team:           team,
		slot:           slot,
		facingFree:     true,
		maxThrust:      rules.MaxThrust,
		boostsLeft:     rules.Boosts,
		shieldDuration: rules.ShieldCooldown,
	}
}

// UpdateFromTelemetry ingests a fresh telemetry line. It is the only place
// the per-turn boost and shield flags are cleared.
func (p *Pod) UpdateFromTelemetry(t Telemetry) (lapCompleted bool) {
	p.position = t.Position
	p.velocity = t.Velocity
	if t.Angle < 0 {
		// first turn: the pod may face anywhere
		p.facingFree = true
		p.angle = 0
	} else {
		p.facingFree = false
		p.angle = float64(t.Angle % 360)
	}
	if t.NextCheckpoint != p.nextCheckpoint {
		p.nextCheckpoint = t.NextCheckpoint
		if t.NextCheckpoint == 0 {
			p.lap++
			lapCompleted = true
		}
	}
	p.boostUsed = false
	p.shieldUsed = false
	if p.shieldCooldown > 0 {
		p.shieldCooldown--
	}
	p.turns++
	return lapCompleted
}

// RequestBoost fires the boost if one is left and no shield is cooling down.
func (p *Pod) RequestBoost() bool {
	if p.shieldCooldown > 0 || p.boostsLeft <= 0 {
		return false
	}
	p.boostsLeft--
	p.boostUsed = true
	return true
}

// RequestShield raises the shield and restarts its cooldown. With the default
// cooldown of 3, boost is refused on this tick and the next 2 ticks.
func (p *Pod) RequestShield() {
	p.shieldUsed = true
	p.shieldCooldown = p.shieldDuration
}

// SetThrust stores the shaped thrust, clamped to [0,max].
func (p *Pod) SetThrust(thrust int) {
	switch {
	case thrust < 0:
		thrust = 0
	case thrust > p.maxThrust:
		thrust = p.maxThrust
	}
	p.thrust = thrust
}

func (p *Pod) SetTarget(target geometry.Point) { p.target = target }

func (p *Pod) Team() Team                { return p.team }
func (p *Pod) Slot() int                 { return p.slot }
func (p *Pod) Position() geometry.Point  { return p.position }
func (p *Pod) Velocity() geometry.Point  { return p.velocity }
func (p *Pod) Angle() float64            { return p.angle }
func (p *Pod) FacingFree() bool          { return p.facingFree }
func (p *Pod) NextCheckpoint() int       { return p.nextCheckpoint }
func (p *Pod) Lap() int                  { return p.lap }
func (p *Pod) Turns() int                { return p.turns }
func (p *Pod) Target() geometry.Point    { return p.target }
func (p *Pod) Thrust() int               { return p.thrust }
func (p *Pod) MaxThrust() int            { return p.maxThrust }
func (p *Pod) BoostAvailable() bool      { return p.boostsLeft > 0 }
func (p *Pod) ShieldCooldown() int       { return p.shieldCooldown }
func (p *Pod) BoostUsedThisTurn() bool   { return p.boostUsed }
func (p *Pod) ShieldUsedThisTurn() bool  { return p.shieldUsed }
func (p *Pod) Predicted() geometry.Point { return p.position.Add(p.velocity) }

func (p *Pod) String() string {
	return fmt.Sprintf("%s-%d", p.team, p.slot)
}
