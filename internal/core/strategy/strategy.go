package strategy

import (
	"math"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/track"
)

// Role is the closed set of behaviours a controlled pod can be bound to.
type Role uint8

const (
	// RoleRacer drives the race line as fast as possible.
	RoleRacer Role = iota
	// RoleInterceptor obstructs the leading adversarial pod.
	RoleInterceptor
)

func (r Role) String() string {
	switch r {
	case RoleRacer:
		return "racer"
	case RoleInterceptor:
		return "interceptor"
	default:
		return "unknown"
	}
}

func (r Role) IsRacer() bool { return r == RoleRacer }

// Context is everything a role needs besides its own pod for one tick.
type Context struct {
	Ledger    *track.Ledger
	Teammate  *pod.Pod
	Opponents [2]*pod.Pod
	// Leader is the adversarial pod ahead in the race.
	Leader *pod.Pod
}

// others lists the pods checked for collisions, in decision order.
func (c Context) others() []*pod.Pod {
	out := make([]*pod.Pod, 0, 3)
	for _, p := range []*pod.Pod{c.Teammate, c.Opponents[0], c.Opponents[1]} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Strategy binds a role to the game rules and tuning it decides with.
// It holds no per-pod state, so one value can serve any pod.
type Strategy struct {
	role Role
	game config.Game
	tune config.Strategy
}

func New(role Role, cfg config.Config) Strategy {
	return Strategy{role: role, game: cfg.Game, tune: cfg.Strategy}
}

func (s Strategy) Role() Role { return s.role }

// Compute sets the pod's target, shapes its thrust, fires boost or shield when
// the role wants to and returns the resulting action.
func (s Strategy) Compute(p *pod.Pod, ctx Context) Action {
	p.SetTarget(s.ComputeTarget(p, ctx))
	s.ComputeThrustAndShield(p, ctx)
	return ActionOf(p, s.role)
}

// ComputeTarget returns the raw steering target of the role.
func (s Strategy) ComputeTarget(p *pod.Pod, ctx Context) geometry.Point {
	switch s.role {
	case RoleInterceptor:
		return s.interceptTarget(p, ctx)
	default:
		return s.raceTarget(p, ctx.Ledger)
	}
}

// ShouldUseShield scans teammate, then both adversaries. The first predicted
// collision decides; later pods are not looked at.
func (s Strategy) ShouldUseShield(p *pod.Pod, ctx Context) bool {
	for _, other := range ctx.others() {
		if !Collision(p, other, s.game.PodRadius) {
			continue
		}
		beneficial := s.BeneficialCollision(p, other, ctx)
		if s.role == RoleInterceptor && other.Team() != p.Team() {
			return beneficial
		}
		return !beneficial
	}
	return false
}

// BeneficialCollision judges whether hitting other serves the role.
// Racers and teammates want a push along their heading; interceptors want to
// ram adversaries that are not heading the same productive way.
func (s Strategy) BeneficialCollision(p, other *pod.Pod, ctx Context) bool {
	switch {
	case s.role == RoleInterceptor && other.Team() != p.Team():
		theirs := ctx.Ledger.Get(other.NextCheckpoint()).Position.Sub(other.Position()).Vec()
		return unitDot(headingTo(p), theirs) < s.tune.BeneficialDot
	default:
		push := p.Position().Sub(other.Position()).Vec()
		return unitDot(headingTo(p), push) > s.tune.BeneficialDot
	}
}

// ComputeThrustAndShield is shared by both roles and runs after the target is set.
func (s Strategy) ComputeThrustAndShield(p *pod.Pod, ctx Context) {
	if s.ShouldUseShield(p, ctx) {
		p.RequestShield()
	}

	target := p.Target()
	dist := p.Position().Dist(target)
	if dist == 0 {
		p.SetThrust(0)
		return
	}
	delta := 0.0
	if !p.FacingFree() {
		bearing, err := AngleToward(p.Position(), target)
		if err == nil {
			// shortest arc: facing 350 against bearing 0 is 10 degrees off, not 350
			delta = geometry.AngleDelta(bearing, p.Angle())
		}
	}

	if delta < s.tune.FullThrustAngle && dist > s.tune.FullThrustDistance {
		p.SetThrust(p.MaxThrust())
		if ctx.Ledger.Get(p.NextCheckpoint()).BestBoost {
			p.RequestBoost()
		}
		return
	}

	p.SetTarget(target.Sub(p.Velocity().Scale(s.tune.DriftFactor)))
	distanceFactor := geometry.Clamp(dist/(2*s.game.CheckpointRadius), 0, 1)
	angleFactor := 1 - geometry.Clamp(delta/s.tune.BrakeAngle, 0, 1)
	p.SetThrust(int(math.Round(float64(p.MaxThrust()) * distanceFactor * angleFactor)))
}

// AngleToward returns the absolute heading from a to b in degrees, [0,360).
// Coincident points have no heading and yield geometry.ErrZeroVector.
func AngleToward(a, b geometry.Point) (float64, error) {
	return geometry.AngleTo(a, b)
}

// Collision predicts whether a and b touch after one more tick of drift.
func Collision(a, b *pod.Pod, radius float64) bool {
	contact := 2 * radius
	return float64(a.Predicted().Dist2(b.Predicted())) < contact*contact
}

func (s Strategy) raceTarget(p *pod.Pod, l *track.Ledger) geometry.Point {
	cp := l.Get(p.NextCheckpoint())
	if s.tune.LookaheadDistance <= 0 {
		return cp.Position
	}
	if p.Position().Dist(cp.Position) >= s.tune.LookaheadDistance {
		return cp.Position
	}
	return l.Next(p.NextCheckpoint()).Position
}

func (s Strategy) interceptTarget(p *pod.Pod, ctx Context) geometry.Point {
	leader := ctx.Leader
	if leader == nil {
		return s.raceTarget(p, ctx.Ledger)
	}
	goal := ctx.Ledger.Get(leader.NextCheckpoint()).Position
	toGoal := goal.Sub(p.Position())
	toLeader := leader.Position().Sub(p.Position())

	infeasible := toGoal.Dot(toLeader) > 0 ||
		p.Position().Dist2(goal) > leader.Position().Dist2(goal)
	if !infeasible {
		return leader.Position().Add(leader.Velocity().Scale(s.tune.InterceptLead))
	}
	return outrunTarget(p, leader, ctx.Ledger)
}

// outrunTarget walks the loop from the leader's next checkpoint and returns the
// first checkpoint p is closer to than the leader's remaining travel along the
// loop. Without one inside a lap, the last walked checkpoint is used.
func outrunTarget(p, leader *pod.Pod, l *track.Ledger) geometry.Point {
	idx := leader.NextCheckpoint()
	n := l.Count()
	travel := leader.Position().Dist(l.Get(idx).Position)
	for i := 0; i < n; i++ {
		cp := l.Get(idx + i)
		if p.Position().Dist(cp.Position) < travel {
			return cp.Position
		}
		travel += l.LegLength(idx + i)
	}
	return l.Get(idx + n - 1).Position
}

func headingTo(p *pod.Pod) geometry.Vec2 {
	return p.Target().Sub(p.Position()).Vec()
}

// unitDot is the dot product of the directions of a and b; 0 when either has none.
func unitDot(a, b geometry.Vec2) float64 {
	na, err := a.Normalize()
	if err != nil {
		return 0
	}
	nb, err := b.Normalize()
	if err != nil {
		return 0
	}
	return na.Dot(nb)
}
