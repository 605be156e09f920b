package sim

import (
	"math"

	"github.com/zeusync/podracer/internal/core/geometry"
)

type body struct {
	pos      geometry.Vec2
	vel      geometry.Vec2
	angle    float64 // degrees, [0,360)
	oriented bool
	passed   int
	shield   int
	boosted  bool
}

// steer turns the body towards target, by at most maxRotation once oriented.
func (b *body) steer(target geometry.Vec2) {
	heading, err := target.Sub(b.pos).Heading()
	if err != nil {
		b.oriented = true
		return
	}
	if !b.oriented {
		b.angle = heading
		b.oriented = true
		return
	}
	diff := math.Mod(heading-b.angle+540, 360) - 180
	diff = geometry.Clamp(diff, -maxRotation, maxRotation)
	b.angle = math.Mod(b.angle+diff+360, 360)
}

func (b *body) thrust(power int) {
	s, c := math.Sincos(b.angle * math.Pi / 180)
	b.vel = b.vel.Add(geometry.Vec2{X: c * float64(power), Y: s * float64(power)})
}

func (b *body) mass() float64 {
	if b.shield == shieldTicks {
		return shieldMass
	}
	return 1
}

func (b *body) endTurn() {
	b.vel = geometry.Vec2{X: math.Trunc(b.vel.X * friction), Y: math.Trunc(b.vel.Y * friction)}
	b.pos = geometry.Vec2{X: roundHalfAway(b.pos.X), Y: roundHalfAway(b.pos.Y)}
	if b.shield > 0 {
		b.shield--
	}
}

// collisionTime returns when, within [0,1) of the remaining tick, two moving
// circles first come within sqrt(rsq) of each other. It returns 0 when they
// already overlap and -1 when they never meet.
func collisionTime(aPos, aVel, bPos, bVel geometry.Vec2, rsq float64) float64 {
	p := bPos.Sub(aPos)
	p2 := p.Dot(p)
	if p2 <= rsq {
		return 0
	}
	v := bVel.Sub(aVel)
	dot := p.Dot(v)
	if dot > 0 {
		return -1
	}
	v2 := v.Dot(v)
	if v2 == 0 {
		return -1
	}
	disc := dot*dot - v2*(p2-rsq)
	if disc < 0 {
		return -1
	}
	t := (-dot - math.Sqrt(disc)) / v2
	if t >= 0 && t < 1 {
		return t
	}
	return -1
}

// bounce resolves an elastic collision with the minimum impulse rule.
func bounce(a, b *body) {
	m1, m2 := a.mass(), b.mass()
	coeff := (m1 + m2) / (m1 * m2)
	n := a.pos.Sub(b.pos)
	n2 := n.Dot(n)
	if n2 == 0 {
		return
	}
	product := n.Dot(a.vel.Sub(b.vel))
	f := n.Scale(product / (n2 * coeff))
	push := func(f geometry.Vec2) {
		a.vel = a.vel.Sub(f.Scale(1 / m1))
		b.vel = b.vel.Add(f.Scale(1 / m2))
	}
	push(f)
	impulse := f.Magnitude()
	if impulse > 0 && impulse < minImpulse {
		f = f.Scale(minImpulse / impulse)
	}
	push(f)
}

func roundHalfAway(x float64) float64 {
	if x > 0 {
		return math.Floor(x + 0.5)
	}
	return math.Ceil(x - 0.5)
}
