package geometry

import "math"

// Vec2 is a floating-point 2D vector used for derived directions and magnitudes.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Magnitude() float64   { return math.Sqrt(v.Dot(v)) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist2(o Vec2) float64 { d := o.Sub(v); return d.Dot(d) }
func (v Vec2) Dist(o Vec2) float64  { return math.Sqrt(v.Dist2(o)) }
func (v Vec2) Round() Point         { return Point{int(math.Round(v.X)), int(math.Round(v.Y))} }
func (v Vec2) String() string       { return formatPair(v.X, v.Y) }

// Equal compares component-wise within eps.
func (v Vec2) Equal(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Normalize returns the unit vector with the direction of v.
// A zero vector has no direction and yields ErrZeroVector.
func (v Vec2) Normalize() (Vec2, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vec2{}, ErrZeroVector
	}
	return Vec2{v.X / m, v.Y / m}, nil
}

// Heading returns the absolute angle of v in degrees, in [0,360).
// Angles grow clockwise on screen because the game's y axis points down.
func (v Vec2) Heading() (float64, error) {
	n, err := v.Normalize()
	if err != nil {
		return 0, err
	}
	a := math.Acos(clamp(n.X, -1, 1)) * 180 / math.Pi
	if n.Y < 0 {
		a = 360 - a
	}
	if a >= 360 {
		a -= 360
	}
	return a, nil
}

// AngleTo returns the heading from a to b in degrees, in [0,360).
// Coincident points yield ErrZeroVector.
func AngleTo(a, b Point) (float64, error) {
	return b.Sub(a).Vec().Heading()
}

// AngleDelta returns the shortest absolute difference between two headings, in [0,180].
func AngleDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Clamp limits x to [lo,hi].
func Clamp(x, lo, hi float64) float64 { return clamp(x, lo, hi) }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
