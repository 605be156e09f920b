package geometry

import (
	"math"
	"strconv"
)

// Point is an integer position or velocity, as reported by telemetry.
type Point struct{ X, Y int }

func (p Point) Add(o Point) Point    { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point    { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(k int) Point    { return Point{p.X * k, p.Y * k} }
func (p Point) Dot(o Point) int      { return p.X*o.X + p.Y*o.Y }
func (p Point) Vec() Vec2            { return Vec2{float64(p.X), float64(p.Y)} }
func (p Point) Magnitude() float64   { return p.Vec().Magnitude() }
func (p Point) IsZero() bool         { return p.X == 0 && p.Y == 0 }
func (p Point) Dist(o Point) float64 { return math.Sqrt(float64(p.Dist2(o))) }
func (p Point) String() string       { return formatPair(float64(p.X), float64(p.Y)) }

// Dist2 is the squared distance, for comparisons where only order matters.
func (p Point) Dist2(o Point) int {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return dx*dx + dy*dy
}

// Direction returns the unit vector from p towards o.
func (p Point) Direction(o Point) (Vec2, error) {
	return o.Sub(p).Vec().Normalize()
}

func formatPair(x, y float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + " " + strconv.FormatFloat(y, 'g', -1, 64)
}
