package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmeticDoesNotMutate(t *testing.T) {
	a := Point{3, 4}
	b := Point{1, -2}

	assert.Equal(t, Point{4, 2}, a.Add(b))
	assert.Equal(t, Point{2, 6}, a.Sub(b))
	assert.Equal(t, Point{9, 12}, a.Scale(3))
	assert.Equal(t, -5, a.Dot(b))
	assert.Equal(t, Point{3, 4}, a)
	assert.Equal(t, 5.0, a.Magnitude())
}

func TestDistances(t *testing.T) {
	a := Point{0, 0}
	b := Point{300, 400}

	assert.Equal(t, 250000, a.Dist2(b))
	assert.Equal(t, 500.0, a.Dist(b))
	assert.Equal(t, a.Dist2(b), b.Dist2(a))
	assert.InDelta(t, 500.0, a.Vec().Dist(b.Vec()), 1e-9)
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec2{{1, 0}, {0, -7}, {3, 4}, {-1e-3, 2e-3}, {12345.6, -9876.5}} {
		n, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Magnitude(), 1e-9, "vector %v", v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	_, err := Vec2{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)

	_, err = Point{5, 5}.Direction(Point{5, 5})
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestAngleTo(t *testing.T) {
	origin := Point{0, 0}
	cases := []struct {
		to   Point
		want float64
	}{
		{Point{1000, 0}, 0},
		{Point{0, 1000}, 90},
		{Point{-1000, 0}, 180},
		{Point{0, -1000}, 270},
		{Point{1000, 1000}, 45},
		{Point{1000, -1000}, 315},
	}
	for _, c := range cases {
		got, err := AngleTo(origin, c.to)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9, "towards %v", c.to)
		assert.True(t, got >= 0 && got < 360)
	}

	_, err := AngleTo(origin, origin)
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestAngleDelta(t *testing.T) {
	assert.Equal(t, 0.0, AngleDelta(90, 90))
	assert.Equal(t, 90.0, AngleDelta(0, 90))
	assert.Equal(t, 20.0, AngleDelta(350, 10))
	assert.Equal(t, 180.0, AngleDelta(0, 180))
	assert.Equal(t, 1.0, AngleDelta(359.5, 0.5))
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, Point{2, -3}, Vec2{1.6, -2.6}.Round())
	assert.False(t, math.IsNaN(Vec2{3, 4}.Magnitude()))
}
