package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
)

func TestBaselineBoostsFirstThenHalts(t *testing.T) {
	b := NewBaseline(config.Default().Game)
	l := square(t)

	// checkpoint straight behind
	p := makePod(t, pod.Mine, 0, podState{x: 9000, y: 0, angle: 0, next: 0})
	a := b.Compute(p, l)
	assert.True(t, a.Boost, "boost ignores the angle")
	assert.Equal(t, geometry.Point{X: 8000, Y: 0}, a.Target)

	p.UpdateFromTelemetry(pod.Telemetry{Position: geometry.Point{X: 9000, Y: 0}, Angle: 0})
	a = b.Compute(p, l)
	assert.False(t, a.Boost)
	assert.Equal(t, 0, a.Thrust)
	assert.Equal(t, "8000 0 0", a.String())

	p.UpdateFromTelemetry(pod.Telemetry{Position: geometry.Point{X: 9000, Y: 0}, Angle: 170})
	a = b.Compute(p, l)
	assert.Equal(t, 100, a.Thrust)
}

func TestBaselineSteerUsesMeasuredValues(t *testing.T) {
	b := NewBaseline(config.Default().Game)
	p := makePod(t, pod.Mine, 0, podState{angle: -1, next: 0})
	cp := geometry.Point{X: 50, Y: 0}

	a := b.Steer(p, cp, 120, 50)
	assert.False(t, a.Boost, "too close to boost")
	assert.Equal(t, 0, a.Thrust)

	a = b.Steer(p, cp, 10, 50)
	assert.Equal(t, 100, a.Thrust)
	assert.Equal(t, RoleRacer, a.Role)
}
