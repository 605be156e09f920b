package engine

import "github.com/zeusync/podracer/internal/core/geometry"

// Race event types published on the engine's event bus.
const (
	EventLapCompleted = "lap.completed"
	EventBoostFired   = "boost.fired"
	EventShieldRaised = "shield.raised"
	EventRolesSwapped = "roles.swapped"
)

const eventSource = "engine"

// LapCompleted is the payload of EventLapCompleted. It is published for
// adversarial pods as well.
type LapCompleted struct {
	Pod  string
	Lap  int
	Turn int
}

type BoostFired struct {
	Pod    string
	Target geometry.Point
	Turn   int
}

type ShieldRaised struct {
	Pod  string
	Turn int
}

// RolesSwapped is published when the controlled pods trade roles. The initial
// assignment is not a swap.
type RolesSwapped struct {
	Racer       string
	Interceptor string
	Turn        int
}
