package pod

import "github.com/zeusync/podracer/internal/core/geometry"

// Frame is the telemetry of one tick: the two controlled pods first, then the
// two adversarial ones, in slot order.
type Frame struct {
	Mine      [2]Telemetry
	Opponents [2]Telemetry
}

// LegacyFrame is one tick of the single-pod league, where the checkpoint loop
// is only revealed one checkpoint at a time. CheckpointAngle is relative to
// the pod's facing, in (-180,180].
type LegacyFrame struct {
	Position           geometry.Point
	Checkpoint         geometry.Point
	CheckpointDistance int
	CheckpointAngle    int
	Opponent           geometry.Point
}
