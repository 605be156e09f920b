package sim

import (
	"math"

	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
)

// Move is one pod's command for a tick.
type Move struct {
	Target geometry.Point
	Thrust int
	Boost  bool
	Shield bool
}

func MoveOf(a strategy.Action) Move {
	return Move{Target: a.Target, Thrust: a.Thrust, Boost: a.Boost, Shield: a.Shield}
}

// Match is a two-player race on one map. Pods 0 and 1 belong to player 0,
// pods 2 and 3 to player 1.
type Match struct {
	checkpoints []geometry.Vec2
	laps        int
	maxTurns    int

	pods    [4]body
	timeout [2]int
	turn    int

	over   bool
	winner int
}

// NewMatch places the four pods on the start line across the first leg.
func NewMatch(checkpoints []geometry.Point, laps, maxTurns int) (*Match, error) {
	if len(checkpoints) < 2 {
		return nil, ErrInvalidMap
	}
	m := &Match{
		checkpoints: make([]geometry.Vec2, len(checkpoints)),
		laps:        laps,
		maxTurns:    maxTurns,
		timeout:     [2]int{timeoutTurns, timeoutTurns},
		winner:      -1,
	}
	for i, c := range checkpoints {
		m.checkpoints[i] = c.Vec()
	}
	dir, err := m.checkpoints[1].Sub(m.checkpoints[0]).Normalize()
	if err != nil {
		return nil, ErrInvalidMap
	}
	normal := geometry.Vec2{X: -dir.Y, Y: dir.X}
	for i := range m.pods {
		pos := m.checkpoints[0].Add(normal.Scale(spawnOffsets[i]))
		m.pods[i] = body{pos: geometry.Vec2{X: roundHalfAway(pos.X), Y: roundHalfAway(pos.Y)}}
	}
	return m, nil
}

// Checkpoints returns the loop as sent in the init block.
func (m *Match) Checkpoints() []geometry.Point {
	out := make([]geometry.Point, len(m.checkpoints))
	for i, c := range m.checkpoints {
		out[i] = c.Round()
	}
	return out
}

func (m *Match) Laps() int   { return m.laps }
func (m *Match) Turn() int   { return m.turn }
func (m *Match) Over() bool  { return m.over }
func (m *Match) Winner() int { return m.winner }
func (m *Match) total() int  { return m.laps * len(m.checkpoints) }
func (m *Match) next(i int) int {
	return (m.pods[i].passed + 1) % len(m.checkpoints)
}

// Passed is the number of checkpoints pod i has crossed since the start.
func (m *Match) Passed(i int) int { return m.pods[i].passed }

// Frame is the telemetry as seen by player: its own pods first.
func (m *Match) Frame(player int) pod.Frame {
	own, other := 0, 2
	if player == 1 {
		own, other = 2, 0
	}
	return pod.Frame{
		Mine:      [2]pod.Telemetry{m.telemetry(own), m.telemetry(own + 1)},
		Opponents: [2]pod.Telemetry{m.telemetry(other), m.telemetry(other + 1)},
	}
}

func (m *Match) telemetry(i int) pod.Telemetry {
	b := &m.pods[i]
	angle := -1
	if b.oriented {
		angle = int(math.Round(b.angle)) % 360
	}
	return pod.Telemetry{
		Position:       geometry.Point{X: int(b.pos.X), Y: int(b.pos.Y)},
		Velocity:       geometry.Point{X: int(b.vel.X), Y: int(b.vel.Y)},
		Angle:          angle,
		NextCheckpoint: m.next(i),
	}
}

// Step plays one tick with the moves of pods 0 to 3.
func (m *Match) Step(moves [4]Move) error {
	if m.over {
		return ErrMatchOver
	}
	for i, mv := range moves {
		b := &m.pods[i]
		power := max(0, min(mv.Thrust, maxThrust))
		if mv.Boost {
			power = reboostThrust
			if !b.boosted {
				b.boosted = true
				power = boostThrust
			}
		}
		if mv.Shield {
			b.shield = shieldTicks
		}
		if b.shield > 0 {
			power = 0
		}
		b.steer(mv.Target.Vec())
		b.thrust(power)
	}

	m.advance()
	for i := range m.pods {
		m.pods[i].endTurn()
	}
	m.timeout[0]--
	m.timeout[1]--
	m.turn++
	m.judge()
	return nil
}

// advance moves every pod through the tick, resolving pod collisions in time order.
func (m *Match) advance() {
	const rsq = podContact * podContact
	for t := 0.0; t < 1; {
		first, a, b := 1.0, -1, -1
		for i := 0; i < len(m.pods); i++ {
			for j := i + 1; j < len(m.pods); j++ {
				pi, pj := &m.pods[i], &m.pods[j]
				tx := collisionTime(pi.pos, pi.vel, pj.pos, pj.vel, rsq)
				if tx > 0 && t+tx < 1 && tx < first {
					first, a, b = tx, i, j
				}
			}
		}
		if a < 0 {
			m.forward(1 - t)
			return
		}
		m.forward(first)
		bounce(&m.pods[a], &m.pods[b])
		t += first
	}
}

func (m *Match) forward(dt float64) {
	const rsq = checkpointRadius * checkpointRadius
	for i := range m.pods {
		b := &m.pods[i]
		cp := m.checkpoints[m.next(i)]
		tx := collisionTime(b.pos, b.vel, cp, geometry.Vec2{}, rsq)
		if tx > 0 && tx < dt {
			b.passed++
			m.timeout[i/2] = timeoutTurns
		}
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

func (m *Match) judge() {
	switch {
	case m.timeout[0] <= 0:
		m.finish(1)
		return
	case m.timeout[1] <= 0:
		m.finish(0)
		return
	}
	for i := range m.pods {
		if m.pods[i].passed >= m.total() {
			m.finish(i / 2)
			return
		}
	}
	if m.turn >= m.maxTurns {
		m.finish(m.leader())
	}
}

// leader is the player whose best pod has made the most progress.
func (m *Match) leader() int {
	best, winner := math.Inf(-1), 0
	for i := range m.pods {
		b := &m.pods[i]
		score := float64(b.passed)*1e6 - b.pos.Dist(m.checkpoints[m.next(i)])
		if score > best {
			best, winner = score, i/2
		}
	}
	return winner
}

func (m *Match) finish(winner int) {
	m.over = true
	m.winner = winner
}
