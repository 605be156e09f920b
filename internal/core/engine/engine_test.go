package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/podracer/internal/config"
	bus "github.com/zeusync/podracer/internal/core/events/bus"
	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
	"github.com/zeusync/podracer/internal/core/track"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// cp1 ends the longest edge
func testLedger(t *testing.T) *track.Ledger {
	t.Helper()
	l, err := track.NewLedger([]geometry.Point{{X: 0, Y: 0}, {X: 12000, Y: 0}, {X: 6000, Y: 3000}})
	require.NoError(t, err)
	require.True(t, l.Get(1).BestBoost)
	return l
}

func tel(x, y, next int) pod.Telemetry {
	return pod.Telemetry{Position: geometry.Point{X: x, Y: y}, Angle: 0, NextCheckpoint: next}
}

func frame(m0, m1 pod.Telemetry) pod.Frame {
	return pod.Frame{
		Mine:      [2]pod.Telemetry{m0, m1},
		Opponents: [2]pod.Telemetry{tel(0, -3000, 1), tel(500, -3000, 1)},
	}
}

type recorder struct {
	events []bus.Event
}

func (r *recorder) handle(e bus.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) ofType(typ string) []bus.Event {
	var out []bus.Event
	for _, e := range r.events {
		if e.Type() == typ {
			out = append(out, e)
		}
	}
	return out
}

func newEngine(t *testing.T, opts ...Option) (*Engine, *recorder) {
	t.Helper()
	b := bus.New()
	rec := &recorder{}
	_, err := b.Subscribe(bus.Wildcard, rec.handle)
	require.NoError(t, err)
	opts = append([]Option{WithEventBus(b), WithClock(func() time.Time { return epoch })}, opts...)
	e, err := New(config.Default(), testLedger(t), opts...)
	require.NoError(t, err)
	return e, rec
}

func TestNewRejectsUnusableInput(t *testing.T) {
	_, err := New(config.Default(), nil)
	assert.ErrorIs(t, err, ErrNilLedger)

	_, err = New(config.Default(), track.NewDiscoveryLedger())
	assert.ErrorIs(t, err, ErrIncompleteLedger)

	cfg := config.Default()
	cfg.Game.MaxThrust = 0
	_, err = New(cfg, testLedger(t))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTurnAssignsRolesAndBoosts(t *testing.T) {
	e, rec := newEngine(t)
	assert.Equal(t, -1, e.RacerSlot())

	actions, err := e.Turn(context.Background(), frame(tel(2000, 0, 1), tel(1000, 2000, 1)))
	require.NoError(t, err)

	assert.Equal(t, 0, e.RacerSlot())
	assert.Equal(t, strategy.RoleRacer, actions[0].Role)
	assert.Equal(t, strategy.RoleInterceptor, actions[1].Role)

	assert.True(t, actions[0].Boost)
	assert.Equal(t, "12000 0 BOOST", actions[0].String())
	assert.Equal(t, 100, e.Mine(0).Thrust())
	assert.False(t, actions[1].Boost)
	assert.False(t, e.Mine(0).BoostAvailable())

	boosts := rec.ofType(EventBoostFired)
	require.Len(t, boosts, 1)
	assert.Equal(t, BoostFired{Pod: "mine-0", Target: geometry.Point{X: 12000, Y: 0}, Turn: 1}, boosts[0].Data())
	assert.Equal(t, epoch, boosts[0].Timestamp())
	assert.Empty(t, rec.ofType(EventRolesSwapped))

	history := e.Journal().History()
	require.Len(t, history, 2)
	assert.Equal(t, "mine-0", history[0].Action.Pod)
	assert.Equal(t, "mine-1", history[1].Action.Pod)
	assert.Equal(t, "opponent-1", history[0].Leader)
	assert.Zero(t, history[0].Duration)
	assert.Equal(t, epoch, history[0].Timestamp)

	s := e.Summary()
	assert.Equal(t, 1, s.Turns)
	assert.Equal(t, 1, s.BoostsFired)
	assert.Zero(t, s.ShieldsRaised)
}

func TestRolesFollowTheRaceAndLapsArePublished(t *testing.T) {
	e, rec := newEngine(t)
	ctx := context.Background()

	_, err := e.Turn(ctx, frame(tel(2000, 0, 1), tel(1000, 2000, 1)))
	require.NoError(t, err)

	// mine-1 overtakes
	actions, err := e.Turn(ctx, frame(tel(3000, 0, 1), tel(11000, 500, 1)))
	require.NoError(t, err)
	assert.Equal(t, 1, e.RacerSlot())
	assert.Equal(t, strategy.RoleInterceptor, actions[0].Role)
	assert.Equal(t, strategy.RoleRacer, actions[1].Role)
	assert.False(t, actions[0].Boost, "boost is spent")

	swaps := rec.ofType(EventRolesSwapped)
	require.Len(t, swaps, 1)
	assert.Equal(t, RolesSwapped{Racer: "mine-1", Interceptor: "mine-0", Turn: 2}, swaps[0].Data())

	// mine-0 reaches a later checkpoint, then closes the lap
	_, err = e.Turn(ctx, frame(tel(9000, 1500, 2), tel(11000, 500, 1)))
	require.NoError(t, err)
	_, err = e.Turn(ctx, frame(tel(5000, 2500, 0), tel(11000, 500, 1)))
	require.NoError(t, err)
	assert.Equal(t, 0, e.RacerSlot())

	laps := rec.ofType(EventLapCompleted)
	require.Len(t, laps, 1)
	assert.Equal(t, LapCompleted{Pod: "mine-0", Lap: 1, Turn: 4}, laps[0].Data())

	s := e.Summary()
	assert.Equal(t, 4, s.Turns)
	assert.Equal(t, [2]int{1, 0}, s.Laps)
	assert.Equal(t, 2, s.RoleSwaps)
	assert.Equal(t, 4, e.Turns())
	assert.Len(t, e.Journal().ForPod("mine-1"), 4)
}

func TestEveryTurnYieldsTwoValidActions(t *testing.T) {
	e, _ := newEngine(t)
	frames := []pod.Frame{
		frame(tel(0, 0, 1), tel(0, 0, 1)),
		frame(tel(12000, 0, 1), tel(6000, 3000, 2)),
		{
			Mine:      [2]pod.Telemetry{{Position: geometry.Point{X: 100, Y: 100}, Angle: -1, NextCheckpoint: 1}, tel(150, 150, 1)},
			Opponents: [2]pod.Telemetry{tel(120, 90, 1), tel(80, 110, 1)},
		},
	}
	for _, f := range frames {
		actions, err := e.Turn(context.Background(), f)
		require.NoError(t, err)
		for _, a := range actions {
			assert.GreaterOrEqual(t, a.Thrust, 0)
			assert.LessOrEqual(t, a.Thrust, 100)
			assert.False(t, a.Boost && a.Shield, "boost and shield in one tick")
		}
		assert.NotEqual(t, actions[0].Role, actions[1].Role)
	}
}

func TestHandlerErrorsDoNotFailTheTurn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	b := bus.New()
	_, err := b.Subscribe(EventBoostFired, func(bus.Event) error { return errors.New("sink full") })
	require.NoError(t, err)

	e, err := New(config.Default(), testLedger(t), WithEventBus(b), WithLogger(log.NewFromZap(zap.New(core))))
	require.NoError(t, err)

	actions, err := e.Turn(context.Background(), frame(tel(2000, 0, 1), tel(1000, 2000, 1)))
	require.NoError(t, err)
	assert.True(t, actions[0].Boost)

	warns := logs.FilterMessage("event handler failed").All()
	require.Len(t, warns, 1)
	assert.Equal(t, EventBoostFired, warns[0].ContextMap()["event"])
}

func TestCancelledContext(t *testing.T) {
	e, _ := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Turn(ctx, frame(tel(2000, 0, 1), tel(1000, 2000, 1)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, e.Turns())
	assert.Zero(t, e.Journal().Len())
}

func TestJournalEvictsOldest(t *testing.T) {
	j := NewJournal(3)
	for i := 1; i <= 5; i++ {
		j.Append(DecisionRecord{Turn: i})
	}
	history := j.History()
	require.Len(t, history, 3)
	assert.Equal(t, 3, history[0].Turn)
	assert.Equal(t, 5, history[2].Turn)
	assert.Equal(t, 2, j.Dropped())

	j.Reset()
	assert.Zero(t, j.Len())
	assert.Zero(t, j.Dropped())
}
