package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/podracer/internal/config"
	bus "github.com/zeusync/podracer/internal/core/events/bus"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
	"github.com/zeusync/podracer/internal/core/track"
)

// Engine turns per-tick telemetry into the actions of both controlled pods.
// It owns the four pods for the whole match and is not safe for concurrent use.
type Engine struct {
	ledger *track.Ledger

	mine      [2]*pod.Pod
	opponents [2]*pod.Pod

	racer       strategy.Strategy
	interceptor strategy.Strategy
	racerSlot   int

	turn    int
	summary Summary

	journal *Journal
	events  bus.EventBus
	logger  log.Log
	clock   func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

func WithLogger(l log.Log) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithEventBus publishes race events on b. Without it events are dropped.
func WithEventBus(b bus.EventBus) Option {
	return func(e *Engine) { e.events = b }
}

func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Summary is the running tally of a match.
type Summary struct {
	Turns         int
	Laps          [2]int
	BoostsFired   int
	ShieldsRaised int
	RoleSwaps     int
}

// New builds an engine for one match on a closed checkpoint loop.
func New(cfg config.Config, ledger *track.Ledger, opts ...Option) (*Engine, error) {
	if ledger == nil {
		return nil, ErrNilLedger
	}
	if !ledger.Complete() {
		return nil, ErrIncompleteLedger
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e := &Engine{
		ledger:      ledger,
		racer:       strategy.New(strategy.RoleRacer, cfg),
		interceptor: strategy.New(strategy.RoleInterceptor, cfg),
		racerSlot:   -1,
		journal:     NewJournal(cfg.Strategy.JournalSize),
		logger:      log.Nop(),
		clock:       time.Now,
	}
	for slot := range e.mine {
		e.mine[slot] = pod.New(pod.Mine, slot, cfg.Game)
		e.opponents[slot] = pod.New(pod.Opponent, slot, cfg.Game)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Turn ingests one frame and returns the actions of controlled pods 0 and 1.
func (e *Engine) Turn(ctx context.Context, frame pod.Frame) ([2]strategy.Action, error) {
	var actions [2]strategy.Action
	if err := ctx.Err(); err != nil {
		return actions, err
	}
	e.turn++
	e.summary.Turns = e.turn
	logger := e.logger.WithContext(ctx)

	for slot, p := range e.mine {
		if p.UpdateFromTelemetry(frame.Mine[slot]) {
			e.summary.Laps[slot] = p.Lap()
			e.lapCompleted(logger, p)
		}
	}
	for slot, p := range e.opponents {
		if p.UpdateFromTelemetry(frame.Opponents[slot]) {
			e.lapCompleted(logger, p)
		}
	}

	racer, interceptor := pod.Rank(e.mine[0], e.mine[1], e.ledger)
	leader, _ := pod.Rank(e.opponents[0], e.opponents[1], e.ledger)
	if racer.Slot() != e.racerSlot {
		if e.racerSlot >= 0 {
			e.summary.RoleSwaps++
			e.publish(logger, EventRolesSwapped, RolesSwapped{Racer: racer.String(), Interceptor: interceptor.String(), Turn: e.turn})
			logger.Info("roles swapped", log.String("racer", racer.String()), log.Int("turn", e.turn))
		}
		e.racerSlot = racer.Slot()
	}

	for slot, p := range e.mine {
		s := e.interceptor
		if slot == e.racerSlot {
			s = e.racer
		}
		sctx := strategy.Context{
			Ledger:    e.ledger,
			Teammate:  e.mine[1-slot],
			Opponents: e.opponents,
			Leader:    leader,
		}
		start := e.clock()
		action := s.Compute(p, sctx)
		elapsed := e.clock().Sub(start)
		actions[slot] = action

		if action.Boost {
			e.summary.BoostsFired++
			e.publish(logger, EventBoostFired, BoostFired{Pod: action.Pod, Target: action.Target, Turn: e.turn})
			logger.Info("boost fired", log.String("pod", action.Pod), log.Int("turn", e.turn))
		}
		if action.Shield {
			e.summary.ShieldsRaised++
			e.publish(logger, EventShieldRaised, ShieldRaised{Pod: action.Pod, Turn: e.turn})
			logger.Info("shield raised", log.String("pod", action.Pod), log.Int("turn", e.turn))
		}
		e.journal.Append(DecisionRecord{
			Turn:      e.turn,
			Action:    action,
			Leader:    leader.String(),
			Duration:  elapsed,
			Timestamp: e.clock(),
		})
		logger.Debug("decision",
			log.Int("turn", e.turn),
			log.String("pod", action.Pod),
			log.String("role", action.Role.String()),
			log.String("action", action.String()),
		)
	}
	return actions, nil
}

func (e *Engine) lapCompleted(logger log.Log, p *pod.Pod) {
	e.publish(logger, EventLapCompleted, LapCompleted{Pod: p.String(), Lap: p.Lap(), Turn: e.turn})
	logger.Info("lap completed", log.String("pod", p.String()), log.Int("lap", p.Lap()), log.Int("turn", e.turn))
}

// publish never fails the turn; handler errors are only logged.
func (e *Engine) publish(logger log.Log, typ string, data any) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(bus.NewEventAt(typ, eventSource, data, e.clock())); err != nil {
		logger.Warn("event handler failed", log.String("event", typ), log.Error(err))
	}
}

func (e *Engine) Mine(slot int) *pod.Pod     { return e.mine[slot] }
func (e *Engine) Opponent(slot int) *pod.Pod { return e.opponents[slot] }
func (e *Engine) Ledger() *track.Ledger      { return e.ledger }
func (e *Engine) Journal() *Journal          { return e.journal }
func (e *Engine) Turns() int                 { return e.turn }
func (e *Engine) Summary() Summary           { return e.summary }

// RacerSlot is the controlled slot bound to the racer role, or -1 before the
// first turn.
func (e *Engine) RacerSlot() int { return e.racerSlot }
