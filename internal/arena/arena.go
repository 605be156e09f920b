package arena

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/engine"
	bus "github.com/zeusync/podracer/internal/core/events/bus"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
	"github.com/zeusync/podracer/internal/core/track"
	"github.com/zeusync/podracer/internal/protocol"
	"github.com/zeusync/podracer/internal/sim"
)

const (
	OpponentBaseline = "baseline"
	OpponentSelf     = "self"
)

// Result is the outcome of one match from the bot's side.
type Result struct {
	ID       string
	Seed     int64
	Map      uint64
	Side     int
	Won      bool
	Turns    int
	Summary  engine.Summary
	Duration time.Duration
}

// Report aggregates the matches of one run, in seed order.
type Report struct {
	Results []Result
	Wins    int
	Losses  int
	Turns   int
}

func (r Report) WinRate() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Wins) / float64(len(r.Results))
}

func (r Report) AverageTurns() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Turns) / float64(len(r.Results))
}

// Runner plays seeded matches of the bot against an opponent.
type Runner struct {
	cfg      config.Config
	logger   log.Log
	events   bus.EventBus
	traceDir string
}

type Option func(*Runner)

// WithEventBus shares b between the engines of every match. Handlers must be
// safe for concurrent use when matches run in parallel.
func WithEventBus(b bus.EventBus) Option {
	return func(r *Runner) { r.events = b }
}

// WithTraceDir writes the bot's view of every match, in the game protocol, to
// <dir>/<match id>.log.
func WithTraceDir(dir string) Option {
	return func(r *Runner) { r.traceDir = dir }
}

func NewRunner(cfg config.Config, logger log.Log, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if logger == nil {
		logger = log.Nop()
	}
	r := &Runner{cfg: cfg, logger: logger, traceDir: cfg.Arena.TraceDir}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run plays cfg.Arena.Matches matches, at most cfg.Arena.Parallel at a time.
// Match i uses seed cfg.Arena.Seed+i.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	n := r.cfg.Arena.Matches
	results := make([]Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.cfg.Arena.Parallel))
	for i := 0; i < n; i++ {
		seed := r.cfg.Arena.Seed + int64(i)
		g.Go(func() error {
			res, err := r.Play(ctx, seed)
			if err != nil {
				return fmt.Errorf("match seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Results: results}
	for _, res := range results {
		if res.Won {
			report.Wins++
		} else {
			report.Losses++
		}
		report.Turns += res.Turns
	}
	return report, nil
}

// Play runs one match. The bot takes side seed%2 so spawn slots alternate.
func (r *Runner) Play(ctx context.Context, seed int64) (res Result, err error) {
	start := time.Now()
	id := uuid.NewString()
	ctx = log.ContextWithMatch(ctx, id)
	logger := r.logger.WithContext(ctx)

	rng := rand.New(rand.NewSource(seed))
	m, err := sim.NewMatch(sim.RandomMap(rng), r.cfg.Arena.Laps, r.cfg.Arena.MaxTurns)
	if err != nil {
		return Result{}, err
	}
	ledger, err := track.NewLedger(m.Checkpoints())
	if err != nil {
		return Result{}, err
	}
	bot, err := engine.New(r.cfg, ledger, engine.WithLogger(r.logger), engine.WithEventBus(r.events))
	if err != nil {
		return Result{}, err
	}
	rival, err := r.opponent(ledger)
	if err != nil {
		return Result{}, err
	}

	side := int(seed % 2)
	if side < 0 {
		side = -side
	}
	var players [2]player
	players[side], players[1-side] = bot, rival

	var trace *protocol.Writer
	if r.traceDir != "" {
		var f *os.File
		if f, err = os.Create(filepath.Join(r.traceDir, id+".log")); err != nil {
			return Result{}, fmt.Errorf("create trace: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		trace = protocol.NewWriter(f)
		if err = trace.WriteInit(protocol.Init{Laps: m.Laps(), Checkpoints: m.Checkpoints()}); err != nil {
			return Result{}, err
		}
	}

	logger.Debug("match started", log.Int64("seed", seed), log.Int("side", side), log.Uint64("map", ledger.Fingerprint()))
	for !m.Over() {
		var moves [4]sim.Move
		for p, pl := range players {
			frame := m.Frame(p)
			actions, err := pl.Turn(ctx, frame)
			if err != nil {
				return Result{}, err
			}
			if trace != nil && p == side {
				if err := traceTurn(trace, frame, actions); err != nil {
					return Result{}, err
				}
			}
			for slot, a := range actions {
				moves[p*2+slot] = sim.MoveOf(a)
			}
		}
		if err := m.Step(moves); err != nil {
			return Result{}, err
		}
	}

	res = Result{
		ID:       id,
		Seed:     seed,
		Map:      ledger.Fingerprint(),
		Side:     side,
		Won:      m.Winner() == side,
		Turns:    m.Turn(),
		Summary:  bot.Summary(),
		Duration: time.Since(start),
	}
	logger.Info("match finished",
		log.Int64("seed", seed),
		log.Bool("won", res.Won),
		log.Int("turns", res.Turns),
		log.Int("boosts", res.Summary.BoostsFired),
		log.Int("shields", res.Summary.ShieldsRaised),
		log.Duration("elapsed", res.Duration),
	)
	return res, nil
}

func (r *Runner) opponent(ledger *track.Ledger) (player, error) {
	switch r.cfg.Arena.Opponent {
	case OpponentBaseline:
		return newBaselinePlayer(r.cfg, ledger), nil
	case OpponentSelf:
		e, err := engine.New(r.cfg, ledger)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, r.cfg.Arena.Opponent)
	}
}

func traceTurn(w *protocol.Writer, frame pod.Frame, actions [2]strategy.Action) error {
	if err := w.WriteFrame(frame); err != nil {
		return err
	}
	return w.WriteActions(actions[:]...)
}
