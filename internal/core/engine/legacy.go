package engine

import (
	"context"
	"math"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/geometry"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
	"github.com/zeusync/podracer/internal/core/track"
)

// Legacy drives the single controlled pod of the early league. The loop is
// learned while driving it, through Ledger.Discover.
type Legacy struct {
	ledger   *track.Ledger
	pod      *pod.Pod
	baseline strategy.Baseline
	logger   log.Log
	turn     int
	previous pod.LegacyFrame
}

func NewLegacy(cfg config.Config, logger log.Log) *Legacy {
	if logger == nil {
		logger = log.Nop()
	}
	return &Legacy{
		ledger:   track.NewDiscoveryLedger(),
		pod:      pod.New(pod.Mine, 0, cfg.Game),
		baseline: strategy.NewBaseline(cfg.Game),
		logger:   logger,
	}
}

func (g *Legacy) Turn(ctx context.Context, f pod.LegacyFrame) (strategy.Action, error) {
	if err := ctx.Err(); err != nil {
		return strategy.Action{}, err
	}
	logger := g.logger.WithContext(ctx)
	wasComplete := g.ledger.Complete()
	g.ledger.Discover(f.Checkpoint)
	if !wasComplete && g.ledger.Complete() {
		best, _ := g.ledger.BestBoost()
		logger.Info("checkpoint loop closed",
			log.Int("checkpoints", g.ledger.Count()),
			log.Int("best_boost", best.Index),
			log.Uint64("fingerprint", g.ledger.Fingerprint()),
		)
	}

	var velocity geometry.Point
	if g.turn > 0 {
		velocity = f.Position.Sub(g.previous.Position)
	}
	g.turn++
	g.previous = f
	lap := g.pod.UpdateFromTelemetry(pod.Telemetry{
		Position: f.Position,
		Velocity: velocity,
		// facing is only known relative to the checkpoint
		Angle:          -1,
		NextCheckpoint: g.ledger.Current(),
	})
	if lap {
		logger.Info("lap completed", log.Int("lap", g.pod.Lap()), log.Int("turn", g.turn))
	}

	action := g.baseline.Steer(g.pod, f.Checkpoint, math.Abs(float64(f.CheckpointAngle)), float64(f.CheckpointDistance))
	logger.Debug("decision", log.Int("turn", g.turn), log.String("action", action.String()))
	return action, nil
}

func (g *Legacy) Ledger() *track.Ledger { return g.ledger }
func (g *Legacy) Pod() *pod.Pod         { return g.pod }
