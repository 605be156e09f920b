package arena

import (
	"context"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/pod"
	"github.com/zeusync/podracer/internal/core/strategy"
	"github.com/zeusync/podracer/internal/core/track"
)

// player decides both pods of one side. *engine.Engine satisfies it.
type player interface {
	Turn(ctx context.Context, f pod.Frame) ([2]strategy.Action, error)
}

// baselinePlayer runs the early-league bot on both pods, with no teamwork.
type baselinePlayer struct {
	pods   [2]*pod.Pod
	bot    strategy.Baseline
	ledger *track.Ledger
}

func newBaselinePlayer(cfg config.Config, ledger *track.Ledger) *baselinePlayer {
	p := &baselinePlayer{bot: strategy.NewBaseline(cfg.Game), ledger: ledger}
	for slot := range p.pods {
		p.pods[slot] = pod.New(pod.Mine, slot, cfg.Game)
	}
	return p
}

func (p *baselinePlayer) Turn(ctx context.Context, f pod.Frame) ([2]strategy.Action, error) {
	var actions [2]strategy.Action
	if err := ctx.Err(); err != nil {
		return actions, err
	}
	for slot, bp := range p.pods {
		bp.UpdateFromTelemetry(f.Mine[slot])
		actions[slot] = p.bot.Compute(bp, p.ledger)
	}
	return actions, nil
}
