package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/zeusync/podracer/internal/core/engine"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/core/track"
	"github.com/zeusync/podracer/internal/injector"
	"github.com/zeusync/podracer/internal/protocol"
)

// runRace plays the two-pod protocol until the input ends.
func runRace(ctx context.Context, bot *injector.Bot, in io.Reader, out io.Writer) error {
	r := protocol.NewReader(in)
	w := protocol.NewWriter(out)

	setup, err := r.ReadInit()
	if err != nil {
		return fmt.Errorf("read init: %w", err)
	}
	ledger, err := track.NewLedger(setup.Checkpoints)
	if err != nil {
		return err
	}
	e, err := engine.New(bot.Config, ledger, engine.WithLogger(bot.Logger), engine.WithEventBus(bot.Events))
	if err != nil {
		return err
	}
	best, _ := ledger.BestBoost()
	bot.Logger.Info("race started",
		log.Int("laps", setup.Laps),
		log.Int("checkpoints", ledger.Count()),
		log.Int("best_boost", best.Index),
		log.Uint64("map", ledger.Fingerprint()),
	)

	for {
		frame, err := r.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		actions, err := e.Turn(ctx, frame)
		if err != nil {
			return err
		}
		if err = w.WriteActions(actions[:]...); err != nil {
			return fmt.Errorf("write actions: %w", err)
		}
	}

	s := e.Summary()
	bot.Logger.Info("race over",
		log.Int("turns", s.Turns),
		log.Int("boosts", s.BoostsFired),
		log.Int("shields", s.ShieldsRaised),
		log.Int("role_swaps", s.RoleSwaps),
		log.Uint64("laps_completed", bot.Tally.Count(engine.EventLapCompleted)),
	)
	return nil
}

// runLegacy plays the single-pod protocol until the input ends.
func runLegacy(ctx context.Context, bot *injector.Bot, in io.Reader, out io.Writer) error {
	r := protocol.NewReader(in)
	w := protocol.NewWriter(out)
	g := engine.NewLegacy(bot.Config, bot.Logger)
	for {
		frame, err := r.ReadLegacyFrame()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		action, err := g.Turn(ctx, frame)
		if err != nil {
			return err
		}
		if err = w.WriteActions(action); err != nil {
			return fmt.Errorf("write action: %w", err)
		}
	}
}
