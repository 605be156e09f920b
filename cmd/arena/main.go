package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/injector"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "arena"
	app.Usage = "play seeded local matches of the bot against a baseline or itself"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "", Usage: "YAML configuration file"},
		cli.IntFlag{Name: "matches", Usage: "Number of matches (default from config)"},
		cli.IntFlag{Name: "parallel", Usage: "Matches played at once (default from config)"},
		cli.Int64Flag{Name: "seed", Usage: "Seed of the first match (default from config)"},
		cli.StringFlag{Name: "opponent", Usage: "baseline or self (default from config)"},
		cli.StringFlag{Name: "trace-dir", Usage: "Write a protocol trace per match to this directory"},
	}
	app.Action = func(c *cli.Context) error {
		a, err := injector.InitializeArena(injector.ConfigPath(c.String("config")), func(cfg *config.Config) {
			if c.IsSet("matches") {
				cfg.Arena.Matches = c.Int("matches")
			}
			if c.IsSet("parallel") {
				cfg.Arena.Parallel = c.Int("parallel")
			}
			if c.IsSet("seed") {
				cfg.Arena.Seed = c.Int64("seed")
			}
			if c.IsSet("opponent") {
				cfg.Arena.Opponent = c.String("opponent")
			}
			if c.IsSet("trace-dir") {
				cfg.Arena.TraceDir = c.String("trace-dir")
			}
		})
		if err != nil {
			return err
		}
		defer func() { _ = a.Logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err := a.Runner.Run(ctx)
		if err != nil {
			return err
		}
		fields := []log.Field{
			log.Int("matches", len(report.Results)),
			log.Int("wins", report.Wins),
			log.Int("losses", report.Losses),
			log.Float64("win_rate", report.WinRate()),
			log.Float64("avg_turns", report.AverageTurns()),
			log.String("opponent", a.Config.Arena.Opponent),
		}
		for _, typ := range a.Tally.Types() {
			fields = append(fields, log.Uint64(typ, a.Tally.Count(typ)))
		}
		a.Logger.Info("arena finished", fields...)
		fmt.Printf("%d/%d wins (%.0f%%), %.1f turns on average\n",
			report.Wins, len(report.Results), 100*report.WinRate(), report.AverageTurns())
		return nil
	}
	return app
}
