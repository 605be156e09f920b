package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/zeusync/podracer/internal/config"
	"github.com/zeusync/podracer/internal/injector"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "podracer:", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "podracer"
	app.Usage = "two-pod race bot; reads the game on stdin, answers on stdout, logs on stderr"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "", Usage: "YAML configuration file"},
		cli.StringFlag{Name: "log-level", Value: "", Usage: "Override the configured log level"},
		cli.BoolFlag{Name: "legacy", Usage: "Play the single-pod protocol of the early league"},
	}
	app.Action = func(c *cli.Context) error {
		level := c.String("log-level")
		bot, err := injector.InitializeBot(injector.ConfigPath(c.String("config")), func(cfg *config.Config) {
			if level != "" {
				cfg.Log.Level = level
			}
		})
		if err != nil {
			return err
		}
		defer func() { _ = bot.Logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if c.Bool("legacy") {
			return runLegacy(ctx, bot, os.Stdin, os.Stdout)
		}
		return runRace(ctx, bot, os.Stdin, os.Stdout)
	}
	return app
}
