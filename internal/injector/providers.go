package injector

import (
	"github.com/zeusync/podracer/internal/arena"
	"github.com/zeusync/podracer/internal/config"
	bus "github.com/zeusync/podracer/internal/core/events/bus"
	"github.com/zeusync/podracer/internal/core/observability/log"
)

// ConfigPath is the YAML file to load; empty means defaults.
type ConfigPath string

// Overrides adjusts the loaded configuration, typically from command line flags.
type Overrides func(*config.Config)

// Bot is everything the bot process needs before the init block is read.
type Bot struct {
	Config config.Config
	Logger *log.Logger
	Events bus.EventBus
	Tally  *bus.Counter
}

// Arena is the self-play tool's object graph.
type Arena struct {
	Config config.Config
	Logger *log.Logger
	Runner *arena.Runner
	Tally  *bus.Counter
}

func ProvideConfig(path ConfigPath, overrides Overrides) (config.Config, error) {
	cfg, err := config.LoadFile(string(path))
	if err != nil {
		return config.Config{}, err
	}
	if overrides != nil {
		overrides(&cfg)
		if err = cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func ProvideLogger(cfg config.Config) *log.Logger {
	return log.New(log.Options{
		Level:    log.ParseLevel(cfg.Log.Level),
		Encoding: cfg.Log.Encoding,
	})
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

func ProvideRunner(cfg config.Config, logger *log.Logger, events bus.EventBus) (*arena.Runner, error) {
	return arena.NewRunner(cfg, logger, arena.WithEventBus(events))
}
