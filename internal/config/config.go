package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full bot configuration. It is loaded once at startup and copied
// by value into every component; nothing mutates it afterwards.
type Config struct {
	Game     Game     `json:"game" yaml:"game"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Log      Log      `json:"log" yaml:"log"`
	Arena    Arena    `json:"arena" yaml:"arena"`
}

// Game holds the rules of the contest the strategy depends on.
type Game struct {
	CheckpointRadius float64 `json:"checkpoint_radius" yaml:"checkpoint_radius"`
	PodRadius        float64 `json:"pod_radius" yaml:"pod_radius"`
	MaxThrust        int     `json:"max_thrust" yaml:"max_thrust"`
	ShieldCooldown   int     `json:"shield_cooldown" yaml:"shield_cooldown"`
	Boosts           int     `json:"boosts" yaml:"boosts"`
}

// Strategy holds the tuning thresholds of the racer and interceptor roles.
type Strategy struct {
	FullThrustAngle    float64 `json:"full_thrust_angle" yaml:"full_thrust_angle"`
	FullThrustDistance float64 `json:"full_thrust_distance" yaml:"full_thrust_distance"`
	BrakeAngle         float64 `json:"brake_angle" yaml:"brake_angle"`
	DriftFactor        int     `json:"drift_factor" yaml:"drift_factor"`
	LookaheadDistance  float64 `json:"lookahead_distance" yaml:"lookahead_distance"`
	BeneficialDot      float64 `json:"beneficial_dot" yaml:"beneficial_dot"`
	InterceptLead      int     `json:"intercept_lead" yaml:"intercept_lead"`
	JournalSize        int     `json:"journal_size" yaml:"journal_size"`
}

type Log struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Arena configures local self-play.
type Arena struct {
	Matches  int    `json:"matches" yaml:"matches"`
	Parallel int    `json:"parallel" yaml:"parallel"`
	Seed     int64  `json:"seed" yaml:"seed"`
	Laps     int    `json:"laps" yaml:"laps"`
	MaxTurns int    `json:"max_turns" yaml:"max_turns"`
	Opponent string `json:"opponent" yaml:"opponent"`
	// TraceDir, when set, receives one protocol trace per match.
	TraceDir string `json:"trace_dir" yaml:"trace_dir"`
}

// Default returns the configuration matching the official game rules.
func Default() Config {
	return Config{
		Game: Game{
			CheckpointRadius: 600,
			PodRadius:        420,
			MaxThrust:        100,
			ShieldCooldown:   3,
			Boosts:           1,
		},
		Strategy: Strategy{
			FullThrustAngle:    2,
			FullThrustDistance: 650,
			BrakeAngle:         90,
			DriftFactor:        3,
			LookaheadDistance:  1400,
			BeneficialDot:      0.5,
			InterceptLead:      3,
			JournalSize:        1024,
		},
		Log: Log{
			Level:    "info",
			Encoding: "console",
		},
		Arena: Arena{
			Matches:  20,
			Parallel: 4,
			Seed:     1,
			Laps:     3,
			MaxTurns: 500,
			Opponent: "baseline",
		},
	}
}

// LoadYAML decodes a YAML document on top of the defaults, so a file only needs
// the keys it overrides.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads a YAML config file. An empty path yields the defaults.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadYAML(f)
}

// Validate checks that every value is usable by the strategy code.
func (c Config) Validate() error {
	var errs []error
	if c.Game.CheckpointRadius <= 0 {
		errs = append(errs, fmt.Errorf("game.checkpoint_radius must be positive"))
	}
	if c.Game.PodRadius <= 0 {
		errs = append(errs, fmt.Errorf("game.pod_radius must be positive"))
	}
	if c.Game.MaxThrust <= 0 {
		errs = append(errs, fmt.Errorf("game.max_thrust must be positive"))
	}
	if c.Game.ShieldCooldown < 0 {
		errs = append(errs, fmt.Errorf("game.shield_cooldown must not be negative"))
	}
	if c.Game.Boosts < 0 {
		errs = append(errs, fmt.Errorf("game.boosts must not be negative"))
	}
	if c.Strategy.BrakeAngle <= 0 || c.Strategy.BrakeAngle > 180 {
		errs = append(errs, fmt.Errorf("strategy.brake_angle must be in (0,180]"))
	}
	if c.Strategy.FullThrustAngle < 0 {
		errs = append(errs, fmt.Errorf("strategy.full_thrust_angle must not be negative"))
	}
	if c.Strategy.FullThrustDistance < 0 {
		errs = append(errs, fmt.Errorf("strategy.full_thrust_distance must not be negative"))
	}
	if c.Strategy.DriftFactor < 0 {
		errs = append(errs, fmt.Errorf("strategy.drift_factor must not be negative"))
	}
	if c.Strategy.InterceptLead < 0 {
		errs = append(errs, fmt.Errorf("strategy.intercept_lead must not be negative"))
	}
	if c.Strategy.LookaheadDistance < 0 {
		errs = append(errs, fmt.Errorf("strategy.lookahead_distance must not be negative"))
	}
	if c.Strategy.BeneficialDot < -1 || c.Strategy.BeneficialDot > 1 {
		errs = append(errs, fmt.Errorf("strategy.beneficial_dot must be in [-1,1]"))
	}
	if c.Strategy.JournalSize <= 0 {
		errs = append(errs, fmt.Errorf("strategy.journal_size must be positive"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn, error or fatal, got %q", c.Log.Level))
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.encoding must be console or json, got %q", c.Log.Encoding))
	}
	if c.Arena.Matches < 0 || c.Arena.Parallel < 0 || c.Arena.Laps <= 0 || c.Arena.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("arena: matches and parallel must not be negative, laps and max_turns must be positive"))
	}
	switch c.Arena.Opponent {
	case "baseline", "self":
	default:
		errs = append(errs, fmt.Errorf("arena.opponent must be baseline or self, got %q", c.Arena.Opponent))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
