//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	bus "github.com/zeusync/podracer/internal/core/events/bus"
)

var baseSet = wire.NewSet(ProvideConfig, ProvideLogger, ProvideEventBus, bus.NewCounter)

func InitializeBot(path ConfigPath, overrides Overrides) (*Bot, error) {
	wire.Build(baseSet, wire.Struct(new(Bot), "*"))
	return nil, nil
}

func InitializeArena(path ConfigPath, overrides Overrides) (*Arena, error) {
	wire.Build(baseSet, ProvideRunner, wire.Struct(new(Arena), "*"))
	return nil, nil
}
