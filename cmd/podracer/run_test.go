package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/podracer/internal/config"
	bus "github.com/zeusync/podracer/internal/core/events/bus"
	"github.com/zeusync/podracer/internal/core/observability/log"
	"github.com/zeusync/podracer/internal/injector"
	"github.com/zeusync/podracer/internal/protocol"
)

func testBot(t *testing.T) *injector.Bot {
	t.Helper()
	b := bus.New()
	tally, err := bus.NewCounter(b)
	require.NoError(t, err)
	return &injector.Bot{Config: config.Default(), Logger: log.Nop(), Events: b, Tally: tally}
}

func TestRunRaceAnswersEveryFrame(t *testing.T) {
	in := strings.Join([]string{
		"3", "3",
		"1000 0", "12000 0", "6000 3000",
		"2000 500 0 0 -1 1", "2000 -500 0 0 -1 1", "2000 1500 0 0 -1 1", "2000 -1500 0 0 -1 1",
		"2100 500 85 0 0 1", "2100 -500 85 0 0 1", "2100 1500 85 0 0 1", "2100 -1500 85 0 0 1",
	}, "\n") + "\n"

	var out bytes.Buffer
	bot := testBot(t)
	require.NoError(t, runRace(context.Background(), bot, strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	// both pods start free to face the best-boost checkpoint
	assert.Equal(t, "12000 0 BOOST", lines[0])
	assert.Equal(t, "12000 0 BOOST", lines[1])
	for _, l := range lines {
		assert.Len(t, strings.Fields(l), 3)
	}
	assert.Equal(t, uint64(2), bot.Tally.Count("boost.fired"))
}

func TestRunRaceRejectsBadInput(t *testing.T) {
	err := runRace(context.Background(), testBot(t), strings.NewReader("3\n3\n1 2\n"), &bytes.Buffer{})
	assert.Error(t, err)

	in := "3\n2\n0 0\n5000 0\n1 2 3\n"
	err = runRace(context.Background(), testBot(t), strings.NewReader(in), &bytes.Buffer{})
	assert.ErrorIs(t, err, protocol.ErrMalformedLine)
}

func TestRunLegacy(t *testing.T) {
	in := "0 0 5000 0 5000 0\n100 100\n300 0 5000 0 4700 -100\n100 100\n"
	var out bytes.Buffer
	require.NoError(t, runLegacy(context.Background(), testBot(t), strings.NewReader(in), &out))
	assert.Equal(t, "5000 0 BOOST\n5000 0 0\n", out.String())
}
