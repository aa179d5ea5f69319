package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite bundles what a test needs to drive the game through a scripted terminal.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input  io.Reader
	Output *bytes.Buffer
}

// New - creates a suite whose input yields the given lines, one per read.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelInfo
	if testing.Verbose() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var input string
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Input:  strings.NewReader(input),
		Output: &bytes.Buffer{},
	}
}
