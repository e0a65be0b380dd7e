// Package application runs the games: it binds the domain rules to the
// console, the random source and the logger.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/console-games/console"
	"github.com/luca-patrignani/console-games/domain/guesser"
	"github.com/luca-patrignani/console-games/random"
)

var ErrTooManyRetries = errors.New("too many invalid answers")

type Settings struct {
	// MaxRetries bounds consecutive rejected answers to one prompt; zero
	// means no bound.
	MaxRetries    int
	Strategy      guesser.Strategy
	Lives         int
	MaxWordLength int
	Words         []string
}

type GameOrchestrator struct {
	console  *console.Console
	rnd      random.Source
	logger   *slog.Logger
	settings Settings
}

func NewGameOrchestrator(c *console.Console, rnd random.Source, logger *slog.Logger, s Settings) *GameOrchestrator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GameOrchestrator{console: c, rnd: rnd, logger: logger, settings: s}
}

// ask repeats message until parse accepts the answer. Each rejection is shown
// to the player; after MaxRetries of them in a row it gives up.
func ask[T any](ctx context.Context, o *GameOrchestrator, message string, parse func(string) (T, error)) (T, error) {
	var zero T
	rejected := 0
	for {
		answer, err := o.console.Prompt(ctx, message)
		if err != nil {
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		rejected++
		o.logger.Debug("answer rejected", "answer", answer, "attempt", rejected, "error", err.Error())
		if o.settings.MaxRetries > 0 && rejected > o.settings.MaxRetries {
			return zero, fmt.Errorf("%w: %w", ErrTooManyRetries, err)
		}
		o.console.Error("%s", err)
	}
}
