package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/console-games/domain/rps"
)

var errPlayOrQuit = errors.New("type P to play again or Q to quit")

func parsePlayAgain(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p":
		return true, nil
	case "q":
		return false, nil
	}
	return false, fmt.Errorf("%w, got %q", errPlayOrQuit, strings.TrimSpace(s))
}

// PlayRockPaperScissors plays rounds until the player quits and returns the
// session tally.
func (o *GameOrchestrator) PlayRockPaperScissors(ctx context.Context) (rps.Tally, error) {
	var tally rps.Tally
	o.logger.Debug("rock paper scissors started")
	for {
		user, err := ask(ctx, o, "Make your choice! 'r' for rock, 'p' for paper, 's' for scissors:", rps.ParseChoice)
		if err != nil {
			return tally, err
		}
		bot := rps.RandomChoice(o.rnd)
		outcome := rps.Play(user, bot)
		tally.Add(outcome)

		switch outcome {
		case rps.Win:
			o.console.Success("Congratulations! You won.")
		case rps.Lose:
			o.console.Warning("Oops, you lose.")
		default:
			o.console.Info("It's a tie!")
		}
		o.console.Describe("Your choice: %s, computer's choice: %s", user, bot)
		o.logger.Debug("round played", "user", user.String(), "bot", bot.String(), "outcome", outcome.String())

		again, err := ask(ctx, o, "Press P to play again or Q to quit:", parsePlayAgain)
		if err != nil {
			return tally, err
		}
		if !again {
			break
		}
	}
	o.console.Success("Thanks for playing!")
	o.console.Box("SCORE", tally.String())
	return tally, nil
}
