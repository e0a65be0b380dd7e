package application

import (
	"context"
	"fmt"

	"github.com/luca-patrignani/console-games/domain/numguess"
)

type NumberGuessResult struct {
	Target   int
	Attempts int
}

// PlayNumberGuess has the player find the computer's number in [1, upper].
func (o *GameOrchestrator) PlayNumberGuess(ctx context.Context, upper int) (NumberGuessResult, error) {
	game, err := numguess.New(upper, o.rnd)
	if err != nil {
		return NumberGuessResult{}, err
	}
	o.logger.Debug("number guess started", "upper", game.Upper())

	prompt := fmt.Sprintf("Guess a number between 1 and %d (both inclusive):", game.Upper())
	for !game.Finished() {
		outcome, err := ask(ctx, o, prompt, func(s string) (numguess.Outcome, error) {
			n, err := numguess.ParseGuess(s)
			if err != nil {
				return 0, err
			}
			return game.Guess(n)
		})
		if err != nil {
			return NumberGuessResult{}, err
		}
		switch outcome {
		case numguess.TooLow:
			o.console.Warning("Oops, too low.")
		case numguess.TooHigh:
			o.console.Warning("Oops, too high.")
		}
	}

	target, _ := game.Target()
	res := NumberGuessResult{Target: target, Attempts: game.Attempts()}
	o.console.Success("Congrats! %d is the right guess! It took you %d attempts.", res.Target, res.Attempts)
	o.logger.Debug("number guess finished", "target", res.Target, "attempts", res.Attempts)
	return res, nil
}
