package application

import (
	"context"
	"fmt"

	"github.com/luca-patrignani/console-games/domain/guesser"
)

type ComputerGuessResult struct {
	Answer  int
	Guesses int
}

// PlayComputerGuess lets the computer find the player's number in [1, upper].
func (o *GameOrchestrator) PlayComputerGuess(ctx context.Context, upper int) (ComputerGuessResult, error) {
	g, err := guesser.New(upper, o.rnd, guesser.WithStrategy(o.settings.Strategy))
	if err != nil {
		return ComputerGuessResult{}, err
	}
	o.logger.Debug("computer guess started", "upper", upper)
	o.console.Info("Think of a number between 1 and %d. I will try to guess it.", upper)

	for g.State() != guesser.Converged {
		candidate, err := g.Next()
		if err != nil {
			return ComputerGuessResult{}, err
		}
		prompt := fmt.Sprintf("Is %d too high (H), too low (L) or correct (C)?", candidate)
		fb, err := ask(ctx, o, prompt, func(s string) (guesser.Feedback, error) {
			fb, err := guesser.ParseFeedback(s)
			if err != nil {
				return 0, err
			}
			return fb, g.Apply(fb)
		})
		if err != nil {
			return ComputerGuessResult{}, err
		}
		o.logger.Debug("feedback applied", "candidate", candidate, "feedback", fb.String(), "range", g.Range().String())
	}

	answer, _ := g.Candidate()
	res := ComputerGuessResult{Answer: answer, Guesses: g.Iterations()}
	o.console.Success("Congratulations! The computer guessed your number, %d, correctly in %d guesses.", res.Answer, res.Guesses)
	o.logger.Debug("computer guess finished", "answer", res.Answer, "guesses", res.Guesses)
	return res, nil
}
