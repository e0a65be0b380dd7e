package application

import (
	"context"
	"strings"

	"github.com/luca-patrignani/console-games/domain/hangman"
)

type HangmanResult struct {
	Word  string
	Won   bool
	Lives int
}

func (o *GameOrchestrator) PlayHangman(ctx context.Context) (HangmanResult, error) {
	word, err := hangman.PickWord(o.settings.Words, o.rnd, o.settings.MaxWordLength)
	if err != nil {
		return HangmanResult{}, err
	}
	game, err := hangman.New(word, o.settings.Lives)
	if err != nil {
		return HangmanResult{}, err
	}
	o.logger.Debug("hangman started", "letters", len(word), "lives", game.Lives())
	o.console.Info("The word has %d letters.", len(word))

	for !game.Won() && !game.Lost() {
		hit, err := ask(ctx, o, "Guess a letter:", game.Guess)
		if err != nil {
			return HangmanResult{}, err
		}
		if hit {
			o.console.Success("Good guess!")
		} else {
			o.console.Warning("Wrong guess! You lost a life.")
		}
		o.console.Info("You have %d lives remaining and have used: %s", game.Lives(), strings.Join(game.Used(), " "))
		o.console.Println(game.Illustration())
		o.console.Info("Word: %s", game.Masked())
	}

	res := HangmanResult{Word: game.Word(), Won: game.Won(), Lives: game.Lives()}
	if res.Won {
		o.console.Success("Congratulations, you guessed the word %s correctly!", res.Word)
	} else {
		o.console.Error("Oops, you have no more lives. The word was %s.", res.Word)
	}
	o.logger.Debug("hangman finished", "won", res.Won, "lives", res.Lives)
	return res, nil
}
