// Package rps implements rock, paper, scissors against the computer.
package rps

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidChoice = errors.New("invalid choice")

type Rand interface {
	IntN(n int) int
}

type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

var choices = []Choice{Rock, Paper, Scissors}

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// ParseChoice accepts r, p or s in any case.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r":
		return Rock, nil
	case "p":
		return Paper, nil
	case "s":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q, type r, p or s", ErrInvalidChoice, strings.TrimSpace(s))
}

func RandomChoice(rnd Rand) Choice {
	return choices[rnd.IntN(len(choices))]
}

// Beats reports whether a wins against b: rock > scissors, paper > rock,
// scissors > paper.
func Beats(a, b Choice) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}

type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "tie"
}

// Play scores a round from the user's point of view.
func Play(user, bot Choice) Outcome {
	switch {
	case user == bot:
		return Tie
	case Beats(user, bot):
		return Win
	}
	return Lose
}

// Tally counts the outcomes of the current session.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

func (t *Tally) Add(o Outcome) {
	switch o {
	case Win:
		t.Wins++
	case Lose:
		t.Losses++
	default:
		t.Ties++
	}
}

func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Ties
}

func (t Tally) String() string {
	return fmt.Sprintf("%d won, %d lost, %d tied", t.Wins, t.Losses, t.Ties)
}
