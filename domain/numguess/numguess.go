// Package numguess is the classic game where the player guesses a number
// the computer picked.
package numguess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNonNumeric   = errors.New("not a whole number")
	ErrOutOfRange   = errors.New("guess out of range")
	ErrFinished     = errors.New("game already finished")
	ErrInvalidBound = errors.New("upper bound must be at least 1")
)

type Rand interface {
	IntN(n int) int
}

type Outcome int

const (
	TooLow Outcome = iota + 1
	TooHigh
	Correct
)

func (o Outcome) String() string {
	switch o {
	case TooLow:
		return "too low"
	case TooHigh:
		return "too high"
	case Correct:
		return "correct"
	}
	return "unknown"
}

type Game struct {
	upper    int
	target   int
	attempts int
	finished bool
}

// New picks a target uniformly in [1, upper].
func New(upper int, rnd Rand) (*Game, error) {
	if upper < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBound, upper)
	}
	return &Game{upper: upper, target: rnd.IntN(upper) + 1}, nil
}

func ParseGuess(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	return n, nil
}

// Guess compares n with the target. Out of range guesses are not counted.
func (g *Game) Guess(n int) (Outcome, error) {
	if g.finished {
		return 0, ErrFinished
	}
	if n < 1 || n > g.upper {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrOutOfRange, n, g.upper)
	}
	g.attempts++
	switch {
	case n < g.target:
		return TooLow, nil
	case n > g.target:
		return TooHigh, nil
	}
	g.finished = true
	return Correct, nil
}

func (g *Game) Upper() int {
	return g.upper
}

func (g *Game) Attempts() int {
	return g.attempts
}

func (g *Game) Finished() bool {
	return g.finished
}

// Target is only revealed once the game is over.
func (g *Game) Target() (int, bool) {
	return g.target, g.finished
}
