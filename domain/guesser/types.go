package guesser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrInvalidBound    = errors.New("upper bound must be at least 1")
	ErrConverged       = errors.New("guesser already converged")
	ErrNoCandidate     = errors.New("no candidate proposed")
	ErrNoRand          = errors.New("no random source")
)

// Rand is the source of randomness used to pick candidates.
// IntN returns a value in [0, n).
type Rand interface {
	IntN(n int) int
}

type Feedback int

const (
	TooHigh Feedback = iota + 1
	TooLow
	Correct
)

func (f Feedback) String() string {
	switch f {
	case TooHigh:
		return "too high"
	case TooLow:
		return "too low"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// ParseFeedback maps a player's answer to a Feedback value.
// Accepted tokens are h, l and c in any case.
func ParseFeedback(s string) (Feedback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h":
		return TooHigh, nil
	case "l":
		return TooLow, nil
	case "c":
		return Correct, nil
	}
	return 0, fmt.Errorf("%w: %q is not one of H, L or C", ErrInvalidFeedback, strings.TrimSpace(s))
}

type State int

const (
	Narrowing State = iota
	Converged
)

func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "narrowing"
}

// Range is the closed interval of values still considered possible.
type Range struct {
	Low  int
	High int
}

func (r Range) Size() int {
	return r.High - r.Low + 1
}

func (r Range) Contains(n int) bool {
	return n >= r.Low && n <= r.High
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Low, r.High)
}
