package guesser

import "fmt"

type guesserOption func(Guesser) Guesser

func WithStrategy(s Strategy) guesserOption {
	return func(g Guesser) Guesser {
		if s != nil {
			g.strategy = s
		}
		return g
	}
}

type Guesser struct {
	rnd        Rand
	strategy   Strategy
	rng        Range
	candidate  int
	pending    bool
	state      State
	iterations int
}

// New returns a Guesser narrowing [1, upper]. rnd is required even when the
// strategy never draws from it.
func New(upper int, rnd Rand, opts ...guesserOption) (*Guesser, error) {
	if upper < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBound, upper)
	}
	if rnd == nil {
		return nil, ErrNoRand
	}
	g := Guesser{
		rnd:      rnd,
		strategy: RandomStrategy,
		rng:      Range{Low: 1, High: upper},
		state:    Narrowing,
	}
	for _, opt := range opts {
		g = opt(g)
	}
	return &g, nil
}

// Next proposes the candidate for the current iteration. Until feedback is
// applied it keeps returning the same value.
func (g *Guesser) Next() (int, error) {
	if g.state == Converged {
		return 0, ErrConverged
	}
	if g.pending {
		return g.candidate, nil
	}
	if g.rng.Low == g.rng.High {
		g.candidate = g.rng.Low
	} else {
		g.candidate = g.strategy(g.rng, g.rnd)
		if !g.rng.Contains(g.candidate) {
			return 0, fmt.Errorf("strategy picked %d outside %s", g.candidate, g.rng)
		}
	}
	g.pending = true
	g.iterations++
	return g.candidate, nil
}

// Apply consumes the feedback for the pending candidate.
func (g *Guesser) Apply(fb Feedback) error {
	if g.state == Converged {
		return ErrConverged
	}
	if !g.pending {
		return ErrNoCandidate
	}
	// The bound checks come before the arithmetic so that candidate±1
	// never wraps around at the integer limits.
	next := g.rng
	switch fb {
	case Correct:
		g.state = Converged
		g.rng = Range{Low: g.candidate, High: g.candidate}
		g.pending = false
		return nil
	case TooHigh:
		if g.candidate <= g.rng.Low {
			return g.contradiction(fb)
		}
		next.High = g.candidate - 1
	case TooLow:
		if g.candidate >= g.rng.High {
			return g.contradiction(fb)
		}
		next.Low = g.candidate + 1
	default:
		return fmt.Errorf("%w: unknown value %d", ErrInvalidFeedback, int(fb))
	}
	g.rng = next
	g.pending = false
	return nil
}

func (g *Guesser) contradiction(fb Feedback) error {
	return fmt.Errorf("%w: %d cannot be %s, no values left in %s", ErrInvalidFeedback, g.candidate, fb, g.rng)
}

func (g *Guesser) Range() Range {
	return g.rng
}

func (g *Guesser) State() State {
	return g.state
}

// Iterations counts the candidates proposed so far.
func (g *Guesser) Iterations() int {
	return g.iterations
}

// Candidate returns the last proposed value and whether one was ever proposed.
func (g *Guesser) Candidate() (int, bool) {
	return g.candidate, g.iterations > 0
}
