package guesser

// Strategy picks a candidate from a range holding at least two values.
type Strategy func(r Range, rnd Rand) int

// RandomStrategy draws uniformly from [Low, High].
func RandomStrategy(r Range, rnd Rand) int {
	return r.Low + rnd.IntN(r.Size())
}

// BisectStrategy always proposes the midpoint, which bounds a game to
// ceil(log2(N)) + 1 guesses.
func BisectStrategy(r Range, _ Rand) int {
	return r.Low + (r.High-r.Low)/2
}

// StrategyByName resolves the names accepted in configuration.
func StrategyByName(name string) (Strategy, bool) {
	switch name {
	case "", "random":
		return RandomStrategy, true
	case "bisect":
		return BisectStrategy, true
	}
	return nil, false
}
