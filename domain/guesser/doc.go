// Package guesser implements the "computer guesses your number" game as a
// small state machine.
//
// # Range narrowing
//
// A Guesser owns a closed Range [Low, High] that starts at [1, N]. Each
// iteration it proposes a candidate from the range and waits for one
// Feedback value from the player:
//
//	TooHigh  → High = candidate - 1
//	TooLow   → Low  = candidate + 1
//	Correct  → Converged
//
// When Low == High the candidate is forced to that value. Feedback that
// would empty the range is rejected with ErrInvalidFeedback and leaves the
// Guesser untouched, so the same candidate can be asked again.
//
// # States
//
// Narrowing is the initial state. Converged is terminal: once reached, Next
// never produces another candidate.
package guesser
