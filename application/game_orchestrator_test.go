package application

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/console-games/console"
	"github.com/luca-patrignani/console-games/domain/guesser"
	"github.com/luca-patrignani/console-games/domain/hangman"
	"github.com/luca-patrignani/console-games/domain/numguess"
	"github.com/luca-patrignani/console-games/domain/rps"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// seqRand cycles through draws, reducing each one modulo n.
type seqRand struct {
	draws []int
	next  int
}

func (s *seqRand) IntN(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	d := s.draws[s.next%len(s.draws)]
	s.next++
	return d % n
}

func newOrchestrator(input string, draws []int, s Settings) (*GameOrchestrator, *bytes.Buffer) {
	var out bytes.Buffer
	c := console.New(console.NewLinePrompter(strings.NewReader(input), &out), &out)
	if s.Strategy == nil {
		s.Strategy = guesser.RandomStrategy
	}
	return NewGameOrchestrator(c, &seqRand{draws: draws}, nil, s), &out
}

func TestComputerGuessScenario(t *testing.T) {
	o, out := newOrchestrator("L\nH\nc\n", []int{4, 2, 1}, Settings{MaxRetries: 3})

	res, err := o.PlayComputerGuess(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, ComputerGuessResult{Answer: 7, Guesses: 3}, res)

	s := out.String()
	assert.Contains(t, s, "Is 5 too high (H), too low (L) or correct (C)?")
	assert.Contains(t, s, "Is 8 too high")
	assert.Contains(t, s, "Is 7 too high")
	assert.Contains(t, s, "guessed your number, 7, correctly in 3 guesses")
}

func TestComputerGuessUpperOne(t *testing.T) {
	o, out := newOrchestrator("C\n", nil, Settings{MaxRetries: 3})

	res, err := o.PlayComputerGuess(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, ComputerGuessResult{Answer: 1, Guesses: 1}, res)
	assert.Equal(t, 1, strings.Count(out.String(), "Is 1 too high"))
}

func TestComputerGuessRejectsBadTokens(t *testing.T) {
	o, out := newOrchestrator("maybe\n\nc\n", []int{2}, Settings{MaxRetries: 3})

	res, err := o.PlayComputerGuess(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Answer)
	assert.Equal(t, 1, res.Guesses)

	s := out.String()
	assert.Contains(t, s, `"maybe" is not one of H, L or C`)
	assert.Equal(t, 3, strings.Count(s, "Is 3 too high"))
}

func TestComputerGuessRejectsContradictions(t *testing.T) {
	o, out := newOrchestrator("h\nc\n", []int{0}, Settings{MaxRetries: 3})

	res, err := o.PlayComputerGuess(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Answer)
	assert.Contains(t, out.String(), "1 cannot be too high")
}

func TestComputerGuessTooManyRetries(t *testing.T) {
	o, _ := newOrchestrator("x\ny\nz\nc\n", []int{0}, Settings{MaxRetries: 2})

	_, err := o.PlayComputerGuess(context.Background(), 10)
	assert.ErrorIs(t, err, ErrTooManyRetries)
	assert.ErrorIs(t, err, guesser.ErrInvalidFeedback)
}

func TestComputerGuessUnboundedRetries(t *testing.T) {
	input := strings.Repeat("?\n", 20) + "c\n"
	o, _ := newOrchestrator(input, []int{0}, Settings{MaxRetries: 0})

	res, err := o.PlayComputerGuess(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Answer)
}

func TestComputerGuessBisect(t *testing.T) {
	// Target 73 in [1, 100]: 50 L, 75 H, 62 L, 68 L, 71 L, 73 C.
	o, _ := newOrchestrator("l\nh\nl\nl\nl\nc\n", nil, Settings{Strategy: guesser.BisectStrategy})

	res, err := o.PlayComputerGuess(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, ComputerGuessResult{Answer: 73, Guesses: 6}, res)
}

func TestComputerGuessInputClosed(t *testing.T) {
	o, _ := newOrchestrator("l\n", []int{0}, Settings{MaxRetries: 3})

	_, err := o.PlayComputerGuess(context.Background(), 10)
	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestComputerGuessCancelled(t *testing.T) {
	o, _ := newOrchestrator("c\n", []int{0}, Settings{MaxRetries: 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.PlayComputerGuess(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputerGuessInvalidBound(t *testing.T) {
	o, _ := newOrchestrator("", nil, Settings{})

	_, err := o.PlayComputerGuess(context.Background(), 0)
	assert.ErrorIs(t, err, guesser.ErrInvalidBound)
}

func TestNumberGuess(t *testing.T) {
	o, out := newOrchestrator("abc\n50\n3\n9\n7\n", []int{6}, Settings{MaxRetries: 3})

	res, err := o.PlayNumberGuess(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, NumberGuessResult{Target: 7, Attempts: 3}, res)

	s := out.String()
	assert.Contains(t, s, "Guess a number between 1 and 10 (both inclusive):")
	assert.Contains(t, s, "not a whole number")
	assert.Contains(t, s, "50 is not between 1 and 10")
	assert.Contains(t, s, "Oops, too low.")
	assert.Contains(t, s, "Oops, too high.")
	assert.Contains(t, s, "Congrats! 7 is the right guess!")
}

func TestNumberGuessTooManyRetries(t *testing.T) {
	o, _ := newOrchestrator("a\nb\n", []int{0}, Settings{MaxRetries: 1})

	_, err := o.PlayNumberGuess(context.Background(), 3)
	assert.ErrorIs(t, err, ErrTooManyRetries)
	assert.ErrorIs(t, err, numguess.ErrNonNumeric)
}

func TestRockPaperScissors(t *testing.T) {
	// The computer always plays rock.
	o, out := newOrchestrator("p\nx\np\ns\np\nR\nq\n", []int{0}, Settings{MaxRetries: 3})

	tally, err := o.PlayRockPaperScissors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rps.Tally{Wins: 1, Losses: 1, Ties: 1}, tally)

	s := out.String()
	assert.Contains(t, s, "Congratulations! You won.")
	assert.Contains(t, s, "Oops, you lose.")
	assert.Contains(t, s, "It's a tie!")
	assert.Contains(t, s, "Your choice: paper, computer's choice: rock")
	assert.Contains(t, s, "type P to play again or Q to quit")
	assert.Contains(t, s, "Thanks for playing!")
	assert.Contains(t, s, "1 won, 1 lost, 1 tied")
}

func TestRockPaperScissorsRejectsChoice(t *testing.T) {
	o, _ := newOrchestrator("rock\npaper\n", []int{0}, Settings{MaxRetries: 1})

	_, err := o.PlayRockPaperScissors(context.Background())
	assert.ErrorIs(t, err, ErrTooManyRetries)
	assert.ErrorIs(t, err, rps.ErrInvalidChoice)
}

func TestHangmanWin(t *testing.T) {
	s := Settings{MaxRetries: 3, Lives: 6, MaxWordLength: 5, Words: []string{"owl"}}
	o, out := newOrchestrator("o\no\n1\nz\nw\nl\n", []int{0}, s)

	res, err := o.PlayHangman(context.Background())
	require.NoError(t, err)
	assert.Equal(t, HangmanResult{Word: "OWL", Won: true, Lives: 5}, res)

	str := out.String()
	assert.Contains(t, str, "The word has 3 letters.")
	assert.Contains(t, str, "letter already guessed: O")
	assert.Contains(t, str, "invalid letter")
	assert.Contains(t, str, "Wrong guess! You lost a life.")
	assert.Contains(t, str, "Word: O _ _")
	assert.Contains(t, str, "Congratulations, you guessed the word OWL correctly!")
}

func TestHangmanLose(t *testing.T) {
	s := Settings{MaxRetries: 3, Lives: 2, MaxWordLength: 5, Words: []string{"owl"}}
	o, out := newOrchestrator("a\nb\n", []int{0}, s)

	res, err := o.PlayHangman(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.Equal(t, 0, res.Lives)
	assert.Contains(t, out.String(), "RIP")
	assert.Contains(t, out.String(), "The word was OWL.")
}

func TestHangmanNoWords(t *testing.T) {
	s := Settings{MaxRetries: 3, Lives: 6, MaxWordLength: 3, Words: []string{"background"}}
	o, _ := newOrchestrator("", nil, s)

	_, err := o.PlayHangman(context.Background())
	assert.ErrorIs(t, err, hangman.ErrNoEligibleWords)
}
