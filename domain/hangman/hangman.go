// Package hangman implements the letter guessing game. A Game tracks the
// hidden word, the letters used so far and the lives left; every miss costs
// one life and repeating a letter costs nothing.
package hangman

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidLetter  = errors.New("invalid letter")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrInvalidWord    = errors.New("invalid word")
	ErrGameOver       = errors.New("game is over")
)

type Rand interface {
	IntN(n int) int
}

type Game struct {
	word       string
	missing    map[rune]bool
	used       map[rune]bool
	lives      int
	totalLives int
}

// New starts a game on word, which must hold only the letters A to Z.
func New(word string, lives int) (*Game, error) {
	word = strings.ToUpper(word)
	if word == "" {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if lives < 1 {
		return nil, fmt.Errorf("lives must be at least 1, got %d", lives)
	}
	missing := make(map[rune]bool)
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w: %q holds %q", ErrInvalidWord, word, r)
		}
		missing[r] = true
	}
	return &Game{
		word:       word,
		missing:    missing,
		used:       make(map[rune]bool),
		lives:      lives,
		totalLives: lives,
	}, nil
}

// Guess plays one letter and reports whether it is in the word.
func (g *Game) Guess(letter string) (bool, error) {
	if g.Won() || g.Lost() {
		return false, ErrGameOver
	}
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return false, fmt.Errorf("%w: %q, type a single letter", ErrInvalidLetter, letter)
	}
	r := rune(letter[0])
	if g.used[r] {
		return false, fmt.Errorf("%w: %s", ErrAlreadyGuessed, letter)
	}
	g.used[r] = true
	if g.missing[r] {
		delete(g.missing, r)
		return true, nil
	}
	g.lives--
	return false, nil
}

func (g *Game) Won() bool {
	return len(g.missing) == 0
}

func (g *Game) Lost() bool {
	return g.lives <= 0 && len(g.missing) > 0
}

func (g *Game) Lives() int {
	return g.lives
}

func (g *Game) Word() string {
	return g.word
}

// Masked shows guessed letters and hides the rest, e.g. "P _ _ _".
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.used[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Used returns the guessed letters in alphabetical order.
func (g *Game) Used() []string {
	used := make([]string, 0, len(g.used))
	for r := range g.used {
		used = append(used, string(r))
	}
	slices.Sort(used)
	return used
}

// Illustration draws the gallows for the lives lost so far, scaled onto the
// seven stages when the game did not start with six lives.
func (g *Game) Illustration() string {
	lost := g.totalLives - g.lives
	stage := lost * (len(stages) - 1) / g.totalLives
	return stages[stage]
}

// stages run from a full figure down to the grave.
var stages = []string{
	`
    |
    |
    O
   /|\
   / \
`,
	`
    |
    |
    O
   /|\
   /
`,
	`
    |
    |
    O
   /|\

`,
	`
    |
    |
    O
   /|

`,
	`
    |
    |
    O
    |

`,
	`
    |
    |
    O


`,
	`
    |
    |


   (RIP)
`,
}
