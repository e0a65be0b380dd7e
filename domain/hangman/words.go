package hangman

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoEligibleWords = errors.New("no eligible words")

//go:embed words.yaml
var defaultWords []byte

type wordList struct {
	Words []string `yaml:"words"`
}

// LoadWords parses a YAML document with a top-level "words" list.
func LoadWords(r io.Reader) ([]string, error) {
	var wl wordList
	if err := yaml.NewDecoder(r).Decode(&wl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return wl.Words, nil
}

func DefaultWords() []string {
	words, err := LoadWords(bytes.NewReader(defaultWords))
	if err != nil {
		panic(err)
	}
	return words
}

func eligible(word string, maxLen int) bool {
	if word == "" || len(word) > maxLen {
		return false
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// PickWord chooses uniformly among the words of at most maxLen ASCII letters
// and returns it upper-cased. Anything else in the list is skipped.
func PickWord(words []string, rnd Rand, maxLen int) (string, error) {
	var pool []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if eligible(w, maxLen) {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: none of %d words fit %d letters", ErrNoEligibleWords, len(words), maxLen)
	}
	return strings.ToUpper(pool[rnd.IntN(len(pool))]), nil
}
