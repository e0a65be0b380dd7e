// Package config loads the games' settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable, e.g. GAMES_UPPER_BOUND.
const Prefix = "GAMES"

const (
	DefaultUpperBound    = 100
	DefaultMaxRetries    = 3
	DefaultRNG           = "pcg"
	DefaultStrategy      = "random"
	DefaultLives         = 6
	DefaultMaxWordLength = 5
	DefaultLogLevel      = "INFO"
)

type Config struct {
	// UpperBound is the largest number in play for both guessing games.
	UpperBound int `envconfig:"UPPER_BOUND" default:"100"`

	// MaxRetries bounds consecutive rejected answers to one prompt.
	// Zero keeps asking forever.
	MaxRetries int `envconfig:"MAX_RETRIES" default:"3"`

	// Seed makes a pcg session reproducible. Zero draws a fresh seed.
	Seed uint64 `envconfig:"SEED" default:"0"`

	// RNG is pcg or crypto.
	RNG string `envconfig:"RNG" default:"pcg"`

	// Strategy is how the computer picks its guesses: random or bisect.
	Strategy string `envconfig:"STRATEGY" default:"random"`

	Lives         int    `envconfig:"LIVES" default:"6"`
	MaxWordLength int    `envconfig:"MAX_WORD_LENGTH" default:"5"`
	WordsFile     string `envconfig:"WORDS_FILE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
	NoColor  bool   `envconfig:"NO_COLOR" default:"false"`
}

// Load reads the optional .env file at envPath (".env" when empty), then the
// environment. Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize folds the case of the named settings so that "CRYPTO" and
// "debug" are accepted from any source.
func (c *Config) Normalize() {
	c.RNG = strings.ToLower(strings.TrimSpace(c.RNG))
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
}

// LoadDotEnv loads a .env file, silently skipping it when it does not exist.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func (c Config) Validate() error {
	var errs []error
	if c.UpperBound < 1 {
		errs = append(errs, fmt.Errorf("upper bound must be at least 1, got %d", c.UpperBound))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max retries cannot be negative, got %d", c.MaxRetries))
	}
	switch c.RNG {
	case "pcg", "crypto":
	default:
		errs = append(errs, fmt.Errorf("rng must be pcg or crypto, got %q", c.RNG))
	}
	switch c.Strategy {
	case "random", "bisect":
	default:
		errs = append(errs, fmt.Errorf("strategy must be random or bisect, got %q", c.Strategy))
	}
	if c.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Lives))
	}
	if c.MaxWordLength < 1 {
		errs = append(errs, fmt.Errorf("max word length must be at least 1, got %d", c.MaxWordLength))
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}
