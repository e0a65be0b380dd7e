package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/console-games/application"
	"github.com/luca-patrignani/console-games/config"
	"github.com/luca-patrignani/console-games/console"
	"github.com/luca-patrignani/console-games/domain/guesser"
	"github.com/luca-patrignani/console-games/domain/hangman"
	"github.com/luca-patrignani/console-games/random"
)

// app holds what the root command builds before a game runs.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	console *console.Console
	games   *application.GameOrchestrator

	envFile       string
	logLevel      string
	seed          uint64
	rng           string
	maxRetries    int
	noColor       bool
	upper         int
	strategy      string
	lives         int
	maxWordLength int
	wordsFile     string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "games",
		Short:         "Small console games: guess the number, rock paper scissors and hangman",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "optional .env file (default ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "DEBUG, INFO, WARN or ERROR")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "seed for the pcg source, 0 draws one")
	root.PersistentFlags().StringVar(&a.rng, "rng", config.DefaultRNG, "random source: pcg or crypto")
	root.PersistentFlags().IntVar(&a.maxRetries, "max-retries", config.DefaultMaxRetries, "invalid answers tolerated per prompt, 0 for no limit")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colors and styling")

	root.AddCommand(computerGuessCmd(a), guessCmd(a), rpsCmd(a), hangmanCmd(a))
	return root
}

// setup loads the configuration, lets explicit flags override it and wires
// the orchestrator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("rng") {
		cfg.RNG = a.rng
	}
	if flags.Changed("max-retries") {
		cfg.MaxRetries = a.maxRetries
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if flags.Changed("upper") {
		cfg.UpperBound = a.upper
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if flags.Changed("lives") {
		cfg.Lives = a.lives
	}
	if flags.Changed("max-word-length") {
		cfg.MaxWordLength = a.maxWordLength
	}
	if flags.Changed("words") {
		cfg.WordsFile = a.wordsFile
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.NoColor {
		pterm.DisableStyling()
	}
	out := cmd.OutOrStdout()
	a.logger = console.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	var prompter console.Prompter
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		prompter = console.NewPrompter(f, out)
	} else {
		prompter = console.NewLinePrompter(cmd.InOrStdin(), out)
	}
	a.console = console.New(prompter, out)

	src, err := random.New(cfg.RNG, cfg.Seed)
	if err != nil {
		return err
	}
	if seeded, ok := src.(*random.Seeded); ok {
		a.logger.Debug("random source ready", "rng", cfg.RNG, "seed", seeded.Seed())
	}

	strategy, ok := guesser.StrategyByName(cfg.Strategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
	words, err := loadWords(cfg.WordsFile)
	if err != nil {
		return err
	}

	a.games = application.NewGameOrchestrator(a.console, src, a.logger, application.Settings{
		MaxRetries:    cfg.MaxRetries,
		Strategy:      strategy,
		Lives:         cfg.Lives,
		MaxWordLength: cfg.MaxWordLength,
		Words:         words,
	})
	if _, ok := prompter.(console.TerminalPrompter); ok {
		printBanner(out)
	}
	return nil
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return hangman.DefaultWords(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return hangman.LoadWords(f)
}

func computerGuessCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "computer-guess",
		Short: "Think of a number and let the computer guess it",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.games.PlayComputerGuess(cmd.Context(), a.cfg.UpperBound)
			if err != nil {
				return err
			}
			a.console.Box("|GUESSED|", fmt.Sprintf("Your number: %d\nGuesses: %d", res.Answer, res.Guesses))
			return nil
		},
	}
	cmd.Flags().IntVar(&a.upper, "upper", config.DefaultUpperBound, "largest number in play")
	cmd.Flags().StringVar(&a.strategy, "strategy", config.DefaultStrategy, "how the computer guesses: random or bisect")
	return cmd
}

func guessCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the number the computer picked",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.games.PlayNumberGuess(cmd.Context(), a.cfg.UpperBound)
			if err != nil {
				return err
			}
			a.console.Box("|FOUND|", fmt.Sprintf("Number: %d\nAttempts: %d", res.Target, res.Attempts))
			return nil
		},
	}
	cmd.Flags().IntVar(&a.upper, "upper", config.DefaultUpperBound, "largest number in play")
	return cmd
}

func rpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rps",
		Short: "Play rock, paper, scissors against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.games.PlayRockPaperScissors(cmd.Context())
			return err
		},
	}
}

func hangmanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hangman",
		Short: "Guess the hidden word one letter at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.games.PlayHangman(cmd.Context())
			if err != nil {
				return err
			}
			title := "|SAVED|"
			if !res.Won {
				title = "|HANGED|"
			}
			a.console.Box(title, fmt.Sprintf("Word: %s\nLives left: %d", res.Word, res.Lives))
			return nil
		},
	}
	cmd.Flags().IntVar(&a.lives, "lives", config.DefaultLives, "wrong guesses allowed")
	cmd.Flags().IntVar(&a.maxWordLength, "max-word-length", config.DefaultMaxWordLength, "longest word that can be picked")
	cmd.Flags().StringVar(&a.wordsFile, "words", "", "YAML word list with a top-level words key")
	return cmd
}
