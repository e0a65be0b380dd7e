package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/luca-patrignani/console-games/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{logger: console.NewLogger(os.Stderr, "INFO")}
	root := newRootCmd(a)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			a.logger.Info("interrupted")
		} else {
			a.logger.Error("game ended with an error", "error", err.Error())
		}
		stop()
		os.Exit(1)
	}
}
