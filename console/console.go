// Package console renders game output with pterm and collects the player's
// answers through a Prompter.
package console

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

type Console struct {
	Prompter
	out         io.Writer
	info        *pterm.PrefixPrinter
	success     *pterm.PrefixPrinter
	warning     *pterm.PrefixPrinter
	fail        *pterm.PrefixPrinter
	description *pterm.PrefixPrinter
}

func New(p Prompter, out io.Writer) *Console {
	return &Console{
		Prompter:    p,
		out:         out,
		info:        pterm.Info.WithWriter(out),
		success:     pterm.Success.WithWriter(out),
		warning:     pterm.Warning.WithWriter(out),
		fail:        pterm.Error.WithWriter(out),
		description: pterm.Description.WithWriter(out),
	}
}

func (c *Console) Info(format string, a ...any) {
	c.info.Printfln(format, a...)
}

func (c *Console) Success(format string, a ...any) {
	c.success.Printfln(format, a...)
}

func (c *Console) Warning(format string, a ...any) {
	c.warning.Printfln(format, a...)
}

func (c *Console) Error(format string, a ...any) {
	c.fail.Printfln(format, a...)
}

func (c *Console) Describe(format string, a ...any) {
	c.description.Printfln(format, a...)
}

// Println writes plain text without a prefix.
func (c *Console) Println(a ...any) {
	pterm.Fprintln(c.out, a...)
}

// Box draws body inside a titled box.
func (c *Console) Box(title, body string) {
	pterm.DefaultBox.
		WithWriter(c.out).
		WithHorizontalPadding(4).
		WithTitle(pterm.LightGreen(title)).
		WithTitleTopCenter().
		Println(body)
}

// NewLogger builds a slog logger on top of pterm's logger.
func NewLogger(w io.Writer, level string) *slog.Logger {
	pl := pterm.DefaultLogger.WithWriter(w).WithLevel(parseLevel(level))
	return slog.New(pterm.NewSlogHandler(pl))
}

func parseLevel(level string) pterm.LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return pterm.LogLevelDebug
	case "WARN", "WARNING":
		return pterm.LogLevelWarn
	case "ERROR":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
