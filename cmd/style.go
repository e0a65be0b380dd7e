package main

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func printBanner(w io.Writer) {
	pterm.DefaultBigText.WithWriter(w).WithLetters(
		putils.LettersFromStringWithStyle("G", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ames", pterm.FgDarkGray.ToStyle()),
	).Render()
}
