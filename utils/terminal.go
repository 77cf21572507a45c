package utils

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColors turns ANSI colors off unless stdout is a terminal
func ConfigureColors(stdout *os.File) {
	if IsTerminal(stdout) {
		text.EnableColors()
		return
	}
	text.DisableColors()
}
