package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// configureColor turns colors off when NO_COLOR is set or stdout is not a terminal.
func configureColor() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// newLogger returns the stderr logger. Only warnings show unless debug is set.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "anthroping",
		Level:           log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
