package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with colors for terminal output.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}

	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}

	heading := fmt.Sprintf("%s:", cliErr.Category)
	usageLabel := "Usage:"
	fixLabel := "To fix this:"
	if colored {
		heading = color.New(color.FgRed, color.Bold).Sprint(heading)
		usageLabel = color.New(color.FgYellow).Sprint(usageLabel)
		fixLabel = color.New(color.FgCyan).Sprint(fixLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", heading, cliErr.Message)
	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", usageLabel, cliErr.Usage)
	}
	if len(cliErr.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", fixLabel)
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}
	return b.String()
}

// FprintError writes err to w, plain when colors are turned off. A nil error
// writes nothing.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if color.NoColor {
		fmt.Fprint(w, FormatErrorPlain(err))
		return
	}
	fmt.Fprint(w, FormatError(err))
}
