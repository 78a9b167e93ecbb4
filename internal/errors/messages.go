package errors

import (
	"fmt"
	"strings"
)

// Usage is the one-line synopsis shown with argument errors.
const Usage = "anthroping <event> [message...] [--alert] [--project PATH] [--app NAME] [--sound NAME] [--title TEXT] [--message TEXT] [--icon EMOJI] [--timeout SECONDS]"

// UnknownEvent reports an event token that is not in the valid set.
func UnknownEvent(token string, valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("Unknown event: %s", token),
		Usage,
		fmt.Sprintf("Valid events: %s", strings.Join(valid, ", ")),
	)
}

// MissingEvent reports that only flags were given.
func MissingEvent(valid []string) *CLIError {
	return NewArgumentErrorWithUsage(
		"No event given",
		Usage,
		fmt.Sprintf("Pass one of: %s", strings.Join(valid, ", ")),
	)
}

// InvalidTimeout reports a --timeout value that is not a number.
func InvalidTimeout(value string, lo, hi int) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("Invalid timeout: %q is not a whole number of seconds", value),
		fmt.Sprintf("Use --timeout with a number; values are clamped to %d-%d", lo, hi),
	)
}

// DispatchFailed reports that a notification surface could not be invoked.
func DispatchFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "Could not show notification",
		"Check that osascript is available (macOS only)",
		"Run 'anthroping --sounds' to verify the sound name",
	)
}

// ConfigLoadFailed reports a configuration that could not be loaded or validated.
func ConfigLoadFailed(path string, err error) *CLIError {
	source := "configuration"
	if path != "" {
		source = path
	}
	return WrapWithMessage(err, Configuration, fmt.Sprintf("Failed to load %s", source),
		"Check the file syntax (YAML or JSON)",
		"Check ANTHROPING_* environment variables",
	)
}

// SoundsUnavailable reports an unreadable sound catalog.
func SoundsUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "Could not list sounds",
		"Set sounds_dir in the config or ANTHROPING_SOUNDS_DIR",
	)
}

// UnsupportedPlatform reports that the notification tools are missing on goos.
func UnsupportedPlatform(goos string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("Notifications are only supported on macOS (running on %s)", goos),
		"Run anthroping on macOS, where osascript, afplay and say are available",
	)
}
