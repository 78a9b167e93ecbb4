package cli

import (
	"fmt"
	"io"

	"github.com/anthroping/anthroping/internal/event"
	"github.com/fatih/color"
)

const helpText = `anthroping - macOS notifications for Claude Code

Get notified when Claude Code needs your attention, with a distinct sound for each event.

Usage:
  anthroping <event> [message...] [options]
  anthroping --sounds

Events:
  done      Work completed successfully
  input     Claude needs your input
  error     Something went wrong
  waiting   Claude is waiting for approval
  thinking  Long task in progress
  subagent  A subagent finished its task

Options:
  --alert             Show a popup dialog (always visible, bypasses notification settings)
  --project PATH      Include the project name in the alert and enable "Go to Window"
  --app NAME          Window to focus for "Go to Window": cursor, vscode, code (default: cursor)
  --sound NAME        Override the event sound (see --sounds)
  --title TEXT        Override the title
  --message TEXT      Override the message
  --icon EMOJI        Override the alert icon
  --timeout SECONDS   Alert auto-dismiss time, 1-300 (default: 10)
  --say               Also speak the message aloud
  --sounds            List available system sounds
  --config FILE       Read settings from FILE (.yml, .yaml or .json)
  --debug             Log what is being dispatched
  --version           Show version
  --help, -h          Show this help
`

// printHelp writes usage, the events table with their default titles, and examples.
func printHelp(w io.Writer) {
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprint(w, helpText)

	fmt.Fprintf(w, "\n%s\n", bold("Available events:"))
	reg := event.Default()
	for _, e := range event.All() {
		cfg := reg.Lookup(e)
		fmt.Fprintf(w, "  %-10s - %s %s %s\n", e, cfg.Icon, cfg.Title, dim("("+cfg.Sound+")"))
	}

	fmt.Fprintf(w, "\n%s\n", bold("Examples:"))
	fmt.Fprintln(w, "  anthroping done")
	fmt.Fprintln(w, "  anthroping input --alert")
	fmt.Fprintln(w, "  anthroping done --alert --project /path/to/project")
	fmt.Fprintln(w, "  anthroping error \"Build failed\" --sound Sosumi")
}
