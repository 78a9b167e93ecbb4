package notify

import (
	"strings"
	"text/template"

	"github.com/anthroping/anthroping/internal/event"
)

// scriptFields is the only value the script templates ever see. Every string in it
// has been sanitized by newScriptFields.
type scriptFields struct {
	Title    string
	Subtitle string
	Message  string
	Icon     string
	Sound    string
	Project  string
	App      string
	Timeout  int
}

func newScriptFields(cfg event.Config, project, app string, timeout int) scriptFields {
	return scriptFields{
		Title:    Sanitize(cfg.Title),
		Subtitle: Sanitize(cfg.Subtitle),
		Message:  Sanitize(cfg.Message),
		Icon:     Sanitize(cfg.Icon),
		Sound:    Sanitize(cfg.Sound),
		Project:  Sanitize(project),
		App:      Sanitize(app),
		Timeout:  timeout,
	}
}

var notificationTmpl = template.Must(template.New("notification").Parse(
	`display notification "{{.Message}}" with title "{{.Title}}" subtitle "{{.Subtitle}}" sound name "{{.Sound}}"`,
))

var dialogTmpl = template.Must(template.New("dialog").Parse(
	`display dialog "{{.Icon}} {{.Message}}" with title "{{.Title}}" buttons {"OK"} default button "OK" giving up after {{.Timeout}}`,
))

// The window search is best effort: any failure inside the try block is dropped.
var projectDialogTmpl = template.Must(template.New("projectDialog").Parse(
	`set dialogResult to display dialog "{{.Icon}} {{.Message}}

Project: {{.Project}}" with title "{{.Title}}" buttons {"OK", "Go to Window"} default button "Go to Window" giving up after {{.Timeout}}
if button returned of dialogResult is "Go to Window" then
	try
		tell application "System Events"
			tell process "{{.App}}"
				set frontmost to true
				repeat with w in every window
					if name of w contains "{{.Project}}" then
						perform action "AXRaise" of w
						exit repeat
					end if
				end repeat
			end tell
		end tell
		tell application "{{.App}}" to activate
	end try
end if`,
))

func render(tmpl *template.Template, f scriptFields) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

// NotificationScript returns the AppleScript that posts a notification for cfg.
func NotificationScript(cfg event.Config) (string, error) {
	return render(notificationTmpl, newScriptFields(cfg, "", "", 0))
}

// DialogScript returns the AppleScript for an alert dialog. With a non-empty project
// name the dialog offers "Go to Window", which raises the app window whose title
// contains the project name.
func DialogScript(cfg event.Config, project, app string, timeout int) (string, error) {
	f := newScriptFields(cfg, project, app, timeout)
	if project == "" {
		return render(dialogTmpl, f)
	}
	return render(projectDialogTmpl, f)
}

// ProjectName returns the last segment of path after trailing slashes are trimmed.
func ProjectName(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
