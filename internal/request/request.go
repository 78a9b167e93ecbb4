// Package request turns the raw argument list of an anthroping invocation into a
// resolved Request: the selected event, its configuration with user overrides laid
// over the defaults, the dispatch mode, and the alert dialog settings.
//
// Flags are recognized anywhere in the token stream and removed as they are consumed.
// Parsing is permissive: a value flag with nothing after it is treated as absent.
package request

import (
	"errors"
	"strconv"
	"strings"

	"github.com/anthroping/anthroping/internal/event"
)

// Mode selects what an invocation does.
type Mode int

const (
	// ModeNotify shows a transient notification
	ModeNotify Mode = iota
	// ModeAlert shows a dialog that stays up until dismissed or timed out
	ModeAlert
	// ModeSounds lists the available system sounds
	ModeSounds
	// ModeHelp prints usage
	ModeHelp
	// ModeVersion prints version information
	ModeVersion
)

func (m Mode) String() string {
	switch m {
	case ModeNotify:
		return "notify"
	case ModeAlert:
		return "alert"
	case ModeSounds:
		return "sounds"
	case ModeHelp:
		return "help"
	case ModeVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Dialog timeout bounds, in seconds.
const (
	MinTimeout     = 1
	MaxTimeout     = 300
	DefaultTimeout = 10
)

// ClampTimeout bounds seconds to [MinTimeout, MaxTimeout].
func ClampTimeout(seconds int) int {
	if seconds < MinTimeout {
		return MinTimeout
	}
	if seconds > MaxTimeout {
		return MaxTimeout
	}
	return seconds
}

// parseSeconds parses a base-10 integer. Integers too large for an int saturate
// toward the matching bound instead of failing, since they are clamped anyway.
func parseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	// Atoi reports a range error as soon as the digits overflow, before it has
	// seen the rest of the string.
	if !isInteger(s) {
		return 0, &strconv.NumError{Func: "Atoi", Num: s, Err: strconv.ErrSyntax}
	}
	if strings.HasPrefix(s, "-") {
		return MinTimeout, nil
	}
	return MaxTimeout, nil
}

func isInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DefaultApp is the display name used when --app is missing or unrecognized.
const DefaultApp = "Cursor"

var appNames = map[string]string{
	"cursor": "Cursor",
	"vscode": "Visual Studio Code",
	"code":   "Visual Studio Code",
}

// AppName maps an --app key to the application's display name.
func AppName(key string) string {
	if name, ok := appNames[strings.ToLower(key)]; ok {
		return name
	}
	return DefaultApp
}

// Defaults are the configured fallbacks for flags the user did not pass.
type Defaults struct {
	App     string
	Timeout int
}

// Request is one fully resolved invocation.
type Request struct {
	Mode        Mode
	Event       event.Event
	Config      event.Config
	ProjectPath string
	App         string
	Timeout     int
	Say         bool
}

// Parse resolves tokens against the built-in event registry.
func Parse(tokens []string, defaults Defaults) (*Request, error) {
	return ParseWith(event.Default(), tokens, defaults)
}

// EarlyMode reports whether tokens ask for help or version output. Neither needs
// configuration or an event, so callers can answer them before loading anything.
func EarlyMode(tokens []string) (Mode, bool) {
	if _, help := ExtractBool(tokens, FlagHelp, FlagHelpShort); help {
		return ModeHelp, true
	}
	if _, version := ExtractBool(tokens, FlagVersion); version {
		return ModeVersion, true
	}
	return ModeNotify, false
}

// ParseWith resolves tokens against reg.
func ParseWith(reg *event.Registry, tokens []string, defaults Defaults) (*Request, error) {
	if mode, ok := EarlyMode(tokens); ok {
		return &Request{Mode: mode}, nil
	}
	tokens, sounds := ExtractBool(tokens, FlagSounds)
	if sounds {
		return &Request{Mode: ModeSounds}, nil
	}

	req := &Request{Mode: ModeNotify}

	var alert bool
	tokens, alert = ExtractBool(tokens, FlagAlert)
	if alert {
		req.Mode = ModeAlert
	}
	tokens, req.Say = ExtractBool(tokens, FlagSay)

	var overrides event.Overrides
	var appKey, timeout string
	var hasTimeout bool
	req.ProjectPath, tokens, _ = Extract(tokens, FlagProject)
	appKey, tokens, _ = Extract(tokens, FlagApp)
	overrides.Sound, tokens, _ = Extract(tokens, FlagSound)
	overrides.Title, tokens, _ = Extract(tokens, FlagTitle)
	overrides.Message, tokens, _ = Extract(tokens, FlagMessage)
	overrides.Icon, tokens, _ = Extract(tokens, FlagIcon)
	timeout, tokens, hasTimeout = Extract(tokens, FlagTimeout)

	if len(tokens) == 0 {
		return nil, &MissingEventError{}
	}

	e, ok := event.Parse(tokens[0])
	if !ok {
		return nil, &UnknownEventError{Token: tokens[0], Valid: event.Names()}
	}
	req.Event = e

	if overrides.Message == "" && len(tokens) > 1 {
		overrides.Message = strings.Join(tokens[1:], " ")
	}

	seconds := defaults.Timeout
	if seconds == 0 {
		seconds = DefaultTimeout
	}
	if hasTimeout {
		n, err := parseSeconds(timeout)
		if err != nil {
			return nil, &InvalidTimeoutError{Value: timeout, Err: err}
		}
		seconds = n
	}
	req.Timeout = ClampTimeout(seconds)

	if appKey == "" {
		appKey = defaults.App
	}
	req.App = AppName(appKey)

	req.Config = reg.Lookup(e).Apply(overrides)
	return req, nil
}
