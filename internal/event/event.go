// Package event holds the fixed set of lifecycle events anthroping understands and
// the default display configuration for each of them.
//
// The table is built once and validated for completeness at construction time, so a
// lookup can never come back half-filled.
package event

import (
	"fmt"
	"strings"
)

// Event identifies a lifecycle event reported by the invoking process
type Event string

const (
	// Done indicates work completed successfully
	Done Event = "done"
	// Input indicates Claude needs the user's input
	Input Event = "input"
	// Error indicates something went wrong
	Error Event = "error"
	// Waiting indicates Claude is waiting for approval
	Waiting Event = "waiting"
	// Thinking indicates a long task is still in progress
	Thinking Event = "thinking"
	// Subagent indicates a subagent finished its task
	Subagent Event = "subagent"
)

// all lists every event in display order.
var all = []Event{Done, Input, Error, Waiting, Thinking, Subagent}

// All returns every known event in display order.
func All() []Event {
	out := make([]Event, len(all))
	copy(out, all)
	return out
}

// Names returns the identifiers of every known event in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = string(e)
	}
	return names
}

// Parse case-folds s and reports whether it names a known event.
func Parse(s string) (Event, bool) {
	e := Event(strings.ToLower(s))
	for _, known := range all {
		if e == known {
			return e, true
		}
	}
	return "", false
}

// Config is the display configuration for a notification or alert.
type Config struct {
	Title    string
	Message  string
	Subtitle string
	Icon     string
	Sound    string
}

// missingField reports the name of the first empty field, if any.
func (c Config) missingField() string {
	switch {
	case c.Title == "":
		return "title"
	case c.Message == "":
		return "message"
	case c.Subtitle == "":
		return "subtitle"
	case c.Icon == "":
		return "icon"
	case c.Sound == "":
		return "sound"
	}
	return ""
}

// Overrides carries user-supplied replacements for a default Config.
// Empty fields leave the default untouched. Subtitle cannot be overridden.
type Overrides struct {
	Title   string
	Message string
	Sound   string
	Icon    string
}

// Apply returns c with every non-empty override laid over it.
func (c Config) Apply(o Overrides) Config {
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.Message != "" {
		c.Message = o.Message
	}
	if o.Sound != "" {
		c.Sound = o.Sound
	}
	if o.Icon != "" {
		c.Icon = o.Icon
	}
	return c
}

// Registry is an immutable event -> Config table.
type Registry struct {
	configs map[Event]Config
}

// NewRegistry copies table into a Registry. It fails if any known event is missing,
// if any entry has an empty field, or if the table names an unknown event.
func NewRegistry(table map[Event]Config) (*Registry, error) {
	configs := make(map[Event]Config, len(all))
	for _, e := range all {
		cfg, ok := table[e]
		if !ok {
			return nil, fmt.Errorf("event %q has no default configuration", e)
		}
		if field := cfg.missingField(); field != "" {
			return nil, fmt.Errorf("event %q: default %s is empty", e, field)
		}
		configs[e] = cfg
	}
	if len(table) != len(all) {
		for e := range table {
			if _, ok := configs[e]; !ok {
				return nil, fmt.Errorf("unknown event %q in configuration table", e)
			}
		}
	}
	return &Registry{configs: configs}, nil
}

// MustNewRegistry is like NewRegistry but panics on an incomplete table.
func MustNewRegistry(table map[Event]Config) *Registry {
	r, err := NewRegistry(table)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the default Config for e.
// Callers obtain e from Parse or All, so every lookup hits.
func (r *Registry) Lookup(e Event) Config {
	cfg, ok := r.configs[e]
	if !ok {
		panic(fmt.Sprintf("event: lookup of unknown event %q", e))
	}
	return cfg
}

// Defaults returns the built-in defaults table.
func Defaults() map[Event]Config {
	return map[Event]Config{
		Done: {
			Title:    "Claude Complete",
			Message:  "Work finished successfully!",
			Subtitle: "Ready for review",
			Icon:     "✅",
			Sound:    "Glass",
		},
		Input: {
			Title:    "Input Needed",
			Message:  "Claude is waiting for your response",
			Subtitle: "Action required",
			Icon:     "🤔",
			Sound:    "Ping",
		},
		Error: {
			Title:    "Error Occurred",
			Message:  "Something needs your attention",
			Subtitle: "Check Claude",
			Icon:     "❌",
			Sound:    "Basso",
		},
		Waiting: {
			Title:    "Awaiting Approval",
			Message:  "Claude needs permission to continue",
			Subtitle: "Approve to proceed",
			Icon:     "⏳",
			Sound:    "Purr",
		},
		Thinking: {
			Title:    "Still Working",
			Message:  "Long task in progress...",
			Subtitle: "Be patient",
			Icon:     "🧠",
			Sound:    "Pop",
		},
		Subagent: {
			Title:    "Subagent Finished",
			Message:  "A subagent has completed its task",
			Subtitle: "Subagent done",
			Icon:     "🤖",
			Sound:    "Blow",
		},
	}
}

// defaultRegistry is validated at package initialization.
var defaultRegistry = MustNewRegistry(Defaults())

// Default returns the registry built from the built-in defaults.
func Default() *Registry {
	return defaultRegistry
}
