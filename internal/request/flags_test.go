package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tokens    []string
		flag      string
		wantValue string
		wantRest  []string
		wantOK    bool
	}{
		"value flag in the middle": {
			tokens:    []string{"done", "--sound", "Funk", "--alert"},
			flag:      "--sound",
			wantValue: "Funk",
			wantRest:  []string{"done", "--alert"},
			wantOK:    true,
		},
		"value flag first": {
			tokens:    []string{"--project", "/tmp/app", "input"},
			flag:      "--project",
			wantValue: "/tmp/app",
			wantRest:  []string{"input"},
			wantOK:    true,
		},
		"absent flag leaves tokens unchanged": {
			tokens:   []string{"done", "--alert"},
			flag:     "--sound",
			wantRest: []string{"done", "--alert"},
			wantOK:   false,
		},
		"flag at end without value is absent": {
			tokens:   []string{"done", "--title"},
			flag:     "--title",
			wantRest: []string{"done"},
			wantOK:   false,
		},
		"only first occurrence is consumed": {
			tokens:    []string{"done", "--icon", "a", "--icon", "b"},
			flag:      "--icon",
			wantValue: "a",
			wantRest:  []string{"done", "--icon", "b"},
			wantOK:    true,
		},
		"value may look like a flag": {
			tokens:    []string{"done", "--message", "--alert"},
			flag:      "--message",
			wantValue: "--alert",
			wantRest:  []string{"done"},
			wantOK:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			value, rest, ok := Extract(tt.tokens, tt.flag)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestExtractDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	tokens := []string{"done", "--sound", "Funk", "--alert"}
	_, _, _ = Extract(tokens, "--sound")
	_, _ = ExtractBool(tokens, "--alert")
	assert.Equal(t, []string{"done", "--sound", "Funk", "--alert"}, tokens)
}

func TestExtractBool(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tokens    []string
		flags     []string
		wantRest  []string
		wantFound bool
	}{
		"present": {
			tokens:    []string{"done", "--alert"},
			flags:     []string{"--alert"},
			wantRest:  []string{"done"},
			wantFound: true,
		},
		"repeated": {
			tokens:    []string{"--alert", "done", "--alert"},
			flags:     []string{"--alert"},
			wantRest:  []string{"done"},
			wantFound: true,
		},
		"alias": {
			tokens:    []string{"-h"},
			flags:     []string{"--help", "-h"},
			wantRest:  []string{},
			wantFound: true,
		},
		"absent": {
			tokens:    []string{"done"},
			flags:     []string{"--alert"},
			wantRest:  []string{"done"},
			wantFound: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rest, found := ExtractBool(tt.tokens, tt.flags...)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestExtractGlobals(t *testing.T) {
	t.Parallel()

	g, rest := ExtractGlobals([]string{"done", "--debug", "--config", "/tmp/c.yml", "--alert"})
	assert.Equal(t, Globals{ConfigPath: "/tmp/c.yml", Debug: true}, g)
	assert.Equal(t, []string{"done", "--alert"}, rest)
}
