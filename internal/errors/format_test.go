package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatError(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatError(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	tests := map[string]struct {
		err      error
		contains []string
	}{
		"basic": {
			err:      &CLIError{Category: Argument, Message: "test message"},
			contains: []string{"Argument Error", "test message"},
		},
		"usage": {
			err:      &CLIError{Category: Argument, Message: "missing arg", Usage: "cmd <arg>"},
			contains: []string{"Usage:", "cmd <arg>"},
		},
		"remediation": {
			err:      &CLIError{Category: Argument, Message: "error", Remediation: []string{"step 1", "step 2"}},
			contains: []string{"To fix this:", "step 1", "step 2"},
		},
		"plain error becomes runtime": {
			err:      &testError{},
			contains: []string{"Runtime Error", "test error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := FormatError(tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Expected output to contain %q, got %q", want, result)
				}
			}
		})
	}
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := &CLIError{
		Category:    Configuration,
		Message:     "config error",
		Remediation: []string{"fix it"},
	}

	result := FormatErrorPlain(err)

	if strings.Contains(result, "\x1b[") {
		t.Errorf("Expected no ANSI escape codes, got %q", result)
	}
	expected := "Configuration Error: config error\n\nTo fix this:\n  - fix it\n"
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
	if FormatErrorPlain(nil) != "" {
		t.Error("Expected empty string for nil error")
	}
}

func TestFprintError(t *testing.T) {
	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)

		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("writes error to buffer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, &CLIError{Category: Prerequisite, Message: "missing file"})

		if !strings.Contains(buf.String(), "missing file") {
			t.Error("Expected buffer to contain error message")
		}
	})
}

func TestFprintErrorWithoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	FprintError(&buf, &CLIError{Category: Prerequisite, Message: "missing tool", Remediation: []string{"install it"}})

	expected := "Prerequisite Error: missing tool\n\nTo fix this:\n  - install it\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}
