package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		expected string
	}{
		"Argument":      {category: Argument, expected: "Argument Error"},
		"Configuration": {category: Configuration, expected: "Configuration Error"},
		"Prerequisite":  {category: Prerequisite, expected: "Prerequisite Error"},
		"Runtime":       {category: Runtime, expected: "Runtime Error"},
		"Unknown":       {category: ErrorCategory(99), expected: "Error"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result := test.category.String()
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := map[string]struct {
		err          *CLIError
		category     ErrorCategory
		remediations int
	}{
		"argument":     {err: NewArgumentError("bad", "a", "b"), category: Argument, remediations: 2},
		"prerequisite": {err: NewPrerequisiteError("bad"), category: Prerequisite, remediations: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("Expected %v category, got %v", tt.category, tt.err.Category)
			}
			if tt.err.Error() != "bad" {
				t.Errorf("Expected message 'bad', got %q", tt.err.Error())
			}
			if len(tt.err.Remediation) != tt.remediations {
				t.Errorf("Expected %d remediation steps, got %d", tt.remediations, len(tt.err.Remediation))
			}
		})
	}
}

func TestNewArgumentErrorWithUsage(t *testing.T) {
	err := NewArgumentErrorWithUsage("invalid arg", "command <arg>", "use correct syntax")

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Usage != "command <arg>" {
		t.Errorf("Expected usage 'command <arg>', got %q", err.Usage)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if Wrap(nil, Runtime) != nil {
			t.Error("Expected nil for nil input")
		}
	})

	t.Run("keeps the cause", func(t *testing.T) {
		t.Parallel()
		cause := &testError{}
		result := Wrap(cause, Runtime, "fix it")

		if result.Category != Runtime {
			t.Errorf("Expected Runtime category, got %v", result.Category)
		}
		if !errors.Is(result, cause) {
			t.Error("Expected wrapped error to match its cause")
		}
		if len(result.Remediation) != 1 {
			t.Errorf("Expected 1 remediation step, got %d", len(result.Remediation))
		}
	})
}

func TestWrapWithMessage(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if WrapWithMessage(nil, Runtime, "wrapper") != nil {
			t.Error("Expected nil for nil input")
		}
	})

	t.Run("prefixes the message", func(t *testing.T) {
		t.Parallel()
		result := WrapWithMessage(&CLIError{Message: "inner"}, Runtime, "outer")
		if result.Message != "outer: inner" {
			t.Errorf("Expected 'outer: inner', got %q", result.Message)
		}
	})
}

func TestAsCLIError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		original := NewArgumentError("test")
		if AsCLIError(original) != original {
			t.Error("Expected same CLIError")
		}
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		t.Parallel()
		original := NewPrerequisiteError("inner")
		if AsCLIError(fmt.Errorf("outer: %w", original)) != original {
			t.Error("Expected CLIError to be found through %w")
		}
	})

	t.Run("other errors", func(t *testing.T) {
		t.Parallel()
		if AsCLIError(&testError{}) != nil {
			t.Error("Expected no CLIError for plain error")
		}
	})
}

// testError is a helper for testing non-CLIError errors
type testError struct{}

func (e *testError) Error() string { return "test error" }
