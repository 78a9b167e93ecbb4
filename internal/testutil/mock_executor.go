// Package testutil provides test utilities and helpers for anthroping tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// Executor methods as recorded in CallRecord.Method.
const (
	MethodRun   = "Run"
	MethodStart = "Start"
)

// CallRecord records a single executor call with metadata.
type CallRecord struct {
	Method    string
	Name      string
	Args      []string
	Timestamp time.Time
	Error     error
}

// Script returns the argument following -e, which is how osascript receives scripts.
func (c CallRecord) Script() string {
	for i, arg := range c.Args {
		if arg == "-e" && i+1 < len(c.Args) {
			return c.Args[i+1]
		}
	}
	return ""
}

// MockExecutorBuilder provides a fluent API for configuring mock executor behavior.
type MockExecutorBuilder struct {
	runErrs   map[string]error
	startErrs map[string]error
	t         *testing.T
}

// NewMockExecutorBuilder creates a new MockExecutorBuilder for configuring mock behavior.
func NewMockExecutorBuilder(t *testing.T) *MockExecutorBuilder {
	t.Helper()

	return &MockExecutorBuilder{
		runErrs:   make(map[string]error),
		startErrs: make(map[string]error),
		t:         t,
	}
}

// WithRunError makes Run fail with err for the named program.
func (b *MockExecutorBuilder) WithRunError(name string, err error) *MockExecutorBuilder {
	b.runErrs[name] = err
	return b
}

// WithStartError makes Start fail with err for the named program.
func (b *MockExecutorBuilder) WithStartError(name string, err error) *MockExecutorBuilder {
	b.startErrs[name] = err
	return b
}

// Build returns the configured MockExecutor.
func (b *MockExecutorBuilder) Build() *MockExecutor {
	return &MockExecutor{builder: b}
}

// MockExecutor records every program it is asked to run instead of running it.
type MockExecutor struct {
	builder *MockExecutorBuilder
	mu      sync.Mutex
	calls   []CallRecord
}

// Run records a synchronous call and returns the configured error.
func (m *MockExecutor) Run(_ context.Context, name string, args ...string) error {
	return m.record(MethodRun, name, args, m.builder.runErrs[name])
}

// Start records a detached call and returns the configured error.
func (m *MockExecutor) Start(name string, args ...string) error {
	return m.record(MethodStart, name, args, m.builder.startErrs[name])
}

func (m *MockExecutor) record(method, name string, args []string, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, CallRecord{
		Method:    method,
		Name:      name,
		Args:      append([]string(nil), args...),
		Timestamp: time.Now(),
		Error:     err,
	})
	return err
}

// GetCalls returns all recorded calls.
func (m *MockExecutor) GetCalls() []CallRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]CallRecord, len(m.calls))
	copy(result, m.calls)
	return result
}

// GetCallCount returns the number of calls made.
func (m *MockExecutor) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// GetCallsTo returns calls filtered by program name.
func (m *MockExecutor) GetCallsTo(name string) []CallRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []CallRecord
	for _, call := range m.calls {
		if call.Name == name {
			result = append(result, call)
		}
	}
	return result
}

// LastScript returns the script of the most recent osascript call, or "".
func (m *MockExecutor) LastScript() string {
	calls := m.GetCallsTo("osascript")
	if len(calls) == 0 {
		return ""
	}
	return calls[len(calls)-1].Script()
}

// AssertCalled verifies that name was invoked through method with an argument
// containing substr.
func (m *MockExecutor) AssertCalled(t *testing.T, method, name, substr string) {
	t.Helper()

	for _, call := range m.GetCallsTo(name) {
		if call.Method != method {
			continue
		}
		for _, arg := range call.Args {
			if strings.Contains(arg, substr) {
				return
			}
		}
	}
	t.Errorf("expected %s(%s) with an argument containing %q, calls: %+v", method, name, substr, m.GetCalls())
}

// AssertNotCalled verifies that name was never invoked.
func (m *MockExecutor) AssertNotCalled(t *testing.T, name string) {
	t.Helper()

	if calls := m.GetCallsTo(name); len(calls) > 0 {
		t.Errorf("expected no calls to %s, got %d: %+v", name, len(calls), calls)
	}
}

// Reset clears all recorded calls.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
