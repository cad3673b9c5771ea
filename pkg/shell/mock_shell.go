package shell

import (
	"fmt"
	"time"
)

// MockShell simulates a shell for testing purposes.
type MockShell struct {
	ExecSilentFunc            func(command string, args ...string) (string, error)
	ExecSilentWithTimeoutFunc func(command string, args []string, timeout time.Duration) (string, error)
	LookPathFunc              func(command string) (string, error)
}

// NewMockShell creates a new instance of MockShell.
func NewMockShell() *MockShell {
	return &MockShell{}
}

// ExecSilent calls the custom ExecSilentFunc if provided.
func (s *MockShell) ExecSilent(command string, args ...string) (string, error) {
	if s.ExecSilentFunc != nil {
		return s.ExecSilentFunc(command, args...)
	}
	return "", nil
}

// ExecSilentWithTimeout calls the custom ExecSilentWithTimeoutFunc if provided, otherwise
// falls back to ExecSilentFunc.
func (s *MockShell) ExecSilentWithTimeout(command string, args []string, timeout time.Duration) (string, error) {
	if s.ExecSilentWithTimeoutFunc != nil {
		return s.ExecSilentWithTimeoutFunc(command, args, timeout)
	}
	return s.ExecSilent(command, args...)
}

// LookPath calls the custom LookPathFunc if provided.
func (s *MockShell) LookPath(command string) (string, error) {
	if s.LookPathFunc != nil {
		return s.LookPathFunc(command)
	}
	return "", fmt.Errorf("LookPath not implemented")
}

// Ensure MockShell implements the Shell interface
var _ Shell = (*MockShell)(nil)
