package shell

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// The Shell package runs the operating system utilities netdesk depends on.
// Commands run detached from the controlling terminal with stdout and stderr captured,
// so a desktop host never sees a console window or a stray prompt.
// Callers treat any returned error as "the utility gave no usable answer".

// =============================================================================
// Types
// =============================================================================

// Shell is the interface that defines shell operations.
type Shell interface {
	ExecSilent(command string, args ...string) (string, error)
	ExecSilentWithTimeout(command string, args []string, timeout time.Duration) (string, error)
	LookPath(command string) (string, error)
}

// DefaultShell is the default implementation of the Shell interface
type DefaultShell struct {
	shims  *Shims
	logger *slog.Logger
}

// =============================================================================
// Constructor
// =============================================================================

// NewDefaultShell creates a new instance of DefaultShell
func NewDefaultShell(logger *slog.Logger) *DefaultShell {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultShell{
		shims:  NewShims(),
		logger: logger.With(slog.String("component", "shell")),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// ExecSilent runs a command quietly and returns its stdout. A command that cannot be
// started or exits non-zero returns an error carrying its stderr.
func (s *DefaultShell) ExecSilent(command string, args ...string) (string, error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := s.shims.Command(command, args...)
	if cmd == nil {
		return "", fmt.Errorf("failed to create command")
	}

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.SysProcAttr = detachedProcAttr()
	if cmd.Env == nil {
		cmd.Env = s.shims.Environ()
	}

	start := time.Now()
	err := s.shims.CmdRun(cmd)
	s.logExec(command, args, start, err)
	if err != nil {
		return stdoutBuf.String(), fmt.Errorf("command execution failed: %w\n%s", err, stderrBuf.String())
	}
	return stdoutBuf.String(), nil
}

// ExecSilentWithTimeout behaves like ExecSilent but kills the process once timeout elapses.
// A non-positive timeout disables the limit.
func (s *DefaultShell) ExecSilentWithTimeout(command string, args []string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		return s.ExecSilent(command, args...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := s.shims.Command(command, args...)
	if cmd == nil {
		return "", fmt.Errorf("failed to create command")
	}

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.SysProcAttr = detachedProcAttr()
	if cmd.Env == nil {
		cmd.Env = s.shims.Environ()
	}

	start := time.Now()
	if err := s.shims.CmdStart(cmd); err != nil {
		s.logExec(command, args, start, err)
		return "", fmt.Errorf("command start failed: %w", err)
	}

	var waitOnce sync.Once
	execFn := func() (string, error) {
		var waitErr error
		waitOnce.Do(func() {
			waitErr = s.shims.CmdWait(cmd)
		})
		if waitErr != nil {
			return stdoutBuf.String(), fmt.Errorf("command execution failed: %w\n%s", waitErr, stderrBuf.String())
		}
		return stdoutBuf.String(), nil
	}

	cleanupFn := func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			waitOnce.Do(func() {
				_ = s.shims.CmdWait(cmd)
			})
		}
	}

	out, err := executeWithTimeout(execFn, cleanupFn, timeout)
	s.logExec(command, args, start, err)
	return out, err
}

// LookPath reports where command would be found on PATH.
func (s *DefaultShell) LookPath(command string) (string, error) {
	return s.shims.LookPath(command)
}

// =============================================================================
// Private Methods
// =============================================================================

func (s *DefaultShell) logExec(command string, args []string, start time.Time, err error) {
	attrs := []any{
		slog.String("command", strings.TrimSpace(command+" "+strings.Join(args, " "))),
		slog.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	s.logger.Debug("exec", attrs...)
}

// =============================================================================
// Helper Functions
// =============================================================================

// executeWithTimeout runs execFn and returns its result, or calls cleanupFn and fails once timeout
// elapses. cleanupFn runs exactly once either way.
func executeWithTimeout(execFn func() (string, error), cleanupFn func(), timeout time.Duration) (string, error) {
	type result struct {
		out string
		err error
	}
	resultChan := make(chan result, 1)
	var cleanupOnce sync.Once
	go func() {
		defer cleanupOnce.Do(cleanupFn)
		out, err := execFn()
		resultChan <- result{out: out, err: err}
	}()

	select {
	case res := <-resultChan:
		return res.out, res.err
	case <-time.After(timeout):
		cleanupOnce.Do(cleanupFn)
		return "", fmt.Errorf("command timed out after %v", timeout)
	}
}

// =============================================================================
// Interface Compliance
// =============================================================================

// Ensure DefaultShell implements the Shell interface
var _ Shell = (*DefaultShell)(nil)
