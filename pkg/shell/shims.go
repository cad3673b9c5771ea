// The shims package is a system call abstraction layer
// It provides mockable wrappers around process execution
// It serves as a testing aid by allowing system calls to be intercepted

package shell

import (
	"os"
	"os/exec"
)

// =============================================================================
// Types
// =============================================================================

// Shims provides mockable wrappers around system and runtime functions
type Shims struct {
	Command  func(name string, arg ...string) *exec.Cmd
	Environ  func() []string
	LookPath func(file string) (string, error)
	CmdRun   func(cmd *exec.Cmd) error
	CmdStart func(cmd *exec.Cmd) error
	CmdWait  func(cmd *exec.Cmd) error
}

// =============================================================================
// Constructor
// =============================================================================

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		Command:  exec.Command,
		Environ:  os.Environ,
		LookPath: exec.LookPath,
		CmdRun:   (*exec.Cmd).Run,
		CmdStart: (*exec.Cmd).Start,
		CmdWait:  (*exec.Cmd).Wait,
	}
}
