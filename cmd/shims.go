// The shims file is a system call abstraction layer for the commands
// It provides mockable wrappers around process and terminal functions

package cmd

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/term"
)

// =============================================================================
// Types
// =============================================================================

// Shims provides mockable wrappers around system and runtime functions
type Shims struct {
	UserHomeDir   func() (string, error)
	Getenv        func(string) string
	IsTerminal    func(fd int) bool
	NotifyContext func(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc)
}

// =============================================================================
// Helpers
// =============================================================================

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		UserHomeDir:   os.UserHomeDir,
		Getenv:        os.Getenv,
		IsTerminal:    term.IsTerminal,
		NotifyContext: signal.NotifyContext,
	}
}

