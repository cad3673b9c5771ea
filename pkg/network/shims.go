package network

import (
	"context"
	"os"
	"runtime"

	gnet "github.com/shirou/gopsutil/net"
)

// =============================================================================
// Types
// =============================================================================

// Shims provides mockable wrappers around the system calls the reporter makes
type Shims struct {
	ReadFile   func(name string) ([]byte, error)
	Interfaces func(ctx context.Context) ([]gnet.InterfaceStat, error)
	Goos       func() string
}

// =============================================================================
// Constructor
// =============================================================================

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		ReadFile: os.ReadFile,
		Interfaces: func(ctx context.Context) ([]gnet.InterfaceStat, error) {
			return gnet.InterfacesWithContext(ctx)
		},
		Goos: func() string { return runtime.GOOS },
	}
}
