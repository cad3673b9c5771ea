//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly
// +build !linux,!windows,!darwin,!freebsd,!netbsd,!openbsd,!dragonfly

package network

import (
	"time"

	"github.com/windsorcli/netdesk/pkg/shell"
)

// newPlatformResolver returns a resolver that never resolves; there is no known lookup here.
func newPlatformResolver(shell.Shell, *Shims, time.Duration) HardwareAddressResolver {
	return unsupportedResolver{}
}
