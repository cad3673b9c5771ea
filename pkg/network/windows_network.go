//go:build windows
// +build windows

package network

import (
	"time"

	"github.com/windsorcli/netdesk/pkg/shell"
)

// getmacResolver runs getmac and picks the record describing the interface.
type getmacResolver struct {
	shell   shell.Shell
	timeout time.Duration
}

// newPlatformResolver returns the Windows hardware address strategy.
func newPlatformResolver(sh shell.Shell, _ *Shims, timeout time.Duration) HardwareAddressResolver {
	return &getmacResolver{
		shell:   sh,
		timeout: timeout,
	}
}

// ResolveHardwareAddress runs `getmac /v /fo csv /nh` and parses the record for name.
func (r *getmacResolver) ResolveHardwareAddress(name string) (string, bool) {
	output, err := r.shell.ExecSilentWithTimeout("getmac", []string{"/v", "/fo", "csv", "/nh"}, r.timeout)
	if err != nil {
		return "", false
	}
	return parseGetmacCSV(output, name)
}
