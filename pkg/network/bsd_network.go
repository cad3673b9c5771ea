//go:build darwin || freebsd || netbsd || openbsd || dragonfly
// +build darwin freebsd netbsd openbsd dragonfly

package network

import (
	"time"

	"github.com/windsorcli/netdesk/pkg/shell"
)

// ifconfigResolver runs ifconfig for one interface and picks the address off its ether line.
type ifconfigResolver struct {
	shell   shell.Shell
	timeout time.Duration
}

// newPlatformResolver returns the BSD-family hardware address strategy.
func newPlatformResolver(sh shell.Shell, _ *Shims, timeout time.Duration) HardwareAddressResolver {
	return &ifconfigResolver{
		shell:   sh,
		timeout: timeout,
	}
}

// ResolveHardwareAddress runs `ifconfig <name>` and parses its ether line.
func (r *ifconfigResolver) ResolveHardwareAddress(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	output, err := r.shell.ExecSilentWithTimeout("ifconfig", []string{name}, r.timeout)
	if err != nil {
		return "", false
	}
	return parseIfconfigEther(output)
}
