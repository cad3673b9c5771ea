//go:build linux
// +build linux

package network

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/vishvananda/netlink"
	"github.com/windsorcli/netdesk/pkg/shell"
)

// sysfsNetRoot is where the kernel exposes one directory per interface.
const sysfsNetRoot = "/sys/class/net"

// sysfsResolver reads /sys/class/net/<name>/address and falls back to a netlink link
// lookup when sysfs is not mounted or not readable.
type sysfsResolver struct {
	readFile         func(name string) ([]byte, error)
	linkHardwareAddr func(name string) (net.HardwareAddr, error)
}

// newPlatformResolver returns the Linux hardware address strategy. Linux needs no external
// utility, so the shell and timeout are unused.
func newPlatformResolver(_ shell.Shell, shims *Shims, _ time.Duration) HardwareAddressResolver {
	return &sysfsResolver{
		readFile:         shims.ReadFile,
		linkHardwareAddr: netlinkHardwareAddr,
	}
}

// ResolveHardwareAddress returns the trimmed sysfs address of name.
func (r *sysfsResolver) ResolveHardwareAddress(name string) (string, bool) {
	if !validInterfaceName(name) {
		return "", false
	}
	data, err := r.readFile(fmt.Sprintf("%s/%s/address", sysfsNetRoot, name))
	if err == nil {
		return normalizeHardwareAddr(strings.TrimSpace(string(data)))
	}
	if r.linkHardwareAddr == nil {
		return "", false
	}
	hw, err := r.linkHardwareAddr(name)
	if err != nil {
		return "", false
	}
	return normalizeHardwareAddr(hw.String())
}

// netlinkHardwareAddr asks the kernel for the link's hardware address over netlink.
func netlinkHardwareAddr(name string) (net.HardwareAddr, error) {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return nil, fmt.Errorf("error looking up link %s: %w", name, err)
	}
	return link.Attrs().HardwareAddr, nil
}
