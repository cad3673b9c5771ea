package network

import (
	"context"
	"net"
	"slices"
	"strings"

	gnet "github.com/shirou/gopsutil/net"
)

// =============================================================================
// Types
// =============================================================================

// InterfaceAddress is one interface/address pair as the operating system reports it.
type InterfaceAddress struct {
	Name     string
	IP       net.IP
	Loopback bool
}

// InterfaceProvider abstracts the system's interface enumeration
type InterfaceProvider interface {
	InterfaceAddresses(ctx context.Context) ([]InterfaceAddress, error)
}

// GopsutilInterfaceProvider enumerates interfaces with gopsutil
type GopsutilInterfaceProvider struct {
	shims *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewGopsutilInterfaceProvider creates a provider backed by gopsutil's net package
func NewGopsutilInterfaceProvider() *GopsutilInterfaceProvider {
	return &GopsutilInterfaceProvider{shims: NewShims()}
}

// =============================================================================
// Public Methods
// =============================================================================

// InterfaceAddresses returns every interface/address pair in the order the OS lists them.
func (p *GopsutilInterfaceProvider) InterfaceAddresses(ctx context.Context) ([]InterfaceAddress, error) {
	stats, err := p.shims.Interfaces(ctx)
	if err != nil {
		return nil, err
	}
	return flattenInterfaceStats(stats), nil
}

// =============================================================================
// Helpers
// =============================================================================

// flattenInterfaceStats expands each interface into one pair per bound address.
// Addresses gopsutil renders as CIDR are reduced to their IP; unparsable entries are dropped.
func flattenInterfaceStats(stats []gnet.InterfaceStat) []InterfaceAddress {
	var pairs []InterfaceAddress
	for _, stat := range stats {
		loopback := slices.Contains(stat.Flags, "loopback")
		for _, addr := range stat.Addrs {
			ip := parseInterfaceIP(addr.Addr)
			if ip == nil {
				continue
			}
			pairs = append(pairs, InterfaceAddress{
				Name:     stat.Name,
				IP:       ip,
				Loopback: loopback,
			})
		}
	}
	return pairs
}

// parseInterfaceIP accepts "10.0.0.2/24", "fe80::1%eth0/64", or a bare address.
func parseInterfaceIP(raw string) net.IP {
	raw = strings.TrimSpace(raw)
	if ip, _, err := net.ParseCIDR(raw); err == nil {
		return ip
	}
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '%'); i >= 0 {
		raw = raw[:i]
	}
	return net.ParseIP(raw)
}

// Ensure GopsutilInterfaceProvider implements InterfaceProvider
var _ InterfaceProvider = (*GopsutilInterfaceProvider)(nil)
