package network

import (
	"context"
	"errors"
	"testing"

	gnet "github.com/shirou/gopsutil/net"
)

// =============================================================================
// Test Public Methods
// =============================================================================

func TestGopsutilInterfaceProvider_InterfaceAddresses(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given gopsutil reporting loopback and one ethernet interface
		provider := NewGopsutilInterfaceProvider()
		provider.shims.Interfaces = func(ctx context.Context) ([]gnet.InterfaceStat, error) {
			return []gnet.InterfaceStat{
				{
					Name:  "lo",
					Flags: []string{"up", "loopback"},
					Addrs: []gnet.InterfaceAddr{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}},
				},
				{
					Name:         "eth0",
					HardwareAddr: "00:11:22:33:44:55",
					Flags:        []string{"up", "broadcast", "multicast"},
					Addrs:        []gnet.InterfaceAddr{{Addr: "192.168.1.10/24"}, {Addr: "fe80::1/64"}},
				},
			}, nil
		}

		// When listing pairs
		pairs, err := provider.InterfaceAddresses(context.Background())

		// Then every address is flattened in order
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []struct {
			name     string
			ip       string
			loopback bool
		}{
			{"lo", "127.0.0.1", true},
			{"lo", "::1", true},
			{"eth0", "192.168.1.10", false},
			{"eth0", "fe80::1", false},
		}
		if len(pairs) != len(want) {
			t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
		}
		for i, w := range want {
			if pairs[i].Name != w.name || pairs[i].IP.String() != w.ip || pairs[i].Loopback != w.loopback {
				t.Errorf("pair %d: expected %+v, got %+v", i, w, pairs[i])
			}
		}
	})

	t.Run("ErrorPropagated", func(t *testing.T) {
		// Given gopsutil failing
		provider := NewGopsutilInterfaceProvider()
		provider.shims.Interfaces = func(ctx context.Context) ([]gnet.InterfaceStat, error) {
			return nil, errors.New("mock enumeration error")
		}

		// When listing pairs
		_, err := provider.InterfaceAddresses(context.Background())

		// Then the error is returned
		if err == nil || err.Error() != "mock enumeration error" {
			t.Fatalf("expected mock enumeration error, got %v", err)
		}
	})
}

// =============================================================================
// Test Helpers
// =============================================================================

func TestFlattenInterfaceStats(t *testing.T) {
	t.Run("DropsUnparsableAddresses", func(t *testing.T) {
		stats := []gnet.InterfaceStat{{
			Name:  "eth0",
			Addrs: []gnet.InterfaceAddr{{Addr: "garbage"}, {Addr: "10.0.0.2/24"}, {Addr: ""}},
		}}

		pairs := flattenInterfaceStats(stats)

		if len(pairs) != 1 || pairs[0].IP.String() != "10.0.0.2" {
			t.Fatalf("expected only 10.0.0.2, got %+v", pairs)
		}
	})

	t.Run("InterfaceWithoutAddresses", func(t *testing.T) {
		pairs := flattenInterfaceStats([]gnet.InterfaceStat{{Name: "docker0"}})

		if len(pairs) != 0 {
			t.Fatalf("expected no pairs, got %+v", pairs)
		}
	})
}

func TestParseInterfaceIP(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.0.0.2/24", "10.0.0.2"},
		{"192.168.1.10", "192.168.1.10"},
		{"fe80::1/64", "fe80::1"},
		{"fe80::1%eth0/64", "fe80::1"},
		{"fe80::1%eth0", "fe80::1"},
		{" 2001:db8::5 ", "2001:db8::5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ip := parseInterfaceIP(tt.input)
			if ip == nil || ip.String() != tt.want {
				t.Errorf("parseInterfaceIP(%q) = %v, want %s", tt.input, ip, tt.want)
			}
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		if ip := parseInterfaceIP("not-an-ip"); ip != nil {
			t.Errorf("expected nil, got %v", ip)
		}
	})
}
