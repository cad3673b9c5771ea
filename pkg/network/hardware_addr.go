package network

import (
	"encoding/csv"
	"net"
	"strings"
)

// The hardware address parsers turn the output of per-platform OS utilities into a
// normalised xx:xx:xx:xx:xx:xx string. They are platform-neutral so every strategy can be
// exercised on any build host; the build-tagged files only choose which one runs.

// =============================================================================
// Types
// =============================================================================

// HardwareAddressResolver looks up the hardware address of a named interface. ok is false
// when the address could not be determined.
type HardwareAddressResolver interface {
	ResolveHardwareAddress(name string) (addr string, ok bool)
}

// unsupportedResolver never resolves anything.
type unsupportedResolver struct{}

func (unsupportedResolver) ResolveHardwareAddress(string) (string, bool) {
	return "", false
}

// =============================================================================
// Helpers
// =============================================================================

// normalizeHardwareAddr accepts a six-octet address in colon or dash form and renders it
// lowercase with colons.
func normalizeHardwareAddr(raw string) (string, bool) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return "", false
	}
	hw, err := net.ParseMAC(raw)
	if err != nil || len(hw) != 6 {
		return "", false
	}
	return hw.String(), true
}

// parseIfconfigEther scans ifconfig output for "ether <addr>" and returns the first token
// shaped like xx:xx:xx:xx:xx:xx.
func parseIfconfigEther(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "ether") {
			continue
		}
		fields := strings.Fields(line)
		for i, field := range fields {
			if field != "ether" || i+1 >= len(fields) {
				continue
			}
			candidate := fields[i+1]
			if len(candidate) != 17 || strings.Count(candidate, ":") != 5 {
				continue
			}
			if addr, ok := normalizeHardwareAddr(candidate); ok {
				return addr, true
			}
		}
	}
	return "", false
}

// parseGetmacCSV finds the getmac record for name and returns its physical address.
// Records whose connection-name column equals name are preferred over records that merely
// mention it. Verbose output (four columns) carries the address in the third column,
// terse output in the first.
func parseGetmacCSV(output, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	var fallback []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, name) {
			continue
		}
		record, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil || len(record) == 0 {
			continue
		}
		if len(record) >= 4 && record[0] == name {
			return getmacAddress(record)
		}
		if fallback == nil {
			fallback = record
		}
	}
	if fallback == nil {
		return "", false
	}
	return getmacAddress(fallback)
}

func getmacAddress(record []string) (string, bool) {
	column := 0
	if len(record) >= 4 {
		column = 2
	}
	return normalizeHardwareAddr(record[column])
}

// validInterfaceName rejects names that would escape a per-interface path.
func validInterfaceName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
