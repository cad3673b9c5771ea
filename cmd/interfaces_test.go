package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/windsorcli/netdesk/pkg/network"
)

func TestInterfacesCmd(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		// Given a reporter with two records
		setupMocks(t)

		// When listing interfaces
		stdout, _, err := runCmd(t, "interfaces")

		// Then a table is printed
		if err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected header and two rows, got %q", stdout)
		}
		if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "NAME IP MAC" {
			t.Errorf("Unexpected header %q", lines[0])
		}
		if fields := strings.Fields(lines[2]); strings.Join(fields, " ") != "wlan0 10.0.0.2 N/A" {
			t.Errorf("Unexpected row %q", lines[2])
		}
	})

	t.Run("JSON", func(t *testing.T) {
		setupMocks(t)

		stdout, _, err := runCmd(t, "interfaces", "-o", "json")

		if err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		var records []map[string]string
		if err := json.Unmarshal([]byte(stdout), &records); err != nil {
			t.Fatalf("Expected JSON, got %q: %v", stdout, err)
		}
		if len(records) != 2 || records[0]["name"] != "eth0" || records[0]["ip"] != "192.168.1.10" || records[0]["mac"] != "00:11:22:33:44:55" {
			t.Errorf("Unexpected records %v", records)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		setupMocks(t)

		stdout, _, err := runCmd(t, "interfaces", "--output", "yaml")

		if err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		for _, want := range []string{"name: eth0", "ip: 192.168.1.10", "mac: N/A"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("Expected %q in output %q", want, stdout)
			}
		}
	})

	t.Run("EmptyJSON", func(t *testing.T) {
		// Given a host with no reportable interfaces
		mocks := setupMocks(t)
		mocks.InterfaceReporter.ListInterfacesFunc = func(ctx context.Context) []network.InterfaceRecord {
			return []network.InterfaceRecord{}
		}

		// When listing as JSON
		stdout, _, err := runCmd(t, "interfaces", "-o", "json")

		// Then an empty array is printed
		if err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		if strings.TrimSpace(stdout) != "[]" {
			t.Errorf("Expected [], got %q", stdout)
		}
	})

	t.Run("InteractiveTerminal", func(t *testing.T) {
		// Given an interactive stderr
		mocks := setupMocks(t)
		mocks.Shims.IsTerminal = func(int) bool { return true }

		// When listing interfaces
		stdout, _, err := runCmd(t, "interfaces", "-o", "json")

		// Then the records are still printed to stdout
		if err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		if !strings.Contains(stdout, "eth0") {
			t.Errorf("Expected records in output, got %q", stdout)
		}
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		setupMocks(t)

		_, _, err := runCmd(t, "interfaces", "-o", "xml")

		if err == nil || !strings.Contains(err.Error(), "Unsupported output format") {
			t.Fatalf("Expected format error, got %v", err)
		}
	})

	t.Run("ReporterMissing", func(t *testing.T) {
		// Given an injector with a reporter of the wrong type
		mocks := setupMocks(t)
		mocks.Injector.Register("interfaceReporter", "invalid")

		// When listing interfaces the pre-run builds a real reporter in its place
		if _, _, err := runCmd(t, "interfaces", "-o", "json"); err != nil {
			t.Fatalf("Expected success, got error: %v", err)
		}
		if _, ok := mocks.Injector.Resolve("interfaceReporter").(*network.BaseInterfaceReporter); !ok {
			t.Error("Expected a BaseInterfaceReporter to be registered")
		}
	})
}
