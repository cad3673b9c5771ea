package network

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/windsorcli/netdesk/pkg/config"
	"github.com/windsorcli/netdesk/pkg/di"
	"github.com/windsorcli/netdesk/pkg/shell"
)

// =============================================================================
// Test Setup
// =============================================================================

// ReporterMocks holds all the mock dependencies for InterfaceReporter
type ReporterMocks struct {
	Injector                    di.Injector
	MockShell                   *shell.MockShell
	MockConfigHandler           *config.MockConfigHandler
	MockInterfaceProvider       *MockInterfaceProvider
	MockHardwareAddressResolver *MockHardwareAddressResolver
}

var hardwareAddrPattern = regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)

func setupReporterMocks(t *testing.T) *ReporterMocks {
	t.Helper()
	injector := di.NewInjector()

	mockShell := shell.NewMockShell()
	mockConfigHandler := config.NewMockConfigHandler()

	mockInterfaceProvider := &MockInterfaceProvider{
		InterfaceAddressesFunc: func(ctx context.Context) ([]InterfaceAddress, error) {
			return []InterfaceAddress{
				{Name: "lo", IP: net.ParseIP("127.0.0.1"), Loopback: true},
				{Name: "eth0", IP: net.ParseIP("192.168.1.10")},
				{Name: "eth0", IP: net.ParseIP("fe80::1")},
				{Name: "wlan0", IP: net.ParseIP("10.0.0.2")},
				{Name: "lo", IP: net.ParseIP("::1"), Loopback: true},
			}, nil
		},
	}

	mockResolver := &MockHardwareAddressResolver{
		ResolveHardwareAddressFunc: func(name string) (string, bool) {
			switch name {
			case "eth0":
				return "00:11:22:33:44:55", true
			default:
				return "", false
			}
		},
	}

	injector.Register("shell", mockShell)
	injector.Register("configHandler", mockConfigHandler)
	injector.Register("interfaceProvider", mockInterfaceProvider)
	injector.Register("hardwareAddressResolver", mockResolver)

	return &ReporterMocks{
		Injector:                    injector,
		MockShell:                   mockShell,
		MockConfigHandler:           mockConfigHandler,
		MockInterfaceProvider:       mockInterfaceProvider,
		MockHardwareAddressResolver: mockResolver,
	}
}

func newInitializedReporter(t *testing.T, mocks *ReporterMocks) *BaseInterfaceReporter {
	t.Helper()
	reporter := NewBaseInterfaceReporter(mocks.Injector)
	if err := reporter.Initialize(); err != nil {
		t.Fatalf("expected no error initializing reporter, got %v", err)
	}
	return reporter
}

// =============================================================================
// Test Public Methods
// =============================================================================

func TestInterfaceReporter_Initialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given configured lookup settings
		mocks := setupReporterMocks(t)
		mocks.MockConfigHandler.GetDurationFunc = func(key string, defaultValue ...time.Duration) time.Duration {
			if key == "network.lookup_timeout" {
				return 2 * time.Second
			}
			return 0
		}
		mocks.MockConfigHandler.GetBoolFunc = func(key string, defaultValue ...bool) bool {
			return false
		}

		// When initializing
		reporter := newInitializedReporter(t, mocks)

		// Then the settings and injected collaborators are used
		if reporter.lookupTimeout != 2*time.Second {
			t.Errorf("expected lookup timeout 2s, got %v", reporter.lookupTimeout)
		}
		if reporter.cacheLookups {
			t.Error("expected cacheLookups to be false")
		}
		if reporter.provider != mocks.MockInterfaceProvider {
			t.Error("expected injected interface provider")
		}
		if reporter.resolver != mocks.MockHardwareAddressResolver {
			t.Error("expected injected hardware address resolver")
		}
	})

	t.Run("DefaultCollaborators", func(t *testing.T) {
		// Given no provider or resolver in the injector
		injector := di.NewInjector()
		injector.Register("shell", shell.NewMockShell())
		injector.Register("configHandler", config.NewMockConfigHandler())

		// When initializing
		reporter := NewBaseInterfaceReporter(injector)
		if err := reporter.Initialize(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// Then gopsutil and the platform resolver are selected
		if _, ok := reporter.provider.(*GopsutilInterfaceProvider); !ok {
			t.Errorf("expected gopsutil provider, got %T", reporter.provider)
		}
		if reporter.resolver == nil {
			t.Error("expected a platform resolver")
		}
		if !reporter.cacheLookups {
			t.Error("expected cacheLookups to default to true")
		}
	})

	t.Run("ErrorResolvingShell", func(t *testing.T) {
		mocks := setupReporterMocks(t)
		mocks.Injector.Register("shell", "invalid")

		err := NewBaseInterfaceReporter(mocks.Injector).Initialize()
		if err == nil || err.Error() != "resolved shell instance is not of type shell.Shell" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ErrorResolvingConfigHandler", func(t *testing.T) {
		mocks := setupReporterMocks(t)
		mocks.Injector.Register("configHandler", "invalid")

		err := NewBaseInterfaceReporter(mocks.Injector).Initialize()
		if err == nil || err.Error() != "error resolving configHandler" {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInterfaceReporter_ListInterfaces(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given a host with loopback, a dual-stack eth0, and wlan0
		mocks := setupReporterMocks(t)
		reporter := newInitializedReporter(t, mocks)

		// When listing interfaces
		records := reporter.ListInterfaces(context.Background())

		// Then loopback pairs are gone and OS order is kept
		want := []InterfaceRecord{
			{Name: "eth0", Address: "192.168.1.10", HardwareAddress: "00:11:22:33:44:55"},
			{Name: "eth0", Address: "fe80::1", HardwareAddress: "00:11:22:33:44:55"},
			{Name: "wlan0", Address: "10.0.0.2", HardwareAddress: "N/A"},
		}
		if len(records) != len(want) {
			t.Fatalf("expected %d records, got %d: %v", len(want), len(records), records)
		}
		for i := range want {
			if records[i] != want[i] {
				t.Errorf("record %d: expected %+v, got %+v", i, want[i], records[i])
			}
		}
	})

	t.Run("UnsupportedPlatformScenario", func(t *testing.T) {
		// Given one non-loopback interface and a resolver that never resolves
		mocks := setupReporterMocks(t)
		mocks.MockInterfaceProvider.InterfaceAddressesFunc = func(ctx context.Context) ([]InterfaceAddress, error) {
			return []InterfaceAddress{{Name: "eth0", IP: net.ParseIP("192.168.1.10")}}, nil
		}
		mocks.Injector.Register("hardwareAddressResolver", unsupportedResolver{})
		reporter := newInitializedReporter(t, mocks)

		// When listing interfaces
		records := reporter.ListInterfaces(context.Background())

		// Then the single record carries the sentinel
		want := InterfaceRecord{Name: "eth0", Address: "192.168.1.10", HardwareAddress: "N/A"}
		if len(records) != 1 || records[0] != want {
			t.Fatalf("expected [%+v], got %+v", want, records)
		}
	})

	t.Run("LoopbackAddressOnUnflaggedInterface", func(t *testing.T) {
		// Given a loopback address reported on an interface without the loopback flag
		mocks := setupReporterMocks(t)
		mocks.MockInterfaceProvider.InterfaceAddressesFunc = func(ctx context.Context) ([]InterfaceAddress, error) {
			return []InterfaceAddress{
				{Name: "lo0", IP: net.ParseIP("127.0.0.1")},
				{Name: "en0", IP: net.ParseIP("10.1.1.1")},
			}, nil
		}
		reporter := newInitializedReporter(t, mocks)

		// When listing interfaces
		records := reporter.ListInterfaces(context.Background())

		// Then only en0 remains
		if len(records) != 1 || records[0].Name != "en0" {
			t.Fatalf("expected only en0, got %+v", records)
		}
	})

	t.Run("EnumerationFailure", func(t *testing.T) {
		// Given a provider that fails
		mocks := setupReporterMocks(t)
		mocks.MockInterfaceProvider.InterfaceAddressesFunc = func(ctx context.Context) ([]InterfaceAddress, error) {
			return nil, errors.New("getifaddrs: operation not permitted")
		}
		reporter := newInitializedReporter(t, mocks)

		// When listing interfaces
		records := reporter.ListInterfaces(context.Background())

		// Then an empty, non-nil list is returned
		if records == nil {
			t.Fatal("expected a non-nil slice")
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %+v", records)
		}
	})

	t.Run("NoInterfaces", func(t *testing.T) {
		mocks := setupReporterMocks(t)
		mocks.MockInterfaceProvider.InterfaceAddressesFunc = func(ctx context.Context) ([]InterfaceAddress, error) {
			return nil, nil
		}
		reporter := newInitializedReporter(t, mocks)

		records := reporter.ListInterfaces(context.Background())
		if records == nil || len(records) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", records)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		reporter := NewBaseInterfaceReporter(di.NewInjector())

		records := reporter.ListInterfaces(context.Background())
		if records == nil || len(records) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", records)
		}
	})

	t.Run("CachesLookupsWithinOneCall", func(t *testing.T) {
		// Given a resolver that counts lookups
		mocks := setupReporterMocks(t)
		calls := map[string]int{}
		mocks.MockHardwareAddressResolver.ResolveHardwareAddressFunc = func(name string) (string, bool) {
			calls[name]++
			return "aa:bb:cc:dd:ee:ff", true
		}
		reporter := newInitializedReporter(t, mocks)

		// When listing interfaces twice
		reporter.ListInterfaces(context.Background())
		reporter.ListInterfaces(context.Background())

		// Then eth0 is looked up once per call despite two addresses
		if calls["eth0"] != 2 {
			t.Errorf("expected 2 eth0 lookups across two calls, got %d", calls["eth0"])
		}
	})

	t.Run("RedundantLookupsWhenCachingDisabled", func(t *testing.T) {
		mocks := setupReporterMocks(t)
		mocks.MockConfigHandler.GetBoolFunc = func(key string, defaultValue ...bool) bool {
			return false
		}
		calls := 0
		mocks.MockHardwareAddressResolver.ResolveHardwareAddressFunc = func(name string) (string, bool) {
			if name == "eth0" {
				calls++
			}
			return "", false
		}
		reporter := newInitializedReporter(t, mocks)

		reporter.ListInterfaces(context.Background())

		if calls != 2 {
			t.Errorf("expected 2 eth0 lookups, got %d", calls)
		}
	})

	t.Run("HardwareAddressShape", func(t *testing.T) {
		mocks := setupReporterMocks(t)
		reporter := newInitializedReporter(t, mocks)

		for _, record := range reporter.ListInterfaces(context.Background()) {
			if record.HardwareAddress == "N/A" {
				continue
			}
			if !hardwareAddrPattern.MatchString(record.HardwareAddress) {
				t.Errorf("unexpected hardware address %q", record.HardwareAddress)
			}
		}
	})
}
