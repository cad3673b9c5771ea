package network

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/windsorcli/netdesk/pkg/config"
	"github.com/windsorcli/netdesk/pkg/constants"
	"github.com/windsorcli/netdesk/pkg/di"
	"github.com/windsorcli/netdesk/pkg/shell"
)

// The network package reports the host's non-loopback interfaces to the desktop frontend.
// Enumeration never fails as a whole: an unavailable OS facility yields an empty list and an
// unresolvable hardware address yields the "N/A" sentinel. Hardware address lookup is
// platform specific and chosen at build time, see the *_network.go files.

// =============================================================================
// Types
// =============================================================================

// InterfaceRecord is one non-loopback interface/address pair at the moment of query.
type InterfaceRecord struct {
	Name            string `json:"name" yaml:"name"`
	Address         string `json:"ip" yaml:"ip"`
	HardwareAddress string `json:"mac" yaml:"mac"`
}

// InterfaceReporter lists the host's network interfaces
type InterfaceReporter interface {
	// Initialize resolves dependencies from the injector
	Initialize() error
	// ListInterfaces returns one record per non-loopback interface/address pair
	ListInterfaces(ctx context.Context) []InterfaceRecord
}

// BaseInterfaceReporter is the default InterfaceReporter
type BaseInterfaceReporter struct {
	injector      di.Injector
	shell         shell.Shell
	configHandler config.ConfigHandler
	provider      InterfaceProvider
	resolver      HardwareAddressResolver
	shims         *Shims
	lookupTimeout time.Duration
	cacheLookups  bool
	logger        *slog.Logger
}

// =============================================================================
// Constructor
// =============================================================================

// NewBaseInterfaceReporter creates a new BaseInterfaceReporter
func NewBaseInterfaceReporter(injector di.Injector) *BaseInterfaceReporter {
	return &BaseInterfaceReporter{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize resolves the shell and config handler, reads the lookup settings, and selects
// the interface provider and the platform hardware address resolver. An "interfaceProvider"
// or "hardwareAddressResolver" registered in the injector replaces the default.
func (r *BaseInterfaceReporter) Initialize() error {
	shellInterface, ok := r.injector.Resolve("shell").(shell.Shell)
	if !ok {
		return fmt.Errorf("resolved shell instance is not of type shell.Shell")
	}
	r.shell = shellInterface

	configHandler, ok := r.injector.Resolve("configHandler").(config.ConfigHandler)
	if !ok {
		return fmt.Errorf("error resolving configHandler")
	}
	r.configHandler = configHandler

	r.lookupTimeout = r.configHandler.GetDuration("network.lookup_timeout", constants.DefaultLookupTimeout)
	r.cacheLookups = r.configHandler.GetBool("network.cache_lookups", true)
	r.logger = slog.Default().With(slog.String("component", "network"))

	if provider, ok := r.injector.Resolve("interfaceProvider").(InterfaceProvider); ok {
		r.provider = provider
	} else {
		r.provider = NewGopsutilInterfaceProvider()
	}

	if resolver, ok := r.injector.Resolve("hardwareAddressResolver").(HardwareAddressResolver); ok {
		r.resolver = resolver
	} else {
		r.resolver = newPlatformResolver(r.shell, r.shims, r.lookupTimeout)
	}

	r.logger.Debug("interface reporter initialized",
		slog.String("os", r.shims.Goos()),
		slog.Duration("lookup_timeout", r.lookupTimeout),
		slog.Bool("cache_lookups", r.cacheLookups),
	)
	return nil
}

// ListInterfaces queries the OS for every interface/address pair, drops loopback pairs, and
// resolves each remaining interface's hardware address. Records keep the OS order. The result
// is never nil; if enumeration fails it is empty.
func (r *BaseInterfaceReporter) ListInterfaces(ctx context.Context) []InterfaceRecord {
	records := []InterfaceRecord{}
	if r.provider == nil || r.resolver == nil {
		return records
	}

	pairs, err := r.provider.InterfaceAddresses(ctx)
	if err != nil {
		r.log().Debug("interface enumeration failed", slog.Any("error", err))
		return records
	}

	var resolved map[string]string
	if r.cacheLookups {
		resolved = make(map[string]string)
	}

	for _, pair := range pairs {
		if pair.Loopback || pair.IP.IsLoopback() {
			continue
		}
		records = append(records, InterfaceRecord{
			Name:            pair.Name,
			Address:         pair.IP.String(),
			HardwareAddress: r.hardwareAddress(pair.Name, resolved),
		})
	}
	return records
}

// =============================================================================
// Private Methods
// =============================================================================

// hardwareAddress resolves name, consulting and filling resolved when it is non-nil.
func (r *BaseInterfaceReporter) hardwareAddress(name string, resolved map[string]string) string {
	if addr, ok := resolved[name]; ok {
		return addr
	}
	addr, ok := r.resolver.ResolveHardwareAddress(name)
	if !ok {
		r.log().Debug("hardware address unresolved", slog.String("interface", name))
		addr = constants.UnresolvedHardwareAddress
	}
	if resolved != nil {
		resolved[name] = addr
	}
	return addr
}

func (r *BaseInterfaceReporter) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Ensure BaseInterfaceReporter implements InterfaceReporter
var _ InterfaceReporter = (*BaseInterfaceReporter)(nil)
