package di

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// The Injector wires the netdesk components together. It is a thread-safe registry of named
// instances that can be looked up by name or by the interface they implement, so the CLI and
// the command bridge can share one shell, one config handler, and one interface reporter
// without importing each other's constructors.

// =============================================================================
// Types
// =============================================================================

// ErrNotRegistered is returned when a name has no registered instance.
var ErrNotRegistered = errors.New("no instance registered")

// Injector defines the methods for the injector.
type Injector interface {
	Register(name string, instance any)
	Resolve(name string) any
	ResolveAll(targetType any) ([]any, error)
}

// BaseInjector holds instances registered with the injector.
type BaseInjector struct {
	mu    sync.RWMutex
	items map[string]any
}

// =============================================================================
// Constructor
// =============================================================================

// NewInjector creates a new injector.
func NewInjector() *BaseInjector {
	return &BaseInjector{
		items: make(map[string]any),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Register registers an instance under name, replacing any previous registration.
func (i *BaseInjector) Register(name string, instance any) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items[name] = instance
}

// Resolve returns the instance registered under name, or nil.
func (i *BaseInjector) Resolve(name string) any {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.items[name]
}

// ResolveAll returns every registered instance implementing the interface targetType points to.
// Results are ordered by registration name.
func (i *BaseInjector) ResolveAll(targetType any) ([]any, error) {
	targetTypeValue := reflect.TypeOf(targetType)
	if targetTypeValue == nil || targetTypeValue.Kind() != reflect.Ptr || targetTypeValue.Elem().Kind() != reflect.Interface {
		return nil, fmt.Errorf("targetType must be a pointer to an interface")
	}
	targetTypeValue = targetTypeValue.Elem()

	i.mu.RLock()
	defer i.mu.RUnlock()

	names := make([]string, 0, len(i.items))
	for name := range i.items {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []any
	for _, name := range names {
		instance := i.items[name]
		if instance == nil {
			continue
		}
		if reflect.TypeOf(instance).Implements(targetTypeValue) {
			results = append(results, instance)
		}
	}
	return results, nil
}

// =============================================================================
// Helpers
// =============================================================================

// ResolveAs resolves name and asserts it to T.
func ResolveAs[T any](injector Injector, name string) (T, error) {
	var zero T
	instance := injector.Resolve(name)
	if instance == nil {
		return zero, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("resolved %s is %T, not %s", name, instance, reflect.TypeOf((*T)(nil)).Elem())
	}
	return typed, nil
}

// Ensure BaseInjector implements Injector interface
var _ Injector = (*BaseInjector)(nil)
