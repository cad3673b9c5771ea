package di

import (
	"fmt"
	"sync"
)

// MockInjector extends the BaseInjector with error simulation for tests
type MockInjector struct {
	*BaseInjector
	resolveAllErrors map[string]error
	mu               sync.RWMutex
}

// NewMockInjector creates a new mock DI injector
func NewMockInjector() *MockInjector {
	return &MockInjector{
		BaseInjector:     NewInjector(),
		resolveAllErrors: make(map[string]error),
	}
}

// SetResolveAllError makes ResolveAll fail with err for targets of the same type as targetType
func (m *MockInjector) SetResolveAllError(targetType any, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolveAllErrors[fmt.Sprintf("%T", targetType)] = err
}

// ResolveAll returns the simulated error for targetType if one is set
func (m *MockInjector) ResolveAll(targetType any) ([]any, error) {
	m.mu.RLock()
	err, ok := m.resolveAllErrors[fmt.Sprintf("%T", targetType)]
	m.mu.RUnlock()
	if ok {
		return nil, err
	}
	return m.BaseInjector.ResolveAll(targetType)
}

// Ensure MockInjector implements Injector interface
var _ Injector = (*MockInjector)(nil)
