package network

import "context"

// MockInterfaceReporter is a mock implementation of the InterfaceReporter interface
type MockInterfaceReporter struct {
	InitializeFunc     func() error
	ListInterfacesFunc func(ctx context.Context) []InterfaceRecord
}

// NewMockInterfaceReporter creates a new instance of MockInterfaceReporter
func NewMockInterfaceReporter() *MockInterfaceReporter {
	return &MockInterfaceReporter{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockInterfaceReporter) Initialize() error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc()
	}
	return nil
}

// ListInterfaces calls the custom ListInterfacesFunc if provided, otherwise returns an empty list.
func (m *MockInterfaceReporter) ListInterfaces(ctx context.Context) []InterfaceRecord {
	if m.ListInterfacesFunc != nil {
		return m.ListInterfacesFunc(ctx)
	}
	return []InterfaceRecord{}
}

// MockInterfaceProvider is a mock implementation of the InterfaceProvider interface
type MockInterfaceProvider struct {
	InterfaceAddressesFunc func(ctx context.Context) ([]InterfaceAddress, error)
}

// InterfaceAddresses calls the custom InterfaceAddressesFunc if provided.
func (m *MockInterfaceProvider) InterfaceAddresses(ctx context.Context) ([]InterfaceAddress, error) {
	if m.InterfaceAddressesFunc != nil {
		return m.InterfaceAddressesFunc(ctx)
	}
	return nil, nil
}

// MockHardwareAddressResolver is a mock implementation of the HardwareAddressResolver interface
type MockHardwareAddressResolver struct {
	ResolveHardwareAddressFunc func(name string) (string, bool)
}

// ResolveHardwareAddress calls the custom ResolveHardwareAddressFunc if provided.
func (m *MockHardwareAddressResolver) ResolveHardwareAddress(name string) (string, bool) {
	if m.ResolveHardwareAddressFunc != nil {
		return m.ResolveHardwareAddressFunc(name)
	}
	return "", false
}

// Ensure the mocks implement their interfaces
var (
	_ InterfaceReporter       = (*MockInterfaceReporter)(nil)
	_ InterfaceProvider       = (*MockInterfaceProvider)(nil)
	_ HardwareAddressResolver = (*MockHardwareAddressResolver)(nil)
)
