package config

import "time"

// MockConfigHandler is a mock implementation of the ConfigHandler interface
type MockConfigHandler struct {
	LoadConfigFunc  func(path string) error
	GetStringFunc   func(key string, defaultValue ...string) string
	GetBoolFunc     func(key string, defaultValue ...bool) bool
	GetDurationFunc func(key string, defaultValue ...time.Duration) time.Duration
	SetFunc         func(key string, value string)
}

// =============================================================================
// Constructor
// =============================================================================

// NewMockConfigHandler is a constructor for MockConfigHandler
func NewMockConfigHandler() *MockConfigHandler {
	return &MockConfigHandler{}
}

// =============================================================================
// Public Methods
// =============================================================================

// LoadConfig calls the mock LoadConfigFunc if set, otherwise returns nil
func (m *MockConfigHandler) LoadConfig(path string) error {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(path)
	}
	return nil
}

// GetString calls the mock GetStringFunc if set, otherwise returns the default value
func (m *MockConfigHandler) GetString(key string, defaultValue ...string) string {
	if m.GetStringFunc != nil {
		return m.GetStringFunc(key, defaultValue...)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool calls the mock GetBoolFunc if set, otherwise returns the default value
func (m *MockConfigHandler) GetBool(key string, defaultValue ...bool) bool {
	if m.GetBoolFunc != nil {
		return m.GetBoolFunc(key, defaultValue...)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration calls the mock GetDurationFunc if set, otherwise returns the default value
func (m *MockConfigHandler) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if m.GetDurationFunc != nil {
		return m.GetDurationFunc(key, defaultValue...)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Set calls the mock SetFunc if set
func (m *MockConfigHandler) Set(key string, value string) {
	if m.SetFunc != nil {
		m.SetFunc(key, value)
	}
}

// Ensure MockConfigHandler implements ConfigHandler
var _ ConfigHandler = (*MockConfigHandler)(nil)
