package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/windsorcli/netdesk/pkg/constants"
)

// The ConfigHandler resolves netdesk settings from three layers.
// Environment variables (NETDESK_ plus the upper-cased key with dots as underscores) win,
// then values set at runtime or loaded from the YAML config file, then built-in defaults.

// =============================================================================
// Constants
// =============================================================================

const configVersion = "v1alpha1"

// =============================================================================
// Types
// =============================================================================

// ConfigHandler defines the interface for handling configuration operations
type ConfigHandler interface {
	// LoadConfig loads the configuration from the specified path. A missing file is not an error.
	LoadConfig(path string) error

	// GetString retrieves a string value for the specified key
	GetString(key string, defaultValue ...string) string

	// GetBool retrieves a boolean value for the specified key
	GetBool(key string, defaultValue ...bool) bool

	// GetDuration retrieves a duration value for the specified key
	GetDuration(key string, defaultValue ...time.Duration) time.Duration

	// Set overrides the value for the specified key
	Set(key string, value string)
}

// YamlConfigHandler implements the ConfigHandler interface using goccy/go-yaml
type YamlConfigHandler struct {
	mu     sync.RWMutex
	path   string
	config Config
	values map[string]string
}

// =============================================================================
// Constructor
// =============================================================================

// NewYamlConfigHandler creates a new YamlConfigHandler with no file loaded.
func NewYamlConfigHandler() *YamlConfigHandler {
	return &YamlConfigHandler{
		values: map[string]string{},
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// LoadConfig loads the configuration from path. If the file does not exist, it does nothing.
func (y *YamlConfigHandler) LoadConfig(path string) error {
	if _, err := osStat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := osReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yamlUnmarshal(data, &cfg); err != nil {
		return fmt.Errorf("error unmarshalling yaml: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = configVersion
	} else if cfg.Version != configVersion {
		return fmt.Errorf("unsupported config version: %s", cfg.Version)
	}

	flat := cfg.Flatten()
	if raw, ok := flat["network.lookup_timeout"]; ok {
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid network.lookup_timeout %q: %w", raw, err)
		}
	}

	y.mu.Lock()
	defer y.mu.Unlock()
	y.path = path
	y.config = cfg
	for key, value := range flat {
		y.values[key] = value
	}
	return nil
}

// GetString retrieves a string value for the specified key.
func (y *YamlConfigHandler) GetString(key string, defaultValue ...string) string {
	if value, ok := y.lookup(key); ok {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return DefaultValues[key]
}

// GetBool retrieves a boolean value for the specified key. Unparsable values fall back to the default.
func (y *YamlConfigHandler) GetBool(key string, defaultValue ...bool) bool {
	if value, ok := y.lookup(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	parsed, _ := strconv.ParseBool(DefaultValues[key])
	return parsed
}

// GetDuration retrieves a duration value for the specified key. Unparsable values fall back to the default.
func (y *YamlConfigHandler) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if value, ok := y.lookup(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	parsed, _ := time.ParseDuration(DefaultValues[key])
	return parsed
}

// Set overrides the value for the specified key. Environment variables still take precedence.
func (y *YamlConfigHandler) Set(key string, value string) {
	y.mu.Lock()
	defer y.mu.Unlock()
	y.values[key] = value
}

// Path returns the path of the last loaded config file.
func (y *YamlConfigHandler) Path() string {
	y.mu.RLock()
	defer y.mu.RUnlock()
	return y.path
}

// =============================================================================
// Private Methods
// =============================================================================

// lookup returns the environment or stored value for key.
func (y *YamlConfigHandler) lookup(key string) (string, bool) {
	if value := osGetenv(EnvVarName(key)); value != "" {
		return value, true
	}
	y.mu.RLock()
	defer y.mu.RUnlock()
	value, ok := y.values[key]
	return value, ok
}

// =============================================================================
// Helpers
// =============================================================================

// EnvVarName returns the environment variable that overrides key.
func EnvVarName(key string) string {
	return constants.EnvPrefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Ensure YamlConfigHandler implements ConfigHandler
var _ ConfigHandler = (*YamlConfigHandler)(nil)
