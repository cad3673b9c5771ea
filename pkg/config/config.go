package config

import "strconv"

// The Config types describe the on-disk netdesk configuration file.
// Every field is optional; unset fields fall back to environment variables and built-in defaults.

// =============================================================================
// Types
// =============================================================================

// Config is the root of the configuration file.
type Config struct {
	Version string         `yaml:"version,omitempty"`
	Server  *ServerConfig  `yaml:"server,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty"`
	Network *NetworkConfig `yaml:"network,omitempty"`
}

// ServerConfig configures the command bridge server.
type ServerConfig struct {
	Address *string `yaml:"address,omitempty"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  *string `yaml:"level,omitempty"`
	Format *string `yaml:"format,omitempty"`
}

// NetworkConfig configures interface enumeration.
type NetworkConfig struct {
	LookupTimeout *string `yaml:"lookup_timeout,omitempty"`
	CacheLookups  *bool   `yaml:"cache_lookups,omitempty"`
}

// =============================================================================
// Public Methods
// =============================================================================

// Flatten returns the set fields of the config keyed by their dotted path.
func (c *Config) Flatten() map[string]string {
	values := map[string]string{}
	if c == nil {
		return values
	}
	if c.Server != nil && c.Server.Address != nil {
		values["server.address"] = *c.Server.Address
	}
	if c.Logging != nil {
		if c.Logging.Level != nil {
			values["logging.level"] = *c.Logging.Level
		}
		if c.Logging.Format != nil {
			values["logging.format"] = *c.Logging.Format
		}
	}
	if c.Network != nil {
		if c.Network.LookupTimeout != nil {
			values["network.lookup_timeout"] = *c.Network.LookupTimeout
		}
		if c.Network.CacheLookups != nil {
			values["network.cache_lookups"] = strconv.FormatBool(*c.Network.CacheLookups)
		}
	}
	return values
}
