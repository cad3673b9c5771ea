package constants

import "time"

// Version is the CLI version, set at build time via ldflags
var Version = "dev"

// CommitSHA is the git commit SHA, set at build time via ldflags
var CommitSHA = "none"

// The Constants package provides centralized default values and configuration constants
// It provides shared constants for default settings, timeouts, and wire names
// The Constants package serves as a single source of truth for default values across the application

// =============================================================================
// Constants
// =============================================================================

// UnresolvedHardwareAddress is reported when a hardware address could not be determined.
const UnresolvedHardwareAddress = "N/A"

// DefaultServerAddress is the loopback address the command bridge listens on.
const DefaultServerAddress = "127.0.0.1:1420"

// DefaultLookupTimeout bounds every external utility run during hardware address lookup.
const DefaultLookupTimeout = 5 * time.Second

// DefaultShutdownTimeout bounds graceful shutdown of the command bridge server.
const DefaultShutdownTimeout = 5 * time.Second

const DefaultLogLevel = "info"

const DefaultLogFormat = "text"

// EnvPrefix prefixes every environment variable that overrides a config key.
const EnvPrefix = "NETDESK_"

// ConfigEnvVar points at an explicit config file.
const ConfigEnvVar = "NETDESK_CONFIG"

// RequestIDHeader carries the per-request identifier of a bridge invocation.
const RequestIDHeader = "X-Request-Id"
