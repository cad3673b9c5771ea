package config

import "github.com/windsorcli/netdesk/pkg/constants"

// DefaultValues holds the value of every known key when neither the environment nor the
// config file sets it.
var DefaultValues = map[string]string{
	"server.address":         constants.DefaultServerAddress,
	"logging.level":          constants.DefaultLogLevel,
	"logging.format":         constants.DefaultLogFormat,
	"network.lookup_timeout": constants.DefaultLookupTimeout.String(),
	"network.cache_lookups":  "true",
}
