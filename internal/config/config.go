// Package config defines service configuration and its loading order.
//
// Conventions follow the rest of the codebase: a New() constructor with
// defaults, koanf tags on every field, and Load() layering defaults,
// an optional YAML file, and environment variables.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8086".
	Addr string `koanf:"addr"`

	// DBPath is the sqlite database file holding the contact directory.
	DBPath string `koanf:"db_path"`

	// MatchThreshold is the default minimum similarity score (0-100,
	// inclusive) a contact must reach to count as a match. Requests can
	// override it per call.
	MatchThreshold int `koanf:"match_threshold"`

	// DefaultSource labels contact imports that do not name a source.
	DefaultSource string `koanf:"default_source"`

	// MaxUploadBytes bounds the size of an uploaded CSV.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// Defaults.
const (
	defaultAddr           = ":8086"
	defaultDBPath         = "network.db"
	defaultThreshold      = 85
	defaultSourceLabel    = "LinkedIn"
	defaultMaxUploadBytes = 8 << 20
)

// New creates a Config with defaults applied.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           defaultAddr,
		DBPath:         defaultDBPath,
		MatchThreshold: defaultThreshold,
		DefaultSource:  defaultSourceLabel,
		MaxUploadBytes: defaultMaxUploadBytes,
	}
}
