// Package am loads the astypes configuration.
//
// Settings come from built-in defaults, then ~/.astypes/am.toml, then the
// nearest am.toml found walking up from the working directory, and finally
// ASTYPES_* environment variables.
package am

import "fmt"

// Config represents the astypes configuration
type Config struct {
	Codec CodecConfig `mapstructure:"codec" json:"codec" toml:"codec" yaml:"codec"`
	Log   LogConfig   `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

// CodecConfig configures document reading and writing
type CodecConfig struct {
	CompactSingleValues bool     `mapstructure:"compact_single_values" json:"compact_single_values" toml:"compact_single_values" yaml:"compact_single_values"` // write ["x"] as "x" (default: true)
	Indent              string   `mapstructure:"indent" json:"indent" toml:"indent" yaml:"indent"`                                                             // indentation for pretty output (default: two spaces)
	DefaultContext      []string `mapstructure:"default_context" json:"default_context" toml:"default_context" yaml:"default_context"`                         // context IRIs stamped on new documents
}

// LogConfig configures logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json" json:"json" toml:"json" yaml:"json"`    // structured JSON logs on stderr
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"` // debug, info, warn, error (default: warn)
}

// Environment and file naming
const (
	EnvPrefix      = "ASTYPES"
	ConfigFileName = "am.toml"
	UserDirName    = ".astypes"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Codec: {CompactSingleValues: %t, Indent: %q}, Log: {JSON: %t, Level: %s}}",
		c.Codec.CompactSingleValues, c.Codec.Indent, c.Log.JSON, c.Log.Level)
}
