package am

import (
	"github.com/spf13/viper"
)

const activityStreamsContext = "https://www.w3.org/ns/activitystreams"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Codec defaults
	v.SetDefault("codec.compact_single_values", true)
	v.SetDefault("codec.indent", "  ")
	v.SetDefault("codec.default_context", []string{activityStreamsContext})

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "warn")
}

// BindEnvVars binds settings that also accept a short environment name
// besides the ASTYPES_<SECTION>_<KEY> pattern
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("codec.default_context", "ASTYPES_CODEC_DEFAULT_CONTEXT", "ASTYPES_CONTEXT")
}
