package am

import (
	"strings"

	"github.com/teranos/astypes/errors"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Indent is whitespace only, anything else would corrupt the JSON output
	if strings.Trim(c.Codec.Indent, " \t") != "" {
		return errors.Newf("codec.indent must contain only spaces or tabs, got %q", c.Codec.Indent)
	}

	for i, iri := range c.Codec.DefaultContext {
		if strings.TrimSpace(iri) == "" {
			return errors.Newf("codec.default_context[%d] cannot be empty", i)
		}
	}

	// Empty level falls back to the default
	if c.Log.Level != "" && !validLevels[strings.ToLower(c.Log.Level)] {
		return errors.WithHint(
			errors.Newf("log.level %q is not a known level", c.Log.Level),
			"use one of debug, info, warn, error")
	}

	return nil
}
