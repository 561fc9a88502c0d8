package capabilities

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

var (
	ErrCapabilityNotEnabled = errors.New("capability is not enabled")
	ErrInvalidConfig        = errors.New("invalid capability config")
)

// CapabilityConfig is configuration for the capabilities handed to a plugin.
// NOTE: nil sections mean "not configured": NewWithConfig rejects a nil
// Logger or File section, while a nil UI section means the host runs without
// a user interface and the plugin gets no UI capability at all.
type CapabilityConfig struct {
	Logger *LoggerConfig `json:"logger,omitempty" yaml:"logger,omitempty"`
	UI     *UIConfig     `json:"ui,omitempty" yaml:"ui,omitempty"`
	File   *FileConfig   `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultCapabilityConfig returns the default all-enabled config (with a default logger).
func DefaultCapabilityConfig() CapabilityConfig {
	return DefaultConfigWithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
}

// DefaultConfigWithLogger returns the default all-enabled config with a custom logger.
func DefaultConfigWithLogger(logger zerolog.Logger) CapabilityConfig {
	c := CapabilityConfig{
		Logger: &LoggerConfig{
			Enabled: true,
			Logger:  logger,
		},
		UI: &UIConfig{
			Enabled: true,
		},
		File: &FileConfig{
			Enabled: true,
		},
	}

	return c
}

// ConfigFromFile reads a YAML capability config from disk. The logger itself
// cannot come from a file; callers merge the result over a config that
// already carries one (see Override).
func ConfigFromFile(path string) (CapabilityConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CapabilityConfig{}, errors.Wrap(err, "failed to ReadFile")
	}

	config := CapabilityConfig{}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return CapabilityConfig{}, errors.Wrap(err, "failed to Unmarshal capability config")
	}

	return config, nil
}

// Override replaces sections of c with any non-nil sections of other and
// returns the result. The zerolog instance of the original logger section is
// kept, as a file can only toggle the logger capability, not supply one.
func (c CapabilityConfig) Override(other CapabilityConfig) CapabilityConfig {
	if other.Logger != nil {
		keep := zerolog.Nop()
		if c.Logger != nil {
			keep = c.Logger.Logger
		}

		c.Logger = &LoggerConfig{Enabled: other.Logger.Enabled, Logger: keep}
	}

	if other.UI != nil {
		c.UI = other.UI
	}

	if other.File != nil {
		c.File = other.File
	}

	return c
}
