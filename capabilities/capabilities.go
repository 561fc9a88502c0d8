package capabilities

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrCapabilityNotAvailable = errors.New("capability not available")

// Capabilities define the host API surface made available to a plugin.
type Capabilities struct {
	config CapabilityConfig

	LoggerSource LoggerCapability
	FileSource   FileCapability

	// UI is nil when the host has no user interface attached (headless
	// hosts, test harnesses). Plugins must treat it as optional.
	UI UICapability
}

// New returns the default capabilities with the provided logger.
func New(logger zerolog.Logger) *Capabilities {
	// this will never error with the default config, as every section is set
	caps, _ := NewWithConfig(DefaultConfigWithLogger(logger))

	return caps
}

// NewWithConfig builds capabilities from the given config. The Logger and
// File sections must be set; a nil UI section produces a nil UI capability.
func NewWithConfig(config CapabilityConfig) (*Capabilities, error) {
	if config.Logger == nil || config.File == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "logger and file sections must be set")
	}

	caps := &Capabilities{
		config:       config,
		LoggerSource: DefaultLoggerSource(*config.Logger),
		FileSource:   DefaultFileSource(*config.File),
	}

	if config.UI != nil {
		caps.UI = DefaultUISource(*config.UI, config.Logger.Logger)
	}

	return caps, nil
}

// Config returns the configuration that was used to create the Capabilities.
// The config cannot be changed, but it can be used to determine what was
// previously set so that the original config (like enabled settings) can be respected.
func (c Capabilities) Config() CapabilityConfig {
	return c.config
}
