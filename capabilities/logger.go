package capabilities

import (
	"github.com/rs/zerolog"
)

// LoggerConfig is configuration for the logger capability.
type LoggerConfig struct {
	Enabled bool           `json:"enabled" yaml:"enabled"`
	Logger  zerolog.Logger `json:"-" yaml:"-"`
}

// LoggerCapability hands a plugin a logger scoped to its own name.
type LoggerCapability interface {
	Logger(scope string) zerolog.Logger
}

type defaultLoggerSource struct {
	config LoggerConfig
}

// DefaultLoggerSource returns a logger source backed by the configured zerolog instance.
func DefaultLoggerSource(config LoggerConfig) LoggerCapability {
	l := &defaultLoggerSource{
		config: config,
	}

	return l
}

// Logger returns the host logger with the plugin scope attached. A disabled
// capability yields a no-op logger rather than an error so that plugin log
// calls never need a failure path.
func (l *defaultLoggerSource) Logger(scope string) zerolog.Logger {
	if !l.config.Enabled {
		return zerolog.Nop()
	}

	return l.config.Logger.With().Str("plugin", scope).Logger()
}
