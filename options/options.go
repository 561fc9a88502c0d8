package options

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
)

// Options defines options for the plugin development harness.
type Options struct {
	CapabilityConfigPath string `env:"SFM_CAPABILITY_CONFIG"`
	Headless             *bool  `env:"SFM_HEADLESS,default=false"`
	LogLevel             string `env:"SFM_LOG_LEVEL,default=info"`
}

// Modifier defines a change to the Options.
type Modifier func(*Options)

// NewWithModifiers applies the given modifiers and then fills anything left
// unset from the environment.
func NewWithModifiers(mods ...Modifier) (*Options, error) {
	opts := &Options{}

	for _, mod := range mods {
		mod(opts)
	}

	if err := opts.finalize(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize options")
	}

	return opts, nil
}

// UseCapabilityConfigPath sets the capability config file to be loaded.
func UseCapabilityConfigPath(path string) Modifier {
	return func(opts *Options) {
		opts.CapabilityConfigPath = path
	}
}

// ShouldRunHeadless sets whether the harness should run without a UI capability.
func ShouldRunHeadless(headless bool) Modifier {
	return func(opts *Options) {
		// only set the pointer if the value is true.
		if headless {
			opts.Headless = &headless
		}
	}
}

// UseLogLevel sets the harness log level.
func UseLogLevel(level string) Modifier {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// finalize "locks in" the options by filling any unset fields from the environment.
func (o *Options) finalize() error {
	envOpts := Options{}
	if err := envconfig.Process(context.Background(), &envOpts); err != nil {
		return errors.Wrap(err, "failed to Process environment config")
	}

	// set CapabilityConfigPath if it was not passed as a flag.
	if o.CapabilityConfigPath == "" {
		o.CapabilityConfigPath = envOpts.CapabilityConfigPath
	}

	// set Headless if it was not passed as a flag.
	if o.Headless == nil {
		o.Headless = envOpts.Headless
	}

	// set LogLevel if it was not passed as a flag.
	if o.LogLevel == "" {
		o.LogLevel = envOpts.LogLevel
	}

	return nil
}
