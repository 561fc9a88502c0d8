package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smartfilemanager/plugin-sdk/capabilities"
	"github.com/smartfilemanager/plugin-sdk/helloworld"
	"github.com/smartfilemanager/plugin-sdk/options"
	"github.com/smartfilemanager/plugin-sdk/plugin"
	"github.com/smartfilemanager/plugin-sdk/release"
)

const (
	capabilityConfigFlag = "capability-config"
	headlessFlag         = "headless"
	logLevelFlag         = "log-level"
)

// Run returns the command that activates the sample plugin and feeds it files.
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run [file]...",
		Short:   "run the hello-world plugin against local files",
		Long:    "activates the hello-world sample plugin with a development capability set, processes each given file, then deactivates it",
		Version: release.SDKDotVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			mods, err := modsFromFlags(cmd.Flags())
			if err != nil {
				return errors.Wrap(err, "failed to modsFromFlags")
			}

			opts, err := options.NewWithModifiers(mods...)
			if err != nil {
				return errors.Wrap(err, "options.NewWithModifiers")
			}

			logger, err := setupLogger(opts)
			if err != nil {
				return errors.Wrap(err, "failed to setupLogger")
			}

			caps, err := setupCapabilities(logger, opts)
			if err != nil {
				return errors.Wrap(err, "failed to setupCapabilities")
			}

			sample := helloworld.New()

			meta := sample.Metadata()
			if err := meta.Validate(); err != nil {
				return errors.Wrap(err, "failed to Validate metadata")
			}

			if err := plugin.CheckCompatible(meta, release.PluginConstraint); err != nil {
				return errors.Wrap(err, "failed to CheckCompatible")
			}

			ctx := cmd.Context()

			if err := sample.Activate(ctx, caps); err != nil {
				return errors.Wrap(err, "failed to Activate")
			}

			for _, path := range args {
				result := sample.ProcessFile(ctx, path)

				out, err := json.Marshal(result)
				if err != nil {
					return errors.Wrap(err, "failed to Marshal result")
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(out))

				if result.Failed() {
					logger.Warn().Str("path", path).Msg(result.Error)
				}
			}

			if err := sample.Deactivate(ctx); err != nil {
				return errors.Wrap(err, "failed to Deactivate")
			}

			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().String(capabilityConfigFlag, "", "path to a YAML capability config, otherwise the default development set is used")
	cmd.Flags().Bool(headlessFlag, false, "if passed, no UI capability is attached and notifications are skipped")
	cmd.Flags().String(logLevelFlag, "", "log level for the harness, otherwise SFM_LOG_LEVEL or 'info' is used")

	return cmd
}

func setupLogger(opts *options.Options) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "failed to ParseLevel '%s'", opts.LogLevel)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("mode", "harness").
		Str("version", release.SDKDotVersion).
		Str("ident", uuid.New().String()).
		Logger().Level(level)

	return logger, nil
}

func setupCapabilities(logger zerolog.Logger, opts *options.Options) (*capabilities.Capabilities, error) {
	config := capabilities.DefaultConfigWithLogger(logger)

	if opts.CapabilityConfigPath != "" {
		fileConfig, err := capabilities.ConfigFromFile(opts.CapabilityConfigPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to ConfigFromFile")
		}

		config = config.Override(fileConfig)
	}

	if opts.Headless != nil && *opts.Headless {
		config.UI = nil
	}

	return capabilities.NewWithConfig(config)
}

func modsFromFlags(flags *pflag.FlagSet) ([]options.Modifier, error) {
	configPath, err := flags.GetString(capabilityConfigFlag)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("get string flag '%s' value", capabilityConfigFlag))
	}

	headless, err := flags.GetBool(headlessFlag)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("get bool flag '%s' value", headlessFlag))
	}

	logLevel, err := flags.GetString(logLevelFlag)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("get string flag '%s' value", logLevelFlag))
	}

	mods := []options.Modifier{
		options.UseCapabilityConfigPath(configPath),
		options.ShouldRunHeadless(headless),
		options.UseLogLevel(logLevel),
	}

	return mods, nil
}
