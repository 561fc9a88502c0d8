package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/smartfilemanager/plugin-sdk/command"
	"github.com/smartfilemanager/plugin-sdk/release"
)

func main() {
	root := rootCommand()

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smartfile-plugin",
		Short: "Smart File Manager plugin development harness",
		Long: `smartfile-plugin exercises the Smart File Manager plugin contract locally,
driving the bundled hello-world sample plugin the same way the host application would.`,
		Version: release.SDKDotVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Help()
			return nil
		},
	}

	cmd.AddCommand(command.Run())
	cmd.AddCommand(command.Metadata())

	cmd.SetVersionTemplate("smartfile-plugin v{{.Version}}\n")

	return cmd
}
