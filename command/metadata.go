package command

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smartfilemanager/plugin-sdk/helloworld"
)

// Metadata returns the command that prints the sample plugin's metadata.
func Metadata() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "print the hello-world plugin's metadata as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := helloworld.New().Metadata()

			out, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to Marshal metadata")
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	return cmd
}
