package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"qravy/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "qravy", version.String())
			return err
		},
	}
}
