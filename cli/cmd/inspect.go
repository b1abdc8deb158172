package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorpm/rpmpack/cli/pack"
)

// NewInspectCmd returns the "inspect" subcommand: prints a summary of an
// assembled RPM's header and file list.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect RPM_FILE",
		Short: "Print an RPM file's header tags and file list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pack.Inspect(args[0], os.Stdout)
		},
	}
}
