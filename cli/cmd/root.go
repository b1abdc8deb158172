// Package cmd implements the rpmpack command-line tree: root, build,
// inspect.
package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/gorpm/rpmpack/cli/cmdcontext"
)

var cmdCtx cmdcontext.CmdCtx

// NewRootCmd returns the rpmpack root command with build and inspect
// wired in as subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rpmpack",
		Short: "Assemble RPM packages from a file source and identity manifest",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetHandler(cli.Default)
			if cmdCtx.Verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&cmdCtx.Verbose, "verbose", "v", false,
		"enable debug logging")
	root.PersistentFlags().StringVar(&cmdCtx.ManifestPath, "manifest", "",
		"path to a YAML build manifest")

	root.AddCommand(NewBuildCmd())
	root.AddCommand(NewInspectCmd())
	return root
}
