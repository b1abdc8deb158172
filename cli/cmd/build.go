package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gorpm/rpmpack/cli/pack"
	"github.com/gorpm/rpmpack/cli/util"
)

var buildOpts pack.BuildOptions

// NewBuildCmd returns the "build" subcommand: assembles an RPM from a
// source directory and identity flags or manifest.
func NewBuildCmd() *cobra.Command {
	var outPath string
	var buildTime int64
	var extraFiles []string

	build := &cobra.Command{
		Use:   "build SOURCE_DIR",
		Short: "Assemble an RPM package from a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildOpts.SourceDir = args[0]
			buildOpts.ManifestPath = cmdCtx.ManifestPath

			if len(extraFiles) > 0 {
				buildOpts.ExtraFiles = make(map[string]string, len(extraFiles))
				for _, spec := range extraFiles {
					src, dest, ok := strings.Cut(spec, ":")
					if !ok {
						return fmt.Errorf("invalid --extra-file %q, want SRC:DEST", spec)
					}
					buildOpts.ExtraFiles[src] = dest
				}
			}
			if buildTime == 0 {
				buildTime = time.Now().Unix()
			}
			buildOpts.BuildTime = buildTime

			if outPath == "" {
				outPath = fmt.Sprintf("%s-%s-%s.%s.rpm", buildOpts.Name, buildOpts.Version,
					buildOpts.Release, buildOpts.Arch)
			}
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer out.Close()

			err = util.RunWithSpinner(fmt.Sprintf("building %s", outPath), func() error {
				return pack.Build(buildOpts, out)
			})
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("built %s", outPath))
			return nil
		},
	}

	build.Flags().StringVar(&buildOpts.Name, "name", "", "package name")
	build.Flags().StringVar(&buildOpts.Version, "version", "", "package version")
	build.Flags().StringVar(&buildOpts.Release, "release", "1", "package release")
	build.Flags().StringVar(&buildOpts.Arch, "arch", "noarch", "package architecture")
	build.Flags().StringVar(&buildOpts.OS, "os", "linux", "target operating system")
	build.Flags().StringSliceVar(&buildOpts.Provides, "provides", nil, "capabilities this package provides")
	build.Flags().StringSliceVar(&buildOpts.Requires, "requires", nil, "capabilities this package requires")
	build.Flags().StringVarP(&outPath, "output", "o", "", "output RPM path")
	build.Flags().StringSliceVar(&extraFiles, "extra-file", nil,
		"SRC:DEST pairs to stage into the build root before packaging")
	build.Flags().Int64Var(&buildTime, "build-time", 0,
		"build timestamp (seconds since epoch); defaults to now, set explicitly for reproducible builds")

	return build
}
