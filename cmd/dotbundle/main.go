// Command dotbundle snapshots the dotfiles repository into the directory that
// pkg/archive embeds. It runs through go generate:
//
//	go generate ./pkg/archive
package main

import (
	"os"

	"github.com/arthur-debert/dotsync/pkg/archive"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd(fs afero.Fs) *cobra.Command {
	var (
		verbosity int
		outDir    string
		home      string
	)

	cmd := &cobra.Command{
		Use:   "dotbundle",
		Short: "Bundle the dotfiles repository for embedding",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("out", outDir).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   paths.Paths
				err error
			)
			if home != "" {
				p, err = paths.New(home)
			} else {
				p, err = paths.FromEnv()
			}
			if err != nil {
				return err
			}

			out := output.NewReporter(cmd.OutOrStdout(), output.ColorAuto)
			result, err := archive.Build(fs, p, fs, outDir)
			if err != nil {
				return err
			}

			for _, missing := range result.Missing {
				out.Warning("File not found, not bundled: %s", missing)
			}
			out.Success("Bundled %d file(s) into %s", len(result.Bundled), outDir)
			out.KeyValue("Build identity", result.Identity)
			out.KeyValue("Newest file", result.NewestFile)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().StringVarP(&outDir, "out", "o", archive.BundleDir, "Directory receiving the bundle")
	cmd.Flags().StringVar(&home, "home", "", "Home directory holding repos/dotfiles (default $HOME)")

	return cmd
}

func main() {
	if err := newRootCmd(filesystem.NewOS()).Execute(); err != nil {
		os.Exit(1)
	}
}
