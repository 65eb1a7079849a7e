package dotsync

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotsync/internal/version"
	"github.com/arthur-debert/dotsync/pkg/archive"
	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/core"
	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// loadSettings reads the user settings. NO_COLOR wins over any color setting.
func loadSettings() (*config.Settings, error) {
	overrides := map[string]interface{}{}
	if os.Getenv("NO_COLOR") != "" {
		overrides["color"] = output.ColorNever.String()
	}

	settings, err := config.Load(config.Options{Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return settings, nil
}

// newApp wires a core.App to the real home directory and the command's stdout
func newApp(cmd *cobra.Command) (*core.App, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	mode, err := output.ParseColorMode(settings.Color)
	if err != nil {
		return nil, fmt.Errorf(MsgErrColorMode, err)
	}

	p, err := paths.FromEnv()
	if err != nil {
		return nil, err
	}

	app, err := core.New(core.Options{
		FS:       filesystem.NewOS(),
		Paths:    p,
		Source:   settings.Source,
		Archive:  archive.Embedded(),
		Reporter: output.NewReporter(cmd.OutOrStdout(), mode),
	})
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("home", p.Home()).
		Str("requested", string(settings.Source)).
		Str("source", string(app.Source())).
		Msg("App created")
	return app, nil
}

// toolNamesCompletion completes the first argument with the tracked tools
func toolNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	p, err := paths.FromEnv()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	store := distribution.NewFileStore(filesystem.NewOS(), p.DistributionFile())
	tools, err := store.Tools()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return tools, cobra.ShellCompDirectiveNoFileComp
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Sync()
		},
	}
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Install()
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			results, err := app.Status()
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.status")
			logger.Info().Int("files", len(results)).Msg("Status finished")
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "add <tool> <file>",
		Short:             MsgAddShort,
		Long:              MsgAddLong,
		Example:           MsgAddExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: toolNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Add(args[0], args[1])
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <tool> <file>",
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: toolNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Remove(args[0], args[1])
		},
	}
}

func newPrecheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "precheck",
		Short:   MsgPrecheckShort,
		Long:    MsgPrecheckLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = app.Precheck()
			return err
		},
	}
}

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "usage",
		Short:   MsgUsageShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderUsage(cmd))
			return err
		},
	}
}

// renderUsage renders the usage page with glamour on terminals and returns
// the markdown source everywhere else
func renderUsage(cmd *cobra.Command) string {
	if os.Getenv("NO_COLOR") != "" || !output.IsTerminal(cmd.OutOrStdout()) {
		return MsgUsage
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return MsgUsage
	}
	rendered, err := renderer.Render(MsgUsage)
	if err != nil {
		return MsgUsage
	}
	return rendered
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bundle := archive.Embedded()
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(w, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(w, MsgBuiltFormat, version.Date)
			_, _ = fmt.Fprintf(w, MsgBundleFormat, bundle.BuildIdentity(), bundle.NewestFile())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout()); err != nil {
				return fmt.Errorf(MsgErrCompletion, args[0], err)
			}
			return nil
		},
	}
}
