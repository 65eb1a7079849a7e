package dotsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manages dotfiles between system configuration directories and git repository"
	MsgSyncShort       = "Sync files from $HOME/.config to repository"
	MsgInstallShort    = "Install files from repository to $HOME/.config"
	MsgStatusShort     = "Show status of files in distribution.toml"
	MsgAddShort        = "Add a file to distribution.toml and copy to repo"
	MsgRemoveShort     = "Remove a file from distribution.toml"
	MsgPrecheckShort   = "Check that distribution.toml exists and has valid syntax"
	MsgUsageShort      = "Show usage information"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "dotsync version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"
	MsgBundleFormat  = "  bundle: %s (%s)\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLoadConfig = "failed to load settings: %w"
	MsgErrColorMode  = "invalid color setting: %w"
	MsgErrCompletion = "failed to generate %s completion: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/precheck-long.txt
	msgPrecheckLongRaw string
	MsgPrecheckLong    = strings.TrimSpace(msgPrecheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage.md
	msgUsageRaw string
	MsgUsage    = strings.TrimSpace(msgUsageRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
