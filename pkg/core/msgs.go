package core

// Command headers
const (
	MsgSyncHeader     = "Syncing dotfiles..."
	MsgInstallHeader  = "Installing dotfiles..."
	MsgStatusHeader   = "Checking dotfiles status..."
	MsgPrecheckHeader = "Checking distribution file..."
)

// Walk and preflight lines
const (
	MsgCreatingConfigDir = "Config directory not found, creating: %s"
	MsgProcessingTool    = "Processing tool: %s"
	MsgCreatingDirectory = "Creating directory: %s"
	MsgFileFailed        = "Failed to %s %s: %s"
)

// Precheck lines
const (
	MsgDistributionFile    = "Distribution file: "
	MsgDistributionMissing = "Distribution file not found"
	MsgDistributionExists  = "Distribution file exists"
	MsgCheckingSyntax      = "Checking TOML syntax... "
	MsgValidSyntax         = "Valid TOML syntax"
	MsgInvalidSyntax       = "Invalid TOML syntax: %s"
	MsgLineCountKey        = "Line count"
	MsgLineCountValue      = "%d lines"
	MsgTotalToolsKey       = "Total tools"
	MsgPrecheckPassed      = "Precheck passed successfully"
)
