package operations

// Report line formats, each takes the <tool>/<file> display form
const (
	MsgIgnored = "Ignored by .dotignore: %s"

	MsgInstalled    = "Installed to local: %s"
	MsgRepoNotFound = "Repo file not found: %s"

	MsgSynced        = "Synced to repo: %s"
	MsgLocalNotFound = "Local file not found: %s"

	MsgMissingInRepo = "Missing in repo: %s"
	MsgNotInstalled  = "Not installed: %s"
	MsgIdentical     = "Identical: %s"
	MsgModified      = "Modified locally: %s"

	MsgAdded = "Added to tracking: %s"

	MsgRemoved = "Removed from distribution file: %s"
	// MsgRemoveHint takes the absolute repository path
	MsgRemoveHint = "To complete removal, manually delete the file: %s"
)
