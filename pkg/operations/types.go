package operations

// Kind names one of the five operations
type Kind int

const (
	Install Kind = iota
	Sync
	Status
	Add
	Remove
)

// String returns the command name of the operation
func (k Kind) String() string {
	switch k {
	case Install:
		return "install"
	case Sync:
		return "sync"
	case Status:
		return "status"
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Writes reports whether the operation changes the repository side
func (k Kind) Writes() bool {
	return k == Sync || k == Add || k == Remove
}

// FileState is the outcome of comparing a repository copy with its live copy
type FileState int

const (
	// StateIgnored means the file matched an ignore pattern and was not inspected
	StateIgnored FileState = iota
	// StateMissingInRepo means there is no repository copy
	StateMissingInRepo
	// StateNotInstalled means the repository copy has no live counterpart
	StateNotInstalled
	// StateIdentical means both copies hold the same bytes
	StateIdentical
	// StateModified means the live copy differs from the repository copy
	StateModified
)

// String returns a short name for the state
func (s FileState) String() string {
	switch s {
	case StateIgnored:
		return "ignored"
	case StateMissingInRepo:
		return "missing-in-repo"
	case StateNotInstalled:
		return "not-installed"
	case StateIdentical:
		return "identical"
	case StateModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Display renders a pair as <tool>/<file>
func Display(section, file string) string {
	return section + "/" + file
}
