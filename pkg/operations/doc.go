// Package operations runs the per-file work of dotsync.
//
// An Operator acts on one (tool, file) pair at a time. Every file has two
// locations: the repository copy under $HOME/repos/dotfiles/config/<tool>/
// and the live copy under $HOME/.config/<tool>/. The operations are:
//
//   - Install copies the repository copy over the live one
//   - Sync copies the live copy over the repository one
//   - Status compares both and reports a FileState
//   - Add registers the file in the manifest and copies it into the repository
//   - Remove unregisters the file, leaving the repository copy in place
//
// Each operation checks the ignore matcher first. An ignored file gets a
// warning and no I/O at all.
//
// The repository side is read through a RepoSource, either the working copy
// on disk or the snapshot bundled into the binary.
package operations
