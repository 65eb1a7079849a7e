// Package core runs dotsync commands over the whole manifest.
//
// An App is built once per invocation. Every command starts with a
// preflight that validates the layout under $HOME:
//
//  1. The repository root must exist (REPO_NOT_FOUND otherwise)
//  2. The manifest must exist (DISTRIBUTION_NOT_FOUND otherwise)
//  3. A missing live config root is created, with a warning
//  4. A missing .dotignore is written with the default patterns
//  5. The ignore matcher is loaded
//
// Install, Sync and Status then walk every tool of the manifest and every
// file of each tool, handing each pair to the operations package. A pair
// that fails with an I/O error is reported and the walk goes on; the command
// returns an error once the walk is over.
//
// # Sources
//
// The repository side can be the working copy on disk or the archive
// bundled at build time. In embedded mode the manifest, the ignore patterns
// and the repository copies all come from the archive, the first two
// preflight checks are skipped and nothing is written on the repository
// side: Sync, Add and Remove fail with INVALID_COMMAND.
package core
