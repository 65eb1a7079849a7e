// Package testutil provides utilities for testing dotsync components.
//
// Key components:
//   - TestEnvironment: a home directory holding a dotfiles repository and a
//     live configuration tree, on an in-memory or a temporary filesystem
//   - FileTree: declarative file setup
//   - Reporter helpers capturing report lines in a buffer
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Command tests that go through os-level paths use EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
