// Package paths provides centralized path handling for dotsync.
//
// Every location the tool touches is derived once from the user's home
// directory:
//
//   - Repository root: $HOME/repos/dotfiles
//   - Live config root: $HOME/.config
//   - Manifest: $HOME/repos/dotfiles/distribution.toml
//   - Ignore file: $HOME/repos/dotfiles/.dotignore
//
// For a tracked (section, file) pair the resolver yields the repo copy
// ($REPO/config/<section>/<file>) and the live copy
// ($HOME/.config/<section>/<file>). File names may contain sub-directories.
//
// The resolver performs no I/O. Paths are composed by concatenation only;
// nothing is cleaned, canonicalized or resolved through symlinks.
//
// # Usage
//
//	p, err := paths.FromEnv()
//	if err != nil {
//	    return err
//	}
//	repoCopy := p.RepoFile("nvim", "init.lua")
//	liveCopy := p.LiveFile("nvim", "init.lua")
package paths
