// Package config loads the dotsync settings.
//
// Settings are not the manifest. They only tune how dotsync itself runs and
// are merged, later sources winning, from:
//
//  1. the embedded defaults.toml
//  2. $XDG_CONFIG_HOME/dotsync/config.toml, when present
//  3. DOTSYNC_* environment variables (DOTSYNC_SOURCE sets source)
//  4. explicit overrides supplied by the caller
package config
