// Package distribution owns the dotsync manifest, the distribution.toml file
// listing every tool and the files tracked for it.
//
// The manifest is a TOML document with one table per tool:
//
//	[nvim]
//	files = ["init.lua", "lua/plugins.lua"]
//
//	[_meta]
//	version = "1"
//
// Tables whose name starts with an underscore are metadata. They are never
// returned by Tools but are written back unchanged on every save, as are
// root-level values and any key of a tool table other than files.
//
// Two stores serve the manifest. FileStore reads and writes the file in the
// repository. EmbeddedStore serves a manifest bundled into the binary and
// rejects every write.
package distribution
