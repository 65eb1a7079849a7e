package archive

import (
	"embed"
	"io/fs"
)

//go:generate go run ../../cmd/dotbundle --out bundle

// BundleDir is the directory, relative to this package, that gets embedded
const BundleDir = "bundle"

//go:embed all:bundle
var bundleFS embed.FS

// Embedded returns the bundle compiled into this binary
func Embedded() *Archive {
	sub, err := fs.Sub(bundleFS, BundleDir)
	if err != nil {
		// the directive above guarantees the directory exists
		panic(err)
	}
	return New(sub)
}
