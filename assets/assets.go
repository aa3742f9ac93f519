// Package assets embeds the catalog bundles produced by `familyalter convert`.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var bundles embed.FS

// Catalog returns the embedded bundles rooted at the data directory.
func Catalog() fs.FS {
	sub, err := fs.Sub(bundles, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
