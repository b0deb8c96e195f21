package cartridgeloader

import (
	"path/filepath"
	"slices"
	"strings"
)

// use information in the Loader instance to decide how the cartridge should be
// referred to by code outside of the package
func decideOnName(ld Loader) string {
	if ld.embedded {
		return ld.Filename
	}

	// return the empty string if filename is undefined
	if len(strings.TrimSpace(ld.Filename)) == 0 {
		return ""
	}

	return NameFromFilename(ld.Filename)
}

// NameFromFilename converts a filename to a shortened version suitable for
// display. Useful in some contexts where creating a cartridge loader instance
// is inconvenient.
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := filepath.Ext(filename)
	if slices.Contains(FileExtensions[:], strings.ToUpper(ext)) {
		name = strings.TrimSuffix(name, filepath.Ext(filename))
	}
	return name
}
