// Package paths resolves filesystem locations for ROM images and cartridge
// files relative to the emulator's resource directory.
package paths

import "github.com/kondrak/rust64-sub000/resources"

// ResourcePath returns the path for a named resource inside the given
// sub-directory of the emulator's resource tree. It does not create the
// file, only the directory it would live in.
func ResourcePath(subDir, filename string) (string, error) {
	if subDir == "" {
		return resources.JoinPath(filename)
	}
	if filename == "" {
		return resources.JoinPath(subDir)
	}
	return resources.JoinPath(subDir, filename)
}
