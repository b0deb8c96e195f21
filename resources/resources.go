// Package resources locates the directory the emulator uses for ROM images,
// saved preferences and recordings, creating it on first use.
package resources

import (
	"os"
	"path/filepath"
)

const baseDirname = ".rust64"

// JoinPath joins the resource base directory with the supplied path
// components, creating any missing intermediate directories.
func JoinPath(path ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	p := append([]string{home, baseDirname}, path...)
	pth := filepath.Join(p...)

	dir := pth
	if len(path) > 0 {
		dir = filepath.Dir(pth)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
