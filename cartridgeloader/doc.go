// Package cartridgeloader loads cartridge data from a filename, an http(s)
// URL or an embedded byte slice so it can be handed to the cartridge
// package for CRT/ROM decoding.
//
// # File Extensions
//
// ".CRT" is the full CBM cartridge format: a signed header followed by one
// or more CHIP blocks (see the cartridge package for the byte layout).
// ".BIN", ".ROM" and ".PRG" are treated as a bare, headerless ROM image
// loaded straight into the $8000 cartridge window.
//
// File extensions are case insensitive.
//
// # Hashes
//
// Creating a cartridge loader with NewLoaderFromFilename() or
// NewLoaderFromData() also records a SHA1 and MD5 hash of the data (at
// creation for NewLoaderFromData(), once Open() has read the file for
// NewLoaderFromFilename()), so a caller that already knows the expected hash can
// catch a corrupted or substituted ROM file.
package cartridgeloader
