package cartridgeloader

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package. ".CRT" carries the full CBM cartridge header
// described in cartridge.Load; ".BIN", ".ROM" and ".PRG" are treated as a
// raw image with no header, mapped straight into the $8000 cartridge
// window.
var FileExtensions = [...]string{".CRT", ".BIN", ".ROM", ".PRG"}
