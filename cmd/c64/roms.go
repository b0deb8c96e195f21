package main

import (
	"fmt"
	"os"

	"github.com/kondrak/rust64-sub000/hardware/memory"
	"github.com/kondrak/rust64-sub000/hardware/memory/memorymap"
	"github.com/kondrak/rust64-sub000/paths"
)

// loadROMs reads basic.rom, chargen.rom and kernal.rom from the resource
// directory (or romDir if non-empty) into m's ROM images. Every C64 needs
// all three to boot, so a missing file is a fatal error.
func loadROMs(m *memory.Memory, romDir string) error {
	if err := loadROM("basic.rom", romDir, m.BasicROM[:], memorymap.BasicROMSize); err != nil {
		return err
	}
	if err := loadROM("chargen.rom", romDir, m.CharROM[:], memorymap.CharROMSize); err != nil {
		return err
	}
	if err := loadROM("kernal.rom", romDir, m.KernalROM[:], memorymap.KernalROMSize); err != nil {
		return err
	}
	return nil
}

func loadROM(name, romDir string, dest []byte, want int) error {
	pth := romDir
	var err error
	if pth == "" {
		pth, err = paths.ResourcePath("roms", name)
		if err != nil {
			return fmt.Errorf("roms: %w", err)
		}
	} else {
		pth = romDir + string(os.PathSeparator) + name
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		return fmt.Errorf("roms: %s: %w", name, err)
	}
	if len(data) != want {
		return fmt.Errorf("roms: %s: expected %d bytes, got %d", name, want, len(data))
	}
	copy(dest, data)
	return nil
}
