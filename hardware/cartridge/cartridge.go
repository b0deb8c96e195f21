// Package cartridge decodes the CBM ".crt" cartridge format into the chip
// images and bank-switching lines the rest of the emulator needs, and falls
// back to treating a headerless file as a single ROM image mapped at the
// standard $8000 cartridge window.
//
// This is a pure decoder: it has no knowledge of cartridgeloader's transport
// (file, embedded data, http) beyond consuming an already-opened
// cartridgeloader.Loader as an io.Reader.
package cartridge

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kondrak/rust64-sub000/cartridgeloader"
	"github.com/kondrak/rust64-sub000/hardware/memory"
)

// signature is the fixed 16-byte magic every ".crt" file opens with.
var signature = [16]byte{'C', '6', '4', ' ', 'C', 'A', 'R', 'T', 'R', 'I', 'D', 'G', 'E', ' ', ' ', ' '}

// ChipType identifies what a CHIP block's data represents. The CRT format
// defines more values than this (EEPROM, etc.) but real dumps overwhelmingly
// use ROM; RAM and Flash are accepted and treated identically to ROM since
// this emulator does not model writes back into cartridge storage.
type ChipType uint16

const (
	ChipROM ChipType = iota
	ChipRAM
	ChipFlash
)

// Chip is one CHIP block: a bank of cartridge data loaded at a fixed address.
type Chip struct {
	Type     ChipType
	Bank     uint16
	LoadAddr uint16
	Data     []byte
}

// Cartridge is a fully decoded cartridge image: the EXROM/GAME lines the
// hardware reads at power-on, plus every CHIP block's data. There is no
// live bank-switching model — Non-goals exclude the bank-switching
// hardware beyond the EXROM/GAME/CHIP layout a plain ROM cartridge needs.
type Cartridge struct {
	Name  string
	EXROM bool
	GAME  bool
	Chips []Chip
}

// Load decodes a cartridge from an opened loader. A loader whose data does
// not begin with the CRT signature is treated as a headerless ROM image:
// the whole file becomes a single chip loaded at $8000, EXROM low and GAME
// high (the standard 8K ROM cartridge configuration), matching the
// convenience path many homebrew tools use when they skip the CRT header
// entirely.
func Load(ld cartridgeloader.Loader) (*Cartridge, error) {
	if err := ld.Open(); err != nil {
		return nil, err
	}

	data := *ld.Data
	if len(data) < 16 || string(data[:16]) != string(signature[:]) {
		return loadHeaderless(ld.Name, data)
	}
	return loadCRT(ld.Name, data)
}

func loadHeaderless(name string, data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cartridge: empty cartridge image")
	}
	return &Cartridge{
		Name:  name,
		EXROM: false,
		GAME:  true,
		Chips: []Chip{{Type: ChipROM, LoadAddr: 0x8000, Data: data}},
	}, nil
}

// header field offsets, all big-endian, per the documented CRT layout.
const (
	offHeaderLen = 0x10
	offVersion   = 0x14
	offHWType    = 0x16
	offEXROM     = 0x18
	offGAME      = 0x19
	offName      = 0x20
	nameLen      = 32
)

func loadCRT(fallbackName string, data []byte) (*Cartridge, error) {
	if len(data) < offName+nameLen {
		return nil, fmt.Errorf("cartridge: truncated CRT header")
	}

	headerLen := binary.BigEndian.Uint32(data[offHeaderLen:])
	hwType := binary.BigEndian.Uint16(data[offHWType:])
	if hwType != 0 {
		return nil, fmt.Errorf("cartridge: unsupported hardware type %d", hwType)
	}
	exrom := data[offEXROM] != 0
	game := data[offGAME] != 0

	name := decodeName(data[offName : offName+nameLen])
	if name == "" {
		name = fallbackName
	}

	if uint64(headerLen) > uint64(len(data)) {
		return nil, fmt.Errorf("cartridge: header length %d exceeds file size", headerLen)
	}

	c := &Cartridge{Name: name, EXROM: exrom, GAME: game}

	r := data[headerLen:]
	for len(r) > 0 {
		chip, rest, err := readChip(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		c.Chips = append(c.Chips, chip)
		r = rest
	}

	if len(c.Chips) == 0 {
		return nil, fmt.Errorf("cartridge: CRT file has no CHIP blocks")
	}

	return c, nil
}

const chipHeaderSize = 16

func readChip(r []byte) (Chip, []byte, error) {
	if len(r) < 4 {
		return Chip{}, nil, io.EOF
	}
	if string(r[:4]) != "CHIP" {
		return Chip{}, nil, io.EOF
	}
	if len(r) < chipHeaderSize {
		return Chip{}, nil, fmt.Errorf("cartridge: truncated CHIP header")
	}

	chipType := ChipType(binary.BigEndian.Uint16(r[8:10]))
	if chipType != ChipROM && chipType != ChipRAM && chipType != ChipFlash {
		return Chip{}, nil, fmt.Errorf("cartridge: invalid chip type %d", chipType)
	}
	bank := binary.BigEndian.Uint16(r[10:12])
	loadAddr := binary.BigEndian.Uint16(r[12:14])
	dataSize := binary.BigEndian.Uint16(r[14:16])

	end := chipHeaderSize + int(dataSize)
	if end > len(r) {
		return Chip{}, nil, fmt.Errorf("cartridge: CHIP block declares %d bytes but only %d available", dataSize, len(r)-chipHeaderSize)
	}

	chip := Chip{
		Type:     chipType,
		Bank:     bank,
		LoadAddr: loadAddr,
		Data:     r[chipHeaderSize:end],
	}
	return chip, r[end:], nil
}

func decodeName(raw []byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

// WriteInto seeds a Memory with every chip's data at its load address and
// sets the cartridge lines the banking logic reads at power-on. Cartridge
// data is poked directly into RAM rather than modelled as a separate ROM
// region: the real hardware exposes it for reading only through the
// EXROM/GAME-gated $8000/$A000 windows, and since no bank-switching is
// modelled here the simplest faithful seed is to place the bytes where the
// CPU will read them and let SetCartridgeLines control visibility.
func (c *Cartridge) WriteInto(mem *memory.Memory) {
	for _, chip := range c.Chips {
		for i, b := range chip.Data {
			mem.Poke(chip.LoadAddr+uint16(i), b)
		}
	}
	mem.SetCartridgeLines(c.EXROM, c.GAME)
}

// BankData returns the byte a chip declares at a bank-relative address,
// and whether any chip actually covers that address. Used by callers that
// want to inspect cartridge contents without going through Memory (the CRT
// loader's own tests, and diagnostic tooling).
func (c *Cartridge) BankData(bank, addr uint16) (uint8, bool) {
	for _, chip := range c.Chips {
		if chip.Bank != bank {
			continue
		}
		if addr < chip.LoadAddr {
			continue
		}
		off := int(addr - chip.LoadAddr)
		if off >= len(chip.Data) {
			continue
		}
		return chip.Data[off], true
	}
	return 0, false
}
