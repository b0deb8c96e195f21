// Package memory implements the C64's overlaid 64 KiB address space: RAM
// everywhere, with BASIC, KERNAL and the character generator ROMs banked in
// or out under control of the CPU's on-chip I/O port, and a 4 KiB I/O
// window dispatching to the VIC-II, SID, color RAM and the two CIAs.
package memory

import "github.com/kondrak/rust64-sub000/hardware/memory/memorymap"

// IODevice is implemented by any chip mapped into the $D000-$DFFF I/O
// window. offset is relative to the device's own base address, already
// mirrored/masked by Memory.
type IODevice interface {
	IORead(offset uint16) uint8
	IOWrite(offset uint16, val uint8)
}

// Memory owns the RAM array, the three ROM images and the banking state
// derived from the CPU port latch and the cartridge EXROM/GAME lines.
type Memory struct {
	RAM [65536]uint8

	BasicROM  [memorymap.BasicROMSize]uint8
	CharROM   [memorymap.CharROMSize]uint8
	KernalROM [memorymap.KernalROMSize]uint8

	ColorRAMData [1024]uint8

	VIC  IODevice
	SID  IODevice
	CIA1 IODevice
	CIA2 IODevice

	// cartridge lines; true (high) is the power-on default for a system
	// with no cartridge inserted.
	EXROM bool
	GAME  bool

	basicOn   bool
	kernalOn  bool
	chargenOn bool
	ioOn      bool

	// lastVICByte is the last byte the VIC fetched over its own bus; color
	// RAM reads return it in the unused upper nibble, matching the way the
	// real video matrix/color data bus floats to whatever the VIC last
	// drove.
	lastVICByte uint8
}

// NewMemory constructs a Memory with cartridge lines at their no-cartridge
// default (EXROM=1, GAME=1) and banking recomputed accordingly.
func NewMemory() *Memory {
	m := &Memory{EXROM: true, GAME: true}
	m.RAM[memorymap.PortAddr] = 0x07
	m.RAM[memorymap.DDRAddr] = 0x2f
	m.updateBanking()
	return m
}

// updateBanking recomputes the four visibility flags from the CPU port
// latch and the cartridge lines. This is the single pure function the
// banking invariant in the specification is checked against.
func (m *Memory) updateBanking() {
	ddr := m.RAM[memorymap.DDRAddr]
	port := m.RAM[memorymap.PortAddr]
	latch := (^ddr) | port

	m.chargenOn = latch&0x04 == 0 && latch&0x03 != 0
	m.ioOn = latch&0x04 != 0 && latch&0x03 != 0
	m.basicOn = latch&0x03 == 3
	m.kernalOn = latch&0x02 != 0

	if m.EXROM && !m.GAME {
		m.basicOn = false
		m.kernalOn = false
	}
	if !m.EXROM && !m.GAME {
		m.basicOn = false
	}
}

// SetCartridgeLines updates EXROM/GAME and recomputes banking. Called once
// at cartridge load time; the C64 does not support hot-swapping EXROM/GAME
// mid-session.
func (m *Memory) SetCartridgeLines(exrom, game bool) {
	m.EXROM = exrom
	m.GAME = game
	m.updateBanking()
}

// Read returns the byte the CPU sees at addr given the current bank
// configuration.
func (m *Memory) Read(addr uint16) uint8 {
	switch {
	case addr == memorymap.PortAddr:
		ddr := m.RAM[memorymap.DDRAddr]
		port := m.RAM[memorymap.PortAddr]
		return (ddr & port) | (^ddr & 0x17)
	case addr >= memorymap.BasicROMBase && addr < memorymap.BasicROMBase+memorymap.BasicROMSize && m.basicOn:
		return m.BasicROM[addr-memorymap.BasicROMBase]
	case addr >= memorymap.IOBase && addr < memorymap.IOBase+memorymap.IOSize && m.ioOn:
		return m.readIO(addr)
	case addr >= memorymap.CharROMBase && addr < memorymap.CharROMBase+memorymap.CharROMSize && m.chargenOn:
		return m.CharROM[addr-memorymap.CharROMBase]
	case addr >= memorymap.KernalROMBase && m.kernalOn:
		return m.KernalROM[addr-memorymap.KernalROMBase]
	default:
		return m.RAM[addr]
	}
}

// Write stores val at addr. Writes to ROM-overlaid ranges always go to the
// underlying RAM (visible again once that ROM is banked out); the original
// implementation signalled whether the write landed in a visible bank via a
// boolean return, but no caller ever consulted it, so this collapses to an
// unconditional write.
func (m *Memory) Write(addr uint16, val uint8) {
	switch {
	case addr == memorymap.DDRAddr, addr == memorymap.PortAddr:
		m.RAM[addr] = val
		m.updateBanking()
	case addr >= memorymap.IOBase && addr < memorymap.IOBase+memorymap.IOSize && m.ioOn:
		m.writeIO(addr, val)
	default:
		m.RAM[addr] = val
	}
}

// Peek/Poke are the debug-bus equivalents of Read/Write, used by tests and
// tooling. They call Read/Write directly, so they have the same side effects:
// DDR/port writes recompute banking, and I/O registers that clear on read or
// write (CIA ICR, VIC collision/IRQ registers) react as for a CPU access.
func (m *Memory) Peek(addr uint16) uint8 {
	return m.Read(addr)
}

func (m *Memory) Poke(addr uint16, val uint8) {
	m.Write(addr, val)
}

// VICRead implements the VIC-II's parallel read path: in banks 0 and 2
// (bankBase $0000/$8000) it sees character ROM mirrored into the bank's
// $1000-$1FFF window ($1000-$1FFF/$9000-$9FFF absolute), regardless of CPU
// banking; banks 1 and 3 have no such mirror, since only even VIC banks
// carry the character ROM on real hardware. RAM everywhere else.
func (m *Memory) VICRead(bankBase uint16, addr14 uint16) uint8 {
	abs := bankBase + addr14
	charROMBanked := bankBase == 0x0000 || bankBase == 0x8000
	if charROMBanked && addr14 >= 0x1000 && addr14 < 0x2000 {
		return m.CharROM[addr14-0x1000]
	}
	b := m.RAM[abs]
	m.lastVICByte = b
	return b
}

// ColorRAM implements the VIC-II's own direct read of colour RAM during the
// matrix fetch of a badline, addressed 0..999 rather than via the CPU's
// $D800 window.
func (m *Memory) ColorRAM(addr uint16) uint8 {
	return m.ColorRAMData[addr&0x3FF] & 0x0F
}

func (m *Memory) readIO(addr uint16) uint8 {
	switch {
	case addr < memorymap.SIDBase:
		return m.VIC.IORead((addr - memorymap.VICBase) % 0x40)
	case addr < memorymap.ColorBase:
		return m.SID.IORead((addr - memorymap.SIDBase) % 0x20)
	case addr < memorymap.CIA1Base:
		v := m.ColorRAMData[addr-memorymap.ColorBase] & 0x0F
		return v | (m.lastVICByte & 0xF0)
	case addr < memorymap.CIA2Base:
		return m.CIA1.IORead((addr - memorymap.CIA1Base) % 0x10)
	default:
		return m.CIA2.IORead((addr - memorymap.CIA2Base) % 0x10)
	}
}

func (m *Memory) writeIO(addr uint16, val uint8) {
	switch {
	case addr < memorymap.SIDBase:
		m.VIC.IOWrite((addr-memorymap.VICBase)%0x40, val)
	case addr < memorymap.ColorBase:
		m.SID.IOWrite((addr-memorymap.SIDBase)%0x20, val)
	case addr < memorymap.CIA1Base:
		m.ColorRAMData[addr-memorymap.ColorBase] = val & 0x0F
	case addr < memorymap.CIA2Base:
		m.CIA1.IOWrite((addr-memorymap.CIA1Base)%0x10, val)
	default:
		m.CIA2.IOWrite((addr-memorymap.CIA2Base)%0x10, val)
	}
}
