// Package vic implements the VIC-II video controller: the 47 memory-mapped
// registers, the 63-cycle-per-line raster pipeline, bad lines and sprite
// DMA. The two border flipflops are not modelled: their flags keep their
// Reset values. It runs in lockstep with the CPU, one
// master cycle at a time, and is the device that asserts BA to steal the
// bus and raises the CPU's IRQ line.
package vic

// FrameWidth/FrameHeight are the visible raster area the emulator exposes
// to the host frame buffer sink (inner raster only; the border area is not
// exposed).
const (
	FrameWidth  = 320
	FrameHeight = 200
	linesPerFrame = 312
	cyclesPerLine = 63
)

// Bus is the minimal surface the VIC needs from the rest of the machine:
// its own parallel read path (always sees char ROM in $1000-$1FFF/$9000-
// $9FFF of the current 16 KiB bank, RAM elsewhere) and the color RAM it
// shares with the CPU.
type Bus interface {
	VICRead(bankBase, addr14 uint16) uint8
	ColorRAM(addr uint16) uint8
}

// DisplayMode is the 0..7 index formed from ECM/BMM/MCM.
type DisplayMode int

const (
	ModeStandardText DisplayMode = iota
	ModeMulticolorText
	ModeStandardBitmap
	ModeMulticolorBitmap
	ModeECMText
	ModeInvalid5
	ModeInvalid6
	ModeInvalid7
)

type sprite struct {
	x          uint16
	y          uint8
	enabled    bool
	xExpand    bool
	yExpand    bool
	multicolor bool
	priority   bool // true = behind background
	color      uint8

	dmaOn    bool
	displayOn bool
	mc       uint8 // 0..62, data counter within current line
	mcBase   uint8
	expFlip  bool
	data     [3]uint8 // the 3 bytes fetched this line
}

// VIC is one VIC-II instance.
type VIC struct {
	bus Bus

	// raw register file, mirrored at $D000-$D02E; extra registers beyond
	// $D02E either don't exist or are handled specially (collision/IRQ regs).
	regs [0x2F]uint8

	raster   uint16 // 0..311
	cycle    int    // 1..63

	vc, vcBase uint16
	rc         uint8
	mlIndex    int
	matrixLine [40]uint8
	colorLine  [40]uint8

	badLinesOn bool
	isBadLine  bool
	displayState bool

	udBorderOn   bool
	borderOn     bool

	xScroll, yScroll uint8
	mode             DisplayMode

	bankBase uint16 // set by CIA2 port A

	sprites [8]sprite

	irqData uint8
	irqMask uint8

	baLow    bool
	baReason int // cycles remaining the VIC needs the bus for, used to derate the 3-cycle BA->stall rule

	onIRQ func(asserted bool)

	spriteDMAWindow [8]bool // which sprites the current cycle's DMA window covers

	// Frame is the RGBA pixel buffer for the visible 320x200 raster; it is
	// overwritten row by row as cycles 15-54 of each displayed line run.
	Frame [FrameHeight][FrameWidth]uint32

	// FrameReady is set on the last cycle of the last line and cleared by
	// the caller once it has consumed Frame.
	FrameReady bool

	lastFetchedByte uint8
}

// New constructs a VIC-II wired to bus for its memory reads and onIRQ as the
// sink for its IRQ line (wired by the Machine to the CPU's SetVICIrq).
func New(bus Bus, onIRQ func(asserted bool)) *VIC {
	v := &VIC{bus: bus, onIRQ: onIRQ}
	v.Reset()
	return v
}

// Reset reinitialises the VIC to its documented power-on state.
func (v *VIC) Reset() {
	v.regs = [0x2F]uint8{}
	v.raster = 0
	v.cycle = 1
	v.vc, v.vcBase, v.rc = 0, 0, 0
	v.mlIndex = 0
	v.badLinesOn = false
	v.isBadLine = false
	v.displayState = false
	v.udBorderOn = false
	v.borderOn = true
	v.xScroll, v.yScroll = 0, 0
	v.mode = ModeStandardText
	v.sprites = [8]sprite{}
	v.irqData, v.irqMask = 0, 0
	v.baLow = false
}

// SetBankBase is called by CIA2 whenever port A's bank-select bits change.
func (v *VIC) SetBankBase(base uint16) { v.bankBase = base }

// BALow reports whether the VIC currently holds the bus.
func (v *VIC) BALow() bool { return v.baLow }

// IRQAsserted reports whether the VIC's IRQ line is currently low.
func (v *VIC) IRQAsserted() bool { return v.irqData&0x80 != 0 }

// Raster returns the current raster line, for tests and the debugger.
func (v *VIC) Raster() uint16 { return v.raster }

// screenAddr returns the address of the video matrix within the current
// 16 KiB VIC bank, from $D018 bits 7-4.
func (v *VIC) screenAddr() uint16 {
	return uint16(v.regs[0x18]&0xF0) << 6
}

// charsetAddr returns the character set base within the current bank, from
// $D018 bits 3-1 (bitmap modes use bit 3 only, for the 8 KiB half).
func (v *VIC) charsetAddr() uint16 {
	return uint16(v.regs[0x18]&0x0E) << 10
}

func (v *VIC) bitmapAddr() uint16 {
	return uint16(v.regs[0x18]&0x08) << 10
}

func (v *VIC) colorAt(idx uint16) uint8 {
	return v.bus.ColorRAM(idx)
}
