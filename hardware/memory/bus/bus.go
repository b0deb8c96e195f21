// Package bus defines the single interface through which every chip in the
// machine (CPU, VIC-II, CIA pair, SID) talks to the rest of the system.
//
// The original implementation this emulator is modeled on wired the CPU,
// VIC-II and CIAs together via cyclic shared-mutable handles, each chip
// holding a reference to the others so it could raise interrupts or steal
// the bus. That shape does not translate to Go without unsafe aliasing or
// interface-based indirection at every field access. Instead, a single
// Bus is owned by the Machine and passed by reference into each chip's
// per-cycle Step; chips never call back into each other directly, only
// through Bus methods, so there is no possibility of re-entrant calls.
package bus

// Bus is implemented by the Machine and is the only coupling between chips.
type Bus interface {
	// Read returns the byte visible at addr through the current CPU bank
	// configuration.
	Read(addr uint16) uint8

	// Write stores a byte through the current CPU bank configuration.
	Write(addr uint16, val uint8)

	// BALow reports whether the VIC-II currently holds BA (bus available)
	// low, i.e. whether it is about to, or already is, stealing the bus.
	BALow() bool

	// SetVICIrq raises or clears the VIC-II's contribution to the CPU IRQ
	// line.
	SetVICIrq(asserted bool)

	// SetCIAIrq raises or clears CIA1's contribution to the CPU IRQ line.
	SetCIAIrq(asserted bool)

	// SetNMI raises or clears CIA2's contribution to the CPU NMI line.
	SetNMI(asserted bool)
}

// DebugBus is implemented by memory areas that support the peek/poke used
// by tooling and tests.
type DebugBus interface {
	Peek(addr uint16) uint8
	Poke(addr uint16, val uint8)
}
