// Package hardware wires together the CPU, VIC-II, SID and CIA pair into a
// single C64 and owns the master-cycle scheduler that steps them in the
// order the real machine's clock distribution forces: the VIC-II sees each
// cycle first (so a BA assertion or IRQ it raises this cycle is already
// visible when the CPU's own Step runs), then the CPU, then both CIAs.
package hardware

import (
	"github.com/kondrak/rust64-sub000/hardware/cia"
	"github.com/kondrak/rust64-sub000/hardware/cpu"
	"github.com/kondrak/rust64-sub000/hardware/memory"
	"github.com/kondrak/rust64-sub000/hardware/sid"
	"github.com/kondrak/rust64-sub000/hardware/vic"
	"github.com/kondrak/rust64-sub000/random"
)

// Machine is one complete Commodore 64: its CPU, its three custom chips and
// its overlaid address space, stepped one master cycle (roughly 985 kHz,
// PAL) at a time.
type Machine struct {
	CPU    *cpu.CPU
	VIC    *vic.VIC
	SID    *sid.SID
	CIA1   *cia.CIA
	CIA2   *cia.CIA
	Memory *memory.Memory

	cycles uint64
}

// New builds a Machine with every chip wired to the others exactly as the
// real hardware's interrupt and bank-select lines do: CIA1's IRQ line and
// the VIC's IRQ line both feed the CPU's maskable IRQ input; CIA2's IRQ
// line feeds the CPU's NMI input; CIA2's port A feeds the VIC's bank
// selector.
func New() *Machine {
	m := &Machine{Memory: memory.NewMemory()}

	m.CPU = cpu.New(random.NewRandom())
	m.VIC = vic.New(m.Memory, m.CPU.SetVICIrq)
	m.SID = sid.New()
	m.CIA1 = cia.NewKeyboard(m.CPU.SetCIAIrq)
	m.CIA2 = cia.New(m.CPU.SetNMI)
	m.CIA2.BankSelect = m.VIC.SetBankBase

	m.Memory.VIC = m.VIC
	m.Memory.SID = m.SID
	m.Memory.CIA1 = m.CIA1
	m.Memory.CIA2 = m.CIA2

	return m
}

// Reset performs a cold start: clears every chip's internal state and loads
// PC from the reset vector through whatever bank is visible at $FFFC-$FFFD
// (normally KERNAL).
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.VIC.Reset()
	m.SID.Reset()
	m.CIA1.Reset()
	m.CIA2.Reset()
	m.CPU.LoadResetVector(m)
}

// Step runs exactly one master cycle: VIC, then CPU, then both CIAs. SID is
// deliberately not stepped here; it free-runs on its own block-synthesis
// schedule driven by the audio callback (see sid.SID.Synthesize), behind
// the lock the caller is expected to hold while touching it from two
// goroutines.
func (m *Machine) Step() {
	m.VIC.Step()
	m.CPU.Step(m)
	m.CIA1.Step()
	m.CIA2.Step()
	m.cycles++
}

// RunFrame runs master cycles until the VIC reports a completed frame,
// returning the number of cycles it took (roughly 19656 for PAL).
func (m *Machine) RunFrame() uint64 {
	start := m.cycles
	m.VIC.FrameReady = false
	for !m.VIC.FrameReady {
		m.Step()
	}
	return m.cycles - start
}

// Read implements bus.Bus for the CPU: a plain memory-mapped read through
// the current bank configuration.
func (m *Machine) Read(addr uint16) uint8 { return m.Memory.Read(addr) }

// Write implements bus.Bus for the CPU.
func (m *Machine) Write(addr uint16, val uint8) { m.Memory.Write(addr, val) }

// BALow implements bus.Bus: true while the VIC-II is asserting BA, i.e.
// stealing the bus for a badline matrix fetch or sprite DMA.
func (m *Machine) BALow() bool { return m.VIC.BALow() }

// SetVICIrq implements bus.Bus; forwarded directly from the VIC's own IRQ
// callback, kept here so Machine satisfies bus.Bus in full.
func (m *Machine) SetVICIrq(asserted bool) { m.CPU.SetVICIrq(asserted) }

// SetCIAIrq implements bus.Bus.
func (m *Machine) SetCIAIrq(asserted bool) { m.CPU.SetCIAIrq(asserted) }

// SetNMI implements bus.Bus.
func (m *Machine) SetNMI(asserted bool) { m.CPU.SetNMI(asserted) }

// Peek/Poke implement bus.DebugBus for tooling that needs to inspect or
// patch memory; they forward to Memory.Peek/Poke and so have the same side
// effects as a CPU read or write.
func (m *Machine) Peek(addr uint16) uint8        { return m.Memory.Peek(addr) }
func (m *Machine) Poke(addr uint16, val uint8)   { m.Memory.Poke(addr, val) }
