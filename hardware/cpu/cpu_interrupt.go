package cpu

import (
	"github.com/kondrak/rust64-sub000/hardware/cpu/execution"
	"github.com/kondrak/rust64-sub000/hardware/cpu/instructions"
	"github.com/kondrak/rust64-sub000/hardware/memory/memorymap"
)

// interruptKind distinguishes the three ways the CPU can enter its 7-cycle
// push/vector sequence.
type interruptKind int

const (
	intNone interruptKind = iota
	intIRQ
	intNMI
	intBRK
)

func (mc *CPU) push(b Bus, val uint8) {
	b.Write(mc.SP.Address(), val)
	mc.SP.Decrement()
}

func (mc *CPU) pull(b Bus) uint8 {
	mc.SP.Increment()
	return b.Read(mc.SP.Address())
}

// beginInterrupt starts the 7-cycle IRQ/NMI sequence. BRK (a software
// interrupt) reuses the exact same sequence via stepExecute's Brk case,
// which sets mc.intKind to intBRK itself; this entry point is only called
// for the two hardware lines, in place of the normal opcode fetch.
func (mc *CPU) beginInterrupt(isNMI bool) {
	mc.LastResult.Reset()
	mc.instrStartCycle = mc.cycles
	mc.defn = instructions.Definition{Operator: instructions.OpNone, Effect: instructions.Interrupt}
	mc.LastResult.Defn = &mc.defn
	if isNMI {
		mc.intKind = intNMI
	} else {
		mc.intKind = intIRQ
	}
	mc.runStep = 0
	mc.stg = stageExecute
}

// stepInterruptSequence runs the shared push-PC/push-flags/fetch-vector
// sequence used by IRQ, NMI and BRK. BRK additionally fetches (and
// discards) its signature byte in the first cycle and sets the Break flag
// in the pushed status; hardware IRQ/NMI instead spend that first cycle on
// a dummy fetch at the current PC (not incremented) and never set Break.
//
// The NMI-hijack bug is reproduced here: if an NMI edge lands while a BRK
// is mid-sequence, before its vector bytes are fetched, the BRK finishes
// pushing PC/flags as usual but the CPU vectors through the NMI vector
// instead of IRQ/BRK's -- matching the window Visual6502 documents rather
// than a narrower single-cycle check.
func (mc *CPU) stepInterruptSequence(b Bus) {
	mc.runStep++

	switch mc.runStep {
	case 1:
		if mc.intKind == intBRK {
			b.Read(mc.PC.Address())
			mc.PC.Increment()
		} else {
			b.Read(mc.PC.Address())
		}
	case 2:
		mc.push(b, uint8(mc.PC.Address()>>8))
	case 3:
		mc.push(b, uint8(mc.PC.Address()))
	case 4:
		status := mc.Status
		status.Break = mc.intKind == intBRK
		mc.push(b, status.Value())
		mc.Status.InterruptDisable = true
		if mc.nmiEdgePending {
			mc.nmiEdgePending = false
			mc.intKind = intNMI
			mc.LastResult.CPUBug = execution.BRKNMIHijack
		}
	case 5:
		mc.operandAddr = uint16(b.Read(mc.vectorFor(mc.intKind)))
	case 6:
		hi := uint16(b.Read(mc.vectorFor(mc.intKind) + 1))
		mc.PC.Load(mc.operandAddr | hi<<8)
		mc.intKind = intNone
		mc.finishInstruction()
	}
}

func (mc *CPU) vectorFor(kind interruptKind) uint16 {
	if kind == intNMI {
		return memorymap.NMIVector
	}
	return memorymap.IRQVector
}
