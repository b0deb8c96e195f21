// Package cpu implements the 6510, the 6502 variant at the heart of the
// Commodore 64. Unlike a conventional 6502 emulator that executes whole
// instructions and reports a cycle count afterwards, this CPU advances
// exactly one bus cycle per call to Step, so that the VIC-II and the two
// CIAs can be interleaved with it cycle-for-cycle by the machine's
// scheduler -- including mid-instruction BA stalls imposed by the VIC.
package cpu

import (
	"fmt"

	"github.com/kondrak/rust64-sub000/hardware/cpu/execution"
	"github.com/kondrak/rust64-sub000/hardware/cpu/instructions"
	"github.com/kondrak/rust64-sub000/hardware/cpu/registers"
	"github.com/kondrak/rust64-sub000/hardware/memory/memorymap"
	"github.com/kondrak/rust64-sub000/logger"
	"github.com/kondrak/rust64-sub000/random"
)

// stage identifies which part of the fetch/execute state machine the CPU
// resumes into on the next Step call.
type stage int

const (
	stageFetchOp stage = iota
	stageFetchOperand
	stageRMW
	stageExecute
)

// Bus is the minimal surface the CPU needs from the rest of the machine.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	BALow() bool
}

// CPU is the 6510 register file plus the in-flight instruction state.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	Random *random.Random

	// Killed is set by a HLT/JAM opcode. The scheduler stops stepping a
	// killed CPU until Reset is called.
	Killed bool

	LastResult execution.Result

	stg  stage
	defn instructions.Definition

	operandAddr uint16 // effective address, possibly not yet page-corrected
	baseAddr    uint16 // zero-page pointer / low-address-byte scratch
	rmwBuffer   uint8
	pageCrossed bool
	operandData uint8 // data byte latched during the first execute-phase read

	fetchStep int // 1-based cycle counter within stageFetchOperand
	runStep   int // 1-based cycle counter within stageExecute/stageRMW

	branchOffset uint16
	branchTarget uint16

	// interrupt lines. vicIRQ/ciaIRQ are level-latched by the VIC and CIA1
	// respectively and cleared by whichever register read/write
	// acknowledges them; nmi is edge-latched by CIA2 and auto-clears once
	// serviced.
	vicIRQ, ciaIRQ, nmi bool
	nmiEdgePending      bool

	cycles        uint64 // total master cycles since power-on/reset
	irqAssertedAt uint64
	irqAsserted   bool
	nmiAssertedAt uint64

	intKind interruptKind // which interrupt sequence stepExecute is currently running, if any

	instrStartCycle uint64 // mc.cycles at the opcode-fetch (or interrupt-entry) cycle, for Result.Cycles
}

// New constructs a CPU in a random power-on state (unless rng.ZeroSeed).
func New(rng *random.Random) *CPU {
	mc := &CPU{Random: rng}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s P=%s", mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset reinitialises registers to their documented (or randomised) power-on
// values. It does not itself load the reset vector; callers load PC from
// memorymap.ResetVector once the bus is wired up (the CPU cannot read
// memory until the Machine that owns it has finished constructing banks).
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.stg = stageFetchOp
	mc.vicIRQ, mc.ciaIRQ, mc.nmi = false, false, false
	mc.cycles = 0

	if mc.Random != nil {
		mc.A.Load(uint8(mc.Random.NoRewind(0x100)))
		mc.X.Load(uint8(mc.Random.NoRewind(0x100)))
		mc.Y.Load(uint8(mc.Random.NoRewind(0x100)))
	}
	mc.SP.Load(0xFD)
	mc.Status.Load(0x24)
}

// LoadResetVector reads $FFFC/$FFFD and sets PC. Call once after the bus's
// ROMs are mapped in.
func (mc *CPU) LoadResetVector(b Bus) {
	lo := uint16(b.Read(memorymap.ResetVector))
	hi := uint16(b.Read(memorymap.ResetVector + 1))
	mc.PC.Load(lo | hi<<8)
}

// SetVICIrq raises or clears the VIC-II's IRQ contribution.
func (mc *CPU) SetVICIrq(asserted bool) { mc.vicIRQ = asserted }

// SetCIAIrq raises or clears CIA1's IRQ contribution.
func (mc *CPU) SetCIAIrq(asserted bool) { mc.ciaIRQ = asserted }

// SetNMI raises (edge) or clears CIA2's NMI line.
func (mc *CPU) SetNMI(asserted bool) {
	if asserted && !mc.nmi {
		mc.nmiEdgePending = true
		mc.nmiAssertedAt = mc.cycles
	}
	mc.nmi = asserted
}

// Step advances the CPU by exactly one master cycle.
func (mc *CPU) Step(b Bus) {
	if mc.Killed {
		return
	}

	mc.cycles++

	switch mc.stg {
	case stageFetchOp:
		mc.stepFetchOp(b)
	case stageFetchOperand:
		mc.stepFetchOperand(b)
	case stageRMW:
		mc.stepRMW(b)
	case stageExecute:
		mc.stepExecute(b)
	}
}

// stepFetchOp samples pending interrupts and, if none are ready to be
// serviced, fetches and decodes the next opcode.
func (mc *CPU) stepFetchOp(b Bus) {
	if b.BALow() {
		mc.cycles--
		return
	}

	if mc.nmiEdgePending && mc.cycles-mc.nmiAssertedAt >= 2 {
		mc.nmiEdgePending = false
		mc.beginInterrupt(true)
		return
	}

	irqLine := mc.vicIRQ || mc.ciaIRQ
	if irqLine && !mc.irqAsserted {
		mc.irqAsserted = true
		mc.irqAssertedAt = mc.cycles
	} else if !irqLine {
		mc.irqAsserted = false
	}
	if irqLine && !mc.Status.InterruptDisable && mc.cycles-mc.irqAssertedAt >= 2 {
		mc.beginInterrupt(false)
		return
	}

	mc.LastResult.Reset()
	mc.instrStartCycle = mc.cycles
	addr := mc.PC.Address()
	opcode := b.Read(addr)
	mc.PC.Increment()

	mc.defn = instructions.Lookup(opcode)
	mc.LastResult.Defn = &mc.defn
	mc.LastResult.Address = addr
	mc.LastResult.ByteCount = 1

	if mc.defn.Operator == instructions.Hlt {
		mc.Killed = true
		logger.Logf("CPU", "HLT/JAM instruction at $%04X (opcode $%02X)", addr, opcode)
		return
	}

	mc.fetchStep = 0
	mc.runStep = 0
	mc.pageCrossed = false

	switch mc.defn.Operator {
	case instructions.Jsr, instructions.Rts, instructions.Brk, instructions.Rti:
		mc.stg = stageExecute
		return
	}
	if mc.defn.IsBranch() {
		mc.stg = stageExecute
		return
	}

	if fetchCycles(mc.defn.AddressingMode) > 0 {
		mc.stg = stageFetchOperand
	} else {
		mc.stg = stageExecute
	}
}

// fetchCycles returns the fixed number of cycles an addressing mode takes to
// resolve its effective address, independent of any page-cross penalty
// (which is charged later, during the data access itself).
func fetchCycles(mode instructions.AddressingMode) int {
	switch mode {
	case instructions.Absolute:
		return 2
	case instructions.Indirect:
		return 4
	case instructions.Zeropage:
		return 1
	case instructions.ZeropageIndexedX, instructions.ZeropageIndexedY:
		return 2
	case instructions.IndexedIndirectX:
		return 4
	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		return 2
	case instructions.IndirectIndexedY:
		return 3
	default:
		return 0
	}
}

func (mc *CPU) nextByte(b Bus) uint8 {
	v := b.Read(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	return v
}

// stepFetchOperand resolves the instruction's effective address, one cycle
// at a time, following the per-mode cycle breakdown of the 6502.
func (mc *CPU) stepFetchOperand(b Bus) {
	if b.BALow() {
		mc.cycles--
		return
	}

	mc.fetchStep++

	switch mc.defn.AddressingMode {
	case instructions.Zeropage:
		mc.operandAddr = uint16(mc.nextByte(b))

	case instructions.Absolute:
		if mc.fetchStep == 1 {
			mc.operandAddr = uint16(mc.nextByte(b))
		} else {
			hi := uint16(mc.nextByte(b))
			mc.operandAddr |= hi << 8
		}

	case instructions.Indirect:
		switch mc.fetchStep {
		case 1:
			mc.operandAddr = uint16(mc.nextByte(b))
		case 2:
			hi := uint16(mc.nextByte(b))
			mc.operandAddr |= hi << 8
		case 3:
			mc.baseAddr = uint16(b.Read(mc.operandAddr))
		case 4:
			hiAddr := (mc.operandAddr & 0xFF00) | ((mc.operandAddr + 1) & 0x00FF)
			hi := uint16(b.Read(hiAddr))
			mc.operandAddr = mc.baseAddr | hi<<8
			mc.LastResult.CPUBug = execution.JmpIndirectPageWrapBug
		}

	case instructions.ZeropageIndexedX:
		if mc.fetchStep == 1 {
			mc.operandAddr = uint16(mc.nextByte(b))
		} else {
			b.Read(mc.operandAddr)
			mc.operandAddr = uint16(uint8(mc.operandAddr) + mc.X.Value())
		}

	case instructions.ZeropageIndexedY:
		if mc.fetchStep == 1 {
			mc.operandAddr = uint16(mc.nextByte(b))
		} else {
			b.Read(mc.operandAddr)
			mc.operandAddr = uint16(uint8(mc.operandAddr) + mc.Y.Value())
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		idx := mc.X.Value()
		if mc.defn.AddressingMode == instructions.AbsoluteIndexedY {
			idx = mc.Y.Value()
		}
		if mc.fetchStep == 1 {
			mc.baseAddr = uint16(mc.nextByte(b))
		} else {
			hi := uint16(mc.nextByte(b))
			lo := mc.baseAddr + uint16(idx)
			mc.pageCrossed = lo >= 0x100
			mc.operandAddr = (lo & 0xFF) | hi<<8 // high byte not yet corrected if crossed
		}

	case instructions.IndexedIndirectX:
		switch mc.fetchStep {
		case 1:
			mc.baseAddr = uint16(mc.nextByte(b))
		case 2:
			b.Read(mc.baseAddr)
			mc.baseAddr = uint16(uint8(mc.baseAddr) + mc.X.Value())
		case 3:
			mc.operandAddr = uint16(b.Read(mc.baseAddr))
		case 4:
			hi := uint16(b.Read(uint16(uint8(mc.baseAddr + 1))))
			mc.operandAddr |= hi << 8
		}

	case instructions.IndirectIndexedY:
		switch mc.fetchStep {
		case 1:
			mc.baseAddr = uint16(mc.nextByte(b))
		case 2:
			mc.operandAddr = uint16(b.Read(mc.baseAddr))
		case 3:
			hi := uint16(b.Read(uint16(uint8(mc.baseAddr + 1))))
			lo := mc.operandAddr + uint16(mc.Y.Value())
			mc.pageCrossed = lo >= 0x100
			mc.operandAddr = (lo & 0xFF) | hi<<8
		}
	}

	if mc.fetchStep >= fetchCycles(mc.defn.AddressingMode) {
		if mc.defn.Operator == instructions.Jmp {
			mc.PC.Load(mc.operandAddr)
			mc.finishInstruction()
			return
		}
		mc.runStep = 0
		if mc.defn.IsRMW() {
			mc.stg = stageRMW
		} else {
			mc.stg = stageExecute
		}
	}
}

// stepRMW performs the classic read-modify-write double access: the
// unmodified byte is read, then written straight back unchanged (a
// dummy write visible to memory-mapped I/O) before the real operator runs
// and writes the modified value in stageExecute.
func (mc *CPU) stepRMW(b Bus) {
	if b.BALow() {
		mc.cycles--
		return
	}
	mc.runStep++

	if indexedMode(mc.defn.AddressingMode) {
		// Indexed RMW always pays the page-cross penalty cycle, whether or
		// not the page was actually crossed: the first cycle reads at the
		// not-yet-corrected address and is discarded, then the corrected
		// address is used for the real read/write-back pair.
		switch mc.runStep {
		case 1:
			b.Read(mc.operandAddr)
			if mc.pageCrossed {
				mc.operandAddr += 0x100
			}
		case 2:
			mc.rmwBuffer = b.Read(mc.operandAddr)
		case 3:
			b.Write(mc.operandAddr, mc.rmwBuffer)
			mc.stg = stageExecute
			mc.runStep = 0
		}
		return
	}

	switch mc.runStep {
	case 1:
		mc.rmwBuffer = b.Read(mc.operandAddr)
	case 2:
		b.Write(mc.operandAddr, mc.rmwBuffer)
		mc.stg = stageExecute
		mc.runStep = 0
	}
}

func indexedMode(mode instructions.AddressingMode) bool {
	switch mode {
	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexedY:
		return true
	default:
		return false
	}
}

func (mc *CPU) finishInstruction() {
	mc.LastResult.PageFault = mc.pageCrossed
	mc.LastResult.Cycles = int(mc.cycles-mc.instrStartCycle) + 1
	mc.LastResult.Final = true
	mc.stg = stageFetchOp
}
