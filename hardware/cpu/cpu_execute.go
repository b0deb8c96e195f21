package cpu

import (
	"github.com/kondrak/rust64-sub000/hardware/cpu/execution"
	"github.com/kondrak/rust64-sub000/hardware/cpu/instructions"
)

// stepExecute runs the final phase of every instruction: the phase that
// reads, writes, branches or otherwise finishes what stepFetchOp/
// stepFetchOperand set up. It is also where interrupt sequences (IRQ, NMI,
// BRK) live, since they share BRK's push/vector dance.
func (mc *CPU) stepExecute(b Bus) {
	if b.BALow() {
		mc.cycles--
		return
	}

	if mc.defn.Operator == instructions.OpNone && mc.defn.Effect == instructions.Interrupt {
		mc.stepInterruptSequence(b)
		return
	}

	switch mc.defn.Operator {
	case instructions.Jsr:
		mc.stepJsr(b)
		return
	case instructions.Rts:
		mc.stepRts(b)
		return
	case instructions.Rti:
		mc.stepRti(b)
		return
	case instructions.Brk:
		if mc.runStep == 0 {
			mc.intKind = intBRK
		}
		mc.stepInterruptSequence(b)
		return
	case instructions.Pha, instructions.Php:
		mc.stepPush(b)
		return
	case instructions.Pla, instructions.Plp:
		mc.stepPull(b)
		return
	}

	if mc.defn.IsBranch() {
		mc.stepBranch(b)
		return
	}

	switch mc.defn.AddressingMode {
	case instructions.Implied:
		mc.runStep++
		b.Read(mc.PC.Address())
		mc.executeImplied()
		mc.finishInstruction()
		return
	case instructions.Accumulator:
		mc.runStep++
		mc.executeAccumulator()
		mc.finishInstruction()
		return
	case instructions.Immediate:
		mc.runStep++
		val := mc.nextByte(b)
		mc.executeRead(val)
		mc.finishInstruction()
		return
	}

	switch mc.defn.Effect {
	case instructions.Read:
		mc.stepReadExecute(b)
	case instructions.Write:
		mc.stepWriteExecute(b)
	case instructions.RMW:
		mc.stepRMWExecute(b)
	}
}

// indexedAddrCrossing reports whether this instruction's addressing mode is
// one of the three that resolve their address a cycle late when a page is
// crossed (AbsoluteIndexedX/Y, IndirectIndexedY).
func indexedAddrCrossing(defn instructions.Definition) bool {
	return indexedMode(defn.AddressingMode)
}

// stepReadExecute performs the data read for Read-category instructions
// whose address was already resolved by stepFetchOperand. Non-indexed
// modes take exactly one cycle; the three indexed/indirect-indexed modes
// take one cycle when the address didn't cross a page, two when it did
// (the first of which reads garbage at the uncorrected address and is
// discarded).
func (mc *CPU) stepReadExecute(b Bus) {
	mc.runStep++

	if !indexedAddrCrossing(mc.defn) {
		val := b.Read(mc.operandAddr)
		mc.executeRead(val)
		mc.finishInstruction()
		return
	}

	switch mc.runStep {
	case 1:
		val := b.Read(mc.operandAddr)
		if !mc.pageCrossed {
			mc.executeRead(val)
			mc.finishInstruction()
			return
		}
		mc.operandAddr += 0x100
	case 2:
		val := b.Read(mc.operandAddr)
		mc.executeRead(val)
		mc.finishInstruction()
	}
}

// stepWriteExecute performs the store for Write-category instructions.
// Indexed modes always pay a phantom-read cycle before the real write,
// regardless of whether the page was actually crossed (stores can't use
// the "lucky" early finish that reads get, since the phantom cycle's
// address is indistinguishable from the final one until it is too late to
// skip).
func (mc *CPU) stepWriteExecute(b Bus) {
	mc.runStep++

	if !indexedAddrCrossing(mc.defn) {
		b.Write(mc.operandAddr, mc.executeStoreValue())
		mc.finishInstruction()
		return
	}

	switch mc.runStep {
	case 1:
		b.Read(mc.operandAddr)
		if mc.pageCrossed {
			mc.operandAddr += 0x100
		}
	case 2:
		b.Write(mc.operandAddr, mc.executeStoreValue())
		mc.finishInstruction()
	}
}

// stepRMWExecute writes back the modified value computed from the byte
// stepRMW already read and wrote back unmodified.
func (mc *CPU) stepRMWExecute(b Bus) {
	mc.runStep++
	newVal := mc.executeRMW(mc.rmwBuffer)
	b.Write(mc.operandAddr, newVal)
	mc.finishInstruction()
}

func (mc *CPU) stepPush(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		b.Read(mc.PC.Address())
	case 2:
		if mc.defn.Operator == instructions.Php {
			status := mc.Status
			status.Break = true
			mc.push(b, status.Value())
		} else {
			mc.push(b, mc.A.Value())
		}
		mc.finishInstruction()
	}
}

func (mc *CPU) stepPull(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		b.Read(mc.PC.Address())
	case 2:
		b.Read(mc.SP.Address())
	case 3:
		val := mc.pull(b)
		if mc.defn.Operator == instructions.Plp {
			mc.Status.Load(val)
		} else {
			mc.A.Load(val)
			mc.Status.SetSignZero(val)
		}
		mc.finishInstruction()
	}
}

func (mc *CPU) stepJsr(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		mc.baseAddr = uint16(mc.nextByte(b))
	case 2:
		b.Read(mc.SP.Address()) // internal stack-peek cycle
	case 3:
		mc.push(b, uint8(mc.PC.Address()>>8))
	case 4:
		mc.push(b, uint8(mc.PC.Address()))
	case 5:
		hi := uint16(mc.nextByte(b))
		mc.PC.Load(mc.baseAddr | hi<<8)
		mc.finishInstruction()
	}
}

func (mc *CPU) stepRts(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		b.Read(mc.PC.Address())
	case 2:
		b.Read(mc.SP.Address())
	case 3:
		mc.baseAddr = uint16(mc.pull(b))
	case 4:
		hi := uint16(mc.pull(b))
		mc.PC.Load(mc.baseAddr | hi<<8)
	case 5:
		b.Read(mc.PC.Address())
		mc.PC.Increment()
		mc.finishInstruction()
	}
}

func (mc *CPU) stepRti(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		b.Read(mc.PC.Address())
	case 2:
		b.Read(mc.SP.Address())
	case 3:
		mc.Status.Load(mc.pull(b))
	case 4:
		mc.baseAddr = uint16(mc.pull(b))
	case 5:
		hi := uint16(mc.pull(b))
		mc.PC.Load(mc.baseAddr | hi<<8)
		mc.finishInstruction()
	}
}

// branchTakenCond evaluates this branch instruction's condition against the
// current status flags.
func (mc *CPU) branchTakenCond() bool {
	switch mc.defn.Operator {
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bmi:
		return mc.Status.Sign
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bpl:
		return !mc.Status.Sign
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	}
	return false
}

// stepBranch implements the 2/3/4-cycle relative branch timing: not taken
// finishes after the offset fetch; taken-same-page finishes a cycle later;
// taken-crossing-page costs one cycle more still, to let the PC's high byte
// be corrected.
//
// Branches that are taken but do not cross a page delay interrupt sampling
// by one extra cycle -- a quirk of the real 6502's sampling logic this CPU
// reproduces verbatim rather than the more "obvious" behaviour of sampling
// on schedule.
func (mc *CPU) stepBranch(b Bus) {
	mc.runStep++
	switch mc.runStep {
	case 1:
		offset := mc.nextByte(b)
		taken := mc.branchTakenCond()
		mc.LastResult.BranchSuccess = taken
		if !taken {
			mc.finishInstruction()
			return
		}
		base := mc.PC.Address()
		target := uint16(int32(base) + int32(int8(offset)))
		mc.branchTarget = target
		mc.pageCrossed = (target & 0xFF00) != (base & 0xFF00)
	case 2:
		wrong := (mc.PC.Address() & 0xFF00) | (mc.branchTarget & 0x00FF)
		b.Read(wrong)
		mc.PC.Load(wrong)
		if !mc.pageCrossed {
			if mc.irqAsserted {
				mc.irqAssertedAt++
			}
			mc.LastResult.CPUBug = execution.BranchDelaysInterrupt
			mc.finishInstruction()
		}
	case 3:
		b.Read(mc.PC.Address())
		mc.PC.Load(mc.branchTarget)
		mc.finishInstruction()
	}
}
