// Package execution records the outcome of each instruction the CPU runs:
// which opcode, how many cycles it actually took, whether a page boundary
// was crossed, and which (if any) documented 6502 quirk fired.
package execution

import "github.com/kondrak/rust64-sub000/hardware/cpu/instructions"

// Result is updated cycle-by-cycle as an instruction executes. Final is
// false until the instruction's last cycle has run; fields other than
// Address and Defn are not meaningful until then.
type Result struct {
	Defn *instructions.Definition

	ByteCount       int
	Address         uint16
	InstructionData uint16
	Cycles          int
	PageFault       bool
	CPUBug          Bug
	Error           string
	BranchSuccess   bool
	Final           bool
}

// Reset clears the result ready for the next instruction.
func (r *Result) Reset() {
	r.Defn = nil
	r.ByteCount = 0
	r.Address = 0
	r.InstructionData = 0
	r.Cycles = 0
	r.PageFault = false
	r.CPUBug = NoBug
	r.Error = ""
	r.BranchSuccess = false
	r.Final = false
}
