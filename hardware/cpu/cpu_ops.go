package cpu

import "github.com/kondrak/rust64-sub000/hardware/cpu/instructions"

// executeRead applies a Read-category (or Immediate) operator to val,
// updating registers and flags. val has already been fetched by the
// caller; this never touches the bus.
func (mc *CPU) executeRead(val uint8) {
	switch mc.defn.Operator {
	case instructions.Lda:
		mc.A.Load(val)
		mc.Status.SetSignZero(val)
	case instructions.Ldx:
		mc.X.Load(val)
		mc.Status.SetSignZero(val)
	case instructions.Ldy:
		mc.Y.Load(val)
		mc.Status.SetSignZero(val)
	case instructions.And:
		mc.A.AND(val)
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(val)
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(val)
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Bit:
		r := mc.A.Value() & val
		mc.Status.Zero = r == 0
		mc.Status.Sign = val&0x80 != 0
		mc.Status.Overflow = val&0x40 != 0
	case instructions.Adc:
		mc.adc(val)
	case instructions.Sbc:
		mc.sbc(val)
	case instructions.Cmp:
		mc.compare(mc.A.Value(), val)
	case instructions.Cpx:
		mc.compare(mc.X.Value(), val)
	case instructions.Cpy:
		mc.compare(mc.Y.Value(), val)
	case instructions.Nop:
		// documented and undocumented NOP-with-operand forms discard val.
	case instructions.Lax:
		mc.A.Load(val)
		mc.X.Load(val)
		mc.Status.SetSignZero(val)
	case instructions.Las:
		r := mc.SP.Value() & val
		mc.A.Load(r)
		mc.X.Load(r)
		mc.SP.Load(r)
		mc.Status.SetSignZero(r)
	case instructions.Anc:
		mc.A.AND(val)
		mc.Status.SetSignZero(mc.A.Value())
		mc.Status.Carry = mc.A.IsNegative()
	case instructions.Alr:
		mc.A.AND(val)
		carry := mc.A.LSR()
		mc.Status.Carry = carry
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Arr:
		mc.A.AND(val)
		carry := mc.A.ROR(mc.Status.Carry)
		_ = carry
		r := mc.A.Value()
		mc.Status.SetSignZero(r)
		mc.Status.Carry = r&0x40 != 0
		mc.Status.Overflow = (r&0x40 != 0) != (r&0x20 != 0)
	case instructions.Axs:
		r := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = r >= val
		r -= val
		mc.X.Load(r)
		mc.Status.SetSignZero(r)
	case instructions.Xaa:
		r := mc.X.Value() & val
		mc.A.Load(r)
		mc.Status.SetSignZero(r)
	}
}

// executeStoreValue returns the byte a Write-category instruction stores.
func (mc *CPU) executeStoreValue() uint8 {
	switch mc.defn.Operator {
	case instructions.Sta:
		return mc.A.Value()
	case instructions.Stx:
		return mc.X.Value()
	case instructions.Sty:
		return mc.Y.Value()
	case instructions.Sax:
		return mc.A.Value() & mc.X.Value()
	case instructions.Ahx:
		return mc.A.Value() & mc.X.Value() & uint8((mc.operandAddr>>8)+1)
	case instructions.Shy:
		return mc.Y.Value() & uint8((mc.operandAddr>>8)+1)
	case instructions.Shx:
		return mc.X.Value() & uint8((mc.operandAddr>>8)+1)
	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		return mc.SP.Value() & uint8((mc.operandAddr>>8)+1)
	}
	return 0
}

// executeRMW computes the new value for a read-modify-write instruction
// from the byte already read; the caller writes it back.
func (mc *CPU) executeRMW(val uint8) uint8 {
	switch mc.defn.Operator {
	case instructions.Asl:
		carry := val&0x80 != 0
		r := val << 1
		mc.Status.Carry = carry
		mc.Status.SetSignZero(r)
		return r
	case instructions.Lsr:
		carry := val&0x01 != 0
		r := val >> 1
		mc.Status.Carry = carry
		mc.Status.SetSignZero(r)
		return r
	case instructions.Rol:
		carry := val&0x80 != 0
		r := val << 1
		if mc.Status.Carry {
			r |= 0x01
		}
		mc.Status.Carry = carry
		mc.Status.SetSignZero(r)
		return r
	case instructions.Ror:
		carry := val&0x01 != 0
		r := val >> 1
		if mc.Status.Carry {
			r |= 0x80
		}
		mc.Status.Carry = carry
		mc.Status.SetSignZero(r)
		return r
	case instructions.Inc:
		r := val + 1
		mc.Status.SetSignZero(r)
		return r
	case instructions.Dec:
		r := val - 1
		mc.Status.SetSignZero(r)
		return r
	case instructions.Slo:
		carry := val&0x80 != 0
		r := val << 1
		mc.Status.Carry = carry
		mc.A.ORA(r)
		mc.Status.SetSignZero(mc.A.Value())
		return r
	case instructions.Rla:
		carry := val&0x80 != 0
		r := val << 1
		if mc.Status.Carry {
			r |= 0x01
		}
		mc.Status.Carry = carry
		mc.A.AND(r)
		mc.Status.SetSignZero(mc.A.Value())
		return r
	case instructions.Sre:
		carry := val&0x01 != 0
		r := val >> 1
		mc.Status.Carry = carry
		mc.A.EOR(r)
		mc.Status.SetSignZero(mc.A.Value())
		return r
	case instructions.Rra:
		carry := val&0x01 != 0
		r := val >> 1
		if mc.Status.Carry {
			r |= 0x80
		}
		mc.Status.Carry = carry
		mc.adc(r)
		return r
	case instructions.Dcp:
		r := val - 1
		mc.compare(mc.A.Value(), r)
		return r
	case instructions.Isc:
		r := val + 1
		mc.sbc(r)
		return r
	}
	return val
}

// executeImplied runs the single-cycle implied-addressing operators that
// neither touch memory nor involve the stack.
func (mc *CPU) executeImplied() {
	switch mc.defn.Operator {
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetSignZero(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetSignZero(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetSignZero(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetSignZero(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetSignZero(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetSignZero(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetSignZero(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetSignZero(mc.Y.Value())
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Nop:
		// single-byte NOP: nothing to do.
	}
}

// executeAccumulator runs Asl/Lsr/Rol/Ror in their accumulator-addressed
// form, operating on A directly rather than a memory operand.
func (mc *CPU) executeAccumulator() {
	switch mc.defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = mc.A.ASL()
	case instructions.Lsr:
		mc.Status.Carry = mc.A.LSR()
	case instructions.Rol:
		mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
	case instructions.Ror:
		mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
	}
	mc.Status.SetSignZero(mc.A.Value())
}

func (mc *CPU) compare(reg, val uint8) {
	mc.Status.Carry = reg >= val
	r := reg - val
	mc.Status.SetSignZero(r)
}

// adc implements ADC including the NMOS 6510's decimal-mode quirk where N,
// V and Z are derived from the binary sum rather than the BCD-corrected
// result.
func (mc *CPU) adc(val uint8) {
	a := mc.A.Value()
	var carry uint16
	if mc.Status.Carry {
		carry = 1
	}

	if !mc.Status.DecimalMode {
		sum := uint16(a) + uint16(val) + carry
		result := uint8(sum)
		mc.Status.Overflow = (^(a ^ val) & (a ^ result) & 0x80) != 0
		mc.Status.Carry = sum > 0xFF
		mc.A.Load(result)
		mc.Status.SetSignZero(result)
		return
	}

	binSum := uint16(a) + uint16(val) + carry
	binResult := uint8(binSum)
	mc.Status.Sign = binResult&0x80 != 0
	mc.Status.Zero = binResult == 0
	mc.Status.Overflow = (^(a ^ val) & (a ^ binResult) & 0x80) != 0

	lo := int32(a&0x0F) + int32(val&0x0F) + int32(carry)
	hi := int32(a&0xF0) + int32(val&0xF0)
	if lo > 9 {
		lo += 6
		hi += 0x10
	}
	if hi > 0x90 {
		hi += 0x60
	}
	mc.Status.Carry = hi > 0xFF
	mc.A.Load(uint8(hi&0xF0) | uint8(lo&0x0F))
}

// sbc implements SBC including the matching decimal-mode quirk.
func (mc *CPU) sbc(val uint8) {
	a := mc.A.Value()
	var carry uint16
	if mc.Status.Carry {
		carry = 1
	}
	inv := ^val

	sum := uint16(a) + uint16(inv) + carry
	binResult := uint8(sum)
	mc.Status.Carry = sum > 0xFF
	mc.Status.Overflow = (^(a ^ inv) & (a ^ binResult) & 0x80) != 0
	mc.Status.Sign = binResult&0x80 != 0
	mc.Status.Zero = binResult == 0

	if !mc.Status.DecimalMode {
		mc.A.Load(binResult)
		return
	}

	lo := int32(a&0x0F) - int32(val&0x0F) + int32(carry) - 1
	hi := int32(a&0xF0) - int32(val&0xF0)
	if lo < 0 {
		lo -= 6
		hi -= 0x10
	}
	if hi < 0 {
		hi -= 0x60
	}
	mc.A.Load(uint8(hi&0xF0) | uint8(lo&0x0F))
}
