package instructions

// table is indexed by opcode byte. It is built once at package init from
// the terse per-row definitions below, matching the layout of a standard
// 6502 opcode reference card (including the NMOS illegal opcodes).
var table [256]Definition

type row struct {
	op    Operator
	mode  AddressingMode
	cyc   int
	psens bool
	eff   EffectCategory
}

// addrModeBytes is the total instruction length in bytes, opcode byte
// included, for each addressing mode.
var addrModeBytes = map[AddressingMode]int{
	Implied: 1, Accumulator: 1,
	Immediate: 2, Zeropage: 2, ZeropageIndexedX: 2, ZeropageIndexedY: 2,
	Relative: 2, IndexedIndirectX: 2, IndirectIndexedY: 2,
	Absolute: 3, AbsoluteIndexedX: 3, AbsoluteIndexedY: 3, Indirect: 3,
}

func init() {
	rows := map[uint8]row{
		0x00: {Brk, Implied, 7, false, Interrupt},
		0x01: {Ora, IndexedIndirectX, 6, false, Read},
		0x02: {Hlt, Implied, 2, false, Read},
		0x03: {Slo, IndexedIndirectX, 8, false, RMW},
		0x04: {Nop, Zeropage, 3, false, Read},
		0x05: {Ora, Zeropage, 3, false, Read},
		0x06: {Asl, Zeropage, 5, false, RMW},
		0x07: {Slo, Zeropage, 5, false, RMW},
		0x08: {Php, Implied, 3, false, Write},
		0x09: {Ora, Immediate, 2, false, Read},
		0x0A: {Asl, Accumulator, 2, false, Read},
		0x0B: {Anc, Immediate, 2, false, Read},
		0x0C: {Nop, Absolute, 4, false, Read},
		0x0D: {Ora, Absolute, 4, false, Read},
		0x0E: {Asl, Absolute, 6, false, RMW},
		0x0F: {Slo, Absolute, 6, false, RMW},

		0x10: {Bpl, Relative, 2, true, Flow},
		0x11: {Ora, IndirectIndexedY, 5, true, Read},
		0x12: {Hlt, Implied, 2, false, Read},
		0x13: {Slo, IndirectIndexedY, 8, false, RMW},
		0x14: {Nop, ZeropageIndexedX, 4, false, Read},
		0x15: {Ora, ZeropageIndexedX, 4, false, Read},
		0x16: {Asl, ZeropageIndexedX, 6, false, RMW},
		0x17: {Slo, ZeropageIndexedX, 6, false, RMW},
		0x18: {Clc, Implied, 2, false, Read},
		0x19: {Ora, AbsoluteIndexedY, 4, true, Read},
		0x1A: {Nop, Implied, 2, false, Read},
		0x1B: {Slo, AbsoluteIndexedY, 7, false, RMW},
		0x1C: {Nop, AbsoluteIndexedX, 4, true, Read},
		0x1D: {Ora, AbsoluteIndexedX, 4, true, Read},
		0x1E: {Asl, AbsoluteIndexedX, 7, false, RMW},
		0x1F: {Slo, AbsoluteIndexedX, 7, false, RMW},

		0x20: {Jsr, Absolute, 6, false, Subroutine},
		0x21: {And, IndexedIndirectX, 6, false, Read},
		0x22: {Hlt, Implied, 2, false, Read},
		0x23: {Rla, IndexedIndirectX, 8, false, RMW},
		0x24: {Bit, Zeropage, 3, false, Read},
		0x25: {And, Zeropage, 3, false, Read},
		0x26: {Rol, Zeropage, 5, false, RMW},
		0x27: {Rla, Zeropage, 5, false, RMW},
		0x28: {Plp, Implied, 4, false, Read},
		0x29: {And, Immediate, 2, false, Read},
		0x2A: {Rol, Accumulator, 2, false, Read},
		0x2B: {Anc, Immediate, 2, false, Read},
		0x2C: {Bit, Absolute, 4, false, Read},
		0x2D: {And, Absolute, 4, false, Read},
		0x2E: {Rol, Absolute, 6, false, RMW},
		0x2F: {Rla, Absolute, 6, false, RMW},

		0x30: {Bmi, Relative, 2, true, Flow},
		0x31: {And, IndirectIndexedY, 5, true, Read},
		0x32: {Hlt, Implied, 2, false, Read},
		0x33: {Rla, IndirectIndexedY, 8, false, RMW},
		0x34: {Nop, ZeropageIndexedX, 4, false, Read},
		0x35: {And, ZeropageIndexedX, 4, false, Read},
		0x36: {Rol, ZeropageIndexedX, 6, false, RMW},
		0x37: {Rla, ZeropageIndexedX, 6, false, RMW},
		0x38: {Sec, Implied, 2, false, Read},
		0x39: {And, AbsoluteIndexedY, 4, true, Read},
		0x3A: {Nop, Implied, 2, false, Read},
		0x3B: {Rla, AbsoluteIndexedY, 7, false, RMW},
		0x3C: {Nop, AbsoluteIndexedX, 4, true, Read},
		0x3D: {And, AbsoluteIndexedX, 4, true, Read},
		0x3E: {Rol, AbsoluteIndexedX, 7, false, RMW},
		0x3F: {Rla, AbsoluteIndexedX, 7, false, RMW},

		0x40: {Rti, Implied, 6, false, Interrupt},
		0x41: {Eor, IndexedIndirectX, 6, false, Read},
		0x42: {Hlt, Implied, 2, false, Read},
		0x43: {Sre, IndexedIndirectX, 8, false, RMW},
		0x44: {Nop, Zeropage, 3, false, Read},
		0x45: {Eor, Zeropage, 3, false, Read},
		0x46: {Lsr, Zeropage, 5, false, RMW},
		0x47: {Sre, Zeropage, 5, false, RMW},
		0x48: {Pha, Implied, 3, false, Write},
		0x49: {Eor, Immediate, 2, false, Read},
		0x4A: {Lsr, Accumulator, 2, false, Read},
		0x4B: {Alr, Immediate, 2, false, Read},
		0x4C: {Jmp, Absolute, 3, false, Flow},
		0x4D: {Eor, Absolute, 4, false, Read},
		0x4E: {Lsr, Absolute, 6, false, RMW},
		0x4F: {Sre, Absolute, 6, false, RMW},

		0x50: {Bvc, Relative, 2, true, Flow},
		0x51: {Eor, IndirectIndexedY, 5, true, Read},
		0x52: {Hlt, Implied, 2, false, Read},
		0x53: {Sre, IndirectIndexedY, 8, false, RMW},
		0x54: {Nop, ZeropageIndexedX, 4, false, Read},
		0x55: {Eor, ZeropageIndexedX, 4, false, Read},
		0x56: {Lsr, ZeropageIndexedX, 6, false, RMW},
		0x57: {Sre, ZeropageIndexedX, 6, false, RMW},
		0x58: {Cli, Implied, 2, false, Read},
		0x59: {Eor, AbsoluteIndexedY, 4, true, Read},
		0x5A: {Nop, Implied, 2, false, Read},
		0x5B: {Sre, AbsoluteIndexedY, 7, false, RMW},
		0x5C: {Nop, AbsoluteIndexedX, 4, true, Read},
		0x5D: {Eor, AbsoluteIndexedX, 4, true, Read},
		0x5E: {Lsr, AbsoluteIndexedX, 7, false, RMW},
		0x5F: {Sre, AbsoluteIndexedX, 7, false, RMW},

		0x60: {Rts, Implied, 6, false, Subroutine},
		0x61: {Adc, IndexedIndirectX, 6, false, Read},
		0x62: {Hlt, Implied, 2, false, Read},
		0x63: {Rra, IndexedIndirectX, 8, false, RMW},
		0x64: {Nop, Zeropage, 3, false, Read},
		0x65: {Adc, Zeropage, 3, false, Read},
		0x66: {Ror, Zeropage, 5, false, RMW},
		0x67: {Rra, Zeropage, 5, false, RMW},
		0x68: {Pla, Implied, 4, false, Read},
		0x69: {Adc, Immediate, 2, false, Read},
		0x6A: {Ror, Accumulator, 2, false, Read},
		0x6B: {Arr, Immediate, 2, false, Read},
		0x6C: {Jmp, Indirect, 5, false, Flow},
		0x6D: {Adc, Absolute, 4, false, Read},
		0x6E: {Ror, Absolute, 6, false, RMW},
		0x6F: {Rra, Absolute, 6, false, RMW},

		0x70: {Bvs, Relative, 2, true, Flow},
		0x71: {Adc, IndirectIndexedY, 5, true, Read},
		0x72: {Hlt, Implied, 2, false, Read},
		0x73: {Rra, IndirectIndexedY, 8, false, RMW},
		0x74: {Nop, ZeropageIndexedX, 4, false, Read},
		0x75: {Adc, ZeropageIndexedX, 4, false, Read},
		0x76: {Ror, ZeropageIndexedX, 6, false, RMW},
		0x77: {Rra, ZeropageIndexedX, 6, false, RMW},
		0x78: {Sei, Implied, 2, false, Read},
		0x79: {Adc, AbsoluteIndexedY, 4, true, Read},
		0x7A: {Nop, Implied, 2, false, Read},
		0x7B: {Rra, AbsoluteIndexedY, 7, false, RMW},
		0x7C: {Nop, AbsoluteIndexedX, 4, true, Read},
		0x7D: {Adc, AbsoluteIndexedX, 4, true, Read},
		0x7E: {Ror, AbsoluteIndexedX, 7, false, RMW},
		0x7F: {Rra, AbsoluteIndexedX, 7, false, RMW},

		0x80: {Nop, Immediate, 2, false, Read},
		0x81: {Sta, IndexedIndirectX, 6, false, Write},
		0x82: {Nop, Immediate, 2, false, Read},
		0x83: {Sax, IndexedIndirectX, 6, false, Write},
		0x84: {Sty, Zeropage, 3, false, Write},
		0x85: {Sta, Zeropage, 3, false, Write},
		0x86: {Stx, Zeropage, 3, false, Write},
		0x87: {Sax, Zeropage, 3, false, Write},
		0x88: {Dey, Implied, 2, false, Read},
		0x89: {Nop, Immediate, 2, false, Read},
		0x8A: {Txa, Implied, 2, false, Read},
		0x8B: {Xaa, Immediate, 2, false, Read},
		0x8C: {Sty, Absolute, 4, false, Write},
		0x8D: {Sta, Absolute, 4, false, Write},
		0x8E: {Stx, Absolute, 4, false, Write},
		0x8F: {Sax, Absolute, 4, false, Write},

		0x90: {Bcc, Relative, 2, true, Flow},
		0x91: {Sta, IndirectIndexedY, 6, false, Write},
		0x92: {Hlt, Implied, 2, false, Read},
		0x93: {Ahx, IndirectIndexedY, 6, false, Write},
		0x94: {Sty, ZeropageIndexedX, 4, false, Write},
		0x95: {Sta, ZeropageIndexedX, 4, false, Write},
		0x96: {Stx, ZeropageIndexedY, 4, false, Write},
		0x97: {Sax, ZeropageIndexedY, 4, false, Write},
		0x98: {Tya, Implied, 2, false, Read},
		0x99: {Sta, AbsoluteIndexedY, 5, false, Write},
		0x9A: {Txs, Implied, 2, false, Read},
		0x9B: {Tas, AbsoluteIndexedY, 5, false, Write},
		0x9C: {Shy, AbsoluteIndexedX, 5, false, Write},
		0x9D: {Sta, AbsoluteIndexedX, 5, false, Write},
		0x9E: {Shx, AbsoluteIndexedY, 5, false, Write},
		0x9F: {Ahx, AbsoluteIndexedY, 5, false, Write},

		0xA0: {Ldy, Immediate, 2, false, Read},
		0xA1: {Lda, IndexedIndirectX, 6, false, Read},
		0xA2: {Ldx, Immediate, 2, false, Read},
		0xA3: {Lax, IndexedIndirectX, 6, false, Read},
		0xA4: {Ldy, Zeropage, 3, false, Read},
		0xA5: {Lda, Zeropage, 3, false, Read},
		0xA6: {Ldx, Zeropage, 3, false, Read},
		0xA7: {Lax, Zeropage, 3, false, Read},
		0xA8: {Tay, Implied, 2, false, Read},
		0xA9: {Lda, Immediate, 2, false, Read},
		0xAA: {Tax, Implied, 2, false, Read},
		0xAB: {Lax, Immediate, 2, false, Read},
		0xAC: {Ldy, Absolute, 4, false, Read},
		0xAD: {Lda, Absolute, 4, false, Read},
		0xAE: {Ldx, Absolute, 4, false, Read},
		0xAF: {Lax, Absolute, 4, false, Read},

		0xB0: {Bcs, Relative, 2, true, Flow},
		0xB1: {Lda, IndirectIndexedY, 5, true, Read},
		0xB2: {Hlt, Implied, 2, false, Read},
		0xB3: {Lax, IndirectIndexedY, 5, true, Read},
		0xB4: {Ldy, ZeropageIndexedX, 4, false, Read},
		0xB5: {Lda, ZeropageIndexedX, 4, false, Read},
		0xB6: {Ldx, ZeropageIndexedY, 4, false, Read},
		0xB7: {Lax, ZeropageIndexedY, 4, false, Read},
		0xB8: {Clv, Implied, 2, false, Read},
		0xB9: {Lda, AbsoluteIndexedY, 4, true, Read},
		0xBA: {Tsx, Implied, 2, false, Read},
		0xBB: {Las, AbsoluteIndexedY, 4, true, Read},
		0xBC: {Ldy, AbsoluteIndexedX, 4, true, Read},
		0xBD: {Lda, AbsoluteIndexedX, 4, true, Read},
		0xBE: {Ldx, AbsoluteIndexedY, 4, true, Read},
		0xBF: {Lax, AbsoluteIndexedY, 4, true, Read},

		0xC0: {Cpy, Immediate, 2, false, Read},
		0xC1: {Cmp, IndexedIndirectX, 6, false, Read},
		0xC2: {Nop, Immediate, 2, false, Read},
		0xC3: {Dcp, IndexedIndirectX, 8, false, RMW},
		0xC4: {Cpy, Zeropage, 3, false, Read},
		0xC5: {Cmp, Zeropage, 3, false, Read},
		0xC6: {Dec, Zeropage, 5, false, RMW},
		0xC7: {Dcp, Zeropage, 5, false, RMW},
		0xC8: {Iny, Implied, 2, false, Read},
		0xC9: {Cmp, Immediate, 2, false, Read},
		0xCA: {Dex, Implied, 2, false, Read},
		0xCB: {Axs, Immediate, 2, false, Read},
		0xCC: {Cpy, Absolute, 4, false, Read},
		0xCD: {Cmp, Absolute, 4, false, Read},
		0xCE: {Dec, Absolute, 6, false, RMW},
		0xCF: {Dcp, Absolute, 6, false, RMW},

		0xD0: {Bne, Relative, 2, true, Flow},
		0xD1: {Cmp, IndirectIndexedY, 5, true, Read},
		0xD2: {Hlt, Implied, 2, false, Read},
		0xD3: {Dcp, IndirectIndexedY, 8, false, RMW},
		0xD4: {Nop, ZeropageIndexedX, 4, false, Read},
		0xD5: {Cmp, ZeropageIndexedX, 4, false, Read},
		0xD6: {Dec, ZeropageIndexedX, 6, false, RMW},
		0xD7: {Dcp, ZeropageIndexedX, 6, false, RMW},
		0xD8: {Cld, Implied, 2, false, Read},
		0xD9: {Cmp, AbsoluteIndexedY, 4, true, Read},
		0xDA: {Nop, Implied, 2, false, Read},
		0xDB: {Dcp, AbsoluteIndexedY, 7, false, RMW},
		0xDC: {Nop, AbsoluteIndexedX, 4, true, Read},
		0xDD: {Cmp, AbsoluteIndexedX, 4, true, Read},
		0xDE: {Dec, AbsoluteIndexedX, 7, false, RMW},
		0xDF: {Dcp, AbsoluteIndexedX, 7, false, RMW},

		0xE0: {Cpx, Immediate, 2, false, Read},
		0xE1: {Sbc, IndexedIndirectX, 6, false, Read},
		0xE2: {Nop, Immediate, 2, false, Read},
		0xE3: {Isc, IndexedIndirectX, 8, false, RMW},
		0xE4: {Cpx, Zeropage, 3, false, Read},
		0xE5: {Sbc, Zeropage, 3, false, Read},
		0xE6: {Inc, Zeropage, 5, false, RMW},
		0xE7: {Isc, Zeropage, 5, false, RMW},
		0xE8: {Inx, Implied, 2, false, Read},
		0xE9: {Sbc, Immediate, 2, false, Read},
		0xEA: {Nop, Implied, 2, false, Read},
		0xEB: {Sbc, Immediate, 2, false, Read},
		0xEC: {Cpx, Absolute, 4, false, Read},
		0xED: {Sbc, Absolute, 4, false, Read},
		0xEE: {Inc, Absolute, 6, false, RMW},
		0xEF: {Isc, Absolute, 6, false, RMW},

		0xF0: {Beq, Relative, 2, true, Flow},
		0xF1: {Sbc, IndirectIndexedY, 5, true, Read},
		0xF2: {Hlt, Implied, 2, false, Read},
		0xF3: {Isc, IndirectIndexedY, 8, false, RMW},
		0xF4: {Nop, ZeropageIndexedX, 4, false, Read},
		0xF5: {Sbc, ZeropageIndexedX, 4, false, Read},
		0xF6: {Inc, ZeropageIndexedX, 6, false, RMW},
		0xF7: {Isc, ZeropageIndexedX, 6, false, RMW},
		0xF8: {Sed, Implied, 2, false, Read},
		0xF9: {Sbc, AbsoluteIndexedY, 4, true, Read},
		0xFA: {Nop, Implied, 2, false, Read},
		0xFB: {Isc, AbsoluteIndexedY, 7, false, RMW},
		0xFC: {Nop, AbsoluteIndexedX, 4, true, Read},
		0xFD: {Sbc, AbsoluteIndexedX, 4, true, Read},
		0xFE: {Inc, AbsoluteIndexedX, 7, false, RMW},
		0xFF: {Isc, AbsoluteIndexedX, 7, false, RMW},
	}

	for code, r := range rows {
		table[code] = Definition{
			OpCode:         code,
			Operator:       r.op,
			AddressingMode: r.mode,
			Bytes:          addrModeBytes[r.mode],
			Cycles:         r.cyc,
			PageSensitive:  r.psens,
			Effect:         r.eff,
		}
	}
}

// Lookup returns the decode-table entry for opcode.
func Lookup(opcode uint8) Definition {
	return table[opcode]
}
