package registers

// StatusRegister models the 6510 P register: N V - B D I Z C. Bit 5 is
// unused on real silicon and always reads back as 1.
type StatusRegister struct {
	Sign             bool // N
	Overflow         bool // V
	Break            bool // B
	DecimalMode      bool // D
	InterruptDisable bool // I
	Zero             bool // Z
	Carry            bool // C
}

// NewStatusRegister creates a StatusRegister with all flags clear.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the register's display name.
func (sr StatusRegister) Label() string {
	return "SR"
}

// Value packs the flags into the conventional 6502 byte layout, forcing the
// unused bit 5 to 1.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	v |= 0x20
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

func (sr StatusRegister) String() string {
	const hex = "0123456789abcdef"
	v := sr.Value()
	return string([]byte{hex[v>>4], hex[v&0xf]})
}

// Load unpacks a byte (as read from the stack by PLP/RTI) into the
// individual flags.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 != 0
	sr.Overflow = v&0x40 != 0
	sr.Break = v&0x10 != 0
	sr.DecimalMode = v&0x08 != 0
	sr.InterruptDisable = v&0x04 != 0
	sr.Zero = v&0x02 != 0
	sr.Carry = v&0x01 != 0
}

// SetSignZero sets the Sign and Zero flags from the given result byte; this
// pattern is shared by the majority of instructions.
func (sr *StatusRegister) SetSignZero(v uint8) {
	sr.Sign = v&0x80 != 0
	sr.Zero = v == 0
}
