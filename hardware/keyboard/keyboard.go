// Package keyboard translates host key identifiers into positions on the
// C64's 8x8 keyboard matrix and flips the corresponding bits in a CIA's
// KeyMatrix.
//
// Key is an abstract, host-toolkit-independent identifier; the GUI layer
// owns the table mapping its own keycodes (SDL keycodes, in this repo's
// case) onto these. Keeping that mapping outside this package is what lets
// the matrix logic below be tested without a display or an SDL build tag.
package keyboard

import "github.com/kondrak/rust64-sub000/hardware/cia"

// Key identifies one physical C64 key (or a PC-keyboard stand-in for one
// that has no direct equivalent, e.g. CLR/HOME mapped to Home).
type Key int

// matrix position, row then column, matching cia.CIA.KeyMatrix's bit
// convention (row selected on port A, column read back inverted on port B).
type position struct {
	row, col uint8
	shifted  bool // true if the host key also requires the right-shift position
}

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyDown
	KeyUp
	KeyRight
	KeyLeft
	KeySpace
	KeyComma
	KeyPeriod
	KeySlash
	KeyAsterisk
	KeyEnter
	KeyDelete  // C64 DEL/INST, mapped from host Backspace
	KeyArrowLeft
	KeyLeftShift
	KeyRightShift
	KeyPlus    // host Minus
	KeyMinus   // host Equal
	KeyPound   // host Insert
	KeyHome    // host Home (CLR/HOME)
	KeyAt      // host LeftBracket
	KeyInsert  // host Delete (INST, shifted DEL)
	KeyColon   // host Semicolon
	KeySemicolon
	KeyEquals  // host Backslash
	KeyControl // host Tab
	KeyCommodore
)

// position returns the key's matrix row/column and whether it requires a
// simulated right-shift (row 6, column 4) alongside its own bit, matching
// the original keycode_to_c64 table's "| 0x80" entries for F2/F4/F6/Up/Left
// — PC keyboards have no separate key for the shifted form of these, so
// the shift state is synthesized instead.
func (k Key) position() (position, bool) {
	m, ok := keymap[k]
	return m, ok
}

var keymap = map[Key]position{
	Key0: {4, 3, false}, Key1: {7, 0, false}, Key2: {7, 3, false}, Key3: {1, 0, false},
	Key4: {1, 3, false}, Key5: {2, 0, false}, Key6: {2, 3, false}, Key7: {3, 0, false},
	Key8: {3, 3, false}, Key9: {4, 0, false},

	KeyA: {1, 2, false}, KeyB: {3, 4, false}, KeyC: {2, 4, false}, KeyD: {2, 2, false},
	KeyE: {1, 6, false}, KeyF: {2, 5, false}, KeyG: {3, 2, false}, KeyH: {3, 5, false},
	KeyI: {4, 1, false}, KeyJ: {4, 2, false}, KeyK: {4, 5, false}, KeyL: {5, 2, false},
	KeyM: {4, 4, false}, KeyN: {4, 7, false}, KeyO: {4, 6, false}, KeyP: {5, 1, false},
	KeyQ: {7, 6, false}, KeyR: {2, 1, false}, KeyS: {1, 5, false}, KeyT: {2, 6, false},
	KeyU: {3, 6, false}, KeyV: {3, 7, false}, KeyW: {1, 1, false}, KeyX: {2, 7, false},
	KeyY: {3, 1, false}, KeyZ: {1, 4, false},

	KeyF1: {0, 4, false}, KeyF2: {0, 4, true}, KeyF3: {0, 5, false}, KeyF4: {0, 5, true},
	KeyF5: {0, 6, false}, KeyF6: {0, 6, true}, KeyF7: {0, 3, false}, KeyF8: {0, 3, true},

	KeyDown: {0, 7, false}, KeyUp: {0, 7, true}, KeyRight: {0, 2, false}, KeyLeft: {0, 2, true},

	KeySpace: {7, 4, false}, KeyComma: {5, 7, false}, KeyPeriod: {5, 4, false}, KeySlash: {6, 7, false},
	KeyAsterisk: {6, 1, false}, KeyEnter: {0, 1, false}, KeyDelete: {0, 0, false},
	KeyArrowLeft: {7, 1, false}, KeyLeftShift: {1, 7, false}, KeyRightShift: {6, 4, false},

	KeyPlus: {5, 0, false}, KeyMinus: {5, 3, false}, KeyPound: {6, 0, false}, KeyHome: {6, 3, false},
	KeyAt: {5, 6, false}, KeyInsert: {6, 6, false}, KeyColon: {5, 5, false}, KeySemicolon: {6, 2, false},
	KeyEquals: {6, 5, false}, KeyControl: {7, 2, false}, KeyCommodore: {7, 5, false},
}

// Keyboard owns no state of its own beyond the translation table; every
// press/release is applied straight to the CIA1 instance's KeyMatrix, which
// is the only place the matrix state needs to live.
type Keyboard struct {
	CIA1 *cia.CIA
}

// New returns a Keyboard driving the given CIA1 instance's key matrix.
func New(cia1 *cia.CIA) *Keyboard {
	return &Keyboard{CIA1: cia1}
}

// KeyDown presses k, clearing its bit (and, for keys with no direct PC
// equivalent that are simulated as a shifted chord, the right-shift bit)
// in the matrix.
func (kb *Keyboard) KeyDown(k Key) {
	pos, ok := k.position()
	if !ok {
		return
	}
	kb.CIA1.KeyMatrix[pos.row] &^= 1 << pos.col
	if pos.shifted {
		kb.CIA1.KeyMatrix[6] &^= 1 << 4
	}
}

// KeyUp releases k, setting its bit back.
func (kb *Keyboard) KeyUp(k Key) {
	pos, ok := k.position()
	if !ok {
		return
	}
	kb.CIA1.KeyMatrix[pos.row] |= 1 << pos.col
	if pos.shifted {
		kb.CIA1.KeyMatrix[6] |= 1 << 4
	}
}
