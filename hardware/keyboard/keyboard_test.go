package keyboard_test

import (
	"testing"

	"github.com/kondrak/rust64-sub000/hardware/cia"
	"github.com/kondrak/rust64-sub000/hardware/keyboard"
	"github.com/stretchr/testify/assert"
)

func newTestKeyboard() (*keyboard.Keyboard, *cia.CIA) {
	c := cia.NewKeyboard(func(bool) {})
	return keyboard.New(c), c
}

func TestKeyDownClearsMatrixBit(t *testing.T) {
	kb, c := newTestKeyboard()

	assert.Equal(t, uint8(0xFF), c.KeyMatrix[1], "matrix starts all released")

	kb.KeyDown(keyboard.KeyA)
	assert.Equal(t, uint8(0xFF&^(1<<2)), c.KeyMatrix[1])

	kb.KeyUp(keyboard.KeyA)
	assert.Equal(t, uint8(0xFF), c.KeyMatrix[1])
}

func TestShiftedKeySimulatesRightShift(t *testing.T) {
	kb, c := newTestKeyboard()

	kb.KeyDown(keyboard.KeyF2)

	assert.Equal(t, uint8(0xFF&^(1<<4)), c.KeyMatrix[0], "F2's own bit (row 0, col 4)")
	assert.Equal(t, uint8(0xFF&^(1<<4)), c.KeyMatrix[6], "synthesized right-shift (row 6, col 4)")

	kb.KeyUp(keyboard.KeyF2)

	assert.Equal(t, uint8(0xFF), c.KeyMatrix[0])
	assert.Equal(t, uint8(0xFF), c.KeyMatrix[6])
}

func TestUnshiftedKeyDoesNotTouchRightShiftBit(t *testing.T) {
	kb, c := newTestKeyboard()

	kb.KeyDown(keyboard.KeyF1)

	assert.Equal(t, uint8(0xFF&^(1<<4)), c.KeyMatrix[0])
	assert.Equal(t, uint8(0xFF), c.KeyMatrix[6], "F1 has no shifted twin, right-shift bit untouched")
}

func TestRightShiftItselfIsItsOwnMatrixEntry(t *testing.T) {
	kb, c := newTestKeyboard()

	kb.KeyDown(keyboard.KeyRightShift)
	assert.Equal(t, uint8(0xFF&^(1<<4)), c.KeyMatrix[6])
}

func TestUnknownKeyIsANoOp(t *testing.T) {
	kb, c := newTestKeyboard()
	before := c.KeyMatrix

	kb.KeyDown(keyboard.Key(9999))

	assert.Equal(t, before, c.KeyMatrix)
}
