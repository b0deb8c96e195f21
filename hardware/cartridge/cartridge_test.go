package cartridge_test

import (
	"encoding/binary"
	"testing"

	"github.com/kondrak/rust64-sub000/cartridgeloader"
	"github.com/kondrak/rust64-sub000/hardware/cartridge"
	"github.com/kondrak/rust64-sub000/hardware/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCRT assembles a minimal single-chip CRT image: a 0x40-byte header
// (header length, version, hardware type 0, EXROM, GAME, 32-byte name) and
// one CHIP block holding data at the given load address.
func buildCRT(t *testing.T, exrom, game bool, loadAddr uint16, chipData []byte) []byte {
	t.Helper()

	header := make([]byte, 0x40)
	copy(header, "C64 CARTRIDGE   ")
	binary.BigEndian.PutUint32(header[0x10:], uint32(len(header)))
	binary.BigEndian.PutUint16(header[0x14:], 1)
	binary.BigEndian.PutUint16(header[0x16:], 0)
	if exrom {
		header[0x18] = 1
	}
	if game {
		header[0x19] = 1
	}
	copy(header[0x20:], "TEST CART")

	chip := make([]byte, 16+len(chipData))
	copy(chip[:4], "CHIP")
	binary.BigEndian.PutUint32(chip[4:], uint32(len(chip)))
	binary.BigEndian.PutUint16(chip[8:], uint16(cartridge.ChipROM))
	binary.BigEndian.PutUint16(chip[10:], 0)
	binary.BigEndian.PutUint16(chip[12:], loadAddr)
	binary.BigEndian.PutUint16(chip[14:], uint16(len(chipData)))
	copy(chip[16:], chipData)

	return append(header, chip...)
}

func loaderFromBytes(t *testing.T, name string, data []byte) cartridgeloader.Loader {
	t.Helper()
	ld, err := cartridgeloader.NewLoaderFromData(name, data)
	require.NoError(t, err)
	return ld
}

func TestLoadCRTHeader(t *testing.T) {
	data := buildCRT(t, false, true, 0x8000, []byte{0xA9, 0x00, 0x60})

	c, err := cartridge.Load(loaderFromBytes(t, "test", data))
	require.NoError(t, err)

	assert.Equal(t, "TEST CART", c.Name)
	assert.False(t, c.EXROM)
	assert.True(t, c.GAME)
	require.Len(t, c.Chips, 1)
	assert.Equal(t, uint16(0x8000), c.Chips[0].LoadAddr)
	assert.Equal(t, []byte{0xA9, 0x00, 0x60}, c.Chips[0].Data)
}

func TestLoadCRTRejectsUnsupportedHardwareType(t *testing.T) {
	data := buildCRT(t, false, true, 0x8000, []byte{0x00})
	binary.BigEndian.PutUint16(data[0x16:], 5)

	_, err := cartridge.Load(loaderFromBytes(t, "test", data))
	assert.Error(t, err)
}

func TestLoadCRTRejectsTruncatedChip(t *testing.T) {
	data := buildCRT(t, false, true, 0x8000, []byte{0x01, 0x02, 0x03})
	data = data[:len(data)-2] // chop off the tail of the declared chip data

	_, err := cartridge.Load(loaderFromBytes(t, "test", data))
	assert.Error(t, err)
}

func TestLoadHeaderlessROM(t *testing.T) {
	raw := make([]byte, 0x2000)
	raw[0] = 0xEA

	c, err := cartridge.Load(loaderFromBytes(t, "plain", raw))
	require.NoError(t, err)

	assert.False(t, c.EXROM)
	assert.True(t, c.GAME)
	require.Len(t, c.Chips, 1)
	assert.Equal(t, uint16(0x8000), c.Chips[0].LoadAddr)
	assert.Equal(t, raw, c.Chips[0].Data)
}

func TestNewLoaderFromDataRejectsEmptyHeaderlessImage(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromData("empty", nil)
	require.Error(t, err, "NewLoaderFromData itself rejects empty data")
}

func TestWriteIntoSetsCartridgeLinesAfterPoking(t *testing.T) {
	data := buildCRT(t, true, false, 0x8000, []byte{0x11, 0x22, 0x33})
	c, err := cartridge.Load(loaderFromBytes(t, "test", data))
	require.NoError(t, err)

	mem := memory.NewMemory()
	c.WriteInto(mem)

	assert.Equal(t, uint8(0x11), mem.Peek(0x8000))
	assert.Equal(t, uint8(0x22), mem.Peek(0x8001))
	assert.Equal(t, uint8(0x33), mem.Peek(0x8002))
	assert.True(t, mem.EXROM)
	assert.False(t, mem.GAME)
}

func TestBankData(t *testing.T) {
	data := buildCRT(t, false, true, 0x8000, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	c, err := cartridge.Load(loaderFromBytes(t, "test", data))
	require.NoError(t, err)

	b, ok := c.BankData(0, 0x8002)
	require.True(t, ok)
	assert.Equal(t, uint8(0xBE), b)

	_, ok = c.BankData(0, 0x9000)
	assert.False(t, ok)
}
