package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kondrak/rust64-sub000/cartridgeloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoaderFromFilenameRejectsBlank(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromFilename("   ")
	assert.ErrorIs(t, err, cartridgeloader.NoFilename)
}

func TestNewLoaderFromDataRejectsEmpty(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromData("name", nil)
	assert.Error(t, err)
}

func TestNewLoaderFromDataRejectsBlankName(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromData("  ", []byte{1})
	assert.Error(t, err)
}

func TestNewLoaderFromDataComputesHashesUpFront(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	ld, err := cartridgeloader.NewLoaderFromData("embedded", data)
	require.NoError(t, err)

	want := fmt.Sprintf("%x", sha1.Sum(data))
	assert.Equal(t, want, ld.HashSHA1)
	assert.Equal(t, "embedded", ld.Name)
}

func TestOpenLoadsLocalFile(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "game.bin")
	require.NoError(t, os.WriteFile(pth, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0o644))

	ld, err := cartridgeloader.NewLoaderFromFilename(pth)
	require.NoError(t, err)
	require.NoError(t, ld.Open())

	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, *ld.Data)
	assert.NotEmpty(t, ld.HashSHA1)
	assert.NotEmpty(t, ld.HashMD5)
}

func TestOpenRejectsHashMismatch(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "game.bin")
	require.NoError(t, os.WriteFile(pth, []byte{1, 2, 3}, 0o644))

	ld, err := cartridgeloader.NewLoaderFromFilename(pth)
	require.NoError(t, err)
	ld.HashSHA1 = "not-the-right-hash"

	err = ld.Open()
	assert.Error(t, err)
}

func TestReadSeekRoundTrip(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	ld, err := cartridgeloader.NewLoaderFromData("embedded", data)
	require.NoError(t, err)
	require.NoError(t, ld.Open())

	buf := make([]byte, 2)
	n, err := ld.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20}, buf[:n])

	pos, err := ld.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}
