package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinarySample_Empty(t *testing.T) {
	assert.False(t, isBinarySample(nil))
	assert.False(t, isBinarySample([]byte{}))
}

func TestIsBinarySample_MagicSignatures(t *testing.T) {
	samples := map[string][]byte{
		"png":      {0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'},
		"gif":      []byte("GIF89a trailing data"),
		"bmp":      []byte("BM and some pixels"),
		"jpeg":     {0xFF, 0xD8, 0xFF, 0xE0, 'J', 'F', 'I', 'F'},
		"zip":      []byte("PK\x03\x04 archive"),
		"pdf":      []byte("%PDF-1.7 content"),
		"elf":      {0x7F, 'E', 'L', 'F', 2, 1, 1},
		"pe":       []byte("MZ windows executable"),
		"mach-o 1": {0xCF, 0xFA, 0xED, 0xFE, 7, 0},
		"mach-o 2": {0xCA, 0xFE, 0xBA, 0xBE, 0, 0},
	}
	for name, sample := range samples {
		assert.True(t, isBinarySample(sample), "signature %s should be binary", name)
	}
}

func TestIsBinarySample_NullByte(t *testing.T) {
	assert.True(t, isBinarySample([]byte("plain text with a \x00 in the middle")))
}

func TestIsBinarySample_NonTextRatio(t *testing.T) {
	// 4 of 10 bytes outside the text set: over the 0.3 threshold.
	over := append(bytes.Repeat([]byte{0x01}, 4), []byte("abcdef")...)
	assert.True(t, isBinarySample(over))

	// 2 of 10: under the threshold, still text.
	under := append(bytes.Repeat([]byte{0x01}, 2), []byte("abcdefgh")...)
	assert.False(t, isBinarySample(under))
}

func TestIsBinarySample_PlainText(t *testing.T) {
	assert.False(t, isBinarySample([]byte("package main\n\nfunc main() {}\n")))
}

func TestIsBinarySample_Pure(t *testing.T) {
	sample := []byte("some text\twith\r\ncontrol characters\b")
	first := isBinarySample(sample)
	second := isBinarySample(sample)
	assert.Equal(t, first, second)
	assert.Equal(t, []byte("some text\twith\r\ncontrol characters\b"), sample, "sample must not be mutated")
}

func TestIsBinaryFile(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "notes.unknown")
	require.NoError(t, os.WriteFile(text, []byte("just text\n"), 0644))
	assert.False(t, isBinaryFile(text))

	bin := filepath.Join(dir, "image.blob")
	require.NoError(t, os.WriteFile(bin, []byte{0x89, 'P', 'N', 'G', 0x0D}, 0644))
	assert.True(t, isBinaryFile(bin))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.False(t, isBinaryFile(empty), "empty files are text")
}

func TestIsBinaryFile_Unreadable(t *testing.T) {
	assert.True(t, isBinaryFile(filepath.Join(t.TempDir(), "does-not-exist")))
}
