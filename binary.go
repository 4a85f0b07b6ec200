package main

import (
	"bytes"
	"io"
	"os"
)

// binarySampleSize is how many leading bytes are sniffed per file.
const binarySampleSize = 8192

// binarySignatures are magic byte prefixes of common binary formats:
// PNG, GIF87/89, BMP, JPEG, ZIP, PDF, ELF, Windows PE, and the two
// Mach-O magic variants.
var binarySignatures = [][]byte{
	{0x89, 'P', 'N', 'G'},
	[]byte("GIF8"),
	[]byte("BM"),
	{0xFF, 0xD8, 0xFF},
	[]byte("PK\x03\x04"),
	[]byte("%PDF"),
	{0x7F, 'E', 'L', 'F'},
	[]byte("MZ"),
	{0xCF, 0xFA, 0xED, 0xFE},
	{0xCA, 0xFE, 0xBA, 0xBE},
}

// isBinarySample reports whether a leading byte sample looks like binary
// content. An empty sample is text. Pure function: same bytes, same answer.
func isBinarySample(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	for _, sig := range binarySignatures {
		if bytes.HasPrefix(sample, sig) {
			return true
		}
	}
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return true
	}
	// More than 30% non-text bytes means binary.
	nonText := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > 0.3
}

// isTextByte covers printable ASCII plus CR, LF, TAB and backspace.
func isTextByte(b byte) bool {
	if b >= 32 && b <= 126 {
		return true
	}
	switch b {
	case '\n', '\r', '\t', '\b':
		return true
	}
	return false
}

// isBinaryFile sniffs the first 8KB of the file at path. Files that
// cannot be opened or read are treated as binary so they never get
// mis-measured as empty text.
func isBinaryFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binarySampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return isBinarySample(buf[:n])
}
