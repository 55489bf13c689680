// Package units converts strings between Go's native UTF-8 and the code
// unit shapes pools store: UTF-16 for uint16 pools, UTF-32 for rune pools,
// and Windows-1252 for byte pools carrying legacy single-byte data.
package units

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// UTF16 encodes s as UTF-16 code units, the element type of uint16 pools.
func UTF16(s string) []uint16 {
	// Fast path: ASCII bytes widen one to one with no surrogate handling.
	if isASCII(s) {
		out := make([]uint16, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = uint16(s[i])
		}
		return out
	}
	return utf16.Encode([]rune(s))
}

// UTF16String decodes UTF-16 code units back to a string. Unpaired
// surrogates decode to the replacement character.
func UTF16String(u []uint16) string {
	ascii := true
	for _, c := range u {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		var b strings.Builder
		b.Grow(len(u))
		for _, c := range u {
			b.WriteByte(byte(c))
		}
		return b.String()
	}
	return string(utf16.Decode(u))
}

// Runes returns s as UTF-32 code units, the element type of rune pools.
func Runes(s string) []rune {
	return []rune(s)
}

// Windows1252 encodes s into the Windows-1252 single-byte code page used by
// legacy registry and file formats. Runes outside the code page fail with
// an error instead of being silently replaced.
func Windows1252(s string) ([]byte, error) {
	// Fast path: ASCII needs no encoding, it is identical in Windows-1252.
	if isASCII(s) {
		return []byte(s), nil
	}
	out, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("units: encode windows-1252: %w", err)
	}
	return out, nil
}

// Windows1252String decodes Windows-1252 bytes into a string.
func Windows1252String(b []byte) (string, error) {
	if isASCIIBytes(b) {
		return string(b), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("units: decode windows-1252: %w", err)
	}
	return string(out), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIBytes(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
