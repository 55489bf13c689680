package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielkrupinski/stringpool"
)

// TestUTF16_RoundTrip encodes and decodes across the interesting rune
// ranges: ASCII, Latin-1, BMP symbols, and supplementary-plane emoji.
func TestUTF16_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"Hello, World!",
		"héllo wörld",
		"snowman: ☃",
		"emoji: 😀😀",
		"mixed ascii ☃ and 😀 tail",
	}
	for _, s := range cases {
		u := UTF16(s)
		assert.Equal(t, s, UTF16String(u), "round trip of %q", s)
	}
}

// TestUTF16_UnitShapes pins down the exact code units produced for ASCII
// and for a surrogate pair.
func TestUTF16_UnitShapes(t *testing.T) {
	assert.Equal(t, []uint16{0x48, 0x69}, UTF16("Hi"))
	assert.Equal(t, []uint16{0x2603}, UTF16("☃"))
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, UTF16("😀"),
		"U+1F600 must encode as a surrogate pair")
}

// TestUTF16String_UnpairedSurrogate verifies lone surrogates decode to the
// replacement character instead of corrupting the result.
func TestUTF16String_UnpairedSurrogate(t *testing.T) {
	assert.Equal(t, "�", UTF16String([]uint16{0xD800}))
	assert.Equal(t, "a�b", UTF16String([]uint16{'a', 0xDC00, 'b'}))
}

// TestRunes verifies UTF-32 encoding counts runes, not bytes.
func TestRunes(t *testing.T) {
	r := Runes("héllo 😀")
	assert.Len(t, r, 7)
	assert.Equal(t, 'h', r[0])
	assert.Equal(t, 'é', r[1])
	assert.Equal(t, '😀', r[6])
	assert.Equal(t, "héllo 😀", string(r))
}

// TestWindows1252_RoundTrip encodes code-page text and decodes it back.
func TestWindows1252_RoundTrip(t *testing.T) {
	b, err := Windows1252("café")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b, "é is 0xE9 in windows-1252")

	s, err := Windows1252String(b)
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	b, err = Windows1252("100€")
	require.NoError(t, err)
	assert.Equal(t, byte(0x80), b[3], "the euro sign sits at 0x80")

	ascii, err := Windows1252("plain ascii")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain ascii"), ascii)
}

// TestWindows1252_RejectsUnmappableRunes verifies runes outside the code
// page produce errors rather than silent substitutions.
func TestWindows1252_RejectsUnmappableRunes(t *testing.T) {
	_, err := Windows1252("日本語")
	require.Error(t, err)
	assert.ErrorContains(t, err, "windows-1252")

	_, err = Windows1252("arrow →")
	require.Error(t, err)
}

// TestWindows1252String_DecodesHighBytes checks the printable high range,
// where windows-1252 diverges from Latin-1.
func TestWindows1252String_DecodesHighBytes(t *testing.T) {
	s, err := Windows1252String([]byte{0x80, 0x93, 0x94, 0xE9, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, "€“”éÿ", s)
}

// TestUnits_PoolRoundTrips stores each unit shape in its matching pool
// type and converts views back to strings.
func TestUnits_PoolRoundTrips(t *testing.T) {
	t.Run("utf16", func(t *testing.T) {
		p := stringpool.New(stringpool.WithTerminator[uint16]())
		view, err := p.Add(UTF16("héllo 😀"))
		require.NoError(t, err)
		assert.Equal(t, "héllo 😀", UTF16String(view))
	})

	t.Run("windows1252", func(t *testing.T) {
		encoded, err := Windows1252("café crème")
		require.NoError(t, err)

		p := stringpool.New(stringpool.WithTerminator[byte]())
		view, err := p.Add(encoded)
		require.NoError(t, err)

		decoded, err := Windows1252String(view)
		require.NoError(t, err)
		assert.Equal(t, "café crème", decoded)
	})

	t.Run("utf32", func(t *testing.T) {
		p := stringpool.New[rune]()
		view, err := p.Add(Runes("😀 and ☃"))
		require.NoError(t, err)
		assert.Equal(t, "😀 and ☃", string(view))
	})
}
