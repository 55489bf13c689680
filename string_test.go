package stringpool

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddString_RoundTrip verifies string in, equal string out, with the
// result living in pool storage.
func TestAddString_RoundTrip(t *testing.T) {
	p := New[byte]()

	in := strings.Repeat("pooled ", 3)
	out := mustAddString(t, p, in)

	assert.Equal(t, in, out)
	assert.Equal(t, 1, p.BlockCount())

	// The pooled string must not share bytes with the input.
	inPtr := unsafe.StringData(in)
	outPtr := unsafe.StringData(out)
	assert.NotSame(t, inPtr, outPtr, "pooled string must have its own storage")
}

// TestAddString_EmptyString verifies the degenerate case on a pool that
// cannot even hold one unit per block.
func TestAddString_EmptyString(t *testing.T) {
	p := New(WithStandardBlockCapacity[byte](0))

	out, err := AddString(p, "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

// TestAddString_ManyStringsStayIntact pushes enough strings through
// AddString to cross several blocks, then re-checks every result.
func TestAddString_ManyStringsStayIntact(t *testing.T) {
	p := New(WithStandardBlockCapacity[byte](128), WithTerminator[byte]())

	inputs := make([]string, 300)
	outputs := make([]string, 300)
	for i := range inputs {
		inputs[i] = string(bytesOfLen(1 + i%60))
		outputs[i] = mustAddString(t, p, inputs[i])
	}

	for i := range inputs {
		assert.Equal(t, inputs[i], outputs[i], "pooled string %d changed", i)
	}
	assert.Greater(t, p.BlockCount(), 1)
}

// TestAddString_PropagatesSourceFailure verifies the error path returns an
// empty string and the source's error.
func TestAddString_PropagatesSourceFailure(t *testing.T) {
	p := New(WithSource[byte](failingSource[byte]{err: assert.AnError}))

	out, err := AddString(p, "cannot be stored")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "", out)
}

// TestViewString_SharesPoolStorage verifies the zero-copy reinterpretation
// both ways: same backing pointer, same content.
func TestViewString_SharesPoolStorage(t *testing.T) {
	p := New[byte]()

	view := mustAdd(t, p, []byte("alias me"))
	s := ViewString(view)

	assert.Equal(t, "alias me", s)
	assert.Same(t, &view[0], unsafe.StringData(s), "string must alias the view's bytes")

	assert.Equal(t, "", ViewString(nil))
	assert.Equal(t, "", ViewString([]byte{}))
}
