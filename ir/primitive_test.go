package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveStrings(t *testing.T) {
	// Every variant names itself; diagnostics depend on it.
	for _, prim := range Primitives {
		assert.NotEqual(t, "unknown", prim.String(), "primitive %d", int(prim))
		assert.NotEmpty(t, prim.String())
	}
}

func TestPrimitivesComplete(t *testing.T) {
	assert.Len(t, Primitives, 17)

	assert.True(t, I128.Is128Bit())
	assert.True(t, U128.Is128Bit())
	assert.False(t, I64.Is128Bit())
	assert.False(t, Byte.Is128Bit())
}
