package koka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/bindgen/cgen"
	"github.com/teranos/bindgen/errors"
	"github.com/teranos/bindgen/ir"
)

func newPrimFormatter() *Formatter {
	tcx := ir.NewContextBuilder(nil).Build()
	return NewFormatter(cgen.NewFormatter(tcx), nil, "")
}

func TestPrimitiveAsFFINative(t *testing.T) {
	f := newPrimFormatter()

	tests := []struct {
		prim     ir.PrimitiveType
		expected string
	}{
		{ir.Bool, "bool"},
		{ir.Char, "char"},
		{ir.Byte, "int8"},
		{ir.I8, "int8"},
		{ir.U8, "int8"},
		{ir.I16, "int16"},
		{ir.U16, "int16"},
		{ir.I32, "int32"},
		{ir.U32, "int32"},
		{ir.I64, "int64"},
		{ir.U64, "int64"},
		{ir.Isize, "intptr_t"},
		{ir.Usize, "ssize_t"},
		{ir.F32, "float32"},
		{ir.F64, "float64"},
	}

	for _, tt := range tests {
		got, err := f.PrimitiveAsFFI(tt.prim, false)
		require.NoError(t, err, "prim %s", tt.prim)
		assert.Equal(t, tt.expected, got, "prim %s", tt.prim)
	}
}

func TestPrimitiveAsFFICast(t *testing.T) {
	f := newPrimFormatter()

	tests := []struct {
		prim     ir.PrimitiveType
		expected string
	}{
		{ir.Bool, "bool"},
		{ir.Char, "char"},
		// Fixed-width integers collapse into the generic integer class
		// at the cast boundary.
		{ir.I8, "int"},
		{ir.U8, "int"},
		{ir.I64, "int"},
		{ir.Usize, "int"},
		{ir.Isize, "int"},
		{ir.Byte, "int8"},
		{ir.F32, "float64"},
		{ir.F64, "float64"},
	}

	for _, tt := range tests {
		got, err := f.PrimitiveAsFFI(tt.prim, true)
		require.NoError(t, err, "prim %s", tt.prim)
		assert.Equal(t, tt.expected, got, "prim %s", tt.prim)
	}
}

func TestPrimitiveListType(t *testing.T) {
	f := newPrimFormatter()

	tests := []struct {
		prim     ir.PrimitiveType
		expected string
	}{
		{ir.Bool, "list<bool>"},
		{ir.Char, "list<char>"},
		{ir.Byte, "bytes"}, // raw bytes, not list<int8>
		{ir.I32, "list<int>"},
		{ir.Usize, "list<int>"},
		{ir.F32, "list<float64>"},
	}

	for _, tt := range tests {
		got, err := f.PrimitiveListType(tt.prim)
		require.NoError(t, err, "prim %s", tt.prim)
		assert.Equal(t, tt.expected, got, "prim %s", tt.prim)
	}
}

func TestPrimitiveListView(t *testing.T) {
	f := newPrimFormatter()

	tests := []struct {
		prim     ir.PrimitiveType
		expected string
	}{
		{ir.Bool, ".boolView"},
		{ir.Char, ".uint32View"},
		{ir.Byte, ""}, // no view indirection for raw bytes
		{ir.I8, ".int8View"},
		{ir.U8, ".uint8View"},
		{ir.U64, ".uint64View"},
		{ir.Usize, ".usizeView"},
		{ir.Isize, ".isizeView"},
		{ir.F64, ".float64View"},
	}

	for _, tt := range tests {
		got, err := f.PrimitiveListView(tt.prim)
		require.NoError(t, err, "prim %s", tt.prim)
		assert.Equal(t, tt.expected, got, "prim %s", tt.prim)
	}
}

func TestSliceType(t *testing.T) {
	f := newPrimFormatter()

	tests := []struct {
		prim     ir.PrimitiveType
		expected string
	}{
		{ir.Bool, "_SliceBool"},
		{ir.Char, "_SliceRune"},
		{ir.I8, "_SliceInt8"},
		{ir.U8, "_SliceUint8"},
		{ir.Byte, "_SliceUint8"},
		{ir.U16, "_SliceUint16"},
		{ir.I64, "_SliceInt64"},
		{ir.Usize, "_SliceUsize"},
		{ir.Isize, "_SliceIsize"},
		{ir.F32, "_SliceFloat"},
		{ir.F64, "_SliceDouble"},
	}

	for _, tt := range tests {
		got, err := f.SliceType(tt.prim)
		require.NoError(t, err, "prim %s", tt.prim)
		assert.Equal(t, tt.expected, got, "prim %s", tt.prim)
	}
}

// TestTablesExhaustive walks every primitive variant through all five
// mapping tables: each must return a defined spelling, except the
// 128-bit integers which must hit the fatal path in every context.
func TestTablesExhaustive(t *testing.T) {
	f := newPrimFormatter()

	for _, prim := range ir.Primitives {
		tables := map[string]func() (string, error){
			"native": func() (string, error) { return f.PrimitiveAsFFI(prim, false) },
			"cast":   func() (string, error) { return f.PrimitiveAsFFI(prim, true) },
			"list":   func() (string, error) { return f.PrimitiveListType(prim) },
			"view":   func() (string, error) { return f.PrimitiveListView(prim) },
			"slice":  func() (string, error) { return f.SliceType(prim) },
		}

		for table, fn := range tables {
			got, err := fn()
			if prim.Is128Bit() {
				require.Error(t, err, "prim %s, table %s", prim, table)
				assert.True(t, errors.Is(err, errors.ErrUnsupportedPrimitive),
					"prim %s, table %s", prim, table)
				assert.Contains(t, err.Error(), prim.String(),
					"diagnostic must name the primitive")
				continue
			}

			require.NoError(t, err, "prim %s, table %s", prim, table)
			// Byte's buffer view is the one legitimately empty spelling.
			if table == "view" && prim == ir.Byte {
				continue
			}
			assert.NotEmpty(t, got, "prim %s, table %s", prim, table)
		}
	}
}

func TestFixedSpellings(t *testing.T) {
	f := newPrimFormatter()

	assert.Equal(t, "string", f.StringType())
	assert.Equal(t, "int8", f.UTF8Primitive())
	assert.Equal(t, "int16", f.UTF16Primitive())
	assert.Equal(t, "_SliceUtf8", f.UTF8SliceType())
	assert.Equal(t, "_SliceUtf16", f.UTF16SliceType())
	assert.Equal(t, "()", f.Void())
	assert.Equal(t, "()", f.FFIVoid())
	assert.Equal(t, "c-pointer<locale>", f.Pointer("locale"))
}

func TestUsize(t *testing.T) {
	f := newPrimFormatter()

	assert.Equal(t, "ssize_t", f.Usize(false))
	assert.Equal(t, "int", f.Usize(true))
}

func TestEnumAsFFI(t *testing.T) {
	f := newPrimFormatter()

	assert.Equal(t, "int32", f.EnumAsFFI(false))
	assert.Equal(t, "int", f.EnumAsFFI(true))
}

func TestTypeAsIdent(t *testing.T) {
	f := newPrimFormatter()

	assert.Equal(t, "cpointer<locale>", f.TypeAsIdent("c-pointer<locale>"))
	assert.Equal(t, "int32", f.TypeAsIdent("int32"))
	assert.Equal(t, "()", f.TypeAsIdent(""))
}
