package ir

// PrimitiveType is the closed algebra of primitive types the IR can
// express. Backends map each variant to a target-language spelling per
// emission context; every one of those tables must switch over this set
// exhaustively. Adding a variant here requires updating every backend
// table, and each backend's exhaustiveness test will catch a missing
// entry.
type PrimitiveType int

const (
	Bool PrimitiveType = iota
	Char
	Byte
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	I128
	U128
	Usize
	Isize
	F32
	F64
)

// Primitives lists every variant in declaration order. Backend tests
// iterate it to assert their mapping tables are total.
var Primitives = []PrimitiveType{
	Bool, Char, Byte,
	I8, U8, I16, U16, I32, U32, I64, U64,
	I128, U128,
	Usize, Isize,
	F32, F64,
}

func (p PrimitiveType) String() string {
	switch p {
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Byte:
		return "byte"
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I16:
		return "i16"
	case U16:
		return "u16"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	case I128:
		return "i128"
	case U128:
		return "u128"
	case Usize:
		return "usize"
	case Isize:
		return "isize"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return "unknown"
}

// Is128Bit reports whether the primitive is a 128-bit integer, which
// most target languages cannot represent.
func (p PrimitiveType) Is128Bit() bool {
	return p == I128 || p == U128
}
