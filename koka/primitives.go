package koka

import (
	"fmt"
	"strings"

	"github.com/teranos/bindgen/errors"
	"github.com/teranos/bindgen/ir"
)

// The five primitive-keyed tables below (native/cast, list, view,
// slice) are projections of the same closed algebra and must be
// reviewed together whenever ir.Primitives changes. 128-bit integers
// are unsupported in every one of them and fail with
// errors.ErrUnsupportedPrimitive rather than truncating.

// unsupported returns the fatal-tier error for a primitive Koka cannot
// represent.
func unsupported(prim ir.PrimitiveType) error {
	return errors.Wrapf(errors.ErrUnsupportedPrimitive,
		"%s has no Koka representation", prim)
}

// StringType returns Koka's string type spelling.
func (f *Formatter) StringType() string {
	return "string"
}

// UTF8Primitive returns the code-unit spelling of a UTF-8 string slice.
func (f *Formatter) UTF8Primitive() string {
	return "int8"
}

// UTF16Primitive returns the code-unit spelling of a UTF-16 string
// slice.
func (f *Formatter) UTF16Primitive() string {
	return "int16"
}

// Void returns the unit type spelling.
func (f *Formatter) Void() string {
	return "()"
}

// FFIVoid returns the unit spelling at the FFI boundary.
func (f *Formatter) FFIVoid() string {
	return "()"
}

// Pointer wraps a target spelling in Koka's C pointer syntax.
func (f *Formatter) Pointer(target string) string {
	return fmt.Sprintf("c-pointer<%s>", target)
}

// Usize returns the pointer-sized integer spelling. Always
// representable, so no error path.
func (f *Formatter) Usize(cast bool) string {
	s, _ := f.PrimitiveAsFFI(ir.Usize, cast)
	return s
}

// EnumAsFFI returns the spelling enums take at the FFI boundary (their
// 32-bit discriminant).
func (f *Formatter) EnumAsFFI(cast bool) string {
	s, _ := f.PrimitiveAsFFI(ir.I32, cast)
	return s
}

// TypeAsIdent sanitizes a type spelling into a fragment usable inside a
// generated identifier by dropping characters illegal in identifiers.
// An empty spelling stands for unit.
func (f *Formatter) TypeAsIdent(ty string) string {
	if ty == "" {
		ty = "()"
	}
	return strings.ReplaceAll(ty, "-", "")
}

// PrimitiveAsFFI maps a primitive to its Koka spelling. With cast set
// the value is crossing into a context that only distinguishes broad
// classes (Koka's numeric tower collapses fixed-width integers into
// int), so the table is intentionally coarser than the native one.
func (f *Formatter) PrimitiveAsFFI(prim ir.PrimitiveType, cast bool) (string, error) {
	if cast {
		switch prim {
		case ir.Bool:
			return "bool", nil
		case ir.Char:
			return "char", nil
		case ir.I8, ir.U8, ir.I16, ir.U16, ir.I32, ir.U32, ir.I64, ir.U64, ir.Usize, ir.Isize:
			return "int", nil
		case ir.Byte:
			return "int8", nil
		case ir.F32, ir.F64:
			return "float64", nil
		case ir.I128, ir.U128:
			return "", unsupported(prim)
		}
		return "", errors.AssertionFailedf("unhandled primitive %v", int(prim))
	}

	switch prim {
	case ir.Bool:
		return "bool", nil
	case ir.Char:
		return "char", nil
	case ir.I8, ir.U8, ir.Byte:
		return "int8", nil
	case ir.I16, ir.U16:
		return "int16", nil
	case ir.I32, ir.U32:
		return "int32", nil
	case ir.I64, ir.U64:
		return "int64", nil
	case ir.Isize:
		return "intptr_t", nil
	case ir.Usize:
		return "ssize_t", nil
	case ir.F32:
		return "float32", nil
	case ir.F64:
		return "float64", nil
	case ir.I128, ir.U128:
		return "", unsupported(prim)
	}
	return "", errors.AssertionFailedf("unhandled primitive %v", int(prim))
}

// PrimitiveListType maps a primitive element to the list spelling used
// in list/array-valued contexts. Byte maps to the raw bytes type rather
// than list<int8>.
func (f *Formatter) PrimitiveListType(prim ir.PrimitiveType) (string, error) {
	switch prim {
	case ir.Bool:
		return "list<bool>", nil
	case ir.Char:
		return "list<char>", nil
	case ir.Byte:
		return "bytes", nil
	case ir.I8, ir.U8, ir.I16, ir.U16, ir.I32, ir.U32, ir.I64, ir.U64, ir.Usize, ir.Isize:
		return "list<int>", nil
	case ir.F32, ir.F64:
		return "list<float64>", nil
	case ir.I128, ir.U128:
		return "", unsupported(prim)
	}
	return "", errors.AssertionFailedf("unhandled primitive %v", int(prim))
}

// PrimitiveListView maps a primitive element to the accessor suffix for
// reading a typed view over an untyped buffer. Byte needs no view
// indirection and maps to the empty accessor.
func (f *Formatter) PrimitiveListView(prim ir.PrimitiveType) (string, error) {
	switch prim {
	case ir.Bool:
		return ".boolView", nil
	case ir.Char:
		return ".uint32View", nil
	case ir.Byte:
		return "", nil
	case ir.I8:
		return ".int8View", nil
	case ir.U8:
		return ".uint8View", nil
	case ir.I16:
		return ".int16View", nil
	case ir.U16:
		return ".uint16View", nil
	case ir.I32:
		return ".int32View", nil
	case ir.U32:
		return ".uint32View", nil
	case ir.I64:
		return ".int64View", nil
	case ir.U64:
		return ".uint64View", nil
	case ir.Usize:
		return ".usizeView", nil
	case ir.Isize:
		return ".isizeView", nil
	case ir.F32:
		return ".float32View", nil
	case ir.F64:
		return ".float64View", nil
	case ir.I128, ir.U128:
		return "", unsupported(prim)
	}
	return "", errors.AssertionFailedf("unhandled primitive %v", int(prim))
}

// SliceType maps a primitive element to the fixed-layout slice struct
// used at the FFI boundary.
func (f *Formatter) SliceType(prim ir.PrimitiveType) (string, error) {
	switch prim {
	case ir.Bool:
		return "_SliceBool", nil
	case ir.Char:
		return "_SliceRune", nil
	case ir.I8:
		return "_SliceInt8", nil
	case ir.U8, ir.Byte:
		return "_SliceUint8", nil
	case ir.I16:
		return "_SliceInt16", nil
	case ir.U16:
		return "_SliceUint16", nil
	case ir.I32:
		return "_SliceInt32", nil
	case ir.U32:
		return "_SliceUint32", nil
	case ir.I64:
		return "_SliceInt64", nil
	case ir.U64:
		return "_SliceUint64", nil
	case ir.Usize:
		return "_SliceUsize", nil
	case ir.Isize:
		return "_SliceIsize", nil
	case ir.F32:
		return "_SliceFloat", nil
	case ir.F64:
		return "_SliceDouble", nil
	case ir.I128, ir.U128:
		return "", unsupported(prim)
	}
	return "", errors.AssertionFailedf("unhandled primitive %v", int(prim))
}

// UTF8SliceType returns the slice struct for UTF-8 string data.
func (f *Formatter) UTF8SliceType() string {
	return "_SliceUtf8"
}

// UTF16SliceType returns the slice struct for UTF-16 string data.
func (f *Formatter) UTF16SliceType() string {
	return "_SliceUtf16"
}
