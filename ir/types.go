// Package ir holds the language-agnostic intermediate representation
// that every backend reads from: resolved type definitions, methods,
// fields, the closed primitive algebra, and structured documentation.
//
// The IR is built once by the resolution engine, before any backend
// runs, and is immutable afterward.
package ir

// TypeID is an opaque, stable reference into a TypeContext. IDs issued
// by a ContextBuilder remain valid for the built context's lifetime.
type TypeID int

// TypeKind describes what kind of IR definition a NamedType is.
type TypeKind int

const (
	KindOpaque TypeKind = iota
	KindStruct
	KindOutStruct
	KindEnum
)

func (k TypeKind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindStruct:
		return "struct"
	case KindOutStruct:
		return "out-struct"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Attrs carries author-supplied attributes attached to an IR entity.
type Attrs struct {
	// Rename overrides the canonical name before case conversion.
	// Empty means no rename; at most one rename per entity.
	Rename string
}

// ApplyRename returns the rename when present, else name unchanged.
// The result depends only on the entity's attributes, never on prior
// output, so applying it twice yields the same result as once.
func (a Attrs) ApplyRename(name string) string {
	if a.Rename != "" {
		return a.Rename
	}
	return name
}

// EnumVariant is one variant of an IR enum.
type EnumVariant struct {
	Name  string
	Attrs Attrs
	Docs  Docs
}

// Param is a method parameter. Parameters are positional; the binding
// surface exposes no rename hook for them.
type Param struct {
	Name string
}

// Method is an exported method on an IR type.
type Method struct {
	Name   string
	Attrs  Attrs
	Docs   Docs
	Params []Param
}

// NamedType is a resolved IR type definition.
type NamedType struct {
	Name     string
	Attrs    Attrs
	Docs     Docs
	Kind     TypeKind
	Variants []EnumVariant // KindEnum only
	Methods  []Method
}
