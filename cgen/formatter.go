// Package cgen is the C backend: it owns the raw ABI surface and the
// exact symbol names every other backend links against.
package cgen

import (
	"fmt"

	"github.com/teranos/bindgen"
	"github.com/teranos/bindgen/ir"
)

// Formatter mediates all naming for the C ABI surface.
//
// Other backends delegate destructor and low-level entry-point naming
// here instead of re-deriving it: whatever this formatter produces is
// the symbol that actually ends up in the compiled library, and a
// divergence would surface only at link time, not at generation time.
type Formatter struct {
	tcx *ir.TypeContext
}

var _ bindgen.Backend = (*Formatter)(nil)

// NewFormatter creates a formatter over a fully built type context.
func NewFormatter(tcx *ir.TypeContext) *Formatter {
	return &Formatter{tcx: tcx}
}

// Language implements bindgen.Backend.
func (f *Formatter) Language() string {
	return "c"
}

// FileExtension implements bindgen.Backend.
func (f *Formatter) FileExtension() string {
	return "h"
}

// TypeContext returns the shared type context this formatter reads
// from.
func (f *Formatter) TypeContext() *ir.TypeContext {
	return f.tcx
}

// TypeName resolves and formats a type name for the C surface. The C
// surface keeps the full canonical name; any configured prefix is the
// namespacing, not noise, at this layer.
func (f *Formatter) TypeName(id ir.TypeID) string {
	resolved := f.tcx.Resolve(id)
	return resolved.Attrs.ApplyRename(resolved.Name)
}

// TypeNameDiagnostics resolves a type name for error messages: the
// canonical IR name with no rename processing, so diagnostics speak the
// binding author's vocabulary rather than the emitted spelling.
func (f *Formatter) TypeNameDiagnostics(id ir.TypeID) string {
	return f.tcx.Resolve(id).Name
}

// MethodName returns the linked symbol name of a method's low-level
// entry point.
func (f *Formatter) MethodName(ty ir.TypeID, method *ir.Method) string {
	return fmt.Sprintf("%s_%s", f.TypeName(ty), method.Attrs.ApplyRename(method.Name))
}

// DtorName returns the linked symbol name of a type's destructor.
func (f *Formatter) DtorName(id ir.TypeID) string {
	return f.TypeName(id) + "_destroy"
}
