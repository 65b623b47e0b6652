// Package koka is the Koka backend's naming layer: it renders the
// identifiers, type expressions and doc comments the emission layer
// assembles into .kk source files.
package koka

import (
	"fmt"
	"strings"

	"github.com/teranos/bindgen"
	"github.com/teranos/bindgen/cgen"
	"github.com/teranos/bindgen/errors"
	"github.com/teranos/bindgen/ir"
	"github.com/teranos/bindgen/util"
)

// Formatter mediates all formatting for the Koka backend.
//
// All identifiers from the IR should go through here before being
// formatted into the output: this makes it easy to handle reserved
// words or add rename support.
//
// If you find yourself needing an identifier formatted in a context not
// yet available here, please add a new method.
//
// A Formatter is immutable after construction and safe to share across
// concurrently running generation tasks.
type Formatter struct {
	c           *cgen.Formatter
	docsURL     *ir.DocsURLGenerator
	stripPrefix string
}

var _ bindgen.Backend = (*Formatter)(nil)

// invalidMethodNames collide with Koka keywords in call position. They
// are suffixed rather than rejected: the rewrite is total and invisible
// to the binding author.
var invalidMethodNames = []string{"new", "static", "default"}

// invalidFieldNames is kept separate from invalidMethodNames because
// reserved words in field position may diverge from call position,
// even though the two lists currently coincide.
var invalidFieldNames = []string{"new", "static", "default"}

// disallowedCoreTypes would shadow built-in Koka core types. Unlike
// keyword collisions there is no safe automatic rewrite, so hitting one
// aborts the generation run.
var disallowedCoreTypes = []string{"Object", "String"}

// NewFormatter creates a formatter. The cgen formatter is the single
// naming authority for the ABI surface and must be shared with the C
// backend emitting it. stripPrefix may be empty; when set it is removed
// from the start of every resolved type name, in code and in docs.
func NewFormatter(c *cgen.Formatter, docsURL *ir.DocsURLGenerator, stripPrefix string) *Formatter {
	return &Formatter{
		c:           c,
		docsURL:     docsURL,
		stripPrefix: stripPrefix,
	}
}

// Language implements bindgen.Backend.
func (f *Formatter) Language() string {
	return "koka"
}

// FileExtension implements bindgen.Backend.
func (f *Formatter) FileExtension() string {
	return "kk"
}

// FileName returns the generated file name for a module name.
func (f *Formatter) FileName(name string) string {
	return fmt.Sprintf("%s.%s", name, f.FileExtension())
}

// Import renders an import statement. asShowHide optionally carries an
// as/show/hide clause.
func (f *Formatter) Import(path, asShowHide string) string {
	if asShowHide == "" {
		return fmt.Sprintf("import %s;", path)
	}
	return fmt.Sprintf("import %s %s;", path, asShowHide)
}

// LifetimeEdgeArray names the edge array generated for one lifetime of
// a method.
func (f *Formatter) LifetimeEdgeArray(lt ir.Lifetime, env *ir.LifetimeEnv) string {
	return env.FmtLifetime(lt) + "Edges"
}

// Docs renders structured documentation as the body of a Koka comment
// block: normalized markdown, continuation lines prefixed with the
// comment marker, and backtick-quoted occurrences of the strip prefix
// rewritten so prose references match the emitted (stripped) type
// names.
func (f *Formatter) Docs(docs ir.Docs) string {
	out := strings.TrimSpace(docs.ToMarkdown(f.docsURL))
	out = strings.ReplaceAll(out, "\n", "\n// ")
	// markdown normalization leaves trailing spaces before newlines
	out = strings.ReplaceAll(out, " \n", "\n")
	if f.stripPrefix != "" {
		out = strings.ReplaceAll(out, "`"+f.stripPrefix, "`")
	}
	return out
}

// DestructorName returns the destructor symbol for a type, as named by
// the C backend. The spelling is forwarded, never re-derived: both
// backends compile in isolation, so only the shared naming source keeps
// the emitted call and the linked symbol from drifting apart.
func (f *Formatter) DestructorName(id ir.TypeID) string {
	return f.c.DtorName(id)
}

// ABIMethodName returns the linked entry-point symbol for a method, as
// named by the C backend.
func (f *Formatter) ABIMethodName(ty ir.TypeID, method *ir.Method) string {
	return f.c.MethodName(ty, method)
}

// TypeName resolves and formats a named type for use in code. The
// configured prefix is stripped first; a candidate that collides with a
// built-in core type is fatal; the rename rule applies last.
func (f *Formatter) TypeName(id ir.TypeID) (string, error) {
	resolved := f.c.TypeContext().Resolve(id)

	candidate := resolved.Name
	if f.stripPrefix != "" {
		candidate = strings.TrimPrefix(candidate, f.stripPrefix)
	}

	for _, disallowed := range disallowedCoreTypes {
		if candidate == disallowed {
			return "", errors.WithHint(
				errors.Wrapf(errors.ErrDisallowedTypeName,
					"%q is not a valid Koka type name", candidate),
				"rename the type in the binding definition")
		}
	}

	return resolved.Attrs.ApplyRename(candidate), nil
}

// TypeNameDiagnostics resolves a type name for use in diagnostics
// (no rename rules or prefix stripping).
func (f *Formatter) TypeNameDiagnostics(id ir.TypeID) string {
	return f.c.TypeNameDiagnostics(id)
}

// EnumVariant formats an enum variant. Variants are type-level
// constructors in Koka, so they take the capitalized-word spelling.
func (f *Formatter) EnumVariant(variant *ir.EnumVariant) string {
	return util.ToPascalCase(variant.Attrs.ApplyRename(variant.Name))
}

// ParamName formats a field or parameter name. Renames are deliberately
// unsupported here: parameters are positional and the binding surface
// exposes no rename hook for them.
func (f *Formatter) ParamName(ident string) string {
	return util.ToSnakeCase(strings.ToLower(ident))
}

// Nullable wraps a type spelling in Koka's option syntax.
func (f *Formatter) Nullable(ident string) string {
	return ident + "?"
}

// MethodName formats a method name.
func (f *Formatter) MethodName(method *ir.Method) string {
	// TODO(#60): handle the remaining Koka keywords
	name := util.ToSnakeCase(method.Attrs.ApplyRename(method.Name))
	return suffixReserved(name, invalidMethodNames)
}

// ConstructorName formats a named-constructor spelling. An explicit
// override beats the rename rule, which beats the method's own name.
// Constructors keep the snake_case word separators but uppercase the
// first letter, distinguishing them from ordinary methods.
func (f *Formatter) ConstructorName(override string, method *ir.Method) string {
	name := util.UppercaseFirst(util.ToSnakeCase(resolveOverride(override, method)))
	return suffixReserved(name, invalidMethodNames)
}

// AccessorName formats a getter/setter name. Same precedence and case
// convention as constructors, without the uppercasing.
func (f *Formatter) AccessorName(override string, method *ir.Method) string {
	name := util.ToSnakeCase(resolveOverride(override, method))
	return suffixReserved(name, invalidFieldNames)
}

// resolveOverride picks the source string for constructor and accessor
// names: explicit override > rename rule > canonical method name.
func resolveOverride(override string, method *ir.Method) string {
	if override != "" {
		return override
	}
	return method.Attrs.ApplyRename(method.Name)
}

// suffixReserved appends the disambiguation marker when a formatted
// name collides with a reserved word. Total and deterministic, so no
// diagnostic is raised.
func suffixReserved(name string, reserved []string) string {
	for _, r := range reserved {
		if name == r {
			return name + "_"
		}
	}
	return name
}
