package ir

// TypeContext is the shared, read-only set of resolved IR types that
// every backend reads from. It is fully built before any formatting
// call occurs and never mutated afterward, so it is safe to share
// across concurrently running generation tasks.
type TypeContext struct {
	types []NamedType
}

// Resolve returns the definition a TypeID refers to. IDs issued by the
// builder remain valid for the context's lifetime.
func (t *TypeContext) Resolve(id TypeID) *NamedType {
	return &t.types[id]
}

// Len returns the number of registered types.
func (t *TypeContext) Len() int {
	return len(t.types)
}

// ContextBuilder accumulates type definitions and produces an immutable
// TypeContext.
type ContextBuilder struct {
	types []NamedType
	seen  map[string]bool
	log   Logger
}

// NewContextBuilder creates a builder. log may be nil.
func NewContextBuilder(log Logger) *ContextBuilder {
	if log == nil {
		log = NewNopLogger()
	}
	return &ContextBuilder{
		seen: make(map[string]bool),
		log:  log,
	}
}

// Add registers a type definition and returns its stable TypeID.
// Duplicate canonical names are accepted but logged: downstream
// backends cannot distinguish the two spellings.
func (b *ContextBuilder) Add(nt NamedType) TypeID {
	if b.seen[nt.Name] {
		b.log.Warn("duplicate canonical type name", "name", nt.Name)
	}
	b.seen[nt.Name] = true

	b.types = append(b.types, nt)
	id := TypeID(len(b.types) - 1)
	b.log.Info("registered type", "name", nt.Name, "kind", nt.Kind.String(), "id", int(id))
	return id
}

// Build returns the immutable context. The builder must not be reused
// after Build.
func (b *ContextBuilder) Build() *TypeContext {
	return &TypeContext{types: b.types}
}
