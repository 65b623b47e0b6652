package ir

// Lifetime indexes into a method's LifetimeEnv.
type Lifetime int

// LifetimeEnv names the lifetimes in scope for a method. Deep borrow
// semantics live in the lifetime analysis; backends only need the
// names.
type LifetimeEnv struct {
	names []string
}

// NewLifetimeEnv creates an environment with the given lifetime names,
// in declaration order.
func NewLifetimeEnv(names ...string) *LifetimeEnv {
	return &LifetimeEnv{names: names}
}

// FmtLifetime returns the name of a lifetime in this environment.
func (e *LifetimeEnv) FmtLifetime(lt Lifetime) string {
	return e.names[lt]
}
