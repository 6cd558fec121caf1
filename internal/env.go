package internal

// binding is the resolution slot of a node that refers to a variable by
// name. The resolver writes it, the executor reads it.
type binding struct {
	resolved bool
	global   bool
	depth    int
}

func (b *binding) resolveLocal(depth int) {
	b.resolved = true
	b.global = false
	b.depth = depth
}

func (b *binding) resolveGlobal() {
	b.resolved = true
	b.global = true
	b.depth = 0
}

// local returns the scope distance, ok is false for globals
func (b *binding) local() (depth int, ok bool) {
	return b.depth, b.resolved && !b.global
}

type env struct {
	enclosing *env
	values    map[string]value
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]value),
	}
}

func (e *env) get(state *interpreterState, name *token) value {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	state.runtimeErr(withDetail(errUndefinedVar, "Undefined variable '%s'.", name.lexeme), name)
	return nil
}

func (e *env) has(name string) bool {
	_, ok := e.values[name]
	return ok
}

func (e *env) define(name string, value value) {
	e.values[name] = value
}

func (e *env) assign(state *interpreterState, name *token, value value) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	state.runtimeErr(withDetail(errUndefinedVar, "Undefined variable '%s'.", name.lexeme), name)
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

func (e *env) getAt(distance int, name string) value {
	return e.ancestor(distance).values[name]
}

func (e *env) assignAt(distance int, name string, value value) {
	e.ancestor(distance).values[name] = value
}
