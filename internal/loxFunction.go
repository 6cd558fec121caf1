package internal

import "fmt"

type loxCallable interface {
	arity() int
	call(exec *exec, arguments []value) value
}

type loxFunction struct {
	declaration   *fnStmt
	closure       *env
	isInitializer bool
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []value) value {
	environment := newEnv(f.closure)
	for i, param := range f.declaration.params {
		environment.define(param.lexeme, arguments[i])
	}

	result := exec.executeBlock(f.declaration.body, environment)

	// Initializers always hand back the instance, even on a bare return
	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	if result.kind == flowReturn {
		return result.value
	}
	return nil
}

// bind returns a copy of the method whose closure has 'this' set to object
func (f *loxFunction) bind(object *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", object)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []value) value
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []value) value {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}
