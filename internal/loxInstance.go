package internal

import "fmt"

type loxInstance struct {
	class  *loxClass
	fields map[string]value
}

func newInstance(class *loxClass) *loxInstance {
	return &loxInstance{
		class:  class,
		fields: make(map[string]value),
	}
}

// get prefers fields over methods so a field can shadow a method
func (o *loxInstance) get(state *interpreterState, tk *token) value {
	if val, ok := o.fields[tk.lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(tk.lexeme); method != nil {
		return method.bind(o)
	}
	state.runtimeErr(withDetail(errUndefinedProp, "Undefined property '%s'.", tk.lexeme), tk)
	return nil
}

func (o *loxInstance) set(name *token, value value) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return fmt.Sprintf("%s instance", o.class.name)
}
