package internal

type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

// findMethod walks up the superclass chain, the first match wins
func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (c *loxClass) call(exec *exec, arguments []value) value {
	obj := newInstance(c)
	if init := c.findMethod("init"); init != nil {
		init.bind(obj).call(exec, arguments)
	}
	return obj
}

func (c *loxClass) String() string {
	return c.name
}
