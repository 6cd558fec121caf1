package internal

// maxCallDepth bounds nested calls so runaway recursion becomes a runtime
// error instead of exhausting the Go stack
const maxCallDepth = 1024

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	callDepth int
	printer   IPrinter
}

func newExec(state *interpreterState, globals *env, printer IPrinter) *exec {
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
		printer: printer,
	}
}

// interpret runs every statement of the current state. A runtime error stops
// execution and is returned, output printed before it stays printed.
func (e *exec) interpret() (diag *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			d, ok := r.(*Diagnostic)
			if !ok {
				panic(r)
			}
			diag = d
			e.env = e.globals
			e.callDepth = 0
		}
	}()
	for _, s := range e.state.stmts {
		e.execute(s)
	}
	return nil
}

func (e *exec) execute(s stmt) flow {
	return acceptStmt[flow](s, e)
}

func (e *exec) evaluate(ex expr) value {
	return acceptExpr[value](ex, e)
}

func (e *exec) visitExprStmt(stmt *exprStmt) flow {
	e.evaluate(stmt.expression)
	return normalFlow
}

func (e *exec) visitPrintStmt(stmt *printStmt) flow {
	e.printer.Println(stringify(e.evaluate(stmt.expression)))
	return normalFlow
}

func (e *exec) visitVarStmt(stmt *varStmt) flow {
	var val value
	if stmt.initializer != nil {
		val = e.evaluate(stmt.initializer)
	}
	e.env.define(stmt.name.lexeme, val)
	return normalFlow
}

func (e *exec) visitBlockStmt(stmt *blockStmt) flow {
	return e.executeBlock(stmt.stmts, newEnv(e.env))
}

// executeBlock runs stmts in env and stops at the first outcome that is not
// normal, handing it to the caller
func (e *exec) executeBlock(stmts []stmt, env *env) flow {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if result := e.execute(s); !result.isNormal() {
			return result
		}
	}
	return normalFlow
}

func (e *exec) visitIfStmt(stmt *ifStmt) flow {
	if truthy(e.evaluate(stmt.condition)) {
		return e.execute(stmt.thenBranch)
	}
	if stmt.elseBranch != nil {
		return e.execute(stmt.elseBranch)
	}
	return normalFlow
}

func (e *exec) visitWhileStmt(stmt *whileStmt) flow {
	for truthy(e.evaluate(stmt.condition)) {
		result := e.execute(stmt.body)
		switch result.kind {
		case flowBreak:
			return normalFlow
		case flowReturn:
			return result
		}
	}
	return normalFlow
}

func (e *exec) visitBreakStmt(stmt *breakStmt) flow {
	return breakFlow()
}

func (e *exec) visitReturnStmt(stmt *returnStmt) flow {
	var val value
	if stmt.value != nil {
		val = e.evaluate(stmt.value)
	}
	return returnFlow(val)
}

func (e *exec) visitFnStmt(stmt *fnStmt) flow {
	e.env.define(stmt.name.lexeme, &loxFunction{
		declaration:   stmt,
		closure:       e.env,
		isInitializer: false,
	})
	return normalFlow
}

func (e *exec) visitClassStmt(stmt *classStmt) flow {
	var superclass *loxClass
	if stmt.superclass != nil {
		class, ok := e.evaluate(stmt.superclass).(*loxClass)
		if !ok {
			e.state.runtimeErr(errExpectedClass, stmt.superclass.name)
		}
		superclass = class
	}

	e.env.define(stmt.name.lexeme, nil)

	if superclass != nil {
		e.env = newEnv(e.env)
		e.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	class := &loxClass{
		name:       stmt.name.lexeme,
		superclass: superclass,
		methods:    methods,
	}

	if superclass != nil {
		e.env = e.env.enclosing
	}

	e.env.assign(e.state, stmt.name, class)
	return normalFlow
}

func (e *exec) lookUpVariable(name *token, b binding) value {
	if depth, ok := b.local(); ok {
		return e.env.getAt(depth, name.lexeme)
	}
	return e.globals.get(e.state, name)
}

func (e *exec) visitAssignExpr(expr *assignExpr) value {
	val := e.evaluate(expr.value)
	if depth, ok := expr.binding.local(); ok {
		e.env.assignAt(depth, expr.name.lexeme, val)
	} else {
		e.globals.assign(e.state, expr.name, val)
	}
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) value {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)

	apply, ok := binaryOperations[expr.operator.token]
	if !ok {
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	result, err := apply(left, right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	return result
}

func (e *exec) visitCallExpr(expr *callExpr) value {
	callee := e.evaluate(expr.callee)
	arguments := make([]value, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = e.evaluate(expr.arguments[i])
	}

	fn, isFn := callee.(loxCallable)
	if !isFn {
		e.state.runtimeErr(errOnlyFunction, expr.paren)
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErr(withDetail(errInvalidNumberArguments,
			"Expected %d arguments but got %d.", fn.arity(), len(arguments)), expr.paren)
	}

	if e.callDepth >= maxCallDepth {
		e.state.runtimeErr(errStackOverflow, expr.paren)
	}
	e.callDepth++
	defer func() {
		e.callDepth--
	}()

	return fn.call(e, arguments)
}

func (e *exec) visitCommaExpr(expr *commaExpr) value {
	e.evaluate(expr.left)
	return e.evaluate(expr.right)
}

func (e *exec) visitConditionalExpr(expr *conditionalExpr) value {
	if truthy(e.evaluate(expr.condition)) {
		return e.evaluate(expr.thenBranch)
	}
	return e.evaluate(expr.elseBranch)
}

func (e *exec) visitGetExpr(expr *getExpr) value {
	object, ok := e.evaluate(expr.object).(*loxInstance)
	if !ok {
		e.state.runtimeErr(errOnlyInstanceProps, expr.name)
	}
	return object.get(e.state, expr.name)
}

func (e *exec) visitSetExpr(expr *setExpr) value {
	object, ok := e.evaluate(expr.object).(*loxInstance)
	if !ok {
		e.state.runtimeErr(errOnlyInstanceFields, expr.name)
	}
	val := e.evaluate(expr.value)
	object.set(expr.name, val)
	return val
}

// visitSuperExpr looks the method up starting at the superclass and binds it
// to the current 'this', which lives one scope inside 'super'
func (e *exec) visitSuperExpr(expr *superExpr) value {
	depth, _ := expr.binding.local()
	superclass := e.env.getAt(depth, "super").(*loxClass)
	object := e.env.getAt(depth-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.method.lexeme)
	if method == nil {
		e.state.runtimeErr(withDetail(errUndefinedProp, "Undefined property '%s'.", expr.method.lexeme), expr.method)
	}
	return method.bind(object)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) value {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) value {
	return expr.value
}

// visitLogicalExpr returns the operand that decided the result
func (e *exec) visitLogicalExpr(expr *logicalExpr) value {
	left := e.evaluate(expr.left)

	switch expr.operator.token {
	case tkOr:
		if truthy(left) {
			return left
		}
	case tkAnd:
		if !truthy(left) {
			return left
		}
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}

	return e.evaluate(expr.right)
}

func (e *exec) visitThisExpr(expr *thisExpr) value {
	return e.lookUpVariable(expr.keyword, expr.binding)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) value {
	right := e.evaluate(expr.right)
	switch expr.operator.token {
	case tkBang:
		return loxBool(!truthy(right))
	case tkMinus:
		result, err := negate(right)
		if err != nil {
			e.state.runtimeErr(err, expr.operator)
		}
		return result
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) value {
	return e.lookUpVariable(expr.name, expr.binding)
}
