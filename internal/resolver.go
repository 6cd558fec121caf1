package internal

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// resolver walks the tree once before execution and writes the scope
// distance of every local variable reference into its node
type resolver struct {
	state *interpreterState

	// scopes maps names to whether their initializer has been resolved
	scopes  []map[string]bool
	globals map[string]bool

	currentFunction functionType
	currentClass    classType
	loopDepth       int
}

func newResolver(state *interpreterState, globals *env) *resolver {
	r := &resolver{
		state:   state,
		scopes:  make([]map[string]bool, 0),
		globals: make(map[string]bool),
	}
	if globals != nil {
		for name := range globals.values {
			r.globals[name] = true
		}
	}
	return r
}

func (r *resolver) resolve() {
	for _, s := range r.state.stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	acceptStmt[any](s, r)
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveExpr(e expr) {
	acceptExpr[any](e, r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		// Re-declaring a global keeps the previous one readable
		if _, ok := r.globals[name.lexeme]; !ok {
			r.globals[name.lexeme] = false
		}
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.lexeme]; ok {
		r.state.setError(ResolveError, errAlreadyDeclared, name)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		r.globals[name.lexeme] = true
		return
	}
	r.peekScope()[name.lexeme] = true
}

// resolveRead binds a read of name to the innermost ready declaration.
// Declarations still inside their own initializer are skipped.
func (r *resolver) resolveRead(b *binding, name *token) {
	skipped := false
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if ready, ok := r.scopes[i][name.lexeme]; ok {
			if ready {
				b.resolveLocal(len(r.scopes) - 1 - i)
				return
			}
			skipped = true
		}
	}

	ready, known := r.globals[name.lexeme]
	if (known && !ready) || (!known && skipped) {
		r.state.setError(ResolveError, errReadInInitializer, name)
	}
	b.resolveGlobal()
}

// resolveWrite binds an assignment to the innermost declaration, ready or not
func (r *resolver) resolveWrite(b *binding, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			b.resolveLocal(len(r.scopes) - 1 - i)
			return
		}
	}
	b.resolveGlobal()
}

func (r *resolver) resolveFunction(fn *fnStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	enclosingLoopDepth := r.loopDepth
	r.currentFunction = kind
	r.loopDepth = 0
	defer func() {
		r.currentFunction = enclosingFunction
		r.loopDepth = enclosingLoopDepth
	}()

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
	r.endScope()
}

func (r *resolver) visitExprStmt(stmt *exprStmt) any {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitPrintStmt(stmt *printStmt) any {
	r.resolveExpr(stmt.expression)
	return nil
}

func (r *resolver) visitVarStmt(stmt *varStmt) any {
	r.declare(stmt.name)
	if stmt.initializer != nil {
		r.resolveExpr(stmt.initializer)
	}
	r.define(stmt.name)
	return nil
}

func (r *resolver) visitBlockStmt(stmt *blockStmt) any {
	r.beginScope()
	r.resolveStmts(stmt.stmts)
	r.endScope()
	return nil
}

func (r *resolver) visitIfStmt(stmt *ifStmt) any {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		r.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (r *resolver) visitWhileStmt(stmt *whileStmt) any {
	r.resolveExpr(stmt.condition)
	r.loopDepth++
	r.resolveStmt(stmt.body)
	r.loopDepth--
	return nil
}

func (r *resolver) visitBreakStmt(stmt *breakStmt) any {
	if r.loopDepth == 0 {
		r.state.setError(ResolveError, errBreakOutsideLoop, stmt.keyword)
	}
	return nil
}

func (r *resolver) visitReturnStmt(stmt *returnStmt) any {
	if r.currentFunction == fnNone {
		r.state.setError(ResolveError, errTopLevelReturn, stmt.keyword)
	}
	if stmt.value != nil {
		if r.currentFunction == fnInitializer {
			r.state.setError(ResolveError, errInitializerReturn, stmt.keyword)
		}
		r.resolveExpr(stmt.value)
	}
	return nil
}

func (r *resolver) visitFnStmt(stmt *fnStmt) any {
	// Defined before the body so the function can call itself
	r.declare(stmt.name)
	r.define(stmt.name)
	r.resolveFunction(stmt, fnFunction)
	return nil
}

func (r *resolver) visitClassStmt(stmt *classStmt) any {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(stmt.name)
	r.define(stmt.name)

	if stmt.superclass != nil {
		if stmt.superclass.name.lexeme == stmt.name.lexeme {
			r.state.setError(ResolveError, errInheritFromSelf, stmt.superclass.name)
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range stmt.methods {
		kind := fnMethod
		if method.name.lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if stmt.superclass != nil {
		r.endScope()
	}
	return nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) any {
	r.resolveExpr(expr.value)
	r.resolveWrite(&expr.binding, expr.name)
	return nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) any {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitCallExpr(expr *callExpr) any {
	r.resolveExpr(expr.callee)
	for _, arg := range expr.arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *resolver) visitCommaExpr(expr *commaExpr) any {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitConditionalExpr(expr *conditionalExpr) any {
	r.resolveExpr(expr.condition)
	r.resolveExpr(expr.thenBranch)
	r.resolveExpr(expr.elseBranch)
	return nil
}

func (r *resolver) visitGetExpr(expr *getExpr) any {
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitSetExpr(expr *setExpr) any {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.object)
	return nil
}

func (r *resolver) visitSuperExpr(expr *superExpr) any {
	switch r.currentClass {
	case classNone:
		r.state.setError(ResolveError, errSuperOutsideClass, expr.keyword)
	case classClass:
		r.state.setError(ResolveError, errSuperWithoutSuperclass, expr.keyword)
	}
	r.resolveRead(&expr.binding, expr.keyword)
	return nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) any {
	r.resolveExpr(expr.expression)
	return nil
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) any {
	return nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) any {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitThisExpr(expr *thisExpr) any {
	if r.currentClass == classNone {
		r.state.setError(ResolveError, errThisOutsideClass, expr.keyword)
		return nil
	}
	r.resolveRead(&expr.binding, expr.keyword)
	return nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) any {
	r.resolveExpr(expr.right)
	return nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) any {
	r.resolveRead(&expr.binding, expr.name)
	return nil
}
