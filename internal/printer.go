package internal

import (
	"fmt"
	"strings"
)

// PrintTree parses source and prints one S-expression per statement
func PrintTree(source string, p IPrinter) error {
	state := NewInterpreter(p).parse(source)
	if !state.Valid() {
		return state.staticErrors()
	}
	for _, s := range state.stmts {
		p.Println(acceptStmt[string](s, stringVisitor{}))
	}
	return nil
}

type stringVisitor struct{}

func (v stringVisitor) stmt(s stmt) string {
	return acceptStmt[string](s, v)
}

func (v stringVisitor) expr(e expr) string {
	return acceptExpr[string](e, v)
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) string {
	return v.expr(stmt.expression)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) string {
	return fmt.Sprintf("(print %s)", v.expr(stmt.expression))
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) string {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %s)", stmt.name.lexeme, v.expr(stmt.initializer))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) string {
	out := "(scope"
	for _, s := range stmt.stmts {
		out += " " + v.stmt(s)
	}
	return out + ")"
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) string {
	out := fmt.Sprintf("(if (then %s %s)", v.expr(stmt.condition), v.stmt(stmt.thenBranch))
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" (else %s)", v.stmt(stmt.elseBranch))
	}
	return out + ")"
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) string {
	return fmt.Sprintf("(while %s %s)", v.expr(stmt.condition), v.stmt(stmt.body))
}

func (v stringVisitor) visitBreakStmt(stmt *breakStmt) string {
	return "(break)"
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) string {
	if stmt.value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", v.expr(stmt.value))
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) string {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	out := "(fn " + stmt.name.lexeme + " (" + strings.Join(params, ", ") + ")"
	for _, s := range stmt.body {
		out += " " + v.stmt(s)
	}
	return out + ")"
}

func (v stringVisitor) visitClassStmt(stmt *classStmt) string {
	out := "(class " + stmt.name.lexeme
	if stmt.superclass != nil {
		out += " < " + stmt.superclass.name.lexeme
	}
	for _, method := range stmt.methods {
		out += " " + v.stmt(method)
	}
	return out + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) string {
	return fmt.Sprintf("(set %s %s)", expr.name.lexeme, v.expr(expr.value))
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) string {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) string {
	out := "(call " + v.expr(expr.callee)
	for _, arg := range expr.arguments {
		out += " " + v.expr(arg)
	}
	return out + ")"
}

func (v stringVisitor) visitCommaExpr(expr *commaExpr) string {
	return fmt.Sprintf("(, %s %s)", v.expr(expr.left), v.expr(expr.right))
}

func (v stringVisitor) visitConditionalExpr(expr *conditionalExpr) string {
	return fmt.Sprintf("(? %s %s %s)", v.expr(expr.condition), v.expr(expr.thenBranch), v.expr(expr.elseBranch))
}

func (v stringVisitor) visitGetExpr(expr *getExpr) string {
	return fmt.Sprintf("(. %s %s)", v.expr(expr.object), expr.name.lexeme)
}

func (v stringVisitor) visitSetExpr(expr *setExpr) string {
	return fmt.Sprintf("(set (. %s %s) %s)", v.expr(expr.object), expr.name.lexeme, v.expr(expr.value))
}

func (v stringVisitor) visitSuperExpr(expr *superExpr) string {
	return fmt.Sprintf("(super %s)", expr.method.lexeme)
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) string {
	return v.expr(expr.expression)
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) string {
	if s, isString := expr.value.(loxString); isString {
		return "\"" + string(s) + "\""
	}
	return stringify(expr.value)
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) string {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right))
}

func (v stringVisitor) visitThisExpr(expr *thisExpr) string {
	return "this"
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) string {
	return fmt.Sprintf("(%s %s)", expr.operator.lexeme, v.expr(expr.right))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) string {
	return expr.name.lexeme
}
