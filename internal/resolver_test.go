package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string, globals *env) *interpreterState {
	t.Helper()
	state := scanSource(source)
	require.True(t, state.Valid())
	newParser(state).parse()
	require.True(t, state.Valid(), "parse errors: %v", state.staticErrors())
	newResolver(state, globals).resolve()
	return state
}

func requireLocal(t *testing.T, b binding, depth int) {
	t.Helper()
	d, ok := b.local()
	require.True(t, ok, "expected a local binding")
	require.Equal(t, depth, d)
}

func requireGlobal(t *testing.T, b binding) {
	t.Helper()
	require.True(t, b.resolved)
	require.True(t, b.global)
}

func TestResolverDistances(t *testing.T) {
	state := resolveSource(t, `
	var g = 1;
	{
		var a = 1;
		{
			var b = a + g;
		}
	}
	`, nil)
	require.True(t, state.Valid())

	outer := state.stmts[1].(*blockStmt)
	inner := outer.stmts[1].(*blockStmt)
	sum := inner.stmts[0].(*varStmt).initializer.(*binaryExpr)
	requireLocal(t, sum.left.(*variableExpr).binding, 1)
	requireGlobal(t, sum.right.(*variableExpr).binding)
}

func TestResolverClosures(t *testing.T) {
	state := resolveSource(t, `
	fun f() {
		var x;
		fun g() {
			x = 1;
		}
	}
	`, nil)
	require.True(t, state.Valid())

	f := state.stmts[0].(*fnStmt)
	g := f.body[1].(*fnStmt)
	assign := g.body[0].(*exprStmt).expression.(*assignExpr)
	requireLocal(t, assign.binding, 1)
}

func TestResolverThisAndSuper(t *testing.T) {
	state := resolveSource(t, `
	class A {}
	class B < A {
		m() {
			super.m();
			return this;
		}
	}
	`, nil)
	require.True(t, state.Valid())

	m := state.stmts[1].(*classStmt).methods[0]
	call := m.body[0].(*exprStmt).expression.(*callExpr)
	requireLocal(t, call.callee.(*superExpr).binding, 2)
	this := m.body[1].(*returnStmt).value.(*thisExpr)
	requireLocal(t, this.binding, 1)
}

func TestResolverShadowingInitializer(t *testing.T) {
	// The inner initializer reads the outer variable
	state := resolveSource(t, "var a = 1; { var a = a + 1; }", nil)
	require.True(t, state.Valid())
	block := state.stmts[1].(*blockStmt)
	read := block.stmts[0].(*varStmt).initializer.(*binaryExpr).left.(*variableExpr)
	requireGlobal(t, read.binding)

	state = resolveSource(t, "{ var a = 1; { var a = a; } }", nil)
	require.True(t, state.Valid())
	inner := state.stmts[0].(*blockStmt).stmts[1].(*blockStmt)
	requireLocal(t, inner.stmts[0].(*varStmt).initializer.(*variableExpr).binding, 1)

	// Globals defined by an earlier run count as known
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))
	state = resolveSource(t, "{ var a = a; }", globals)
	require.True(t, state.Valid())

	state = resolveSource(t, "{ var a = a; }", nil)
	require.Len(t, state.errors, 1)
	require.ErrorIs(t, state.errors[0], errReadInInitializer)
	require.Equal(t, ResolveError, state.errors[0].Kind)
}

func TestResolverGlobalRedeclaration(t *testing.T) {
	state := resolveSource(t, "var a = 1; var a = a + 1;", nil)
	require.True(t, state.Valid())
}

func TestResolverCollectsErrors(t *testing.T) {
	state := resolveSource(t, `
	break;
	return;
	class A < A {
		init() { return 1; }
	}
	`, nil)
	errs := state.staticErrors()
	require.Len(t, errs, 4)
	require.ErrorIs(t, errs[0], errBreakOutsideLoop)
	require.ErrorIs(t, errs[1], errTopLevelReturn)
	require.ErrorIs(t, errs[2], errInheritFromSelf)
	require.ErrorIs(t, errs[3], errInitializerReturn)
	require.Equal(t, 5, errs[3].Line)

	state = resolveSource(t, "fun f() { print this; }", nil)
	require.Len(t, state.errors, 1)
	require.ErrorIs(t, state.errors[0], errThisOutsideClass)
}

func TestResolverBreakInsideLoop(t *testing.T) {
	state := resolveSource(t, `
	while (true) {
		if (true) break;
		{ break; }
	}
	for (;;) break;
	`, nil)
	require.True(t, state.Valid())
}
