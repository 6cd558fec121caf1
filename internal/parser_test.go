package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	tp := &testPrinter{}
	if err := PrintTree(source, tp); err != nil {
		t.Errorf("Unexpected error on:\n%s\n\t%v", source, err)
		return
	}
	if !tp.Equals(tree) {
		t.Errorf(
			"Error on: \n%s\n\tTree should be equal to %s instead of %s",
			source,
			tree,
			tp.printed,
		)
	}
}

func TestParserTree(t *testing.T) {
	// Expressions
	{
		checkTree(t, "1 + 2 * 3;", "(+ 1 (* 2 3))")
		checkTree(t, "(1 + 2) * 3;", "(* (+ 1 2) 3)")
		checkTree(t, "print -!x;", "(print (- (! x)))")
		checkTree(t, "a or b and c;", "(or a (and b c))")
		checkTree(t, "a == b < c;", "(== a (< b c))")
		checkTree(t, `var s = "str";`, `(var s "str")`)
		checkTree(t, "var n;", "(var n)")
		checkTree(t, "nil;", "nil")
		checkTree(t, "print 1.5;", "(print 1.5)")
	}

	// Assignment is right associative
	checkTree(t, "a = b = c;", "(set a (set b c))")
	checkTree(t, "a.b.c = 1;", "(set (. (. a b) c) 1)")

	// Conditional is right associative and binds looser than or
	checkTree(t, "a ? b : c ? d : e;", "(? a b (? c d e))")
	checkTree(t, "a or b ? c : d;", "(? (or a b) c d)")
	checkTree(t, "x = a ? b : c;", "(set x (? a b c))")

	// Comma is left associative and binds loosest
	checkTree(t, "1, 2, 3;", "(, (, 1 2) 3)")
	checkTree(t, "a = 1, b = 2;", "(, (set a 1) (set b 2))")

	// Calls
	checkTree(t, "f(1, 2)(3);", "(call (call f 1 2) 3)")
	checkTree(t, "f((1, 2));", "(call f (, 1 2))")
	checkTree(t, "super.m();", "(call (super m))")

	// Statements
	checkTree(t, "if (a) print 1; else print 2;", "(if (then a (print 1)) (else (print 2)))")
	checkTree(t, "while (a) { print a; break; }", "(while a (scope (print a) (break)))")
	checkTree(t, "fun f(a, b) { return; }", "(fn f (a, b) (return))")
	checkTree(t, "class B < A { init(x) { this.x = x; } }", "(class B < A (fn init (x) (set (. this x) x)))")

	// for desugars into while
	checkTree(t,
		"for (var i = 0; i < 3; i = i + 1) print i;",
		"(scope (var i 0) (while (< i 3) (scope (print i) (set i (+ i 1)))))",
	)
	checkTree(t, "for (;;) break;", "(while true (break))")
}

func parseErrors(t *testing.T, source string) StaticErrors {
	t.Helper()
	err := PrintTree(source, &testPrinter{})
	var static StaticErrors
	require.True(t, errors.As(err, &static), "expected static errors for %q", source)
	return static
}

func TestParserRecovery(t *testing.T) {
	errs := parseErrors(t, `
	print 1 +;
	print 2;
	var = 3;
	fun (a) {}
	print "ok";
	`)
	require.Len(t, errs, 3)

	require.ErrorIs(t, errs[0], errExpectedExpr)
	require.Equal(t, 2, errs[0].Line)
	require.Equal(t, ";", errs[0].Lexeme)

	require.ErrorIs(t, errs[1], errExpectedIdentifier)
	require.Equal(t, 4, errs[1].Line)

	require.ErrorIs(t, errs[2], errExpectedFunctionName)
	require.Equal(t, "[line 5] Error at '(': Expect function name.", errs[2].Error())

	for _, d := range errs {
		require.Equal(t, ParseError, d.Kind)
	}
}

func TestParserErrorsWithoutSync(t *testing.T) {
	// Invalid targets are reported and parsing goes on in place
	errs := parseErrors(t, "1 = 2; (a) = 3; a + b = 4;")
	require.Len(t, errs, 3)
	for _, d := range errs {
		require.ErrorIs(t, d, errInvalidAssignment)
	}

	args := make([]string, 256)
	for i := range args {
		args[i] = fmt.Sprint(i)
	}
	errs = parseErrors(t, "f("+strings.Join(args, ", ")+");")
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errMaxArguments)
	require.Equal(t, "255", errs[0].Lexeme)

	params := make([]string, 256)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	errs = parseErrors(t, "fun f("+strings.Join(params, ", ")+") {}")
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errMaxParameters)
	require.Equal(t, "p255", errs[0].Lexeme)
}

func TestParserErrorAtEnd(t *testing.T) {
	errs := parseErrors(t, "{ print 1;")
	require.Len(t, errs, 1)
	require.True(t, errs[0].AtEnd)
	require.Equal(t, "[line 1] Error at end: Expect '}' after block.", errs[0].Error())
}

func TestParserRecoveryInsideBlock(t *testing.T) {
	// The rest of the enclosing block is skipped with the error
	errs := parseErrors(t, "{ print 1 +; }\nprint 2;")
	require.Len(t, errs, 1)
	require.Equal(t, "[line 1] Error at ';': Expect expression.", errs[0].Error())

	errs = parseErrors(t, "fun f() { var = 1; { print 2; } }\nvar = 3;")
	require.Len(t, errs, 2)
	require.Equal(t, 1, errs[0].Line)
	require.Equal(t, 2, errs[1].Line)

	errs = parseErrors(t, "class A {\n  m() { return 1 +; }\n}\nprint -;")
	require.Len(t, errs, 2)
	require.Equal(t, 2, errs[0].Line)
	require.Equal(t, "[line 4] Error at ';': Expect expression.", errs[1].Error())
}
