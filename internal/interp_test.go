package internal

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestInterpreterGlobalsPersist(t *testing.T) {
	tp := &testPrinter{}
	in := NewInterpreter(tp)

	require.NoError(t, in.Run("var a = 1; fun inc() { a = a + 1; }"))
	require.NoError(t, in.Run("inc(); print a;"))
	require.True(t, tp.Equals("2"))

	// A block in a later run still shadows the global
	require.NoError(t, in.Run("{ var a = a + 1; print a; } print a;"))
	require.True(t, tp.Equals("3\n2"))

	// A failed run does not lose what was defined before it
	require.Error(t, in.Run("print missing;"))
	tp.Reset()
	require.NoError(t, in.Run("print a;"))
	require.True(t, tp.Equals("2"))
}

func TestInterpreterRunErrors(t *testing.T) {
	in := NewInterpreter(&testPrinter{})

	err := in.Run("print 1 +;\nvar = 2;")
	var static StaticErrors
	require.True(t, errors.As(err, &static))
	require.Len(t, static, 2)
	require.Equal(t, "[line 1] Error at ';': Expect expression.\n[line 2] Error at '=': Expect variable name.", err.Error())

	err = in.Run("\nprint nope;")
	var diag *Diagnostic
	require.True(t, errors.As(err, &diag))
	require.Equal(t, RuntimeError, diag.Kind)
	require.Equal(t, 2, diag.Line)
	require.ErrorIs(t, err, errUndefinedVar)
	require.Equal(t, "Undefined variable 'nope'.", diag.Message())

	require.NoError(t, in.Run(""))
}

func TestInterpreterReport(t *testing.T) {
	tp := &testPrinter{}
	in := NewInterpreter(tp)

	in.Report(nil)
	require.Empty(t, tp.printed)

	in.Report(in.Run("break;\nreturn;"))
	require.True(t, tp.Equals(
		"[line 1] Error at 'break': Can't use 'break' outside of a loop.\n" +
			"[line 2] Error at 'return': Can't return from top-level code.",
	))

	in.Report(in.Run("-nil;"))
	require.True(t, tp.Equals("Operand must be a number.\n[line 1]"))
}

func TestInterpreterLogsStages(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	in := NewInterpreter(&testPrinter{}, WithLogger(logger))
	require.NoError(t, in.Run("print 1; print 2;"))

	var messages []string
	for _, entry := range hook.AllEntries() {
		require.Equal(t, logrus.DebugLevel, entry.Level)
		messages = append(messages, entry.Message)
	}
	require.Equal(t, []string{"scanned source", "parsed source", "resolved source", "executed source"}, messages)
	require.Equal(t, 2, hook.LastEntry().Data["statements"])

	hook.Reset()
	require.Error(t, in.Run("print x;"))
	require.Equal(t, "runtime error", hook.LastEntry().Message)
	require.Equal(t, 1, hook.LastEntry().Data["line"])

	hook.Reset()
	require.Error(t, in.Run("@"))
	require.Len(t, hook.AllEntries(), 1)
	require.Equal(t, 1, hook.LastEntry().Data["diagnostics"])
}

func TestRunSourceWithPrinter(t *testing.T) {
	tp := &testPrinter{}
	require.True(t, RunSourceWithPrinter("print 1;", tp))
	require.True(t, tp.Equals("1"))

	require.False(t, RunSourceWithPrinter("print;", tp))
	require.True(t, tp.Equals("[line 1] Error at ';': Expect expression."))
}
