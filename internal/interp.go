package internal

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter runs source code against a global environment that is kept
// between runs. It must not be used from more than one goroutine.
type Interpreter struct {
	globals *env
	printer IPrinter
	logger  *logrus.Logger
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger replaces the default logger, which writes warnings to stderr
func WithLogger(l *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.logger = l
	}
}

// NewInterpreter returns an interpreter that prints program output through p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	in := &Interpreter{
		globals: newEnv(nil),
		printer: p,
		logger:  logger,
	}
	defineGlobals(in.globals)

	for _, opt := range opts {
		opt(in)
	}
	return in
}

// parse scans and parses source. Lex errors stop before parsing.
func (in *Interpreter) parse(source string) *interpreterState {
	state := newInterpreterState(source)

	newLexer(state).scan()
	in.logger.WithFields(logrus.Fields{
		"tokens":      len(state.tokens),
		"diagnostics": len(state.errors),
	}).Debug("scanned source")
	if !state.Valid() {
		return state
	}

	newParser(state).parse()
	in.logger.WithFields(logrus.Fields{
		"statements":  len(state.stmts),
		"diagnostics": len(state.errors),
	}).Debug("parsed source")
	return state
}

// Run executes source. The returned error is nil, StaticErrors when the
// program was rejected before running, or a *Diagnostic for a runtime error.
func (in *Interpreter) Run(source string) error {
	state := in.parse(source)
	if !state.Valid() {
		return state.staticErrors()
	}

	newResolver(state, in.globals).resolve()
	in.logger.WithField("diagnostics", len(state.errors)).Debug("resolved source")
	if !state.Valid() {
		return state.staticErrors()
	}

	if diag := newExec(state, in.globals, in.printer).interpret(); diag != nil {
		in.logger.WithFields(logrus.Fields{
			"line":  diag.Line,
			"error": diag.Message(),
		}).Debug("runtime error")
		return diag
	}
	in.logger.WithField("statements", len(state.stmts)).Debug("executed source")
	return nil
}

// Report prints every diagnostic carried by err to stderr through the printer
func (in *Interpreter) Report(err error) {
	if err == nil {
		return
	}
	var static StaticErrors
	if errors.As(err, &static) {
		for _, d := range static {
			in.printer.Fprintln(os.Stderr, d.Error())
		}
		return
	}
	in.printer.Fprintln(os.Stderr, err.Error())
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance and
// reports any error through the printer
func RunSourceWithPrinter(source string, p IPrinter) bool {
	in := NewInterpreter(p)
	if err := in.Run(source); err != nil {
		in.Report(err)
		return false
	}
	return true
}
