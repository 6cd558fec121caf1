package internal

import (
	"errors"
	"fmt"
	"strings"
)

// DiagnosticKind tells which pipeline stage produced a diagnostic
type DiagnosticKind int

const (
	// LexError is raised by the scanner
	LexError DiagnosticKind = iota
	// ParseError is raised by the parser
	ParseError
	// ResolveError is raised by the static resolver
	ResolveError
	// RuntimeError is raised while executing
	RuntimeError
)

func (k DiagnosticKind) String() string {
	switch k {
	case LexError:
		return "lex"
	case ParseError:
		return "parse"
	case ResolveError:
		return "resolve"
	case RuntimeError:
		return "runtime"
	}
	return "unknown"
}

// Diagnostic is a single error reported to the caller of Run
type Diagnostic struct {
	Kind DiagnosticKind
	Err  error
	Line int

	// Lexeme of the offending token, empty for lex and runtime errors
	Lexeme string
	// AtEnd is set when the offending token is the end of input
	AtEnd bool
}

// Message returns the human readable text without location
func (d *Diagnostic) Message() string {
	return d.Err.Error()
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case RuntimeError:
		return fmt.Sprintf("%s\n[line %d]", d.Message(), d.Line)
	case LexError:
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message())
	}
	if d.AtEnd {
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message())
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Lexeme, d.Message())
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// StaticErrors holds every lex, parse and resolve diagnostic of a run
type StaticErrors []*Diagnostic

func (s StaticErrors) Error() string {
	msgs := make([]string, len(s))
	for i, d := range s {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// detailedError replaces the text of a sentinel error while still matching it
// with errors.Is
type detailedError struct {
	err error
	msg string
}

func withDetail(err error, format string, a ...interface{}) error {
	return &detailedError{err: err, msg: fmt.Sprintf(format, a...)}
}

func (e *detailedError) Error() string {
	return e.msg
}

func (e *detailedError) Unwrap() error {
	return e.err
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors []*Diagnostic
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make([]*Diagnostic, 0)}
}

func newDiagnostic(kind DiagnosticKind, err error, tk *token) *Diagnostic {
	d := &Diagnostic{Kind: kind, Err: err}
	if tk != nil {
		d.Line = tk.line
		d.Lexeme = tk.lexeme
		d.AtEnd = tk.token == tkEOF
	}
	return d
}

func (s *interpreterState) setError(kind DiagnosticKind, err error, tk *token) {
	s.errors = append(s.errors, newDiagnostic(kind, err, tk))
}

func (s *interpreterState) setLexError(err error, line int) {
	s.errors = append(s.errors, &Diagnostic{Kind: LexError, Err: err, Line: line})
}

// fatalError records a parse error and unwinds to the statement boundary
func (s *interpreterState) fatalError(err error, tk *token) {
	d := newDiagnostic(ParseError, err, tk)
	s.errors = append(s.errors, d)
	panic(d)
}

// runtimeErr halts execution, recovered by exec.interpret
func (s *interpreterState) runtimeErr(err error, tk *token) {
	d := newDiagnostic(RuntimeError, err, tk)
	d.Lexeme = ""
	d.AtEnd = false
	panic(d)
}

// Valid returns true if no static error was found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

func (s *interpreterState) staticErrors() StaticErrors {
	return StaticErrors(s.errors)
}

// Lexer errors
var errIllegalChar = errors.New("Unexpected character.")
var errUnclosedString = errors.New("Unterminated string.")
var errUnclosedComment = errors.New("Unterminated block comment.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedArgs = errors.New("Expect ')' after arguments.")
var errUnclosedParams = errors.New("Expect ')' after parameters.")
var errExpectedSemicolon = errors.New("Expect ';'.")
var errExpectedOpeningCurlyBrace = errors.New("Expect '{'.")
var errExpectedClosingCurlyBrace = errors.New("Expect '}'.")
var errExpectedOpeningParen = errors.New("Expect '('.")
var errExpectedColon = errors.New("Expect ':' after then branch of conditional expression.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedFunctionParam = errors.New("Expect parameter name.")
var errExpectedDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")

// Resolver errors
var errReadInInitializer = errors.New("Can't read local variable in its own initializer.")
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errInheritFromSelf = errors.New("A class can't inherit from itself.")
var errBreakOutsideLoop = errors.New("Can't use 'break' outside of a loop.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUndefinedProp = errors.New("Undefined property")
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errOnlyNumbersOrStrings = errors.New("Operands must be numbers or strings.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments.")
var errOnlyInstanceProps = errors.New("Only instances have properties.")
var errOnlyInstanceFields = errors.New("Only instances have fields.")
var errExpectedClass = errors.New("Superclass must be a class.")
var errStackOverflow = errors.New("Stack overflow.")
var errUndefinedOp = errors.New("Undefined operator.")

