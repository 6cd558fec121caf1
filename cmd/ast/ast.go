package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

//go:generate go run . Expr ../../internal/expr.go
//go:generate go run . Stmt ../../internal/stmt.go

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: keyword *token, expression expr",
		"Var: name *token, initializer expr",
		"Block: stmts []stmt",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"While: keyword *token, condition expr, body stmt",
		"Break: keyword *token",
		"Return: keyword *token, value expr",
		"Fn: name *token, params []*token, body []stmt",
		"Class: name *token, superclass *variableExpr, methods []*fnStmt",
	},
	"Expr": {
		"Assign: name *token, value expr, binding",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Comma: left expr, right expr",
		"Conditional: condition expr, question *token, thenBranch expr, elseBranch expr",
		"Get: object expr, name *token",
		"Set: object expr, name *token, value expr",
		"Super: keyword *token, method *token, binding",
		"Grouping: expression expr",
		"Literal: value value",
		"Logical: left expr, operator *token, right expr",
		"This: keyword *token, binding",
		"Unary: operator *token, right expr",
		"Variable: name *token, binding",
	},
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: ast Expr|Stmt /path/to/output.go")
		os.Exit(64)
	}
	types, ok := nodes[os.Args[1]]
	if !ok {
		log.Fatalf("unknown node kind %q", os.Args[1])
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		log.Fatal(err)
	}
	if err := ioutil.WriteFile(os.Args[2], out, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"
	out += "import \"fmt\"\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is implemented by every %s node\n", base, base)
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor[T any] interface {\n", base)
	for _, t := range types {
		name := nodeName(t)
		out += "\tvisit" + name + baseName + "(" + base + " *" + structName(name, baseName) + ") T\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start dispatch
	out += fmt.Sprintf("func accept%s[T any](node %s, visitor %sVisitor[T]) T {\n", baseName, base, base)
	out += "\tswitch node := node.(type) {\n"
	for _, t := range types {
		name := nodeName(t)
		out += "\tcase *" + structName(name, baseName) + ":\n"
		out += "\t\treturn visitor.visit" + name + baseName + "(node)\n"
	}
	out += "\t}\n"
	out += fmt.Sprintf("\tpanic(fmt.Sprintf(\"unexpected %s node %%T\", node))\n", base)
	out += "}\n\n"
	// End dispatch

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		out += generateType(baseName, nodeName(t), strings.TrimSpace(typeDef[1]))
	}
	// End structs

	return out
}

func nodeName(t string) string {
	return strings.TrimSpace(strings.Split(t, ":")[0])
}

func structName(name, baseName string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := structName(name, baseName)
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Method Definition

	return out
}
