package internal

import "fmt"

// tokenType Holds a token kind
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *, ?, :
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar
	tkQuestion
	tkColon

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, break, class, else, false, fun, for, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkBreak
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"break":  tkBreak,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

var tokenNames = map[tokenType]string{
	tkEOF:             "EOF",
	tkLeftParen:       "LEFT_PAREN",
	tkRightParen:      "RIGHT_PAREN",
	tkLeftCurlyBrace:  "LEFT_BRACE",
	tkRightCurlyBrace: "RIGHT_BRACE",
	tkComma:           "COMMA",
	tkDot:             "DOT",
	tkMinus:           "MINUS",
	tkPlus:            "PLUS",
	tkSemicolon:       "SEMICOLON",
	tkSlash:           "SLASH",
	tkStar:            "STAR",
	tkQuestion:        "QUESTION",
	tkColon:           "COLON",
	tkBang:            "BANG",
	tkBangEqual:       "BANG_EQUAL",
	tkEqual:           "EQUAL",
	tkEqualEqual:      "EQUAL_EQUAL",
	tkGreater:         "GREATER",
	tkGreaterEqual:    "GREATER_EQUAL",
	tkLess:            "LESS",
	tkLessEqual:       "LESS_EQUAL",
	tkIdentifier:      "IDENTIFIER",
	tkString:          "STRING",
	tkNumber:          "NUMBER",
	tkAnd:             "AND",
	tkBreak:           "BREAK",
	tkClass:           "CLASS",
	tkElse:            "ELSE",
	tkFalse:           "FALSE",
	tkFun:             "FUN",
	tkFor:             "FOR",
	tkIf:              "IF",
	tkNil:             "NIL",
	tkOr:              "OR",
	tkPrint:           "PRINT",
	tkReturn:          "RETURN",
	tkSuper:           "SUPER",
	tkThis:            "THIS",
	tkTrue:            "TRUE",
	tkVar:             "VAR",
	tkWhile:           "WHILE",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return fmt.Sprintf("%v %s %v", t.token, t.lexeme, t.literal)
}
