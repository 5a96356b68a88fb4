package lexer

import "fmt"

// TokenType is the kind of a lexical token.
type TokenType int

const (
	EOF TokenType = iota

	// Punctuation
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Semicolon

	// Operators
	Minus
	Plus
	Slash
	Star
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals
	Identifier
	String
	Number

	// Keywords
	And
	Class
	Else
	False
	Fn
	If
	Let
	Nil
	Or
	Return
	Super
	This
	True
	While
)

var tokenNames = map[TokenType]string{
	EOF:          "EOF",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Semicolon:    ";",
	Minus:        "-",
	Plus:         "+",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fn:           "fn",
	If:           "if",
	Let:          "let",
	Nil:          "nil",
	Or:           "or",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	While:        "while",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fn":     Fn,
	"if":     If,
	"let":    Let,
	"nil":    Nil,
	"or":     Or,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"while":  While,
}

// Token is a lexical token. Literal holds the parsed float64 for numbers and
// the unquoted text for strings. Line and Col are 1-based.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return fmt.Sprintf("%d:%d EOF", t.Line, t.Col)
	case String, Number, Identifier:
		return fmt.Sprintf("%d:%d %s %s", t.Line, t.Col, t.Type, t.Lexeme)
	default:
		return fmt.Sprintf("%d:%d %s", t.Line, t.Col, t.Lexeme)
	}
}
