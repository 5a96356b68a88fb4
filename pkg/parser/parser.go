package parser

import (
	"errors"
	"fmt"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
)

// Error is a syntax error at a 1-based source position. Incomplete is set
// when the parser ran out of tokens, which the REPL treats as a request for
// another line of input.
type Error struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// IsIncomplete reports whether err came from input that ended too early.
func IsIncomplete(err error) bool {
	var parseErr *Error
	if errors.As(err, &parseErr) {
		return parseErr.Incomplete
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Incomplete
	}
	return false
}

// Parser is a recursive descent parser over a token slice.
type Parser struct {
	toks []lexer.Token
	i    int
}

// Parse lexes and parses a program.
func Parse(src string) ([]ast.Statement, error) {
	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses an EOF-terminated token slice.
func ParseTokens(toks []lexer.Token) ([]ast.Statement, error) {
	if len(toks) == 0 || toks[len(toks)-1].Type != lexer.EOF {
		return nil, fmt.Errorf("parser: token stream must end with EOF")
	}
	p := &Parser{toks: toks}
	return p.program()
}

func (p *Parser) program() ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0)
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ─── token helpers ───

func (p *Parser) atEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) peek() lexer.Token { return p.toks[p.i] }

func (p *Parser) prev() lexer.Token { return p.toks[p.i-1] }

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *Parser) match(tts ...lexer.TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) need(tt lexer.TokenType, msg string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errAt(p.peek(), msg)
}

func (p *Parser) errAt(tok lexer.Token, msg string) error {
	if tok.Type == lexer.EOF {
		return &Error{Line: tok.Line, Col: tok.Col, Msg: msg + " at end of input", Incomplete: true}
	}
	return &Error{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf("%s at %q", msg, tok.Lexeme)}
}
