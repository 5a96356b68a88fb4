package parser

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
)

func (p *Parser) declaration() (ast.Statement, error) {
	switch {
	case p.check(lexer.Class):
		return p.classDeclaration()
	case p.check(lexer.Fn):
		start := p.i
		p.advance()
		return p.function(start, "function")
	case p.check(lexer.Let):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) identifier(msg string) (*ast.Identifier, error) {
	tok, err := p.need(lexer.Identifier, msg)
	if err != nil {
		return nil, err
	}
	return ast.WithSpan(ast.ID(tok.Lexeme), spanFromTokens(tok, tok)), nil
}

func (p *Parser) classDeclaration() (ast.Statement, error) {
	start := p.i
	p.advance()
	name, err := p.identifier("expected class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.Less) {
		tok, err := p.need(lexer.Identifier, "expected superclass name")
		if err != nil {
			return nil, err
		}
		superclass = ast.WithSpan(ast.Var(tok.Lexeme), spanFromTokens(tok, tok))
	}

	if _, err := p.need(lexer.LeftBrace, "expected '{' before class body"); err != nil {
		return nil, err
	}
	methods := make([]*ast.FunctionDeclaration, 0)
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		method, err := p.function(p.i, "method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if _, err := p.need(lexer.RightBrace, "expected '}' after class body"); err != nil {
		return nil, err
	}
	return annotate(p, ast.NewClassDeclaration(name, superclass, methods), start), nil
}

// function parses `name(params) { body }`; the `fn` keyword, if any, has
// already been consumed and start points at it.
func (p *Parser) function(start int, kind string) (*ast.FunctionDeclaration, error) {
	name, err := p.identifier("expected " + kind + " name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(lexer.LeftParen, "expected '(' after "+kind+" name"); err != nil {
		return nil, err
	}
	params := make([]*ast.Identifier, 0)
	if !p.check(lexer.RightParen) {
		for {
			param, err := p.identifier("expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.need(lexer.RightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.need(lexer.LeftBrace, "expected '{' before "+kind+" body"); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return annotate(p, ast.NewFunctionDeclaration(name, params, body), start), nil
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	start := p.i
	p.advance()
	name, err := p.identifier("expected variable name")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(lexer.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return annotate(p, ast.NewVariableDeclaration(name, initializer), start), nil
}
