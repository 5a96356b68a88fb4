package parser

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
)

func (p *Parser) statement() (ast.Statement, error) {
	start := p.i
	switch {
	case p.match(lexer.If):
		return p.ifStatement(start)
	case p.match(lexer.While):
		return p.whileStatement(start)
	case p.match(lexer.Return):
		return p.returnStatement(start)
	case p.match(lexer.LeftBrace):
		body, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		return annotate(p, ast.NewBlockStatement(body), start), nil
	default:
		return p.expressionStatement()
	}
}

// blockBody parses declarations up to and including the closing brace.
func (p *Parser) blockBody() ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0)
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.need(lexer.RightBrace, "expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) condition(keyword string) (ast.Expression, error) {
	if _, err := p.need(lexer.LeftParen, "expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(lexer.RightParen, "expected ')' after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) ifStatement(start int) (ast.Statement, error) {
	cond, err := p.condition("if")
	if err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(lexer.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return annotate(p, ast.NewIfStatement(cond, then, elseBranch), start), nil
}

func (p *Parser) whileStatement(start int) (ast.Statement, error) {
	cond, err := p.condition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return annotate(p, ast.NewWhileLoop(cond, body), start), nil
}

func (p *Parser) returnStatement(start int) (ast.Statement, error) {
	var value ast.Expression
	if !p.check(lexer.Semicolon) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(lexer.Semicolon, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return annotate(p, ast.NewReturnStatement(value), start), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	start := p.i
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(lexer.Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return annotate(p, ast.NewExpressionStatement(expr), start), nil
}
