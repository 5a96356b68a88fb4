package parser

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
)

var binaryOperators = map[lexer.TokenType]ast.Operator{
	lexer.Plus:         ast.OpPlus,
	lexer.Minus:        ast.OpMinus,
	lexer.Star:         ast.OpStar,
	lexer.Slash:        ast.OpSlash,
	lexer.EqualEqual:   ast.OpEqual,
	lexer.BangEqual:    ast.OpNotEqual,
	lexer.Less:         ast.OpLess,
	lexer.LessEqual:    ast.OpLessEqual,
	lexer.Greater:      ast.OpGreater,
	lexer.GreaterEqual: ast.OpGreaterEqual,
}

// Binary precedence levels, loosest first.
var binaryLevels = [][]lexer.TokenType{
	{lexer.EqualEqual, lexer.BangEqual},
	{lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual},
	{lexer.Minus, lexer.Plus},
	{lexer.Slash, lexer.Star},
}

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	start := p.i
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.Equal) {
		return expr, nil
	}
	equals := p.prev()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	switch target := expr.(type) {
	case *ast.Variable:
		return annotate(p, ast.NewAssignment(target.Name, value), start), nil
	case *ast.GetExpression:
		return annotate(p, ast.NewSetExpression(target.Object, target.Name, value), start), nil
	}
	return nil, &Error{Line: equals.Line, Col: equals.Col, Msg: "invalid assignment target"}
}

func (p *Parser) logicOr() (ast.Expression, error) {
	return p.logical(lexer.Or, ast.OpOr, p.logicAnd)
}

func (p *Parser) logicAnd() (ast.Expression, error) {
	return p.logical(lexer.And, ast.OpAnd, func() (ast.Expression, error) { return p.binary(0) })
}

func (p *Parser) logical(tt lexer.TokenType, op ast.Operator, operand func() (ast.Expression, error)) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(tt) {
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = annotateFrom(p, ast.NewLogicalExpression(op, expr, right), expr)
	}
	return expr, nil
}

// binary parses the left-associative operator level at index level of
// binaryLevels, bottoming out at unary.
func (p *Parser) binary(level int) (ast.Expression, error) {
	if level == len(binaryLevels) {
		return p.unary()
	}
	expr, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.match(binaryLevels[level]...) {
		op := binaryOperators[p.prev().Type]
		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		expr = annotateFrom(p, ast.NewBinaryExpression(op, expr, right), expr)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	start := p.i
	if p.match(lexer.Bang, lexer.Minus) {
		op := ast.OpBang
		if p.prev().Type == lexer.Minus {
			op = ast.OpMinus
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return annotate(p, ast.NewUnaryExpression(op, operand), start), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expression, error) {
	start := p.i
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.LeftParen):
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			expr = annotate(p, ast.NewCallExpression(expr, args), start)
		case p.match(lexer.Dot):
			name, err := p.need(lexer.Identifier, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = annotate(p, ast.NewGetExpression(expr, name.Lexeme), start)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) arguments() ([]ast.Expression, error) {
	args := make([]ast.Expression, 0)
	if !p.check(lexer.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.need(lexer.RightParen, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	start := p.i
	tok := p.peek()
	switch tok.Type {
	case lexer.Number:
		p.advance()
		return annotate(p, ast.NewNumberLiteral(tok.Literal.(float64)), start), nil
	case lexer.String:
		p.advance()
		return annotate(p, ast.NewStringLiteral(tok.Literal.(string)), start), nil
	case lexer.True, lexer.False:
		p.advance()
		return annotate(p, ast.NewBooleanLiteral(tok.Type == lexer.True), start), nil
	case lexer.Nil:
		p.advance()
		return annotate(p, ast.NewNilLiteral(), start), nil
	case lexer.This:
		p.advance()
		return annotate(p, ast.NewThisExpression(), start), nil
	case lexer.Super:
		p.advance()
		if _, err := p.need(lexer.Dot, "expected '.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.need(lexer.Identifier, "expected superclass method name")
		if err != nil {
			return nil, err
		}
		return annotate(p, ast.NewSuperExpression(method.Lexeme), start), nil
	case lexer.Identifier:
		p.advance()
		return annotate(p, ast.NewVariable(tok.Lexeme), start), nil
	case lexer.LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(lexer.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return annotate(p, ast.NewGrouping(inner), start), nil
	}
	return nil, p.errAt(tok, "expected expression")
}
