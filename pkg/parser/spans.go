package parser

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
)

func spanFromTokens(start, end lexer.Token) ast.Span {
	return ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Col},
		End:   ast.Position{Line: end.EndLine, Column: end.EndCol},
	}
}

// annotate spans node from the token at index start through the last
// consumed token.
func annotate[T ast.Node](p *Parser, node T, start int) T {
	return ast.WithSpan(node, spanFromTokens(p.toks[start], p.prev()))
}

// annotateFrom spans node from an already-spanned child to the last
// consumed token; used for left-recursive binary forms.
func annotateFrom[T ast.Node](p *Parser, node T, first ast.Node) T {
	span := first.Span()
	span.End = ast.Position{Line: p.prev().EndLine, Column: p.prev().EndCol}
	return ast.WithSpan(node, span)
}
