package resolver

import "github.com/AaronStGeorge/cat-lox/pkg/ast"

func (r *Resolver) resolveExpression(expr ast.Expression) []Diagnostic {
	switch e := expr.(type) {
	case nil:
		return nil
	case ast.Literal:
		return nil
	case *ast.Variable:
		var diags []Diagnostic
		if current, ok := r.innermost(); ok {
			if defined, declared := current[e.Name]; declared && !defined {
				diags = diag(e, "Can't read local variable '%s' in its own initializer", e.Name)
			}
		}
		r.resolveLocal(e, e.Name)
		return diags
	case *ast.Assignment:
		diags := r.resolveExpression(e.Value)
		r.resolveLocal(e, e.Name)
		return diags
	case *ast.UnaryExpression:
		return r.resolveExpression(e.Operand)
	case *ast.BinaryExpression:
		return append(r.resolveExpression(e.Left), r.resolveExpression(e.Right)...)
	case *ast.LogicalExpression:
		return append(r.resolveExpression(e.Left), r.resolveExpression(e.Right)...)
	case *ast.Grouping:
		return r.resolveExpression(e.Expression)
	case *ast.CallExpression:
		diags := r.resolveExpression(e.Callee)
		for _, arg := range e.Arguments {
			diags = append(diags, r.resolveExpression(arg)...)
		}
		return diags
	case *ast.GetExpression:
		return r.resolveExpression(e.Object)
	case *ast.SetExpression:
		return append(r.resolveExpression(e.Value), r.resolveExpression(e.Object)...)
	case *ast.ThisExpression:
		if r.class == classNone {
			return diag(e, "Can't use 'this' outside of a class")
		}
		r.resolveLocal(e, "this")
		return nil
	case *ast.SuperExpression:
		switch r.class {
		case classNone:
			return diag(e, "Can't use 'super' outside of a class")
		case classPlain:
			return diag(e, "Can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e, "super")
		return nil
	default:
		return diag(expr, "unsupported expression %s", expr.NodeType())
	}
}
