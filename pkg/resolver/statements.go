package resolver

import "github.com/AaronStGeorge/cat-lox/pkg/ast"

func (r *Resolver) resolveStatements(stmts []ast.Statement) []Diagnostic {
	var diags []Diagnostic
	for _, stmt := range stmts {
		diags = append(diags, r.resolveStatement(stmt)...)
	}
	return diags
}

func (r *Resolver) resolveStatement(stmt ast.Statement) []Diagnostic {
	switch s := stmt.(type) {
	case nil:
		return nil
	case *ast.ExpressionStatement:
		return r.resolveExpression(s.Expression)
	case *ast.BlockStatement:
		r.beginScope()
		defer r.endScope()
		return r.resolveStatements(s.Body)
	case *ast.VariableDeclaration:
		diags := r.declare(s.Name)
		if s.Initializer != nil {
			diags = append(diags, r.resolveExpression(s.Initializer)...)
		}
		r.define(s.Name.Name)
		return diags
	case *ast.FunctionDeclaration:
		diags := r.declare(s.Name)
		r.define(s.Name.Name)
		return append(diags, r.resolveFunction(s, functionPlain)...)
	case *ast.ClassDeclaration:
		return r.resolveClass(s)
	case *ast.IfStatement:
		diags := r.resolveExpression(s.Condition)
		diags = append(diags, r.resolveStatement(s.Then)...)
		if s.Else != nil {
			diags = append(diags, r.resolveStatement(s.Else)...)
		}
		return diags
	case *ast.WhileLoop:
		diags := r.resolveExpression(s.Condition)
		return append(diags, r.resolveStatement(s.Body)...)
	case *ast.ReturnStatement:
		var diags []Diagnostic
		if r.function == functionNone {
			diags = append(diags, diag(s, "Can't return from top-level code")...)
		}
		if s.Argument != nil {
			if r.function == functionInitializer {
				diags = append(diags, diag(s, "Can't return a value from an initializer")...)
			}
			diags = append(diags, r.resolveExpression(s.Argument)...)
		}
		return diags
	default:
		return diag(stmt, "unsupported statement %s", stmt.NodeType())
	}
}

// resolveFunction opens the single scope a call frame provides: parameters
// and top-level body declarations share it.
func (r *Resolver) resolveFunction(fn *ast.FunctionDeclaration, kind functionKind) []Diagnostic {
	restore := r.enterFunction(kind)
	defer restore()

	r.beginScope()
	defer r.endScope()

	var diags []Diagnostic
	for _, param := range fn.Params {
		diags = append(diags, r.declare(param)...)
		r.define(param.Name)
	}
	return append(diags, r.resolveStatements(fn.Body)...)
}

func (r *Resolver) resolveClass(class *ast.ClassDeclaration) []Diagnostic {
	restore := r.enterClass(classPlain)
	defer restore()

	diags := r.declare(class.Name)
	r.define(class.Name.Name)

	if class.Superclass != nil {
		if class.Superclass.Name == class.Name.Name {
			diags = append(diags, diag(class.Superclass, "A class can't inherit from itself")...)
		}
		r.class = classSubclass
		diags = append(diags, r.resolveExpression(class.Superclass)...)

		r.beginScope()
		defer r.endScope()
		r.define("super")
	}

	r.beginScope()
	defer r.endScope()
	r.define("this")

	for _, method := range class.Methods {
		kind := functionMethod
		if method.Name.Name == "init" {
			kind = functionInitializer
		}
		diags = append(diags, r.resolveFunction(method, kind)...)
	}
	return diags
}
