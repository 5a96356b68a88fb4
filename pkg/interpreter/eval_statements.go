package interpreter

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) (completion, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		if _, err := i.evaluateExpression(n.Expression, env); err != nil {
			return normalCompletion, err
		}
		return normalCompletion, nil
	case *ast.BlockStatement:
		return i.executeBlock(n.Body, env.Push())
	case *ast.VariableDeclaration:
		return i.executeVariableDeclaration(n, env)
	case *ast.FunctionDeclaration:
		env.Define(n.Name.Name, &runtime.FunctionValue{Declaration: n, Closure: env})
		return normalCompletion, nil
	case *ast.ClassDeclaration:
		return normalCompletion, i.executeClassDeclaration(n, env)
	case *ast.IfStatement:
		return i.executeIf(n, env)
	case *ast.WhileLoop:
		return i.executeWhile(n, env)
	case *ast.ReturnStatement:
		return i.executeReturn(n, env)
	default:
		return normalCompletion, newRuntimeError(node, "unsupported statement type: %s", node.NodeType())
	}
}

// executeBlock runs stmts in frame, which the caller has already pushed.
// The frame is dropped on every exit path since nothing but closures
// created inside it keeps a reference.
func (i *Interpreter) executeBlock(stmts []ast.Statement, frame *runtime.Environment) (completion, error) {
	for _, stmt := range stmts {
		done, err := i.executeStatement(stmt, frame)
		if err != nil || done.returning {
			return done, err
		}
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeVariableDeclaration(decl *ast.VariableDeclaration, env *runtime.Environment) (completion, error) {
	var value runtime.Value
	if decl.Initializer != nil {
		v, err := i.evaluateExpression(decl.Initializer, env)
		if err != nil {
			return normalCompletion, err
		}
		value = v
	}
	env.Define(decl.Name.Name, value)
	return normalCompletion, nil
}

func (i *Interpreter) executeIf(stmt *ast.IfStatement, env *runtime.Environment) (completion, error) {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return normalCompletion, err
	}
	if isTruthy(cond) {
		return i.executeStatement(stmt.Then, env)
	}
	if stmt.Else != nil {
		return i.executeStatement(stmt.Else, env)
	}
	return normalCompletion, nil
}

func (i *Interpreter) executeWhile(loop *ast.WhileLoop, env *runtime.Environment) (completion, error) {
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return normalCompletion, err
		}
		if !isTruthy(cond) {
			return normalCompletion, nil
		}
		done, err := i.executeStatement(loop.Body, env)
		if err != nil || done.returning {
			return done, err
		}
	}
}

func (i *Interpreter) executeReturn(stmt *ast.ReturnStatement, env *runtime.Environment) (completion, error) {
	var value runtime.Value = runtime.NilValue{}
	if stmt.Argument != nil {
		v, err := i.evaluateExpression(stmt.Argument, env)
		if err != nil {
			return normalCompletion, err
		}
		value = v
	}
	return returnCompletion(value), nil
}
