package interpreter

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func (i *Interpreter) executeClassDeclaration(decl *ast.ClassDeclaration, env *runtime.Environment) error {
	var superclass *runtime.ClassValue
	if decl.Superclass != nil {
		val, err := i.evaluateExpression(decl.Superclass, env)
		if err != nil {
			return err
		}
		class, ok := val.(*runtime.ClassValue)
		if !ok {
			return newRuntimeError(decl.Superclass, "Superclass must be a class")
		}
		superclass = class
	}

	methodEnv := env
	if superclass != nil {
		methodEnv = env.Push()
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.FunctionValue, len(decl.Methods))
	for _, method := range decl.Methods {
		methods[method.Name.Name] = &runtime.FunctionValue{
			Declaration:   method,
			Closure:       methodEnv,
			IsInitializer: method.Name.Name == "init",
		}
	}
	env.Define(decl.Name.Name, &runtime.ClassValue{
		Name:       decl.Name.Name,
		Methods:    methods,
		Superclass: superclass,
	})
	return nil
}

func (i *Interpreter) evaluateGetExpression(expr *ast.GetExpression, env *runtime.Environment) (runtime.Value, error) {
	obj, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.InstanceValue)
	if !ok {
		return nil, newRuntimeError(expr, "Only instances have properties, got %s", obj.Kind())
	}
	val, ok := inst.Get(expr.Name)
	if !ok {
		return nil, newRuntimeError(expr, "Undefined property '%s'", expr.Name)
	}
	return val, nil
}

func (i *Interpreter) evaluateSetExpression(expr *ast.SetExpression, env *runtime.Environment) (runtime.Value, error) {
	obj, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.InstanceValue)
	if !ok {
		return nil, newRuntimeError(expr, "Only instances have fields, got %s", obj.Kind())
	}
	value, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	inst.Set(expr.Name, value)
	return value, nil
}

// evaluateSuperExpression finds the method on the superclass stored at the
// resolved depth and binds it to `this`, which lives one frame closer.
func (i *Interpreter) evaluateSuperExpression(expr *ast.SuperExpression, env *runtime.Environment) (runtime.Value, error) {
	depth, ok := i.bindings[expr.ID()]
	if !ok {
		return nil, newRuntimeError(expr, "unresolved 'super'")
	}
	superVal, err := env.GetAt(depth, "super")
	if err != nil {
		return nil, wrapError(expr, err)
	}
	thisVal, err := env.GetAt(depth-1, "this")
	if err != nil {
		return nil, wrapError(expr, err)
	}
	superclass := superVal.(*runtime.ClassValue)
	receiver := thisVal.(*runtime.InstanceValue)
	method, ok := superclass.FindMethod(expr.Method)
	if !ok {
		return nil, newRuntimeError(expr, "Undefined property '%s'", expr.Method)
	}
	return method.Bind(receiver), nil
}
