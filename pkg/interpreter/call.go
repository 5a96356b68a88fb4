package interpreter

import (
	"fmt"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

// CallFunction invokes any callable value with the provided arguments.
func (i *Interpreter) CallFunction(value runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if i == nil {
		return nil, fmt.Errorf("interpreter: nil interpreter")
	}
	if value == nil {
		return nil, fmt.Errorf("interpreter: cannot call <nil> value")
	}
	return i.callValue(nil, value, args)
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		arg, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return i.callValue(call, callee, args)
}

// callValue dispatches on the closed set of callable kinds. node locates
// errors and may be nil for calls made from Go.
func (i *Interpreter) callValue(node ast.Node, callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	fn, ok := callee.(runtime.Callable)
	if !ok {
		return nil, newRuntimeError(node, "Can only call functions and classes, got %s", callee.Kind())
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(node, "Expected %d arguments but got %d", fn.Arity(), len(args))
	}
	switch fn := fn.(type) {
	case runtime.NativeFunctionValue:
		ctx := &runtime.NativeCallContext{Env: i.global, Output: i.out, Logger: i.logger}
		result, err := fn.Impl(ctx, args)
		if err != nil {
			return nil, wrapError(node, err)
		}
		if result == nil {
			return runtime.NilValue{}, nil
		}
		return result, nil
	case *runtime.FunctionValue:
		return i.invokeFunction(node, fn, args)
	case runtime.BoundMethodValue:
		return i.invokeFunction(node, fn.Method, args)
	case *runtime.ClassValue:
		return i.instantiate(node, fn, args)
	default:
		return nil, newRuntimeError(node, "value of kind %s is not callable", callee.Kind())
	}
}

// invokeFunction runs fn's body in a fresh frame chained off its closure.
// Parameters and the body's own declarations share that frame.
func (i *Interpreter) invokeFunction(node ast.Node, fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	if i.callDepth >= i.maxCallDepth {
		return nil, newRuntimeError(node, "stack overflow (more than %d nested calls)", i.maxCallDepth)
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	frame := fn.Closure.Push()
	for idx, param := range fn.Declaration.Params {
		frame.Define(param.Name, args[idx])
	}
	done, err := i.executeBlock(fn.Declaration.Body, frame)
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this")
	}
	if done.returning {
		return done.value, nil
	}
	return runtime.NilValue{}, nil
}

// instantiate allocates an instance and runs init bound to it, if the class
// or a superclass defines one. The result of init is ignored.
func (i *Interpreter) instantiate(node ast.Node, class *runtime.ClassValue, args []runtime.Value) (runtime.Value, error) {
	instance := runtime.NewInstance(class)
	if initializer, ok := class.FindMethod("init"); ok {
		if _, err := i.invokeFunction(node, initializer.Bind(instance).Method, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
