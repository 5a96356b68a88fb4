package interpreter

import (
	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.Grouping:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Variable:
		return i.lookUpVariable(n, n.Name, env)
	case *ast.Assignment:
		return i.evaluateAssignment(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.LogicalExpression:
		return i.evaluateLogicalExpression(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	case *ast.GetExpression:
		return i.evaluateGetExpression(n, env)
	case *ast.SetExpression:
		return i.evaluateSetExpression(n, env)
	case *ast.ThisExpression:
		return i.lookUpVariable(n, "this", env)
	case *ast.SuperExpression:
		return i.evaluateSuperExpression(n, env)
	default:
		return nil, newRuntimeError(node, "unsupported expression type: %s", node.NodeType())
	}
}

// lookUpVariable reads name at the resolved depth, or from the global frame
// when the resolver left expr unannotated.
func (i *Interpreter) lookUpVariable(expr ast.Expression, name string, env *runtime.Environment) (runtime.Value, error) {
	var (
		val runtime.Value
		err error
	)
	if depth, ok := i.bindings[expr.ID()]; ok {
		val, err = env.GetAt(depth, name)
	} else {
		val, err = i.global.Get(name)
	}
	if err != nil {
		return nil, wrapError(expr, err)
	}
	return val, nil
}

func (i *Interpreter) evaluateAssignment(assign *ast.Assignment, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.bindings[assign.ID()]; ok {
		env.AssignAt(depth, assign.Name, value)
		return value, nil
	}
	if err := i.global.Assign(assign.Name, value); err != nil {
		return nil, wrapError(assign, err)
	}
	return value, nil
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpMinus:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, newRuntimeError(expr, "Operand must be a number")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case ast.OpBang:
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	default:
		return nil, newRuntimeError(expr, "unsupported unary operator %s", expr.Operator)
	}
}

// evaluateBinaryExpression evaluates the right operand before the left.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr, left, right)
}

func applyBinaryOperator(expr *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	switch expr.Operator {
	case ast.OpPlus:
		return add(expr, left, right)
	case ast.OpEqual, ast.OpNotEqual:
		eq, err := valuesEqual(expr, left, right)
		if err != nil {
			return nil, err
		}
		if expr.Operator == ast.OpNotEqual {
			eq = !eq
		}
		return runtime.BoolValue{Val: eq}, nil
	}

	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, newRuntimeError(expr, "Operands of '%s' must be numbers", expr.Operator)
	}
	switch expr.Operator {
	case ast.OpMinus:
		return runtime.NumberValue{Val: l.Val - r.Val}, nil
	case ast.OpStar:
		return runtime.NumberValue{Val: l.Val * r.Val}, nil
	case ast.OpSlash:
		if r.Val == 0 {
			return nil, newRuntimeError(expr, "Division by zero")
		}
		return runtime.NumberValue{Val: l.Val / r.Val}, nil
	case ast.OpGreater:
		return runtime.BoolValue{Val: l.Val > r.Val}, nil
	case ast.OpGreaterEqual:
		return runtime.BoolValue{Val: l.Val >= r.Val}, nil
	case ast.OpLess:
		return runtime.BoolValue{Val: l.Val < r.Val}, nil
	case ast.OpLessEqual:
		return runtime.BoolValue{Val: l.Val <= r.Val}, nil
	default:
		return nil, newRuntimeError(expr, "unsupported binary operator %s", expr.Operator)
	}
}

// add sums two numbers or concatenates two strings; a number paired with
// a string is converted to its canonical text first.
func add(expr *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.NumberValue:
		switch r := right.(type) {
		case runtime.NumberValue:
			return runtime.NumberValue{Val: l.Val + r.Val}, nil
		case runtime.StringValue:
			return runtime.StringValue{Val: formatNumber(l.Val) + r.Val}, nil
		}
	case runtime.StringValue:
		switch r := right.(type) {
		case runtime.StringValue:
			return runtime.StringValue{Val: l.Val + r.Val}, nil
		case runtime.NumberValue:
			return runtime.StringValue{Val: l.Val + formatNumber(r.Val)}, nil
		}
	}
	return nil, newRuntimeError(expr, "Operands of '+' must be two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
}

// valuesEqual compares two values of the same scalar kind; any other pair
// is an error rather than false.
func valuesEqual(expr *ast.BinaryExpression, left, right runtime.Value) (bool, error) {
	switch l := left.(type) {
	case runtime.NumberValue:
		if r, ok := right.(runtime.NumberValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.StringValue:
		if r, ok := right.(runtime.StringValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.BoolValue:
		if r, ok := right.(runtime.BoolValue); ok {
			return l.Val == r.Val, nil
		}
	case runtime.NilValue:
		if _, ok := right.(runtime.NilValue); ok {
			return true, nil
		}
	}
	return false, newRuntimeError(expr, "Cannot compare %s and %s for equality", left.Kind(), right.Kind())
}

// evaluateLogicalExpression yields whichever operand decided the result.
func (i *Interpreter) evaluateLogicalExpression(expr *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpOr:
		if isTruthy(left) {
			return left, nil
		}
	case ast.OpAnd:
		if !isTruthy(left) {
			return left, nil
		}
	default:
		return nil, newRuntimeError(expr, "unsupported logical operator %s", expr.Operator)
	}
	return i.evaluateExpression(expr.Right, env)
}

// isTruthy treats nil and false as false and everything else as true.
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.NilValue:
		return false
	case runtime.BoolValue:
		return v.Val
	default:
		return true
	}
}
