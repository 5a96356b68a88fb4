package interpreter

import (
	"fmt"
	"strconv"

	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

// ValueToString renders the canonical text print uses.
func ValueToString(val runtime.Value) string {
	return valueToString(val)
}

func valueToString(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NumberValue:
		return formatNumber(v.Val)
	case runtime.StringValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NilValue:
		return "nil"
	case *runtime.FunctionValue:
		return fmt.Sprintf("<fn %s>", v.Name())
	case runtime.BoundMethodValue:
		return fmt.Sprintf("<fn %s>", v.Method.Name())
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native fn %s>", v.Name)
	case *runtime.ClassValue:
		return v.Name
	case *runtime.InstanceValue:
		return v.Class.Name + " instance"
	case nil:
		return "<uninitialized>"
	default:
		return fmt.Sprintf("<%s>", val.Kind())
	}
}

// formatNumber uses the shortest decimal form: 2, -1, 0.5.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
