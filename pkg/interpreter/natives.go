package interpreter

import (
	"fmt"

	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func (i *Interpreter) defineBuiltins() {
	i.global.Define("clock", runtime.NativeFunctionValue{
		Name:     "clock",
		ArgCount: 0,
		Impl: func(_ *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
			now := i.clock()
			return runtime.NumberValue{Val: float64(now.UnixNano()) / 1e9}, nil
		},
	})
	i.global.Define("print", runtime.NativeFunctionValue{
		Name:     "print",
		ArgCount: 1,
		Impl: func(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			if _, err := fmt.Fprintln(ctx.Output, valueToString(args[0])); err != nil {
				return nil, fmt.Errorf("print: %w", err)
			}
			return runtime.NilValue{}, nil
		},
	})
}
