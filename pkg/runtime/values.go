package runtime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindFunction
	KindNativeFunction
	KindBoundMethod
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	case KindBoundMethod:
		return "bound_method"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// Callable is implemented by every value a call expression accepts:
// NativeFunctionValue, *FunctionValue, BoundMethodValue and *ClassValue.
type Callable interface {
	Value
	Arity() int
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue is a user function or method together with the frame it
// closed over. Initializers always produce the receiver when called.
type FunctionValue struct {
	Declaration   *ast.FunctionDeclaration
	Closure       *Environment
	IsInitializer bool
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) Arity() int { return len(v.Declaration.Params) }

func (v *FunctionValue) Name() string { return v.Declaration.Name.Name }

// Bind returns a copy of the method whose closure is extended with a frame
// holding `this`.
func (v *FunctionValue) Bind(receiver *InstanceValue) BoundMethodValue {
	frame := v.Closure.Push()
	frame.Define("this", receiver)
	return BoundMethodValue{
		Receiver: receiver,
		Method: &FunctionValue{
			Declaration:   v.Declaration,
			Closure:       frame,
			IsInitializer: v.IsInitializer,
		},
	}
}

// NativeCallContext gives native functions access to interpreter services.
type NativeCallContext struct {
	Env    *Environment
	Output io.Writer
	Logger *slog.Logger
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

type NativeFunctionValue struct {
	Name     string
	ArgCount int
	Impl     NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

func (v NativeFunctionValue) Arity() int { return v.ArgCount }

// Bound methods capture `this` and a callable.
type BoundMethodValue struct {
	Receiver *InstanceValue
	Method   *FunctionValue
}

func (v BoundMethodValue) Kind() Kind { return KindBoundMethod }

func (v BoundMethodValue) Arity() int { return v.Method.Arity() }

//-----------------------------------------------------------------------------
// Classes & instances
//-----------------------------------------------------------------------------

type ClassValue struct {
	Name       string
	Methods    map[string]*FunctionValue
	Superclass *ClassValue
}

func (v *ClassValue) Kind() Kind { return KindClass }

// FindMethod looks name up in the class, then along the superclass chain.
func (v *ClassValue) FindMethod(name string) (*FunctionValue, bool) {
	for class := v; class != nil; class = class.Superclass {
		if method, ok := class.Methods[name]; ok {
			return method, true
		}
	}
	return nil, false
}

// Arity is the arity of init, or 0 when the class has none.
func (v *ClassValue) Arity() int {
	if initializer, ok := v.FindMethod("init"); ok {
		return initializer.Arity()
	}
	return 0
}

type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{Class: class, Fields: make(map[string]Value)}
}

func (v *InstanceValue) Kind() Kind { return KindInstance }

// Get resolves a property: fields first, then methods bound to v.
func (v *InstanceValue) Get(name string) (Value, bool) {
	if field, ok := v.Fields[name]; ok {
		return field, true
	}
	if method, ok := v.Class.FindMethod(name); ok {
		return method.Bind(v), true
	}
	return nil, false
}

func (v *InstanceValue) Set(name string, value Value) {
	v.Fields[name] = value
}
