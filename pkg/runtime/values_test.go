package runtime

import (
	"testing"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
)

func TestClassFindMethodWalksSuperclasses(t *testing.T) {
	env := NewEnvironment(nil)
	speak := &FunctionValue{Declaration: ast.Fn("speak", nil), Closure: env}
	base := &ClassValue{Name: "A", Methods: map[string]*FunctionValue{"speak": speak}}
	derived := &ClassValue{Name: "B", Methods: map[string]*FunctionValue{}, Superclass: base}

	got, ok := derived.FindMethod("speak")
	if !ok || got != speak {
		t.Fatalf("expected inherited method, got %#v", got)
	}
	if _, ok := derived.FindMethod("missing"); ok {
		t.Fatalf("did not expect to find missing method")
	}
}

func TestClassArityFollowsInit(t *testing.T) {
	env := NewEnvironment(nil)
	initFn := &FunctionValue{Declaration: ast.Fn("init", []string{"a", "b"}), Closure: env, IsInitializer: true}
	withInit := &ClassValue{Name: "P", Methods: map[string]*FunctionValue{"init": initFn}}
	if withInit.Arity() != 2 {
		t.Fatalf("expected arity 2, got %d", withInit.Arity())
	}
	sub := &ClassValue{Name: "Q", Methods: map[string]*FunctionValue{}, Superclass: withInit}
	if sub.Arity() != 2 {
		t.Fatalf("expected inherited init arity 2, got %d", sub.Arity())
	}
	plain := &ClassValue{Name: "R", Methods: map[string]*FunctionValue{}}
	if plain.Arity() != 0 {
		t.Fatalf("expected arity 0, got %d", plain.Arity())
	}
}

func TestInstanceGetPrefersFieldsAndBindsMethods(t *testing.T) {
	env := NewEnvironment(nil)
	method := &FunctionValue{Declaration: ast.Fn("name", nil), Closure: env}
	class := &ClassValue{Name: "A", Methods: map[string]*FunctionValue{"name": method}}
	inst := NewInstance(class)

	v, ok := inst.Get("name")
	if !ok {
		t.Fatalf("expected method lookup to succeed")
	}
	bound, ok := v.(BoundMethodValue)
	if !ok {
		t.Fatalf("expected BoundMethodValue, got %T", v)
	}
	if bound.Receiver != inst || bound.Method.Closure.Parent() != env {
		t.Fatalf("bound method should extend the method closure")
	}
	this, err := bound.Method.Closure.GetAt(0, "this")
	if err != nil || this != inst {
		t.Fatalf("expected `this` bound to instance, got %#v, %v", this, err)
	}

	inst.Set("name", StringValue{Val: "field"})
	v, _ = inst.Get("name")
	if s, ok := v.(StringValue); !ok || s.Val != "field" {
		t.Fatalf("expected field to shadow method, got %#v", v)
	}
	if _, ok := inst.Get("other"); ok {
		t.Fatalf("did not expect unknown property")
	}
}

func TestCallableKinds(t *testing.T) {
	env := NewEnvironment(nil)
	fn := &FunctionValue{Declaration: ast.Fn("f", []string{"x"}), Closure: env}
	callables := []Callable{
		NativeFunctionValue{Name: "clock", ArgCount: 0},
		fn,
		fn.Bind(NewInstance(&ClassValue{Name: "A"})),
		&ClassValue{Name: "A"},
	}
	wantArity := []int{0, 1, 1, 0}
	wantKind := []Kind{KindNativeFunction, KindFunction, KindBoundMethod, KindClass}
	for i, c := range callables {
		if c.Arity() != wantArity[i] || c.Kind() != wantKind[i] {
			t.Fatalf("callable %d: arity %d kind %v", i, c.Arity(), c.Kind())
		}
	}
}
