package runtime

import (
	"strings"
	"testing"
)

func TestEnvironmentDefineAndGetWalksParents(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", NumberValue{Val: 1})
	inner := global.Push().Push()

	v, err := inner.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n, ok := v.(NumberValue); !ok || n.Val != 1 {
		t.Fatalf("unexpected value %#v", v)
	}
	if _, err := inner.Get("missing"); err == nil || err.Error() != "Undefined variable 'missing'" {
		t.Fatalf("expected undefined variable error, got %v", err)
	}
}

func TestEnvironmentAssignNeverDeclares(t *testing.T) {
	global := NewEnvironment(nil)
	inner := global.Push()
	if err := inner.Assign("x", NilValue{}); err == nil {
		t.Fatalf("expected assignment to undeclared name to fail")
	}
	if len(global.Keys()) != 0 || len(inner.Keys()) != 0 {
		t.Fatalf("assignment must not create bindings")
	}

	global.Define("x", NumberValue{Val: 1})
	if err := inner.Assign("x", NumberValue{Val: 2}); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	v, _ := global.Get("x")
	if v.(NumberValue).Val != 2 {
		t.Fatalf("expected assignment to reach global frame, got %#v", v)
	}
}

func TestEnvironmentDepthAccess(t *testing.T) {
	global := NewEnvironment(nil)
	outer := global.Push()
	outer.Define("a", StringValue{Val: "outer"})
	inner := outer.Push()
	inner.Define("a", StringValue{Val: "inner"})

	v, err := inner.GetAt(1, "a")
	if err != nil || v.(StringValue).Val != "outer" {
		t.Fatalf("GetAt(1) = %#v, %v", v, err)
	}
	v, err = inner.GetAt(0, "a")
	if err != nil || v.(StringValue).Val != "inner" {
		t.Fatalf("GetAt(0) = %#v, %v", v, err)
	}

	inner.AssignAt(1, "a", StringValue{Val: "changed"})
	v, _ = outer.Get("a")
	if v.(StringValue).Val != "changed" {
		t.Fatalf("AssignAt did not reach outer frame: %#v", v)
	}
}

func TestEnvironmentGetAtPanicsOnMissingBinding(t *testing.T) {
	env := NewEnvironment(nil).Push()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_, _ = env.GetAt(0, "nope")
}

func TestEnvironmentAssignAtPanicsWhenDepthTooLarge(t *testing.T) {
	env := NewEnvironment(nil)
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "exceeds chain length") {
			t.Fatalf("expected depth panic, got %v", r)
		}
	}()
	env.AssignAt(3, "a", NilValue{})
}

func TestEnvironmentUninitializedSlot(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", nil)
	if _, err := env.Get("a"); err == nil || err.Error() != "Uninitialized variable 'a'" {
		t.Fatalf("expected uninitialized error, got %v", err)
	}
	if _, err := env.GetAt(0, "a"); err == nil {
		t.Fatalf("expected uninitialized error from GetAt")
	}
	if _, ok := env.Snapshot()["a"]; ok {
		t.Fatalf("snapshot should skip uninitialized bindings")
	}
	if err := env.Assign("a", BoolValue{Val: true}); err != nil {
		t.Fatalf("assigning a declared name should succeed: %v", err)
	}
	if v, err := env.Get("a"); err != nil || !v.(BoolValue).Val {
		t.Fatalf("unexpected value %#v, %v", v, err)
	}
}

func TestEnvironmentPushPop(t *testing.T) {
	global := NewEnvironment(nil)
	block := global.Push()
	if block.Parent() != global {
		t.Fatalf("pushed frame should point at its parent")
	}
	back, err := block.Pop()
	if err != nil || back != global {
		t.Fatalf("Pop = %p, %v; want global frame", back, err)
	}
	if _, err := global.Pop(); err == nil {
		t.Fatalf("expected popping the global frame to fail")
	}
}

func TestEnvironmentFramesAreShared(t *testing.T) {
	global := NewEnvironment(nil)
	shared := global.Push()
	shared.Define("count", NumberValue{Val: 0})
	first := shared.Push()
	second := shared.Push()

	if err := first.Assign("count", NumberValue{Val: 5}); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	v, _ := second.GetAt(1, "count")
	if v.(NumberValue).Val != 5 {
		t.Fatalf("sibling frame did not observe mutation: %#v", v)
	}
}
