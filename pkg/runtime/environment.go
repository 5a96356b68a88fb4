package runtime

import (
	"fmt"
	"sort"
)

// Environment is one frame of the scope chain. Frames are shared by
// pointer, so every closure holding a frame observes later writes to it.
// A nil Value in a frame marks a name declared without an initializer.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new frame, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the enclosing frame (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Push returns a new frame nested under e.
func (e *Environment) Push() *Environment {
	return NewEnvironment(e)
}

// Pop returns the enclosing frame. The global frame cannot be popped.
func (e *Environment) Pop() (*Environment, error) {
	if e.parent == nil {
		return nil, fmt.Errorf("cannot pop the global frame")
	}
	return e.parent, nil
}

// Define inserts or overwrites a binding in this frame only. A nil value
// declares the name without initializing it.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates an existing binding in the first frame where it appears.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'", name)
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return initialized(name, v)
		}
	}
	return nil, fmt.Errorf("Undefined variable '%s'", name)
}

// GetAt reads name from the frame depth steps out from e. A missing frame
// or binding means the resolver and interpreter disagree, and panics.
func (e *Environment) GetAt(depth int, name string) (Value, error) {
	frame := e.ancestor(depth)
	v, ok := frame.values[name]
	if !ok {
		panic(fmt.Sprintf("runtime: no binding for %q at depth %d", name, depth))
	}
	return initialized(name, v)
}

// AssignAt writes name in the frame depth steps out from e.
func (e *Environment) AssignAt(depth int, name string, value Value) {
	frame := e.ancestor(depth)
	if _, ok := frame.values[name]; !ok {
		panic(fmt.Sprintf("runtime: no binding for %q at depth %d", name, depth))
	}
	frame.values[name] = value
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		if env.parent == nil {
			panic(fmt.Sprintf("runtime: scope depth %d exceeds chain length", depth))
		}
		env = env.parent
	}
	return env
}

func initialized(name string, v Value) (Value, error) {
	if v == nil {
		return nil, fmt.Errorf("Uninitialized variable '%s'", name)
	}
	return v, nil
}

// Keys returns the bindings of this frame in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of this frame's initialized bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		if v != nil {
			out[k] = v
		}
	}
	return out
}
