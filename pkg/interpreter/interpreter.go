package interpreter

import (
	"io"
	"log/slog"
	"time"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested calls before a "stack overflow" error.
const DefaultMaxCallDepth = 10000

// Interpreter evaluates resolved catbox programs against a persistent global
// frame. It is not safe for concurrent use.
type Interpreter struct {
	global       *runtime.Environment
	bindings     resolver.Bindings
	out          io.Writer
	logger       *slog.Logger
	clock        func() time.Time
	maxCallDepth int
	callDepth    int
	natives      []runtime.NativeFunctionValue
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the sink the print native writes to.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// WithClock replaces the time source behind the clock native.
func WithClock(clock func() time.Time) Option {
	return func(i *Interpreter) { i.clock = clock }
}

// WithMaxCallDepth sets the call nesting limit; values below 1 are ignored.
func WithMaxCallDepth(depth int) Option {
	return func(i *Interpreter) {
		if depth > 0 {
			i.maxCallDepth = depth
		}
	}
}

// WithNative registers an extra native function in the global frame.
func WithNative(name string, arity int, impl runtime.NativeFunc) Option {
	return func(i *Interpreter) {
		i.natives = append(i.natives, runtime.NativeFunctionValue{Name: name, ArgCount: arity, Impl: impl})
	}
}

// New returns an interpreter whose global frame holds the built-in natives
// plus any registered with WithNative.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:       runtime.NewEnvironment(nil),
		bindings:     make(resolver.Bindings),
		out:          io.Discard,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:        time.Now,
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.defineBuiltins()
	for _, native := range i.natives {
		i.global.Define(native.Name, native)
	}
	return i
}

// GlobalEnvironment returns the interpreter's global frame.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

func (i *Interpreter) mergeBindings(bindings resolver.Bindings) {
	for id, depth := range bindings {
		i.bindings[id] = depth
	}
}

// Interpret runs each top-level statement in order. A statement that fails
// contributes one error and execution moves on to the next statement.
func (i *Interpreter) Interpret(stmts []ast.Statement, bindings resolver.Bindings) []error {
	i.mergeBindings(bindings)
	var errs []error
	for _, stmt := range stmts {
		if err := i.executeTopLevel(stmt); err != nil {
			i.logger.Debug("statement failed", "node", stmt.NodeType(), "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

func (i *Interpreter) executeTopLevel(stmt ast.Statement) error {
	done, err := i.executeStatement(stmt, i.global)
	if err != nil {
		return err
	}
	if done.returning {
		return newRuntimeError(stmt, "return outside function")
	}
	return nil
}

// Evaluate evaluates a single expression in the global frame.
func (i *Interpreter) Evaluate(expr ast.Expression, bindings resolver.Bindings) (runtime.Value, error) {
	i.mergeBindings(bindings)
	return i.evaluateExpression(expr, i.global)
}
