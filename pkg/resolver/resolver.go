package resolver

import (
	"fmt"
	"strings"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
)

// Bindings maps a variable-like expression to the number of frames between
// the innermost frame at its use site and the frame declaring it. An
// expression without an entry refers to the global frame.
type Bindings map[ast.NodeID]int

// Diagnostic is a static scoping error.
type Diagnostic struct {
	Message string
	Node    ast.Node
}

func (d Diagnostic) String() string {
	if d.Node == nil || d.Node.Span().IsZero() {
		return d.Message
	}
	start := d.Node.Span().Start
	return fmt.Sprintf("%d:%d: %s", start.Line, start.Column, d.Message)
}

// Error carries every diagnostic found in one resolve pass.
type Error struct {
	Diagnostics []Diagnostic
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 1 {
		return "resolve error: " + e.Diagnostics[0].String()
	}
	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%d resolve errors: %s", len(e.Diagnostics), strings.Join(parts, "; "))
}

// Resolver walks a program once, tracking lexical scopes.
type Resolver struct {
	bindings Bindings
	scopes   []scope
	function functionKind
	class    classKind
}

// New returns a resolver instance.
func New() *Resolver {
	return &Resolver{}
}

// Resolve is shorthand for New().Resolve(stmts).
func Resolve(stmts []ast.Statement) (Bindings, error) {
	return New().Resolve(stmts)
}

// Resolve computes bindings for stmts. When any diagnostic is found the
// error is a *Error and the program must not be run.
func (r *Resolver) Resolve(stmts []ast.Statement) (Bindings, error) {
	bindings, diagnostics := r.ResolveProgram(stmts)
	if len(diagnostics) > 0 {
		return nil, &Error{Diagnostics: diagnostics}
	}
	return bindings, nil
}

// ResolveProgram returns the bindings together with all diagnostics.
func (r *Resolver) ResolveProgram(stmts []ast.Statement) (Bindings, []Diagnostic) {
	r.bindings = make(Bindings)
	r.scopes = nil
	r.function = functionNone
	r.class = classNone

	var diagnostics []Diagnostic
	for _, stmt := range stmts {
		diagnostics = append(diagnostics, r.resolveStatement(stmt)...)
	}
	return r.bindings, diagnostics
}

func diag(node ast.Node, format string, args ...any) []Diagnostic {
	return []Diagnostic{{Message: fmt.Sprintf(format, args...), Node: node}}
}
