package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/parser"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func outputLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// runStatements resolves and interprets stmts, returning printed lines and
// the per-statement runtime errors.
func runStatements(t *testing.T, interp *Interpreter, out *bytes.Buffer, stmts []ast.Statement) ([]string, []error) {
	t.Helper()
	bindings, err := resolver.Resolve(stmts)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	errs := interp.Interpret(stmts, bindings)
	return outputLines(out.String()), errs
}

func runSource(t *testing.T, src string, opts ...Option) ([]string, []error) {
	t.Helper()
	stmts, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var out bytes.Buffer
	interp := New(append([]Option{WithOutput(&out)}, opts...)...)
	return runStatements(t, interp, &out, stmts)
}

func mustRunSource(t *testing.T, src string, opts ...Option) []string {
	t.Helper()
	lines, errs := runSource(t, src, opts...)
	if len(errs) > 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	return lines
}

func evalExpr(t *testing.T, interp *Interpreter, expr ast.Expression) runtime.Value {
	t.Helper()
	bindings, err := resolver.Resolve([]ast.Statement{ast.Expr(expr)})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	val, err := interp.Evaluate(expr, bindings)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	return val
}

func runtimeErrorMessage(t *testing.T, err error) string {
	t.Helper()
	rtErr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
	return rtErr.Message
}
