package driver

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AaronStGeorge/cat-lox/pkg/interpreter"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

func newTestSession(cfg *Config) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(cfg, &out, nil), &out
}

func TestRunSourcePrintsOutput(t *testing.T) {
	session, out := newTestSession(nil)
	err := session.RunSource("main.cat", `
class Greeter {
  init(name) { this.name = name; }
  greet() { return "hi " + this.name; }
}
print(Greeter("cat").greet());
`)
	require.NoError(t, err)
	require.Equal(t, "hi cat\n", out.String())
}

func TestRunSourceCollectsRuntimeErrorsAndContinues(t *testing.T) {
	session, out := newTestSession(nil)
	err := session.RunSource("main.cat", "print(1 / 0);\nprint(2);\nprint(-\"x\");\nprint(3);\n")

	var runErr *RunError
	require.True(t, errors.As(err, &runErr), "expected *RunError, got %T", err)
	require.Len(t, runErr.Errors, 2)
	require.Equal(t, "2\n3\n", out.String())

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	require.Equal(t, "main.cat", srcErr.Name)
}

func TestRunSourceRefusesProgramsWithResolveErrors(t *testing.T) {
	session, out := newTestSession(nil)
	err := session.RunSource("main.cat", "print(1);\nreturn 2;\n")

	var resErr *resolver.Error
	require.True(t, errors.As(err, &resErr), "expected *resolver.Error, got %T", err)
	require.Empty(t, out.String())
}

func TestRunSourceReportsSyntaxErrors(t *testing.T) {
	session, _ := newTestSession(nil)
	err := session.RunSource("main.cat", "print(1 +);")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected expression")
}

func TestEvalEchoesLoneExpressions(t *testing.T) {
	session, out := newTestSession(nil)

	val, ok, err := session.Eval("let a = 40;")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, val)

	val, ok, err = session.Eval("a + 2;")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, runtime.NumberValue{Val: 42}, val)

	_, ok, err = session.Eval("print(a);")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "40\n", out.String())
}

func TestEvalKeepsClosuresAcrossEntries(t *testing.T) {
	session, _ := newTestSession(nil)
	_, _, err := session.Eval(`
fn counter() {
  let n = 0;
  fn next() { n = n + 1; return n; }
  return next;
}
let c = counter();
`)
	require.NoError(t, err)
	for want := 1.0; want <= 3; want++ {
		val, ok, err := session.Eval("c();")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, runtime.NumberValue{Val: want}, val)
	}
}

func TestEvalReturnsRuntimeErrors(t *testing.T) {
	session, _ := newTestSession(nil)
	_, _, err := session.Eval("missing;")
	var rtErr *interpreter.RuntimeError
	require.True(t, errors.As(err, &rtErr), "expected *RuntimeError, got %T", err)
	require.Equal(t, "Undefined variable 'missing'", rtErr.Message)
}

func TestDebugModeDumpsTokensAndTree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	session, out := newTestSession(cfg)

	require.NoError(t, session.RunSource("main.cat", "print(1);"))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"1:1 identifier print",
		"1:6 (",
		"1:7 number 1",
		"1:8 )",
		"1:9 ;",
		"1:10 EOF",
		"(Expr (Call (Variable print) (Literal 1)))",
		"1",
	}, lines)
}

func TestRunFileAndPrelude(t *testing.T) {
	dir := t.TempDir()
	prelude := writeFile(t, dir, "prelude.cat", "fn double(x) { return x * 2; }\n")
	script := writeFile(t, dir, "main.cat", "print(double(21));\n")

	cfg := DefaultConfig()
	cfg.Prelude = []string{prelude}
	session, out := newTestSession(cfg)
	require.NoError(t, session.RunPrelude())
	require.NoError(t, session.RunFile(script))
	require.Equal(t, "42\n", out.String())

	err := session.RunFile(filepath.Join(dir, "missing.cat"))
	require.Error(t, err)
}

func TestSessionHonorsMaxCallDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCallDepth = 16
	session, _ := newTestSession(cfg)
	err := session.RunSource("main.cat", "fn f() { return f(); }\nf();\n")

	var rtErr *interpreter.RuntimeError
	require.True(t, errors.As(err, &rtErr))
	require.Contains(t, rtErr.Message, "stack overflow")
}
