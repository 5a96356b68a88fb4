package driver

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDescribeSyntaxError(t *testing.T) {
	withoutColor(t)
	src := "let a = 1;\nprint(a +);\n"
	err := NewSession(nil, nil, nil).RunSource("main.cat", src)

	want := "main.cat:2:10: syntax error: expected expression at \")\"\n" +
		"   1 | let a = 1;\n" +
		"   2 | print(a +);\n" +
		"     |          ^\n"
	require.Equal(t, want, Describe(err, "", ""))
}

func TestDescribeRuntimeErrors(t *testing.T) {
	withoutColor(t)
	src := "print(1 / 0);\nprint(nil + 1);"
	err := NewSession(nil, nil, nil).RunSource("main.cat", src)

	want := "main.cat:1:7: runtime error: Division by zero\n" +
		"   1 | print(1 / 0);\n" +
		"     |       ^\n" +
		"main.cat:2:7: runtime error: Operands of '+' must be two numbers or two strings, got nil and number\n" +
		"   1 | print(1 / 0);\n" +
		"   2 | print(nil + 1);\n" +
		"     |       ^\n"
	require.Equal(t, want, Describe(err, "", ""))
}

func TestDescribeEveryResolveDiagnostic(t *testing.T) {
	withoutColor(t)
	src := "return 1;\nthis;"
	err := NewSession(nil, nil, nil).RunSource("bad.cat", src)

	want := "bad.cat:1:1: resolve error: Can't return from top-level code\n" +
		"   1 | return 1;\n" +
		"     | ^\n" +
		"bad.cat:2:1: resolve error: Can't use 'this' outside of a class\n" +
		"   1 | return 1;\n" +
		"   2 | this;\n" +
		"     | ^\n"
	require.Equal(t, want, Describe(err, "", ""))
}

func TestDescribeUnlocatedError(t *testing.T) {
	withoutColor(t)
	require.Equal(t, "main.cat: error: boom\n", Describe(errors.New("boom"), "main.cat", ""))
	require.Equal(t, "", Describe(nil, "main.cat", ""))
}
