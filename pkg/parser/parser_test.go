package parser_test

import (
	"errors"
	"testing"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/parser"
)

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	stmts, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected a single statement, got %d", len(stmts))
	}
	return stmts[0]
}

func TestParseExpressionPrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 * 2 + -3 >= 4 != true;", "(Expr (Binary != (Binary >= (Binary + (Binary * (Literal 1) (Literal 2)) (Unary - (Literal 3))) (Literal 4)) (Literal true)))"},
		{"1 * (2 + -3);", "(Expr (Binary * (Literal 1) (Grouping (Binary + (Literal 2) (Unary - (Literal 3))))))"},
		{"!nil == true;", "(Expr (Binary == (Unary ! (Literal nil)) (Literal true)))"},
		{"1 - 2 - 3;", "(Expr (Binary - (Binary - (Literal 1) (Literal 2)) (Literal 3)))"},
		{"a or b and c;", "(Expr (Logical or (Variable a) (Logical and (Variable b) (Variable c))))"},
		{"a = b = 1;", "(Expr (Assign a (Assign b (Literal 1))))"},
		{"obj.field.inner = f(1, \"s\")(2);", "(Expr (Set (Get (Variable obj) field) inner (Call (Call (Variable f) (Literal 1) (Literal \"s\")) (Literal 2))))"},
		{"super.speak();", "(Expr (Call (Super speak)))"},
	}
	for _, tc := range cases {
		got := ast.Print(parseOne(t, tc.src))
		if got != tc.want {
			t.Fatalf("Parse(%q)\n got: %s\nwant: %s", tc.src, got, tc.want)
		}
	}
}

func TestParseDeclarationsAndStatements(t *testing.T) {
	src := `
let a;
let b = 2;
fn add(x, y) { return x + y; }
class B < A {
  init(v) { this.v = v; }
  get() { return; }
}
if (a) print(a); else { b = 3; }
while (b > 1) b = b - 1;
`
	stmts, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := "(Let a)\n" +
		"(Let b (Literal 2))\n" +
		"(Fn add (x y) (Return (Binary + (Variable x) (Variable y))))\n" +
		"(Class B < A (Fn init (v) (Expr (Set (This) v (Variable v)))) (Fn get () (Return)))\n" +
		"(If (Variable a) (Expr (Call (Variable print) (Variable a))) (Block (Expr (Assign b (Literal 3)))))\n" +
		"(While (Binary > (Variable b) (Literal 1)) (Expr (Assign b (Binary - (Variable b) (Literal 1)))))\n"
	if got := ast.PrintProgram(stmts); got != want {
		t.Fatalf("unexpected program\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseAttachesSpans(t *testing.T) {
	stmt := parseOne(t, "let total = 1 +\n  22;")
	decl, ok := stmt.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", stmt)
	}
	if decl.Span().Start != (ast.Position{Line: 1, Column: 1}) {
		t.Fatalf("unexpected declaration start %+v", decl.Span().Start)
	}
	if decl.Name.Span().Start != (ast.Position{Line: 1, Column: 5}) {
		t.Fatalf("unexpected name span %+v", decl.Name.Span())
	}
	bin := decl.Initializer.(*ast.BinaryExpression)
	span := bin.Span()
	if span.Start != (ast.Position{Line: 1, Column: 13}) || span.End != (ast.Position{Line: 2, Column: 5}) {
		t.Fatalf("unexpected binary span %+v", span)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.Parse("1 + 2 = 3;")
	var parseErr *parser.Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *parser.Error, got %v", err)
	}
	if parseErr.Incomplete || parseErr.Msg != "invalid assignment target" {
		t.Fatalf("unexpected error %+v", parseErr)
	}
	if parseErr.Line != 1 || parseErr.Col != 7 {
		t.Fatalf("unexpected position %d:%d", parseErr.Line, parseErr.Col)
	}
}

func TestParseReportsIncompleteInput(t *testing.T) {
	for _, src := range []string{
		"fn f() {",
		"let a = (1 +",
		"print(1)",
		"let s = \"open",
		"class A {",
	} {
		_, err := parser.Parse(src)
		if err == nil {
			t.Fatalf("expected error for %q", src)
		}
		if !parser.IsIncomplete(err) {
			t.Fatalf("expected %q to be incomplete, got %v", src, err)
		}
	}
}

func TestParseErrorIsNotIncompleteMidInput(t *testing.T) {
	_, err := parser.Parse("let = 1;")
	if err == nil {
		t.Fatalf("expected error")
	}
	if parser.IsIncomplete(err) {
		t.Fatalf("did not expect incomplete error: %v", err)
	}
	var parseErr *parser.Error
	if !errors.As(err, &parseErr) || parseErr.Col != 5 {
		t.Fatalf("unexpected error %v", err)
	}
}
