package ast

import "testing"

func TestPrintGroupedArithmetic(t *testing.T) {
	expr := Group(Bin(OpPlus, Num(1), Un(OpMinus, Num(2))))
	got := Print(expr)
	want := "(Grouping (Binary + (Literal 1) (Unary - (Literal 2))))"
	if got != want {
		t.Fatalf("Print = %q, want %q", got, want)
	}
}

func TestPrintClassDeclaration(t *testing.T) {
	class := Class("B", "A",
		Fn("init", []string{"x"},
			Expr(Set(This(), "x", Var("x"))),
		),
		Fn("speak", nil,
			Ret(CallExpr(Super("speak"))),
		),
	)
	got := Print(class)
	want := "(Class B < A (Fn init (x) (Expr (Set (This) x (Variable x)))) (Fn speak () (Return (Call (Super speak)))))"
	if got != want {
		t.Fatalf("Print = %q, want %q", got, want)
	}
}

func TestPrintProgramOneStatementPerLine(t *testing.T) {
	prog := []Statement{
		Let("a", nil),
		While(Bin(OpGreater, Var("a"), Num(1)), Block(Expr(Assign("a", Str("x"))))),
		If(And(Bool(true), Nil()), Ret(nil), nil),
	}
	got := PrintProgram(prog)
	want := "(Let a)\n" +
		"(While (Binary > (Variable a) (Literal 1)) (Block (Expr (Assign a (Literal \"x\")))))\n" +
		"(If (Logical and (Literal true) (Literal nil)) (Return))\n"
	if got != want {
		t.Fatalf("PrintProgram = %q, want %q", got, want)
	}
}

func TestExpressionIDsAreUnique(t *testing.T) {
	a := Var("a")
	b := Var("a")
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids, both were %d", a.ID())
	}
	if a.ID() == 0 {
		t.Fatalf("expected non-zero id")
	}
}

func TestWithSpanAttachesLocation(t *testing.T) {
	span := Span{Start: Position{Line: 2, Column: 5}, End: Position{Line: 2, Column: 9}}
	v := WithSpan(Var("x"), span)
	if v.Span() != span {
		t.Fatalf("span = %+v, want %+v", v.Span(), span)
	}
	if !Num(1).Span().IsZero() {
		t.Fatalf("expected programmatic node to carry a zero span")
	}
}
