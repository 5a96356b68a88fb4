package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Type)
	}
	return out
}

func TestScanOperatorsAndPunctuation(t *testing.T) {
	toks, err := Scan("(){},.;-+/*! != = == > >= < <=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Semicolon,
		Minus, Plus, Slash, Star, Bang, BangEqual, Equal, EqualEqual,
		Greater, GreaterEqual, Less, LessEqual, EOF,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, err := Scan("class Foo < Bar { init() { this.x = super.y; } } let fn_1 = nil;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{
		Class, Identifier, Less, Identifier, LeftBrace,
		Identifier, LeftParen, RightParen, LeftBrace,
		This, Dot, Identifier, Equal, Super, Dot, Identifier, Semicolon,
		RightBrace, RightBrace,
		Let, Identifier, Equal, Nil, Semicolon, EOF,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s", diff)
	}
	if toks[1].Lexeme != "Foo" {
		t.Fatalf("expected identifier lexeme Foo, got %q", toks[1].Lexeme)
	}
}

func TestScanLiterals(t *testing.T) {
	toks, err := Scan(`12 3.5 "hi there" 7.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != Number || toks[0].Literal.(float64) != 12 {
		t.Fatalf("unexpected first token %#v", toks[0])
	}
	if toks[1].Literal.(float64) != 3.5 {
		t.Fatalf("unexpected second token %#v", toks[1])
	}
	if toks[2].Type != String || toks[2].Literal.(string) != "hi there" {
		t.Fatalf("unexpected string token %#v", toks[2])
	}
	// a trailing dot is not part of the number
	if toks[3].Lexeme != "7" || toks[4].Type != Dot {
		t.Fatalf("unexpected tail tokens %#v %#v", toks[3], toks[4])
	}
}

func TestScanTracksPositionsAndSkipsComments(t *testing.T) {
	src := "let a = 1; // trailing\n  a = \"x\ny\";\nprint(a);"
	toks, err := Scan(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// second line starts with `a`
	a := toks[5]
	if a.Lexeme != "a" || a.Line != 2 || a.Col != 3 {
		t.Fatalf("unexpected token %#v", a)
	}
	str := toks[7]
	if str.Type != String || str.Line != 2 || str.EndLine != 3 {
		t.Fatalf("unexpected multi-line string token %#v", str)
	}
	call := toks[9]
	if call.Lexeme != "print" || call.Line != 4 || call.Col != 1 {
		t.Fatalf("unexpected token %#v", call)
	}
}

func TestUnterminatedStringIsIncomplete(t *testing.T) {
	_, err := Scan("let s = \"abc")
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !lexErr.Incomplete {
		t.Fatalf("expected incomplete error, got %v", lexErr)
	}
	if lexErr.Line != 1 || lexErr.Col != 9 {
		t.Fatalf("unexpected position %d:%d", lexErr.Line, lexErr.Col)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Scan("let a = 1 % 2;")
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if lexErr.Incomplete || lexErr.Col != 11 {
		t.Fatalf("unexpected error %+v", lexErr)
	}
}
