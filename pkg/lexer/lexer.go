package lexer

import (
	"fmt"
	"strconv"
)

// Error is a lexical error at a 1-based source position. Incomplete is set
// when the input ended inside a token, so more input could still fix it.
type Error struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Lexer scans catbox source text into tokens.
type Lexer struct {
	src    string
	start  int
	cur    int
	line   int
	col    int
	tokens []Token

	tokLine int
	tokCol  int
}

func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Scan tokenizes the whole input. The returned slice always ends with EOF.
func Scan(src string) ([]Token, error) {
	return New(src).Scan()
}

func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.cur] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) addToken(tt TokenType, lit any) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokLine,
		Col:     l.tokCol,
		EndLine: l.line,
		EndCol:  l.col,
	}
	l.tokens = append(l.tokens, tok)
	return tok
}

func (l *Lexer) errAtStart(msg string) error {
	return &Error{Line: l.tokLine, Col: l.tokCol, Msg: msg}
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r', '\t', '\n':
			l.advance()
		case '/':
			if l.peekNext() != '/' {
				return
			}
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.start = l.cur
	l.tokLine = l.line
	l.tokCol = l.col

	if l.isAtEnd() {
		return l.addToken(EOF, nil), nil
	}

	ch := l.advance()
	switch ch {
	case '(':
		return l.addToken(LeftParen, nil), nil
	case ')':
		return l.addToken(RightParen, nil), nil
	case '{':
		return l.addToken(LeftBrace, nil), nil
	case '}':
		return l.addToken(RightBrace, nil), nil
	case ',':
		return l.addToken(Comma, nil), nil
	case '.':
		return l.addToken(Dot, nil), nil
	case ';':
		return l.addToken(Semicolon, nil), nil
	case '-':
		return l.addToken(Minus, nil), nil
	case '+':
		return l.addToken(Plus, nil), nil
	case '*':
		return l.addToken(Star, nil), nil
	case '/':
		return l.addToken(Slash, nil), nil
	case '!':
		if l.match('=') {
			return l.addToken(BangEqual, nil), nil
		}
		return l.addToken(Bang, nil), nil
	case '=':
		if l.match('=') {
			return l.addToken(EqualEqual, nil), nil
		}
		return l.addToken(Equal, nil), nil
	case '<':
		if l.match('=') {
			return l.addToken(LessEqual, nil), nil
		}
		return l.addToken(Less, nil), nil
	case '>':
		if l.match('=') {
			return l.addToken(GreaterEqual, nil), nil
		}
		return l.addToken(Greater, nil), nil
	case '"':
		return l.scanString()
	}

	switch {
	case isDigit(ch):
		return l.scanNumber()
	case isAlpha(ch):
		return l.scanIdentifier(), nil
	}
	return Token{}, l.errAtStart(fmt.Sprintf("unexpected character %q", ch))
}

func (l *Lexer) scanString() (Token, error) {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.isAtEnd() {
		return Token{}, &Error{Line: l.tokLine, Col: l.tokCol, Msg: "unterminated string", Incomplete: true}
	}
	l.advance()
	return l.addToken(String, l.src[l.start+1:l.cur-1]), nil
}

func (l *Lexer) scanNumber() (Token, error) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value, err := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	if err != nil {
		return Token{}, l.errAtStart(fmt.Sprintf("invalid number %q", l.src[l.start:l.cur]))
	}
	return l.addToken(Number, value), nil
}

func (l *Lexer) scanIdentifier() Token {
	for isAlphaNum(l.peek()) {
		l.advance()
	}
	text := l.src[l.start:l.cur]
	if tt, ok := keywords[text]; ok {
		return l.addToken(tt, nil)
	}
	return l.addToken(Identifier, nil)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
