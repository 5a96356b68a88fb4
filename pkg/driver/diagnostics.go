package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/AaronStGeorge/cat-lox/pkg/interpreter"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
	"github.com/AaronStGeorge/cat-lox/pkg/parser"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	gutterColor = color.New(color.FgBlue)
)

// Describe renders err against the source it came from. Each located
// problem becomes "name:line:col: kind: message" followed by the offending
// line and a caret. Colors follow color.NoColor.
func Describe(err error, name, src string) string {
	if err == nil {
		return ""
	}
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return Describe(srcErr.Err, srcErr.Name, srcErr.Source)
	}

	var b strings.Builder
	var (
		lexErr   *lexer.Error
		parseErr *parser.Error
		resErr   *resolver.Error
		rtErr    *interpreter.RuntimeError
		runErr   *RunError
	)
	switch {
	case errors.As(err, &lexErr):
		writeLocated(&b, src, name, "syntax error", lexErr.Line, lexErr.Col, lexErr.Msg)
	case errors.As(err, &parseErr):
		writeLocated(&b, src, name, "syntax error", parseErr.Line, parseErr.Col, parseErr.Msg)
	case errors.As(err, &resErr):
		for _, d := range resErr.Diagnostics {
			line, col := 0, 0
			if d.Node != nil {
				start := d.Node.Span().Start
				line, col = start.Line, start.Column
			}
			writeLocated(&b, src, name, "resolve error", line, col, d.Message)
		}
	case errors.As(err, &runErr):
		for _, e := range runErr.Errors {
			b.WriteString(Describe(e, name, src))
		}
	case errors.As(err, &rtErr):
		writeLocated(&b, src, name, "runtime error", rtErr.Span.Start.Line, rtErr.Span.Start.Column, rtErr.Message)
	default:
		if name != "" {
			fmt.Fprintf(&b, "%s: ", name)
		}
		b.WriteString(headerColor.Sprint("error"))
		fmt.Fprintf(&b, ": %s\n", err)
	}
	return b.String()
}

func writeLocated(b *strings.Builder, src, name, kind string, line, col int, msg string) {
	prefix := name
	if line > 0 {
		if prefix != "" {
			prefix += ":"
		}
		prefix += fmt.Sprintf("%d:%d", line, col)
	}
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(": ")
	}
	b.WriteString(headerColor.Sprint(kind))
	fmt.Fprintf(b, ": %s\n", msg)
	if line > 0 {
		writeSnippet(b, src, line, col)
	}
}

func writeSnippet(b *strings.Builder, src string, line, col int) {
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return
	}
	if col < 1 {
		col = 1
	}
	if line > 1 {
		fmt.Fprintf(b, "%s %s\n", gutterColor.Sprintf("%4d |", line-1), lines[line-2])
	}
	fmt.Fprintf(b, "%s %s\n", gutterColor.Sprintf("%4d |", line), lines[line-1])
	fmt.Fprintf(b, "%s %s^\n", gutterColor.Sprint("     |"), strings.Repeat(" ", col-1))
}
