package interpreter

import (
	"errors"
	"fmt"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
)

// RuntimeError aborts the top-level statement that raised it.
type RuntimeError struct {
	Message string
	Span    ast.Span
}

func (e *RuntimeError) Error() string {
	if e.Span.IsZero() {
		return "runtime error: " + e.Message
	}
	return fmt.Sprintf("runtime error at %d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

func newRuntimeError(node ast.Node, format string, args ...any) *RuntimeError {
	err := &RuntimeError{Message: fmt.Sprintf(format, args...)}
	if node != nil {
		err.Span = node.Span()
	}
	return err
}

// wrapError attaches node's location to err unless it already is a
// RuntimeError from deeper in the call.
func wrapError(node ast.Node, err error) error {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return err
	}
	return newRuntimeError(node, "%s", err.Error())
}
