package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AaronStGeorge/cat-lox/pkg/ast"
	"github.com/AaronStGeorge/cat-lox/pkg/interpreter"
	"github.com/AaronStGeorge/cat-lox/pkg/lexer"
	"github.com/AaronStGeorge/cat-lox/pkg/parser"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

// SourceError ties a pipeline failure to the source text it came from so
// Describe can point into it.
type SourceError struct {
	Name   string
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// RunError collects the runtime errors of the top-level statements that
// failed while the rest of the program kept running.
type RunError struct {
	Errors []error
}

func (e *RunError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	parts := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("%d statements failed: %s", len(e.Errors), strings.Join(parts, "; "))
}

func (e *RunError) Unwrap() []error { return e.Errors }

// Session runs source text through lex, parse, resolve and interpret
// against one persistent interpreter.
type Session struct {
	interp *interpreter.Interpreter
	config *Config
	logger *slog.Logger
	out    io.Writer
}

// NewSession builds a session writing program output to out. A nil config
// means DefaultConfig and a nil logger discards.
func NewSession(cfg *Config, out io.Writer, logger *slog.Logger, opts ...interpreter.Option) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	base := []interpreter.Option{
		interpreter.WithOutput(out),
		interpreter.WithLogger(logger),
		interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
	}
	return &Session{
		interp: interpreter.New(append(base, opts...)...),
		config: cfg,
		logger: logger,
		out:    out,
	}
}

// Interpreter exposes the underlying interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// RunPrelude runs every configured prelude file in order, stopping at the
// first failure.
func (s *Session) RunPrelude() error {
	for _, path := range s.config.Prelude {
		if err := s.RunFile(path); err != nil {
			return err
		}
	}
	return nil
}

// RunFile reads path and runs it.
func (s *Session) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return s.RunSource(path, string(data))
}

// RunSource runs src. Syntax and resolve errors stop the program before
// any statement executes; runtime errors are gathered into a *RunError.
// Every failure is returned as a *SourceError.
func (s *Session) RunSource(name, src string) error {
	stmts, bindings, err := s.prepare(name, src)
	if err != nil {
		return err
	}
	if errs := s.interp.Interpret(stmts, bindings); len(errs) > 0 {
		return &SourceError{Name: name, Source: src, Err: &RunError{Errors: errs}}
	}
	return nil
}

// Eval runs one REPL entry. When the entry is a lone expression statement
// its value is returned with ok set.
func (s *Session) Eval(src string) (runtime.Value, bool, error) {
	stmts, bindings, err := s.prepare("", src)
	if err != nil {
		return nil, false, err
	}
	if len(stmts) == 1 {
		if exprStmt, isExpr := stmts[0].(*ast.ExpressionStatement); isExpr {
			val, err := s.interp.Evaluate(exprStmt.Expression, bindings)
			if err != nil {
				return nil, false, &SourceError{Source: src, Err: err}
			}
			return val, true, nil
		}
	}
	if errs := s.interp.Interpret(stmts, bindings); len(errs) > 0 {
		return nil, false, &SourceError{Source: src, Err: &RunError{Errors: errs}}
	}
	return nil, false, nil
}

func (s *Session) prepare(name, src string) ([]ast.Statement, resolver.Bindings, error) {
	wrap := func(err error) error { return &SourceError{Name: name, Source: src, Err: err} }

	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, nil, wrap(err)
	}
	s.logger.Debug("scanned", "source", name, "tokens", len(toks))
	if s.config.Debug {
		for _, tok := range toks {
			fmt.Fprintln(s.out, tok)
		}
	}

	stmts, err := parser.ParseTokens(toks)
	if err != nil {
		return nil, nil, wrap(err)
	}
	s.logger.Debug("parsed", "source", name, "statements", len(stmts))
	if s.config.Debug && len(stmts) > 0 {
		fmt.Fprint(s.out, ast.PrintProgram(stmts))
	}

	bindings, diagnostics := resolver.New().ResolveProgram(stmts)
	if len(diagnostics) > 0 {
		s.logger.Debug("resolve failed", "source", name, "diagnostics", len(diagnostics))
		return nil, nil, wrap(&resolver.Error{Diagnostics: diagnostics})
	}
	s.logger.Debug("resolved", "source", name, "bindings", len(bindings))
	return stmts, bindings, nil
}
