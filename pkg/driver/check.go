package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AaronStGeorge/cat-lox/pkg/parser"
	"github.com/AaronStGeorge/cat-lox/pkg/resolver"
)

// FileReport is the outcome of checking one file. Err is nil for a clean
// file and a *SourceError for syntax or resolve problems.
type FileReport struct {
	Path       string
	Statements int
	Err        error
}

// CheckFiles parses and resolves every path concurrently without running
// anything. Reports come back in the order of paths. Cancelling ctx marks
// the files not yet checked with ctx's error.
func CheckFiles(ctx context.Context, paths []string) []FileReport {
	reports := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, path := range paths {
		idx, path := idx, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				reports[idx] = FileReport{Path: path, Err: err}
				return nil
			}
			reports[idx] = checkFile(path)
			return nil
		})
	}
	_ = g.Wait()
	return reports
}

func checkFile(path string) FileReport {
	report := FileReport{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("read %s: %w", path, err)
		return report
	}
	src := string(data)
	stmts, err := parser.Parse(src)
	if err != nil {
		report.Err = &SourceError{Name: path, Source: src, Err: err}
		return report
	}
	report.Statements = len(stmts)
	if _, err := resolver.Resolve(stmts); err != nil {
		report.Err = &SourceError{Name: path, Source: src, Err: err}
	}
	return report
}
