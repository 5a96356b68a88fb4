package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/AaronStGeorge/cat-lox/pkg/driver"
	"github.com/AaronStGeorge/cat-lox/pkg/interpreter"
	"github.com/AaronStGeorge/cat-lox/pkg/parser"
	"github.com/AaronStGeorge/cat-lox/pkg/runtime"
)

const continuationPrompt = "... "

const replHelp = `:help   show this message
:vars   list global variables
:quit   leave the session (Ctrl-D also works)
`

var echoColor = color.New(color.FgCyan)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	session *driver.Session
	reader  lineReader
	prompt  string
	out     io.Writer
	errOut  io.Writer
}

func runRepl(cmd *cobra.Command) error {
	session, cfg, err := newSession(cmd)
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catbox %s (:help for commands)\n", Version)
	r := &repl{
		session: session,
		reader:  ln,
		prompt:  cfg.Prompt,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}
	r.run()

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

func historyPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}

func (r *repl) run() {
	for {
		src, ok := r.readEntry()
		if !ok {
			fmt.Fprintln(r.out, "exiting...")
			return
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		r.reader.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if strings.HasPrefix(trimmed, ":") {
			if quit := r.command(trimmed); quit {
				return
			}
			continue
		}

		val, echo, err := r.session.Eval(src)
		if err != nil {
			report(r.errOut, err)
			continue
		}
		if !echo {
			continue
		}
		if _, isNil := val.(runtime.NilValue); isNil {
			continue
		}
		fmt.Fprintln(r.out, echoColor.Sprint(interpreter.ValueToString(val)))
	}
}

// readEntry keeps reading lines while the parser reports the buffer as
// incomplete. Ctrl-C drops the buffer; end of input reports !ok.
func (r *repl) readEntry() (string, bool) {
	var b strings.Builder
	for {
		prompt := r.prompt
		if b.Len() > 0 {
			prompt = continuationPrompt
		}
		line, err := r.reader.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			fmt.Fprintln(r.errOut, err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := parser.Parse(src); parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

func (r *repl) command(line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		fmt.Fprintln(r.out, "exiting...")
		return true
	case ":help":
		fmt.Fprint(r.out, replHelp)
	case ":vars":
		global := r.session.Interpreter().GlobalEnvironment()
		values := global.Snapshot()
		for _, name := range global.Keys() {
			val, ok := values[name]
			if !ok {
				fmt.Fprintf(r.out, "%s = <uninitialized>\n", name)
				continue
			}
			fmt.Fprintf(r.out, "%s = %s\n", name, interpreter.ValueToString(val))
		}
	default:
		fmt.Fprintf(r.errOut, "unknown command %s (try :help)\n", fields[0])
	}
	return false
}
