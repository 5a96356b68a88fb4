package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AaronStGeorge/cat-lox/pkg/driver"
)

var (
	configPath string
	debugMode  bool
	logLevel   string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "catbox [file]",
	Short: "catbox runs scripts or starts an interactive session",
	Long: `catbox is a tree-walking interpreter for a small dynamically typed
language with closures, classes and single inheritance.

With a file argument it runs the file; without one it starts the REPL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runScript(cmd, args[0])
		}
		return runRepl(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to catbox.yml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Print tokens and the syntax tree before running")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output: auto, always, never")
}

// loadConfig merges defaults, catbox.yml, .env and CATBOX_* variables, and
// finally the command line flags.
func loadConfig(cmd *cobra.Command) (*driver.Config, error) {
	if err := driver.LoadEnv(".env"); err != nil {
		return nil, err
	}
	path := configPath
	if path == "" {
		found, err := driver.FindConfig(".")
		switch {
		case err == nil:
			path = found
		case errors.Is(err, driver.ErrConfigNotFound):
		default:
			return nil, err
		}
	}

	cfg := driver.DefaultConfig()
	if path != "" {
		loaded, err := driver.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugMode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("color") {
		cfg.Color = driver.ColorMode(colorMode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	color.NoColor = !cfg.UseColor(!color.NoColor)
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*driver.Session, *driver.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())
	logger.Debug("config loaded", "path", cfg.Path, "prelude", len(cfg.Prelude))
	session := driver.NewSession(cfg, cmd.OutOrStdout(), logger)
	if err := session.RunPrelude(); err != nil {
		report(cmd.ErrOrStderr(), err)
		return nil, nil, errReported
	}
	return session, cfg, nil
}

func report(w io.Writer, err error) {
	fmt.Fprint(w, driver.Describe(err, "", ""))
}
