package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a script file",
	Long: `Run lexes, parses and resolves the whole file before executing it.
A statement that fails at runtime is reported and the next one still runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, path string) error {
	session, _, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := session.RunFile(path); err != nil {
		report(cmd.ErrOrStderr(), err)
		return errReported
	}
	return nil
}
