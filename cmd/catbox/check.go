package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronStGeorge/cat-lox/pkg/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse and resolve files without running them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return err
		}
		failed := 0
		for _, rep := range driver.CheckFiles(cmd.Context(), args) {
			if rep.Err != nil {
				failed++
				report(cmd.ErrOrStderr(), rep.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d statements)\n", rep.Path, rep.Statements)
		}
		if failed > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files failed\n", failed, len(args))
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
