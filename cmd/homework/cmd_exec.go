package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/homework/internal/cli"
	"github.com/idilsaglam/homework/internal/ui"
)

func newExecCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one prompt command without the interactive loop",
		Long: `Runs a single prompt command and saves the result if it changed anything, e.g.

  homework exec ac Algebra ALG
  homework exec aa ALG problem set 3
  homework exec ra ALG 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			c, err := cli.Exec(s, strings.Join(args, " "))
			if err := userError(err); err != nil {
				return err
			}
			switch {
			case c.Op == cli.OpHelp:
				fmt.Fprintln(cmd.OutOrStdout(), cli.HelpText())
			case c.Mutates():
				ui.OK(cmd.OutOrStdout(), a.theme, "saved")
			}
			return nil
		},
	}
	// everything after the command token belongs to it, e.g. "ra ALG -1"
	cmd.Flags().SetInterspersed(false)
	return cmd
}
