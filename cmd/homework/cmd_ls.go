package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/homework/internal/cli"
	"github.com/idilsaglam/homework/internal/ui"
)

func newLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Print all classes and assignments once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.render(s))
			return nil
		},
	}
}

func (a *app) render(s *cli.Session) string {
	return ui.RenderStore(a.theme, s.Store.Entries())
}
