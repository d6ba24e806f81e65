package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/homework/internal/export"
	"github.com/idilsaglam/homework/internal/ui"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export classes to xlsx, yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return export.Write(cmd.OutOrStdout(), s.Store, format)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := export.Write(f, s.Store, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			ui.OK(cmd.ErrOrStderr(), a.theme, fmt.Sprintf("exported %d classes to %s", s.Store.Len(), out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatXLSX, "Output format: xlsx, yaml or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
