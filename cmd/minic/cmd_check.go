package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/minic/minic/parser"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report lexical and syntax errors in MiniC files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newDiagnosticPrinter(cmd.OutOrStdout(), opts.cfg.UseColor())

			errs := 0
			for _, filename := range args {
				src, err := readSource(filename, opts.cfg.Input.MaxBytes)
				if err != nil {
					return err
				}
				_, diags := parser.ParseSource(src)
				log.Debugf("%s: %d diagnostics", filename, len(diags))
				if err := p.PrintAll(filename, diags); err != nil {
					return err
				}
				errs += len(diags.Errors())
			}

			if err := p.Summary(len(args), errs); err != nil {
				return err
			}
			if errs > 0 {
				return errHasErrors
			}
			return nil
		},
	}
}
