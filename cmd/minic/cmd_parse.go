package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minic/format"
	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/parser"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a MiniC file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			src, err := readSource(filename, opts.cfg.Input.MaxBytes)
			if err != nil {
				return err
			}

			prog, diags := parser.ParseSource(src)
			log.Infof("%s: %d declarations, %d diagnostics", filename, len(prog.Decls), len(diags))

			out := cmd.OutOrStdout()
			f, err := format.ParseFormat(resolveFormat(outputFormat, opts))
			if err != nil {
				return err
			}
			switch f {
			case format.JSON:
				if err := format.NewASTJSONEncoder(out).Encode(prog, diags); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case format.YAML:
				if err := format.NewASTYAMLEncoder(out).Encode(prog, diags); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			default:
				if err := ast.Fprint(out, prog, includePositions); err != nil {
					return fmt.Errorf("print tree: %w", err)
				}
				p := newDiagnosticPrinter(cmd.ErrOrStderr(), opts.cfg.UseColor())
				if err := p.PrintAll(filename, diags); err != nil {
					return err
				}
			}

			if diags.HasErrors() {
				return errHasErrors
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (tree, json, yaml)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include token positions in tree output")

	return cmd
}
