package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minic/format"
	"github.com/dhamidi/minic/minic/diag"
	"github.com/dhamidi/minic/minic/lexer"
	"github.com/dhamidi/minic/minic/token"
)

func newTokensCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string
	var withDiagnostics bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a MiniC file and print the token stream",
		Long: `Tokenize a MiniC file and print the token stream.

By default the first lexical error stops tokenization. With --diagnostics
every lexical problem is reported and scanning continues past it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			src, err := readSource(filename, opts.cfg.Input.MaxBytes)
			if err != nil {
				return err
			}

			var toks []token.Token
			var diags diag.List
			if withDiagnostics {
				res := lexer.TokenizeWithDiagnostics(src)
				toks, diags = res.Tokens, res.Diagnostics
			} else {
				toks, err = lexer.Tokenize(src)
				if err != nil {
					var lexErr *lexer.Error
					if errors.As(err, &lexErr) {
						log.Debugf("lexical error in %s at %d:%d", filename, lexErr.Line, lexErr.Column)
					}
					return fmt.Errorf("tokenize %s: %w", filename, err)
				}
			}
			log.Infof("%s: %d tokens", filename, len(toks))

			out := cmd.OutOrStdout()
			f, err := format.ParseFormat(resolveFormat(outputFormat, opts))
			if err != nil {
				return err
			}
			switch f {
			case format.JSON:
				if err := format.NewTokenJSONEncoder(out).Encode(toks, diags); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case format.YAML:
				if err := format.NewTokenYAMLEncoder(out).Encode(toks, diags); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
			default:
				for _, tok := range toks {
					fmt.Fprintln(out, tok)
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
	cmd.Flags().BoolVar(&withDiagnostics, "diagnostics", false, "report all lexical errors instead of stopping at the first")

	return cmd
}
