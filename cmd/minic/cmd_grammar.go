package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/minic/minic/grammar"
)

func newGrammarCmd() *cobra.Command {
	var terminals bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of MiniC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !terminals {
				_, err := fmt.Fprint(out, grammar.Source())
				return err
			}

			g, err := grammar.Load()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, strings.Join(grammar.Terminals(g), " "))
			return err
		},
	}

	cmd.Flags().BoolVar(&terminals, "terminals", false, "list the keywords and punctuation instead of the grammar")

	return cmd
}
