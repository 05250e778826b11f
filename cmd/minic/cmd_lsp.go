package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/minic/lsp"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting language server")
			return lsp.NewServer(version, opts.cfg).RunStdio()
		},
	}
}
