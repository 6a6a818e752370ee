package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"zinc/internal/lsp"
	"zinc/internal/version"
)

func newLSPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the Zinc language server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strict := a.cfg.Check.Strict
			if cmd.Flags().Changed("strict") {
				strict, _ = cmd.Flags().GetBool("strict")
			}
			server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
				Strict:  strict,
				Version: version.Version,
				Log:     cmd.ErrOrStderr(),
			})
			err := server.Run(cmd.Context())
			if errors.Is(err, lsp.ErrExit) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Bool("strict", false, "publish warnings for constructs that lower to nothing")
	return cmd
}
