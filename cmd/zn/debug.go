package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zinc/internal/diagfmt"
	"zinc/internal/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.zn>",
		Short: "Print the token stream of a Zinc source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			result, err := driver.Tokenize(args[0])
			if err != nil {
				return fmt.Errorf("tokenization failed: %w", err)
			}
			// ошибки лексера в stderr, токены всё равно печатаем
			if result.Bag.HasErrors() {
				diags := result.Bag.Locate(result.FileSet)
				if err := diagfmt.PrettyAll(cmd.ErrOrStderr(), diags, result.FileSet, a.prettyOpts()); err != nil {
					return err
				}
			}
			switch format {
			case "pretty":
				return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
			case "json":
				return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [flags] <file.zn>",
		Short: "Print the parse tree of a Zinc source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			result, err := driver.Parse(args[0], maxDepth)
			if err != nil {
				return fmt.Errorf("parsing failed: %w", err)
			}
			if result.Diag != nil {
				if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Diag, result.FileSet, a.prettyOpts()); err != nil {
					return err
				}
				return errReported
			}
			switch format {
			case "pretty":
				return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Tree)
			case "json":
				return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Tree)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("max-depth", 0, "parser nesting limit (0=default)")
	return cmd
}

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the Zinc grammar rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return diagfmt.FormatGrammar(cmd.OutOrStdout())
		},
	}
}
