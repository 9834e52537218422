package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/diagfmt"
	"github.com/HZMonama/regolab/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rego",
	Short: "Tokenize a Rego source file",
	Long:  `Tokenize breaks a Rego source file into its token stream, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
