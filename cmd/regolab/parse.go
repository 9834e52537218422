package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/diagfmt"
	"github.com/HZMonama/regolab/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.rego",
	Short: "Parse a Rego source file",
	Long:  `Parse builds a tolerant syntax tree and reports diagnostics without stopping at the first error`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("no-tree", false, "report diagnostics only, skip the tree dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noTree, _ := cmd.Flags().GetBool("no-tree")
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)
	if noTree {
		if result.Bag.HasErrors() {
			return fmt.Errorf("%d problems found", result.Bag.Len())
		}
		return nil
	}

	switch format {
	case "pretty":
		diagfmt.FormatTreePretty(os.Stdout, result.Result.Tree, result.Result.Script)
		return nil
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Result.Tree, result.Result.Script)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
