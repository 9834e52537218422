package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/diagfmt"
	"github.com/HZMonama/regolab/internal/driver"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.rego",
	Short: "Map a Rego source file to style regions",
	Long:  `Highlight parses a file and prints the style tag for every token, the way an editor would color it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Highlight(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("highlight failed: %w", err)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		diagfmt.FormatRegionsPretty(os.Stdout, result.Regions, result.File)
		return nil
	case "json":
		return diagfmt.FormatRegionsJSON(os.Stdout, result.Regions, result.File)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
