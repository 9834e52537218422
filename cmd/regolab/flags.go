package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/diagfmt"
	"github.com/HZMonama/regolab/internal/source"
)

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

// reportDiagnostics pretty-prints the bag to stderr unless --quiet is set.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowPreview: true,
		ShowNotes:   true,
	})
}
