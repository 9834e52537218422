package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/config"
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/diagfmt"
	"github.com/HZMonama/regolab/internal/driver"
	"github.com/HZMonama/regolab/internal/lint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] file.rego | dir",
	Short: "Lint Rego policies with the external linter",
	Long:  `Lint runs the configured linter over a file or every policy under a directory, caching reports by content hash`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().Int("jobs", 0, "parallel lint jobs for directories (0 = NumCPU)")
	lintCmd.Flags().Bool("no-cache", false, "bypass the on-disk report cache")
	lintCmd.Flags().String("ui", "auto", "progress display for directories (auto|on|off)")
}

func runLint(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return err
	}
	if jobs == 0 {
		jobs = cfg.Linter.Jobs
	}

	client := &lint.ExecClient{Bin: cfg.Linter.Bin, Timeout: 30 * time.Second}

	var cache *driver.DiskCache
	if !noCache && !cfg.Linter.NoCache {
		// a broken cache dir should not stop linting
		cache, _ = driver.OpenDiskCache("regolab")
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return lintDir(cmd, target, client, cfg, cache, jobs, mode, format)
	}
	return lintFile(cmd, target, client, cfg, cache, format)
}

func lintFile(cmd *cobra.Command, path string, client lint.Client, cfg *config.Config, cache *driver.DiskCache, format string) error {
	result, err := driver.Lint(cmd.Context(), path, client, cfg.Linter.SuppressedRules, cache)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Report); err != nil {
			return err
		}
	} else {
		bag := diag.NewBag(len(result.Diagnostics) + 1)
		for _, d := range result.Diagnostics {
			bag.Add(d)
		}
		bag.Sort()
		diagfmt.Pretty(os.Stdout, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stdout),
			ShowPreview: true,
		})
	}

	if len(result.Diagnostics) > 0 {
		return fmt.Errorf("%d findings in %s", len(result.Diagnostics), path)
	}
	return nil
}

func lintDir(cmd *cobra.Command, dir string, client lint.Client, cfg *config.Config, cache *driver.DiskCache, jobs int, mode uiMode, format string) error {
	var results []driver.LintDirResult
	var err error

	if shouldUseTUI(mode) && format != "json" {
		files, listErr := driver.ListRegoFiles(dir)
		if listErr != nil {
			return listErr
		}
		results, err = runLintDirWithUI(cmd.Context(), fmt.Sprintf("linting %s", dir), files, dir, client, cfg.Linter.SuppressedRules, cache, jobs)
	} else {
		results, err = driver.LintDir(cmd.Context(), dir, client, cfg.Linter.SuppressedRules, cache, jobs, nil)
	}
	if err != nil {
		return err
	}

	total := 0
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		total += len(res.Result.Diagnostics)
		if format == "json" {
			continue
		}
		if len(res.Result.Diagnostics) > 0 {
			bag := diag.NewBag(len(res.Result.Diagnostics) + 1)
			for _, d := range res.Result.Diagnostics {
				bag.Add(d)
			}
			bag.Sort()
			diagfmt.Pretty(os.Stdout, bag, res.Result.FileSet, diagfmt.PrettyOpts{
				Color:       useColor(cmd, os.Stdout),
				ShowPreview: true,
			})
		}
	}

	if format == "json" {
		type fileReport struct {
			Path   string       `json:"path"`
			Cached bool         `json:"cached"`
			Report *lint.Report `json:"report,omitempty"`
			Error  string       `json:"error,omitempty"`
		}
		out := make([]fileReport, 0, len(results))
		for _, res := range results {
			fr := fileReport{Path: res.Path}
			if res.Err != nil {
				fr.Error = res.Err.Error()
			} else {
				fr.Cached = res.Result.Cached
				fr.Report = res.Result.Report
			}
			out = append(out, fr)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d files failed to lint", failed)
	}
	if total > 0 {
		return fmt.Errorf("%d findings in %d files", total, len(results))
	}
	return nil
}
