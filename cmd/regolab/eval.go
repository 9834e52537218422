package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HZMonama/regolab/internal/config"
	"github.com/HZMonama/regolab/internal/driver"
	"github.com/HZMonama/regolab/internal/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] policy.rego",
	Short: "Evaluate a policy with the external evaluator",
	Long:  `Eval runs the configured OPA binary over a policy, with optional input and data documents`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringP("input", "i", "", "input document (JSON file)")
	evalCmd.Flags().StringP("data", "d", "", "data document (JSON file)")
	evalCmd.Flags().String("query", "", "query to evaluate (default from regolab.toml)")
}

func runEval(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	dataPath, _ := cmd.Flags().GetString("data")
	query, _ := cmd.Flags().GetString("query")

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return err
	}
	if query == "" {
		query = cfg.Evaluator.Query
	}

	client := &eval.ExecClient{Bin: cfg.Evaluator.Bin, Query: query, Timeout: 30 * time.Second}

	raw, err := driver.Eval(cmd.Context(), client, args[0], inputPath, dataPath)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(raw))
	return nil
}
