package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HZMonama/regolab/internal/driver"
	"github.com/HZMonama/regolab/internal/lint"
	"github.com/HZMonama/regolab/internal/ui"
)

type lintDirOutcome struct {
	results []driver.LintDirResult
	err     error
}

// runLintDirWithUI runs a bulk lint behind a Bubble Tea progress display.
func runLintDirWithUI(ctx context.Context, title string, files []string, dir string, client lint.Client, suppressed []string, cache *driver.DiskCache, jobs int) ([]driver.LintDirResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan lintDirOutcome, 1)

	go func() {
		results, err := driver.LintDir(ctx, dir, client, suppressed, cache, jobs, func(res driver.LintDirResult) {
			ev := ui.Event{Path: res.Path, Status: ui.StatusDone}
			if res.Err != nil {
				ev.Status = ui.StatusError
			} else if res.Result != nil && res.Result.Report != nil {
				ev.Findings = len(res.Result.Report.Violations)
			}
			events <- ev
		})
		outcomeCh <- lintDirOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
