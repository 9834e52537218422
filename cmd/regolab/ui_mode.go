package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode controls whether directory lints render the interactive progress
// display or plain per-file output.
type uiMode string

const (
	uiModeAuto uiMode = "auto" // TUI only when stdout is a terminal
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI decides for the lint command; piped output never gets the
// progress display so findings stay grep-able.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
