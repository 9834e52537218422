package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Client is the external linter. Lint analyzes one policy source and
// returns its report; the context bounds the subprocess lifetime.
type Client interface {
	Lint(ctx context.Context, src []byte) (*Report, error)
}

// ExecClient shells out to a regal-compatible linter binary.
type ExecClient struct {
	// Bin is the linter binary, "regal" by default.
	Bin string
	// Timeout bounds one lint run; 10s by default.
	Timeout time.Duration
}

func (c *ExecClient) bin() string {
	if c.Bin == "" {
		return "regal"
	}
	return c.Bin
}

func (c *ExecClient) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Timeout
}

// Lint writes src to a scratch file and runs `<bin> lint --format json`.
// The linter exits nonzero when it finds violations, so the exit code is
// ignored whenever stdout parses as a report.
func (c *ExecClient) Lint(ctx context.Context, src []byte) (*Report, error) {
	dir, err := os.MkdirTemp("", "regolab-lint-*")
	if err != nil {
		return nil, fmt.Errorf("lint scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "policy.rego")
	if err := os.WriteFile(path, src, 0o600); err != nil {
		return nil, fmt.Errorf("lint scratch file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, c.bin(), "lint", "--format", "json", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	var rep Report
	if err := json.Unmarshal(stdout.Bytes(), &rep); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("linter failed: %w: %s", runErr, stderr.String())
		}
		return nil, fmt.Errorf("linter output: %w", err)
	}
	return &rep, nil
}
