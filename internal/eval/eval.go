// Package eval invokes the external policy evaluation engine. The core
// never interprets policies itself; it hands well-formed text to the
// engine and relays the JSON result.
package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Client evaluates a policy against input and data documents.
type Client interface {
	Eval(ctx context.Context, policy, input, data []byte) (json.RawMessage, error)
}

// ExecClient shells out to an opa-compatible binary.
type ExecClient struct {
	// Bin is the evaluator binary, "opa" by default.
	Bin string
	// Query is the evaluated expression, "data" by default.
	Query string
	// Timeout bounds one evaluation; 10s by default.
	Timeout time.Duration
}

func (c *ExecClient) bin() string {
	if c.Bin == "" {
		return "opa"
	}
	return c.Bin
}

func (c *ExecClient) query() string {
	if c.Query == "" {
		return "data"
	}
	return c.Query
}

func (c *ExecClient) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Timeout
}

// evalOutput is the engine's response envelope.
type evalOutput struct {
	Result []struct {
		Expressions []struct {
			Value json.RawMessage `json:"value"`
		} `json:"expressions"`
	} `json:"result"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Eval runs `<bin> eval --format json` over scratch copies of the three
// documents and unwraps the first expression value. input and data may be
// nil when the corresponding buffer is empty or unparsable.
func (c *ExecClient) Eval(ctx context.Context, policy, input, data []byte) (json.RawMessage, error) {
	dir, err := os.MkdirTemp("", "regolab-eval-*")
	if err != nil {
		return nil, fmt.Errorf("eval scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	policyPath := filepath.Join(dir, "policy.rego")
	if err := os.WriteFile(policyPath, policy, 0o600); err != nil {
		return nil, fmt.Errorf("eval scratch file: %w", err)
	}
	args := []string{"eval", "--format", "json", "-d", policyPath}

	if len(input) > 0 {
		inputPath := filepath.Join(dir, "input.json")
		if err := os.WriteFile(inputPath, input, 0o600); err != nil {
			return nil, fmt.Errorf("eval scratch file: %w", err)
		}
		args = append(args, "-i", inputPath)
	}
	if len(data) > 0 {
		dataPath := filepath.Join(dir, "data.json")
		if err := os.WriteFile(dataPath, data, 0o600); err != nil {
			return nil, fmt.Errorf("eval scratch file: %w", err)
		}
		args = append(args, "-d", dataPath)
	}
	args = append(args, c.query())

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, c.bin(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	var out evalOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("evaluator failed: %w: %s", runErr, stderr.String())
		}
		return nil, fmt.Errorf("evaluator output: %w", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("evaluation: %s", strings.Join(msgs, "; "))
	}
	if len(out.Result) == 0 || len(out.Result[0].Expressions) == 0 {
		return json.RawMessage("null"), nil
	}
	return out.Result[0].Expressions[0].Value, nil
}
