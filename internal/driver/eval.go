package driver

import (
	"context"
	"encoding/json"
	"os"

	"github.com/HZMonama/regolab/internal/eval"
)

// Eval runs the external evaluator over a policy file with optional input
// and data documents. Empty paths mean "no document".
func Eval(ctx context.Context, client eval.Client, policyPath, inputPath, dataPath string) (json.RawMessage, error) {
	policy, err := os.ReadFile(policyPath)
	if err != nil {
		return nil, err
	}
	var input, data []byte
	if inputPath != "" {
		if input, err = os.ReadFile(inputPath); err != nil {
			return nil, err
		}
	}
	if dataPath != "" {
		if data, err = os.ReadFile(dataPath); err != nil {
			return nil, err
		}
	}
	return client.Eval(ctx, policy, input, data)
}
