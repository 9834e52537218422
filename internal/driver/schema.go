package driver

import (
	"os"

	"github.com/HZMonama/regolab/internal/schema"
)

// BuildSchema infers a schema tree from a JSON document on disk. A nil
// node with a nil error means the document does not parse as JSON.
func BuildSchema(path, label string) (*schema.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return schema.Build(raw, label), nil
}
