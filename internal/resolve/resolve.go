// Package resolve walks schema trees to answer completion and hover
// requests for dotted/indexed paths like input.identity.roles[_].name.
// Both entry points are pure over a schema.Context; failure to resolve is
// an empty answer, never an error.
package resolve

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HZMonama/regolab/internal/schema"
)

// Candidate is one completion suggestion. When the completion happens
// inside an array element, Label carries the `[_].` marker so consumers
// don't render invalid direct-property syntax.
type Candidate struct {
	Label  string
	Detail string
	Info   string
}

// HoverInfo describes the node a complete path lands on.
type HoverInfo struct {
	Type    string
	Example string
	Source  string
}

// Complete resolves a path prefix ending at the cursor and returns the
// completion candidates at that point. A bare or partial root word yields
// the input/data roots, filtered to those with a live schema.
func Complete(ctx *schema.Context, prefix string) []Candidate {
	prefix = strings.TrimSpace(prefix)
	if !strings.Contains(prefix, ".") && !strings.Contains(prefix, "[") {
		return rootCandidates(ctx, prefix)
	}

	segs := splitPath(prefix)
	last := segs[len(segs)-1]
	node := walk(ctx, segs[:len(segs)-1])
	if node == nil {
		return nil
	}
	// the final segment may carry index suffixes already resolved by the
	// editor text, e.g. `input.roles[_].`
	if last.name == "" && len(last.indexes) == 0 {
		return childCandidates(node, "")
	}
	if len(last.indexes) > 0 {
		node = applySegment(node, last)
		if node == nil {
			return nil
		}
		return childCandidates(node, "")
	}
	return childCandidates(node, last.name)
}

// Hover resolves a complete path, including explicit `[N]` or `[_]`
// markers, and reports the landing node's own type, example, and source.
func Hover(ctx *schema.Context, path string) *HoverInfo {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	node := walk(ctx, splitPath(path))
	if node == nil {
		return nil
	}
	return &HoverInfo{
		Type:    node.TypeDescription(),
		Example: formatExample(node.Example),
		Source:  node.Source,
	}
}

// walk resolves every segment in order, starting at the named root.
func walk(ctx *schema.Context, segs []segment) *schema.Node {
	if len(segs) == 0 {
		return nil
	}
	node := ctx.Root(segs[0].name)
	if node == nil {
		return nil
	}
	node = applyIndexes(node, segs[0].indexes)
	for _, seg := range segs[1:] {
		node = applySegment(node, seg)
		if node == nil {
			return nil
		}
	}
	return node
}

func applySegment(node *schema.Node, seg segment) *schema.Node {
	if seg.name != "" {
		// numeric segments address array elements directly
		if node.Type == schema.TypeArray && isNumeric(seg.name) {
			node = node.ArrayItem
		} else if node.Type == schema.TypeObject {
			node = node.Children[seg.name]
		} else {
			return nil
		}
		if node == nil {
			return nil
		}
	}
	return applyIndexes(node, seg.indexes)
}

func applyIndexes(node *schema.Node, indexes []string) *schema.Node {
	for range indexes {
		if node == nil || node.Type != schema.TypeArray {
			return nil
		}
		node = node.ArrayItem
	}
	return node
}

// childCandidates lists an object's children, or an array-of-object's
// element children behind the `[_].` marker.
func childCandidates(node *schema.Node, filter string) []Candidate {
	marker := ""
	if node.Type == schema.TypeArray {
		if node.ArrayItem == nil || node.ArrayItem.Type != schema.TypeObject {
			return nil
		}
		marker = "[_]."
		node = node.ArrayItem
	}
	if node.Type != schema.TypeObject {
		return nil
	}

	candidates := make([]Candidate, 0, len(node.Children))
	for _, key := range node.Keys() {
		if filter != "" && !strings.HasPrefix(key, filter) {
			continue
		}
		child := node.Children[key]
		candidates = append(candidates, Candidate{
			Label:  marker + key,
			Detail: child.TypeDescription(),
			Info:   formatExample(child.Example),
		})
	}
	return candidates
}

// rootCandidates answers a partial bare word with whichever of input/data
// currently has a schema.
func rootCandidates(ctx *schema.Context, prefix string) []Candidate {
	var candidates []Candidate
	for _, root := range []string{"data", "input"} {
		if !strings.HasPrefix(root, prefix) {
			continue
		}
		node := ctx.Root(root)
		if node == nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Label:  root,
			Detail: node.TypeDescription(),
			Info:   formatExample(node.Example),
		})
	}
	return candidates
}

func formatExample(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []string:
		return "{" + strings.Join(val, ", ") + "}"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
