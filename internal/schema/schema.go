// Package schema infers a typed tree from an arbitrary JSON document. The
// tree drives completion and hover without a formal JSON Schema; it is
// rebuilt wholesale on every change to the backing text.
package schema

import (
	"encoding/json"
	"sort"
)

// Type is the inferred JSON type of a node.
type Type uint8

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

var typeNames = [...]string{
	TypeNull:    "null",
	TypeBoolean: "boolean",
	TypeNumber:  "number",
	TypeString:  "string",
	TypeArray:   "array",
	TypeObject:  "object",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(?)"
}

// Node is one inferred schema node. Children is set only for objects;
// ArrayItem only for non-empty arrays, inferred from the first element.
type Node struct {
	Type      Type
	Children  map[string]*Node
	ArrayItem *Node
	// Example is a representative value: the literal for scalars, up to
	// five key names for objects.
	Example any
	// Source labels where the schema came from, "input" or "data".
	Source string
}

// TypeDescription renders the node type for hover; arrays with a known
// item type render as array<itemType>.
func (n *Node) TypeDescription() string {
	if n == nil {
		return ""
	}
	if n.Type == TypeArray && n.ArrayItem != nil {
		return "array<" + n.ArrayItem.TypeDescription() + ">"
	}
	return n.Type.String()
}

// Build strips comments, parses the remainder as JSON, and converts it to
// a schema tree. Returns nil on any parse failure; callers treat a missing
// schema as a normal state while the user is mid-edit.
func Build(raw []byte, sourceLabel string) *Node {
	clean := StripComments(raw)
	var v any
	if err := json.Unmarshal(clean, &v); err != nil {
		return nil
	}
	return fromValue(v, sourceLabel)
}

const maxExampleKeys = 5

func fromValue(v any, label string) *Node {
	n := &Node{Source: label}
	switch val := v.(type) {
	case nil:
		n.Type = TypeNull
	case bool:
		n.Type = TypeBoolean
		n.Example = val
	case float64:
		n.Type = TypeNumber
		n.Example = val
	case string:
		n.Type = TypeString
		n.Example = val
	case []any:
		n.Type = TypeArray
		if len(val) > 0 {
			n.ArrayItem = fromValue(val[0], label)
		}
	case map[string]any:
		n.Type = TypeObject
		n.Children = make(map[string]*Node, len(val))
		keys := make([]string, 0, len(val))
		for k, child := range val {
			n.Children[k] = fromValue(child, label)
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > maxExampleKeys {
			keys = keys[:maxExampleKeys]
		}
		n.Example = keys
	}
	return n
}

// Keys returns the object's child names in sorted order; nil otherwise.
func (n *Node) Keys() []string {
	if n == nil || n.Type != TypeObject {
		return nil
	}
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Context holds the two named roots addressable from policy source. A nil
// root means the backing text currently fails to parse.
type Context struct {
	Input *Node
	Data  *Node
}

// Root returns the schema tree for the given root name, nil when unknown
// or unavailable.
func (c *Context) Root(name string) *Node {
	if c == nil {
		return nil
	}
	switch name {
	case "input":
		return c.Input
	case "data":
		return c.Data
	}
	return nil
}
