package schema_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/HZMonama/regolab/internal/schema"
)

func TestStripCommentsKeepsStringsIntact(t *testing.T) {
	src := []byte(`{
	// line comment
	"url": "http://example.com/path", /* block */
	"note": "a // not a comment /* still not */"
}`)
	clean := string(schema.StripComments(src))

	if want := `"http://example.com/path"`; !strings.Contains(clean, want) {
		t.Errorf("string literal was mangled:\n%s", clean)
	}
	if want := `"a // not a comment /* still not */"`; !strings.Contains(clean, want) {
		t.Errorf("comment markers inside string were stripped:\n%s", clean)
	}
	if strings.Contains(clean, "line comment") || strings.Contains(clean, "block") {
		t.Errorf("comments survived stripping:\n%s", clean)
	}
	if len(clean) != len(src) {
		t.Errorf("stripping changed length %d -> %d; offsets must stay stable", len(src), len(clean))
	}
}

func TestBuildObjectSchema(t *testing.T) {
	n := schema.Build([]byte(`{
	"identity": {"roles": ["admin", "user"], "active": true},
	"count": 3
}`), "input")
	if n == nil {
		t.Fatal("valid JSON must build a schema")
	}
	if n.Type != schema.TypeObject {
		t.Fatalf("root type = %v", n.Type)
	}
	if n.Source != "input" {
		t.Errorf("source = %q", n.Source)
	}

	identity := n.Children["identity"]
	if identity == nil || identity.Type != schema.TypeObject {
		t.Fatal("identity should be an object")
	}
	roles := identity.Children["roles"]
	if roles == nil || roles.Type != schema.TypeArray {
		t.Fatal("roles should be an array")
	}
	if roles.ArrayItem == nil || roles.ArrayItem.Type != schema.TypeString {
		t.Error("roles item type should come from the first element")
	}
	if roles.TypeDescription() != "array<string>" {
		t.Errorf("TypeDescription = %q", roles.TypeDescription())
	}
	if identity.Children["active"].Example != true {
		t.Error("scalar example should keep the literal value")
	}
}

func TestObjectExampleKeepsAtMostFiveKeys(t *testing.T) {
	n := schema.Build([]byte(`{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6,"g":7}`), "data")
	keys, ok := n.Example.([]string)
	if !ok {
		t.Fatalf("object example = %T", n.Example)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("example keys = %v", keys)
	}
}

func TestEmptyArrayHasNoItemType(t *testing.T) {
	n := schema.Build([]byte(`{"xs": []}`), "input")
	xs := n.Children["xs"]
	if xs.ArrayItem != nil {
		t.Error("empty array must not infer an item type")
	}
	if xs.TypeDescription() != "array" {
		t.Errorf("TypeDescription = %q", xs.TypeDescription())
	}
}

func TestBuildFailureIsNil(t *testing.T) {
	if schema.Build([]byte(`{"a": `), "input") != nil {
		t.Error("mid-edit JSON must yield a nil schema, not an error")
	}
	if schema.Build(nil, "input") != nil {
		t.Error("empty text must yield nil")
	}
}

func TestContextRoots(t *testing.T) {
	ctx := &schema.Context{
		Input: schema.Build([]byte(`{"a": 1}`), "input"),
		Data:  nil,
	}
	if ctx.Root("input") == nil {
		t.Error("input root should resolve")
	}
	if ctx.Root("data") != nil {
		t.Error("unparsed data root must stay nil")
	}
	if ctx.Root("other") != nil {
		t.Error("unknown root must be nil")
	}
	var nilCtx *schema.Context
	if nilCtx.Root("input") != nil {
		t.Error("nil context must resolve nothing")
	}
}
