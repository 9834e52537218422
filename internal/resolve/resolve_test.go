package resolve_test

import (
	"testing"

	"github.com/HZMonama/regolab/internal/resolve"
	"github.com/HZMonama/regolab/internal/schema"
)

func testContext(t *testing.T) *schema.Context {
	t.Helper()
	input := schema.Build([]byte(`{
	"identity": {"roles": ["admin", "user"], "name": "alice"},
	"bindings": [{"role": "viewer", "scope": "org"}],
	"count": 2
}`), "input")
	if input == nil {
		t.Fatal("input fixture failed to build")
	}
	return &schema.Context{Input: input, Data: nil}
}

func labels(cands []resolve.Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Label)
	}
	return out
}

func TestCompleteObjectChildren(t *testing.T) {
	cands := resolve.Complete(testContext(t), "input.identity.")
	got := labels(cands)
	if len(got) != 2 || got[0] != "name" || got[1] != "roles" {
		t.Fatalf("candidates = %v, want [name roles]", got)
	}
	for _, c := range cands {
		if c.Label == "roles" && c.Detail != "array<string>" {
			t.Errorf("roles detail = %q", c.Detail)
		}
	}
}

func TestCompleteArrayOfObjectUsesMarker(t *testing.T) {
	cands := resolve.Complete(testContext(t), "input.bindings.")
	got := labels(cands)
	if len(got) != 2 || got[0] != "[_].role" || got[1] != "[_].scope" {
		t.Fatalf("candidates = %v, want marker-prefixed element children", got)
	}
}

func TestCompleteInsideArrayElement(t *testing.T) {
	cands := resolve.Complete(testContext(t), "input.bindings[_].")
	got := labels(cands)
	// the wildcard already stepped into the element, no marker needed
	if len(got) != 2 || got[0] != "role" || got[1] != "scope" {
		t.Fatalf("candidates = %v", got)
	}
}

func TestCompletePartialSegmentFilters(t *testing.T) {
	cands := resolve.Complete(testContext(t), "input.ide")
	got := labels(cands)
	if len(got) != 1 || got[0] != "identity" {
		t.Fatalf("candidates = %v, want [identity]", got)
	}
}

func TestCompleteRootsFilteredByLiveSchema(t *testing.T) {
	ctx := testContext(t)
	got := labels(resolve.Complete(ctx, "in"))
	if len(got) != 1 || got[0] != "input" {
		t.Fatalf("candidates = %v, want [input]", got)
	}
	// data has no schema, so a data prefix yields nothing
	if got := resolve.Complete(ctx, "da"); len(got) != 0 {
		t.Errorf("data root with nil schema should not complete, got %v", labels(got))
	}

	ctx.Data = schema.Build([]byte(`{"cfg": 1}`), "data")
	got = labels(resolve.Complete(ctx, ""))
	if len(got) != 2 || got[0] != "data" || got[1] != "input" {
		t.Fatalf("both roots should complete, got %v", got)
	}
}

func TestCompleteWalkOffIsEmpty(t *testing.T) {
	ctx := testContext(t)
	cases := []string{
		"input.missing.",
		"input.count.",
		"input.identity.roles.name.",
		"data.anything.",
	}
	for _, prefix := range cases {
		if got := resolve.Complete(ctx, prefix); len(got) != 0 {
			t.Errorf("Complete(%q) = %v, want empty", prefix, labels(got))
		}
	}
}

func TestHoverArrayType(t *testing.T) {
	info := resolve.Hover(testContext(t), "input.identity.roles")
	if info == nil {
		t.Fatal("hover should resolve")
	}
	if info.Type != "array<string>" {
		t.Errorf("type = %q, want array<string>", info.Type)
	}
	if info.Source != "input" {
		t.Errorf("source = %q", info.Source)
	}
}

func TestHoverThroughWildcardAndIndex(t *testing.T) {
	ctx := testContext(t)

	info := resolve.Hover(ctx, "input.bindings[_].role")
	if info == nil || info.Type != "string" {
		t.Fatalf("wildcard hover = %+v", info)
	}
	if info.Example != `"viewer"` {
		t.Errorf("example = %q", info.Example)
	}

	info = resolve.Hover(ctx, "input.bindings[0].scope")
	if info == nil || info.Type != "string" {
		t.Fatalf("indexed hover = %+v", info)
	}
}

func TestHoverScalarAndObject(t *testing.T) {
	ctx := testContext(t)

	info := resolve.Hover(ctx, "input.count")
	if info == nil || info.Type != "number" || info.Example != "2" {
		t.Fatalf("count hover = %+v", info)
	}

	info = resolve.Hover(ctx, "input.identity")
	if info == nil || info.Type != "object" {
		t.Fatalf("identity hover = %+v", info)
	}
	if info.Example != "{name, roles}" {
		t.Errorf("object example = %q", info.Example)
	}
}

func TestHoverFailure(t *testing.T) {
	ctx := testContext(t)
	for _, path := range []string{"", "input.nope", "data.cfg", "other.x"} {
		if resolve.Hover(ctx, path) != nil {
			t.Errorf("Hover(%q) should be nil", path)
		}
	}
}
