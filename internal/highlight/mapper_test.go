package highlight_test

import (
	"testing"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/highlight"
	"github.com/HZMonama/regolab/internal/parser"
	"github.com/HZMonama/regolab/internal/source"
)

func styleSource(t *testing.T, src string) (map[string]highlight.Tag, []highlight.Region) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rego", []byte(src)))
	res := parser.ParseFile(file, parser.Options{Reporter: diag.NopReporter{}})

	regions := highlight.File(res.Tree, res.EOF.Leading)
	byText := make(map[string]highlight.Tag)
	for _, r := range regions {
		byText[string(file.Content[r.Span.Start:r.Span.End])] = r.Tag
	}
	return byText, regions
}

func TestDefinitionVersusCallVersusVariable(t *testing.T) {
	src := `package authz

allow if {
	check(input.user)
}

check(u) := u != null
`
	tags, _ := styleSource(t, src)

	if tags["authz"] != highlight.TagNamespace {
		t.Errorf("package path segment = %v, want namespace", tags["authz"])
	}
	if tags["allow"] != highlight.TagFunctionDefinition {
		t.Errorf("rule name = %v, want function.definition", tags["allow"])
	}
	// `check` appears both as a callee and as a definition; the map keeps
	// the last region, which is the definition on the final line
	if tags["check"] != highlight.TagFunctionDefinition {
		t.Errorf("check = %v, want function.definition", tags["check"])
	}
	if tags["u"] != highlight.TagVariable {
		t.Errorf("parameter reference = %v, want variable", tags["u"])
	}
	if tags["package"] != highlight.TagKeyword {
		t.Errorf("package keyword = %v", tags["package"])
	}
	if tags["if"] != highlight.TagControlKeyword {
		t.Errorf("if keyword = %v", tags["if"])
	}
}

func TestCalleeTag(t *testing.T) {
	src := "package p\nx := count(input.items)\n"
	tags, _ := styleSource(t, src)

	if tags["count"] != highlight.TagFunctionCall {
		t.Errorf("count = %v, want function.call", tags["count"])
	}
	if tags["items"] != highlight.TagVariable {
		t.Errorf("items = %v, want variable", tags["items"])
	}
}

func TestDottedCalleeTagsLastSegment(t *testing.T) {
	src := "package p\nx := json.marshal(input)\n"
	tags, _ := styleSource(t, src)

	if tags["marshal"] != highlight.TagFunctionCall {
		t.Errorf("marshal = %v, want function.call", tags["marshal"])
	}
	if tags["json"] != highlight.TagVariable {
		t.Errorf("json = %v, want variable", tags["json"])
	}
}

func TestLiteralsAndOperators(t *testing.T) {
	src := "package p\nx := 1 + 2.5\ny := \"text\"\nz := true\n"
	tags, _ := styleSource(t, src)

	checks := map[string]highlight.Tag{
		"1":        highlight.TagNumber,
		"2.5":      highlight.TagNumber,
		"+":        highlight.TagOperator,
		":=":       highlight.TagOperator,
		"\"text\"": highlight.TagString,
		"true":     highlight.TagConstant,
	}
	for text, want := range checks {
		if tags[text] != want {
			t.Errorf("%q = %v, want %v", text, tags[text], want)
		}
	}
}

func TestCommentsIncludingTrailing(t *testing.T) {
	src := "package p\n# mid comment\nx := 1\n# trailing comment"
	tags, _ := styleSource(t, src)

	if tags["# mid comment"] != highlight.TagComment {
		t.Errorf("mid comment = %v", tags["# mid comment"])
	}
	if tags["# trailing comment"] != highlight.TagComment {
		t.Errorf("trailing comment = %v", tags["# trailing comment"])
	}
}

func TestRegionsAreOrderedAndDisjoint(t *testing.T) {
	src := "package p\n# note\nallow if { input.x > 1 } # tail\n"
	_, regions := styleSource(t, src)

	var prevEnd uint32
	for i, r := range regions {
		if r.Span.Start < prevEnd {
			t.Fatalf("region %d overlaps previous (start %d < end %d)", i, r.Span.Start, prevEnd)
		}
		prevEnd = r.Span.End
	}
}

func TestErrorRegionTag(t *testing.T) {
	src := "package p\n$$$\nx := 1\n"
	_, regions := styleSource(t, src)

	var sawError bool
	for _, r := range regions {
		if r.Tag == highlight.TagError {
			sawError = true
		}
	}
	if !sawError {
		t.Error("unparsable region should carry the error tag")
	}
}
