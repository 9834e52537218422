package parser_test

import (
	"testing"

	"github.com/HZMonama/regolab/internal/syntax"
)

// One opening brace, three syntactic roles. These inputs pin down the
// classification policy for expression-position braces.
func TestBraceClassification(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want syntax.NodeKind
		not  []syntax.NodeKind
	}{
		{
			name: "top level colon means object",
			src:  `x := { "a": 1 }`,
			want: syntax.NodeObject,
			not:  []syntax.NodeKind{syntax.NodeSet, syntax.NodeSetCompr},
		},
		{
			name: "comma list means set",
			src:  `y := { 1, 2, 3 }`,
			want: syntax.NodeSet,
			not:  []syntax.NodeKind{syntax.NodeObject},
		},
		{
			name: "empty braces mean empty object",
			src:  `z := {}`,
			want: syntax.NodeObject,
			not:  []syntax.NodeKind{syntax.NodeSet},
		},
		{
			name: "nested object inside set stays set",
			src:  `w := { {"a": 1} }`,
			want: syntax.NodeSet,
			not:  nil, // the inner object is expected
		},
		{
			name: "pipe means set comprehension",
			src:  `s := { x | x > 1 }`,
			want: syntax.NodeSetCompr,
			not:  []syntax.NodeKind{syntax.NodeSet, syntax.NodeObject},
		},
		{
			name: "colon before pipe means object comprehension",
			src:  `m := { k: v | k > 1 }`,
			want: syntax.NodeObjectCompr,
			not:  []syntax.NodeKind{syntax.NodeSetCompr, syntax.NodeObject},
		},
		{
			name: "pipe nested in object value is not a comprehension",
			src:  `o := { "a": (b | c) }`,
			want: syntax.NodeObject,
			not:  []syntax.NodeKind{syntax.NodeSetCompr, syntax.NodeObjectCompr},
		},
		{
			name: "statement markers mean body",
			src:  `q := { a := 1 }`,
			want: syntax.NodeBody,
			not:  []syntax.NodeKind{syntax.NodeSet, syntax.NodeObject},
		},
		{
			name: "embedded assignment in comprehension stays comprehension",
			src:  `r := [ x | x := input[_] ]`,
			want: syntax.NodeArrayCompr,
			not:  []syntax.NodeKind{syntax.NodeSet, syntax.NodeObject},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(t, "package p\n"+tt.src+"\n")
			if firstOfKind(res, tt.want) == syntax.NilNode {
				t.Fatalf("missing %v for %q", tt.want, tt.src)
			}
			for _, k := range tt.not {
				if firstOfKind(res, k) != syntax.NilNode {
					t.Errorf("unexpected %v for %q", k, tt.src)
				}
			}
		})
	}
}

func TestNestedSetKeepsInnerObject(t *testing.T) {
	res := parseSource(t, "package p\nw := { {\"a\": 1} }\n")
	requireNoErrors(t, res)

	set := firstOfKind(res, syntax.NodeSet)
	if set == syntax.NilNode {
		t.Fatal("outer braces must classify as Set")
	}
	if res.Tree.FirstChildOfKind(set, syntax.NodeObject) == syntax.NilNode {
		t.Error("inner braces must classify as Object")
	}
}

func TestArrayComprehensionShape(t *testing.T) {
	res := parseSource(t, "package p\nr := [ x | x := input[_] ]\n")
	requireNoErrors(t, res)

	compr := firstOfKind(res, syntax.NodeArrayCompr)
	if compr == syntax.NilNode {
		t.Fatal("missing ArrayCompr")
	}
	body := res.Tree.FirstChildOfKind(compr, syntax.NodeBody)
	if body == syntax.NilNode {
		t.Fatal("comprehension must hold a generating Body")
	}
	if res.Tree.CountKind(body, syntax.NodeIndex) != 1 {
		t.Error("body should contain the input[_] index")
	}
}

func TestEmptyComprehensionBodyWarns(t *testing.T) {
	res := parseSource(t, "package p\nr := [ x | ]\n")
	if !res.Bag.HasWarnings() {
		t.Error("empty comprehension body should warn")
	}
}
