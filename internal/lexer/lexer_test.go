package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/lexer"
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer creates a lexer over a test string.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rego", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens drains the lexer up to and including EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

// expectTokens asserts the significant token kinds for an input.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	kinds := kindsOf(collectAllTokens(lx))

	if len(kinds) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\nkinds: %v\nerrors: %v",
			len(expected), len(kinds), input, kinds, reporter.ErrorMessages())
	}
	for i := range kinds {
		if kinds[i] != expected[i] {
			t.Errorf("token %d: got %v, want %v (input %q)", i, kinds[i], expected[i], input)
		}
	}
}

func TestKeywordsAreClassifiedLexically(t *testing.T) {
	expectTokens(t, "package import default some every if else contains with as in not true false null",
		[]token.Kind{
			token.KwPackage, token.KwImport, token.KwDefault, token.KwSome,
			token.KwEvery, token.KwIf, token.KwElse, token.KwContains,
			token.KwWith, token.KwAs, token.KwIn, token.KwNot,
			token.KwTrue, token.KwFalse, token.KwNull,
		})
}

func TestIdentifiers(t *testing.T) {
	expectTokens(t, "allow input data _x foo_bar Allow",
		[]token.Kind{token.Ident, token.Ident, token.Ident, token.Ident, token.Ident, token.Ident})
}

func TestGreedyOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{name: "assign never splits", input: "x := 1", want: []token.Kind{token.Ident, token.ColonAssign, token.IntLit}},
		{name: "comparisons", input: "a == b != c <= d >= e", want: []token.Kind{
			token.Ident, token.EqEq, token.Ident, token.BangEq, token.Ident,
			token.LtEq, token.Ident, token.GtEq, token.Ident,
		}},
		{name: "lone colon stays colon", input: "{\"a\": 1}", want: []token.Kind{
			token.LBrace, token.StringLit, token.Colon, token.IntLit, token.RBrace,
		}},
		{name: "lt then eq separately", input: "a < = b", want: []token.Kind{
			token.Ident, token.Lt, token.Assign, token.Ident,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.want)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"0", []token.Kind{token.IntLit}},
		{"42", []token.Kind{token.IntLit}},
		{"3.14", []token.Kind{token.FloatLit}},
		{"1e-3", []token.Kind{token.FloatLit}},
		{"1.0e+10", []token.Kind{token.FloatLit}},
		// the dot stays with the reference path
		{"a[1].b", []token.Kind{token.Ident, token.LBracket, token.IntLit, token.RBracket, token.Dot, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.want)
		})
	}
}

func TestStringsAreOpaque(t *testing.T) {
	// brace, colon, and comment bytes inside literals must not produce tokens
	expectTokens(t, `x := "{ # not a comment : }"`,
		[]token.Kind{token.Ident, token.ColonAssign, token.StringLit})
	expectTokens(t, "y := `raw # {\nstill raw`",
		[]token.Kind{token.Ident, token.ColonAssign, token.RawStringLit})
}

func TestStringEscapes(t *testing.T) {
	expectTokens(t, `m := "quote \" inside"`,
		[]token.Kind{token.Ident, token.ColonAssign, token.StringLit})
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`x := "oops`)
	tokens := collectAllTokens(lx)
	kinds := kindsOf(tokens)
	want := []token.Kind{token.Ident, token.ColonAssign, token.Invalid}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	if !reporter.HasErrors() {
		t.Error("expected a lexical error")
	}
}

func TestLineComments(t *testing.T) {
	lx, _ := makeTestLexer("# header\nallow := true # trailing\n")
	tokens := collectAllTokens(lx)

	if tokens[0].Kind != token.Ident || tokens[0].Text != "allow" {
		t.Fatalf("first significant token = %v %q", tokens[0].Kind, tokens[0].Text)
	}
	var sawComment bool
	for _, tr := range tokens[0].Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "# header" {
			sawComment = true
		}
	}
	if !sawComment {
		t.Errorf("leading trivia missing comment: %+v", tokens[0].Leading)
	}
}

func TestUnknownCharIsTotal(t *testing.T) {
	lx, reporter := makeTestLexer("a $ b")
	kinds := kindsOf(collectAllTokens(lx))
	want := []token.Kind{token.Ident, token.Invalid, token.Ident}
	if len(kinds) != 3 || kinds[0] != want[0] || kinds[1] != want[1] || kinds[2] != want[2] {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if !reporter.HasErrors() {
		t.Error("expected LexUnknownChar diagnostic")
	}
}

func TestUnderscore(t *testing.T) {
	expectTokens(t, "input[_]", []token.Kind{token.Ident, token.LBracket, token.Underscore, token.RBracket})
	expectTokens(t, "_private", []token.Kind{token.Ident})
}

// Every byte of the input must be covered by exactly one token or one piece
// of leading trivia, in order, with no gaps and no overlaps.
func TestTokensAndTriviaCoverInput(t *testing.T) {
	inputs := []string{
		"package example\n\nallow := true # ok\n",
		"deny contains msg if {\n\tmsg := \"no\"\n}\n",
		"x := { \"a\": [1, 2.5, null], \"b\": {true, false} }",
		"broken $ @@ still lexes",
		"",
	}
	for _, input := range inputs {
		t.Run(fmt.Sprintf("%.20q", input), func(t *testing.T) {
			lx, _ := makeTestLexer(input)
			tokens := collectAllTokens(lx)

			var next uint32
			for _, tok := range tokens {
				for _, tr := range tok.Leading {
					if tr.Span.Start != next {
						t.Fatalf("trivia gap/overlap at %d (expected %d): %q", tr.Span.Start, next, tr.Text)
					}
					next = tr.Span.End
				}
				if tok.Kind == token.EOF {
					break
				}
				if tok.Span.Start != next {
					t.Fatalf("token gap/overlap at %d (expected %d): %q", tok.Span.Start, next, tok.Text)
				}
				next = tok.Span.End
			}
			if int(next) != len(input) {
				t.Fatalf("coverage stops at %d of %d", next, len(input))
			}
		})
	}
}

func TestTokenTextMatchesSpan(t *testing.T) {
	input := "allow := data.roles[_]"
	lx, _ := makeTestLexer(input)
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			break
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span text %q != token text %q", got, tok.Text)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("package x")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Errorf("Peek %v != Next %v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Error("stream advanced incorrectly after Peek")
	}
}

func TestCommentOnlyInput(t *testing.T) {
	lx, _ := makeTestLexer("# only a comment")
	tokens := collectAllTokens(lx)
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("tokens = %v", tokens)
	}
	if len(tokens[0].Leading) == 0 {
		t.Error("EOF should carry the comment as leading trivia")
	}
	var b strings.Builder
	for _, tr := range tokens[0].Leading {
		b.WriteString(tr.Text)
	}
	if b.String() != "# only a comment" {
		t.Errorf("trivia text = %q", b.String())
	}
}
