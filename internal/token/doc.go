// Package token defines lexical token kinds and trivia for the Rego front-end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Reserved words (package, import, default, some, every, if, else,
//     contains, with, as, in, not, true, false, null) are classified at the
//     lexical level; the parser never looks keywords up by text.
//   - Whitespace and '#' comments are leading Trivia and never appear in the
//     main token stream.
//   - Built-in function names (count, sum, sprintf, ...) are identifiers.
//     They are recognized by the external evaluator, not the lexer.
package token
