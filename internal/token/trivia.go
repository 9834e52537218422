package token

import "github.com/HZMonama/regolab/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	default:
		return "Unknown"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
