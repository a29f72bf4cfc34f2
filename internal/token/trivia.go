package token

import "purefix/internal/source"

// TriviaKind classifies non-semantic source fragments.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDirective holds a whole preprocessor line ('#include', '#pragma', ...).
	// Директивы не парсим — только сохраняем текст для точных спанов.
	TriviaDirective
)

// Trivia is a non-semantic fragment attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
