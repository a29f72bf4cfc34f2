package lexer

import (
	"purefix/internal/token"
)

// collectLeadingTrivia накапливает в lx.hold пробелы, переводы строк,
// комментарии и препроцессорные строки до следующего значимого токена.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			lx.holdTrivia(token.TriviaSpace, lx.scanWhile(func(b byte) bool {
				return b == ' ' || b == '\t' || b == '\r'
			}))

		case ch == '\n':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.holdTrivia(token.TriviaNewline, start)

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
				return // деление и прочее — значимый токен
			}
			if b1 == '/' {
				lx.holdTrivia(token.TriviaLineComment, lx.scanLineComment())
			} else {
				lx.holdTrivia(token.TriviaBlockComment, lx.scanBlockComment())
			}

		case ch == '#':
			// Вся препроцессорная строка как одна trivia, с учётом '\'-переносов.
			lx.holdTrivia(token.TriviaDirective, lx.scanDirective())

		default:
			return
		}
	}
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanWhile(pred func(byte) bool) Mark {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && pred(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return start
}

func (lx *Lexer) scanLineComment() Mark {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return start
}

func (lx *Lexer) scanBlockComment() Mark {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' {
			lx.cursor.Bump()
			if lx.cursor.Eat('/') {
				closed = true
				break
			}
			continue
		}
		lx.cursor.Bump()
	}
	if !closed {
		lx.report("unterminated-block-comment", lx.cursor.SpanFrom(start),
			"block comment is not terminated")
	}
	return start
}

func (lx *Lexer) scanDirective() Mark {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			// перенос строки внутри директивы
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return start
}
