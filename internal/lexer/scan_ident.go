package lexer

import (
	"purefix/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Token.Text — ровно исходный срез. Unicode в идентификаторах не поддерживаем:
// заголовки из области применения инструмента ASCII-only, остальное даст Invalid.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanNumber сканирует целые и плавающие литералы. Нам важен только текст и
// признак «это число» (для '= 0'); суффиксы и формы разбираем неполно.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Eat('0') && (lx.cursor.Eat('x') || lx.cursor.Eat('X')) {
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			kind = token.FloatLit
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	// суффиксы: u, l, f и их комбинации
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case 'u', 'U', 'l', 'L', 'f', 'F':
			lx.cursor.Bump()
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanString сканирует строковый литерал с '\'-экранированием.
func (lx *Lexer) scanString() token.Token {
	return lx.scanQuoted('"', token.StringLit, "string literal is not terminated")
}

// scanChar сканирует символьный литерал.
func (lx *Lexer) scanChar() token.Token {
	return lx.scanQuoted('\'', token.CharLit, "character literal is not terminated")
}

func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, unterminated string) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	closed := false
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if ch == quote {
			closed = true
			break
		}
		if ch == '\n' {
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report("unterminated-literal", sp, unterminated)
	}
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
