package lexer

import (
	"purefix/internal/token"
)

// scanOperatorOrPunct сканирует операторы и пунктуацию.
// Неизвестные байты дают Invalid-токен из одного байта; лексер не падает.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
		if lx.cursor.Eat(':') {
			kind = token.ColonColon
		}
	case '&':
		kind = token.Amp
		if lx.cursor.Eat('&') {
			kind = token.AmpAmp
		}
	case '*':
		kind = token.Star
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		}
	case '~':
		kind = token.Tilde
	case '.':
		kind = token.Dot
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.Ellipsis
		}
	case '+':
		kind = token.Plus
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '!':
		kind = token.Bang
		if lx.cursor.Eat('=') {
			kind = token.BangEq
		}
	case '?':
		kind = token.Question
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.report("unknown-char", sp, "unexpected character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
