package parser

import (
	"strings"

	"purefix/internal/cppast"
	"purefix/internal/token"
)

// builtinTypeWords are identifier-looking words that can never be a
// parameter name. Needed to tell 'unsigned long' from 'Foo value'.
var builtinTypeWords = map[string]bool{
	"void": true, "bool": true, "char": true, "short": true, "int": true,
	"long": true, "float": true, "double": true, "signed": true,
	"unsigned": true, "auto": true, "wchar_t": true, "char8_t": true,
	"char16_t": true, "char32_t": true, "size_t": true, "ssize_t": true,
	"ptrdiff_t": true, "int8_t": true, "int16_t": true, "int32_t": true,
	"int64_t": true, "uint8_t": true, "uint16_t": true, "uint32_t": true,
	"uint64_t": true, "uintptr_t": true, "intptr_t": true,
}

// renderTypeTokens joins type tokens the way clang prints types:
// 'const int &', 'ns::Foo', 'std::vector<int>'.
func renderTypeTokens(toks []token.Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 && needSpace(toks[i-1], t) {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func needSpace(prev, cur token.Token) bool {
	switch {
	case prev.Kind == token.ColonColon || cur.Kind == token.ColonColon:
		return false
	case prev.Kind == token.Lt || cur.Kind == token.Lt:
		return false
	case cur.Kind == token.Gt:
		return false
	case cur.Kind == token.Comma:
		return false
	case isPtrRef(cur) && isPtrRef(prev):
		// 'int **', 'int *&'
		return false
	default:
		return true
	}
}

// hasTypeWord reports whether the tokens contain something that can be a
// type on its own. Distinguishes 'const Foo' (unnamed) from 'const Foo f'.
func hasTypeWord(toks []token.Token) bool {
	for _, t := range toks {
		if t.IsIdent() || t.Kind == token.KwTypename {
			return true
		}
	}
	return false
}

func isPtrRef(t token.Token) bool {
	switch t.Kind {
	case token.Star, token.Amp, token.AmpAmp:
		return true
	default:
		return false
	}
}

// renderParam splits one parameter's tokens into a type rendering and an
// optional name. A default argument is dropped from the rendering.
func renderParam(toks []token.Token) cppast.Param {
	// отрезаем '= default-value'
	for i, t := range toks {
		if t.Kind == token.Assign {
			toks = toks[:i]
			break
		}
	}
	if len(toks) == 0 {
		return cppast.Param{}
	}

	last := toks[len(toks)-1]
	hasName := len(toks) >= 2 &&
		last.IsIdent() &&
		!builtinTypeWords[last.Text] &&
		toks[len(toks)-2].Kind != token.ColonColon &&
		hasTypeWord(toks[:len(toks)-1])

	if hasName {
		return cppast.Param{
			Type: renderTypeTokens(toks[:len(toks)-1]),
			Name: last.Text,
		}
	}
	return cppast.Param{Type: renderTypeTokens(toks)}
}
