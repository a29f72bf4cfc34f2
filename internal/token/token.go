package token

import (
	"purefix/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a keyword of the subset.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClass, KwStruct, KwPublic, KwProtected, KwPrivate, KwVirtual, KwConst,
		KwOverride, KwFinal, KwNamespace, KwTemplate, KwTypename, KwOperator,
		KwNoexcept, KwStatic, KwInline, KwExplicit, KwConstexpr, KwFriend,
		KwUsing, KwEnum, KwMutable, KwDefault, KwDelete:
		return true
	default:
		return false
	}
}

// IsAccess reports whether the token is a visibility keyword.
func (t Token) IsAccess() bool {
	switch t.Kind {
	case KwPublic, KwProtected, KwPrivate:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// CanStartType reports whether the token may begin a type rendering:
// identifiers, qualifiers, and the leading '::' of a fully qualified name.
func (t Token) CanStartType() bool {
	switch t.Kind {
	case Ident, KwConst, KwTypename, ColonColon:
		return true
	default:
		return false
	}
}
