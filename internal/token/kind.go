package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous or unrecognized token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit
	// CharLit represents a character literal.
	CharLit

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwVirtual represents the 'virtual' keyword.
	KwVirtual // virtual
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwOverride represents the contextual 'override' specifier.
	KwOverride // override
	// KwFinal represents the contextual 'final' specifier.
	KwFinal // final
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwTemplate represents the 'template' keyword.
	KwTemplate // template
	// KwTypename represents the 'typename' keyword.
	KwTypename // typename
	// KwOperator represents the 'operator' keyword.
	KwOperator // operator
	// KwNoexcept represents the 'noexcept' keyword.
	KwNoexcept // noexcept
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwExplicit represents the 'explicit' keyword.
	KwExplicit // explicit
	// KwConstexpr represents the 'constexpr' keyword.
	KwConstexpr // constexpr
	// KwFriend represents the 'friend' keyword.
	KwFriend // friend
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwMutable represents the 'mutable' keyword.
	KwMutable // mutable
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Amp represents '&'.
	Amp // &
	// AmpAmp represents '&&'.
	AmpAmp // &&
	// Star represents '*'.
	Star // *
	// Assign represents '='.
	Assign // =
	// EqEq represents '=='.
	EqEq // ==
	// Arrow represents '->'.
	Arrow // ->
	// Tilde represents '~'.
	Tilde // ~
	// Dot represents '.'.
	Dot // .
	// Ellipsis represents '...'.
	Ellipsis // ...
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Bang represents '!'.
	Bang // !
	// BangEq represents '!='.
	BangEq // !=
	// Question represents '?'.
	Question // ?
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	KwClass:     "class",
	KwStruct:    "struct",
	KwPublic:    "public",
	KwProtected: "protected",
	KwPrivate:   "private",
	KwVirtual:   "virtual",
	KwConst:     "const",
	KwOverride:  "override",
	KwFinal:     "final",
	KwNamespace: "namespace",
	KwTemplate:  "template",
	KwTypename:  "typename",
	KwOperator:  "operator",
	KwNoexcept:  "noexcept",
	KwStatic:    "static",
	KwInline:    "inline",
	KwExplicit:  "explicit",
	KwConstexpr: "constexpr",
	KwFriend:    "friend",
	KwUsing:     "using",
	KwEnum:      "enum",
	KwMutable:   "mutable",
	KwDefault:   "default",
	KwDelete:    "delete",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Lt:          "<",
	Gt:          ">",
	Comma:       ",",
	Semicolon:   ";",
	Colon:       ":",
	ColonColon:  "::",
	Amp:         "&",
	AmpAmp:      "&&",
	Star:        "*",
	Assign:      "=",
	EqEq:        "==",
	Arrow:       "->",
	Tilde:       "~",
	Dot:         ".",
	Ellipsis:    "...",
	Plus:        "+",
	Minus:       "-",
	Slash:       "/",
	Percent:     "%",
	Pipe:        "|",
	Caret:       "^",
	Bang:        "!",
	BangEq:      "!=",
	Question:    "?",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
