package token

var keywords = map[string]Kind{
	"class":     KwClass,
	"struct":    KwStruct,
	"public":    KwPublic,
	"protected": KwProtected,
	"private":   KwPrivate,
	"virtual":   KwVirtual,
	"const":     KwConst,
	"override":  KwOverride,
	"final":     KwFinal,
	"namespace": KwNamespace,
	"template":  KwTemplate,
	"typename":  KwTypename,
	"operator":  KwOperator,
	"noexcept":  KwNoexcept,
	"static":    KwStatic,
	"inline":    KwInline,
	"explicit":  KwExplicit,
	"constexpr": KwConstexpr,
	"friend":    KwFriend,
	"using":     KwUsing,
	"enum":      KwEnum,
	"mutable":   KwMutable,
	"default":   KwDefault,
	"delete":    KwDelete,
}

// LookupKeyword reports whether text is a keyword of the supported C++
// subset and returns its kind. 'override' and 'final' are contextual in
// C++ proper; treating them as keywords is fine for header declarations.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
