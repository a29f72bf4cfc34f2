package lexer

import (
	"testing"

	"purefix/internal/source"
	"purefix/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.h", []byte(src))
	lx := New(fs.Get(id), Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
		if len(toks) > 10000 {
			t.Fatalf("lexer does not terminate")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexClassHeader(t *testing.T) {
	toks := lexAll(t, "class Derived : public Base {")
	want := []token.Kind{
		token.KwClass, token.Ident, token.Colon, token.KwPublic, token.Ident, token.LBrace,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Text != "Derived" || toks[4].Text != "Base" {
		t.Fatalf("identifier texts wrong: %q %q", toks[1].Text, toks[4].Text)
	}
}

func TestLexPureVirtualDecl(t *testing.T) {
	toks := lexAll(t, "virtual void F2(int, const int&) = 0;")
	want := []token.Kind{
		token.KwVirtual, token.Ident, token.Ident, token.LParen, token.Ident,
		token.Comma, token.KwConst, token.Ident, token.Amp, token.RParen,
		token.Assign, token.IntLit, token.Semicolon,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexTwoCharOperators(t *testing.T) {
	toks := lexAll(t, ":: && == != -> ...")
	want := []token.Kind{
		token.ColonColon, token.AmpAmp, token.EqEq, token.BangEq, token.Arrow, token.Ellipsis,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexTriviaAttachment(t *testing.T) {
	src := "#include <vector>\n// comment\nclass A {};\n"
	toks := lexAll(t, src)
	if toks[0].Kind != token.KwClass {
		t.Fatalf("first token = %v", toks[0].Kind)
	}
	var sawDirective, sawComment bool
	for _, tr := range toks[0].Leading {
		switch tr.Kind {
		case token.TriviaDirective:
			sawDirective = true
			if tr.Text != "#include <vector>" {
				t.Fatalf("directive text %q", tr.Text)
			}
		case token.TriviaLineComment:
			sawComment = true
		}
	}
	if !sawDirective || !sawComment {
		t.Fatalf("leading trivia incomplete: %+v", toks[0].Leading)
	}
}

func TestLexDirectiveContinuation(t *testing.T) {
	src := "#define M(a) \\\n  (a)\nclass A {};"
	toks := lexAll(t, src)
	if toks[0].Kind != token.KwClass {
		t.Fatalf("directive continuation leaked tokens: %v", kinds(toks))
	}
}

func TestLexBlockCommentAndStrings(t *testing.T) {
	toks := lexAll(t, "/* multi\nline */ X \"str\\\"ing\" 'c'")
	want := []token.Kind{token.Ident, token.StringLit, token.CharLit}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

type recordingReporter struct {
	kinds []string
}

func (r *recordingReporter) Report(kind string, _ source.Span, _ string) {
	r.kinds = append(r.kinds, kind)
}

func TestLexReportsUnterminatedComment(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.h", []byte("/* never closed"))
	rep := &recordingReporter{}
	lx := New(fs.Get(id), Options{Reporter: rep})

	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if len(rep.kinds) != 1 || rep.kinds[0] != "unterminated-block-comment" {
		t.Fatalf("reports = %v", rep.kinds)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.h", []byte("class A"))
	lx := New(fs.Get(id), Options{})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("peek %v and next %v disagree", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatalf("stream advanced incorrectly")
	}
}
