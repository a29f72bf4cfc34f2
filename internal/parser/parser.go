// Package parser is a best-effort recursive-descent parser for the C++
// header subset purefix understands: namespaces, class/struct
// declarations with base clauses, visibility labels, and member function
// signatures. Anything else is skipped with resynchronization; parsing
// never fails hard.
package parser

import (
	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/lexer"
	"purefix/internal/source"
	"purefix/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough — проверить, достигли ли мы максимального количества ошибок.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result holds everything extracted from one file.
type Result struct {
	Classes []*cppast.ClassDecl
}

// Parser — состояние парсера на один файл.
type Parser struct {
	lx      *lexer.Lexer
	fs      *source.FileSet
	opts    Options
	classes []*cppast.ClassDecl
	ns      []string // стек открытых namespace
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:   lx,
		fs:   fs,
		opts: opts,
	}
	p.parseItems(token.EOF)
	return Result{Classes: p.classes}
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) next() token.Token {
	return p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	if p.opts.Enough() {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// parseItems — цикл верхнего уровня (и тела namespace) до стоп-токена.
func (p *Parser) parseItems(stop token.Kind) {
	for {
		tok := p.peek()
		if tok.Kind == token.EOF || tok.Kind == stop {
			return
		}
		switch tok.Kind {
		case token.KwNamespace:
			p.parseNamespace()
		case token.KwTemplate:
			p.skipTemplatePrefix()
		case token.KwClass, token.KwStruct:
			p.parseClassOrSkip(cppast.AccessNone)
		default:
			// не интересующая нас конструкция: прототип функции,
			// глобальная переменная, using и т.д.
			p.skipLooseItem()
		}
	}
}

// parseNamespace разбирает 'namespace [name] { ... }' рекурсивно.
func (p *Parser) parseNamespace() {
	p.next() // namespace

	depth := 0
	if p.at(token.Ident) {
		p.ns = append(p.ns, p.next().Text)
		depth++
		// nested namespace shorthand 'a::b'
		for p.eat(token.ColonColon) {
			if !p.at(token.Ident) {
				break
			}
			p.ns = append(p.ns, p.next().Text)
			depth++
		}
	}
	if depth == 0 {
		// анонимный namespace
		p.ns = append(p.ns, "")
		depth = 1
	}

	if !p.eat(token.LBrace) {
		// namespace alias или что-то нераспознанное
		p.skipLooseItem()
		p.ns = p.ns[:len(p.ns)-depth]
		return
	}
	p.parseItems(token.RBrace)
	if !p.eat(token.RBrace) {
		p.errAt(diag.SynUnclosedBrace, p.peek().Span, "namespace body is not closed")
	}
	p.ns = p.ns[:len(p.ns)-depth]
}

// skipTemplatePrefix consumes 'template < ... >' and leaves the following
// declaration for the normal path. Template bodies parse best-effort;
// dependent bases simply fail to resolve later.
func (p *Parser) skipTemplatePrefix() {
	p.next() // template
	if !p.at(token.Lt) {
		return
	}
	p.next()
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.next().Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		}
	}
}

// parseClassOrSkip tries to parse a class/struct declaration with a body;
// forward declarations are consumed silently.
func (p *Parser) parseClassOrSkip(access cppast.Access) {
	decl, ok := p.parseClass(access)
	if ok && decl != nil {
		p.classes = append(p.classes, decl)
	}
}

// skipLooseItem consumes tokens up to the next ';' at brace depth 0,
// swallowing balanced '{...}' groups on the way (function bodies).
func (p *Parser) skipLooseItem() {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			p.next()
			return
		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
			// тело функции может не требовать ';'
			p.eat(token.Semicolon)
			return
		case token.RBrace:
			// чужая скобка — наверх
			return
		default:
			p.next()
		}
	}
}

// skipBalanced consumes an open token and everything up to its matching
// close token.
func (p *Parser) skipBalanced(open, close token.Kind) {
	startSpan := p.peek().Span
	if !p.eat(open) {
		return
	}
	depth := 1
	for depth > 0 {
		tok := p.next()
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
		case token.EOF:
			p.errAt(diag.SynUnclosedBrace, startSpan, "unclosed "+open.String())
			return
		}
	}
}
