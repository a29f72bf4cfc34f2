package parser

import (
	"strings"

	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/source"
	"purefix/internal/token"
)

// parseClass разбирает 'class|struct Name [final] [: bases] { members } ;'.
// Возвращает nil, true для forward-декларации (съедена без результата).
func (p *Parser) parseClass(access cppast.Access) (*cppast.ClassDecl, bool) {
	kw := p.next() // class | struct
	isStruct := kw.Kind == token.KwStruct

	if !p.at(token.Ident) {
		// anonymous struct или macro-мусор — пропускаем
		p.skipLooseItem()
		return nil, false
	}
	nameTok := p.next()

	decl := &cppast.ClassDecl{
		Name:          nameTok.Text,
		QualifiedName: p.qualify(nameTok.Text),
		IsStruct:      isStruct,
		File:          kw.Span.File,
		Span:          kw.Span,
	}

	p.eat(token.KwFinal)

	if p.at(token.Colon) {
		p.next()
		p.parseBaseClause(decl)
	}

	if p.at(token.Semicolon) {
		// forward declaration (возможно с базами — ошибочный ввод, не наше дело)
		p.next()
		return nil, true
	}

	if !p.at(token.LBrace) {
		p.errAt(diag.SynUnexpectedToken, p.peek().Span,
			"expected '{' in "+kw.Text+" "+decl.Name)
		p.skipLooseItem()
		return nil, false
	}

	open := p.next() // '{'
	decl.BodySpan = open.Span
	p.parseMembers(decl)

	if p.at(token.RBrace) {
		closeTok := p.next()
		decl.BodySpan.End = closeTok.Span.Start
		decl.Span = decl.Span.Cover(closeTok.Span)
	} else {
		p.errAt(diag.SynUnclosedBrace, open.Span, "class body is not closed")
		decl.BodySpan.End = p.peek().Span.Start
	}
	p.eat(token.Semicolon)

	return decl, true
}

// parseBaseClause разбирает список баз до '{' (или ';').
func (p *Parser) parseBaseClause(decl *cppast.ClassDecl) {
	for {
		base := cppast.BaseSpec{Access: cppast.AccessNone}

		// virtual и access-спецификатор в любом порядке
		for {
			tok := p.peek()
			if tok.Kind == token.KwVirtual {
				p.next()
				base.IsVirtual = true
				continue
			}
			if tok.IsAccess() {
				p.next()
				base.Access = accessOf(tok.Kind)
				continue
			}
			break
		}
		if base.Access == cppast.AccessNone {
			// implicit: struct наследует public, class — private
			if decl.IsStruct {
				base.Access = cppast.AccessPublic
			} else {
				base.Access = cppast.AccessPrivate
			}
		}

		name, sp, ok := p.parseQualifiedName()
		if !ok {
			p.errAt(diag.SynBadBaseClause, p.peek().Span, "expected base class name")
			// resync до ',' или '{'
			for !p.at(token.EOF) && !p.at(token.Comma) && !p.at(token.LBrace) && !p.at(token.Semicolon) {
				p.next()
			}
		} else {
			base.Name = name
			base.Span = sp
			decl.Bases = append(decl.Bases, base)
		}

		if !p.eat(token.Comma) {
			return
		}
	}
}

// parseQualifiedName reads 'a::b::C' and drops any trailing template
// argument list. Best-effort: a dependent or templated base keeps only
// its textual name and may later fail to resolve, which is fine.
func (p *Parser) parseQualifiedName() (string, source.Span, bool) {
	var parts []string
	start := p.peek().Span

	p.eat(token.ColonColon) // ведущий '::'
	if !p.at(token.Ident) && !p.at(token.KwTypename) {
		return "", source.Span{}, false
	}
	p.eat(token.KwTypename)
	if !p.at(token.Ident) {
		return "", source.Span{}, false
	}
	last := p.next()
	parts = append(parts, last.Text)

	for {
		if p.at(token.Lt) {
			p.skipAngles()
		}
		if !p.eat(token.ColonColon) {
			break
		}
		if !p.at(token.Ident) {
			break
		}
		last = p.next()
		parts = append(parts, last.Text)
	}

	return strings.Join(parts, "::"), start.Cover(last.Span), true
}

// skipAngles consumes a balanced '<...>' group.
func (p *Parser) skipAngles() {
	if !p.eat(token.Lt) {
		return
	}
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.next().Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.Semicolon, token.LBrace:
			// явно уехали за пределы списка аргументов
			return
		}
	}
}

func (p *Parser) qualify(name string) string {
	if len(p.ns) == 0 {
		return name
	}
	parts := make([]string, 0, len(p.ns)+1)
	for _, n := range p.ns {
		if n != "" {
			parts = append(parts, n)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, "::")
}

func accessOf(k token.Kind) cppast.Access {
	switch k {
	case token.KwPublic:
		return cppast.AccessPublic
	case token.KwProtected:
		return cppast.AccessProtected
	case token.KwPrivate:
		return cppast.AccessPrivate
	}
	return cppast.AccessNone
}
