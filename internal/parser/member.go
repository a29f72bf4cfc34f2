package parser

import (
	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/source"
	"purefix/internal/token"
)

// parseMembers разбирает тело класса до '}' (не съедая его).
func (p *Parser) parseMembers(decl *cppast.ClassDecl) {
	access := decl.DefaultAccess()

	// вложенные типы квалифицируются именем класса
	p.ns = append(p.ns, decl.Name)
	defer func() { p.ns = p.ns[:len(p.ns)-1] }()

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF, token.RBrace:
			return

		case token.KwPublic, token.KwProtected, token.KwPrivate:
			p.next()
			if !p.at(token.Colon) {
				p.errAt(diag.SynUnexpectedToken, tok.Span, "expected ':' after "+tok.Text)
				continue
			}
			colon := p.next()
			access = accessOf(tok.Kind)
			decl.Sections = append(decl.Sections, cppast.VisibilitySection{
				Access:   access,
				ColonOff: colon.Span.Start,
			})

		case token.KwTemplate:
			p.skipTemplatePrefix()

		case token.KwClass, token.KwStruct:
			p.parseClassOrSkip(access)

		case token.KwUsing, token.KwFriend, token.KwEnum:
			p.skipLooseItem()

		case token.Semicolon:
			p.next() // пустая декларация

		default:
			p.parseMemberDecl(decl, access)
		}
	}
}

// parseMemberDecl разбирает одну декларацию члена. Методы попадают в
// decl.Methods; поля и нераспознанные конструкции пропускаются.
func (p *Parser) parseMemberDecl(decl *cppast.ClassDecl, access cppast.Access) {
	m := &cppast.MethodDecl{Access: access}
	start := p.peek().Span

	// спецификаторы перед типом
specifiers:
	for {
		switch p.peek().Kind {
		case token.KwVirtual:
			m.IsVirtual = true
			p.next()
		case token.KwStatic:
			m.IsStatic = true
			p.next()
		case token.KwInline, token.KwExplicit, token.KwConstexpr, token.KwMutable:
			p.next()
		default:
			break specifiers
		}
	}

	// деструктор
	if p.at(token.Tilde) {
		p.next()
		if !p.at(token.Ident) {
			p.skipLooseItem()
			return
		}
		m.IsDtor = true
		m.Name = "~" + p.next().Text
		if !p.at(token.LParen) {
			p.skipLooseItem()
			return
		}
		p.finishMethod(decl, m, start)
		return
	}

	// декларатор: копим токены до '(' на нулевой глубине '<>'
	var buf []token.Token
	angleDepth := 0
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF || tok.Kind == token.RBrace:
			return

		case tok.Kind == token.Semicolon:
			// поле или typedef-подобная декларация — не операция
			p.next()
			return

		case tok.Kind == token.LBrace:
			// не функция (инициализатор поля и т.п.) — пропустить
			p.skipBalanced(token.LBrace, token.RBrace)
			p.eat(token.Semicolon)
			return

		case tok.Kind == token.KwOperator:
			p.next()
			m.Name = "operator" + p.collectOperatorSymbol()
			if len(buf) > 0 {
				m.ReturnType = renderTypeTokens(buf)
			}
			if !p.at(token.LParen) {
				p.skipLooseItem()
				return
			}
			p.finishMethod(decl, m, start)
			return

		case tok.Kind == token.Lt:
			angleDepth++
			buf = append(buf, p.next())

		case tok.Kind == token.Gt && angleDepth > 0:
			angleDepth--
			buf = append(buf, p.next())

		case tok.Kind == token.LParen && angleDepth == 0:
			if !isMethodDeclarator(decl, buf) {
				// указатель на функцию и прочие сложные деклараторы
				p.errAt(diag.SynBadMember, tok.Span, "unsupported member declarator")
				p.skipLooseItem()
				return
			}
			nameTok := buf[len(buf)-1]
			m.Name = nameTok.Text
			m.ReturnType = renderTypeTokens(buf[:len(buf)-1])
			if m.ReturnType == "" && m.Name == decl.Name {
				m.IsCtor = true
			}
			p.finishMethod(decl, m, start)
			return

		default:
			buf = append(buf, p.next())
		}
	}
}

// isMethodDeclarator проверяет, что токен перед '(' может быть именем
// метода. 'void (*cb)(int)' режется дважды: кандидат в имя — слово
// встроенного типа, а возвращаемого типа нет вовсе (без типа допустим
// только конструктор).
func isMethodDeclarator(decl *cppast.ClassDecl, buf []token.Token) bool {
	if len(buf) == 0 || !buf[len(buf)-1].IsIdent() {
		return false
	}
	name := buf[len(buf)-1].Text
	if builtinTypeWords[name] {
		return false
	}
	if len(buf) == 1 && name != decl.Name {
		return false
	}
	return true
}

// finishMethod разбирает параметры и суффиксы; текущий токен — '('.
func (p *Parser) finishMethod(decl *cppast.ClassDecl, m *cppast.MethodDecl, start source.Span) {
	m.Params = p.parseParams()

	last := start
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.KwConst:
			m.IsConst = true
			last = p.next().Span

		case token.Amp, token.AmpAmp:
			// ref-qualifier
			last = p.next().Span

		case token.KwNoexcept:
			last = p.next().Span
			if p.at(token.LParen) {
				p.skipBalanced(token.LParen, token.RParen)
			}

		case token.KwOverride:
			m.IsOverride = true
			last = p.next().Span

		case token.KwFinal:
			last = p.next().Span

		case token.Assign:
			p.next()
			switch {
			case p.at(token.IntLit) && p.peek().Text == "0":
				last = p.next().Span
				m.IsPure = true
				m.IsVirtual = true
			case p.at(token.KwDefault) || p.at(token.KwDelete):
				last = p.next().Span
			default:
				p.errAt(diag.SynUnexpectedToken, p.peek().Span, "unexpected token after '='")
			}

		case token.Colon:
			// ctor-init list: до тела
			for !p.at(token.EOF) && !p.at(token.LBrace) && !p.at(token.Semicolon) {
				p.next()
			}

		case token.Arrow:
			// trailing return type: съедаем до ';'/'{'
			p.next()
			for !p.at(token.EOF) && !p.at(token.LBrace) && !p.at(token.Semicolon) &&
				!p.at(token.KwOverride) && !p.at(token.KwFinal) {
				p.next()
			}

		case token.LBracket:
			p.skipBalanced(token.LBracket, token.RBracket)

		case token.LBrace:
			p.skipBalanced(token.LBrace, token.RBrace)
			p.eat(token.Semicolon)
			m.Span = start.Cover(last)
			decl.Methods = append(decl.Methods, m)
			return

		case token.Semicolon:
			last = p.next().Span
			m.Span = start.Cover(last)
			decl.Methods = append(decl.Methods, m)
			return

		default:
			// EOF, RBrace, мусор
			p.errAt(diag.SynExpectSemicolon, tok.Span, "expected ';' after member declaration")
			m.Span = start.Cover(last)
			decl.Methods = append(decl.Methods, m)
			return
		}
	}
}

// parseParams разбирает '(...)' в список параметров.
func (p *Parser) parseParams() []cppast.Param {
	if !p.eat(token.LParen) {
		return nil
	}

	var params []cppast.Param
	var buf []token.Token
	parenDepth := 0
	angleDepth := 0

	flush := func() {
		if len(buf) == 0 {
			return
		}
		params = append(params, renderParam(buf))
		buf = buf[:0]
	}

	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			flush()
			return params

		case tok.Kind == token.RParen && parenDepth == 0:
			p.next()
			flush()
			return params

		case tok.Kind == token.LParen:
			parenDepth++
			buf = append(buf, p.next())

		case tok.Kind == token.RParen:
			parenDepth--
			buf = append(buf, p.next())

		case tok.Kind == token.Lt:
			angleDepth++
			buf = append(buf, p.next())

		case tok.Kind == token.Gt && angleDepth > 0:
			angleDepth--
			buf = append(buf, p.next())

		case tok.Kind == token.Comma && parenDepth == 0 && angleDepth == 0:
			p.next()
			flush()

		default:
			buf = append(buf, p.next())
		}
	}
}

// collectOperatorSymbol копит токены имени оператора до '('.
func (p *Parser) collectOperatorSymbol() string {
	sym := ""
	for !p.at(token.EOF) && !p.at(token.LParen) {
		tok := p.next()
		if tok.IsIdent() || tok.IsKeyword() {
			// conversion operator: 'operator bool'
			sym += " "
		}
		sym += tok.Text
	}
	return sym
}
