package tweak

import (
	"fmt"
	"strings"

	"purefix/internal/cppast"
	"purefix/internal/edit"
	"purefix/internal/sema"
	"purefix/internal/source"
)

func init() {
	Register(&overridePureVirtuals{})
}

// overridePureVirtuals вставляет заглушки для всех чисто виртуальных
// операций, унаследованных классом под курсором и ещё не
// реализованных.
type overridePureVirtuals struct{}

func (*overridePureVirtuals) ID() string    { return "override-pure-virtuals" }
func (*overridePureVirtuals) Title() string { return "Override pure virtual methods" }
func (*overridePureVirtuals) Kind() Kind    { return KindRefactor }

// gateState — этапы проверки применимости. Каждый ранний этап
// отсекает твик; доступен он только в терминальном состоянии.
type gateState uint8

const (
	gateNoClass gateState = iota
	gateClassSelected
	gateAbstractBase
	gateHasMissing
)

func (*overridePureVirtuals) gate(sel *Selection) (gateState, *cppast.ClassDecl, sema.MissingResult) {
	target, ok := sel.EnclosingClass()
	if !ok {
		return gateNoClass, nil, sema.MissingResult{}
	}
	if !sema.HasAbstractBase(sel.Index, target) {
		return gateClassSelected, target, sema.MissingResult{}
	}
	missing := sema.ComputeMissing(sel.Index, target, sel.Bag)
	if len(missing.Missing) == 0 {
		return gateAbstractBase, target, missing
	}
	return gateHasMissing, target, missing
}

func (t *overridePureVirtuals) IsAvailable(sel *Selection) bool {
	state, _, _ := t.gate(sel)
	return state == gateHasMissing
}

// Apply пересчитывает недостающие операции заново: между IsAvailable и
// Apply модель могла измениться.
func (t *overridePureVirtuals) Apply(sel *Selection) (edit.Patch, error) {
	state, target, missing := t.gate(sel)
	if state != gateHasMissing {
		return edit.Patch{}, fmt.Errorf("tweak: no unimplemented pure virtual methods at this position")
	}

	return EmitPatch(t.Title(), target, missing.Missing, sel.Opts), nil
}

// Missing exposes the computed missing set for a selection so callers
// (the interactive picker) can let the user choose a subset first.
func Missing(sel *Selection) (*cppast.ClassDecl, []*sema.Slot, error) {
	t := &overridePureVirtuals{}
	state, target, missing := t.gate(sel)
	if state != gateHasMissing {
		return nil, nil, fmt.Errorf("tweak: no unimplemented pure virtual methods at this position")
	}
	return target, missing.Missing, nil
}

// EmitPatch packages rendered stubs for the given slots into a single
// insert-only edit. An empty slot list yields a patch with no edits.
func EmitPatch(title string, target *cppast.ClassDecl, slots []*sema.Slot, opts Options) edit.Patch {
	if len(slots) == 0 {
		return edit.Patch{Title: title}
	}
	var text strings.Builder
	text.WriteByte('\n')
	for _, slot := range slots {
		text.WriteString(RenderStub(slot.Root, opts))
	}
	return edit.Patch{
		Title: title,
		Edits: []edit.TextEdit{{
			Span:    source.At(target.File, insertionOffset(target)),
			NewText: text.String(),
		}},
	}
}

// insertionOffset выбирает точку вставки: сразу после двоеточия первой
// public-метки, иначе сразу после открывающей скобки тела. Так
// заглушки оказываются наверху public-секции и видны сразу.
func insertionOffset(c *cppast.ClassDecl) uint32 {
	if sec, ok := c.Section(cppast.AccessPublic); ok {
		return sec.ColonOff + 1
	}
	return c.BodySpan.Start + 1
}

// RenderStub renders one missing operation as a declaration line. Body
// mode emits an inline body whose default is a static_assert naming the
// method, so the gap stays loud until someone writes a real
// implementation. Declaration mode ends with ';'.
func RenderStub(m *cppast.MethodDecl, opts Options) string {
	var b strings.Builder
	if m.ReturnType != "" {
		b.WriteString(m.ReturnType)
		b.WriteByte(' ')
	}
	b.WriteString(m.Name)
	b.WriteByte('(')
	b.WriteString(renderStubParams(m.Params))
	b.WriteString(") ")
	if m.IsConst {
		b.WriteString("const ")
	}
	b.WriteString("override")

	switch opts.Mode {
	case StubDeclaration:
		b.WriteString(";\n")
	default:
		placeholder := opts.Placeholder
		if placeholder == "" {
			placeholder = "static_assert(false, \"`%s` is unimplemented.\");"
		}
		b.WriteString(" { ")
		b.WriteString(strings.ReplaceAll(placeholder, "%s", m.Name))
		b.WriteString(" }\n")
	}
	return b.String()
}

// renderStubParams печатает параметры как `тип имя`; безымянные
// параметры получают синтетическое имя P<n>, чтобы заглушка сразу
// компилировалась как определение.
func renderStubParams(params []cppast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		parts[i] = p.Type + " " + name
	}
	return strings.Join(parts, ", ")
}
