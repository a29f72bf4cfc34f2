// Package sema builds a class index over parsed headers and answers the
// semantic questions the tweaks need: base resolution, the override
// relation between member functions, and class abstractness.
package sema

import (
	"sort"
	"strings"

	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/source"
)

// Index — индекс всех классов по имени. Разрешение имён упрощённое:
// сначала точное квалифицированное имя, затем единственный суффиксный
// кандидат (A::B матчит outer::A::B, если других вариантов нет).
type Index struct {
	byQualified map[string]*cppast.ClassDecl
	bySimple    map[string][]*cppast.ClassDecl
	classes     []*cppast.ClassDecl
}

// NewIndex строит индекс из набора деклараций. При дубликатах
// квалифицированного имени побеждает первая декларация (redefinition —
// не наша забота).
func NewIndex(classes []*cppast.ClassDecl) *Index {
	ix := &Index{
		byQualified: make(map[string]*cppast.ClassDecl, len(classes)),
		bySimple:    make(map[string][]*cppast.ClassDecl, len(classes)),
		classes:     classes,
	}
	for _, c := range classes {
		if _, dup := ix.byQualified[c.QualifiedName]; !dup {
			ix.byQualified[c.QualifiedName] = c
		}
		ix.bySimple[c.Name] = append(ix.bySimple[c.Name], c)
	}
	return ix
}

// Classes returns every indexed class in declaration order. The slice
// is a copy: callers may reorder it without touching the index.
func (ix *Index) Classes() []*cppast.ClassDecl {
	out := make([]*cppast.ClassDecl, len(ix.classes))
	copy(out, ix.classes)
	return out
}

// Lookup resolves a possibly-qualified name with no context.
func (ix *Index) Lookup(name string) (*cppast.ClassDecl, bool) {
	if c, ok := ix.byQualified[name]; ok {
		return c, true
	}
	simple := name
	if i := strings.LastIndex(name, "::"); i >= 0 {
		simple = name[i+2:]
	}
	cands := ix.bySimple[simple]
	if len(cands) == 1 && qualifiedMatches(cands[0].QualifiedName, name) {
		return cands[0], true
	}
	return nil, false
}

// ResolveBase резолвит имя базы из контекста наследника: сначала ищем
// имя в объемлющих namespace (изнутри наружу), потом глобально.
func (ix *Index) ResolveBase(from *cppast.ClassDecl, base cppast.BaseSpec) (*cppast.ClassDecl, bool) {
	scope := from.QualifiedName
	for {
		i := strings.LastIndex(scope, "::")
		if i < 0 {
			break
		}
		scope = scope[:i]
		if c, ok := ix.byQualified[scope+"::"+base.Name]; ok {
			return c, true
		}
	}
	return ix.Lookup(base.Name)
}

// AtOffset returns the innermost class whose body contains the given
// offset, the selection target for a cursor position.
func (ix *Index) AtOffset(id source.FileID, off uint32) (*cppast.ClassDecl, bool) {
	var best *cppast.ClassDecl
	for _, c := range ix.classes {
		if c.File != id || !c.Span.Contains(off) {
			continue
		}
		if best == nil || c.Span.Len() < best.Span.Len() {
			best = c
		}
	}
	return best, best != nil
}

// Bases возвращает разрешённые прямые базы класса; неразрешённые имена
// репортятся в bag (если он не nil) и пропускаются.
func (ix *Index) Bases(c *cppast.ClassDecl, bag *diag.Bag) []*cppast.ClassDecl {
	out := make([]*cppast.ClassDecl, 0, len(c.Bases))
	for _, b := range c.Bases {
		res, ok := ix.ResolveBase(c, b)
		if !ok {
			if bag != nil {
				bag.Add(diag.NewWarning(diag.ResUnresolvedBase, b.Span,
					"cannot resolve base class `"+b.Name+"`"))
			}
			continue
		}
		out = append(out, res)
	}
	return out
}

// walkAncestors обходит граф наследования в глубину, pre-order: база,
// затем рекурсивно её предки, затем следующая объявленная база. depth
// считается от c (прямые базы — 1). Каждый класс посещается один раз,
// поэтому ромбы не повторяются, а циклы завершаются.
func (ix *Index) walkAncestors(c *cppast.ClassDecl, bag *diag.Bag, visit func(anc *cppast.ClassDecl, depth int)) {
	seen := map[*cppast.ClassDecl]bool{c: true}
	var rec func(cur *cppast.ClassDecl, depth int)
	rec = func(cur *cppast.ClassDecl, depth int) {
		for _, base := range ix.Bases(cur, bag) {
			if seen[base] {
				continue
			}
			seen[base] = true
			visit(base, depth)
			rec(base, depth+1)
		}
	}
	rec(c, 1)
}

// Ancestors returns the ancestors of c (excluding c itself) in
// depth-first pre-order over the declared bases. The order is the one
// generated stubs come out in.
func (ix *Index) Ancestors(c *cppast.ClassDecl, bag *diag.Bag) []*cppast.ClassDecl {
	var out []*cppast.ClassDecl
	ix.walkAncestors(c, bag, func(anc *cppast.ClassDecl, _ int) {
		out = append(out, anc)
	})
	return out
}

// SortClasses orders classes by file and then by position, the order
// scan output is presented in.
func SortClasses(classes []*cppast.ClassDecl) {
	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].File != classes[j].File {
			return classes[i].File < classes[j].File
		}
		return classes[i].Span.Start < classes[j].Span.Start
	})
}

func qualifiedMatches(qualified, name string) bool {
	if qualified == name {
		return true
	}
	return strings.HasSuffix(qualified, "::"+name)
}
