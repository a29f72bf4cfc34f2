package sema

import (
	"purefix/internal/cppast"
	"purefix/internal/diag"
)

// Slot — один «слот» чисто виртуальной операции: корневая декларация
// плюс все унаследованные декларации той же сигнатуры. У ромбовидного
// наследования объявления из обеих ветвей сливаются в один слот.
type Slot struct {
	Key   SigKey
	Root  *cppast.MethodDecl // самая дальняя по иерархии декларация
	Decls []*cppast.MethodDecl
}

// MissingResult — итог вычисления недостающих операций для класса.
type MissingResult struct {
	Target  *cppast.ClassDecl
	Missing []*Slot // в порядке обхода иерархии, детерминированно
}

// Overrides reports whether derived's member function overrides base's
// virtual function: same canonical signature, base is virtual.
func Overrides(derived, base *cppast.MethodDecl) bool {
	if !base.IsVirtual || base.IsCtor || base.IsDtor {
		return false
	}
	if derived.IsCtor || derived.IsDtor || derived.IsStatic {
		return false
	}
	return KeyOf(derived) == KeyOf(base)
}

// ComputeMissing собирает чисто виртуальные слоты всех предков target в
// порядке DFS-обхода иерархии и вычитает те, которые перекрыты
// собственным членом target. Порядок результата — порядок первого
// появления слота при обходе.
func ComputeMissing(ix *Index, target *cppast.ClassDecl, bag *diag.Bag) MissingResult {
	res := MissingResult{Target: target}

	slots := make(map[SigKey]*Slot)
	rootDepth := make(map[SigKey]int)
	var order []SigKey

	ix.walkAncestors(target, bag, func(anc *cppast.ClassDecl, depth int) {
		for _, m := range anc.OwnPureVirtuals() {
			key := KeyOf(m)
			if s, ok := slots[key]; ok {
				s.Decls = append(s.Decls, m)
				if depth > rootDepth[key] {
					// корень слота — самая дальняя декларация
					s.Root = m
					rootDepth[key] = depth
				}
				continue
			}
			slots[key] = &Slot{Key: key, Root: m, Decls: []*cppast.MethodDecl{m}}
			rootDepth[key] = depth
			order = append(order, key)
		}
	})

	for _, key := range order {
		s := slots[key]
		if overridesSlot(target, s) {
			continue
		}
		res.Missing = append(res.Missing, s)
	}
	return res
}

// overridesSlot: собственный член target, переопределяющий корневую
// декларацию слота, закрывает его. Слово override не обязательно,
// повторная чисто виртуальная декларация тоже считается: член уже есть,
// дубликат не скомпилируется.
func overridesSlot(target *cppast.ClassDecl, s *Slot) bool {
	for _, m := range target.Methods {
		if Overrides(m, s.Root) {
			return true
		}
	}
	return false
}

// HasAbstractBase reports whether any ancestor declares at least one
// pure virtual member function.
func HasAbstractBase(ix *Index, target *cppast.ClassDecl) bool {
	for _, anc := range ix.Ancestors(target, nil) {
		if len(anc.OwnPureVirtuals()) > 0 {
			return true
		}
	}
	return false
}
