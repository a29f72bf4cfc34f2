// Package tweak hosts cursor-driven refactorings. A tweak advertises
// itself for a selection via IsAvailable and produces a patch via
// Apply; the registry lets commands enumerate and dispatch by ID.
package tweak

import (
	"fmt"
	"sort"

	"purefix/internal/edit"
)

// Kind классифицирует твик для вывода и фильтрации.
type Kind string

const (
	KindRefactor Kind = "refactor"
	KindQuickFix Kind = "quickfix"
)

// Tweak — одно рефакторинг-действие над выделением.
//
// IsAvailable обязан быть дешёвым: он зовётся для каждого
// зарегистрированного твика на каждый запрос. Apply пересчитывает всё
// заново и не полагается на состояние, вычисленное в IsAvailable.
type Tweak interface {
	ID() string
	Title() string
	Kind() Kind
	IsAvailable(sel *Selection) bool
	Apply(sel *Selection) (edit.Patch, error)
}

var registry = map[string]Tweak{}

// Register adds a tweak to the global registry. Called from package
// init functions; duplicate IDs are a programming error.
func Register(t Tweak) {
	if _, dup := registry[t.ID()]; dup {
		panic(fmt.Sprintf("tweak: duplicate id %q", t.ID()))
	}
	registry[t.ID()] = t
}

// ByID looks a tweak up by its stable identifier.
func ByID(id string) (Tweak, bool) {
	t, ok := registry[id]
	return t, ok
}

// All returns every registered tweak sorted by ID.
func All() []Tweak {
	out := make([]Tweak, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Available filters the registry down to tweaks applicable at sel.
func Available(sel *Selection) []Tweak {
	var out []Tweak
	for _, t := range All() {
		if t.IsAvailable(sel) {
			out = append(out, t)
		}
	}
	return out
}
