package tweak

import (
	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/sema"
	"purefix/internal/source"
)

// StubMode controls what the generated member stubs look like.
type StubMode uint8

const (
	// StubBody emits an inline body with a compile-time marker.
	StubBody StubMode = iota
	// StubDeclaration emits a bare declaration terminated by ';'.
	StubDeclaration
)

// Options — настройки генерации, приходят из конфига проекта и флагов.
type Options struct {
	Mode StubMode
	// Placeholder overrides the default body. The method name is
	// substituted for every '%s'.
	Placeholder string
}

// Selection — позиция курсора плюс всё, что твику нужно для работы:
// файлы, семантический индекс и мешок для диагностик.
type Selection struct {
	FileSet *source.FileSet
	Index   *sema.Index
	File    source.FileID
	Cursor  uint32
	Bag     *diag.Bag
	Opts    Options
}

// EnclosingClass returns the innermost class whose declaration covers
// the cursor.
func (sel *Selection) EnclosingClass() (*cppast.ClassDecl, bool) {
	if sel.Index == nil {
		return nil, false
	}
	return sel.Index.AtOffset(sel.File, sel.Cursor)
}
