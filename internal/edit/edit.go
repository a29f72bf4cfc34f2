// Package edit represents and applies textual edits to source buffers.
// Edits are expressed against the original file content; application is
// transactional per file: either every edit lands or none do.
package edit

import (
	"errors"
	"fmt"
	"sort"

	"purefix/internal/source"
)

// ErrNoEdits is returned when an apply request carries no edits.
var ErrNoEdits = errors.New("no edits to apply")

// TextEdit заменяет Span на NewText. Вставка — это edit с пустым
// спаном (Start == End). OldText, если задан, — охранное значение:
// применение падает, когда файл в этом месте уже выглядит иначе.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// IsInsert reports whether the edit replaces nothing.
func (e TextEdit) IsInsert() bool { return e.Span.Start == e.Span.End }

// Patch — набор правок одного логического изменения, с заголовком для
// вывода пользователю.
type Patch struct {
	Title string
	Edits []TextEdit
}

// Conflicts reports whether two edits' spans overlap. Spans are
// half-open [Start, End). Two inserts at the same position conflict:
// their relative order would be ambiguous.
func Conflicts(a, b TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return aStart == bStart
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// Apply применяет правки к содержимому файла и возвращает новый буфер.
// Исходный буфер не меняется. Правки применяются снизу вверх, поэтому
// их спаны не нуждаются в пересчёте смещений.
func Apply(content []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return nil, ErrNoEdits
	}

	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Span.Start == ordered[j].Span.Start {
			return ordered[i].Span.End > ordered[j].Span.End
		}
		return ordered[i].Span.Start > ordered[j].Span.Start
	})

	for i := 1; i < len(ordered); i++ {
		if Conflicts(ordered[i-1], ordered[i]) {
			return nil, fmt.Errorf("edit: overlapping edits at offset %d", ordered[i].Span.Start)
		}
	}

	working := append([]byte(nil), content...)
	for _, e := range ordered {
		start, end := int(e.Span.Start), int(e.Span.End)
		if start < 0 || end < start || end > len(working) {
			return nil, fmt.Errorf("edit: span %s out of range (len %d)", e.Span, len(working))
		}
		if e.OldText != "" && string(working[start:end]) != e.OldText {
			return nil, fmt.Errorf("edit: text at offset %d does not match expected content", start)
		}
		suffix := append([]byte(nil), working[end:]...)
		working = append(append(working[:start], []byte(e.NewText)...), suffix...)
	}
	return working, nil
}

// ApplyPatch applies a patch to the file it targets and returns the new
// content. All edits must target the same file.
func ApplyPatch(fs *source.FileSet, p Patch) (source.FileID, []byte, error) {
	if len(p.Edits) == 0 {
		return 0, nil, ErrNoEdits
	}
	id := p.Edits[0].Span.File
	for _, e := range p.Edits[1:] {
		if e.Span.File != id {
			return 0, nil, fmt.Errorf("edit: patch spans multiple files")
		}
	}
	file := fs.Get(id)
	if file == nil {
		return 0, nil, fmt.Errorf("edit: unknown file id %d", id)
	}
	out, err := Apply(file.Content, p.Edits)
	if err != nil {
		return 0, nil, err
	}
	return id, out, nil
}
