package sema

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"purefix/internal/cppast"
)

// SigKey — каноническая идентичность виртуальной операции: имя, типы
// параметров и const-квалификатор. Имена параметров и возвращаемый тип
// в идентичность не входят (как в правилах переопределения C++).
// Текст нормализуется в NFC, чтобы одинаковые идентификаторы в разных
// Unicode-представлениях совпадали.
type SigKey string

// KeyOf computes the canonical signature key for a method.
func KeyOf(m *cppast.MethodDecl) SigKey {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Type)
	}
	b.WriteByte(')')
	if m.IsConst {
		b.WriteString(" const")
	}
	return SigKey(norm.NFC.String(b.String()))
}
