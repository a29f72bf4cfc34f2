package diag

import (
	"testing"

	"purefix/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !b.Add(NewError(SynUnexpectedToken, sp, "one")) {
		t.Fatalf("first add rejected")
	}
	if !b.Add(NewError(SynUnexpectedToken, sp, "two")) {
		t.Fatalf("second add rejected")
	}
	if b.Add(NewError(SynUnexpectedToken, sp, "three")) {
		t.Fatalf("limit not enforced")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 5, End: 6}, "later"))
	b.Add(NewWarning(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "warn"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "err"))
	b.Sort()

	items := b.Items()
	if items[0].Severity != SevError || items[0].Primary.File != 0 {
		t.Fatalf("sort order wrong: %+v", items)
	}
	if items[1].Severity != SevWarning {
		t.Fatalf("severity tie-break wrong: %+v", items[1])
	}
	if items[2].Primary.File != 1 {
		t.Fatalf("file ordering wrong: %+v", items[2])
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	sp := source.Span{File: 0, Start: 3, End: 4}
	b.Add(NewError(SynExpectSemicolon, sp, "missing semicolon"))
	b.Add(NewError(SynExpectSemicolon, sp, "missing semicolon again"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("dedup kept %d items", b.Len())
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(5)
	r := BagReporter{Bag: b}
	r.Report(ResUnresolvedBase, SevInfo, source.Span{}, "cannot resolve base", nil)
	if b.Len() != 1 || b.HasErrors() {
		t.Fatalf("reporter misbehaved: len=%d hasErrors=%v", b.Len(), b.HasErrors())
	}

	// nil bag не должен паниковать
	BagReporter{}.Report(UnknownCode, SevError, source.Span{}, "x", nil)
}
