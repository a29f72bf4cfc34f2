package edit

import (
	"testing"

	"purefix/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestApplyInsert(t *testing.T) {
	got, err := Apply([]byte("class A {};"), []TextEdit{
		{Span: span(9, 9), NewText: "\n  void F();\n"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "class A {\n  void F();\n};"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyReplaceWithGuard(t *testing.T) {
	got, err := Apply([]byte("int x = 1;"), []TextEdit{
		{Span: span(8, 9), NewText: "2", OldText: "1"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(got) != "int x = 2;" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyGuardMismatch(t *testing.T) {
	_, err := Apply([]byte("int x = 9;"), []TextEdit{
		{Span: span(8, 9), NewText: "2", OldText: "1"},
	})
	if err == nil {
		t.Fatalf("want guard mismatch error")
	}
}

func TestApplyMultipleBottomUp(t *testing.T) {
	// правки заданы в порядке возрастания; применение не должно
	// портить смещения
	got, err := Apply([]byte("aaa bbb ccc"), []TextEdit{
		{Span: span(0, 3), NewText: "X"},
		{Span: span(4, 7), NewText: "YY"},
		{Span: span(8, 11), NewText: "ZZZ"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(got) != "X YY ZZZ" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyOverlapRejected(t *testing.T) {
	_, err := Apply([]byte("abcdef"), []TextEdit{
		{Span: span(0, 4), NewText: "x"},
		{Span: span(2, 6), NewText: "y"},
	})
	if err == nil {
		t.Fatalf("want overlap error")
	}
}

func TestApplySamePositionInsertsConflict(t *testing.T) {
	_, err := Apply([]byte("ab"), []TextEdit{
		{Span: span(1, 1), NewText: "x"},
		{Span: span(1, 1), NewText: "y"},
	})
	if err == nil {
		t.Fatalf("two inserts at one offset must conflict")
	}
}

func TestApplyOutOfRange(t *testing.T) {
	_, err := Apply([]byte("ab"), []TextEdit{
		{Span: span(1, 5), NewText: "x"},
	})
	if err == nil {
		t.Fatalf("want out of range error")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	src := []byte("hello")
	_, err := Apply(src, []TextEdit{{Span: span(0, 5), NewText: "bye"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if string(src) != "hello" {
		t.Fatalf("input mutated: %q", src)
	}
}

func TestConflicts(t *testing.T) {
	cases := []struct {
		name string
		a, b TextEdit
		want bool
	}{
		{"disjoint", TextEdit{Span: span(0, 2)}, TextEdit{Span: span(3, 5)}, false},
		{"touching", TextEdit{Span: span(0, 2)}, TextEdit{Span: span(2, 4)}, false},
		{"overlap", TextEdit{Span: span(0, 3)}, TextEdit{Span: span(2, 4)}, true},
		{"insert inside", TextEdit{Span: span(1, 1)}, TextEdit{Span: span(0, 3)}, true},
		{"insert at end", TextEdit{Span: span(3, 3)}, TextEdit{Span: span(0, 3)}, false},
		{"inserts apart", TextEdit{Span: span(1, 1)}, TextEdit{Span: span(2, 2)}, false},
		{"inserts same", TextEdit{Span: span(1, 1)}, TextEdit{Span: span(1, 1)}, true},
	}
	for _, tc := range cases {
		if got := Conflicts(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: Conflicts = %v, want %v", tc.name, got, tc.want)
		}
		if got := Conflicts(tc.b, tc.a); got != tc.want {
			t.Errorf("%s (swapped): Conflicts = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyPatch(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.h", []byte("struct S {};"))
	patch := Patch{
		Title: "insert member",
		Edits: []TextEdit{{
			Span:    source.At(id, 10),
			NewText: "\n  void F();\n",
		}},
	}
	gotID, out, err := ApplyPatch(fs, patch)
	if err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}
	if gotID != id {
		t.Fatalf("file id %d, want %d", gotID, id)
	}
	if string(out) != "struct S {\n  void F();\n};" {
		t.Fatalf("got %q", out)
	}
}

func TestApplyPatchEmpty(t *testing.T) {
	fs := source.NewFileSet()
	if _, _, err := ApplyPatch(fs, Patch{}); err != ErrNoEdits {
		t.Fatalf("err = %v, want ErrNoEdits", err)
	}
}
