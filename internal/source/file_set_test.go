package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.h", []byte("class A {};\n"))
	b := fs.AddVirtual("b.h", []byte("class B {};\n"))

	if a != 0 || b != 1 {
		t.Fatalf("expected ids 0,1, got %d,%d", a, b)
	}
	if fs.Get(a).Path != "a.h" {
		t.Fatalf("unexpected path %q", fs.Get(a).Path)
	}
	if fs.Get(a).Flags&FileVirtual == 0 {
		t.Fatalf("virtual flag not set")
	}
}

func TestAddSamePathKeepsLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("x.h", []byte("old"))
	second := fs.AddVirtual("x.h", []byte("new"))

	f, ok := fs.GetByPath("x.h")
	if !ok {
		t.Fatalf("path not indexed")
	}
	if f.ID != second {
		t.Fatalf("index points at %d, want %d", f.ID, second)
	}
	if string(f.Content) != "new" {
		t.Fatalf("content %q, want %q", f.Content, "new")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.h")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("class W {\r\n};\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "class W {\n};\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("normalization flags not set: %v", f.Flags)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.h", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // \n принадлежит строке, которую завершает
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Fatalf("offset %d resolved to %d:%d, want %d:%d",
				tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.h", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3 = %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4 = %q, want empty", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0 = %q, want empty", got)
	}
}

func TestOffsetOf(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.h", []byte("ab\ncd\nef"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		col  uint32
		off  uint32
		ok   bool
	}{
		{1, 1, 0, true},
		{1, 2, 1, true},
		{2, 1, 3, true},
		{3, 2, 7, true},
		{1, 99, 2, true}, // clamps to end of line
		{3, 99, 8, true}, // clamps to end of file
		{4, 1, 0, false},
		{0, 1, 0, false},
		{1, 0, 0, false},
	}
	for _, tc := range cases {
		off, ok := f.OffsetOf(LineCol{Line: tc.line, Col: tc.col})
		if ok != tc.ok || off != tc.off {
			t.Fatalf("%d:%d -> (%d,%v), want (%d,%v)",
				tc.line, tc.col, off, ok, tc.off, tc.ok)
		}
	}
}

func TestSpanCoverAndContains(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Fatalf("cover got %v", c)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files must be a no-op, got %v", got)
	}

	if !a.Contains(4) || a.Contains(8) {
		t.Fatalf("contains is not half-open")
	}
	if !At(1, 5).Empty() {
		t.Fatalf("At must produce an empty span")
	}
}
