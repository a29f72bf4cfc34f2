package sema

import (
	"testing"

	"purefix/internal/cppast"
	"purefix/internal/diag"
	"purefix/internal/lexer"
	"purefix/internal/parser"
	"purefix/internal/source"
)

func indexSource(t *testing.T, src string) (*Index, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.h", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	res := parser.ParseFile(fs, lx, parser.Options{})
	return NewIndex(res.Classes), fs
}

func class(t *testing.T, ix *Index, name string) *cppast.ClassDecl {
	t.Helper()
	c, ok := ix.Lookup(name)
	if !ok {
		t.Fatalf("class %q not found", name)
	}
	return c
}

func missingNames(res MissingResult) []string {
	var out []string
	for _, s := range res.Missing {
		out = append(out, s.Root.Name)
	}
	return out
}

func TestComputeMissingBasic(t *testing.T) {
	ix, _ := indexSource(t, `
class Base {
public:
  virtual void F1() = 0;
  virtual void F2() = 0;
  virtual void NonPure();
};
class D : public Base {
public:
  void F2() override;
};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	got := missingNames(res)
	if len(got) != 1 || got[0] != "F1" {
		t.Fatalf("missing = %v, want [F1]", got)
	}
}

func TestComputeMissingOverloadsAreDistinct(t *testing.T) {
	ix, _ := indexSource(t, `
class Base {
public:
  virtual void F(int) = 0;
  virtual void F(double) = 0;
  virtual void G() = 0;
  virtual void G() const = 0;
};
class D : public Base {
public:
  void F(int) override;
  void G() const override;
};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	if len(res.Missing) != 2 {
		t.Fatalf("missing = %v", missingNames(res))
	}
	// осталась F(double) и неконстантная G()
	if res.Missing[0].Root.Params[0].Type != "double" {
		t.Fatalf("slot 0: %+v", res.Missing[0].Root)
	}
	if res.Missing[1].Root.Name != "G" || res.Missing[1].Root.IsConst {
		t.Fatalf("slot 1: %+v", res.Missing[1].Root)
	}
}

func TestComputeMissingDiamondDedup(t *testing.T) {
	ix, _ := indexSource(t, `
class Root {
public:
  virtual void F() = 0;
};
class L : public virtual Root {};
class R : public virtual Root {};
class D : public L, public R {};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	if len(res.Missing) != 1 {
		t.Fatalf("diamond not deduplicated: %v", missingNames(res))
	}
	slot := res.Missing[0]
	if len(slot.Decls) != 1 {
		t.Fatalf("slot decls: %d", len(slot.Decls))
	}
	if slot.Root.Name != "F" {
		t.Fatalf("root: %+v", slot.Root)
	}
}

func TestComputeMissingRedeclaredInBothBranches(t *testing.T) {
	ix, _ := indexSource(t, `
class Root {
public:
  virtual void F() = 0;
};
class L : public Root {
public:
  virtual void F() = 0;
};
class D : public L {};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	if len(res.Missing) != 1 {
		t.Fatalf("missing = %v", missingNames(res))
	}
	slot := res.Missing[0]
	if len(slot.Decls) != 2 {
		t.Fatalf("slot must merge both declarations, got %d", len(slot.Decls))
	}
	if slot.Root != class(t, ix, "Root").Methods[0] {
		t.Fatalf("slot root must be the most distal declaration")
	}
}

func TestComputeMissingImplementedWithoutOverrideKeyword(t *testing.T) {
	ix, _ := indexSource(t, `
class Base {
public:
  virtual void F() = 0;
};
class D : public Base {
public:
  void F(); // без слова override
};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	if len(res.Missing) != 0 {
		t.Fatalf("missing = %v, want none", missingNames(res))
	}
}

func TestComputeMissingConstMismatchDoesNotImplement(t *testing.T) {
	ix, _ := indexSource(t, `
class Base {
public:
  virtual void F() const = 0;
};
class D : public Base {
public:
  void F();
};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	if len(res.Missing) != 1 {
		t.Fatalf("const-mismatched member must not close the slot")
	}
}

func TestComputeMissingExcludesDtor(t *testing.T) {
	ix, _ := indexSource(t, `
class Base {
public:
  virtual ~Base() = 0;
  virtual void F() = 0;
};
class D : public Base {};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	got := missingNames(res)
	if len(got) != 1 || got[0] != "F" {
		t.Fatalf("missing = %v, want [F]", got)
	}
}

func TestComputeMissingDeepChainOrder(t *testing.T) {
	ix, _ := indexSource(t, `
class A {
public:
  virtual void FA() = 0;
};
class B : public A {
public:
  virtual void FB() = 0;
};
class D : public B {};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	got := missingNames(res)
	// прямые базы идут первыми
	if len(got) != 2 || got[0] != "FB" || got[1] != "FA" {
		t.Fatalf("missing = %v, want [FB FA]", got)
	}
}

func TestComputeMissingDepthFirstAcrossSiblings(t *testing.T) {
	ix, _ := indexSource(t, `
class A {
public:
  virtual void FA() = 0;
};
class B1 : public A {
public:
  virtual void FB1() = 0;
};
class B2 {
public:
  virtual void FB2() = 0;
};
class D : public B1, public B2 {};
`)
	res := ComputeMissing(ix, class(t, ix, "D"), nil)
	got := missingNames(res)
	// предки первой базы идут до следующей объявленной базы
	if len(got) != 3 || got[0] != "FB1" || got[1] != "FA" || got[2] != "FB2" {
		t.Fatalf("missing = %v, want [FB1 FA FB2]", got)
	}
}

func TestOverridesRelation(t *testing.T) {
	base := &cppast.MethodDecl{Name: "F", IsVirtual: true, IsPure: true}
	if !Overrides(&cppast.MethodDecl{Name: "F"}, base) {
		t.Fatalf("same signature must override")
	}
	if Overrides(&cppast.MethodDecl{Name: "F", IsConst: true}, base) {
		t.Fatalf("const mismatch must not override")
	}
	if Overrides(&cppast.MethodDecl{Name: "F", Params: []cppast.Param{{Type: "int"}}}, base) {
		t.Fatalf("param mismatch must not override")
	}
	if Overrides(&cppast.MethodDecl{Name: "F", IsStatic: true}, base) {
		t.Fatalf("static member must not override")
	}
	if Overrides(&cppast.MethodDecl{Name: "F"}, &cppast.MethodDecl{Name: "F"}) {
		t.Fatalf("non-virtual base function cannot be overridden")
	}
}

func TestResolveBaseInNamespace(t *testing.T) {
	ix, _ := indexSource(t, `
namespace ns {
class Base {
public:
  virtual void F() = 0;
};
class D : public Base {};
}
class Outside : public ns::Base {};
`)
	d := class(t, ix, "ns::D")
	bases := ix.Bases(d, nil)
	if len(bases) != 1 || bases[0].QualifiedName != "ns::Base" {
		t.Fatalf("bases: %+v", bases)
	}

	out := class(t, ix, "Outside")
	bases = ix.Bases(out, nil)
	if len(bases) != 1 || bases[0].QualifiedName != "ns::Base" {
		t.Fatalf("qualified base: %+v", bases)
	}
}

func TestUnresolvedBaseReported(t *testing.T) {
	ix, _ := indexSource(t, `
class D : public Unknown {
public:
  void m();
};
`)
	bag := diag.NewBag(10)
	bases := ix.Bases(class(t, ix, "D"), bag)
	if len(bases) != 0 {
		t.Fatalf("bases: %+v", bases)
	}
	if bag.Len() != 1 {
		t.Fatalf("want one warning, got %d", bag.Len())
	}
	if bag.Items()[0].Code != diag.ResUnresolvedBase {
		t.Fatalf("code: %v", bag.Items()[0].Code)
	}
}

func TestInheritanceCycleTerminates(t *testing.T) {
	ix, _ := indexSource(t, `
class A : public B {};
class B : public A {
public:
  virtual void F() = 0;
};
`)
	res := ComputeMissing(ix, class(t, ix, "A"), nil)
	if len(res.Missing) != 1 {
		t.Fatalf("missing = %v", missingNames(res))
	}
}

func TestIsAbstract(t *testing.T) {
	ix, _ := indexSource(t, `
class Iface {
public:
  virtual void F() = 0;
};
class Partial : public Iface {};
class Done : public Iface {
public:
  void F() override;
};
`)
	if !IsAbstract(ix, class(t, ix, "Iface")) {
		t.Fatalf("Iface must be abstract")
	}
	if !IsAbstract(ix, class(t, ix, "Partial")) {
		t.Fatalf("Partial must be abstract")
	}
	if IsAbstract(ix, class(t, ix, "Done")) {
		t.Fatalf("Done must not be abstract")
	}
}

func TestAtOffsetInnermost(t *testing.T) {
	src := `class Outer {
public:
  class Inner {
  public:
    void m();
  };
};`
	ix, _ := indexSource(t, src)
	inner := class(t, ix, "Outer::Inner")
	got, ok := ix.AtOffset(inner.File, inner.BodySpan.Start+1)
	if !ok || got != inner {
		t.Fatalf("innermost lookup failed: %+v", got)
	}
	got, ok = ix.AtOffset(inner.File, 0)
	if !ok || got.Name != "Outer" {
		t.Fatalf("outer lookup failed: %+v", got)
	}
}

func TestClassesReturnsCopy(t *testing.T) {
	ix, _ := indexSource(t, `
class A {};
class B {};
`)
	got := ix.Classes()
	if len(got) != 2 {
		t.Fatalf("classes: %d", len(got))
	}
	// перестановка у вызывающего не должна менять индекс
	got[0], got[1] = got[1], got[0]
	again := ix.Classes()
	if again[0].Name != "A" || again[1].Name != "B" {
		t.Fatalf("index order mutated: %s, %s", again[0].Name, again[1].Name)
	}
}

func TestKeyOfNormalizesUnicode(t *testing.T) {
	// 'é' как одна код-точка и как 'e' + combining accent
	a := &cppast.MethodDecl{Name: "café"}
	b := &cppast.MethodDecl{Name: "café"}
	if KeyOf(a) != KeyOf(b) {
		t.Fatalf("NFC normalization missing: %q vs %q", KeyOf(a), KeyOf(b))
	}
}
