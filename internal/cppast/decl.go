// Package cppast holds the read-only declaration model the parser produces
// and the tweak pipeline consumes. Nothing here is mutated after parsing.
package cppast

import (
	"purefix/internal/source"
)

// Access is a C++ member access level.
type Access uint8

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	}
	return "none"
}

// Param is one parameter of a method declaration. Type is the rendered
// type (tokens joined by single spaces); Name may be empty for unnamed
// parameters.
type Param struct {
	Type string
	Name string
}

// MethodDecl is a member function declaration.
type MethodDecl struct {
	Name       string
	ReturnType string
	Params     []Param

	IsVirtual  bool
	IsPure     bool
	IsConst    bool
	IsOverride bool
	IsStatic   bool
	IsCtor     bool
	IsDtor     bool

	Access Access
	Span   source.Span
}

// BaseSpec is one entry of a class's base clause, in declaration order.
type BaseSpec struct {
	Access    Access // access of the inheritance itself
	IsVirtual bool
	Name      string // as written: 'Base' or 'ns::Base'
	Span      source.Span
}

// VisibilitySection marks where an access label begins inside a class
// body. ColonOff is the byte offset of the ':' of the label.
type VisibilitySection struct {
	Access   Access
	ColonOff uint32
}

// ClassDecl is a class or struct declaration with a body.
type ClassDecl struct {
	Name          string
	QualifiedName string // enclosing namespaces joined with '::'
	IsStruct      bool

	File source.FileID
	Span source.Span
	// BodySpan covers the braces: Start is the offset of '{',
	// End the offset of '}'.
	BodySpan source.Span

	Bases    []BaseSpec
	Methods  []*MethodDecl
	Sections []VisibilitySection
}

// DefaultAccess returns the implicit access level of members declared
// before any visibility label.
func (c *ClassDecl) DefaultAccess() Access {
	if c.IsStruct {
		return AccessPublic
	}
	return AccessPrivate
}

// Section returns the first visibility section with the given access,
// if any. First occurrence wins when a label repeats.
func (c *ClassDecl) Section(a Access) (VisibilitySection, bool) {
	for _, s := range c.Sections {
		if s.Access == a {
			return s, true
		}
	}
	return VisibilitySection{}, false
}

// OwnPureVirtuals returns the class's own pure virtual methods in
// declaration order. Destructors are excluded: a pure virtual destructor
// is never a stub candidate in a derived class.
func (c *ClassDecl) OwnPureVirtuals() []*MethodDecl {
	var out []*MethodDecl
	for _, m := range c.Methods {
		if m.IsPure && !m.IsDtor && !m.IsCtor {
			out = append(out, m)
		}
	}
	return out
}
