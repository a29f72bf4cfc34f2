package sema

import "purefix/internal/cppast"

// IsAbstract reports whether the class cannot be instantiated: it
// declares a pure virtual member or inherits one it does not override.
func IsAbstract(ix *Index, c *cppast.ClassDecl) bool {
	if len(c.OwnPureVirtuals()) > 0 {
		return true
	}
	return len(ComputeMissing(ix, c, nil).Missing) > 0
}
