package typesystem

import (
	"sort"
	"strings"
)

// Show renders the canonical display string for a set of types inhabiting a
// single vertex, per spec.md §4.1:
//
//	empty set      -> "untyped"
//	single type    -> that type's own String()
//	two or more    -> "(T1 | T2 | ...)" with members sorted lexicographically
//	                  for determinism
func Show(types []Type) string {
	if len(types) == 0 {
		return Bot{}.String()
	}
	if len(types) == 1 {
		return types[0].String()
	}

	rendered := make([]string, len(types))
	for i, t := range types {
		rendered[i] = t.String()
	}
	sort.Strings(rendered)

	return "(" + strings.Join(rendered, " | ") + ")"
}
