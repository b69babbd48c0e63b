// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"strings"
)

// Stats returns information about the BDD store and its caches.
func (b *Bdd) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Ite cache:  %d\n", len(b.itecache))
	res += fmt.Sprintf("Restrict:   %d", len(b.rescache))
	return res
}

// String returns a textual view of the node table, mostly useful for
// debugging small examples.
func (b *Bdd) String() string {
	var sb strings.Builder
	for k, n := range b.nodes {
		switch Term(k) {
		case False:
			sb.WriteString("0   [False]\n")
		case True:
			sb.WriteString("1   [True]\n")
		default:
			fmt.Fprintf(&sb, "%-3d (%d, %d, %d)\n", k, n.v, n.lo, n.hi)
		}
	}
	return sb.String()
}
