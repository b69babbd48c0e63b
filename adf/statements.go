// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dalzilio/adf/bdd"
)

// VarContainer is the dictionary between statement names and BDD variables.
// It holds the names in variable order together with the reverse mapping.
// A VarContainer is immutable once built.
type VarContainer struct {
	names []string
	index map[string]bdd.Var
}

// NewVarContainer builds a dictionary from a list of names in variable
// order. Names must be pairwise distinct.
func NewVarContainer(names []string) (*VarContainer, error) {
	vc := &VarContainer{
		names: append([]string{}, names...),
		index: make(map[string]bdd.Var, len(names)),
	}
	for k, s := range vc.names {
		if _, ok := vc.index[s]; ok {
			return nil, fmt.Errorf("duplicate statement name %q", s)
		}
		vc.index[s] = bdd.Var(k)
	}
	return vc, nil
}

// Len returns the number of statements.
func (vc *VarContainer) Len() int {
	return len(vc.names)
}

// Name returns the name of the statement for variable v, or the empty
// string if v is out of range.
func (vc *VarContainer) Name(v bdd.Var) string {
	if v < 0 || int(v) >= len(vc.names) {
		return ""
	}
	return vc.names[v]
}

// Var returns the variable of a statement name.
func (vc *VarContainer) Var(name string) (bdd.Var, bool) {
	v, ok := vc.index[name]
	return v, ok
}

// Names returns the statement names in variable order.
func (vc *VarContainer) Names() []string {
	return append([]string{}, vc.names...)
}

// ************************************************************

// SortLexicographic reorders the statements of in by the Unicode order of
// their names. It must be called before the ADF is built.
func (in *Input) SortLexicographic() {
	sort.Strings(in.Names)
}

// SortAlphanumeric reorders the statements of in by splitting each name
// into an alphabetic prefix and a numeric suffix, ordering on the prefix
// first and then on the numeric value of the suffix. Names without a
// numeric suffix come before names that share their prefix.
func (in *Input) SortAlphanumeric() {
	sort.Slice(in.Names, func(i, j int) bool {
		pi, ni := splitalnum(in.Names[i])
		pj, nj := splitalnum(in.Names[j])
		if pi != pj {
			return pi < pj
		}
		return ni < nj
	})
}

// splitalnum splits a name at its trailing run of digits. The numeric value
// of an empty suffix is -1 so that a bare prefix sorts first.
func splitalnum(s string) (string, int64) {
	k := len(s)
	for k > 0 && s[k-1] >= '0' && s[k-1] <= '9' {
		k--
	}
	if k == len(s) {
		return s, -1
	}
	n, err := strconv.ParseInt(s[k:], 10, 64)
	if err != nil {
		// suffix too large for an int64; fall back to string order
		return s, -1
	}
	return s[:k], n
}
