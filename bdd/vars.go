// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math"
	"math/bits"
)

// Var is the index of a variable in the diagram. Ordinary variables are in
// the interval [0..Varnum) and the numeric order on indices is the variable
// order of the BDD. The two largest values of the type are reserved for the
// constants.
type Var int32

const (
	// VarBot is the sentinel variable carried by the constant False.
	VarBot Var = math.MaxInt32
	// VarTop is the sentinel variable carried by the constant True.
	VarTop Var = math.MaxInt32 - 1
	// MaxVar is the maximal number of variables in a BDD.
	MaxVar Var = 0x1FFFFF
)

// IsConstant reports whether v is one of the two sentinel variables.
func (v Var) IsConstant() bool {
	return v == VarTop || v == VarBot
}

// min3 returns the smallest value between p, q and r. This is used in
// function ite to compute the branching variable; the sentinels compare
// greater than every ordinary variable.
func min3(p, q, r Var) Var {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

// ************************************************************

// varset is a fixed-size set of ordinary variables, one bit per variable.
type varset []uint64

func newvarset(varnum int32) varset {
	return make(varset, (varnum+63)/64)
}

func (s varset) has(v Var) bool {
	return s[v>>6]&(1<<uint(v&63)) != 0
}

func (s varset) add(v Var) {
	s[v>>6] |= 1 << uint(v&63)
}

// union sets s to the union of a and b. The three sets must have the same
// length.
func (s varset) union(a, b varset) {
	for k := range s {
		s[k] = a[k] | b[k]
	}
}

func (s varset) card() int {
	res := 0
	for _, w := range s {
		res += bits.OnesCount64(w)
	}
	return res
}

// list returns the elements of s in increasing order.
func (s varset) list() []Var {
	res := []Var{}
	for k, w := range s {
		for w != 0 {
			i := bits.TrailingZeros64(w)
			res = append(res, Var(k*64+i))
			w &= w - 1
		}
	}
	return res
}
