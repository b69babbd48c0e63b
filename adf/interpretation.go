// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"fmt"
	"io"
	"strings"

	"github.com/dalzilio/adf/bdd"
)

// Interpretation is a three-valued interpretation of an ADF: one term per
// statement, in variable order, where the constants stand for accepted
// (True) and rejected (False) statements and any compound term stands for
// an undecided one.
type Interpretation []bdd.Term

// Clone returns a copy of iv.
func (iv Interpretation) Clone() Interpretation {
	return append(Interpretation{}, iv...)
}

// Decided returns the number of statements mapped to a truth value.
func (iv Interpretation) Decided() int {
	res := 0
	for _, t := range iv {
		if t.IsTruthValue() {
			res++
		}
	}
	return res
}

// TwoValued reports whether every statement is mapped to a truth value.
func (iv Interpretation) TwoValued() bool {
	return iv.Decided() == len(iv)
}

// Equal reports whether iv and other agree on every decided statement and
// leave the same statements undecided. Two distinct compound terms both
// count as undecided.
func (iv Interpretation) Equal(other Interpretation) bool {
	if len(iv) != len(other) {
		return false
	}
	for k := range iv {
		if !bdd.CompareInf(iv[k], other[k]) {
			return false
		}
	}
	return true
}

// Format returns the interpretation as one line of space-separated tokens
// T(name), F(name) or u(name), one per statement in variable order.
func (a *Adf) Format(iv Interpretation) string {
	var sb strings.Builder
	for k, t := range iv {
		if k > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case t == bdd.True:
			sb.WriteString("T(")
		case t == bdd.False:
			sb.WriteString("F(")
		default:
			sb.WriteString("u(")
		}
		sb.WriteString(a.order.Name(bdd.Var(k)))
		sb.WriteByte(')')
	}
	return sb.String()
}

// Print writes the formatted interpretation to w, terminated by a newline.
func (a *Adf) Print(w io.Writer, iv Interpretation) error {
	_, err := fmt.Fprintln(w, a.Format(iv))
	return err
}

// ************************************************************

// TwoValuedIterator enumerates every two-valued completion of a base
// interpretation: decided positions are preserved and undecided positions
// range over both truth values. Treating the undecided positions as a
// binary counter whose least-significant digit is the one with the highest
// index, the sequence starts at all-False and increments by one at each
// step. The iterator is finite and not restartable.
type TwoValuedIterator struct {
	base    Interpretation
	undec   []int
	digits  []bool
	started bool
	done    bool
}

// NewTwoValued returns a fresh iterator over the two-valued completions of
// base.
func NewTwoValued(base Interpretation) *TwoValuedIterator {
	it := &TwoValuedIterator{base: base.Clone()}
	for k, t := range base {
		if !t.IsTruthValue() {
			it.undec = append(it.undec, k)
		}
	}
	it.digits = make([]bool, len(it.undec))
	return it
}

// Next returns the next completion, or false when the sequence is
// exhausted.
func (it *TwoValuedIterator) Next() (Interpretation, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true
		return it.emit(), true
	}
	k := len(it.digits) - 1
	for k >= 0 && it.digits[k] {
		it.digits[k] = false
		k--
	}
	if k < 0 {
		it.done = true
		return nil, false
	}
	it.digits[k] = true
	return it.emit(), true
}

func (it *TwoValuedIterator) emit() Interpretation {
	iv := it.base.Clone()
	for k, pos := range it.undec {
		iv[pos] = bdd.From(it.digits[k])
	}
	return iv
}

// ************************************************************

// ThreeValuedIterator enumerates every refinement of a base interpretation:
// each undecided position is either kept undecided, set to True, or set to
// False. Refinements are ordered by a base-3 counter over the undecided
// positions (digit 2 keeps the base value, 1 is True, 0 is False), with the
// same positional convention as TwoValuedIterator, decrementing from the
// all-undecided state. The iterator is finite and not restartable.
type ThreeValuedIterator struct {
	base    Interpretation
	undec   []int
	digits  []uint8
	started bool
	done    bool
}

// NewThreeValued returns a fresh iterator over the refinements of base.
func NewThreeValued(base Interpretation) *ThreeValuedIterator {
	it := &ThreeValuedIterator{base: base.Clone()}
	for k, t := range base {
		if !t.IsTruthValue() {
			it.undec = append(it.undec, k)
		}
	}
	it.digits = make([]uint8, len(it.undec))
	for k := range it.digits {
		it.digits[k] = 2
	}
	return it
}

// Next returns the next refinement, or false when the sequence is
// exhausted.
func (it *ThreeValuedIterator) Next() (Interpretation, bool) {
	if it.done {
		return nil, false
	}
	if !it.started {
		it.started = true
		return it.emit(), true
	}
	k := len(it.digits) - 1
	for k >= 0 && it.digits[k] == 0 {
		it.digits[k] = 2
		k--
	}
	if k < 0 {
		it.done = true
		return nil, false
	}
	it.digits[k]--
	return it.emit(), true
}

func (it *ThreeValuedIterator) emit() Interpretation {
	iv := it.base.Clone()
	for k, pos := range it.undec {
		switch it.digits[k] {
		case 1:
			iv[pos] = bdd.True
		case 0:
			iv[pos] = bdd.False
		}
	}
	return iv
}
