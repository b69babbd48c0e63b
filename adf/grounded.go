// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"github.com/sirupsen/logrus"

	"github.com/dalzilio/adf/bdd"
)

// Grounded computes the grounded interpretation of the ADF, the unique
// least-informative fixed point of the one-step refinement.
func (a *Adf) Grounded() Interpretation {
	return a.grounded(a.ac)
}

// grounded iterates the one-step refinement from the given vector of
// acceptance conditions until no new statement becomes decided. The number
// of decided statements grows monotonically and is bounded by the number of
// statements, so the loop always terminates. Decided entries are never
// touched again.
func (a *Adf) grounded(ac []bdd.Term) Interpretation {
	cur := Interpretation(ac).Clone()
	round := 0
	for {
		next := cur.Clone()
		for i, t := range cur {
			if t.IsTruthValue() {
				continue
			}
			for j, u := range cur {
				if !u.IsTruthValue() {
					continue
				}
				t = a.bdd.Restrict(t, bdd.Var(j), u.IsTrue())
				if t.IsTruthValue() {
					break
				}
			}
			next[i] = t
		}
		round++
		if next.Decided() == cur.Decided() {
			a.log.WithFields(logrus.Fields{
				"rounds":  round,
				"decided": next.Decided(),
			}).Debug("grounded fixed point reached")
			return next
		}
		cur = next
	}
}

// reduce substitutes every decided statement of iv in the term t.
func (a *Adf) reduce(t bdd.Term, iv Interpretation) bdd.Term {
	for j, u := range iv {
		if u.IsTruthValue() {
			t = a.bdd.Restrict(t, bdd.Var(j), u.IsTrue())
		}
	}
	return t
}

// isComplete reports whether iv is a fixed point of the one-step
// refinement: every statement preserves the information of its acceptance
// condition reduced by the decided statements of iv.
func (a *Adf) isComplete(iv Interpretation) bool {
	for i, t := range a.ac {
		if !bdd.CompareInf(iv[i], a.reduce(t, iv)) {
			return false
		}
	}
	return true
}

// Complete returns the complete interpretations of the ADF, in the
// enumeration order of the three-valued refinements of the grounded
// interpretation. The grounded interpretation always comes first.
func (a *Adf) Complete() []Interpretation {
	res := []Interpretation{}
	it := NewThreeValued(a.Grounded())
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		if a.isComplete(iv) {
			res = append(res, iv)
		}
	}
	a.log.WithField("count", len(res)).Debug("complete interpretations enumerated")
	return res
}
