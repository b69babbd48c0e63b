// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"math/big"

	"github.com/dalzilio/adf/bdd"
)

// StableVariant selects the strategy used to compute the stable
// interpretations. All variants return the same set; only the amount of
// work and the enumeration order can differ.
type StableVariant int

const (
	// StableNaive enumerates every two-valued completion of the grounded
	// interpretation and checks each against the grounded interpretation of
	// its reduct.
	StableNaive StableVariant = iota
	// StablePrefilter is StableNaive with a completeness test before the
	// reduct computation.
	StablePrefilter
	// StableRewrite builds the global bi-implication of the ADF and only
	// checks its satisfying assignments.
	StableRewrite
	// StableCountingA drives an explicit search, branching on the
	// undecided statement with the fewest paths and, on ties, the highest
	// variable impact.
	StableCountingA
	// StableCountingB branches on the highest variable impact and, on
	// ties, the fewest paths.
	StableCountingB
	// StableNogood enumerates the two-valued models with a CDCL SAT solver
	// and learned no-goods, then checks each candidate.
	StableNogood
)

var variantnames = map[string]StableVariant{
	"naive":     StableNaive,
	"prefilter": StablePrefilter,
	"rewrite":   StableRewrite,
	"count-a":   StableCountingA,
	"count-b":   StableCountingB,
	"nogood":    StableNogood,
}

// ParseStableVariant returns the variant selected by name: one of naive,
// prefilter, rewrite, count-a, count-b or nogood.
func ParseStableVariant(name string) (StableVariant, bool) {
	v, ok := variantnames[name]
	return v, ok
}

// Stable returns the stable interpretations of the ADF: the two-valued
// complete interpretations that equal the grounded interpretation of their
// reduct.
func (a *Adf) Stable(variant StableVariant) []Interpretation {
	var res []Interpretation
	switch variant {
	case StablePrefilter:
		res = a.stableEnum(true)
	case StableRewrite:
		res = a.stableRewrite()
	case StableCountingA:
		res = a.stableCounting(false)
	case StableCountingB:
		res = a.stableCounting(true)
	case StableNogood:
		res = a.stableNogood()
	default:
		res = a.stableEnum(false)
	}
	a.log.WithField("count", len(res)).Debug("stable interpretations enumerated")
	return res
}

// stablecheck reports whether the two-valued interpretation iv equals the
// grounded interpretation of its reduct. The reduct substitutes False for
// every rejected statement in all acceptance conditions; accepted
// statements are left alone. The asymmetry is the definition of the
// reduct, not an oversight.
func (a *Adf) stablecheck(iv Interpretation) bool {
	red := Interpretation(a.ac).Clone()
	for j, u := range iv {
		if u == bdd.False {
			for i, t := range red {
				red[i] = a.bdd.Restrict(t, bdd.Var(j), false)
			}
		}
	}
	gamma := a.grounded(red)
	for i := range iv {
		if !bdd.CompareInf(iv[i], gamma[i]) {
			return false
		}
	}
	return true
}

// stableEnum is the naive strategy: try every two-valued completion of the
// grounded interpretation. With prefilter set, candidates that are not
// complete are discarded before the reduct computation.
func (a *Adf) stableEnum(prefilter bool) []Interpretation {
	res := []Interpretation{}
	it := NewTwoValued(a.Grounded())
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		if prefilter && !a.isComplete(iv) {
			continue
		}
		if a.stablecheck(iv) {
			res = append(res, iv)
		}
	}
	return res
}

// stableRewrite restricts the candidates to the satisfying assignments of
// the global bi-implication of the ADF, the conjunction over all
// statements i of (s_i <-> ac[i]). Don't-care variables of an assignment
// are expanded into both truth values.
func (a *Adf) stableRewrite() []Interpretation {
	global := bdd.True
	for i, t := range a.ac {
		global = a.bdd.And(global, a.bdd.Equiv(a.bdd.Ithvar(bdd.Var(i)), t))
	}
	res := []Interpretation{}
	a.bdd.Allsat(global, func(prof []int) error {
		base := make(Interpretation, len(a.ac))
		for i := range base {
			switch prof[i] {
			case 0:
				base[i] = bdd.False
			case 1:
				base[i] = bdd.True
			default:
				// don't care; keep an undecided placeholder
				base[i] = a.bdd.Ithvar(bdd.Var(i))
			}
		}
		it := NewTwoValued(base)
		for iv, ok := it.Next(); ok; iv, ok = it.Next() {
			if a.stablecheck(iv) {
				res = append(res, iv)
			}
		}
		return nil
	})
	return res
}

// ************************************************************

// stableCounting drives an explicit search over partial interpretations,
// propagating forced values after each choice. The candidate set it visits
// is exactly the two-valued completions of the grounded interpretation
// that survive propagation, and propagation only removes candidates that
// are not complete, so the result set equals the naive one.
func (a *Adf) stableCounting(impactfirst bool) []Interpretation {
	res := []Interpretation{}
	a.searchStable(a.Grounded(), impactfirst, &res)
	return res
}

func (a *Adf) searchStable(iv Interpretation, impactfirst bool, res *[]Interpretation) {
	i := a.pickUndecided(iv, impactfirst)
	if i < 0 {
		if a.stablecheck(iv) {
			*res = append(*res, iv)
		}
		return
	}
	for _, val := range [2]bool{false, true} {
		child := iv.Clone()
		child[i] = bdd.From(val)
		for j, t := range child {
			if j != i && !t.IsTruthValue() {
				child[j] = a.bdd.Restrict(t, bdd.Var(i), val)
			}
		}
		// closing under the grounded refinement prunes completions that
		// contradict a forced value
		a.searchStable(a.grounded(child), impactfirst, res)
	}
}

// pickUndecided returns the undecided position to branch on, or -1 when iv
// is two-valued. Preference is by fewest paths in the current term of the
// statement, then by highest variable impact; with impactfirst the pair is
// reversed. The impact of a variable is the number of entries of iv whose
// dependency set contains it.
func (a *Adf) pickUndecided(iv Interpretation, impactfirst bool) int {
	best := -1
	var bestpaths *big.Int
	bestimpact := -1
	for i, t := range iv {
		if t.IsTruthValue() {
			continue
		}
		pc := a.bdd.PathCount(t)
		paths := new(big.Int).Add(pc.CounterPaths, pc.Paths)
		impact := 0
		for _, u := range iv {
			if !u.IsTruthValue() && a.bdd.DependsOn(u, bdd.Var(i)) {
				impact++
			}
		}
		if best < 0 {
			best, bestpaths, bestimpact = i, paths, impact
			continue
		}
		if impactfirst {
			if impact > bestimpact || (impact == bestimpact && paths.Cmp(bestpaths) < 0) {
				best, bestpaths, bestimpact = i, paths, impact
			}
			continue
		}
		if paths.Cmp(bestpaths) < 0 || (paths.Cmp(bestpaths) == 0 && impact > bestimpact) {
			best, bestpaths, bestimpact = i, paths, impact
		}
	}
	return best
}
