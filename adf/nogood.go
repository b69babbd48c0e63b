// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/dalzilio/adf/bdd"
)

// TwoValuedModels returns the two-valued models of the ADF: the
// assignments where every statement takes exactly the value of its
// acceptance condition. Enumeration is backed by a CDCL SAT solver; each
// model found is learned as a no-good (a blocking clause) before searching
// for the next one.
func (a *Adf) TwoValuedModels() []Interpretation {
	c := logic.NewC()
	lits := make([]z.Lit, len(a.ac))
	for i := range lits {
		lits[i] = c.Lit()
	}
	// translate every acceptance condition structurally; shared BDD nodes
	// are shared in the circuit too
	memo := map[bdd.Term]z.Lit{bdd.False: c.F, bdd.True: c.T}
	var encode func(t bdd.Term) z.Lit
	encode = func(t bdd.Term) z.Lit {
		if m, ok := memo[t]; ok {
			return m
		}
		m := c.Choice(lits[a.bdd.Label(t)], encode(a.bdd.High(t)), encode(a.bdd.Low(t)))
		memo[t] = m
		return m
	}
	root := c.T
	for i, t := range a.ac {
		root = c.And(root, c.Xor(lits[i], encode(t)).Not())
	}
	g := gini.New()
	c.ToCnfFrom(g, root)
	g.Add(root)
	g.Add(z.LitNull)

	res := []Interpretation{}
	for g.Solve() == 1 {
		iv := make(Interpretation, len(lits))
		for i, m := range lits {
			iv[i] = bdd.From(g.Value(m))
		}
		res = append(res, iv)
		for _, m := range lits {
			if g.Value(m) {
				g.Add(m.Not())
			} else {
				g.Add(m)
			}
		}
		g.Add(z.LitNull)
	}
	a.log.WithField("count", len(res)).Debug("two-valued models enumerated")
	return res
}

// stableNogood filters the two-valued models through the reduct check.
// Every stable interpretation is a two-valued model, so nothing is lost by
// starting from the SAT enumeration.
func (a *Adf) stableNogood() []Interpretation {
	res := []Interpretation{}
	for _, iv := range a.TwoValuedModels() {
		if a.stablecheck(iv) {
			res = append(res, iv)
		}
	}
	return res
}
