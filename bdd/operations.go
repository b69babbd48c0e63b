// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Restrict returns the term for t where variable v is fixed to val. The
// result is t itself when v does not appear in the subgraph of t.
func (b *Bdd) Restrict(t Term, v Var, val bool) Term {
	b.checkterm(t)
	b.checkvar(v)
	if !b.deps[t].has(v) {
		return t
	}
	return b.restrict(t, v, val)
}

func (b *Bdd) restrict(t Term, v Var, val bool) Term {
	if t.IsTruthValue() {
		return t
	}
	vt := b.nodes[t].v
	if vt > v {
		// also covers the sentinel variables of the constants
		return t
	}
	if vt == v {
		if val {
			return b.nodes[t].hi
		}
		return b.nodes[t].lo
	}
	if res, ok := b.matchrestrict(t, v, val); ok {
		return res
	}
	lo := b.restrict(b.nodes[t].lo, v, val)
	hi := b.restrict(b.nodes[t].hi, v, val)
	return b.setrestrict(t, v, val, b.Make(vt, lo, hi))
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)] by Shannon expansion on the smallest variable of its
// three operands.
func (b *Bdd) Ite(f, g, h Term) Term {
	b.checkterm(f)
	b.checkterm(g)
	b.checkterm(h)
	return b.ite(f, g, h)
}

// cofactor returns the branch of t for value val of variable v when v is
// the variable of t, and t itself otherwise. In ite we always expand on the
// smallest variable among the operands, so this is exactly restriction.
func (b *Bdd) cofactor(t Term, v Var, val bool) Term {
	if b.nodes[t].v != v {
		return t
	}
	if val {
		return b.nodes[t].hi
	}
	return b.nodes[t].lo
}

func (b *Bdd) ite(f, g, h Term) Term {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == h:
		return g
	case g == True && h == False:
		return f
	}
	if res, ok := b.matchite(f, g, h); ok {
		return res
	}
	v := min3(b.nodes[f].v, b.nodes[g].v, b.nodes[h].v)
	lo := b.ite(b.cofactor(f, v, false), b.cofactor(g, v, false), b.cofactor(h, v, false))
	hi := b.ite(b.cofactor(f, v, true), b.cofactor(g, v, true), b.cofactor(h, v, true))
	return b.setite(f, g, h, b.Make(v, lo, hi))
}

// Not returns the negation (!t) of expression t.
func (b *Bdd) Not(t Term) Term {
	return b.Ite(t, False, True)
}

// And returns the logical 'and' of a sequence of terms.
func (b *Bdd) And(ts ...Term) Term {
	if len(ts) == 1 {
		return ts[0]
	}
	if len(ts) == 0 {
		return True
	}
	return b.Ite(ts[0], b.And(ts[1:]...), False)
}

// Or returns the logical 'or' of a sequence of terms.
func (b *Bdd) Or(ts ...Term) Term {
	if len(ts) == 1 {
		return ts[0]
	}
	if len(ts) == 0 {
		return False
	}
	return b.Ite(ts[0], True, b.Or(ts[1:]...))
}

// Imp returns the logical 'implication' between two terms.
func (b *Bdd) Imp(f, g Term) Term {
	return b.Ite(f, g, True)
}

// Equiv returns the logical 'bi-implication' between two terms.
func (b *Bdd) Equiv(f, g Term) Term {
	return b.Ite(f, g, b.Not(g))
}

// Xor returns the logical 'exclusive or' between two terms.
func (b *Bdd) Xor(f, g Term) Term {
	return b.Ite(f, b.Not(g), g)
}
