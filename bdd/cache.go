// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Operation caches. Since the node table is append-only, a cached result
// can never be invalidated, so we use plain maps and never evict.

// iteKey is the hash key for an if-then-else operation.
type iteKey struct {
	f, g, h Term
}

// restrictKey is the hash key for a single-variable restriction.
type restrictKey struct {
	t   Term
	v   Var
	val bool
}

func (b *Bdd) matchite(f, g, h Term) (Term, bool) {
	res, ok := b.itecache[iteKey{f, g, h}]
	return res, ok
}

func (b *Bdd) setite(f, g, h, res Term) Term {
	b.itecache[iteKey{f, g, h}] = res
	return res
}

func (b *Bdd) matchrestrict(t Term, v Var, val bool) (Term, bool) {
	res, ok := b.rescache[restrictKey{t, v, val}]
	return res, ok
}

func (b *Bdd) setrestrict(t Term, v Var, val bool, res Term) Term {
	b.rescache[restrictKey{t, v, val}] = res
	return res
}
