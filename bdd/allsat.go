// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Allsat iterates through all satisfying variable assignments for t and
// calls the function f on each of them. We pass an int slice of length
// Varnum to f where each entry is either 0 if the variable is false, 1 if
// it is true, and -1 if it is a don't care. The slice is reused between
// calls; f must copy it if it needs to retain the values. We stop and
// return the error if f returns an error at some point.
func (b *Bdd) Allsat(t Term, f func([]int) error) error {
	b.checkterm(t)
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(t, prof, f)
}

func (b *Bdd) allsat(t Term, prof []int, f func([]int) error) error {
	if t == False {
		return nil
	}
	if t == True {
		return f(prof)
	}
	n := b.nodes[t]
	prof[n.v] = 0
	if err := b.allsat(n.lo, prof, f); err != nil {
		return err
	}
	prof[n.v] = 1
	if err := b.allsat(n.hi, prof, f); err != nil {
		return err
	}
	prof[n.v] = -1
	return nil
}

// Allnodes applies function f over all the nodes of the store, in index
// order. The parameters to f are the term, variable, and terms of the low
// and high successors of each node. The two constant nodes always come
// first, with terms 0 and 1. We stop and return the error if f returns an
// error at some point.
func (b *Bdd) Allnodes(f func(t Term, v Var, low, high Term) error) error {
	for k, n := range b.nodes {
		if err := f(Term(k), n.v, n.lo, n.hi); err != nil {
			return err
		}
	}
	return nil
}
