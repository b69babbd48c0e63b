// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
)

// node is one vertex of the diagram. The two constants are always kept at
// indices 0 and 1 and point to themselves.
type node struct {
	v  Var  // order of the variable in the BDD
	lo Term // reference to the false branch
	hi Term // reference to the true branch
}

// Bdd is a shared, append-only Binary Decision Diagram. The zero value is
// not usable; use New. A Bdd must not be used concurrently from several
// goroutines.
type Bdd struct {
	varnum   int32          // number of variables
	nodes    []node         // list of all the BDD nodes
	unique   map[node]Term  // unicity table, associates each triplet to a single node
	deps     []varset       // per-term set of variables the term depends on
	counts   []countData    // per-term model/path counts and depth
	itecache map[iteKey]Term
	rescache map[restrictKey]Term
	configs
}

// New initializes a BDD over varnum variables. It panics if varnum is
// negative or exceeds MaxVar. Functional options can change the counting
// mode and the initial capacity of the node table; the defaults are adhoc
// counting and a minimal table.
func New(varnum int, options ...func(*configs)) *Bdd {
	if varnum < 0 || Var(varnum) > MaxVar {
		panic(fmt.Sprintf("bdd: bad number of variables (%d)", varnum))
	}
	b := &Bdd{varnum: int32(varnum)}
	b.configs = makeconfigs(varnum)
	for _, f := range options {
		f(&b.configs)
	}
	b.nodes = make([]node, 2, b.nodesize)
	b.nodes[False] = node{v: VarBot, lo: False, hi: False}
	b.nodes[True] = node{v: VarTop, lo: True, hi: True}
	b.unique = make(map[node]Term, b.nodesize)
	b.deps = make([]varset, 2, b.nodesize)
	b.deps[False] = newvarset(b.varnum)
	b.deps[True] = newvarset(b.varnum)
	b.counts = make([]countData, 2, b.nodesize)
	b.counts[False] = constcount(false)
	b.counts[True] = constcount(true)
	b.itecache = make(map[iteKey]Term)
	b.rescache = make(map[restrictKey]Term)
	return b
}

// Varnum returns the number of variables of the BDD.
func (b *Bdd) Varnum() int {
	return int(b.varnum)
}

// Size returns the number of nodes in the store, including the two
// constants.
func (b *Bdd) Size() int {
	return len(b.nodes)
}

// Label returns the variable of term t; one of the two sentinels when t is
// a constant.
func (b *Bdd) Label(t Term) Var {
	b.checkterm(t)
	return b.nodes[t].v
}

// Low returns the false branch of term t. Constants point to themselves.
func (b *Bdd) Low(t Term) Term {
	b.checkterm(t)
	return b.nodes[t].lo
}

// High returns the true branch of term t. Constants point to themselves.
func (b *Bdd) High(t Term) Term {
	b.checkterm(t)
	return b.nodes[t].hi
}

// Ithvar returns the term for the i'th variable, creating it if necessary.
// The variable must be in the range [0..Varnum).
func (b *Bdd) Ithvar(v Var) Term {
	b.checkvar(v)
	return b.Make(v, False, True)
}

// NIthvar returns the term for the negation of the i'th variable.
func (b *Bdd) NIthvar(v Var) Term {
	b.checkvar(v)
	return b.Make(v, True, False)
}

// Make returns the term for the node (v, lo, hi), reusing an existing node
// when possible. If lo and hi are equal we return the child directly, so
// the diagram stays reduced; otherwise the unicity table guarantees that at
// most one node carries any given triplet. New terms are numbered in
// insertion order, starting at 2.
func (b *Bdd) Make(v Var, lo, hi Term) Term {
	b.checkvar(v)
	b.checkterm(lo)
	b.checkterm(hi)
	if lo == hi {
		return lo
	}
	hn := node{v: v, lo: lo, hi: hi}
	if res, ok := b.unique[hn]; ok {
		return res
	}
	res := Term(len(b.nodes))
	if res < 0 {
		panic("bdd: node index overflow")
	}
	b.nodes = append(b.nodes, hn)
	b.unique[hn] = res
	ds := newvarset(b.varnum)
	ds.union(b.deps[lo], b.deps[hi])
	ds.add(v)
	b.deps = append(b.deps, ds)
	b.counts = append(b.counts, countData{})
	if b.countmode == Adhoc {
		b.computecount(res)
	}
	return res
}

// VarDeps returns the set of variables the function of t depends on, in
// increasing order. The result is empty for constants.
func (b *Bdd) VarDeps(t Term) []Var {
	b.checkterm(t)
	return b.deps[t].list()
}

// DependsOn reports whether variable v appears in the subgraph of t.
func (b *Bdd) DependsOn(t Term, v Var) bool {
	b.checkterm(t)
	b.checkvar(v)
	return b.deps[t].has(v)
}

// ************************************************************

func (b *Bdd) checkterm(t Term) {
	if t < 0 || int(t) >= len(b.nodes) {
		panic(fmt.Sprintf("bdd: term %d outside store of size %d", t, len(b.nodes)))
	}
}

func (b *Bdd) checkvar(v Var) {
	if v < 0 || int32(v) >= b.varnum {
		panic(fmt.Sprintf("bdd: variable %d outside range [0..%d)", v, b.varnum))
	}
}
