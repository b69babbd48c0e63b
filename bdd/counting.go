// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math/big"

// ModelCounts gives the number of assignments falsifying and satisfying a
// term. Counts are relative to the variables appearing below the term: a
// term of depth d has CounterModels + Models = 2^d. We use
// arbitrary-precision arithmetic so that counts cannot overflow, whatever
// the number of variables.
type ModelCounts struct {
	CounterModels *big.Int
	Models        *big.Int
}

// PathCounts gives the number of root-to-leaf paths of a term reaching the
// False, respectively True, constant.
type PathCounts struct {
	CounterPaths *big.Int
	Paths        *big.Int
}

// countData is the per-term cache entry for counting queries.
type countData struct {
	cm, m *big.Int // assignments reaching False / True
	cp, p *big.Int // paths reaching False / True
	depth int32    // 1 + max depth of the children, 0 for constants
	valid bool
}

func constcount(val bool) countData {
	if val {
		return countData{
			cm: big.NewInt(0), m: big.NewInt(1),
			cp: big.NewInt(0), p: big.NewInt(1),
			depth: 0, valid: true,
		}
	}
	return countData{
		cm: big.NewInt(1), m: big.NewInt(0),
		cp: big.NewInt(1), p: big.NewInt(0),
		depth: 0, valid: true,
	}
}

var bigone = big.NewInt(1)

// computecount fills the count entry of t from the entries of its children,
// which must already be valid. A BDD skips nodes whose branches would be
// equal, so the child with the smaller depth stands for a subgraph where
// some variables never appear; its counts are scaled by a power of two to
// compensate before summing. Path counts sum without scaling.
func (b *Bdd) computecount(t Term) {
	n := b.nodes[t]
	l := &b.counts[n.lo]
	r := &b.counts[n.hi]
	expL, expR := bigone, bigone
	if l.depth > r.depth {
		expR = new(big.Int).Lsh(bigone, uint(l.depth-r.depth))
	} else if r.depth > l.depth {
		expL = new(big.Int).Lsh(bigone, uint(r.depth-l.depth))
	}
	c := &b.counts[t]
	c.cm = scaledsum(l.cm, expL, r.cm, expR)
	c.m = scaledsum(l.m, expL, r.m, expR)
	c.cp = new(big.Int).Add(l.cp, r.cp)
	c.p = new(big.Int).Add(l.p, r.p)
	c.depth = l.depth + 1
	if r.depth > l.depth {
		c.depth = r.depth + 1
	}
	c.valid = true
}

// scaledsum returns a*ea + b*eb.
func scaledsum(a, ea, b, eb *big.Int) *big.Int {
	res := new(big.Int).Mul(a, ea)
	return res.Add(res, new(big.Int).Mul(b, eb))
}

// fillcount computes the count entry of t in Memoized mode. In Adhoc mode
// every entry is already valid.
func (b *Bdd) fillcount(t Term) {
	c := &b.counts[t]
	if c.valid {
		return
	}
	b.fillcount(b.nodes[t].lo)
	b.fillcount(b.nodes[t].hi)
	b.computecount(t)
}

// ModelCount returns the number of falsifying and satisfying assignments of
// t over the variables appearing below t (skipped variables included by
// depth normalization).
func (b *Bdd) ModelCount(t Term) ModelCounts {
	b.checkterm(t)
	b.fillcount(t)
	c := &b.counts[t]
	return ModelCounts{
		CounterModels: new(big.Int).Set(c.cm),
		Models:        new(big.Int).Set(c.m),
	}
}

// PathCount returns the number of paths of t reaching each constant.
func (b *Bdd) PathCount(t Term) PathCounts {
	b.checkterm(t)
	b.fillcount(t)
	c := &b.counts[t]
	return PathCounts{
		CounterPaths: new(big.Int).Set(c.cp),
		Paths:        new(big.Int).Set(c.p),
	}
}

// Depth returns the length of the longest path from t to a constant.
func (b *Bdd) Depth(t Term) int {
	b.checkterm(t)
	b.fillcount(t)
	return int(b.counts[t].depth)
}
