// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCorrupt reports a snapshot whose node table violates the structural
// invariants of the store.
var ErrCorrupt = errors.New("corrupt BDD snapshot")

// SnapNode is the serialized form of one node of the store.
type SnapNode struct {
	Var Var  `json:"var"`
	Lo  Term `json:"lo"`
	Hi  Term `json:"hi"`
}

// CacheEntry is one serialized binding of the unicity table.
type CacheEntry struct {
	Var  Var  `json:"var"`
	Lo   Term `json:"lo"`
	Hi   Term `json:"hi"`
	Term Term `json:"term"`
}

// CountEntry is one serialized entry of the counting cache. Counts are
// decimal strings since they can exceed any fixed-width integer.
type CountEntry struct {
	Term          Term   `json:"term"`
	CounterModels string `json:"counter_models"`
	Models        string `json:"models"`
	CounterPaths  string `json:"counter_paths"`
	Paths         string `json:"paths"`
	Depth         int32  `json:"depth"`
}

// Snapshot is the serializable state of a store. The node table is the
// authoritative part: the unicity table and the counting cache can always
// be regenerated from it.
type Snapshot struct {
	Nodes      []SnapNode   `json:"nodes"`
	Cache      []CacheEntry `json:"cache"`
	CountCache []CountEntry `json:"count_cache"`
}

// Snapshot returns the serializable state of the store. Cache entries are
// sorted by term so that the output is deterministic. The counting cache
// holds the entries that are currently valid; it is empty when the store
// uses Memoized counting and no query was made.
func (b *Bdd) Snapshot() Snapshot {
	s := Snapshot{
		Nodes:      make([]SnapNode, len(b.nodes)),
		Cache:      make([]CacheEntry, 0, len(b.unique)),
		CountCache: make([]CountEntry, 0, len(b.nodes)),
	}
	for k, n := range b.nodes {
		s.Nodes[k] = SnapNode{Var: n.v, Lo: n.lo, Hi: n.hi}
	}
	for n, t := range b.unique {
		s.Cache = append(s.Cache, CacheEntry{Var: n.v, Lo: n.lo, Hi: n.hi, Term: t})
	}
	sort.Slice(s.Cache, func(i, j int) bool { return s.Cache[i].Term < s.Cache[j].Term })
	for k := range b.nodes {
		c := &b.counts[k]
		if !c.valid {
			continue
		}
		s.CountCache = append(s.CountCache, CountEntry{
			Term:          Term(k),
			CounterModels: c.cm.String(),
			Models:        c.m.String(),
			CounterPaths:  c.cp.String(),
			Paths:         c.p.String(),
			Depth:         c.depth,
		})
	}
	return s
}

// Restore rebuilds a store from a snapshot. The unicity table, dependency
// sets and counting cache are regenerated from the node array in one
// post-order pass (children always precede their parents in the array);
// the serialized caches themselves are only cross-checked. We return
// ErrCorrupt when the node table breaks ordering, reducedness, canonicity,
// or contains a dangling child index.
func Restore(varnum int, s Snapshot, options ...func(*configs)) (*Bdd, error) {
	if len(s.Nodes) < 2 {
		return nil, fmt.Errorf("%w: missing constant nodes", ErrCorrupt)
	}
	if s.Nodes[0] != (SnapNode{Var: VarBot, Lo: False, Hi: False}) {
		return nil, fmt.Errorf("%w: bad False node %v", ErrCorrupt, s.Nodes[0])
	}
	if s.Nodes[1] != (SnapNode{Var: VarTop, Lo: True, Hi: True}) {
		return nil, fmt.Errorf("%w: bad True node %v", ErrCorrupt, s.Nodes[1])
	}
	b := New(varnum, options...)
	for k := 2; k < len(s.Nodes); k++ {
		sn := s.Nodes[k]
		if sn.Var < 0 || int32(sn.Var) >= b.varnum {
			return nil, fmt.Errorf("%w: node %d has variable %d outside range [0..%d)", ErrCorrupt, k, sn.Var, b.varnum)
		}
		if sn.Lo < 0 || int(sn.Lo) >= k || sn.Hi < 0 || int(sn.Hi) >= k {
			return nil, fmt.Errorf("%w: node %d has dangling child", ErrCorrupt, k)
		}
		if sn.Lo == sn.Hi {
			return nil, fmt.Errorf("%w: node %d is not reduced", ErrCorrupt, k)
		}
		if sn.Var >= b.nodes[sn.Lo].v || sn.Var >= b.nodes[sn.Hi].v {
			return nil, fmt.Errorf("%w: node %d breaks the variable order", ErrCorrupt, k)
		}
		hn := node{v: sn.Var, lo: sn.Lo, hi: sn.Hi}
		if _, ok := b.unique[hn]; ok {
			return nil, fmt.Errorf("%w: node %d duplicates an earlier triplet", ErrCorrupt, k)
		}
		if res := b.Make(sn.Var, sn.Lo, sn.Hi); int(res) != k {
			return nil, fmt.Errorf("%w: node %d rebuilt as term %d", ErrCorrupt, k, res)
		}
	}
	for _, e := range s.Cache {
		hn := node{v: e.Var, lo: e.Lo, hi: e.Hi}
		if e.Term.IsTruthValue() || b.unique[hn] != e.Term {
			return nil, fmt.Errorf("%w: cache entry for term %d contradicts the node table", ErrCorrupt, e.Term)
		}
	}
	return b, nil
}
