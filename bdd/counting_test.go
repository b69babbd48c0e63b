// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountConstants(t *testing.T) {
	b := New(2)
	mc := b.ModelCount(True)
	assert.Equal(t, int64(1), mc.Models.Int64())
	assert.Equal(t, int64(0), mc.CounterModels.Int64())
	pc := b.PathCount(False)
	assert.Equal(t, int64(1), pc.CounterPaths.Int64())
	assert.Equal(t, int64(0), pc.Paths.Int64())
	assert.Equal(t, 0, b.Depth(True))
	assert.Equal(t, 0, b.Depth(False))
}

func TestCountOr(t *testing.T) {
	b := New(2)
	f := b.Or(b.Ithvar(0), b.Ithvar(1))
	mc := b.ModelCount(f)
	assert.Equal(t, int64(3), mc.Models.Int64())
	assert.Equal(t, int64(1), mc.CounterModels.Int64())
	pc := b.PathCount(f)
	assert.Equal(t, int64(2), pc.Paths.Int64())
	assert.Equal(t, int64(1), pc.CounterPaths.Int64())
	assert.Equal(t, 2, b.Depth(f))
}

// TestDepthNormalization exercises the scaling of the shallower child: in
// x0 | x3 the false branch of the root skips two variables.
func TestDepthNormalization(t *testing.T) {
	b := New(4)
	f := b.Or(b.Ithvar(0), b.Ithvar(3))
	require.Equal(t, 2, b.Depth(f))
	mc := b.ModelCount(f)
	assert.Equal(t, int64(3), mc.Models.Int64())
	assert.Equal(t, int64(1), mc.CounterModels.Int64())
}

// TestCountSum checks Models + CounterModels = 2^Depth on every node of a
// store with shared subgraphs.
func TestCountSum(t *testing.T) {
	b := New(6)
	f := False
	for i := Var(0); i < 6; i++ {
		f = b.Xor(f, b.Ithvar(i))
	}
	b.Or(f, b.And(b.Ithvar(1), b.Ithvar(4)))
	err := b.Allnodes(func(id Term, v Var, low, high Term) error {
		mc := b.ModelCount(id)
		sum := new(big.Int).Add(mc.Models, mc.CounterModels)
		expected := new(big.Int).Lsh(big.NewInt(1), uint(b.Depth(id)))
		assert.Zero(t, sum.Cmp(expected), "term %d: %s models + %s counter-models over depth %d", id, mc.Models, mc.CounterModels, b.Depth(id))
		return nil
	})
	require.NoError(t, err)
}

// TestCountmodes builds the same functions in an adhoc and a memoized store
// and checks that every query agrees.
func TestCountmodes(t *testing.T) {
	build := func(mode Countmode) *Bdd {
		b := New(5, Counting(mode))
		f := b.Imp(b.Ithvar(0), b.Xor(b.Ithvar(2), b.Ithvar(4)))
		g := b.And(b.Ithvar(1), b.Or(b.Ithvar(2), b.Not(b.Ithvar(3))))
		b.Equiv(f, g)
		return b
	}
	adhoc := build(Adhoc)
	memo := build(Memoized)
	require.Equal(t, adhoc.Size(), memo.Size())
	for k := 0; k < adhoc.Size(); k++ {
		id := Term(k)
		ma, mm := adhoc.ModelCount(id), memo.ModelCount(id)
		assert.Zero(t, ma.Models.Cmp(mm.Models), "term %d models", id)
		assert.Zero(t, ma.CounterModels.Cmp(mm.CounterModels), "term %d counter-models", id)
		pa, pm := adhoc.PathCount(id), memo.PathCount(id)
		assert.Zero(t, pa.Paths.Cmp(pm.Paths), "term %d paths", id)
		assert.Zero(t, pa.CounterPaths.Cmp(pm.CounterPaths), "term %d counter-paths", id)
		assert.Equal(t, adhoc.Depth(id), memo.Depth(id), "term %d depth", id)
	}
}

// TestCountQueriesDoNotMutate checks that counting queries leave the result
// of later operations unchanged.
func TestCountQueriesDoNotMutate(t *testing.T) {
	b := New(3)
	f := b.Or(b.Ithvar(0), b.Ithvar(1))
	before := b.Size()
	b.ModelCount(f)
	b.PathCount(f)
	b.Depth(f)
	assert.Equal(t, before, b.Size())
	assert.Equal(t, f, b.Or(b.Ithvar(0), b.Ithvar(1)))
}
