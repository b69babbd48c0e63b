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

// eval computes the truth value of t under a total assignment by following
// branches in the node table.
func eval(b *Bdd, t Term, vals []bool) bool {
	for !t.IsTruthValue() {
		if vals[b.Label(t)] {
			t = b.High(t)
		} else {
			t = b.Low(t)
		}
	}
	return t.IsTrue()
}

func TestMin3(t *testing.T) {
	var mintests = []struct {
		a, b, c  Var
		expected Var
	}{
		{1, 2, 3, 1},
		{3, 2, 1, 1},
		{2, 3, 1, 1},
		{2, 2, 2, 2},
		{VarBot, VarTop, 4, 4},
		{VarBot, 0, VarTop, 0},
		{VarBot, VarBot, VarTop, VarTop},
	}
	for _, tt := range mintests {
		assert.Equal(t, tt.expected, min3(tt.a, tt.b, tt.c), "min3(%d,%d,%d)", tt.a, tt.b, tt.c)
	}
}

func TestIteTerminalCases(t *testing.T) {
	b := New(3)
	x := b.Ithvar(0)
	y := b.Ithvar(1)
	assert.Equal(t, y, b.Ite(True, y, x))
	assert.Equal(t, x, b.Ite(False, y, x))
	assert.Equal(t, y, b.Ite(x, y, y))
	assert.Equal(t, x, b.Ite(x, True, False))
}

func TestOperationIdentities(t *testing.T) {
	b := New(3)
	x := b.Ithvar(0)
	y := b.Ithvar(1)
	z := b.Ithvar(2)

	assert.Equal(t, x, b.Not(b.Not(x)))
	assert.Equal(t, b.NIthvar(0), b.Not(x))
	assert.Equal(t, False, b.And(x, b.Not(x)))
	assert.Equal(t, True, b.Or(x, b.Not(x)))
	assert.Equal(t, b.And(x, y), b.And(y, x))
	assert.Equal(t, b.Or(x, y, z), b.Or(z, b.Or(y, x)))
	assert.Equal(t, True, b.Imp(False, z))
	assert.Equal(t, b.Not(b.Xor(x, y)), b.Equiv(x, y))
	assert.Equal(t, True, b.And())
	assert.Equal(t, False, b.Or())
	// de Morgan
	assert.Equal(t, b.Not(b.And(x, y)), b.Or(b.Not(x), b.Not(y)))
}

func TestTruthTables(t *testing.T) {
	b := New(4)
	x0, x1, x2, x3 := b.Ithvar(0), b.Ithvar(1), b.Ithvar(2), b.Ithvar(3)
	var truthtests = []struct {
		t        Term
		expected func(v []bool) bool
	}{
		{b.And(x0, x1), func(v []bool) bool { return v[0] && v[1] }},
		{b.Or(x0, x2, x3), func(v []bool) bool { return v[0] || v[2] || v[3] }},
		{b.Imp(x1, x3), func(v []bool) bool { return !v[1] || v[3] }},
		{b.Xor(x0, x2), func(v []bool) bool { return v[0] != v[2] }},
		{b.Equiv(x1, x2), func(v []bool) bool { return v[1] == v[2] }},
		{b.Ite(x0, x1, b.Not(x2)), func(v []bool) bool {
			if v[0] {
				return v[1]
			}
			return !v[2]
		}},
	}
	for i, tt := range truthtests {
		for k := 0; k < 16; k++ {
			vals := []bool{k&1 != 0, k&2 != 0, k&4 != 0, k&8 != 0}
			assert.Equal(t, tt.expected(vals), eval(b, tt.t, vals), "formula %d on %v", i, vals)
		}
	}
}

func TestRestrict(t *testing.T) {
	b := New(3)
	x, y, z := b.Ithvar(0), b.Ithvar(1), b.Ithvar(2)
	f := b.Or(b.And(x, y), b.And(b.Not(x), z))

	// restriction to a variable the term does not depend on is the identity
	g := b.And(y, z)
	assert.Equal(t, g, b.Restrict(g, 0, true))
	assert.Equal(t, x, b.Restrict(x, 1, false))

	// restriction agrees with evaluation under the fixed variable
	for v := Var(0); v < 3; v++ {
		for _, val := range []bool{false, true} {
			r := b.Restrict(f, v, val)
			assert.False(t, b.DependsOn(r, v))
			// idempotence
			assert.Equal(t, r, b.Restrict(r, v, val))
			for k := 0; k < 8; k++ {
				vals := []bool{k&1 != 0, k&2 != 0, k&4 != 0}
				vals[v] = val
				assert.Equal(t, eval(b, f, vals), eval(b, r, vals))
			}
		}
	}

	assert.Equal(t, y, b.Restrict(f, 0, true))
	assert.Equal(t, z, b.Restrict(f, 0, false))
}

// TestStructuralInvariants checks ordering, reducedness and canonicity over
// every node created by a mix of operations.
func TestStructuralInvariants(t *testing.T) {
	b := New(5)
	f := True
	for i := Var(0); i < 5; i++ {
		f = b.Xor(f, b.Ithvar(i))
	}
	g := b.And(b.Or(b.Ithvar(0), b.Ithvar(3)), b.Imp(b.Ithvar(2), b.Ithvar(4)))
	b.Restrict(b.Or(f, g), 2, true)

	seen := map[node]Term{}
	err := b.Allnodes(func(id Term, v Var, low, high Term) error {
		if id.IsTruthValue() {
			return nil
		}
		require.NotEqual(t, low, high, "node %d is not reduced", id)
		require.Less(t, v, b.Label(low), "node %d breaks the order on its false branch", id)
		require.Less(t, v, b.Label(high), "node %d breaks the order on its true branch", id)
		hn := node{v: v, lo: low, hi: high}
		_, dup := seen[hn]
		require.False(t, dup, "node %d duplicates a triplet", id)
		seen[hn] = id
		return nil
	})
	require.NoError(t, err)
}

func TestAllsat(t *testing.T) {
	b := New(3)
	f := b.Or(b.And(b.Ithvar(0), b.Ithvar(1)), b.Not(b.Ithvar(2)))
	got := [][]int{}
	err := b.Allsat(f, func(profile []int) error {
		got = append(got, append([]int{}, profile...))
		return nil
	})
	require.NoError(t, err)
	for _, profile := range got {
		require.Len(t, profile, 3)
		// every completion of the profile must satisfy f
		for k := 0; k < 8; k++ {
			vals := []bool{k&1 != 0, k&2 != 0, k&4 != 0}
			match := true
			for i, p := range profile {
				if p == 0 && vals[i] || p == 1 && !vals[i] {
					match = false
					break
				}
			}
			if match {
				assert.True(t, eval(b, f, vals), "profile %v admits falsifying assignment %v", profile, vals)
			}
		}
	}
	// the number of satisfying assignments covered by the profiles must
	// match the model count of f
	covered := 0
	for _, profile := range got {
		free := 0
		for _, p := range profile {
			if p == -1 {
				free++
			}
		}
		covered += 1 << free
	}
	models := b.ModelCount(f)
	full := new(big.Int).Lsh(models.Models, uint(3-b.Depth(f)))
	assert.Equal(t, int64(covered), full.Int64())
}
