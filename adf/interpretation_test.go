// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/adf/bdd"
)

func collect2(it *TwoValuedIterator) []Interpretation {
	res := []Interpretation{}
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		res = append(res, iv)
	}
	return res
}

func collect3(it *ThreeValuedIterator) []Interpretation {
	res := []Interpretation{}
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		res = append(res, iv)
	}
	return res
}

// TestTwoValuedTrace follows the enumeration over base (T, u, F, u, T): the
// undecided positions behave as a binary counter whose least-significant
// digit is the one with the highest index.
func TestTwoValuedTrace(t *testing.T) {
	b := bdd.New(5)
	u1, u3 := b.Ithvar(1), b.Ithvar(3)
	base := Interpretation{bdd.True, u1, bdd.False, u3, bdd.True}
	T, F := bdd.True, bdd.False
	expected := []Interpretation{
		{T, F, F, F, T},
		{T, F, F, T, T},
		{T, T, F, F, T},
		{T, T, F, T, T},
	}
	assert.Equal(t, expected, collect2(NewTwoValued(base)))
}

func TestTwoValuedNoUndecided(t *testing.T) {
	base := Interpretation{bdd.True, bdd.False}
	got := collect2(NewTwoValued(base))
	require.Len(t, got, 1)
	assert.Equal(t, base, got[0])
}

func TestTwoValuedExhausted(t *testing.T) {
	it := NewTwoValued(Interpretation{bdd.True})
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok)
	// the iterator stays exhausted
	_, ok = it.Next()
	assert.False(t, ok)
}

// TestThreeValuedTrace checks the base-3 counter over two undecided
// positions: digit 2 keeps the statement undecided, 1 decides it True, 0
// decides it False, starting from all-undecided and decrementing.
func TestThreeValuedTrace(t *testing.T) {
	b := bdd.New(2)
	u0, u1 := b.Ithvar(0), b.Ithvar(1)
	base := Interpretation{u0, u1}
	T, F := bdd.True, bdd.False
	expected := []Interpretation{
		{u0, u1},
		{u0, T},
		{u0, F},
		{T, u1},
		{T, T},
		{T, F},
		{F, u1},
		{F, T},
		{F, F},
	}
	assert.Equal(t, expected, collect3(NewThreeValued(base)))
}

func TestThreeValuedKeepsDecided(t *testing.T) {
	b := bdd.New(3)
	base := Interpretation{bdd.True, b.Ithvar(1), bdd.False}
	got := collect3(NewThreeValued(base))
	require.Len(t, got, 3)
	for _, iv := range got {
		assert.Equal(t, bdd.True, iv[0])
		assert.Equal(t, bdd.False, iv[2])
	}
}

func TestInterpretationEqual(t *testing.T) {
	b := bdd.New(2)
	u0, u1 := b.Ithvar(0), b.Ithvar(1)
	// two distinct compound terms both count as undecided
	assert.True(t, Interpretation{u0, bdd.True}.Equal(Interpretation{u1, bdd.True}))
	assert.False(t, Interpretation{u0, bdd.True}.Equal(Interpretation{u0, bdd.False}))
	assert.False(t, Interpretation{u0}.Equal(Interpretation{u0, u1}))
	assert.False(t, Interpretation{bdd.True}.Equal(Interpretation{u0}))
}

func TestInterpretationDecided(t *testing.T) {
	b := bdd.New(2)
	iv := Interpretation{bdd.True, b.Ithvar(0), bdd.False}
	assert.Equal(t, 2, iv.Decided())
	assert.False(t, iv.TwoValued())
	assert.True(t, Interpretation{bdd.False, bdd.True}.TwoValued())
}

func TestFormat(t *testing.T) {
	a := mustAdf(t, `s(a). s(b). s(c). ac(a, c(v)). ac(b, b). ac(c, c(f)).`)
	b := bdd.New(3)
	iv := Interpretation{bdd.True, b.Ithvar(1), bdd.False}
	assert.Equal(t, "T(a) u(b) F(c)", a.Format(iv))
}
