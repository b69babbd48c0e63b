// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/adf/bdd"
)

func TestVarContainer(t *testing.T) {
	vc, err := NewVarContainer([]string{"b", "a", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, vc.Len())
	assert.Equal(t, "a", vc.Name(1))
	assert.Equal(t, "", vc.Name(5))
	v, ok := vc.Var("c")
	require.True(t, ok)
	assert.Equal(t, bdd.Var(2), v)
	_, ok = vc.Var("d")
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "a", "c"}, vc.Names())

	_, err = NewVarContainer([]string{"a", "b", "a"})
	assert.Error(t, err)
}

func TestSortLexicographic(t *testing.T) {
	in := &Input{Names: []string{"s10", "s2", "b", "B"}}
	in.SortLexicographic()
	assert.Equal(t, []string{"B", "b", "s10", "s2"}, in.Names)
}

func TestSortAlphanumeric(t *testing.T) {
	in := &Input{Names: []string{"s10", "s2", "s", "t1", "b"}}
	in.SortAlphanumeric()
	assert.Equal(t, []string{"b", "s", "s2", "s10", "t1"}, in.Names)
}

func TestSplitalnum(t *testing.T) {
	var splittests = []struct {
		name   string
		prefix string
		num    int64
	}{
		{"s10", "s", 10},
		{"s", "s", -1},
		{"a0", "a", 0},
		{"x1y2", "x1y", 2},
		{"42", "", 42},
	}
	for _, tt := range splittests {
		p, n := splitalnum(tt.name)
		assert.Equal(t, tt.prefix, p, "prefix of %q", tt.name)
		assert.Equal(t, tt.num, n, "suffix of %q", tt.name)
	}
}

// TestOrderingIndependence checks that reordering the statements changes the
// internal numbering but not the printed interpretations.
func TestOrderingIndependence(t *testing.T) {
	src := `s(b2). s(b10). s(a). ac(b2, neg(b10)). ac(b10, neg(b2)). ac(a, c(v)).`
	in, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	in.SortAlphanumeric()
	assert.Equal(t, []string{"a", "b2", "b10"}, in.Names)
	a, err := New(in)
	require.NoError(t, err)

	plain := mustAdf(t, src)
	sortset := func(x *Adf, ivs []Interpretation) map[string]bool {
		res := map[string]bool{}
		for _, s := range formatall(x, ivs) {
			res[canonical(s)] = true
		}
		return res
	}
	assert.Equal(t, sortset(plain, plain.Stable(StableNaive)), sortset(a, a.Stable(StableNaive)))
	assert.Equal(t, sortset(plain, plain.Complete()), sortset(a, a.Complete()))
}

// canonical reorders the tokens of a formatted interpretation so that lines
// from different variable orders can be compared.
func canonical(line string) string {
	toks := strings.Fields(line)
	sort.Strings(toks)
	return strings.Join(toks, " ")
}
