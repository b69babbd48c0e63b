// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Term is a reference to an element of a BDD. It represents the atomic unit
// of interactions and computations within a BDD. Terms are plain indices in
// the node table of the diagram that produced them; they must never be
// mixed between two different BDD.
type Term int

const (
	// False is the Term of the constant false function.
	False Term = 0
	// True is the Term of the constant true function.
	True Term = 1
)

// From returns the constant Term for a boolean value.
func From(v bool) Term {
	if v {
		return True
	}
	return False
}

// IsTruthValue reports whether t is one of the two constants.
func (t Term) IsTruthValue() bool {
	return t == False || t == True
}

// IsTrue reports whether t is the constant True.
func (t Term) IsTrue() bool {
	return t == True
}

// CompareInf reports whether a preserves the information of b: either both
// are the same constant, or neither is a constant.
func CompareInf(a, b Term) bool {
	if a.IsTruthValue() {
		return a == b
	}
	return !b.IsTruthValue()
}

// NoInfInconsistency reports whether other is a consistent refinement of t,
// that is CompareInf holds or t is not a constant.
func (t Term) NoInfInconsistency(other Term) bool {
	return CompareInf(t, other) || !t.IsTruthValue()
}
