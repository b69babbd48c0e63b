// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package adf computes three-valued semantics of Abstract Dialectical
Frameworks (ADF): grounded, complete, stable and two-valued model sets.

An ADF is a set of named statements, each equipped with an acceptance
condition, a propositional formula over the statement names. Statements are
parsed from a whitespace-insensitive surface syntax of dot-terminated
facts, in two shapes:

	s(<name>).
	ac(<name>, <formula>).

where a formula is built from c(v), c(f), atoms, neg, and, or, imp, xor and
iff. Declaration order defines the default variable order; lexicographic
and alphanumeric reorderings can be applied before the ADF is built.

Every acceptance condition is translated into a term of one shared BDD
(package bdd); all semantics are then computed by single-variable
restriction and fixed-point iteration over that diagram. A three-valued
interpretation is a vector of terms, one per statement, where a constant
stands for a decided statement and any compound term stands for undecided.

The stable semantics can be computed by several interchangeable strategies
(naive enumeration, completeness prefilter, rewriting to a global
bi-implication, two counting-guided searches, and a SAT-backed no-good
learning enumeration); all of them return the same set of interpretations.
*/
package adf
