// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams (roBDD) with
structural sharing, tailored to the computation of Abstract Dialectical
Framework semantics.

Each BDD has a fixed number of variables declared when it is initialized
(using function New) and each variable is represented by an (integer) index
of type Var. The order on variable indices is the variable order of the
diagram and never changes.

Operations over the BDD return a Term, an index in the shared node table.
We use the convention that Term 1 (respectively 0) denotes the constant
function True (respectively False); every other Term denotes a compound
function. The two constants carry the sentinel variables VarTop and VarBot,
which compare greater than every ordinary variable.

The node table is append-only: nodes are never garbage collected, a Term
stays valid for the lifetime of the BDD, and the index order of nodes is
deterministic given the same sequence of operations. Unicity of the triple
(var, low, high) is enforced with a reverse lookup table, so structurally
equal functions are always represented by the same Term.

The store maintains, per term, the number of models and counter-models of
the function (with depth normalization to account for skipped variables),
the number of paths to each constant, and the set of variables the term
depends on. Counting is available in two modes: adhoc, where counts are
computed when a node is inserted, and memoized, where counts are computed
on first query. Both modes return identical results.

Operations never fail: the only error conditions are precondition
violations (a Term or Var outside the range of the store), which panic.
*/
package bdd
