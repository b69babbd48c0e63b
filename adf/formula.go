// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import "fmt"

// Op enumerates the connectives of acceptance conditions.
type Op int

const (
	OpBot Op = iota // the constant c(f)
	OpTop           // the constant c(v)
	OpAtom
	OpNeg
	OpAnd
	OpOr
	OpImp
	OpXor
	OpIff
)

var opnames = [9]string{
	OpBot:  "c(f)",
	OpTop:  "c(v)",
	OpAtom: "atom",
	OpNeg:  "neg",
	OpAnd:  "and",
	OpOr:   "or",
	OpImp:  "imp",
	OpXor:  "xor",
	OpIff:  "iff",
}

// Formula is the abstract syntax tree of an acceptance condition. Name is
// set for OpAtom; Left is set for OpNeg; Left and Right are set for the
// binary connectives.
type Formula struct {
	Op    Op
	Name  string
	Left  *Formula
	Right *Formula
}

// String returns the formula in surface syntax.
func (f *Formula) String() string {
	switch f.Op {
	case OpBot, OpTop:
		return opnames[f.Op]
	case OpAtom:
		return f.Name
	case OpNeg:
		return fmt.Sprintf("neg(%s)", f.Left)
	default:
		return fmt.Sprintf("%s(%s,%s)", opnames[f.Op], f.Left, f.Right)
	}
}
