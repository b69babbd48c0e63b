// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dalzilio/adf/bdd"
)

// Adf is an Abstract Dialectical Framework compiled into a shared BDD: a
// statement dictionary, the BDD store, and one acceptance-condition term
// per statement. An Adf must be used by a single goroutine at a time.
type Adf struct {
	order     *VarContainer
	bdd       *bdd.Bdd
	ac        []bdd.Term
	log       logrus.FieldLogger
	countmode bdd.Countmode
}

// Option configures an Adf at construction time.
type Option func(*Adf)

// WithLogger sets the logger used to trace construction and fixed-point
// computations. The default is the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Adf) {
		a.log = l
	}
}

// WithCounting selects the counting mode of the shared BDD store. The
// default is bdd.Adhoc.
func WithCounting(m bdd.Countmode) Option {
	return func(a *Adf) {
		a.countmode = m
	}
}

// New compiles a parsed input into an ADF. The order of in.Names is the
// variable order of the shared BDD.
func New(in *Input, options ...Option) (*Adf, error) {
	order, err := NewVarContainer(in.Names)
	if err != nil {
		return nil, err
	}
	a := &Adf{order: order, log: logrus.StandardLogger()}
	for _, o := range options {
		o(a)
	}
	a.bdd = bdd.New(order.Len(), bdd.Counting(a.countmode))
	a.ac = make([]bdd.Term, order.Len())
	for k, name := range order.names {
		f := in.Conds[name]
		if f == nil {
			return nil, fmt.Errorf("statement %q has no acceptance condition", name)
		}
		t, err := a.term(f)
		if err != nil {
			return nil, fmt.Errorf("acceptance condition of %q: %w", name, err)
		}
		a.ac[k] = t
	}
	a.log.WithFields(logrus.Fields{
		"statements": order.Len(),
		"nodes":      a.bdd.Size(),
	}).Debug("acceptance conditions translated")
	return a, nil
}

// term translates a formula tree into a term of the shared BDD.
func (a *Adf) term(f *Formula) (bdd.Term, error) {
	switch f.Op {
	case OpBot:
		return bdd.False, nil
	case OpTop:
		return bdd.True, nil
	case OpAtom:
		v, ok := a.order.Var(f.Name)
		if !ok {
			return bdd.False, fmt.Errorf("undeclared statement %q", f.Name)
		}
		return a.bdd.Ithvar(v), nil
	case OpNeg:
		sub, err := a.term(f.Left)
		if err != nil {
			return bdd.False, err
		}
		return a.bdd.Not(sub), nil
	}
	left, err := a.term(f.Left)
	if err != nil {
		return bdd.False, err
	}
	right, err := a.term(f.Right)
	if err != nil {
		return bdd.False, err
	}
	switch f.Op {
	case OpAnd:
		return a.bdd.And(left, right), nil
	case OpOr:
		return a.bdd.Or(left, right), nil
	case OpImp:
		return a.bdd.Imp(left, right), nil
	case OpXor:
		return a.bdd.Xor(left, right), nil
	case OpIff:
		return a.bdd.Equiv(left, right), nil
	}
	return bdd.False, fmt.Errorf("unknown connective in formula %s", f)
}

// Statements returns the dictionary between statement names and variables.
func (a *Adf) Statements() *VarContainer {
	return a.order
}

// Stats returns information about the underlying BDD store.
func (a *Adf) Stats() string {
	return a.bdd.Stats()
}
