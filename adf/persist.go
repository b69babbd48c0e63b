// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package adf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dalzilio/adf/bdd"
)

// ErrImport reports a serialized ADF that is inconsistent beyond the BDD
// snapshot itself (bad dictionary or acceptance vector).
var ErrImport = errors.New("corrupt ADF state")

// state is the serialized form of an ADF.
type state struct {
	Ordering ordering     `json:"ordering"`
	Bdd      bdd.Snapshot `json:"bdd"`
	Ac       []bdd.Term   `json:"ac"`
}

type ordering struct {
	Names   []string           `json:"names"`
	Mapping map[string]bdd.Var `json:"mapping"`
}

// Export writes the ADF (dictionary, BDD store and acceptance conditions)
// as JSON. The output is deterministic for a given ADF.
func (a *Adf) Export(w io.Writer) error {
	s := state{
		Ordering: ordering{
			Names:   a.order.Names(),
			Mapping: a.order.index,
		},
		Bdd: a.bdd.Snapshot(),
		Ac:  append([]bdd.Term{}, a.ac...),
	}
	enc := json.NewEncoder(w)
	return enc.Encode(s)
}

// Import rebuilds an ADF from the output of Export. The counting and
// dependency caches of the store are regenerated while the node table is
// validated; a node table that breaks the structural invariants of the
// store yields an error wrapping bdd.ErrCorrupt.
func Import(r io.Reader, options ...Option) (*Adf, error) {
	var s state
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImport, err)
	}
	order, err := NewVarContainer(s.Ordering.Names)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImport, err)
	}
	for name, v := range s.Ordering.Mapping {
		if w, ok := order.Var(name); !ok || w != v {
			return nil, fmt.Errorf("%w: mapping of %q contradicts the name list", ErrImport, name)
		}
	}
	a := &Adf{order: order, log: logrus.StandardLogger()}
	for _, o := range options {
		o(a)
	}
	store, err := bdd.Restore(order.Len(), s.Bdd, bdd.Counting(a.countmode))
	if err != nil {
		return nil, err
	}
	if len(s.Ac) != order.Len() {
		return nil, fmt.Errorf("%w: %d acceptance conditions for %d statements", ErrImport, len(s.Ac), order.Len())
	}
	for i, t := range s.Ac {
		if t < 0 || int(t) >= store.Size() {
			return nil, fmt.Errorf("%w: acceptance condition %d is a dangling term", ErrImport, i)
		}
	}
	a.bdd = store
	a.ac = append([]bdd.Term{}, s.Ac...)
	a.log.WithField("nodes", store.Size()).Debug("ADF state imported")
	return a, nil
}
