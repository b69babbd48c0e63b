// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Countmode selects when model and path counts are computed.
type Countmode int

const (
	// Adhoc computes the counts of a node when it is inserted in the store.
	Adhoc Countmode = iota
	// Memoized computes counts on first query, with memoization.
	Memoized
)

// configs is used to store the values of the configurable parameters of the
// BDD.
type configs struct {
	countmode Countmode // when counts are computed
	nodesize  int       // initial capacity of the node table
}

func makeconfigs(varnum int) configs {
	return configs{
		countmode: Adhoc,
		nodesize:  2*varnum + 2,
	}
}

// Counting is a configuration option (function). Used as a parameter in New
// it selects the counting mode. The default is Adhoc, where counts are
// maintained on every insertion.
func Counting(m Countmode) func(*configs) {
	return func(c *configs) {
		c.countmode = m
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New
// it sets a preferred initial capacity for the node table. The table grows
// during computation regardless of this value.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > c.nodesize {
			c.nodesize = size
		}
	}
}
