// Package planner statically compiles an ordered comparator list into an
// execution plan: an alternating sequence of Cmp jobs (apply a batch of
// comparators confined to one connected component) and Combine jobs (merge
// two components' state sets via a Cartesian product).
//
// The planner greedily layers as many comparators as possible per pass,
// deferring Combine jobs until no further intra-component work remains, so
// that each component's eventually-large state set lives in exactly one
// place for as long as possible.
package planner
