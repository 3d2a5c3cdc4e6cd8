// Package verify runs a compiled plan (see package planner) against a
// comparator network's full 0/1-principle state space: it executes Cmp and
// Combine jobs on a worker pool, tracks which comparators ever fired, and
// reports unsorted wire pairs, all while streaming Progress over a Future
// the caller can drain and cancel.
package verify
