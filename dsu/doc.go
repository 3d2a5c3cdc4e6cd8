// Package dsu implements weighted union-find (disjoint set union) with path
// compression, used to track which wires are currently connected by
// comparators already assigned to a job.
package dsu
