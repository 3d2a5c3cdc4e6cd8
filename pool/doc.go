// Package pool provides a small bounded worker-pool scheduling substrate: a
// generic "map over chunks, with at most N concurrent workers" primitive.
// It knows nothing about sorting networks; it is a scheduling substrate
// only, consumed by the verify package's executor to parallelize Cmp and
// Combine jobs.
package pool
