// Package bitset implements the bit-parallel state-pair algebra used by the
// sorting-network verifier: sets of reachable 0/1 assignments over up to 64
// wires, represented as pairs of 64-bit words.
package bitset
