// Package netfmt parses and renders the network text format: three
// whitespace-delimited lines giving a comparator network's width, length,
// and its comparators' 1-based endpoints.
package netfmt
