// Package layout computes a layered x-position layout for a comparator
// network and renders it as SVG path strings. Both are pure functions of
// (N, comparators) plus, for rendering, a verification result; the
// executor never imports this package.
package layout
