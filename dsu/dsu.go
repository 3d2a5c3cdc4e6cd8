package dsu

// DSU is a union-find over n nodes, merging smaller components into larger
// ones and compressing paths on Find. The zero value is not usable; build
// one with New.
type DSU struct {
	parent []int
	size   []int // only meaningful at a root
}

// New returns a DSU over n singleton nodes {0, ..., n-1}.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the root of u's component, and that component's size,
// compressing the path from u to the root as it goes.
func (d *DSU) Find(u int) (root, size int) {
	root = u
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[u] != root {
		d.parent[u], u = root, d.parent[u]
	}
	return root, d.size[root]
}

// Root returns the root of u's component.
func (d *DSU) Root(u int) int {
	root, _ := d.Find(u)
	return root
}

// Size returns the size of u's component.
func (d *DSU) Size(u int) int {
	_, size := d.Find(u)
	return size
}

// Connected reports whether u and v are currently in the same component.
func (d *DSU) Connected(u, v int) bool {
	return d.Root(u) == d.Root(v)
}

// Unite merges u's and v's components, smaller into larger, returning
// whether a merge actually happened (false if they were already the same
// component).
func (d *DSU) Unite(u, v int) bool {
	rootU, sizeU := d.Find(u)
	rootV, sizeV := d.Find(v)
	if rootU == rootV {
		return false
	}
	if sizeU < sizeV {
		rootU, rootV = rootV, rootU
		sizeU, sizeV = sizeV, sizeU
	}
	d.parent[rootV] = rootU
	d.size[rootU] = sizeU + sizeV
	return true
}
