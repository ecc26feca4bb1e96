// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Forest owns a growing, append-only sequence of BDD nodes plus the
// canonicalising table that maps a (level, hi, lo) triple back to the id of
// the node that already represents it. It additionally carries the state
// needed for the "virtual power" projection used to join a rule's body
// against the database without materialising copies of it (see SetPow).
type Forest struct {
	nodes   []node
	buckets map[int][]int // hash(level,hi,lo) -> candidate ids sharing that hash

	// virtual power state; dim == 1 disables the projection entirely, in
	// which case GetNode is the identity on f.nodes.
	root int
	dim  int
}

// New returns an empty Forest, already seeded with the two terminals F and T.
func New() *Forest {
	f := &Forest{
		nodes:   make([]node, 0, 64),
		buckets: make(map[int][]int, 64),
		dim:     1,
	}
	f.nodes = append(f.nodes, node{v: 0, hi: 0, lo: 0}) // F
	f.nodes = append(f.nodes, node{v: 0, hi: 1, lo: 1}) // T
	return f
}

// NumNodes returns the number of nodes physically stored in the Forest
// (i.e. ignoring any virtual power multiplication).
func (f *Forest) NumNodes() int {
	return len(f.nodes)
}

// pair maps a pair of non-negative integers bijectively onto a single
// integer, using Cantor's pairing function. Adapted from the teacher's
// _PAIR/_TRIPLE combinators (hashing.go), which hash a node's (level, hi,
// lo) triple into a bucket index for its unicity table; here the result
// seeds a Go map instead of indexing a fixed-size array, so we drop the
// length-dependent modulo and keep only the combinator.
func pair(a, b int) int {
	ua, ub := uint64(a), uint64(b)
	s := ua + ub
	return int((s*(s+1))/2 + ua)
}

func triple(v int32, hi, lo int) int {
	return pair(lo, pair(int(v), hi))
}

// Add returns the id of the node (level, hi, lo), creating it if it is not
// already present. If hi == lo the node is redundant (both branches agree
// regardless of the tested variable) and Add returns hi directly without
// recording anything — this is invariant I2 from the data model.
func (f *Forest) Add(level int32, hi, lo int) int {
	if hi == lo {
		return hi
	}
	h := triple(level, hi, lo)
	for _, id := range f.buckets[h] {
		n := f.nodes[id]
		if n.v == level && n.hi == hi && n.lo == lo {
			return id
		}
	}
	id := len(f.nodes)
	f.nodes = append(f.nodes, node{v: level, hi: hi, lo: lo})
	f.buckets[h] = append(f.buckets[h], id)
	return id
}

// SetPow installs a virtual power projection: subsequent calls to GetNode
// present dim disjoint, stacked copies of the Forest, all chained through
// root's T-leaves, without copying a single node. SetPow returns the id to
// use as the root of the dim-fold view; dim == 1 disables the projection
// (GetNode then falls back to indexing f.nodes directly).
//
// The returned id, and any id produced from it by GetNode, must only be fed
// into Apply/AllSat — never back into Add, since it does not correspond to
// any node actually stored in f.nodes.
func (f *Forest) SetPow(root, dim int) int {
	f.root = root
	f.dim = dim
	if IsLeaf(root) {
		return root
	}
	return root + len(f.nodes)*(dim-1)
}

// GetNode returns the node named by id, honouring the current virtual power
// projection. When dim == 1, or id already names a physical node, this is
// just f.nodes[id]. Otherwise id names the d-th virtual copy of node
// id % len(f.nodes): its non-leaf children are shifted into the same copy,
// and any T-leaf child is rewired to chain into the (d-1)-th copy's root
// (F-leaves are left alone — there is only ever one false).
func (f *Forest) GetNode(id int) Node {
	sz := len(f.nodes)
	if f.dim == 1 || id < sz {
		return f.nodes[id].export()
	}
	m := id % sz
	d := id / sz
	r := f.nodes[m]
	hi, lo := r.hi, r.lo
	switch {
	case IsTrue(hi):
		hi = f.root + sz*(d-1)
	case !IsLeaf(hi):
		hi += sz * d
	}
	switch {
	case IsTrue(lo):
		lo = f.root + sz*(d-1)
	case !IsLeaf(lo):
		lo += sz * d
	}
	return Node{V: r.v, Hi: hi, Lo: lo}
}
