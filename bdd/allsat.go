// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// AllSat enumerates every satisfying assignment of x (a node of f) over the
// nvars variables numbered 1..nvars, expanding don't-care variables (those
// x's structure never tests) into both of their possible values. Each
// returned []bool has length nvars and is indexed by bit-1 (variable 1 is
// index 0).
func (f *Forest) AllSat(x int, nvars int) [][]bool {
	var out [][]bool
	p := make([]bool, nvars)
	f.sat(1, nvars, f.GetNode(x), p, &out)
	return out
}

// sat is a direct translation of the recursion used by the original
// fixed-point evaluator: walk variables 1..nvars in order, and whenever the
// node being inspected tests a variable further along than the one currently
// being considered, fork on both values of the skipped (don't-care)
// variable before continuing.
func (f *Forest) sat(v, nvars int, n Node, p []bool, out *[][]bool) {
	if n.V == 0 && n.Hi == F && n.Lo == F {
		// the false terminal: this branch admits no satisfying assignment
		return
	}
	if v < int(n.V) {
		p[v-1] = true
		f.sat(v+1, nvars, n, p, out)
		p[v-1] = false
		f.sat(v+1, nvars, n, p, out)
		return
	}
	if v == nvars+1 {
		row := make([]bool, nvars)
		copy(row, p)
		*out = append(*out, row)
		return
	}
	p[v-1] = true
	f.sat(v+1, nvars, f.GetNode(n.Hi), p, out)
	p[v-1] = false
	f.sat(v+1, nvars, f.GetNode(n.Lo), p, out)
}
