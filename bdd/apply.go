// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "math"

// level returns the variable level of id within f, treating both terminals
// as if they carried the largest possible level (+infinity) rather than
// their literal stored value of 0. This is what lets Apply's recursion
// always descend into whichever operand still has a real variable to test,
// regardless of which operand happens to be a leaf.
func level(f *Forest, id int) int32 {
	if IsLeaf(id) {
		return math.MaxInt32
	}
	return f.GetNode(id).V
}

// Apply computes x op y, where x is a node of bx and y is a node of by (bx
// and by may be the same Forest, or bx may be under a virtual power
// projection — see Forest.SetPow), and adds every node it builds to r. x
// and y may come from different forests because a rule body's atoms are
// evaluated against the shared database forest while the rule's own
// intermediate conjunctions live in a separate, unrelated forest.
func Apply(bx *Forest, x int, by *Forest, y int, r *Forest, op Operator) int {
	// shortcircuit can return either operand verbatim, so it is only safe
	// to trust when x, y and the result all belong to the same forest — a
	// shortcut result from bx or by would otherwise escape as a foreign id
	// into r.
	if bx == by && by == r {
		if res, ok := op.shortcircuit(x, y); ok {
			return res
		}
	}
	if IsLeaf(x) && IsLeaf(y) {
		return op.apply2(x, y)
	}

	vx, vy := level(bx, x), level(by, y)
	v := vx
	if vy < v {
		v = vy
	}

	var hi, lo int
	switch {
	case vx == v && vy == v:
		nx, ny := bx.GetNode(x), by.GetNode(y)
		hi = Apply(bx, nx.Hi, by, ny.Hi, r, op)
		lo = Apply(bx, nx.Lo, by, ny.Lo, r, op)
	case vx == v:
		nx := bx.GetNode(x)
		hi = Apply(bx, nx.Hi, by, y, r, op)
		lo = Apply(bx, nx.Lo, by, y, r, op)
	default:
		ny := by.GetNode(y)
		hi = Apply(bx, x, by, ny.Hi, r, op)
		lo = Apply(bx, x, by, ny.Lo, r, op)
	}
	return r.Add(v, hi, lo)
}

// UnaryOp transforms a single node of b, returning the node to rebuild in
// its place. It may itself call Apply against b (as ExistOp does) — any
// node it names, whether n itself or the result of such a call, is
// resolved through b.GetNode before ApplyUnary recurses into it.
type UnaryOp func(b *Forest, n Node) Node

// ApplyUnary rewrites x (a node of b) into r, applying op top-down at every
// node: op transforms the current node first, and the recursion then
// continues into the (possibly entirely different) subtree op returned.
// Leaves pass through unchanged.
func ApplyUnary(b *Forest, x int, r *Forest, op UnaryOp) int {
	if IsLeaf(x) {
		return x
	}
	n := op(b, b.GetNode(x))
	var hi, lo int
	if IsLeaf(n.Hi) {
		hi = n.Hi
	} else {
		hi = ApplyUnary(b, n.Hi, r, op)
	}
	if IsLeaf(n.Lo) {
		lo = n.Lo
	} else {
		lo = ApplyUnary(b, n.Lo, r, op)
	}
	return r.Add(n.V, hi, lo)
}

// bitset is the minimal membership interface ExistOp needs from
// *bitset.BitSet (github.com/bits-and-blooms/bitset), kept narrow here so
// this package does not have to import it just to name the parameter type.
type bitset interface {
	Test(uint) bool
}

// ExistOp builds the UnaryOp that existentially quantifies out every
// variable whose 0-based bit index is a member of xvars: a node testing a
// quantified variable is replaced by the OR of its two children, collapsing
// both truth assignments of that variable into one. xvars is typically a
// *bitset.BitSet — existentially-quantified variable sets are exactly the
// sparse, membership-tested sets that type is built for, and every rule
// compiled by internal/compile carries exactly one, built at compile time.
func ExistOp(xvars bitset) UnaryOp {
	return func(b *Forest, n Node) Node {
		if n.V == 0 {
			return n
		}
		bit := int(n.V) - 1
		if !xvars.Test(uint(bit)) {
			return n
		}
		return b.GetNode(Apply(b, n.Hi, b, n.Lo, b, OpOr))
	}
}
