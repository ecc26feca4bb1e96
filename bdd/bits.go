// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// BitID computes the 0-based position, within a tuple's flattened bit
// vector, of bit b of the bits-bit encoding of argument j (0-based) of a
// term occurring at position term (0-based) of a rule of arity ar. This is
// the internal numbering convention used throughout compile and engine; it
// differs from the 1-based node level stored on a node (node.V), which is
// always BitID(...)+1 — the +1 is applied only at the From*/Ite boundary
// below and undone (via n.V-1) wherever a node's level must be read back as
// a bit position (Permute, ExistOp).
func BitID(term, j, b, bits, ar int) int {
	return (term*bits+b)*ar + j
}

// FromBit returns the id of the single-variable BDD that is true exactly
// when bit (0-based) is set to v.
func FromBit(r *Forest, bit int, v bool) int {
	if v {
		return r.Add(int32(bit+1), T, F)
	}
	return r.Add(int32(bit+1), F, T)
}

// Ite builds the BDD for if-then-else(bit, then, els): test bit (0-based),
// branch to then when set and to els otherwise. then and els must be nodes
// of r.
func Ite(r *Forest, bit int, then, els int) int {
	return r.Add(int32(bit+1), then, els)
}

// FromEq returns the id of the BDD that is true exactly when the two
// bits-wide bit vectors starting at bit positions x and y (0-based, both
// counting up) agree on every bit: the conjunction, over all b in
// [0,bits), of (bit x+b) <=> (bit y+b).
func FromEq(r *Forest, x, y, bits int) int {
	eq := T
	for b := 0; b < bits; b++ {
		xt, xf := FromBit(r, x+b, true), FromBit(r, x+b, false)
		yt, yf := FromBit(r, y+b, true), FromBit(r, y+b, false)
		bothTrue := Apply(r, xt, r, yt, r, OpAnd)
		bothFalse := Apply(r, xf, r, yf, r, OpAnd)
		bit := Apply(r, bothTrue, r, bothFalse, r, OpOr)
		eq = Apply(r, eq, r, bit, r, OpAnd)
	}
	return eq
}
