// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"

	"github.com/go-pfp/pfp/bdd"
)

// This example builds (x1 & !x3) | x4 over a fresh Forest and counts its
// satisfying assignments out of 4 variables.
func Example_basic() {
	f := bdd.New()
	x1 := f.Add(1, bdd.T, bdd.F)
	x3 := f.Add(3, bdd.T, bdd.F)
	x4 := f.Add(4, bdd.T, bdd.F)

	notx3 := bdd.Apply(f, bdd.T, f, x3, f, bdd.OpAndNot)
	lhs := bdd.Apply(f, x1, f, notx3, f, bdd.OpAnd)
	n := bdd.Apply(f, lhs, f, x4, f, bdd.OpOr)

	fmt.Println(len(f.AllSat(n, 4)))
	// Output:
	// 10
}

// This example shows existential quantification collapsing two don't-care
// assignments of x2 into one.
func Example_exist() {
	f := bdd.New()
	x1 := f.Add(1, bdd.T, bdd.F)
	x2 := f.Add(2, bdd.T, bdd.F)
	both := bdd.Apply(f, x1, f, x2, f, bdd.OpAnd)

	s := newbits(1, 2)
	s.Set(1) // quantify out variable 2 (0-based bit 1)
	n := bdd.ApplyUnary(f, both, f, bdd.ExistOp(s))

	fmt.Println(n == x1)
	// Output:
	// true
}

// bits is a tiny stand-in for *bitset.BitSet used only by this example, so
// the example package does not have to import the real dependency just to
// demonstrate ExistOp's contract.
type bits map[uint]bool

func newbits(nvars ...int) bits {
	return make(bits)
}

func (b bits) Set(i uint) { b[i] = true }
func (b bits) Test(i uint) bool {
	return b[i]
}
