// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package compile turns the raw, interned rules produced by internal/parser
// into the compiled form internal/engine iterates to a fixed point: each
// rule becomes a single BDD over bits*arity stacked variable copies (one
// copy per body atom, joined through Forest.SetPow), together with the
// bookkeeping needed to project that BDD back down onto the head's free
// variables.
//
// Facts (rules with no body) never enter the compiled rule set: they are
// folded directly into the initial database, the way the original reader
// folds single-term clauses into db instead of pushing them onto rules.
package compile

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/go-pfp/pfp/bdd"
	"github.com/go-pfp/pfp/internal/dict"
	"github.com/go-pfp/pfp/internal/parser"
)

// Rule is a single compiled rule body, ready to be joined against the
// database once per fixed-point iteration.
type Rule struct {
	Neg   bool             // a deletion rule: matches remove from the database instead of adding to it
	H     int              // body conjunction, over w stacked copies of the variable space (a node of Prog)
	HSym  int              // constraint fixing every constant (non-variable) head slot, the predicate symbol included (a node of Prog)
	W     int              // number of body atoms — the virtual power dimension
	X     *bitset.BitSet   // 0-based bit positions to existentially quantify out after the join
	HVars map[int]int      // body bit position -> head bit position, for the final Permute
}

// Program is a fully compiled Datalog-with-negation program.
type Program struct {
	Rules []Rule
	DB    int // root of the initial extensional database, a node of DBs
	Bits  int // bits needed to encode any interned symbol
	Arity int // tuple width: 1 (the predicate symbol slot) + the widest argument list
}

// Compile compiles every raw rule read by internal/parser into a Program.
// Facts fold into the returned Program's DB; everything else becomes a
// compiled Rule. dbs and prog are the two forests used throughout this
// implementation — dbs holds the database (and is the only one ever passed
// to Forest.SetPow), prog holds every rule's compiled body.
func Compile(raws []parser.RawRule, d *dict.Dict, dbs, prog *bdd.Forest) (*Program, error) {
	arity := 0
	for _, r := range raws {
		for _, t := range r {
			if len(t.Ids) > arity {
				arity = len(t.Ids)
			}
		}
	}
	for _, r := range raws {
		for i := range r {
			for len(r[i].Ids) < arity {
				r[i].Ids = append(r[i].Ids, dict.Pad)
			}
		}
	}
	bits := d.Bits()

	p := &Program{DB: bdd.F, Bits: bits, Arity: arity}
	for _, raw := range raws {
		if len(raw) == 1 {
			rule := fromRule(raw, bits, arity, dbs)
			p.DB = bdd.Apply(dbs, p.DB, dbs, rule.H, dbs, bdd.OpOr)
			continue
		}
		p.Rules = append(p.Rules, fromRule(raw, bits, arity, prog))
	}
	return p, nil
}

// bitID is BIT(term,arg) from the original evaluator: the 0-based position,
// within the flattened bits*arity-wide tuple of term-th body atom (or the
// head, at term==0 when called from the head-symbol loop below), of bit b
// of argument arg.
func bitID(term, arg, b, bits, arity int) int {
	return (term*bits+b)*arity + arg
}

// fromRule compiles one clause (body terms followed by the head, the head
// always last) into a Rule, building every node it needs in f. This is a
// direct translation of the original bdds::from_rule: walk the head first
// to fix its constant slots and collect its variables' positions,
// then walk each body atom left to right, conjoining (or, for a negated
// atom, and-not-ing) its bit constraints into r.H, recording which bit
// positions are existentially quantified (r.X) versus kept and remapped
// onto the head (r.HVars).
func fromRule(raw parser.RawRule, bits, arity int, f *bdd.Forest) Rule {
	head := raw[len(raw)-1]
	body := raw[:len(raw)-1]

	r := Rule{
		H:    bdd.T,
		HSym: bdd.T,
		Neg:  head.Neg,
		W:    len(body),
		X:    new(bitset.BitSet),
	}
	if r.W == 0 {
		r.W = 1 // a fact still occupies one (trivial) virtual-power copy
	}
	r.HVars = make(map[int]int)

	// head: fix known (non-variable) slots into HSym; record variable
	// slots' positions for the permute table built while walking the body.
	headVarPos := make(map[int]int)
	for i, id := range head.Ids {
		if id < 0 {
			headVarPos[id] = i
			continue
		}
		for b := 0; b < bits; b++ {
			bit := id&(1<<uint(b)) != 0
			r.HSym = bdd.Apply(f, r.HSym, f, bdd.FromBit(f, bitID(0, i, b, bits, arity), bit), f, bdd.OpAnd)
		}
	}

	if len(body) == 0 {
		r.H = r.HSym
		return r
	}

	// seen maps an interned id (symbol or variable) to the (term, arg) of
	// its first occurrence, so a repeat occurrence can be tied to the
	// first one with an equality constraint instead of a fresh variable.
	type slot struct{ term, arg int }
	seen := make(map[int]slot)
	notPad := bdd.F

	for ti, t := range body {
		k := bdd.T
		for j, id := range t.Ids {
			if prev, ok := seen[id]; ok {
				for b := 0; b < bits; b++ {
					k = bdd.Apply(f, k, f, bdd.FromEq(f, bitID(ti, j, b, bits, arity), bitID(prev.term, prev.arg, b, bits, arity), 1), f, bdd.OpAnd)
				}
				if _, ok := headVarPos[id]; ok {
					for b := 0; b < bits; b++ {
						r.X.Set(uint(bitID(ti, j, b, bits, arity)))
					}
				}
				continue
			}
			seen[id] = slot{ti, j}
			if id >= 0 {
				for b := 0; b < bits; b++ {
					bit := id&(1<<uint(b)) != 0
					k = bdd.Apply(f, k, f, bdd.FromBit(f, bitID(ti, j, b, bits, arity), bit), f, bdd.OpAnd)
					r.X.Set(uint(bitID(ti, j, b, bits, arity)))
				}
				continue
			}
			// a variable's first occurrence: gate out the padding value,
			// and either quantify it out (non-head variable) or remember
			// how to permute it onto the head (head variable).
			thisNotPad := bdd.T
			for b := 0; b < bits; b++ {
				thisNotPad = bdd.Apply(f, thisNotPad, f, bdd.FromBit(f, bitID(ti, j, b, bits, arity), false), f, bdd.OpAnd)
			}
			notPad = bdd.Apply(f, notPad, f, thisNotPad, f, bdd.OpOr)
			if pos, ok := headVarPos[id]; ok {
				for b := 0; b < bits; b++ {
					r.HVars[bitID(ti, j, b, bits, arity)] = bitID(0, pos, b, bits, arity)
				}
			} else {
				for b := 0; b < bits; b++ {
					r.X.Set(uint(bitID(ti, j, b, bits, arity)))
				}
			}
		}
		if t.Neg {
			r.H = bdd.Apply(f, r.H, f, k, f, bdd.OpAndNot)
		} else {
			r.H = bdd.Apply(f, r.H, f, k, f, bdd.OpAnd)
		}
	}
	r.H = bdd.Apply(f, r.H, f, notPad, f, bdd.OpAndNot)
	return r
}
