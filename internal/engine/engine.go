// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package engine drives a compiled program to its partial fixed point: it
// repeatedly applies every rule against the current database, merges the
// additions and deletions each rule produced, and stops either when the
// database stops changing (a genuine fixed point) or when it recurs onto an
// earlier database (an oscillation, reported to the caller as unstable).
package engine

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"

	"github.com/go-pfp/pfp/bdd"
	"github.com/go-pfp/pfp/internal/compile"
	"github.com/go-pfp/pfp/internal/dict"
)

// Engine evaluates one compiled Program's rules against a single, growing
// database BDD until it reaches a partial fixed point.
type Engine struct {
	DBs, Prog *bdd.Forest
	DB        int
	Rules     []compile.Rule
	Dict      *dict.Dict
	Bits      int
	Arity     int
	Logger    hclog.Logger
}

// New returns an Engine ready to evaluate p, seeded with p's initial
// database. If logger is nil a no-op logger is used.
func New(p *compile.Program, d *dict.Dict, dbs, prog *bdd.Forest, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		DBs:    dbs,
		Prog:   prog,
		DB:     p.DB,
		Rules:  p.Rules,
		Dict:   d,
		Bits:   p.Bits,
		Arity:  p.Arity,
		Logger: logger,
	}
}

// Step runs every rule once against the current database and folds the
// resulting additions and deletions back into it, following the original
// evaluator's step(): for each rule, join its body against the database
// (via the virtual power projection over its w atoms), quantify out its
// non-head variables, permute the remaining ones onto the head's variable
// positions, conjoin the head-symbol constraint, and accumulate the result
// into either the running "add" or "del" delta depending on whether the
// rule is a deletion rule. Once every rule has run, the new database is
// (DB | add) &^ del — unless add and del fully cancel out while add itself
// was non-empty, a contradiction that collapses the database to empty.
func (e *Engine) Step() {
	add, del := bdd.F, bdd.F
	for i, r := range e.Rules {
		root := e.DBs.SetPow(e.DB, r.W)
		var x int
		if bdd.IsLeaf(e.DB) {
			if bdd.IsTrue(e.DB) {
				x = r.H
			} else {
				x = bdd.F
			}
		} else {
			x = bdd.Apply(e.DBs, root, e.Prog, r.H, e.Prog, bdd.OpAnd)
		}
		e.Logger.Trace("rule step", "rule", i, "x", x)

		y := bdd.ApplyUnary(e.Prog, x, e.Prog, bdd.ExistOp(r.X))
		e.Logger.Trace("rule step", "rule", i, "y", y)

		z := bdd.Permute(e.Prog, y, e.Prog, r.HVars)
		z = bdd.Apply(e.Prog, z, e.Prog, r.HSym, e.Prog, bdd.OpAnd)
		e.Logger.Trace("rule step", "rule", i, "z", z)

		if r.Neg {
			del = bdd.Apply(e.DBs, del, e.Prog, z, e.DBs, bdd.OpOr)
		} else {
			add = bdd.Apply(e.DBs, add, e.Prog, z, e.DBs, bdd.OpOr)
		}
	}
	e.Logger.Debug("step result", "db", e.DB, "add", add, "del", del)

	s := bdd.Apply(e.DBs, add, e.DBs, del, e.DBs, bdd.OpAndNot)
	if s == bdd.F && add != bdd.F {
		e.DB = bdd.F // every addition was also deleted: contradiction
		return
	}
	dbMinusDel := bdd.Apply(e.DBs, e.DB, e.DBs, del, e.DBs, bdd.OpAndNot)
	e.DB = bdd.Apply(e.DBs, dbMinusDel, e.DBs, s, e.DBs, bdd.OpOr)
}

// PFP iterates Step until the database either repeats a value it has
// already taken (in which case PFP returns false: the program oscillates
// and has no fixed point) or stops changing (PFP returns true).
func (e *Engine) PFP() bool {
	seen := set.New[int](0)
	for {
		d := e.DB
		seen.Insert(d)
		e.Logger.Info("pfp step", "db", d)
		e.Step()
		if seen.Contains(e.DB) {
			return d == e.DB
		}
	}
}

// Print writes a textual listing of the tuples currently in the database,
// one per line, resolving each interned id back to its source identifier
// where possible. This mirrors the original evaluator's out<K> printer,
// which walks every satisfying assignment of db and renders each as a
// space-separated tuple: a padding slot (shorter argument lists than the
// widest predicate in the program) prints as "*", a known id prints as its
// source identifier, and an id with no dictionary entry prints as "[k]".
func (e *Engine) Print(w io.Writer) {
	if bdd.IsLeaf(e.DB) {
		if bdd.IsTrue(e.DB) {
			fmt.Fprintln(w, "T")
		}
		return
	}
	rows := e.DBs.AllSat(e.DB, e.Bits*e.Arity)
	for _, row := range rows {
		tuple := fromBits(row, e.Bits, e.Arity)
		for j, v := range tuple {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			if v == dict.Pad {
				fmt.Fprint(w, "*")
			} else if name, ok := e.Dict.Name(v); ok {
				fmt.Fprint(w, name)
			} else {
				fmt.Fprintf(w, "[%d]", v)
			}
		}
		fmt.Fprintln(w)
	}
}

// fromBits decodes one AllSat row — a don't-care-free bit vector of length
// bits*arity — back into an arity-wide tuple of interned ids, the inverse
// of the bit-by-bit encoding fromRule builds. Bit n belongs to argument
// n%arity, at bit position n/arity, matching the original from_bits<K>.
func fromBits(row []bool, bits, arity int) []int {
	tuple := make([]int, arity)
	for n, bit := range row {
		if bit {
			tuple[n%arity] |= 1 << uint(n/arity)
		}
	}
	return tuple
}
