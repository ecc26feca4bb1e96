// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements a minimal, append-only Binary Decision Diagram (BDD)
forest: a shared pool of reduced nodes plus the handful of operations needed
to compile and evaluate a fixed-point Datalog program over it — Apply (AND,
OR, AND_NOT and an existential-quantification variant), Permute, Ite and
AllSat.

Unlike a general-purpose BDD library, this one never shrinks. There is no
garbage collection, no reference counting and no node-table resizing: a
Forest only ever grows, and every id it ever returns stays valid for the
life of the Forest. This matches the access pattern of a partial
fixed-point evaluator, which only ever adds nodes and compares ids for
equality — it never needs to reclaim one.

A Forest additionally supports a "virtual power" projection (SetPow /
GetNode), which lets a single relation be presented as if it were replicated
across dim disjoint copies of its variable space, without actually copying
any node. This is what lets a rule join its w body atoms against the same
database BDD by treating w interleaved variable spaces as one.
*/
package bdd
