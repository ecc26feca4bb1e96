// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Command pfp (see cmd/pfp) evaluates Datalog-with-negation programs under
partial fixed-point semantics, using Binary Decision Diagrams (package bdd)
as the uniform representation for both the extensional database and the
compiled rules that rewrite it.

A program is read (internal/parser), interned (internal/dict), compiled
into BDDs (internal/compile) and evaluated to a fixed point, or detected as
oscillating, by internal/engine.
*/
package pfp
