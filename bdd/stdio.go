// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Stats returns a short, human-readable summary of f's size — the kind of
// thing a CLI prints between PFP iterations when run at a verbose logging
// level.
func (f *Forest) Stats() string {
	return fmt.Sprintf("nodes: %d (buckets: %d)\n", len(f.nodes), len(f.buckets))
}

// Dump writes a textual rendering of the node reachable from id to w, one
// line per node, children before their parents (depth-first, hi subtree
// before lo subtree): "id [level] ? hi : lo". It mirrors the
// original evaluator's own "n?hi:lo" node printer, spelled out as a table
// instead of inlined recursively so that shared subtrees are printed once.
func (f *Forest) Dump(w io.Writer, id int) {
	if IsLeaf(id) {
		if IsTrue(id) {
			fmt.Fprintln(w, "T")
		} else {
			fmt.Fprintln(w, "F")
		}
		return
	}
	seen := make(map[int]bool)
	var order []int
	var visit func(int)
	visit = func(n int) {
		if IsLeaf(n) || seen[n] {
			return
		}
		seen[n] = true
		node := f.GetNode(n)
		visit(node.Hi)
		visit(node.Lo)
		order = append(order, n)
	}
	visit(id)
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, n := range order {
		node := f.GetNode(n)
		fmt.Fprintf(tw, "%d\t[%d]\t? %d\t: %d\n", n, node.V, node.Hi, node.Lo)
	}
	tw.Flush()
}
