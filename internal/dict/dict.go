// Package dict interns the symbols and variables of a Datalog program into
// small integers, the way the original evaluator's dict_t<K> does: constant
// symbols are numbered upward from 1 (0 is reserved as the padding value
// that never occupies a real argument position), and variables — recognised
// by a leading '?' — are numbered downward from -1.
package dict

import "fmt"

// Pad is the value used to fill out a term's argument list up to the
// program's maximum arity; it is never returned by Intern.
const Pad = 0

// Dict interns identifiers into integers on first sight and hands back the
// same integer on every subsequent lookup of the same identifier.
type Dict struct {
	syms   []string
	symIdx map[string]int
	vars   []string
	varIdx map[string]int
}

// New returns an empty Dict, with slot 0 already reserved for Pad.
func New() *Dict {
	return &Dict{
		syms:   []string{""}, // index 0 reserved, mirrors Pad
		symIdx: make(map[string]int),
		vars:   nil,
		varIdx: make(map[string]int),
	}
}

// Intern returns the integer standing for id, interning it if this is the
// first time id is seen. Identifiers beginning with '?' are variables and
// receive negative ids (-1, -2, ...); every other identifier is a constant
// symbol and receives a positive id starting at 1.
func (d *Dict) Intern(id string) int {
	if len(id) > 0 && id[0] == '?' {
		if v, ok := d.varIdx[id]; ok {
			return v
		}
		v := -(len(d.vars) + 1)
		d.vars = append(d.vars, id)
		d.varIdx[id] = v
		return v
	}
	if v, ok := d.symIdx[id]; ok {
		return v
	}
	d.syms = append(d.syms, id)
	v := len(d.syms) - 1
	d.symIdx[id] = v
	return v
}

// NSyms returns the number of distinct constant symbols interned so far,
// including the reserved padding slot.
func (d *Dict) NSyms() int {
	return len(d.syms)
}

// Bits returns the number of bits needed to encode any symbol id returned
// by Intern, i.e. the smallest b such that NSyms() <= 1<<b.
func (d *Dict) Bits() int {
	n := d.NSyms()
	b := 0
	for (1 << b) < n {
		b++
	}
	if b == 0 {
		b = 1
	}
	return b
}

// Name returns the identifier that was interned as id, or an empty string
// (plus ok == false) if id has never been returned by Intern.
func (d *Dict) Name(id int) (string, bool) {
	if id == Pad {
		return "", false
	}
	if id > 0 {
		if id < len(d.syms) {
			return d.syms[id], true
		}
		return "", false
	}
	i := -id - 1
	if i >= 0 && i < len(d.vars) {
		return d.vars[i], true
	}
	return "", false
}

// String implements fmt.Stringer, mostly to make Dict useful in log lines.
func (d *Dict) String() string {
	return fmt.Sprintf("dict{syms: %d, vars: %d}", len(d.syms)-1, len(d.vars))
}
