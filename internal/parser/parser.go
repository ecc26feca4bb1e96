// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package parser turns the text of a Datalog-with-negation program into raw
// rules of interned ids, ready for internal/compile. Its grammar and the
// shape of the terms it produces mirror the original evaluator's own
// str_read/term_read/rule_read reader almost literally: there is no
// separate tokenizer stage, since the source grammar is simple enough
// (whitespace-delimited identifiers, four punctuation marks) that a single
// rune-at-a-time reader is the idiomatic match for it, the way the original
// reads directly off its input stream.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pfp/pfp/internal/dict"
)

// Term is one literal of a rule: a predicate symbol followed by its
// arguments, each already interned through a Dict. Neg marks a literal
// written with a leading '~' (negation-as-failure in the body; a negative
// head marks a deletion rule).
type Term struct {
	Neg bool
	Ids []int // Ids[0] is the predicate symbol, Ids[1:] are the arguments
}

// RawRule is one parsed clause: zero or more body terms followed by exactly
// one head term, always last — the same "head last" convention the original
// rule_read builds by always inserting new body terms before the head.
// A RawRule with a single Term is a fact.
type RawRule []Term

// ParseError reports a fatal syntax error, together with the byte offset in
// the (comment-stripped) input where it was found.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at byte %d)", e.Msg, e.Pos)
}

// StripComments removes everything from a '#' to the end of its
// line, keeping the newline itself — the same behaviour as the original
// reader's file_read_text, which drops comment bodies but never collapses
// line structure (so reported positions still land on the right line).
func StripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	skip := false
	for _, r := range text {
		switch {
		case r == '#':
			skip = true
		case r == '\n' || r == '\r':
			skip = false
			b.WriteRune(r)
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse reads a full program (after StripComments) into its raw rules,
// interning every identifier it encounters through d. It returns a
// *ParseError, wrapped in the error interface, on any of the four fatal
// conditions the original reader treats as unrecoverable: an identifier
// expected where none is found, a ':-' expected where one is missing, a
// term expected after ':-', and a trailing '.' expected to close a rule.
func Parse(text string, d *dict.Dict) ([]RawRule, error) {
	p := &parser{src: []rune(text), dict: d}
	var rules []RawRule
	for {
		p.skipSpace()
		if p.eof() {
			return rules, nil
		}
		r, err := p.rule()
		if err != nil {
			return rules, err
		}
		rules = append(rules, r)
	}
}

type parser struct {
	src  []rune
	pos  int
	dict *dict.Dict
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) errf(msg string) error {
	return &ParseError{Pos: p.pos, Msg: msg}
}

// ident reads one whitespace- and punctuation-delimited identifier,
// allowing a leading '?' to mark a variable, and interns it.
func (p *parser) ident() (int, error) {
	p.skipSpace()
	if p.eof() {
		return 0, p.errf("identifier expected")
	}
	start := p.pos
	if p.peek() == '?' {
		p.pos++
	}
	for !p.eof() && (unicode.IsLetter(p.peek()) || unicode.IsDigit(p.peek())) {
		p.pos++
	}
	if p.pos == start || (p.pos == start+1 && p.src[start] == '?') {
		return 0, p.errf("identifier expected")
	}
	return p.dict.Intern(string(p.src[start:p.pos])), nil
}

// term reads one literal: an optional leading '~', then one or more
// identifiers, stopping at ',' (more terms follow in this rule), '.' or ':'
// (the rule, or its body, is done). An empty term (nothing before the
// delimiter) is returned as a zero-value Term with a nil Ids, signalling
// "no more terms" to rule().
func (p *parser) term() (Term, error) {
	p.skipSpace()
	if p.eof() {
		return Term{}, nil
	}
	neg := false
	if p.peek() == '~' {
		neg = true
		p.pos++
	}
	var ids []int
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		switch p.peek() {
		case ',':
			p.pos++
			return Term{Neg: neg, Ids: ids}, nil
		case '.', ':':
			return Term{Neg: neg, Ids: ids}, nil
		}
		id, err := p.ident()
		if err != nil {
			return Term{}, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return Term{}, nil
	}
	return Term{Neg: neg, Ids: ids}, nil
}

// rule reads one full clause: "head." or "head :- body1, body2, ... ."
// Body terms are appended ahead of the head, so the head always ends up
// last in the returned RawRule, mirroring the original rule_read's
// r.insert(r.end()-1, t).
func (p *parser) rule() (RawRule, error) {
	head, err := p.term()
	if err != nil {
		return nil, err
	}
	if head.Ids == nil {
		return nil, p.errf("term expected")
	}
	r := RawRule{head}

	p.skipSpace()
	if p.peek() == '.' {
		p.pos++
		return r, nil
	}
	p.skipSpace()
	if p.peek() != ':' {
		return nil, p.errf("':-' expected")
	}
	p.pos++
	if p.peek() != '-' {
		return nil, p.errf("':-' expected")
	}
	p.pos++

	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if t.Ids == nil {
			return nil, p.errf("term expected")
		}
		r = append(r[:len(r)-1], t, head)
		p.skipSpace()
		if p.peek() == '.' {
			p.pos++
			return r, nil
		}
	}
}
