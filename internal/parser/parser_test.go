// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-pfp/pfp/internal/dict"
	"github.com/go-pfp/pfp/internal/parser"
)

func TestStripComments(t *testing.T) {
	in := "edge a b. # a comment\nedge b c.\n"
	got := parser.StripComments(in)
	require.Equal(t, "edge a b. \nedge b c.\n", got)
}

func TestParseFact(t *testing.T) {
	d := dict.New()
	rules, err := parser.Parse("edge a b.", d)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Len(t, rules[0], 1)
	require.False(t, rules[0][0].Neg)
	require.Len(t, rules[0][0].Ids, 3) // predicate + 2 args
}

func TestParseRuleHeadIsLast(t *testing.T) {
	d := dict.New()
	rules, err := parser.Parse("path ?X ?Y :- edge ?X ?Y.", d)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Len(t, rules[0], 2)
	head := rules[0][len(rules[0])-1]
	x, _ := d.Name(head.Ids[1])
	require.Equal(t, "?X", x)
}

func TestParseNegatedBodyAtom(t *testing.T) {
	d := dict.New()
	rules, err := parser.Parse("reachable ?X :- node ?X, ~visited ?X.", d)
	require.NoError(t, err)
	require.Len(t, rules[0], 3)
	require.True(t, rules[0][1].Neg)
}

func TestParseMultipleRules(t *testing.T) {
	d := dict.New()
	rules, err := parser.Parse("edge a b.\nedge b c.\npath ?X ?Y :- edge ?X ?Y.\n", d)
	require.NoError(t, err)
	require.Len(t, rules, 3)
}

func TestParseTermExpectedAfterSeparatorIsFatal(t *testing.T) {
	d := dict.New()
	_, err := parser.Parse("path ?X ?Y :- .", d)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	require.Greater(t, perr.Pos, 0)
	require.Contains(t, err.Error(), "at byte")
}

func TestParseMissingDotIsFatal(t *testing.T) {
	d := dict.New()
	_, err := parser.Parse("edge a b", d)
	require.Error(t, err)
}
