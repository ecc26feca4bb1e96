// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package compile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-pfp/pfp/bdd"
	"github.com/go-pfp/pfp/internal/compile"
	"github.com/go-pfp/pfp/internal/dict"
	"github.com/go-pfp/pfp/internal/parser"
)

func compileText(t *testing.T, text string) (*compile.Program, *dict.Dict, *bdd.Forest, *bdd.Forest) {
	t.Helper()
	d := dict.New()
	raws, err := parser.Parse(text, d)
	require.NoError(t, err)
	dbs, prog := bdd.New(), bdd.New()
	p, err := compile.Compile(raws, d, dbs, prog)
	require.NoError(t, err)
	return p, d, dbs, prog
}

func TestCompileFactsFoldIntoDB(t *testing.T) {
	p, _, _, _ := compileText(t, "edge a b.\nedge b c.\n")
	require.NotEqual(t, bdd.F, p.DB)
	require.Empty(t, p.Rules)
}

func TestCompileRuleProducesOneRule(t *testing.T) {
	p, _, _, _ := compileText(t, "edge a b.\npath ?X ?Y :- edge ?X ?Y.\n")
	require.Len(t, p.Rules, 1)
	r := p.Rules[0]
	require.False(t, r.Neg)
	require.Equal(t, 1, r.W)
	require.NotZero(t, r.H)
}

func TestCompileNegatedRuleIsMarked(t *testing.T) {
	p, _, _, _ := compileText(t, "a x.\nb x.\n~c ?X :- a ?X, ~b ?X.\n")
	require.Len(t, p.Rules, 1)
	require.True(t, p.Rules[0].Neg)
}

func TestCompileArityIncludesPredicateSlot(t *testing.T) {
	p, _, _, _ := compileText(t, "edge a b.\n")
	// tuple width is 1 (predicate symbol) + 2 arguments
	require.Equal(t, 3, p.Arity)
}
