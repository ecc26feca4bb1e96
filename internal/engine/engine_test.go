// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package engine_test

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/go-pfp/pfp/bdd"
	"github.com/go-pfp/pfp/internal/compile"
	"github.com/go-pfp/pfp/internal/dict"
	"github.com/go-pfp/pfp/internal/engine"
	"github.com/go-pfp/pfp/internal/parser"
)

func run(t *testing.T, text string) (*engine.Engine, bool) {
	t.Helper()
	d := dict.New()
	raws, err := parser.Parse(text, d)
	require.NoError(t, err)
	dbs, prog := bdd.New(), bdd.New()
	p, err := compile.Compile(raws, d, dbs, prog)
	require.NoError(t, err)
	e := engine.New(p, d, dbs, prog, hclog.NewNullLogger())
	stable := e.PFP()
	return e, stable
}

func TestTransitiveClosureReachesFixedPoint(t *testing.T) {
	e, stable := run(t, `
edge a b.
edge b c.
edge c d.
path ?X ?Y :- edge ?X ?Y.
path ?X ?Z :- path ?X ?Y, edge ?Y ?Z.
`)
	require.True(t, stable)

	var out strings.Builder
	e.Print(&out)
	text := out.String()
	require.Contains(t, text, "path a b")
	require.Contains(t, text, "path a d")
	require.Contains(t, text, "path c d")
}

func TestNegatedRuleDeletesMatchingTuples(t *testing.T) {
	e, stable := run(t, `
person alice.
person bob.
banned bob.
active ?X :- person ?X, ~banned ?X.
`)
	require.True(t, stable)

	var out strings.Builder
	e.Print(&out)
	text := out.String()
	require.Contains(t, text, "active alice")
	require.NotContains(t, text, "active bob")
}

func TestFactOnlyProgramIsImmediatelyStable(t *testing.T) {
	_, stable := run(t, "a x.\nb y.\n")
	require.True(t, stable)
}

func TestPrintPadsShorterTuplesWithAsterisk(t *testing.T) {
	e, stable := run(t, `
edge a b c.
short x.
`)
	require.True(t, stable)

	var out strings.Builder
	e.Print(&out)
	text := out.String()
	require.Contains(t, text, "short x * *")
	require.NotContains(t, text, "short x 0 0")
}
