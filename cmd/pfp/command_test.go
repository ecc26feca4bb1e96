// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestRunCommandPrintsDatabase(t *testing.T) {
	ui := cli.NewMockUi()
	c := &RunCommand{
		UI: ui,
		in: strings.NewReader("edge a b.\npath ?X ?Y :- edge ?X ?Y.\n"),
	}
	code := c.Run(nil)
	require.Equal(t, 0, code)
	require.Contains(t, ui.OutputWriter.String(), "path a b")
}

func TestRunCommandReportsParseError(t *testing.T) {
	ui := cli.NewMockUi()
	c := &RunCommand{
		UI: ui,
		in: strings.NewReader("edge a b"),
	}
	code := c.Run(nil)
	require.Equal(t, 1, code)
	require.NotEmpty(t, ui.ErrorWriter.String())
}

func TestRunFunctionDetectsOscillation(t *testing.T) {
	var lines []string
	// The database alternates between {s a} and {p a}: each state's rules
	// add the other tuple and delete the current one.
	stable, err := run("s a.\np ?X :- s ?X.\n~s ?X :- s ?X.\ns ?X :- p ?X.\n~p ?X :- p ?X.\n", hclog.NewNullLogger(), func(s string) {
		lines = append(lines, s)
	})
	require.NoError(t, err)
	require.False(t, stable)
}
