// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command pfp evaluates Datalog-with-negation programs, read from standard
// input, under partial fixed-point semantics.
package main

import (
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	ui := &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
			Reader:      os.Stdin,
		},
	}

	c := cli.NewCLI("pfp", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{UI: ui}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	os.Exit(exitStatus)
}
