// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const helpOption = "help"

// Swapped out in tests.
var (
	osExit       = os.Exit
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
	isTerminalFn           = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
)

// ParseOrExit parses argv and terminates the process unless parsing
// succeeded.
//
// A --help flag (with short form -? when that character is free) is declared
// unless an option named "help" already exists. When help is requested the
// usage is printed to stdout and the process exits with status 0. When parsing
// fails every error and then the usage is printed to stderr and the process
// exits with status 1.
func (p *Parser) ParseOrExit(argv []string) {
	if _, ok := p.options[helpOption]; !ok {
		var short rune = '?'
		for _, o := range p.ordered {
			if o.short() == short {
				short = 0
				break
			}
		}
		// Cannot fail: the name is free and short does not collide.
		_ = p.Flag(helpOption, short, "print this message")
	}

	ok := p.Parse(argv)
	if help, _ := p.IsSet(helpOption); help {
		fmt.Fprint(stdout, p.Usage())
		osExit(0)
		return
	}
	if ok {
		return
	}

	red := color.New(color.FgRed)
	if isTerminalFn() {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	for _, err := range p.errors {
		red.Fprintf(stderr, "Error: %v\n", err)
	}
	fmt.Fprint(stderr, p.Usage())
	osExit(1)
}
