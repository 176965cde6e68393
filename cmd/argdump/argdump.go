// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argdump shows how a command line is understood by package cmdline.
// It declares a fixed set of options, parses its own arguments and prints the
// resulting state as text, YAML or TOML.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/yeetrun/cmdline/pkg/cmdline"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/must"
)

// dump is the parsed state written by argdump.
type dump struct {
	Program string        `yaml:"program" toml:"program"`
	Options []dumpedValue `yaml:"options" toml:"options"`
	Rest    []string      `yaml:"rest" toml:"rest"`
}

type dumpedValue struct {
	Name  string `yaml:"name" toml:"name"`
	Type  string `yaml:"type" toml:"type"`
	Set   bool   `yaml:"set" toml:"set"`
	Value string `yaml:"value" toml:"value"`
}

func newParser() *cmdline.Parser {
	p := cmdline.New()
	must.Do(p.Flag("verbose", 'v', "log parser decisions to stderr"))
	must.Do(cmdline.AddWithReader(p, "format", 'f', "output format", false, "text", cmdline.OneOf("text", "yaml", "toml")))
	must.Do(cmdline.Add(p, "output", 'o', "write to this file instead of stdout", false, "-"))
	must.Do(cmdline.AddWithReader(p, "count", 'c', "number of copies to print", false, 1, cmdline.Range(1, 100)))
	must.Do(cmdline.AddWithReader(p, "id", 0, "request id to echo", false, uuid.Nil, cmdline.UUID()))
	must.Do(cmdline.AddWithReader(p, "min-version", 0, "version to echo", false, (*semver.Version)(nil), cmdline.Version()))
	p.Footer("ARGS...")
	return p
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("argdump: ")

	p := newParser()
	p.ParseOrExit(os.Args)
	if verbose, _ := p.IsSet("verbose"); verbose {
		// Parsing again yields the same state and traces every decision.
		p.Logf = log.Printf
		p.Parse(os.Args)
	}

	d := collect(p)
	format := cmdline.MustGet[string](p, "format")
	if err := emit(cmdline.MustGet[string](p, "output"), format, d, cmdline.MustGet[int](p, "count")); err != nil {
		log.Fatal(err)
	}
}

// emit writes n copies of d to path, or to stdout if path is "-".
func emit(path, format string, d dump, n int) error {
	if path == "-" {
		return writeCopies(os.Stdout, format, d, n)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeCopies(f, format, d, n); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

// writeCopies writes d n times.
func writeCopies(w io.Writer, format string, d dump, n int) error {
	for range n {
		if err := write(w, format, d); err != nil {
			return fmt.Errorf("failed to write %s: %w", format, err)
		}
	}
	return nil
}

func collect(p *cmdline.Parser) dump {
	d := dump{
		Program: p.ProgramName(),
		Rest:    p.Rest(),
	}
	if d.Rest == nil {
		d.Rest = []string{}
	}
	for _, info := range p.Options() {
		typ := info.Type
		if !info.HasValue {
			typ = "flag"
		}
		d.Options = append(d.Options, dumpedValue{
			Name:  info.Name,
			Type:  typ,
			Set:   info.Set,
			Value: valueText(info.Value),
		})
	}
	return d
}

func valueText(v any) string {
	switch v := v.(type) {
	case *semver.Version:
		if v == nil {
			return ""
		}
		return v.String()
	case uuid.UUID:
		if v == uuid.Nil {
			return ""
		}
		return v.String()
	}
	return fmt.Sprint(v)
}

func write(w io.Writer, format string, d dump) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(d)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "program\t%s\n", d.Program)
	fmt.Fprintln(tw, "OPTION\tTYPE\tSET\tVALUE")
	for _, o := range d.Options {
		fmt.Fprintf(tw, "--%s\t%s\t%v\t%s\n", o.Name, o.Type, o.Set, o.Value)
	}
	for i, arg := range d.Rest {
		fmt.Fprintf(tw, "rest[%d]\t%q\n", i, arg)
	}
	return tw.Flush()
}
