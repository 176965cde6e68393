// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"slices"

	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
)

// Parser holds option declarations and the result of the latest parse.
// The zero value is ready to use.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	// Logf, if non-nil, receives a trace of how each argument is classified.
	Logf logger.Logf

	options map[string]option
	ordered []option
	ftr     string

	progName string
	others   []string
	errors   []*ParseError
}

// New returns an empty Parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

// Flag declares a value-less option. short may be 0 for no short form.
func (p *Parser) Flag(name string, short rune, desc string) error {
	return p.register(&flagOption{nam: name, snam: short, desc: desc})
}

// Add declares an option holding a T read with Default[T].
// Optional options report def until they are given on the command line.
func Add[T any](p *Parser, name string, short rune, desc string, required bool, def T) error {
	return AddWithReader(p, name, short, desc, required, def, nil)
}

// AddWithReader declares an option holding a T converted by read.
// A nil read is the same as Default[T]().
func AddWithReader[T any](p *Parser, name string, short rune, desc string, required bool, def T, read Reader[T]) error {
	if read == nil {
		read = Default[T]()
	}
	return p.register(&valueOption[T]{
		nam:    name,
		snam:   short,
		desc:   desc,
		need:   required,
		read:   read,
		def:    def,
		actual: def,
	})
}

// register adds o to the parser. A short name already used by another
// declaration still registers o, but the short form becomes ambiguous and a
// *ConfigError is returned.
func (p *Parser) register(o option) error {
	name := o.name()
	if name == "" {
		return &ConfigError{Reason: "option name must not be empty"}
	}
	if _, ok := p.options[name]; ok {
		return &ConfigError{Option: name, Reason: "multiple definition: " + name}
	}

	var collision bool
	if c := o.short(); c != 0 {
		collision = slices.ContainsFunc(p.ordered, func(other option) bool {
			return other.short() == c
		})
	}

	mak.Set(&p.options, name, o)
	p.ordered = append(p.ordered, o)

	if collision {
		return &ConfigError{
			Option: name,
			Short:  o.short(),
			Reason: fmt.Sprintf("short option '%c' is ambiguous", o.short()),
		}
	}
	return nil
}

// Footer sets text appended to the first line of Usage, typically a
// description of positional arguments.
func (p *Parser) Footer(text string) {
	p.ftr = text
}

// IsSet reports whether the named option appeared in the latest parse.
func (p *Parser) IsSet(name string) (bool, error) {
	o, ok := p.options[name]
	if !ok {
		return false, &LookupError{Option: name}
	}
	return o.isSet(), nil
}

// Get returns the current value of the named option, which is its default
// unless the latest parse set it.
func Get[T any](p *Parser, name string) (T, error) {
	var zero T
	o, ok := p.options[name]
	if !ok {
		return zero, &LookupError{Option: name}
	}
	v, ok := o.(*valueOption[T])
	if !ok {
		have := "flag"
		if o.acceptsValue() {
			have = o.info().Type
		}
		return zero, &TypeMismatchError{Option: name, Want: typeName[T](), Have: have}
	}
	return v.actual, nil
}

// MustGet is like Get but panics if the option is undeclared or of another
// type.
func MustGet[T any](p *Parser, name string) T {
	v, err := Get[T](p, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Rest returns the non-option arguments of the latest parse, in order.
func (p *Parser) Rest() []string {
	return slices.Clone(p.others)
}

// ProgramName returns argv[0] of the latest parse.
func (p *Parser) ProgramName() string {
	return p.progName
}

// Options describes every declaration in declaration order.
func (p *Parser) Options() []OptionInfo {
	infos := make([]OptionInfo, 0, len(p.ordered))
	for _, o := range p.ordered {
		infos = append(infos, o.info())
	}
	return infos
}
