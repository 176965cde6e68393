// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
	"tailscale.com/util/set"
)

type shortState int

const (
	shortUnmapped shortState = iota
	shortMapped
	shortAmbiguous
)

// shortLookup resolves short names to long names for one parse.
type shortLookup struct {
	names     map[rune]string
	ambiguous set.Set[rune]
}

func buildShortLookup(ordered []option) shortLookup {
	l := shortLookup{
		names:     make(map[rune]string),
		ambiguous: make(set.Set[rune]),
	}
	for _, o := range ordered {
		c := o.short()
		if c == 0 {
			continue
		}
		if _, dup := l.names[c]; dup || l.ambiguous.Contains(c) {
			delete(l.names, c)
			l.ambiguous.Add(c)
			continue
		}
		l.names[c] = o.name()
	}
	return l
}

func (l shortLookup) resolve(c rune) (string, shortState) {
	if l.ambiguous.Contains(c) {
		return "", shortAmbiguous
	}
	if name, ok := l.names[c]; ok {
		return name, shortMapped
	}
	return "", shortUnmapped
}

// Parse parses argv, whose first element is the program name.
// It reports whether parsing succeeded; on failure Errors describes every
// problem found. Option state from any earlier parse is discarded first.
//
// Supported forms:
//   - --name and --name=value
//   - -n, -n value and bundled flags such as -abc, where only the last
//     character may take the following argument as its value
//   - a lone "-" is ignored; any other argument is collected in Rest
func (p *Parser) Parse(argv []string) bool {
	p.reset()
	if len(argv) < 1 {
		p.addError(&ParseError{Kind: NoArguments})
		return false
	}
	p.progName = argv[0]

	lookup := buildShortLookup(p.ordered)

	for i := 1; i < len(argv); i++ {
		arg := argv[i]

		if rest, ok := strings.CutPrefix(arg, "--"); ok {
			if name, value, hasValue := strings.Cut(rest, "="); hasValue {
				p.logf("cmdline: %q: long option %q with value %q", arg, name, value)
				p.setOptionValue(name, value)
			} else {
				p.logf("cmdline: %q: long option %q", arg, name)
				p.setOption(name)
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			shorts := splitShorts(arg[1:])
			if len(shorts) == 0 {
				p.logf("cmdline: ignoring lone %q", arg)
				continue
			}
			for _, c := range shorts[:len(shorts)-1] {
				if name, ok := p.resolveShort(lookup, c); ok {
					p.setOption(name)
				}
			}

			last := shorts[len(shorts)-1]
			name, ok := p.resolveShort(lookup, last)
			if !ok {
				continue
			}
			if i+1 >= len(argv) || strings.HasPrefix(argv[i+1], "-") || !p.options[name].acceptsValue() {
				p.logf("cmdline: %q: short option -%s (--%s)", arg, last, name)
				p.setOption(name)
				continue
			}
			p.logf("cmdline: %q: short option -%s (--%s) takes %q", arg, last, name, argv[i+1])
			p.setOptionValue(name, argv[i+1])
			i++
			continue
		}

		p.others = append(p.others, arg)
	}

	for _, o := range p.ordered {
		if !o.satisfied() {
			p.addError(&ParseError{Kind: MissingRequired, Option: o.name()})
		}
	}

	return len(p.errors) == 0
}

// ParseLine splits line with shell quoting rules and parses the resulting
// words. The first word is the program name.
func (p *Parser) ParseLine(line string) bool {
	words, err := shellquote.Split(line)
	if err != nil {
		p.reset()
		p.addError(&ParseError{Kind: Syntax, Err: err})
		return false
	}
	return p.Parse(words)
}

// reset discards everything learned from the previous parse.
func (p *Parser) reset() {
	p.progName = ""
	p.errors = nil
	p.others = nil
	for _, o := range p.ordered {
		o.reset()
	}
}

// splitShorts splits a bundle of short names into the encoding of each
// character. A byte that is not valid UTF-8 is kept as its own element.
func splitShorts(s string) []string {
	var shorts []string
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		shorts = append(shorts, s[:size])
		s = s[size:]
	}
	return shorts
}

func (p *Parser) resolveShort(lookup shortLookup, raw string) (string, bool) {
	c, size := utf8.DecodeRuneInString(raw)
	if c == utf8.RuneError && size == 1 {
		p.addError(&ParseError{Kind: UndefinedShort, Short: c, Value: raw})
		return "", false
	}
	name, state := lookup.resolve(c)
	switch state {
	case shortUnmapped:
		p.addError(&ParseError{Kind: UndefinedShort, Short: c})
		return "", false
	case shortAmbiguous:
		p.addError(&ParseError{Kind: AmbiguousShort, Short: c})
		return "", false
	}
	return name, true
}

func (p *Parser) setOption(name string) {
	o, ok := p.options[name]
	if !ok {
		p.addError(&ParseError{Kind: UndefinedOption, Option: name})
		return
	}
	if !o.setFlag() {
		p.addError(&ParseError{Kind: NeedsValue, Option: name})
	}
}

func (p *Parser) setOptionValue(name, value string) {
	o, ok := p.options[name]
	if !ok {
		p.addError(&ParseError{Kind: UndefinedOption, Option: name})
		return
	}
	if err := o.setValue(value); err != nil {
		p.addError(&ParseError{Kind: InvalidValue, Option: name, Value: value, Err: err})
	}
}

func (p *Parser) addError(err *ParseError) {
	p.logf("cmdline: %v", err)
	p.errors = append(p.errors, err)
}

// Errors returns the problems found by the latest parse, in the order they
// were found.
func (p *Parser) Errors() []*ParseError {
	return append([]*ParseError(nil), p.errors...)
}

// ErrorText returns the messages of Errors, one per line.
func (p *Parser) ErrorText() string {
	var b strings.Builder
	for _, err := range p.errors {
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

// Err returns the parse errors joined into a single error, or nil if the
// latest parse succeeded.
func (p *Parser) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	errs := make([]error, len(p.errors))
	for i, err := range p.errors {
		errs[i] = err
	}
	return errors.Join(errs...)
}
