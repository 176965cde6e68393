// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "errors"

// option is a single declaration held by a Parser. It is implemented only by
// *flagOption and *valueOption[T].
type option interface {
	name() string
	short() rune
	description() string

	// acceptsValue reports whether the option takes a value.
	acceptsValue() bool
	// setFlag marks a value-less occurrence. It reports false if the option
	// needs a value.
	setFlag() bool
	// setValue applies an explicit value. Prior state is kept on failure.
	setValue(string) error
	isSet() bool
	// satisfied reports false for a required option that was not set.
	satisfied() bool
	// reset restores the declared state before a parse.
	reset()

	info() OptionInfo
}

// OptionInfo describes a declared option and its state after the latest parse.
type OptionInfo struct {
	Name        string
	Short       rune // 0 if the option has no short form
	Description string
	Type        string // Value type name, empty for flags
	HasValue    bool   // false for flags
	Required    bool
	Set         bool
	Value       any    // Current value; for flags, whether it was present
	Default     string // Default rendered as text, empty for flags
}

type flagOption struct {
	nam  string
	snam rune
	desc string
	has  bool
}

var errFlagValue = errors.New("flag does not take a value")

func (o *flagOption) name() string        { return o.nam }
func (o *flagOption) short() rune         { return o.snam }
func (o *flagOption) description() string { return o.desc }
func (o *flagOption) acceptsValue() bool  { return false }
func (o *flagOption) isSet() bool         { return o.has }
func (o *flagOption) satisfied() bool     { return true }
func (o *flagOption) reset()              { o.has = false }

func (o *flagOption) setFlag() bool {
	o.has = true
	return true
}

func (o *flagOption) setValue(string) error {
	return errFlagValue
}

func (o *flagOption) info() OptionInfo {
	return OptionInfo{
		Name:        o.nam,
		Short:       o.snam,
		Description: o.desc,
		Set:         o.has,
		Value:       o.has,
	}
}

// valueOption is a typed option. actual starts out as def and is replaced
// only by values that read cleanly.
type valueOption[T any] struct {
	nam  string
	snam rune
	desc string
	need bool
	read Reader[T]

	has    bool
	def    T
	actual T
}

func (o *valueOption[T]) name() string        { return o.nam }
func (o *valueOption[T]) short() rune         { return o.snam }
func (o *valueOption[T]) description() string { return o.desc }
func (o *valueOption[T]) acceptsValue() bool  { return true }
func (o *valueOption[T]) isSet() bool         { return o.has }
func (o *valueOption[T]) setFlag() bool       { return false }
func (o *valueOption[T]) satisfied() bool     { return !o.need || o.has }

func (o *valueOption[T]) reset() {
	o.has = false
	o.actual = o.def
}

func (o *valueOption[T]) setValue(s string) error {
	v, err := o.read(s)
	if err != nil {
		return err
	}
	o.actual = v
	o.has = true
	return nil
}

func (o *valueOption[T]) info() OptionInfo {
	return OptionInfo{
		Name:        o.nam,
		Short:       o.snam,
		Description: o.desc,
		Type:        typeName[T](),
		HasValue:    true,
		Required:    o.need,
		Set:         o.has,
		Value:       o.actual,
		Default:     formatValue(o.def),
	}
}
