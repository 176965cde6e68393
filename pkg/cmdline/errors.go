// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
)

// ConfigError is returned when options are declared inconsistently.
// It always indicates a bug in the program declaring the options.
type ConfigError struct {
	Option string // Long name of the offending declaration
	Short  rune   // Short name involved in a collision, 0 otherwise
	Reason string // User-facing message
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// LookupError is returned when querying an option that was never declared.
type LookupError struct {
	Option string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("there is no flag: --%s", e.Option)
}

// TypeMismatchError is returned by Get when the requested type differs from
// the declared value type of the option.
type TypeMismatchError struct {
	Option string
	Want   string // Type requested by the caller
	Have   string // Declared type, "flag" for value-less options
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch flag '%s'", e.Option)
}

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	NoArguments     ErrorKind = iota // argv was empty
	Syntax                           // a command line string could not be split
	UndefinedOption                  // --name was never declared
	UndefinedShort                   // -c was never declared
	AmbiguousShort                   // -c is shared by several declarations
	NeedsValue                       // value option given without a value
	InvalidValue                     // the reader rejected the value
	MissingRequired                  // required option absent after the scan
)

var kindNames = [...]string{
	NoArguments:     "no-arguments",
	Syntax:          "syntax",
	UndefinedOption: "undefined-option",
	UndefinedShort:  "undefined-short",
	AmbiguousShort:  "ambiguous-short",
	NeedsValue:      "needs-value",
	InvalidValue:    "invalid-value",
	MissingRequired: "missing-required",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseError is a single problem found while parsing a command line.
// Parse errors are accumulated; one parse can report many of them.
type ParseError struct {
	Kind   ErrorKind
	Option string // Long name, if known
	Short  rune   // Short name for UndefinedShort and AmbiguousShort
	Value  string // Offending value for InvalidValue, raw bytes of an invalid UTF-8 short
	Err    error  // Underlying reader or split failure, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoArguments:
		return "argument number must be longer than 0"
	case Syntax:
		return fmt.Sprintf("cannot split command line: %v", e.Err)
	case UndefinedOption:
		return "undefined option: --" + e.Option
	case UndefinedShort:
		if e.Value != "" {
			return fmt.Sprintf("undefined short option: -%q", e.Value)
		}
		return fmt.Sprintf("undefined short option: -%c", e.Short)
	case AmbiguousShort:
		return fmt.Sprintf("ambiguous short option: -%c", e.Short)
	case NeedsValue:
		return "option needs value: --" + e.Option
	case InvalidValue:
		return "option value is invalid: --" + e.Option + "=" + e.Value
	case MissingRequired:
		return "need option: --" + e.Option
	}
	return fmt.Sprintf("%v: --%s", e.Kind, e.Option)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError is returned by bounded readers when a well-formed value falls
// outside the accepted interval.
type RangeError struct {
	Value string
	Low   string
	High  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s out of range [%s, %s]", e.Value, e.Low, e.High)
}
