// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"cmp"
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// Reader converts the raw text of an option value into T.
// A Reader reports malformed or unacceptable input by returning an error.
type Reader[T any] func(string) (T, error)

// Default returns the textual conversion reader for T.
//
// Types implementing encoding.TextUnmarshaler (through a pointer) are decoded
// with UnmarshalText. Otherwise time.Duration, strings, bools, integers and
// floats are supported, including named types with those underlying kinds.
// Input with trailing garbage, or that overflows the target size, is rejected.
func Default[T any]() Reader[T] {
	return func(s string) (T, error) {
		var v T
		if err := readInto(reflect.ValueOf(&v).Elem(), s); err != nil {
			return v, err
		}
		return v, nil
	}
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

func readInto(v reflect.Value, s string) error {
	if v.Addr().Type().Implements(textUnmarshalerType) {
		if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return fmt.Errorf("invalid %s value %q: %w", v.Type(), s, err)
		}
		return nil
	}
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", s, err)
		}
		v.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", s, err)
		}
		v.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", s, err)
		}
		v.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", s, err)
		}
		v.SetFloat(f)
		return nil

	case reflect.Ptr:
		elem := reflect.New(v.Type().Elem())
		if err := readInto(elem.Elem(), s); err != nil {
			return err
		}
		v.Set(elem)
		return nil

	default:
		return fmt.Errorf("unsupported value type %s", v.Type())
	}
}

// Range returns the default reader for T restricted to the inclusive
// interval [low, high].
func Range[T cmp.Ordered](low, high T) Reader[T] {
	return Bounded(Default[T](), low, high)
}

// Bounded wraps r so that values outside [low, high] are rejected with a
// *RangeError, the same way r rejects malformed input.
func Bounded[T cmp.Ordered](r Reader[T], low, high T) Reader[T] {
	return func(s string) (T, error) {
		v, err := r(s)
		if err != nil {
			return v, err
		}
		if !(v >= low && v <= high) {
			var zero T
			return zero, &RangeError{
				Value: fmt.Sprint(v),
				Low:   fmt.Sprint(low),
				High:  fmt.Sprint(high),
			}
		}
		return v, nil
	}
}

// OneOf returns a string reader accepting only the given choices.
func OneOf(choices ...string) Reader[string] {
	choices = slices.Clone(choices)
	return func(s string) (string, error) {
		if slices.Contains(choices, s) {
			return s, nil
		}
		return "", fmt.Errorf("%q is not one of %s", s, strings.Join(choices, ", "))
	}
}

// URL returns a reader for absolute URLs.
func URL() Reader[*url.URL] {
	return func(s string) (*url.URL, error) {
		u, err := url.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", s, err)
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("URL %q is not absolute", s)
		}
		return u, nil
	}
}

// UUID returns a reader for UUIDs in any of the forms accepted by uuid.Parse.
func UUID() Reader[uuid.UUID] {
	return func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", s, err)
		}
		return id, nil
	}
}

// Version returns a reader for semantic versions such as "1.2.3" or "v2.0.0-rc1".
func Version() Reader[*semver.Version] {
	return func(s string) (*semver.Version, error) {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: %w", s, err)
		}
		return v, nil
	}
}

// VersionIn returns a version reader that only accepts versions that satisfy
// constraint, for example ">= 1.2, < 2". It returns an error if constraint
// itself cannot be parsed.
func VersionIn(constraint string) (Reader[*semver.Version], error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	read := Version()
	return func(s string) (*semver.Version, error) {
		v, err := read(s)
		if err != nil {
			return nil, err
		}
		if !c.Check(v) {
			return nil, fmt.Errorf("version %s does not satisfy %q", v, constraint)
		}
		return v, nil
	}, nil
}
