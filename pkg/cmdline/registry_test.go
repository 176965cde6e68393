// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDuplicateLongName(t *testing.T) {
	tests := []struct {
		name   string
		first  func(p *Parser) error
		second func(p *Parser) error
	}{
		{
			name:   "flag then flag",
			first:  func(p *Parser) error { return p.Flag("x", 0, "") },
			second: func(p *Parser) error { return p.Flag("x", 0, "") },
		},
		{
			name:   "flag then value",
			first:  func(p *Parser) error { return p.Flag("x", 'a', "") },
			second: func(p *Parser) error { return Add(p, "x", 'b', "", false, 0) },
		},
		{
			name:   "value then flag",
			first:  func(p *Parser) error { return Add(p, "x", 0, "", true, "") },
			second: func(p *Parser) error { return p.Flag("x", 0, "") },
		},
		{
			name:   "value types differ",
			first:  func(p *Parser) error { return Add(p, "x", 0, "", true, "") },
			second: func(p *Parser) error { return Add(p, "x", 0, "", true, 1.5) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if err := tt.first(p); err != nil {
				t.Fatalf("first declaration error = %v", err)
			}
			err := tt.second(p)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("second declaration error = %v, want *ConfigError", err)
			}
			if got, want := cfgErr.Error(), "multiple definition: x"; got != want {
				t.Errorf("Error() = %q, want %q", got, want)
			}
			if got := len(p.Options()); got != 1 {
				t.Errorf("len(Options()) = %d, want 1", got)
			}
		})
	}
}

func TestEmptyName(t *testing.T) {
	var p Parser
	var cfgErr *ConfigError
	if err := p.Flag("", 'e', ""); !errors.As(err, &cfgErr) {
		t.Errorf("Flag(\"\") error = %v, want *ConfigError", err)
	}
	if err := Add(&p, "", 0, "", false, 0); !errors.As(err, &cfgErr) {
		t.Errorf("Add(\"\") error = %v, want *ConfigError", err)
	}
	if len(p.Options()) != 0 {
		t.Errorf("Options() = %v, want none", p.Options())
	}
}

func TestLookupErrors(t *testing.T) {
	p := newScenarioParser(t)

	_, err := p.IsSet("missing")
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Option != "missing" {
		t.Errorf("IsSet(missing) error = %v, want *LookupError for missing", err)
	}
	if got, want := err.Error(), "there is no flag: --missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if _, err := Get[int](p, "missing"); !errors.As(err, &lookupErr) {
		t.Errorf("Get(missing) error = %v, want *LookupError", err)
	}
}

func TestTypeMismatch(t *testing.T) {
	p := newScenarioParser(t)

	tests := []struct {
		name     string
		get      func() error
		wantWant string
		wantHave string
	}{
		{
			name:     "int as string",
			get:      func() error { _, err := Get[string](p, "count"); return err },
			wantWant: "string",
			wantHave: "int",
		},
		{
			name:     "int as int64",
			get:      func() error { _, err := Get[int64](p, "count"); return err },
			wantWant: "int64",
			wantHave: "int",
		},
		{
			name:     "flag as bool",
			get:      func() error { _, err := Get[bool](p, "verbose"); return err },
			wantWant: "bool",
			wantHave: "flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			var mismatch *TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("error = %v, want *TypeMismatchError", err)
			}
			if mismatch.Want != tt.wantWant || mismatch.Have != tt.wantHave {
				t.Errorf("Want, Have = %q, %q, want %q, %q", mismatch.Want, mismatch.Have, tt.wantWant, tt.wantHave)
			}
		})
	}
}

func TestMustGetPanics(t *testing.T) {
	p := newScenarioParser(t)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustGet did not panic for a type mismatch")
		}
		if _, ok := r.(*TypeMismatchError); !ok {
			t.Errorf("recovered %T, want *TypeMismatchError", r)
		}
	}()
	MustGet[time.Duration](p, "count")
}

func TestGetBeforeParse(t *testing.T) {
	var p Parser
	if err := Add(&p, "timeout", 't', "", false, 30*time.Second); err != nil {
		t.Fatal(err)
	}
	if got := MustGet[time.Duration](&p, "timeout"); got != 30*time.Second {
		t.Errorf("timeout = %v, want %v", got, 30*time.Second)
	}
	if set, _ := p.IsSet("timeout"); set {
		t.Error("IsSet(timeout) = true before any parse")
	}
}

func TestOptions(t *testing.T) {
	p := newScenarioParser(t)
	if !p.Parse([]string{"prog", "-o", "f", "-c", "4"}) {
		t.Fatalf("Parse() = false, errors:\n%s", p.ErrorText())
	}
	want := []OptionInfo{
		{Name: "verbose", Short: 'v', Description: "be chatty", Value: false},
		{Name: "output", Short: 'o', Description: "output file", Type: "string", HasValue: true, Required: true, Set: true, Value: "f"},
		{Name: "count", Short: 'c', Description: "number of runs", Type: "int", HasValue: true, Set: true, Value: 4, Default: "1"},
	}
	if diff := cmp.Diff(want, p.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}
