// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdline parses command-line options declared at runtime.
//
// Options have a long form (--name) and an optional one-character short form
// (-n). Flags carry no value; value options hold a typed value converted by a
// Reader. Parsing never stops at the first problem: every error found in one
// pass is collected and can be reported together.
//
// # Declaring options
//
//	var p cmdline.Parser
//	must.Do(p.Flag("verbose", 'v', "be chatty"))
//	must.Do(cmdline.Add(&p, "output", 'o', "output file", true, ""))
//	must.Do(cmdline.AddWithReader(&p, "count", 'c', "number of runs", false, 1, cmdline.Range(1, 100)))
//	p.Footer("FILE...")
//
// Declaring two options with the same long name is an error. Declaring two
// options with the same short name is also reported as an error, and the short
// form is then unusable: "-c" on the command line is rejected rather than
// silently picking one of the options.
//
// # Parsing
//
//	if !p.Parse(os.Args) {
//	    fmt.Fprint(os.Stderr, p.ErrorText(), p.Usage())
//	    os.Exit(1)
//	}
//	verbose, _ := p.IsSet("verbose")
//	output := cmdline.MustGet[string](&p, "output")
//	files := p.Rest()
//
// ParseOrExit does the above and also handles --help.
//
// Accepted forms are --name, --name=value, -n, -n value and bundles such as
// -abc, in which every character but the last must be a flag. The last
// character of a bundle takes the next argument as its value when it is a
// value option and the next argument does not start with "-". A lone "-" is
// ignored.
//
// # Readers
//
// Add uses Default, which understands strings, bools, integers, floats,
// time.Duration and any type implementing encoding.TextUnmarshaler. Range and
// Bounded restrict a reader to an interval; OneOf, URL, UUID, Version and
// VersionIn cover common domain values. Any func(string) (T, error) can be
// used as a Reader.
package cmdline
