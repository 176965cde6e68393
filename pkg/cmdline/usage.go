// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strings"
)

// Usage renders the option list in declaration order, for example:
//
//	usage: prog [options] ... FILE...
//	options:
//	  -v, --verbose    be chatty
//	  -c, --count      number of runs (int [=1])
//	      --output     output file (string)
func (p *Parser) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s [options] ... %s\n", p.progName, p.ftr)
	b.WriteString("options:\n")

	width := 0
	for _, o := range p.ordered {
		width = max(width, len(o.name()))
	}
	for _, o := range p.ordered {
		if c := o.short(); c != 0 {
			fmt.Fprintf(&b, "  -%c, ", c)
		} else {
			b.WriteString("      ")
		}
		fmt.Fprintf(&b, "--%-*s%s\n", width+4, o.name(), fullDescription(o.info()))
	}
	return b.String()
}

// fullDescription appends the value type, and the default of optional
// options, to the description of value options.
func fullDescription(info OptionInfo) string {
	if !info.HasValue {
		return info.Description
	}
	suffix := info.Type
	if !info.Required {
		suffix += " [=" + info.Default + "]"
	}
	if info.Description == "" {
		return "(" + suffix + ")"
	}
	return info.Description + " (" + suffix + ")"
}
