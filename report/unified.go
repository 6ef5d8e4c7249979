// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"io"

	"github.com/VimWei/worddiff"
	"github.com/VimWei/worddiff/internal/config"
	"github.com/VimWei/worddiff/internal/rvecs"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified writes the differences as hunks of words in a format similar to a unified diff. Every
// word is printed on its own line. Hunk headers use one-based word indexes instead of line numbers.
//
// The following options are supported: [worddiff.Context], [color.TerminalColors]
func Unified(w io.Writer, in Input, opts ...worddiff.Option) error {
	cfg := config.FromOptions(opts, config.Context|config.Colors)
	p := newPrinter(cfg.Colors)
	c := in.Comparison
	x, y := c.Old.Words, c.New.Words

	if len(c.Differences) == 0 {
		return nil
	}

	rx, ry := rvecs.Make(len(x), len(y))
	for _, d := range c.Differences {
		switch d.Kind {
		case worddiff.Delete:
			mark(rx, d.OldIndex)
		case worddiff.Insert:
			mark(ry, d.NewIndex)
		case worddiff.Replace:
			mark(rx, d.OldIndex)
			mark(ry, d.NewIndex)
		case worddiff.Equal:
		default:
			panic(fmt.Sprintf("unknown kind: %v", d.Kind))
		}
	}

	p.line(p.color(p.cc.Header, "--- "+in.OldFile.Name))
	p.line(p.color(p.cc.Header, "+++ "+in.NewFile.Name))
	for h := range rvecs.Hunks(rx, ry, cfg.Context) {
		p.line(p.color(p.cc.HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)))
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				p.line(p.color(p.cc.Delete, prefixDelete+x[s]))
				s++
			}
			for t < h.T1 && ry[t] {
				p.line(p.color(p.cc.Insert, prefixInsert+y[t]))
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				p.line(p.color(p.cc.Match, prefixMatch+x[s]))
				s++
				t++
			}
		}
	}
	return p.flush(w)
}

// mark sets r[i] unless i is outside of the sequence; the sentinel at the end must stay false.
func mark(r []bool, i int) {
	if i >= 0 && i < len(r)-1 {
		r[i] = true
	}
}
