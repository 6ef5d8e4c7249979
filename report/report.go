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

// Package report renders the result of a word comparison.
//
// All renderers write to an [io.Writer] and only return errors from that writer. [Text] and
// [Unified] are meant for terminals, [JSON], [CSV] and [HTML] for files.
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/VimWei/worddiff"
	"github.com/VimWei/worddiff/internal/config"
)

// File describes one of the compared files.
type File struct {
	Name     string
	Size     int64  // Size in bytes as stored on disk
	Encoding string // Encoding the file was decoded from
	Digest   string // Hex encoded digest of the file contents
}

// Input is everything a report is rendered from.
type Input struct {
	RunID            string // Identifies the run in machine readable reports, generated if empty
	OldFile, NewFile File
	Comparison       worddiff.Comparison
}

const minRuleWidth = 60

// Text writes a console report with the file information, statistics and a list of all
// differences.
//
// The following options are supported: [color.TerminalColors]
func Text(w io.Writer, in Input, opts ...worddiff.Option) error {
	cfg := config.FromOptions(opts, config.Colors)
	p := newPrinter(cfg.Colors)
	r := in.Comparison.Result

	title := "Word comparison report"
	files := []string{
		"Old file: " + describe(in.OldFile),
		"New file: " + describe(in.NewFile),
	}
	width := minRuleWidth
	for _, s := range files {
		width = max(width, runewidth.StringWidth(s))
	}
	rule := strings.Repeat("=", width)

	p.line(p.color(p.cc.Header, rule))
	p.line(p.color(p.cc.Header, title))
	p.line(p.color(p.cc.Header, rule))
	for _, s := range files {
		p.line(s)
	}
	p.line(p.color(p.cc.Header, rule))

	p.line("")
	p.line("Statistics:")
	p.stat("Total differences", humanize.Comma(int64(r.TotalDifferences)), p.cc.Delete)
	p.stat("Insertions", humanize.Comma(int64(r.Insertions)), p.cc.Insert)
	p.stat("Deletions", humanize.Comma(int64(r.Deletions)), p.cc.Delete)
	p.stat("Replacements", humanize.Comma(int64(r.Replacements)), p.cc.Replace)
	p.stat("Equal words", humanize.Comma(int64(r.EqualWords)), p.cc.Stats)
	p.stat("Similarity", percent(r.SimilarityRatio), p.cc.Stats)

	if len(r.Differences) == 0 {
		p.line("")
		p.line(p.color(p.cc.Insert, "No word differences found"))
		return p.flush(w)
	}

	p.line("")
	p.line("Differences:")
	oldWidth := len("old")
	for _, d := range r.Differences {
		oldWidth = max(oldWidth, runewidth.StringWidth(d.OldWord))
	}
	p.line(fmt.Sprintf("  %5s  %-7s  %-9s  %s  %-9s  %s", "#", "type", "at", runewidth.FillRight("old", oldWidth), "at", "new"))
	for i, d := range r.Differences {
		oldAt, newAt := at(d.OldLine, d.OldColumn), at(d.NewLine, d.NewColumn)
		row := fmt.Sprintf("  %5d  %-7s  %-9s  %s  %-9s  %s", i+1, kind(d.Kind), oldAt,
			runewidth.FillRight(orDash(d.OldWord), oldWidth), newAt, orDash(d.NewWord))
		p.line(p.color(p.kind(d.Kind), row))
	}
	p.line("")
	p.line(p.color(p.cc.Replace, fmt.Sprintf("Found %s differences", humanize.Comma(int64(r.TotalDifferences)))))
	return p.flush(w)
}

func describe(f File) string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	var details []string
	if f.Size > 0 {
		details = append(details, humanize.Bytes(uint64(f.Size)))
	}
	if f.Encoding != "" {
		details = append(details, f.Encoding)
	}
	if len(details) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(details, ", "))
	}
	return sb.String()
}

func kind(k worddiff.Kind) string {
	b, _ := k.MarshalText()
	return string(b)
}

func at(line, column int) string {
	if line < 0 || column < 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", line, column)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// printer collects output lines and applies colors.
type printer struct {
	cc *config.ColorConfig
	sb strings.Builder
}

func newPrinter(cc *config.ColorConfig) *printer {
	if cc == nil {
		cc = &config.ColorConfig{}
	}
	return &printer{cc: cc}
}

func (p *printer) line(s string) {
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *printer) stat(label, value, code string) {
	p.line(fmt.Sprintf("  %-18s %s", label+":", p.color(code, value)))
}

func (p *printer) flush(w io.Writer) error {
	_, err := io.WriteString(w, p.sb.String())
	return err
}

func (p *printer) color(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + p.cc.Reset
}

func (p *printer) kind(k worddiff.Kind) string {
	switch k {
	case worddiff.Equal:
		return p.cc.Match
	case worddiff.Insert:
		return p.cc.Insert
	case worddiff.Delete:
		return p.cc.Delete
	case worddiff.Replace:
		return p.cc.Replace
	default:
		panic(fmt.Sprintf("unknown kind: %v", k))
	}
}
