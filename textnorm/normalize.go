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

// Package textnorm canonicalizes free-form text so that two texts can be compared word by word
// without tripping over formatting: punctuation style, full-width digits, repeated punctuation,
// whitespace, line endings and (optionally) letter case.
//
// [Normalize] produces the canonical text, [ExtractWords] and [WordPositions] tokenize it. Both
// tokenizers must be given the same normalized text for their results to line up.
package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const bom = "\ufeff"

var (
	crlf       = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	ellipsis   = regexp.MustCompile(`\.{3,}|。{3,}|…+`)
	repeats    = regexp.MustCompile(`[!?]{2,}`)
	longDots   = regexp.MustCompile(`\.{4,}`)
	horizontal = regexp.MustCompile(`[ \t\x{00A0}\x{2000}-\x{200F}\x{2028}-\x{202F}\x{205F}-\x{206F}\x{3000}\x{FEFF}]+`)
	blanks     = regexp.MustCompile(`[ \t]+`)
)

// Stats records what [Normalize] changed.
type Stats struct {
	BOMRemoved            int // 1 if a leading byte order mark was stripped
	NewlinesNormalized    int // "\r\n" and "\r" line endings rewritten to "\n"
	PunctuationNormalized int // punctuation characters substituted
	NumbersNormalized     int // full-width digits substituted
	EllipsisNormalized    int // dot or ellipsis runs rewritten to "..."
	RepeatsCollapsed      int // runs of '!' or '?' collapsed to one character
	CaseNormalized        int // 1 if the text was lower-cased

	// TotalChanges is the length difference in runes between the input and the output. It is
	// negative if normalization expanded the text, e.g. when "…" became "...".
	TotalChanges int
}

// Map returns the statistics keyed by change kind.
func (s Stats) Map() map[string]int {
	return map[string]int{
		"bom_removed":            s.BOMRemoved,
		"newlines_normalized":    s.NewlinesNormalized,
		"punctuation_normalized": s.PunctuationNormalized,
		"numbers_normalized":     s.NumbersNormalized,
		"ellipsis_normalized":    s.EllipsisNormalized,
		"repeats_collapsed":      s.RepeatsCollapsed,
		"case_normalized":        s.CaseNormalized,
		"total_changes":          s.TotalChanges,
	}
}

// Normalize returns the canonical form of text together with statistics about the changes.
//
// The steps are applied in a fixed order, later steps rely on the output of earlier ones:
//
//  1. strip a leading byte order mark
//  2. unify line endings to "\n"
//  3. map full-width and typographic punctuation to ASCII
//  4. map full-width digits to ASCII
//  5. rewrite runs of three or more dots (or any ellipsis characters) to "..."
//  6. collapse runs of '!' and '?' to their first character
//  7. collapse horizontal whitespace to a single space, keeping line breaks
//  8. lower-case the text unless preserveCase is set
//  9. drop spaces around line breaks and trim the text
//
// Normalize accepts any input and is idempotent: normalizing its output again yields the same
// text.
func Normalize(text string, preserveCase bool) (string, Stats) {
	var stats Stats
	n := utf8.RuneCountInString(text)

	if s, ok := strings.CutPrefix(text, bom); ok {
		text = s
		stats.BOMRemoved = 1
	}

	// Every rewritten line ending contains exactly one '\r'.
	stats.NewlinesNormalized = strings.Count(text, "\r")
	text = crlf.Replace(text)

	text, stats.PunctuationNormalized = substitute(text, punctuation)
	text, stats.NumbersNormalized = substitute(text, digits)

	text = ellipsis.ReplaceAllStringFunc(text, func(string) string {
		stats.EllipsisNormalized++
		return "..."
	})

	text = repeats.ReplaceAllStringFunc(text, func(run string) string {
		stats.RepeatsCollapsed++
		return run[:1]
	})
	text = longDots.ReplaceAllLiteralString(text, "...")

	text = horizontal.ReplaceAllLiteralString(text, " ")

	if !preserveCase {
		text = cases.Lower(language.Und).String(text)
		stats.CaseNormalized = 1
	}

	text = blanks.ReplaceAllLiteralString(text, " ")
	text = strings.ReplaceAll(text, " \n", "\n")
	text = strings.ReplaceAll(text, "\n ", "\n")
	text = strings.TrimSpace(text)

	stats.TotalChanges = n - utf8.RuneCountInString(text)
	return text, stats
}

// substitute replaces every rune of text found in table and returns the number of replacements.
func substitute(text string, table map[rune]string) (string, int) {
	first := strings.IndexFunc(text, func(r rune) bool {
		_, ok := table[r]
		return ok
	})
	if first < 0 {
		return text, 0
	}

	var sb strings.Builder
	sb.Grow(len(text) + 8)
	sb.WriteString(text[:first])
	count := 0
	for _, r := range text[first:] {
		if s, ok := table[r]; ok {
			sb.WriteString(s)
			count++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), count
}
