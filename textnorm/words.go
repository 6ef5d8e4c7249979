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

package textnorm

import (
	"iter"
	"strings"
	"unicode"
)

// Token is a word of a normalized text together with its position.
type Token struct {
	Word   string
	Start  int // Offset of the first rune within the line (zero-based, in runes).
	End    int // Offset after the last rune within the line.
	Line   int // One-based line number.
	Column int // One-based column, Start+1.
}

// ExtractWords returns the words of a normalized text in order.
//
// A word is a maximal run of ASCII letters that is not directly attached to another word
// character (a letter of any script, a digit or '_'). Non-Latin script and numbers are never
// words, and neither are Latin fragments glued to them: "café" and "abc123" contain no words.
func ExtractWords(text string) []string {
	var words []string
	for tok := range tokens(text) {
		words = append(words, tok.Word)
	}
	return words
}

// WordPositions returns the words of a normalized text with their line and column. The i-th token
// corresponds to the i-th word returned by [ExtractWords] for the same text.
func WordPositions(text string) []Token {
	var toks []Token
	for tok := range tokens(text) {
		toks = append(toks, tok)
	}
	return toks
}

func tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		line := 1
		for s := range strings.SplitSeq(text, "\n") {
			if !scanLine(s, line, yield) {
				return
			}
			line++
		}
	}
}

// scanLine yields the words of a single line.
func scanLine(s string, line int, yield func(Token) bool) bool {
	col := 0          // rune offset of r
	start := -1       // rune offset of the current letter run or -1
	startByte := 0    // byte offset of the current letter run
	glued := false    // the current letter run follows a word character
	prevWord := false // the previous rune is a word character
	for i, r := range s {
		switch {
		case isASCIILetter(r):
			if start < 0 {
				start, startByte, glued = col, i, prevWord
			}
		case start >= 0:
			if !glued && !isWordRune(r) {
				if !yield(Token{Word: s[startByte:i], Start: start, End: col, Line: line, Column: start + 1}) {
					return false
				}
			}
			start = -1
		}
		prevWord = isWordRune(r)
		col++
	}
	if start >= 0 && !glued {
		return yield(Token{Word: s[startByte:], Start: start, End: col, Line: line, Column: start + 1})
	}
	return true
}

func isASCIILetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
