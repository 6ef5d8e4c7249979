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

import "strings"

// Chunk is a contiguous part of a normalized text.
type Chunk struct {
	Text string
	Line int // One-based line number of the first line of Text in the whole text.
}

// Paragraphs splits a normalized text into paragraphs separated by blank lines. Blank lines are
// not part of any chunk. An empty text has no paragraphs.
func Paragraphs(text string) []Chunk {
	var chunks []Chunk
	var lines []string
	first := 0
	flush := func() {
		if len(lines) > 0 {
			chunks = append(chunks, Chunk{Text: strings.Join(lines, "\n"), Line: first})
			lines = lines[:0]
		}
	}
	line := 1
	for s := range strings.SplitSeq(text, "\n") {
		if strings.TrimSpace(s) == "" {
			flush()
		} else {
			if len(lines) == 0 {
				first = line
			}
			lines = append(lines, s)
		}
		line++
	}
	flush()
	return chunks
}
