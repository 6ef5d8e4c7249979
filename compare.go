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

package worddiff

import (
	"golang.org/x/sync/errgroup"

	"github.com/VimWei/worddiff/internal/config"
	"github.com/VimWei/worddiff/textnorm"
)

// Side is one of the two texts of a [Comparison] after normalization.
type Side struct {
	Text   string         // Normalized text
	Stats  textnorm.Stats // Changes made by normalization
	Words  []string       // Words of the normalized text
	Tokens []textnorm.Token
}

// Comparison is the outcome of [Compare].
type Comparison struct {
	Old, New Side
	Result

	// Chunks is the number of chunk pairs that were aligned separately. It is zero if both texts
	// were aligned in one piece.
	Chunks int
}

// Compare normalizes oldText and newText, extracts their words and aligns them.
//
// If the alignment matrix would exceed the limit set by [MaxCells], both texts are split into
// chunks (see [Chunker]) and the chunks are aligned pairwise and concurrently. Differences are
// reported with indexes and positions relative to the whole texts and the statistics always
// describe the whole texts.
//
// Compare accepts the options [PreserveCase], [MaxCells], [Chunker] and [Parallelism].
func Compare(oldText, newText string, opts ...Option) Comparison {
	cfg := config.FromOptions(opts, config.PreserveCase|config.MaxCells|config.Chunker|config.Parallelism)

	var c Comparison
	c.Old = side(oldText, cfg.PreserveCase)
	c.New = side(newText, cfg.PreserveCase)

	m, n := len(c.Old.Words), len(c.New.Words)
	if cfg.MaxCells <= 0 || (m+1)*(n+1) <= cfg.MaxCells {
		c.Result = Align(c.Old.Words, c.New.Words, c.Old.Tokens, c.New.Tokens)
		return c
	}

	var diffs []Difference
	diffs, c.Chunks = alignChunks(c.Old.Text, c.New.Text, cfg)
	c.Result = summarize(diffs, m, n)
	return c
}

func side(text string, preserveCase bool) Side {
	norm, stats := textnorm.Normalize(text, preserveCase)
	toks := textnorm.WordPositions(norm)
	words := make([]string, len(toks))
	for i, tok := range toks {
		words[i] = tok.Word
	}
	return Side{Text: norm, Stats: stats, Words: words, Tokens: toks}
}

// chunk is the word sequence of a single chunk with tokens relative to the whole text.
type chunk struct {
	words  []string
	tokens []textnorm.Token
	offset int // Index of the first word in the whole text
}

func split(text string, chunker func(string) []textnorm.Chunk) []chunk {
	var out []chunk
	offset := 0
	for _, ch := range chunker(text) {
		toks := textnorm.WordPositions(ch.Text)
		words := make([]string, len(toks))
		for i := range toks {
			toks[i].Line += ch.Line - 1
			words[i] = toks[i].Word
		}
		out = append(out, chunk{words: words, tokens: toks, offset: offset})
		offset += len(toks)
	}
	return out
}

// alignChunks aligns the chunks of both texts pairwise. A chunk without a partner is aligned
// against an empty chunk.
func alignChunks(oldText, newText string, cfg config.Config) ([]Difference, int) {
	xs := split(oldText, cfg.Chunker)
	ys := split(newText, cfg.Chunker)
	pairs := max(len(xs), len(ys))

	results := make([][]Difference, pairs)
	var g errgroup.Group
	g.SetLimit(max(1, cfg.Parallelism))
	for i := range pairs {
		g.Go(func() error {
			x, y := at(xs, i), at(ys, i)
			diffs := differences(Ops(x.words, y.words), x.tokens, y.tokens)
			for k := range diffs {
				if diffs[k].OldIndex >= 0 {
					diffs[k].OldIndex += x.offset
				}
				if diffs[k].NewIndex >= 0 {
					diffs[k].NewIndex += y.offset
				}
			}
			results[i] = diffs
			return nil
		})
	}
	_ = g.Wait() // Workers never fail.

	var diffs []Difference
	for _, r := range results {
		diffs = append(diffs, r...)
	}
	return diffs, pairs
}

// at returns chunks[i] or, past the end, an empty chunk positioned after the last word.
func at(chunks []chunk, i int) chunk {
	if i < len(chunks) {
		return chunks[i]
	}
	if len(chunks) == 0 {
		return chunk{}
	}
	last := chunks[len(chunks)-1]
	return chunk{offset: last.offset + len(last.words)}
}
