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
	"fmt"

	"github.com/VimWei/worddiff/internal/lcs"
	"github.com/VimWei/worddiff/textnorm"
)

// Op is a single step of an alignment.
//
//   - For Equal, both Old and New contain the matching word.
//   - For Delete, Old contains the deleted word and New is empty.
//   - For Insert, New contains the inserted word and Old is empty.
//   - For Replace, Old contains the replaced word and New its replacement.
type Op struct {
	Kind     Kind
	Old, New string
}

// Difference describes an inserted, deleted or replaced word and where it is located.
//
// Indexes are positions in the word sequences, lines and columns are one-based positions in the
// normalized texts. Fields that don't apply to the kind of the difference (e.g. the old side of an
// insertion) are -1, and so are positions that could not be resolved.
type Difference struct {
	Kind      Kind
	OldWord   string
	NewWord   string
	OldIndex  int
	NewIndex  int
	OldLine   int
	OldColumn int
	NewLine   int
	NewColumn int
}

// Result is the outcome of aligning two word sequences.
type Result struct {
	// Differences in the order of the alignment, from the start of the texts to the end.
	Differences []Difference

	TotalDifferences int // Insertions + Deletions + Replacements
	Insertions       int
	Deletions        int
	Replacements     int // Always zero, the alignment doesn't produce replacements.

	// EqualWords is the length of the shorter sequence minus the number of replacements.
	EqualWords int

	// SimilarityRatio is the share of the longer sequence that is unchanged, in [0, 1]. It is 1 if
	// and only if both sequences are equal.
	SimilarityRatio float64
}

// Align compares the words in oldWords and newWords and returns the differences between them.
//
// The positions are the tokens the words were taken from, oldPos[i] must describe oldWords[i] and
// newPos[j] must describe newWords[j] (see [textnorm.WordPositions]). If a position is missing, the
// line and column of the difference are set to -1 instead.
//
// Words are compared with exact string equality, Align does not normalize them.
func Align(oldWords, newWords []string, oldPos, newPos []textnorm.Token) Result {
	ops := Ops(oldWords, newWords)
	return summarize(differences(ops, oldPos, newPos), len(oldWords), len(newWords))
}

// Ops returns the alignment of oldWords and newWords as a sequence of operations, one for every
// word of both inputs. Matching words are combined into a single Equal operation.
//
// If both an insertion and a deletion lead to an optimal alignment, the deletion is chosen when
// backtracking from the end of the inputs. As a result, a word replaced by another word shows up as
// an insertion followed by a deletion.
func Ops(oldWords, newWords []string) []Op {
	steps := lcs.Align(oldWords, newWords)
	if len(steps) == 0 {
		return nil
	}
	ops := make([]Op, 0, len(steps))
	s, t := 0, 0
	for _, step := range steps {
		switch step {
		case lcs.Match:
			ops = append(ops, Op{Kind: Equal, Old: oldWords[s], New: newWords[t]})
			s++
			t++
		case lcs.Delete:
			ops = append(ops, Op{Kind: Delete, Old: oldWords[s]})
			s++
		case lcs.Insert:
			ops = append(ops, Op{Kind: Insert, New: newWords[t]})
			t++
		default:
			panic(fmt.Sprintf("unknown alignment step: %v", step))
		}
	}
	return ops
}

// LCSLength returns the length of the longest common subsequence of x and y. It needs memory
// proportional to the shorter input only.
func LCSLength(x, y []string) int {
	return lcs.Length(x, y)
}

// Similarity returns the similarity ratio of oldWords and newWords. It's the same value as the
// SimilarityRatio of [Align], but it's computed without building the full alignment.
func Similarity(oldWords, newWords []string) float64 {
	n := lcs.Length(oldWords, newWords)
	return ratio(max(len(oldWords), len(newWords)), len(oldWords)+len(newWords)-2*n)
}

// differences converts an alignment into differences. It walks the operations with one cursor per
// input and looks up the position of every word that isn't equal.
func differences(ops []Op, oldPos, newPos []textnorm.Token) []Difference {
	var diffs []Difference
	s, t := 0, 0
	for _, op := range ops {
		switch op.Kind {
		case Equal:
			s++
			t++
		case Delete:
			line, col := position(oldPos, s)
			diffs = append(diffs, Difference{
				Kind:      Delete,
				OldWord:   op.Old,
				OldIndex:  s,
				NewIndex:  -1,
				OldLine:   line,
				OldColumn: col,
				NewLine:   -1,
				NewColumn: -1,
			})
			s++
		case Insert:
			line, col := position(newPos, t)
			diffs = append(diffs, Difference{
				Kind:      Insert,
				NewWord:   op.New,
				OldIndex:  -1,
				NewIndex:  t,
				OldLine:   -1,
				OldColumn: -1,
				NewLine:   line,
				NewColumn: col,
			})
			t++
		case Replace:
			oldLine, oldCol := position(oldPos, s)
			newLine, newCol := position(newPos, t)
			diffs = append(diffs, Difference{
				Kind:      Replace,
				OldWord:   op.Old,
				NewWord:   op.New,
				OldIndex:  s,
				NewIndex:  t,
				OldLine:   oldLine,
				OldColumn: oldCol,
				NewLine:   newLine,
				NewColumn: newCol,
			})
			s++
			t++
		default:
			panic(fmt.Sprintf("unknown kind: %v", op.Kind))
		}
	}
	return diffs
}

func position(toks []textnorm.Token, i int) (line, column int) {
	if i < 0 || i >= len(toks) {
		return -1, -1
	}
	return toks[i].Line, toks[i].Column
}

// summarize computes the statistics for the differences between sequences of m and n words.
func summarize(diffs []Difference, m, n int) Result {
	r := Result{Differences: diffs}
	for _, d := range diffs {
		switch d.Kind {
		case Insert:
			r.Insertions++
		case Delete:
			r.Deletions++
		case Replace:
			r.Replacements++
		case Equal:
			// Equal words are never recorded as differences.
		default:
			panic(fmt.Sprintf("unknown kind: %v", d.Kind))
		}
	}
	r.TotalDifferences = r.Insertions + r.Deletions + r.Replacements
	r.EqualWords = min(m, n) - r.Replacements
	r.SimilarityRatio = ratio(max(m, n), r.TotalDifferences)
	return r
}

// ratio returns the share of total that is not affected by d differences. The result is clamped
// to [0, 1]; two empty inputs are identical.
func ratio(total, d int) float64 {
	if total == 0 {
		return 1
	}
	return max(0, float64(total-d)/float64(total))
}
