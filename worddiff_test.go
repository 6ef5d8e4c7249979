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
	"crypto/sha256"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/VimWei/worddiff/textnorm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
		want     Result
	}{
		{
			name: "identical",
			old:  "the cat sat",
			new:  "the cat sat",
			want: Result{EqualWords: 3, SimilarityRatio: 1},
		},
		{
			name: "empty",
			want: Result{SimilarityRatio: 1},
		},
		{
			name: "deletion",
			old:  "a b c",
			new:  "a c",
			want: Result{
				Differences: []Difference{
					{Kind: Delete, OldWord: "b", OldIndex: 1, NewIndex: -1, OldLine: 1, OldColumn: 3, NewLine: -1, NewColumn: -1},
				},
				TotalDifferences: 1,
				Deletions:        1,
				EqualWords:       2,
				SimilarityRatio:  2.0 / 3,
			},
		},
		{
			name: "insertion",
			old:  "a b",
			new:  "a x b",
			want: Result{
				Differences: []Difference{
					{Kind: Insert, NewWord: "x", OldIndex: -1, NewIndex: 1, OldLine: -1, OldColumn: -1, NewLine: 1, NewColumn: 3},
				},
				TotalDifferences: 1,
				Insertions:       1,
				EqualWords:       2,
				SimilarityRatio:  2.0 / 3,
			},
		},
		{
			name: "old-empty",
			new:  "one\ntwo",
			want: Result{
				Differences: []Difference{
					{Kind: Insert, NewWord: "one", OldIndex: -1, NewIndex: 0, OldLine: -1, OldColumn: -1, NewLine: 1, NewColumn: 1},
					{Kind: Insert, NewWord: "two", OldIndex: -1, NewIndex: 1, OldLine: -1, OldColumn: -1, NewLine: 2, NewColumn: 1},
				},
				TotalDifferences: 2,
				Insertions:       2,
				SimilarityRatio:  0,
			},
		},
		{
			name: "substitution",
			old:  "the cat sat",
			new:  "the dog sat",
			want: Result{
				Differences: []Difference{
					{Kind: Insert, NewWord: "dog", OldIndex: -1, NewIndex: 1, OldLine: -1, OldColumn: -1, NewLine: 1, NewColumn: 5},
					{Kind: Delete, OldWord: "cat", OldIndex: 1, NewIndex: -1, OldLine: 1, OldColumn: 5, NewLine: -1, NewColumn: -1},
				},
				TotalDifferences: 2,
				Insertions:       1,
				Deletions:        1,
				EqualWords:       3,
				SimilarityRatio:  1.0 / 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldPos, newPos := textnorm.WordPositions(tt.old), textnorm.WordPositions(tt.new)
			got := Align(textnorm.ExtractWords(tt.old), textnorm.ExtractWords(tt.new), oldPos, newPos)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Align(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestAlignMissingPositions(t *testing.T) {
	got := Align([]string{"a", "b"}, []string{"a"}, nil, nil)
	want := []Difference{
		{Kind: Delete, OldWord: "b", OldIndex: 1, NewIndex: -1, OldLine: -1, OldColumn: -1, NewLine: -1, NewColumn: -1},
	}
	if diff := cmp.Diff(want, got.Differences); diff != "" {
		t.Errorf("Align(...) differences are different [-want,+got]:\n%s", diff)
	}
}

func TestDifferencesReplace(t *testing.T) {
	ops := []Op{
		{Kind: Equal, Old: "a", New: "a"},
		{Kind: Replace, Old: "b", New: "x"},
	}
	toks := textnorm.WordPositions("a b")
	got := summarize(differences(ops, toks, textnorm.WordPositions("a x")), 2, 2)
	want := Result{
		Differences: []Difference{
			{Kind: Replace, OldWord: "b", NewWord: "x", OldIndex: 1, NewIndex: 1, OldLine: 1, OldColumn: 3, NewLine: 1, NewColumn: 3},
		},
		TotalDifferences: 1,
		Replacements:     1,
		EqualWords:       1,
		SimilarityRatio:  0.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summarize(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestOps(t *testing.T) {
	got := Ops([]string{"a", "b"}, []string{"a", "c"})
	want := []Op{
		{Kind: Equal, Old: "a", New: "a"},
		{Kind: Insert, New: "c"},
		{Kind: Delete, Old: "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ops(...) result is different [-want,+got]:\n%s", diff)
	}
	if got := Ops(nil, nil); got != nil {
		t.Errorf("Ops(nil, nil) = %v, want nil", got)
	}
}

func randomWords(rng *rand.Rand, n int) []string {
	vocab := []string{"the", "cat", "sat", "on", "a", "mat", "dog"}
	out := make([]string, rng.IntN(n))
	for i := range out {
		out[i] = vocab[rng.IntN(len(vocab))]
	}
	return out
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 1000 {
		x, y := randomWords(rng, 15), randomWords(rng, 15)
		r := Align(x, y, nil, nil)

		equal := 0
		for _, op := range Ops(x, y) {
			if op.Kind == Equal {
				equal++
			}
		}
		if lcs := LCSLength(x, y); equal != lcs {
			t.Errorf("Ops(%q, %q) has %d equal words, LCS length is %d", x, y, equal, lcs)
		}

		swapped := Align(y, x, nil, nil)
		if r.Insertions != swapped.Deletions || r.Deletions != swapped.Insertions {
			t.Errorf("Align(%q, %q) is not symmetric: %d/%d insertions/deletions, swapped %d/%d",
				x, y, r.Insertions, r.Deletions, swapped.Insertions, swapped.Deletions)
		}
		if r.EqualWords != swapped.EqualWords {
			t.Errorf("Align(%q, %q) has %d equal words, swapped %d", x, y, r.EqualWords, swapped.EqualWords)
		}

		if r.SimilarityRatio < 0 || r.SimilarityRatio > 1 {
			t.Errorf("Align(%q, %q) has similarity ratio %v outside of [0, 1]", x, y, r.SimilarityRatio)
		}
		if identical := slices.Equal(x, y); identical != (r.SimilarityRatio == 1) {
			t.Errorf("Align(%q, %q) has similarity ratio %v, identical=%v", x, y, r.SimilarityRatio, identical)
		}
		if got := Similarity(x, y); got != r.SimilarityRatio {
			t.Errorf("Similarity(%q, %q) = %v, want %v", x, y, got, r.SimilarityRatio)
		}
		if r.TotalDifferences != r.Insertions+r.Deletions+r.Replacements {
			t.Errorf("Align(%q, %q) has inconsistent totals: %+v", x, y, r)
		}
	}
}

func BenchmarkAlign(b *testing.B) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(b.Name()))))
	x, y := randomWords(rng, 3000), randomWords(rng, 3000)
	b.ReportAllocs()
	for b.Loop() {
		_ = Align(x, y, nil, nil)
	}
}

func BenchmarkSimilarity(b *testing.B) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(b.Name()))))
	x, y := randomWords(rng, 3000), randomWords(rng, 3000)
	b.ReportAllocs()
	for b.Loop() {
		_ = Similarity(x, y)
	}
}
