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

package lcs

import (
	"crypto/sha256"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Op
	}{
		{
			name: "empty",
			want: []Op{},
		},
		{
			name: "identical",
			x:    []string{"the", "cat", "sat"},
			y:    []string{"the", "cat", "sat"},
			want: []Op{Match, Match, Match},
		},
		{
			name: "x-empty",
			y:    []string{"a", "b", "c"},
			want: []Op{Insert, Insert, Insert},
		},
		{
			name: "y-empty",
			x:    []string{"a", "b"},
			want: []Op{Delete, Delete},
		},
		{
			name: "deletion",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "c"},
			want: []Op{Match, Delete, Match},
		},
		{
			name: "insertion",
			x:    []string{"a", "b"},
			y:    []string{"a", "x", "b"},
			want: []Op{Match, Insert, Match},
		},
		{
			name: "disjoint",
			x:    []string{"a", "b"},
			y:    []string{"c", "d"},
			want: []Op{Insert, Insert, Delete, Delete},
		},
		{
			name: "substitution",
			x:    []string{"the", "cat", "sat"},
			y:    []string{"the", "dog", "sat", "down"},
			want: []Op{Match, Insert, Delete, Match, Insert},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Op{Insert, Delete, Match, Delete, Match, Delete, Match, Match, Insert},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Align(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	m := Build(strings.Split("ABCBDAB", ""), strings.Split("BDCABA", ""))
	if got, want := m.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for j := range 7 {
		if got := m.At(0, j); got != 0 {
			t.Errorf("At(0, %d) = %d, want 0", j, got)
		}
	}
	for i := range 8 {
		if got := m.At(i, 0); got != 0 {
			t.Errorf("At(%d, 0) = %d, want 0", i, got)
		}
	}
}

func randomWords(rng *rand.Rand, n int) []string {
	vocab := []string{"a", "b", "c", "d", "e"}
	out := make([]string, rng.IntN(n))
	for i := range out {
		out[i] = vocab[rng.IntN(len(vocab))]
	}
	return out
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	for range 500 {
		x, y := randomWords(rng, 20), randomWords(rng, 20)
		want := Build(x, y).Len()

		ops := Align(x, y)
		var s, u, matches int
		for _, op := range ops {
			switch op {
			case Match:
				if x[s] != y[u] {
					t.Fatalf("Align(%q, %q) matches %q with %q", x, y, x[s], y[u])
				}
				s++
				u++
				matches++
			case Delete:
				s++
			case Insert:
				u++
			}
		}
		if s != len(x) || u != len(y) {
			t.Fatalf("Align(%q, %q) consumed %d/%d and %d/%d elements", x, y, s, len(x), u, len(y))
		}
		if matches != want {
			t.Errorf("Align(%q, %q) has %d matches, LCS length is %d", x, y, matches, want)
		}
		if got := Length(x, y); got != want {
			t.Errorf("Length(%q, %q) = %d, want %d", x, y, got, want)
		}
		if got := Length(y, x); got != want {
			t.Errorf("Length(%q, %q) = %d, want %d", y, x, got, want)
		}
	}
}

func BenchmarkAlign(b *testing.B) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(b.Name()))))
	x, y := randomWords(rng, 2000), randomWords(rng, 2000)
	b.ReportAllocs()
	for b.Loop() {
		_ = Align(x, y)
	}
}
