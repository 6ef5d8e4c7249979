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
	"crypto/sha256"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		preserveCase bool
		want         string
		wantStats    Stats
	}{
		{
			name:      "empty",
			in:        "",
			want:      "",
			wantStats: Stats{CaseNormalized: 1},
		},
		{
			name:      "ellipsis-and-repeats",
			in:        "Hello...world!!!",
			want:      "hello...world!",
			wantStats: Stats{EllipsisNormalized: 1, RepeatsCollapsed: 1, CaseNormalized: 1, TotalChanges: 2},
		},
		{
			name:      "leading-bom",
			in:        "\ufeffcafé",
			want:      "café",
			wantStats: Stats{BOMRemoved: 1, CaseNormalized: 1, TotalChanges: 1},
		},
		{
			name:      "trailing-bom",
			in:        "café\ufeff",
			want:      "café",
			wantStats: Stats{CaseNormalized: 1, TotalChanges: 1},
		},
		{
			name:         "line-endings",
			in:           "a\r\nb\rc",
			preserveCase: true,
			want:         "a\nb\nc",
			wantStats:    Stats{NewlinesNormalized: 2, TotalChanges: 1},
		},
		{
			name:         "full-width-punctuation",
			in:           "你好，世界！",
			preserveCase: true,
			want:         "你好,世界!",
			wantStats:    Stats{PunctuationNormalized: 2},
		},
		{
			name:         "full-width-digits",
			in:           "价格：１２３",
			preserveCase: true,
			want:         "价格:123",
			wantStats:    Stats{PunctuationNormalized: 1, NumbersNormalized: 3},
		},
		{
			name:         "ellipsis-character-expands",
			in:           "Wait…",
			preserveCase: true,
			want:         "Wait...",
			wantStats:    Stats{PunctuationNormalized: 1, EllipsisNormalized: 1, TotalChanges: -2},
		},
		{
			name:         "ideographic-full-stops",
			in:           "one。。。two",
			preserveCase: true,
			want:         "one...two",
			wantStats:    Stats{PunctuationNormalized: 3, EllipsisNormalized: 1},
		},
		{
			name:         "mixed-repeats-keep-first",
			in:           "Really?!?!",
			preserveCase: true,
			want:         "Really?",
			wantStats:    Stats{RepeatsCollapsed: 1, TotalChanges: 3},
		},
		{
			name:         "horizontal-whitespace",
			in:           "a \t  b　c\u00a0d",
			preserveCase: true,
			want:         "a b c d",
			wantStats:    Stats{TotalChanges: 3},
		},
		{
			name:         "spaces-around-newlines",
			in:           "  line one  \n   line two \n",
			preserveCase: true,
			want:         "line one\nline two",
			wantStats:    Stats{TotalChanges: 9},
		},
		{
			name:         "symbols",
			in:           "A ⊕ B ★ C",
			preserveCase: true,
			want:         "A * B * C",
			wantStats:    Stats{PunctuationNormalized: 2},
		},
		{
			name:         "typographic-quotes-and-dashes",
			in:           "“Quoted” ‘text’ — done",
			preserveCase: true,
			want:         `"Quoted" 'text' - done`,
			wantStats:    Stats{PunctuationNormalized: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotStats := Normalize(tt.in, tt.preserveCase)
			if got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.in, tt.preserveCase, got, tt.want)
			}
			if diff := cmp.Diff(tt.wantStats, gotStats); diff != "" {
				t.Errorf("Normalize(%q, %v) stats are different [-want,+got]:\n%s", tt.in, tt.preserveCase, diff)
			}
		})
	}
}

func TestStatsMap(t *testing.T) {
	s := Stats{BOMRemoved: 1, EllipsisNormalized: 2, TotalChanges: -1}
	want := map[string]int{
		"bom_removed":            1,
		"newlines_normalized":    0,
		"punctuation_normalized": 0,
		"numbers_normalized":     0,
		"ellipsis_normalized":    2,
		"repeats_collapsed":      0,
		"case_normalized":        0,
		"total_changes":          -1,
	}
	if diff := cmp.Diff(want, s.Map()); diff != "" {
		t.Errorf("Map() result is different [-want,+got]:\n%s", diff)
	}
}

// alphabet is biased towards characters that the normalization steps interact with.
var alphabet = []string{
	"a", "B", "z", " ", "\t", "\n", "\r", "\r\n", ".", "。", "…", "!", "?", "！", "？", "，",
	"　", "\u00a0", "\ufeff", "１", "⊕", "é", "_", "1", "-", "'",
}

func randomTexts(name string, n int) []string {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
	out := make([]string, n)
	for i := range out {
		var sb strings.Builder
		for range rng.IntN(16) {
			sb.WriteString(alphabet[rng.IntN(len(alphabet))])
		}
		out[i] = sb.String()
	}
	return out
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range randomTexts(t.Name(), 2000) {
		for _, preserveCase := range []bool{false, true} {
			once, _ := Normalize(in, preserveCase)
			twice, _ := Normalize(once, preserveCase)
			if once != twice {
				t.Errorf("Normalize is not idempotent for %q (preserveCase=%v): %q != %q", in, preserveCase, once, twice)
			}
		}
	}
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("failed to read testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}
	for _, filename := range files {
		t.Run(filepath.Base(filename), func(t *testing.T) {
			ar, err := txtar.ParseFile(filename)
			if err != nil {
				t.Fatalf("failed to parse golden file: %v", err)
			}
			sections := make(map[string]string)
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}
			in, ok := sections["input"]
			if !ok {
				t.Fatal("golden file has no input section")
			}

			normalized, _ := Normalize(in, false)
			var words strings.Builder
			for _, tok := range WordPositions(normalized) {
				fmt.Fprintf(&words, "%d:%d %s\n", tok.Line, tok.Column, tok.Word)
			}

			if *update {
				ar.Files = []txtar.File{
					{Name: "input", Data: []byte(in)},
					{Name: "normalized", Data: []byte(normalized + "\n")},
					{Name: "words", Data: []byte(words.String())},
				}
				if err := os.WriteFile(filename, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
				return
			}

			if diff := cmp.Diff(strings.TrimSuffix(sections["normalized"], "\n"), normalized); diff != "" {
				t.Errorf("normalized text is different [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(sections["words"], words.String()); diff != "" {
				t.Errorf("word positions are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	in := strings.Repeat("Chapter １：“Hello，World！！” This  is   a　test……\r\n", 1000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Normalize(in, false)
	}
}
