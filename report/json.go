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
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/VimWei/worddiff"
)

type jsonReport struct {
	RunID         string           `json:"run_id"`
	OldFile       jsonFile         `json:"old_file"`
	NewFile       jsonFile         `json:"new_file"`
	Statistics    jsonStatistics   `json:"statistics"`
	Normalization jsonNormalize    `json:"normalization"`
	Differences   []jsonDifference `json:"differences"`
}

type jsonFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Encoding string `json:"encoding,omitempty"`
	Digest   string `json:"digest,omitempty"`
	Words    int    `json:"words"`
}

type jsonStatistics struct {
	TotalDifferences int     `json:"total_differences"`
	Insertions       int     `json:"insertions"`
	Deletions        int     `json:"deletions"`
	Replacements     int     `json:"replacements"`
	EqualWords       int     `json:"equal_words"`
	SimilarityRatio  float64 `json:"similarity_ratio"`
	Chunks           int     `json:"chunks,omitempty"`
}

type jsonNormalize struct {
	Old map[string]int `json:"old"`
	New map[string]int `json:"new"`
}

type jsonDifference struct {
	Kind      worddiff.Kind `json:"type"`
	OldWord   string        `json:"old_word"`
	NewWord   string        `json:"new_word"`
	OldIndex  int           `json:"old_index"`
	NewIndex  int           `json:"new_index"`
	OldLine   int           `json:"old_line"`
	OldColumn int           `json:"old_column"`
	NewLine   int           `json:"new_line"`
	NewColumn int           `json:"new_column"`
}

// JSON writes a machine readable report. Kinds are encoded by their lowercase name and fields
// that don't apply to a difference are -1 or empty.
func JSON(w io.Writer, in Input) error {
	c := in.Comparison
	runID := in.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	out := jsonReport{
		RunID:   runID,
		OldFile: toJSONFile(in.OldFile, len(c.Old.Words)),
		NewFile: toJSONFile(in.NewFile, len(c.New.Words)),
		Statistics: jsonStatistics{
			TotalDifferences: c.TotalDifferences,
			Insertions:       c.Insertions,
			Deletions:        c.Deletions,
			Replacements:     c.Replacements,
			EqualWords:       c.EqualWords,
			SimilarityRatio:  c.SimilarityRatio,
			Chunks:           c.Chunks,
		},
		Normalization: jsonNormalize{
			Old: c.Old.Stats.Map(),
			New: c.New.Stats.Map(),
		},
		Differences: make([]jsonDifference, len(c.Differences)),
	}
	for i, d := range c.Differences {
		out.Differences[i] = jsonDifference(d)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONFile(f File, words int) jsonFile {
	return jsonFile{
		Name:     f.Name,
		Size:     f.Size,
		Encoding: f.Encoding,
		Digest:   f.Digest,
		Words:    words,
	}
}
