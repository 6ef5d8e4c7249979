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
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"index", "type", "old_word", "new_word", "old_line", "old_column", "new_line", "new_column"}

// CSV writes one record per difference, numbered from 1, after a header record.
func CSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, d := range in.Comparison.Differences {
		record := []string{
			strconv.Itoa(i + 1),
			kind(d.Kind),
			d.OldWord,
			d.NewWord,
			strconv.Itoa(d.OldLine),
			strconv.Itoa(d.OldColumn),
			strconv.Itoa(d.NewLine),
			strconv.Itoa(d.NewColumn),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
