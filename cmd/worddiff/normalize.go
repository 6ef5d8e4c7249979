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

package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/VimWei/worddiff/internal/settings"
	"github.com/VimWei/worddiff/internal/textfile"
	"github.com/VimWei/worddiff/textnorm"
)

type normalizeCmd struct {
	File         string `arg:"" help:"Text file to normalize." type:"path"`
	PreserveCase bool   `help:"Don't lower-case the text."`
	Words        bool   `help:"Print one word per line with its position instead of the text."`
}

func (c *normalizeCmd) Run(e *env) error {
	s, err := loadSettings(e.cli, func(s *settings.Settings) {
		if c.PreserveCase {
			s.Compare.PreserveCase = true
		}
	})
	if err != nil {
		return err
	}
	f, err := textfile.Load(c.File, s.Input.Encodings...)
	if err != nil {
		return err
	}

	text, stats := textnorm.Normalize(f.Text, s.Compare.PreserveCase)
	if c.Words {
		for _, tok := range textnorm.WordPositions(text) {
			fmt.Fprintf(e.stdout, "%d:%d %s\n", tok.Line, tok.Column, tok.Word)
		}
	} else {
		fmt.Fprintln(e.stdout, text)
	}

	m := stats.Map()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(e.stderr, "%s: %d\n", k, m[k])
	}
	return nil
}
