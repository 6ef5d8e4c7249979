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

// Package color configures the terminal colors of reports.
package color

import (
	"fmt"
	"strings"

	"github.com/VimWei/worddiff"
	"github.com/VimWei/worddiff/internal/config"
)

// A Option makes it possible to configure custom colors in [TerminalColors].
type Option func(*config.ColorConfig)

// TerminalColors enables ANSI colors in console reports. Without options, deletions are red,
// insertions green, replacements yellow and statistics blue.
func TerminalColors(opts ...Option) worddiff.Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}

// Headers colors report headers.
func Headers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified report.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Matches colors matching words.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors deleted words.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted words.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// Replaces colors replaced words.
func Replaces(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Replace = code
	}
}

// Stats colors statistics.
func Stats(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Stats = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
