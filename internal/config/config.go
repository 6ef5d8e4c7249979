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

// Package config provides shared configuration mechanisms for the packages of this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// worddiff.Option.
package config

import (
	"runtime"

	"github.com/VimWei/worddiff/textnorm"
)

// Config collects all configurable parameters for comparison and report functions.
type Config struct {
	// PreserveCase disables case folding during normalization.
	PreserveCase bool

	// MaxCells is the largest LCS matrix ((m+1)*(n+1) cells) that is aligned in one piece. Larger
	// inputs are split with Chunker and aligned chunk by chunk.
	MaxCells int

	// Chunker splits a normalized text for chunked comparison.
	Chunker func(string) []textnorm.Chunk

	// Parallelism limits the number of chunk pairs aligned concurrently.
	Parallelism int

	// Context is the number of equal words to include before and after a hunk in reports.
	Context int

	// Colors is nil if reports are rendered without terminal colors.
	Colors *ColorConfig
}

// ColorConfig holds ANSI escape sequences for report elements.
type ColorConfig struct {
	Header     string
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
	Replace    string
	Stats      string
	Reset      string
}

// Default is the default configuration.
var Default = Config{
	PreserveCase: false,
	MaxCells:     1 << 24,
	Chunker:      textnorm.Paragraphs,
	Parallelism:  runtime.GOMAXPROCS(0),
	Context:      3,
	Colors:       nil,
}

// DefaultColors mirrors the palette of common terminal diff tools.
var DefaultColors = ColorConfig{
	Header:     "\033[1m",
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
	Replace:    "\033[33m",
	Stats:      "\033[34m",
	Reset:      "\033[0m",
}

// Flag describes a single config entry. It is used to detect options that are passed to functions
// that don't support them.
type Flag int

const (
	PreserveCase Flag = 1 << iota
	MaxCells
	Chunker
	Parallelism
	Context
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Chunker == nil {
		cfg.Chunker = Default.Chunker
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case PreserveCase:
		return "worddiff.PreserveCase"
	case MaxCells:
		return "worddiff.MaxCells"
	case Chunker:
		return "worddiff.Chunker"
	case Parallelism:
		return "worddiff.Parallelism"
	case Context:
		return "worddiff.Context"
	case Colors:
		return "report.TerminalColors"
	default:
		panic("never reached")
	}
}
