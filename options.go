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
	"github.com/VimWei/worddiff/internal/config"
	"github.com/VimWei/worddiff/textnorm"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// PreserveCase disables case folding during normalization. By default, both texts are lowercased
// before they are compared.
func PreserveCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PreserveCase = true
		return config.PreserveCase
	}
}

// MaxCells limits the size of the alignment matrix, measured in (m+1)*(n+1) cells for texts with m
// and n words. Larger texts are split into chunks (see [Chunker]) and aligned chunk by chunk. The
// result may not be a minimal alignment anymore, but memory use stays bounded.
//
// A value of zero or less disables chunking. The default is 1<<24 cells.
func MaxCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxCells = n
		return config.MaxCells
	}
}

// Chunker sets the function used to split large normalized texts into chunks. Chunks of the old
// and new text are paired by their index. The default is [textnorm.Paragraphs].
func Chunker(f func(string) []textnorm.Chunk) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Chunker = f
		return config.Chunker
	}
}

// Parallelism limits the number of chunk pairs that are aligned concurrently. The default is
// GOMAXPROCS.
func Parallelism(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Parallelism = max(1, n)
		return config.Parallelism
	}
}

// Context sets the number of equal words to include before and after every hunk in reports. The
// default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}
