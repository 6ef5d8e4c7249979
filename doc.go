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

// Package worddiff compares two texts word by word and reports what was inserted and deleted,
// ignoring differences that are only a matter of formatting.
//
// [Compare] is the main entry point: it normalizes both texts with [textnorm.Normalize], extracts
// their words and aligns them with [Align]. The alignment is a longest common subsequence computed
// with dynamic programming. Every inserted or deleted word is reported as a [Difference] that
// carries the word's line and column in the normalized text, together with summary statistics.
//
// Performance: [Align] takes O(mn) time and space for inputs of m and n words. [Compare] bounds
// the memory by splitting large inputs into paragraphs (see [MaxCells] and [Chunker]) and aligning
// paragraph pairs independently. [Similarity] computes the similarity ratio alone in O(min(m, n))
// space.
//
// Note: Rendering a comparison as a report is handled by [github.com/VimWei/worddiff/report].
package worddiff
