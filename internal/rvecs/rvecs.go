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

// Package rvecs contains functions to work with result vectors, a compact representation of an
// alignment that's used to compute hunks for reports.
//
// For an alignment of x and y, rx[s] is true if x[s] is not part of the common subsequence and
// ry[t] is true if y[t] is not. Both vectors have one extra element at the end that is always false;
// it terminates runs of edits without additional bounds checks.
package rvecs

// Make allocates result vectors for sequences of m and n elements.
func Make(m, n int) (rx, ry []bool) {
	r := make([]bool, m+n+2)
	rx = r[: m+1 : m+1]
	ry = r[m+1:]
	return
}
