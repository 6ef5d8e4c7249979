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

// Package lcs computes longest common subsequence alignments of word sequences using the classic
// dynamic programming formulation.
//
// The full alignment needs the complete (m+1)x(n+1) matrix to backtrack, so it takes O(mn) time
// and space. [Length] only needs two rows and runs in O(min(m, n)) space.
package lcs

import (
	"fmt"
	"slices"
)

// Op is a single alignment step.
type Op uint8

const (
	Match  Op = iota // x[i] and y[j] are equal
	Delete           // x[i] is not part of the common subsequence
	Insert           // y[j] is not part of the common subsequence
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Matrix is an LCS table. Cell (i, j) holds the LCS length of x[:i] and y[:j].
type Matrix struct {
	rows, cols int
	cells      []int32
}

func (m *Matrix) At(i, j int) int { return int(m.cells[i*m.cols+j]) }

// Len returns the length of the longest common subsequence of x and y.
func (m *Matrix) Len() int { return m.At(m.rows-1, m.cols-1) }

// Build computes the LCS table of x and y.
func Build(x, y []string) *Matrix {
	xi, yi := intern(x, y)
	return build(xi, yi)
}

func build(x, y []int32) *Matrix {
	m := &Matrix{rows: len(x) + 1, cols: len(y) + 1}
	m.cells = make([]int32, m.rows*m.cols)
	for i := 1; i < m.rows; i++ {
		row, prev := m.cells[i*m.cols:(i+1)*m.cols], m.cells[(i-1)*m.cols:i*m.cols]
		for j := 1; j < m.cols; j++ {
			if x[i-1] == y[j-1] {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return m
}

// Align returns the alignment of x and y from left to right.
//
// The alignment is found by backtracking from the bottom right corner of the LCS table. Equal
// elements are always matched. Otherwise, a deletion is preferred over an insertion whenever both
// lead to an optimal alignment. Because backtracking runs from the end towards the start, this
// places insertions before deletions in the final order of a changed region.
func Align(x, y []string) []Op {
	xi, yi := intern(x, y)
	return backtrack(build(xi, yi), xi, yi)
}

func backtrack(m *Matrix, x, y []int32) []Op {
	i, j := len(x), len(y)
	ops := make([]Op, 0, max(i, j))
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && x[i-1] == y[j-1]:
			ops = append(ops, Match)
			i--
			j--
		case i > 0 && (j == 0 || m.At(i-1, j) >= m.At(i, j-1)):
			ops = append(ops, Delete)
			i--
		default:
			ops = append(ops, Insert)
			j--
		}
	}
	slices.Reverse(ops)
	return ops
}

// Length returns the length of the longest common subsequence of x and y. It only keeps two rows
// of the LCS table, sized by the shorter input.
func Length(x, y []string) int {
	xi, yi := intern(x, y)
	if len(yi) > len(xi) {
		xi, yi = yi, xi
	}
	prev := make([]int32, len(yi)+1)
	cur := make([]int32, len(yi)+1)
	for i := range xi {
		for j := 1; j <= len(yi); j++ {
			if xi[i] == yi[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return int(prev[len(yi)])
}

// intern assigns integer IDs to the elements of x and y so that the table can be filled with
// integer comparisons. Elements that only appear in y get the ID -1; they can never match.
func intern(x, y []string) (xi, yi []int32) {
	ids := make(map[string]int32, len(x))
	buf := make([]int32, len(x)+len(y))
	xi, yi = buf[:len(x):len(x)], buf[len(x):]
	for i, s := range x {
		id, ok := ids[s]
		if !ok {
			id = int32(len(ids))
			ids[s] = id
		}
		xi[i] = id
	}
	for j, s := range y {
		id, ok := ids[s]
		if !ok {
			id = -1
		}
		yi[j] = id
	}
	return xi, yi
}
