// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"
	"io"
	"strings"
)

// ScoreTable is the dynamic programming table used to compute and then
// reconstruct the longest common subsequence of two sequences A and B
// of lengths m and n. Entry (i, j) is the length of the longest common
// subsequence of the suffixes A[i:] and B[j:], hence row m and column n
// are always zero and entry (0, 0) is the length of the longest common
// subsequence of A and B.
//
// The table is stored as a single (m+1)*(n+1) slice and is immutable
// once returned by CommonSubsequences.
type ScoreTable struct {
	rows, cols int
	cells      []int32
}

func newScoreTable(m, n int) *ScoreTable {
	return &ScoreTable{
		rows:  m + 1,
		cols:  n + 1,
		cells: make([]int32, (m+1)*(n+1)),
	}
}

// Rows returns the number of rows in the table, ie. len(A)+1.
func (t *ScoreTable) Rows() int { return t.rows }

// Cols returns the number of columns in the table, ie. len(B)+1.
func (t *ScoreTable) Cols() int { return t.cols }

// At returns the length of the longest common subsequence of A[i:]
// and B[j:].
func (t *ScoreTable) At(i, j int) int {
	return int(t.cells[i*t.cols+j])
}

// Length returns the length of the longest common subsequence of A and B.
func (t *ScoreTable) Length() int {
	return t.At(0, 0)
}

func (t *ScoreTable) at(i, j int) int32 {
	return t.cells[i*t.cols+j]
}

func (t *ScoreTable) set(i, j int, v int32) {
	t.cells[i*t.cols+j] = v
}

// CommonSubsequences fills in the score table for a and b and returns it
// along with the lengths of a and b. The table is filled in reverse
// index order since each cell depends on the cells below and to the
// right of it. It takes O(m*n) time and space.
func CommonSubsequences[T comparable](a, b Sequence[T]) (table *ScoreTable, m, n int) {
	m, n = a.Len(), b.Len()
	table = newScoreTable(m, n)
	for i := m - 1; i >= 0; i-- {
		ai := a.At(i)
		for j := n - 1; j >= 0; j-- {
			if ai == b.At(j) {
				table.set(i, j, table.at(i+1, j+1)+1)
				continue
			}
			table.set(i, j, max(table.at(i+1, j), table.at(i, j+1)))
		}
	}
	return table, m, n
}

// step represents a single move in the forward walk of the table.
type step uint8

const (
	stepDone     step = iota
	stepDiagonal      // A[i] == B[j], advance both.
	stepDown          // advance through A.
	stepRight         // advance through B.
)

// next determines the move to be made from (i, j). When the suffix
// lengths tie, A is consumed first.
func next[T comparable](t *ScoreTable, a, b Sequence[T], i, j, m, n int) step {
	switch {
	case i >= m && j >= n:
		return stepDone
	case i >= m:
		return stepRight
	case j >= n:
		return stepDown
	case a.At(i) == b.At(j):
		return stepDiagonal
	case t.at(i+1, j) >= t.at(i, j+1):
		return stepDown
	default:
		return stepRight
	}
}

const (
	diagonalArrow rune = 0x2198 // utf8 south east arrow
	downArrow     rune = 0x2193 // utf8 down arrow
	rightArrow    rune = 0x2192 // utf8 right arrow
	space         rune = 0x20   // utf8 space
)

func arrowFor(s step) rune {
	switch s {
	case stepDiagonal:
		return diagonalArrow
	case stepDown:
		return downArrow
	case stepRight:
		return rightArrow
	}
	return space
}

func elementFormat(v any) string {
	switch v.(type) {
	case rune, byte:
		return "%5c"
	default:
		return "%5v"
	}
}

// FormatTable writes a representation of the table to out with the
// elements of b across the top and those of a down the side. Each cell
// shows the suffix length and the direction the reconstruction would
// take from that cell.
func FormatTable[T comparable](out io.Writer, t *ScoreTable, a, b Sequence[T]) {
	m, n := t.rows-1, t.cols-1
	row := &strings.Builder{}
	row.WriteString("     ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(row, elementFormat(b.At(j)), b.At(j))
	}
	row.WriteString("\n")
	_, _ = out.Write([]byte(row.String()))
	for i := 0; i <= m; i++ {
		row.Reset()
		if i < m {
			fmt.Fprintf(row, elementFormat(a.At(i)), a.At(i))
		} else {
			row.WriteString("     ")
		}
		for j := 0; j <= n; j++ {
			fmt.Fprintf(row, "%4d%c", t.At(i, j), arrowFor(next(t, a, b, i, j, m, n)))
		}
		row.WriteString("\n")
		_, _ = out.Write([]byte(row.String()))
	}
}
