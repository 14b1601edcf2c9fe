// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import "fmt"

// DP represents a dynamic programming based implementation for finding
// the longest common subsequence and shortest edit script (LCS/SES) for
// transforming A to B. The score table is computed once, on first use,
// and shared by all of the methods. This implementation can return all
// LCS rather than just the first one found.
type DP[T comparable] struct {
	a, b  Slice[T]
	table *ScoreTable
}

// NewDP creates a new instance of DP.
func NewDP[T comparable](a, b []T) *DP[T] {
	return &DP[T]{a: a, b: b}
}

func (dp *DP[T]) fill() *ScoreTable {
	if dp.table == nil {
		dp.table, _, _ = CommonSubsequences[T](dp.a, dp.b)
	}
	return dp.table
}

// Table returns the score table.
func (dp *DP[T]) Table() *ScoreTable {
	return dp.fill()
}

// LCS returns the longest common subsequence.
func (dp *DP[T]) LCS() []T {
	return Backtrack[T](dp.fill(), dp.a, dp.b, AppendSlice[T], []T{})
}

// AllLCS returns all of the distinct longest common subsequences. The
// order is deterministic with the LCS returned by LCS always being
// the first one.
func (dp *DP[T]) AllLCS() [][]T {
	dp.fill()
	all := &allLCS[T]{
		dp:   dp,
		memo: map[int][][]T{},
	}
	return all.from(0, 0)
}

type allLCS[T comparable] struct {
	dp   *DP[T]
	memo map[int][][]T
}

func (al *allLCS[T]) from(i, j int) [][]T {
	t, a, b := al.dp.table, al.dp.a, al.dp.b
	m, n := len(a), len(b)
	if i >= m || j >= n || t.at(i, j) == 0 {
		return [][]T{{}}
	}
	key := i*t.cols + j
	if paths, ok := al.memo[key]; ok {
		return paths
	}
	var paths [][]T
	if a[i] == b[j] {
		// Every LCS of A[i:] and B[j:] starts with this element.
		for _, p := range al.from(i+1, j+1) {
			np := make([]T, 0, len(p)+1)
			np = append(np, a[i])
			paths = append(paths, append(np, p...))
		}
	} else {
		cur := t.at(i, j)
		if t.at(i+1, j) == cur {
			paths = append(paths, al.from(i+1, j)...)
		}
		if t.at(i, j+1) == cur {
			paths = dedup(paths, al.from(i, j+1))
		}
	}
	al.memo[key] = paths
	return paths
}

func dedup[T comparable](existing, more [][]T) [][]T {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[fmt.Sprintf("%#v", p)] = struct{}{}
	}
	for _, p := range more {
		k := fmt.Sprintf("%#v", p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		existing = append(existing, p)
	}
	return existing
}

// SES returns the shortest edit script that transforms A into B.
func (dp *DP[T]) SES() *EditScript[T] {
	t := dp.fill()
	a, b := dp.a, dp.b
	m, n := len(a), len(b)
	es := make(EditScript[T], 0, m+n-t.Length())
	i, j := 0, 0
	for {
		switch next[T](t, a, b, i, j, m, n) {
		case stepDone:
			return &es
		case stepDiagonal:
			es = append(es, Edit[T]{Op: Identical, A: i, B: j, Val: a[i]})
			i++
			j++
		case stepDown:
			es = append(es, Edit[T]{Op: Delete, A: i, B: j, Val: a[i]})
			i++
		case stepRight:
			es = append(es, Edit[T]{Op: Insert, A: i, B: j, Val: b[j]})
			j++
		}
	}
}
