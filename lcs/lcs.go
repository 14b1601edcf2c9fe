// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lcs provides a dynamic programming implementation of the longest
// common subsequence (LCS) algorithm and of the shortest edit script (SES)
// that can be derived from it. See
// https://en.wikipedia.org/wiki/Longest_common_subsequence_problem.
//
// The algorithm operates over any Sequence of comparable elements and
// builds its result using a caller supplied accumulator, that is, an
// 'empty' value and a function to append an element to it. This allows
// the result to be a slice, a string or any other type that suits the
// caller:
//
//	lcs.LongestCommonSubsequence(lcs.Slice[rune]("ABCBDAB"), lcs.Slice[rune]("BDCABA"), lcs.AppendRune, "")
//
// returns "BDAB".
//
// When more than one LCS exists the one returned is determined by the
// order in which the score table is walked: elements of A are consumed
// in preference to those of B when the two choices are equally good.
// DP.AllLCS can be used to obtain all of them.
//
// Time and space complexity are O(m*n) where m and n are the lengths of
// the two sequences.
package lcs

// Backtrack walks the score table for a and b from the start of both
// sequences and appends each element of the longest common subsequence
// to empty using concat. The table must have been created by
// CommonSubsequences for the same a and b. concat may modify its
// accumulator argument in place since the previous value is never
// reused.
func Backtrack[T comparable, A any](table *ScoreTable, a, b Sequence[T], concat func(A, T) A, empty A) A {
	m, n := table.rows-1, table.cols-1
	acc := empty
	i, j := 0, 0
	for i < m && j < n {
		switch next(table, a, b, i, j, m, n) {
		case stepDiagonal:
			acc = concat(acc, a.At(i))
			i++
			j++
		case stepDown:
			i++
		default:
			j++
		}
	}
	return acc
}

// LongestCommonSubsequence returns one longest common subsequence of a
// and b built by appending its elements to empty, in order, using concat.
// If a and b have no elements in common, empty is returned unchanged.
func LongestCommonSubsequence[T comparable, A any](a, b Sequence[T], concat func(A, T) A, empty A) A {
	table, _, _ := CommonSubsequences(a, b)
	return Backtrack(table, a, b, concat, empty)
}

// Length returns the length of the longest common subsequence of a and b.
func Length[T comparable](a, b Sequence[T]) int {
	table, _, _ := CommonSubsequences(a, b)
	return table.Length()
}

// Slices returns the longest common subsequence of two slices.
func Slices[T comparable](a, b []T) []T {
	return LongestCommonSubsequence[T, []T](Slice[T](a), Slice[T](b), AppendSlice[T], []T{})
}

// Strings returns the longest common subsequence of two strings computed
// over their runes rather than bytes.
func Strings(a, b string) string {
	return LongestCommonSubsequence[rune, string](Slice[rune]([]rune(a)), Slice[rune]([]rune(b)), AppendRune, "")
}
