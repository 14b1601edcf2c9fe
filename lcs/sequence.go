// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

// Sequence represents an indexable, finite sequence of comparable
// elements. Indices are zero based.
type Sequence[T comparable] interface {
	At(i int) T
	Len() int
}

// Slice is a Sequence backed by a slice.
type Slice[T comparable] []T

// At implements Sequence.
func (s Slice[T]) At(i int) T { return s[i] }

// Len implements Sequence.
func (s Slice[T]) Len() int { return len(s) }

// Accessor adapts a pair of functions to the Sequence interface. ElementAt
// is called with one-based indices in the range [1, Length()], which
// allows for sequence representations that are naturally one based.
// Any failure in either function, such as an out of range panic,
// is propagated unchanged to the caller.
type Accessor[T comparable] struct {
	ElementAt func(i int) T
	Length    func() int
}

// At implements Sequence.
func (a Accessor[T]) At(i int) T { return a.ElementAt(i + 1) }

// Len implements Sequence.
func (a Accessor[T]) Len() int { return a.Length() }

// AppendSlice appends v to acc and can be used as the concat function
// for slice accumulators.
func AppendSlice[T any](acc []T, v T) []T {
	return append(acc, v)
}

// AppendRune appends r to acc and can be used as the concat function
// for string accumulators.
func AppendRune(acc string, r rune) string {
	return acc + string(r)
}
