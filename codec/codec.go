// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package codec provides support for interpreting byte slices as slices of
// other types such as runes, hashed lines or strings so that they may be
// used as input sequences for the lcs package.
package codec

// Decoder represents the ability to decode a byte slice into a slice of
// some other data type.
type Decoder[T any] interface {
	Decode(input []byte) []T
}

type options struct {
	resizePercent int
}

// Option represents an option accepted by NewDecoder.
type Option func(*options)

// ResizePercent requests that the returned slice be reallocated if the
// ratio of unused to used capacity exceeds the specified percentage.
// That is, if (cap(slice) - len(slice)) / len(slice) exceeds the percentage
// new underlying storage is allocated and contents copied. The default
// value for ResizePercent is 100.
func ResizePercent(percent int) Option {
	return func(o *options) {
		o.resizePercent = percent
	}
}

// NewDecoder returns an instance of Decoder for the supplied function.
// The function is called repeatedly with the remaining input and must
// return the decoded value and the number of bytes it consumed. Decoding
// stops when the input is exhausted or the function consumes no bytes.
func NewDecoder[T any](fn func([]byte) (T, int), opts ...Option) Decoder[T] {
	var o options
	o.resizePercent = 100
	for _, fn := range opts {
		fn(&o)
	}
	return &decoder[T]{options: o, fn: fn}
}

type decoder[T any] struct {
	options
	fn func([]byte) (T, int)
}

// Decode implements Decoder.
func (d *decoder[T]) Decode(input []byte) []T {
	out := make([]T, len(input))
	n := decode(input, func(in []byte, i int) (n int) {
		out[i], n = d.fn(in)
		return
	})
	return resize(out[:n], d.resizePercent)
}

func decode(input []byte, fn func([]byte, int) int) int {
	if len(input) == 0 {
		return 0
	}
	cursor, i := 0, 0
	for {
		n := fn(input[cursor:], i)
		if n == 0 {
			break
		}
		i++
		cursor += n
		if cursor >= len(input) {
			break
		}
	}
	return i
}

func resizeNeeded(used, available int, percent int) bool {
	wasted := available - used
	if used == 0 {
		used = 1
	}
	return ((wasted * 100) / used) > percent
}

// resize will allocate new underlying storage and copy the contents of
// slice to it if the ratio of wasted to used, ie:
//
//	(cap(slice) - len(slice)) / len(slice))
//
// exceeds the specified percentage.
func resize[T any](slice []T, percent int) []T {
	if !resizeNeeded(len(slice), cap(slice), percent) {
		return slice
	}
	r := make([]T, len(slice))
	copy(r, slice)
	return r
}
