// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lcs

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// EditOp represents an edit operation.
type EditOp int

// Values for EditOp.
const (
	Insert EditOp = iota
	Delete
	Identical
)

// Edit represents a single edit.
//
// For deletions, A is the index in the original (A) slice of the value
// to be deleted and B the number of values of the new (B) slice that
// precede the deletion.
//
// For insertions, B is the index of the new value in the new (B) slice
// and A the number of values of the original slice that precede the
// insertion, ie. the value is inserted immediately before A[A].
//
// A third operation, Identical, identifies the members of the LCS and
// their position in the original and new slices. This allows for the LCS
// to be retrieved from the SES.
//
// Val is the value being inserted, deleted or that is common to both.
type Edit[T comparable] struct {
	Op   EditOp
	A, B int
	Val  T
}

// EditScript represents a series of Edits that can be trivially 'replayed'
// to create the new slice from the original one:
//
//	var b []T
//	for _, action := range script {
//	  switch action.Op {
//	  case Insert, Identical:
//	    b = append(b, action.Val)
//	  }
//	}
type EditScript[T comparable] []Edit[T]

var opStr = map[EditOp]string{
	Insert:    "+",
	Delete:    "-",
	Identical: "=",
}

// String implements stringer.
func (es *EditScript[T]) String() string {
	out := strings.Builder{}
	for i, e := range *es {
		out.WriteString(opStr[e.Op])
		out.WriteString(" ")
		fmt.Fprintf(&out, "%v", e.Val)
		switch e.Op {
		case Identical:
			fmt.Fprintf(&out, "@[%v == %v]", e.A, e.B)
		case Insert:
			fmt.Fprintf(&out, "@[%v < %v]", e.A, e.B)
		case Delete:
			fmt.Fprintf(&out, "@[%v > %v]", e.A, e.B)
		}
		if i < len(*es)-1 {
			out.WriteString(", ")
		}
	}
	return out.String()
}

// Apply transforms the original slice to the new slice by
// applying the SES.
func (es *EditScript[T]) Apply(a []T) []T {
	b := make([]T, 0, len(*es))
	for _, action := range *es {
		switch action.Op {
		case Insert:
			b = append(b, action.Val)
		case Identical:
			b = append(b, a[action.A])
		}
	}
	return b
}

// Reverse returns a new edit script that is the inverse of the one supplied.
// That is, if the original script would transform A to B, then the results of
// this function will transform B to A.
func (es *EditScript[T]) Reverse() *EditScript[T] {
	rev := make(EditScript[T], len(*es))
	for i, e := range *es {
		switch e.Op {
		case Identical:
			rev[i] = Edit[T]{Op: Identical, A: e.B, B: e.A, Val: e.Val}
		case Delete:
			rev[i] = Edit[T]{Op: Insert, A: e.B, B: e.A, Val: e.Val}
		case Insert:
			rev[i] = Edit[T]{Op: Delete, A: e.B, B: e.A, Val: e.Val}
		}
	}
	return &rev
}

// LCS returns the longest common subsequence recorded in the edit script.
func (es *EditScript[T]) LCS() []T {
	r := []T{}
	for _, e := range *es {
		if e.Op == Identical {
			r = append(r, e.Val)
		}
	}
	return r
}

// Stats returns the number of identical, inserted and deleted values.
func (es *EditScript[T]) Stats() (identical, inserted, deleted int) {
	for _, e := range *es {
		switch e.Op {
		case Identical:
			identical++
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return
}

func verticalFormatFor(a any) string {
	switch a.(type) {
	case []int8, []uint8, []rune:
		return "%3c"
	case []int16, []uint16, []uint32, []int64, []uint64, []int:
		return "% 20d"
	case []float32, []float64:
		return "% 20.3e"
	case []string:
		return "%s"
	default:
		return "%v"
	}
}

// FormatVertical prints a representation of the edit script with one
// item per line, eg:
//
//	-   A
//	    G
//	-   C
//	    A
//	-   T
//	+   C
func (es *EditScript[T]) FormatVertical(out io.Writer, a []T) {
	format := verticalFormatFor(a)
	for _, op := range *es {
		f := fmt.Sprintf(format, op.Val)
		switch op.Op {
		case Identical:
			fmt.Fprintf(out, "  %s\n", f)
		case Delete:
			fmt.Fprintf(out, "- %s\n", f)
		case Insert:
			fmt.Fprintf(out, "+ %s\n", f)
		}
	}
}

func horizontalFormatFor(a any) string {
	switch a.(type) {
	case []int8, []uint8, []rune:
		return "%c"
	default:
		return "%v"
	}
}

// FormatHorizontal prints a representation of the edit script across
// three lines, with the top line showing the result of applying the
// edit, the middle line the operations applied and the bottom line
// any items deleted, eg:
//
//	 G A C
//	-|-|-+
//	A C T
func (es *EditScript[T]) FormatHorizontal(out io.Writer, a []T) {
	format := horizontalFormatFor(a)
	displaySizes := make([]int, 0, len(*es))
	top := &strings.Builder{}
	for _, op := range *es {
		f := fmt.Sprintf(format, op.Val)
		size := utf8.RuneCountInString(f)
		if op.Op == Delete {
			top.WriteString(strings.Repeat(" ", size))
		} else {
			top.WriteString(f)
		}
		displaySizes = append(displaySizes, size)
	}
	top.WriteByte('\n')

	pad := func(sb *strings.Builder, o string, i int) {
		totalPadding := displaySizes[i] - utf8.RuneCountInString(o)
		prePad := totalPadding / 2
		postPad := totalPadding - prePad
		sb.WriteString(strings.Repeat(" ", prePad))
		sb.WriteString(o)
		sb.WriteString(strings.Repeat(" ", postPad))
	}

	middle, bottom := &strings.Builder{}, &strings.Builder{}
	for i, op := range *es {
		pad(middle, opSymbol(op.Op), i)
		if op.Op == Delete {
			fmt.Fprintf(bottom, format, op.Val)
			continue
		}
		pad(bottom, "", i)
	}
	middle.WriteByte('\n')
	bottom.WriteByte('\n')
	_, _ = io.WriteString(out, top.String())
	_, _ = io.WriteString(out, middle.String())
	_, _ = io.WriteString(out, bottom.String())
}

func opSymbol(op EditOp) string {
	if op == Identical {
		return "|"
	}
	return opStr[op]
}
