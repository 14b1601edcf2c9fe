// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package textdiff provides support for diff'ing text by lines, in the
// style of the unix diff command, and by runes.
package textdiff

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"cloudeng.io/errors"
	"cloudeng.io/subseq/codec"
	"cloudeng.io/subseq/lcs"
	"cloudeng.io/text/edit"
)

// LineFNVHashDecoder decodes a byte slice into newline terminated lines
// each of which is represented by a 64 bit hash obtained from fnv.New64a.
// The hash includes the terminating newline so that a final line without
// one differs from the same text with one.
func LineFNVHashDecoder(data []byte) (string, uint64, int) {
	if len(data) == 0 {
		return "", 0, 0
	}
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		idx = len(data)
	} else {
		idx++
	}
	h := fnv.New64a()
	h.Write(data[:idx])
	return string(data[:idx]), h.Sum64(), idx
}

// LineDecoder represents a decoder that can be used to split a byte stream
// into lines for use with the lcs package. It records the text and byte
// offset of every line it decodes.
type LineDecoder struct {
	lines   []string
	offsets []int
	hashes  []uint64
	size    int
	fn      func([]byte) (string, uint64, int)
}

// NewLineDecoder returns a new instance of LineDecoder.
func NewLineDecoder(fn func(data []byte) (string, uint64, int)) *LineDecoder {
	return &LineDecoder{fn: fn}
}

// Decode can be used as the decode function when creating a new
// decoder using codec.NewDecoder.
func (ld *LineDecoder) Decode(data []byte) (uint64, int) {
	line, sum, n := ld.fn(data)
	if n == 0 {
		return 0, 0
	}
	ld.lines = append(ld.lines, line)
	ld.offsets = append(ld.offsets, ld.size)
	ld.hashes = append(ld.hashes, sum)
	ld.size += n
	return sum, n
}

// NumLines returns the number of lines decoded.
func (ld *LineDecoder) NumLines() int {
	return len(ld.lines)
}

// Line returns the i'th line, including its newline if it has one,
// and its hash.
func (ld *LineDecoder) Line(i int) (string, uint64) {
	return ld.lines[i], ld.hashes[i]
}

// Offset returns the byte offset of the i'th line. Offset(NumLines())
// is the total number of bytes decoded.
func (ld *LineDecoder) Offset(i int) int {
	if i >= len(ld.offsets) {
		return ld.size
	}
	return ld.offsets[i]
}

func text(ld *LineDecoder, lines []int) string {
	out := strings.Builder{}
	for _, l := range lines {
		out.WriteString(ld.lines[l])
	}
	return out.String()
}

func lineRange(lines []int) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d", lines[0]+1)
	default:
		return fmt.Sprintf("%d,%d", lines[0]+1, lines[len(lines)-1]+1)
	}
}

// Group represents a single diff 'group', that is a contiguous run of
// insertions and deletions that pertain to the same set of lines.
type Group struct {
	edits                       lcs.EditScript[uint64]
	insertedLines, deletedLines []int
	before, beforeB             int
	insertedText, deletedText   string
}

func newGroup(la, lb *LineDecoder, edits lcs.EditScript[uint64]) *Group {
	g := &Group{
		edits:         edits,
		insertedLines: []int{},
		deletedLines:  []int{},
	}
	// A and B of the first edit are the number of lines of each that
	// precede the group regardless of whether it is an insertion or
	// deletion.
	g.before, g.beforeB = edits[0].A, edits[0].B
	for _, edit := range edits {
		switch edit.Op {
		case lcs.Insert:
			g.insertedLines = append(g.insertedLines, edit.B)
		case lcs.Delete:
			g.deletedLines = append(g.deletedLines, edit.A)
		}
	}
	g.insertedText = text(lb, g.insertedLines)
	g.deletedText = text(la, g.deletedLines)
	return g
}

// Summary returns a summary message in the style of the unix/linux diff
// command line tool, eg. 1,2a3.
func (g *Group) Summary() string {
	ni, nd := len(g.insertedLines), len(g.deletedLines)
	switch {
	case nd == 0:
		return fmt.Sprintf("%da%s", g.before, lineRange(g.insertedLines))
	case ni == 0:
		return fmt.Sprintf("%sd%d", lineRange(g.deletedLines), g.beforeB)
	default:
		return fmt.Sprintf("%sc%s", lineRange(g.deletedLines), lineRange(g.insertedLines))
	}
}

// Inserted returns the text to be inserted.
func (g *Group) Inserted() string {
	return g.insertedText
}

// Deleted returns the text that would be deleted.
func (g *Group) Deleted() string {
	return g.deletedText
}

// InsertedLines returns the zero based indices of the lines in B that
// are inserted.
func (g *Group) InsertedLines() []int {
	return g.insertedLines
}

// DeletedLines returns the zero based indices of the lines in A that
// are deleted.
func (g *Group) DeletedLines() []int {
	return g.deletedLines
}

// Edits returns the edits that make up this group.
func (g *Group) Edits() lcs.EditScript[uint64] {
	return g.edits
}

// Diff represents the line by line differences between two byte slices.
type Diff struct {
	linesA, linesB *LineDecoder
	script         *lcs.EditScript[uint64]
	groups         []*Group
}

// Same returns true if there were no diffs.
func (d *Diff) Same() bool {
	return len(d.groups) == 0
}

// NumGroups returns the number of 'diff groups' created.
func (d *Diff) NumGroups() int {
	return len(d.groups)
}

// Group returns the i'th 'diff group'.
func (d *Diff) Group(i int) *Group {
	return d.groups[i]
}

// Script returns the underlying edit script over line hashes.
func (d *Diff) Script() *lcs.EditScript[uint64] {
	return d.script
}

// Lines uses lcs.DP to generate line oriented diffs.
func Lines(a, b []byte) *Diff {
	lda, ldb := NewLineDecoder(LineFNVHashDecoder), NewLineDecoder(LineFNVHashDecoder)
	da := codec.NewDecoder(lda.Decode).Decode(a)
	db := codec.NewDecoder(ldb.Decode).Decode(b)
	diff := &Diff{
		linesA: lda,
		linesB: ldb,
		script: lcs.NewDP(da, db).SES(),
	}
	script := *diff.script
	for len(script) > 0 {
		if script[0].Op == lcs.Identical {
			script = script[1:]
			continue
		}
		end := 1
		for end < len(script) && script[end].Op != lcs.Identical {
			end++
		}
		diff.groups = append(diff.groups, newGroup(lda, ldb, script[:end:end]))
		script = script[end:]
	}
	return diff
}

const noNewline = "\\ No newline at end of file\n"

func writeLines(out io.Writer, prefix string, ld *LineDecoder, lines []int) {
	for _, l := range lines {
		line := ld.lines[l]
		_, _ = io.WriteString(out, prefix)
		_, _ = io.WriteString(out, line)
		if !strings.HasSuffix(line, "\n") {
			_, _ = io.WriteString(out, "\n")
			_, _ = io.WriteString(out, noNewline)
		}
	}
}

// Format writes the diff to out in the 'normal' output format of the
// unix diff command.
func (d *Diff) Format(out io.Writer) {
	for _, g := range d.groups {
		_, _ = io.WriteString(out, g.Summary())
		_, _ = io.WriteString(out, "\n")
		writeLines(out, "< ", d.linesA, g.deletedLines)
		if len(g.deletedLines) > 0 && len(g.insertedLines) > 0 {
			_, _ = io.WriteString(out, "---\n")
		}
		writeLines(out, "> ", d.linesB, g.insertedLines)
	}
}

// Deltas returns the byte level deltas, one per group, that transform
// A into B.
func (d *Diff) Deltas() []edit.Delta {
	deltas := make([]edit.Delta, 0, len(d.groups))
	for _, g := range d.groups {
		if len(g.deletedLines) == 0 {
			deltas = append(deltas, edit.InsertString(d.linesA.Offset(g.before), g.insertedText))
			continue
		}
		first, last := g.deletedLines[0], g.deletedLines[len(g.deletedLines)-1]
		pos := d.linesA.Offset(first)
		size := d.linesA.Offset(last+1) - pos
		if len(g.insertedLines) == 0 {
			deltas = append(deltas, edit.Delete(pos, size))
			continue
		}
		deltas = append(deltas, edit.ReplaceString(pos, size, g.insertedText))
	}
	return deltas
}

// Apply applies the deltas obtained from this diff to a, which must be
// the same contents that the diff was created from.
func (d *Diff) Apply(a []byte) ([]byte, error) {
	return ApplyDeltas(a, d.Deltas()...)
}

// negative reports whether a delta has a negative position or size.
// Both appear in its String form as a '-' following the '@' or '#'.
func negative(d edit.Delta) bool {
	s := d.String()
	return strings.Contains(s, "@-") || strings.Contains(s, "#-")
}

// ValidateDeltas returns an error for every delta that lies outside of
// contents or that has a negative position or size.
func ValidateDeltas(contents []byte, deltas ...edit.Delta) error {
	errs := &errors.M{}
	for _, d := range deltas {
		if negative(d) {
			errs.Append(fmt.Errorf("negative position or size: %s", d))
			continue
		}
		// edit.Validate stops at the first insertion it finds when given
		// multiple deltas.
		errs.Append(edit.Validate(contents, d))
	}
	return errs.Err()
}

// ApplyDeltas applies deltas to a copy of contents using edit.Do. Neither
// contents nor deltas are modified and no deltas are applied if any of
// them are invalid.
func ApplyDeltas(contents []byte, deltas ...edit.Delta) ([]byte, error) {
	if err := ValidateDeltas(contents, deltas...); err != nil {
		return nil, err
	}
	return edit.Do(contents, slices.Clone(deltas)...), nil
}

// Runes uses lcs.DP to generate rune oriented diffs.
func Runes(a, b string) *lcs.EditScript[rune] {
	dec := codec.NewDecoder(utf8.DecodeRune)
	return lcs.NewDP(dec.Decode([]byte(a)), dec.Decode([]byte(b))).SES()
}
