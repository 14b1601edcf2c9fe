// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"reflect"
	"testing"
	"unicode/utf8"

	"cloudeng.io/subseq/codec"
)

func hash64Lines(data []byte) (int64, int) {
	idx := bytes.Index(data, []byte{'\n'})
	if idx < 0 {
		idx = len(data)
	}
	h := fnv.New64a()
	h.Write(data[:idx])
	sum := h.Sum64()
	return int64(sum), idx + 1
}

func stringLines(data []byte) (string, int) {
	idx := bytes.Index(data, []byte{'\n'})
	if idx < 0 {
		idx = len(data)
	}
	return string(data[:idx]), idx + 1
}

func TestRunes(t *testing.T) {
	dec := codec.NewDecoder(utf8.DecodeRune)
	for i, tc := range []struct {
		input  string
		output string
	}{
		{"", ""},
		{"日本語", "日本語"},
		{"abc", "abc"},
	} {
		got := dec.Decode([]byte(tc.input))
		if got == nil {
			t.Errorf("%v: unexpected nil slice", i)
		}
		if got, want := string(got), tc.output; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := len(got), utf8.RuneCountInString(tc.input); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestDecoder(t *testing.T) {
	bytesDec := codec.NewDecoder(func(input []byte) (byte, int) { return input[0], 1 })
	if got, want := bytesDec.Decode([]byte("日本語")), []byte("日本語"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	hashDec := codec.NewDecoder(hash64Lines)
	if got, want := hashDec.Decode([]byte("AA\nBB")), []int64{650879030918179831, 653890593267282085}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	stringDec := codec.NewDecoder(stringLines)
	if got, want := stringDec.Decode([]byte("AA\nBB")), []string{"AA", "BB"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := stringDec.Decode([]byte("AA\nBB\n")), []string{"AA", "BB"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func ExampleDecoder() {
	runeDecoder := codec.NewDecoder(utf8.DecodeRune)
	decoded := runeDecoder.Decode([]byte("日本語"))
	fmt.Println(len(decoded))
	// Output:
	// 3
}
