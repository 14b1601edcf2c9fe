// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/subseq/internal/config"
	"cloudeng.io/subseq/lcs"
)

type lcsFlags struct {
	CommonFlags
	All    bool `subcmd:"all,false,'print all of the longest common subsequences'"`
	Length bool `subcmd:"length,false,'print only the length of the longest common subsequence'"`
	Table  bool `subcmd:"table,false,'print the score table used to compute the longest common subsequence'"`
	Bytes  bool `subcmd:"bytes,false,'compare bytes rather than runes'"`
}

func (c *command) lcs(ctx context.Context, values any, args []string) error {
	fv := values.(*lcsFlags)
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	if fv.Bytes {
		return printLCS(ctx, c.out, cfg, fv, []byte(args[0]), []byte(args[1]))
	}
	return printLCS(ctx, c.out, cfg, fv, []rune(args[0]), []rune(args[1]))
}

func printLCS[T comparable](ctx context.Context, out io.Writer, cfg config.Config, fv *lcsFlags, a, b []T) error {
	if err := cfg.CheckSize(len(a), len(b)); err != nil {
		return err
	}
	dp := lcs.NewDP(a, b)
	table := dp.Table()
	ctxlog.Logger(ctx).Info("lcs", "a.len", len(a), "b.len", len(b), "lcs.len", table.Length())
	if fv.Table {
		lcs.FormatTable[T](out, table, lcs.Slice[T](a), lcs.Slice[T](b))
	}
	switch {
	case fv.Length:
		fmt.Fprintln(out, table.Length())
	case fv.All:
		all := dp.AllLCS()
		ctxlog.Logger(ctx).Debug("all lcs", "count", len(all))
		strs := make([]string, len(all))
		for i, l := range all {
			strs[i] = display(l)
		}
		writeWrapped(out, cfg.Wrap, strings.Join(strs, " "))
	default:
		fmt.Fprintln(out, display(dp.LCS()))
	}
	return nil
}
