// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/subseq/internal/config"
	"cloudeng.io/subseq/lcs"
	"cloudeng.io/subseq/lcs/textdiff"
)

type editsFlags struct {
	CommonFlags
	Format string `subcmd:"format,,'edit script format: horizontal, vertical or script, overrides the configuration file'"`
}

// formatScript returns a compact, single line representation of an
// edit script over runes, eg. "-A =G -C =A -T +C".
func formatScript(es *lcs.EditScript[rune]) string {
	parts := make([]string, len(*es))
	for i, e := range *es {
		switch e.Op {
		case lcs.Identical:
			parts[i] = "=" + string(e.Val)
		case lcs.Insert:
			parts[i] = "+" + string(e.Val)
		case lcs.Delete:
			parts[i] = "-" + string(e.Val)
		}
	}
	return strings.Join(parts, " ")
}

func (c *command) edits(ctx context.Context, values any, args []string) error {
	fv := values.(*editsFlags)
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	format := cfg.EditFormat
	if len(fv.Format) > 0 {
		format = fv.Format
	}
	a, b := []rune(args[0]), []rune(args[1])
	if err := cfg.CheckSize(len(a), len(b)); err != nil {
		return err
	}
	script := textdiff.Runes(args[0], args[1])
	identical, inserted, deleted := script.Stats()
	ctxlog.Logger(ctx).Info("edits", "format", format, "identical", identical, "inserted", inserted, "deleted", deleted)
	switch format {
	case config.Horizontal:
		script.FormatHorizontal(c.out, a)
	case config.Vertical:
		script.FormatVertical(c.out, a)
	case config.Script:
		writeWrapped(c.out, cfg.Wrap, formatScript(script))
	default:
		return fmt.Errorf("unsupported edit script format: %q", format)
	}
	return nil
}
