// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/subseq/internal/config"
	"cloudeng.io/subseq/lcs/textdiff"
)

type diffFlags struct {
	CommonFlags
	Deltas bool `subcmd:"deltas,false,'print byte offset deltas rather than normal diff output, overrides the configuration file'"`
}

func numLines(data []byte) int {
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func (c *command) diff(ctx context.Context, values any, args []string) error {
	fv := values.(*diffFlags)
	if len(args)%2 != 0 {
		return fmt.Errorf("files must be specified in pairs, got %v files", len(args))
	}
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	output := cfg.DiffOutput
	if fv.Deltas {
		output = config.Deltas
	}
	errs := &errors.M{}
	for i := 0; i < len(args); i += 2 {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		if len(args) > 2 {
			fmt.Fprintf(c.out, "diff %s %s\n", args[i], args[i+1])
		}
		errs.Append(c.diffPair(ctx, cfg, output, args[i], args[i+1]))
	}
	return errs.Err()
}

func (c *command) diffPair(ctx context.Context, cfg config.Config, output, fa, fb string) error {
	logger := ctxlog.Logger(ctx)
	a, err := file.FSReadFile(ctx, fa)
	if err != nil {
		return err
	}
	b, err := file.FSReadFile(ctx, fb)
	if err != nil {
		return err
	}
	if err := cfg.CheckSize(numLines(a), numLines(b)); err != nil {
		return fmt.Errorf("%v and %v: %w", fa, fb, err)
	}
	diff := textdiff.Lines(a, b)
	logger.Info("diff", "a", fa, "b", fb, "groups", diff.NumGroups())
	if output == config.Deltas {
		for _, d := range diff.Deltas() {
			fmt.Fprintln(c.out, d.String())
		}
		return nil
	}
	diff.Format(c.out)
	return nil
}
