// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command subseq computes longest common subsequences, shortest edit
// scripts and line oriented diffs.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: subseq
summary: compute longest common subsequences, edit scripts and line diffs
commands:
  - name: lcs
    summary: print the longest common subsequence of two strings
    arguments:
      - <a>
      - <b>
  - name: edits
    summary: print the shortest edit script that transforms <a> into <b>
    arguments:
      - <a>
      - <b>
  - name: diff
    summary: print the line by line differences between one or more pairs of files
    arguments:
      - <file-a>
      - <file-b>
      - ...
  - name: config
    summary: document the configuration file
    commands:
      - name: describe
        summary: describe the fields of the configuration file
      - name: default
        summary: print the default configuration
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(spec)
	cmd := &command{out: out}
	cmdSet.Set("lcs").MustRunner(cmd.lcs, &lcsFlags{})
	cmdSet.Set("edits").MustRunner(cmd.edits, &editsFlags{})
	cmdSet.Set("diff").MustRunner(cmd.diff, &diffFlags{})
	cmdSet.Set("config", "describe").MustRunner(cmd.configDescribe, &configDescribeFlags{})
	cmdSet.Set("config", "default").MustRunner(cmd.configDefault, &configDefaultFlags{})
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
