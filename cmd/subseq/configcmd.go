// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/subseq/internal/config"
)

type configDescribeFlags struct{}

type configDefaultFlags struct {
	TOML bool `subcmd:"toml,false,'print the configuration in TOML rather than YAML format'"`
}

func (c *command) configDescribe(_ context.Context, _ any, _ []string) error {
	desc, err := config.Describe()
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, desc)
	return nil
}

func (c *command) configDefault(_ context.Context, values any, _ []string) error {
	fv := values.(*configDefaultFlags)
	cfg := config.Default()
	marshal := cfg.YAML
	if fv.TOML {
		marshal = cfg.TOML
	}
	buf, err := marshal()
	if err != nil {
		return err
	}
	_, err = c.out.Write(buf)
	return err
}
