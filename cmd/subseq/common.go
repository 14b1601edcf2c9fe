// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/subseq/internal/config"
	"cloudeng.io/text/linewrap"
)

// CommonFlags are shared by all commands that process inputs.
type CommonFlags struct {
	Config string `subcmd:"config,,'configuration file, in YAML or TOML format as determined by its extension'"`
	LoggingFlags
}

// LoggingFlags mirrors cmdutil.LoggingFlags except that its defaults
// mean 'not set' so that any value given on the command line, including
// the cmdutil defaults, overrides the configuration file.
type LoggingFlags struct {
	Level      int    `subcmd:"log-level,-1,'logging level: 0=error, 1=warn, 2=info, 3=debug, defaults to the configuration file'"`
	File       string `subcmd:"log-file,,'log file path, defaults to the configuration file'"`
	Format     string `subcmd:"log-format,,'log format: text or json, defaults to the configuration file'"`
	SourceCode bool   `subcmd:"log-source-code,false,'include source code file and line number in logs'"`
}

type command struct {
	out io.Writer
}

// loggingConfig returns the logging configuration from the config file
// with any logging flags that were set taking precedence.
func loggingConfig(cfg config.Config, lf LoggingFlags) cmdutil.LoggingConfig {
	lc := cfg.Logging.LoggingConfig()
	if lf.Level >= 0 {
		lc.Level = lf.Level
	}
	if len(lf.File) > 0 {
		lc.File = lf.File
	}
	if len(lf.Format) > 0 {
		lc.Format = lf.Format
	}
	if lf.SourceCode {
		lc.SourceCode = true
	}
	return lc
}

// setup loads the configuration and creates the logger stored in the
// returned context. The returned function must be called to release
// the logger.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, config.Config, func(), error) {
	cfg, err := config.Load(ctx, cf.Config)
	if err != nil {
		return ctx, config.Config{}, nil, err
	}
	logger, err := loggingConfig(cfg, cf.LoggingFlags).NewLogger()
	if err != nil {
		return ctx, config.Config{}, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("configuration", "file", cf.Config, "edit_format", cfg.EditFormat, "diff_output", cfg.DiffOutput, "max_elements", cfg.MaxElements)
	return ctx, cfg, func() { _ = logger.Close() }, nil
}

func writeWrapped(out io.Writer, width int, text string) {
	if width > 0 {
		text = linewrap.Block(0, width, text)
	}
	fmt.Fprintln(out, text)
}

func display[T comparable](s []T) string {
	switch v := any(s).(type) {
	case []rune:
		return string(v)
	case []byte:
		return string(v)
	}
	return fmt.Sprint(s)
}
