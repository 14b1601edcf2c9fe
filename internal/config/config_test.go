// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"cloudeng.io/cmdutil"
	"cloudeng.io/file"
	"cloudeng.io/subseq/internal/config"
)

// mapFS adapts fstest.MapFS to file.ReadFileFS.
type mapFS struct {
	fstest.MapFS
}

func (m mapFS) ReadFileCtx(_ context.Context, name string) ([]byte, error) {
	return m.ReadFile(name)
}

var testFS = fstest.MapFS{
	"subseq.yaml": &fstest.MapFile{Data: []byte(`edit_format: vertical
max_elements: 10
logging:
  level: 2
  source_code: true
`)},
	"subseq.toml": &fstest.MapFile{Data: []byte(`edit_format = "script"
wrap = 40

[logging]
format = "json"
`)},
	"empty.yaml":    &fstest.MapFile{Data: []byte("\n")},
	"unknown.yaml":  &fstest.MapFile{Data: []byte("edit_formats: vertical\n")},
	"unknown.toml":  &fstest.MapFile{Data: []byte("wrapping = 3\n")},
	"invalid.yaml":  &fstest.MapFile{Data: []byte("edit_format: fancy\ndiff_output: unified\nwrap: -1\n")},
	"malformed.yml": &fstest.MapFile{Data: []byte("edit_format: [\n")},
}

func TestLoad(t *testing.T) {
	ctx := file.ContextWithFS(context.Background(), mapFS{testFS})

	cfg, err := config.Load(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg, config.Default(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	cfg, err = config.Load(ctx, "subseq.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default()
	want.EditFormat = config.Vertical
	want.MaxElements = 10
	want.Logging.Level = 2
	want.Logging.SourceCode = true
	if got := cfg; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	cfg, err = config.Load(ctx, "subseq.toml")
	if err != nil {
		t.Fatal(err)
	}
	want = config.Default()
	want.EditFormat = config.Script
	want.Wrap = 40
	want.Logging.Format = "json"
	if got := cfg; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	cfg, err = config.Load(ctx, "empty.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg, config.Default(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := file.ContextWithFS(context.Background(), mapFS{testFS})
	for _, tc := range []struct {
		filename string
		errs     []string
	}{
		{"unknown.yaml", []string{"failed to parse unknown.yaml", "edit_formats"}},
		{"unknown.toml", []string{"failed to parse unknown.toml", "unknown fields", "wrapping"}},
		{"invalid.yaml", []string{
			`unsupported edit_format: "fancy"`,
			`unsupported diff_output: "unified"`,
			"wrap must not be negative: -1"}},
		{"malformed.yml", []string{"failed to parse malformed.yml"}},
		{"does-not-exist.yaml", []string{"does-not-exist.yaml"}},
	} {
		_, err := config.Load(ctx, tc.filename)
		if err == nil {
			t.Errorf("%v: expected an error", tc.filename)
			continue
		}
		for _, e := range tc.errs {
			if !strings.Contains(err.Error(), e) {
				t.Errorf("%v: error %q does not contain %q", tc.filename, err, e)
			}
		}
	}
}

func TestCheckSize(t *testing.T) {
	cfg := config.Default()
	if err := cfg.CheckSize(1000000, 1000000); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.MaxElements = 5
	if err := cfg.CheckSize(5, 5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, tc := range [][2]int{{6, 1}, {1, 6}} {
		err := cfg.CheckSize(tc[0], tc[1])
		if err == nil || !strings.Contains(err.Error(), "limit is 5") {
			t.Errorf("%v: missing or wrong error: %v", tc, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	desc, err := config.Describe()
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"edit_format:", "diff_output:", "max_elements:", "wrap:", "logging:", "level:", "source_code:"} {
		if !strings.Contains(desc, field) {
			t.Errorf("%q not found in %v", field, desc)
		}
	}
}

func TestMarshal(t *testing.T) {
	cfg := config.Default()
	cfg.MaxElements = 100
	cfg.Logging.Level = 3

	yml, err := cfg.YAML()
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML config.Config
	if err := config.Parse("default.yaml", yml, &fromYAML); err != nil {
		t.Fatal(err)
	}
	if got, want := fromYAML, cfg; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	tml, err := cfg.TOML()
	if err != nil {
		t.Fatal(err)
	}
	var fromTOML config.Config
	if err := config.Parse("default.toml", tml, &fromTOML); err != nil {
		t.Fatal(err)
	}
	if got, want := fromTOML, cfg; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoggingConfig(t *testing.T) {
	l := config.Logging{Level: 2, File: "-", Format: "json", SourceCode: true}
	want := cmdutil.LoggingConfig{Level: 2, File: "-", Format: "json", SourceCode: true}
	if got := l.LoggingConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	logger, err := l.LoggingConfig().NewLogger()
	if err != nil {
		t.Fatal(err)
	}
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}
}
