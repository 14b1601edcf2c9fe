// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the configuration file support for the subseq
// command. Configuration files may be written in YAML or TOML, the
// format being determined by the file's extension.
package config

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported edit script formats.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
	Script     = "script"
)

// Supported line diff output formats.
const (
	Normal = "normal"
	Deltas = "deltas"
)

// Logging represents the logging section of the configuration.
type Logging struct {
	Level      int    `yaml:"level" toml:"level" cmd:"logging level: 0=error, 1=warn, 2=info, 3=debug"`
	File       string `yaml:"file" toml:"file" cmd:"log file path. If not specified logs are written to stderr."`
	Format     string `yaml:"format" toml:"format" cmd:"log format: text or json"`
	SourceCode bool   `yaml:"source_code" toml:"source_code" cmd:"include source code file and line number in logs"`
}

// LoggingConfig returns the logging configuration represented by l.
func (l Logging) LoggingConfig() cmdutil.LoggingConfig {
	return cmdutil.LoggingConfig{
		Level:      l.Level,
		File:       l.File,
		Format:     l.Format,
		SourceCode: l.SourceCode,
	}
}

// Config represents the configuration for the subseq command.
type Config struct {
	EditFormat  string  `yaml:"edit_format" toml:"edit_format" cmd:"format used to display edit scripts: horizontal, vertical or script"`
	DiffOutput  string  `yaml:"diff_output" toml:"diff_output" cmd:"output format for line diffs: normal or deltas"`
	MaxElements int     `yaml:"max_elements" toml:"max_elements" cmd:"the maximum number of elements (runes or lines) accepted for either input, 0 for no limit"`
	Wrap        int     `yaml:"wrap" toml:"wrap" cmd:"wrap long output lines at this width, 0 to disable wrapping"`
	Logging     Logging `yaml:"logging" toml:"logging" cmd:"logging configuration"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		EditFormat: Horizontal,
		DiffOutput: Normal,
		Logging: Logging{
			Format: "text",
		},
	}
}

// Load reads the configuration from filename using file.FSReadFile. The
// file is parsed as TOML if its extension is .toml and as YAML otherwise.
// Any values not specified in the file retain their default values.
// An empty filename returns the default configuration.
func Load(ctx context.Context, filename string) (Config, error) {
	cfg := Default()
	if len(filename) == 0 {
		return cfg, nil
	}
	data, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return Config{}, err
	}
	if err := Parse(filename, data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse parses data, as either TOML or YAML depending on the extension
// of filename, into cfg and then validates the result. Unknown fields
// are reported as errors.
func Parse(filename string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("failed to parse %s: unknown fields: %v", filename, undecoded)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		if err := cmdyaml.ParseConfigStrict(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", filename, err)
	}
	return nil
}

// Validate returns an error for every invalid field.
func (c Config) Validate() error {
	errs := &errors.M{}
	if !slices.Contains([]string{Horizontal, Vertical, Script}, c.EditFormat) {
		errs.Append(fmt.Errorf("unsupported edit_format: %q", c.EditFormat))
	}
	if !slices.Contains([]string{Normal, Deltas}, c.DiffOutput) {
		errs.Append(fmt.Errorf("unsupported diff_output: %q", c.DiffOutput))
	}
	if c.MaxElements < 0 {
		errs.Append(fmt.Errorf("max_elements must not be negative: %v", c.MaxElements))
	}
	if c.Wrap < 0 {
		errs.Append(fmt.Errorf("wrap must not be negative: %v", c.Wrap))
	}
	if !slices.Contains([]string{"", "text", "json"}, c.Logging.Format) {
		errs.Append(fmt.Errorf("unsupported logging format: %q", c.Logging.Format))
	}
	return errs.Err()
}

// CheckSize returns an error if either m or n exceeds the configured
// maximum number of elements.
func (c Config) CheckSize(m, n int) error {
	if c.MaxElements == 0 {
		return nil
	}
	if m > c.MaxElements || n > c.MaxElements {
		return fmt.Errorf("input too large: %v and %v elements, limit is %v", m, n, c.MaxElements)
	}
	return nil
}

// Describe returns a description of the configuration file format.
func Describe() (string, error) {
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML or TOML configuration file options\n")
	if err != nil {
		return "", err
	}
	return desc.String(), nil
}

// YAML returns the YAML representation of c.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// TOML returns the TOML representation of c.
func (c Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
