// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultDir is searched when no directory is given
const DefaultDir = "."

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration of a run. Unset patterns
// are nil; an empty template is a valid template that deletes what it matches.
type Config struct {
	// Root directory
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`

	// File name filter pattern
	Input *string `json:"input,omitempty" yaml:"input,omitempty" hcl:"input,optional"`

	// File name replacement template
	Output *string `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`

	// Content search pattern
	Search *string `json:"search,omitempty" yaml:"search,omitempty" hcl:"search,optional"`

	// Content replacement template
	Replace *string `json:"replace,omitempty" yaml:"replace,omitempty" hcl:"replace,optional"`

	// Confirm every change
	Prompt bool `json:"prompt,omitempty" yaml:"prompt,omitempty" hcl:"prompt,optional"`

	// Suppress informational output
	Quiet bool `json:"quiet,omitempty" yaml:"quiet,omitempty" hcl:"quiet,optional"`

	// Print a table of outcomes
	Summary bool `json:"summary,omitempty" yaml:"summary,omitempty" hcl:"summary,optional"`

	// Globs skipped during the walk
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude pattern %q is not a valid glob", pattern)
		}
	}

	cfg.applyDefaults()

	return nil
}

// ✂️ DropInvalidExcludes removes exclude globs that cannot be matched and
// returns them, in order
func (cfg *Config) DropInvalidExcludes() []string {
	var dropped []string
	kept := cfg.Exclude[:0]
	for _, pattern := range cfg.Exclude {
		if doublestar.ValidatePattern(pattern) {
			kept = append(kept, pattern)
			continue
		}
		dropped = append(dropped, pattern)
	}
	cfg.Exclude = kept
	return dropped
}

func (cfg *Config) applyDefaults() {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	cfg.Dir = filepath.Clean(cfg.Dir)
}

// parsed finishes a freshly decoded config. Exclude globs are left for the
// caller to check so a bad one can be reported without losing the file.
func parsed(ctx context.Context, format string, cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	zerolog.Ctx(ctx).Debug().Str("format", format).Str("config", cfg.String()).Msg("parsed configuration")
	return cfg, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	show := func(s *string) string {
		if s == nil {
			return "-"
		}
		return fmt.Sprintf("%q", *s)
	}
	return fmt.Sprintf("%s: input=%s output=%s search=%s replace=%s",
		cfg.Dir, show(cfg.Input), show(cfg.Output), show(cfg.Search), show(cfg.Replace))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return parsed(ctx, "yaml", &cfg)
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home": cty.StringVal(os.Getenv("HOME")),
		},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return parsed(ctx, "hcl", &cfg)
}
