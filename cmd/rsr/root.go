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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rsr/cmd/rsr/commands"
	"github.com/walteh/rsr/cmd/rsr/opts"
	"github.com/walteh/rsr/pkg/config"
	"github.com/walteh/rsr/pkg/log"
)

// rootFlags holds the raw command line values before they are merged over
// the config file
type rootFlags struct {
	configFile string
	debug      bool

	input   string
	output  string
	search  string
	replace string
	prompt  bool
	quiet   bool
	summary bool
	exclude []string
}

// newRootCmd builds the rsr command tree
func newRootCmd(stdin *os.File, stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "rsr [flags] [dir]",
		Short: "Recursive search & replace",
		Long: `rsr walks a directory tree, picks files whose names match --input and
searches (--search) or rewrites (--search with --replace) their contents line
by line. Matched files can also be renamed with an --output template.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, ctx, err := newRootOpts(cmd.Context(), cmd, args, flags, stdin, stdout, stderr)
			if err != nil {
				return err
			}
			return commands.Run(ctx, ro)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, flags)
	cmd.AddCommand(commands.NewVersionCmd())

	return cmd
}

// addRootFlags adds the run flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "filename filter regex (default: match all)")
	fs.StringVarP(&f.output, "output", "o", "", "filename replacement template")
	fs.StringVarP(&f.search, "search", "s", "", "content search regex")
	fs.StringVarP(&f.replace, "replace", "r", "", "content replacement template")
	fs.BoolVarP(&f.prompt, "prompt", "p", false, "confirm every change interactively")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress informational output")
	fs.BoolVar(&f.summary, "summary", false, "print a summary table after the walk")
	fs.StringArrayVarP(&f.exclude, "exclude", "x", nil, "glob of paths to skip, relative to dir (repeatable)")
	fs.StringVarP(&f.configFile, "config", "c", "", "config file path (.yaml, .hcl or .json)")
	fs.BoolVarP(&f.debug, "debug", "d", false, "enable debug logging on stderr")
}

// newRootOpts sets up logging, loads the optional config file and lays the
// flags the user actually set over it
func newRootOpts(ctx context.Context, cmd *cobra.Command, args []string, f *rootFlags, stdin *os.File, stdout, stderr io.Writer) (*opts.RootOpts, context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.Disabled
	if f.debug {
		level = zerolog.DebugLevel
	}
	logger := log.NewConsoleLogger(stdout, stderr, level)
	ctx = log.NewContext(ctx, logger)

	cfg := &config.Config{}
	if f.configFile != "" {
		loaded, err := config.Load(ctx, f.configFile)
		if err != nil {
			return nil, ctx, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = &f.input
	}
	if changed("output") {
		cfg.Output = &f.output
	}
	if changed("search") {
		cfg.Search = &f.search
	}
	if changed("replace") {
		cfg.Replace = &f.replace
	}
	if changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if changed("quiet") {
		cfg.Quiet = f.quiet
	}
	if changed("summary") {
		cfg.Summary = f.summary
	}
	if changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if len(args) > 0 {
		cfg.Dir = args[0]
	}

	for _, pattern := range cfg.DropInvalidExcludes() {
		logger.Errorf("exclude pattern %q is not a valid glob, ignoring pattern", pattern)
	}

	if err := cfg.Validate(); err != nil {
		return nil, ctx, errors.Errorf("validating config: %w", err)
	}

	logger.Zerolog().Debug().Str("config", cfg.String()).Msg("configuration ready")

	return &opts.RootOpts{
		Config: cfg,
		Stdin:  stdin,
	}, ctx, nil
}
