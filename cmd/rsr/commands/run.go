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

package commands

import (
	"context"
	"regexp"

	"github.com/walteh/rsr/cmd/rsr/opts"
	"github.com/walteh/rsr/pkg/log"
	"github.com/walteh/rsr/pkg/operation"
	"github.com/walteh/rsr/pkg/prompt"
	"github.com/walteh/rsr/pkg/status"
	"github.com/walteh/rsr/pkg/text"
)

// Run walks the configured directory. Per-file problems are printed and never
// returned; the run itself cannot fail once configuration has loaded.
func Run(ctx context.Context, o *opts.RootOpts) error {
	cfg := o.Config
	logger := log.FromContext(ctx)
	verbosity := log.VerbosityFor(cfg.Quiet)

	names := text.New(compileOrWarn(logger, cfg.Input), cfg.Output)
	contents := text.New(compileOrWarn(logger, cfg.Search), cfg.Replace)

	runner := operation.NewRunner(names, contents, operation.Options{
		Logger:    logger,
		Verbosity: verbosity,
		Confirm:   prompt.Default(cfg.Prompt, o.Stdin, logger.Console()),
		Excludes:  cfg.Exclude,
	})

	summary := runner.Run(ctx, cfg.Dir)
	logger.Zerolog().Debug().Bool("failures", summary.Failed()).Msg("run finished")

	if cfg.Summary && verbosity.Informational() {
		table, err := status.FormatSummary(summary)
		if err != nil {
			logger.Warningf("%v", err)
			return nil
		}
		logger.Raw(table + "\n")
	}

	return nil
}

// compileOrWarn compiles an optional pattern. A pattern that does not compile
// is reported and treated as absent.
func compileOrWarn(logger *log.Logger, expr *string) *regexp.Regexp {
	re, err := text.Compile(expr)
	if err != nil {
		logger.Errorf("%v, ignoring pattern", err)
		return nil
	}
	return re
}
