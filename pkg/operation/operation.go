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

// Package operation provides the per-file actions of a run and the traversal that drives them
package operation

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/rsr/pkg/log"
	"github.com/walteh/rsr/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators shared by every operation
type Options struct {
	// Logger receives console output
	Logger *log.Logger
	// Verbosity decides whether informational lines are printed
	Verbosity log.Verbosity
	// Confirm approves individual changes; nil approves everything
	Confirm prompt.Confirmer
	// Excludes are doublestar globs matched against paths relative to the root
	Excludes []string
}

// 🧱 BaseOperation holds what every operation needs
type BaseOperation struct {
	Logger    *log.Logger
	Verbosity log.Verbosity
	Confirm   prompt.Confirmer
}

// 🏭 NewBaseOperation creates a BaseOperation, filling in defaults
func NewBaseOperation(opts Options) BaseOperation {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, zerolog.Nop())
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = prompt.Always{}
	}
	return BaseOperation{
		Logger:    logger,
		Verbosity: opts.Verbosity,
		Confirm:   confirm,
	}
}

// 📝 infof prints an informational line unless running quietly
func (op *BaseOperation) infof(format string, args ...interface{}) {
	if !op.Verbosity.Informational() {
		return
	}
	op.Logger.Infof(format, args...)
}

// 📝 report prints err. Skips are informational, anything else is a failure
// and always printed.
func (op *BaseOperation) report(err error) {
	var skip *SkipError
	if errors.As(err, &skip) {
		op.infof("%s", err)
		return
	}
	op.Logger.Error(err.Error())
}

// ⏭️ SkipError marks a file or directory that was passed over rather than
// failed, e.g. because it could not be opened.
type SkipError struct {
	Path string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipping %s: %v", e.Path, e.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// IsSkip reports whether err marks a skipped file
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}
