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

package operation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/rsr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 RenameResult describes one file name replacement
type RenameResult struct {
	From     string // Original path
	To       string // Proposed path
	Renamed  bool   // Whether the file was moved
	Declined bool   // Whether the user turned the rename down
}

// Differs reports whether the replacement produced a new path
func (r *RenameResult) Differs() bool {
	return r.From != r.To
}

// 🏷️ Renamer applies the file name replacement
type Renamer struct {
	BaseOperation
	matcher *text.Matcher
}

// 🏭 NewRenamer creates a Renamer applying matcher's replacement to file names
func NewRenamer(matcher *text.Matcher, opts Options) *Renamer {
	return &Renamer{
		BaseOperation: NewBaseOperation(opts),
		matcher:       matcher,
	}
}

// 🏃 Rename moves path to the name produced by the replacement, within the
// same directory. Nothing happens when the name does not change. The result
// is never nil.
func (r *Renamer) Rename(ctx context.Context, path string) (*RenameResult, error) {
	name := filepath.Base(path)
	newName := r.matcher.Replace(name).String()

	result := &RenameResult{From: path, To: path}
	if newName == name {
		return result, nil
	}
	if newName == "" {
		return result, errors.Errorf("renaming %s: replacement produced an empty name", path)
	}
	result.To = filepath.Join(filepath.Dir(path), newName)
	if !result.Differs() {
		return result, nil
	}

	if !r.Confirm.Confirm(ctx, fmt.Sprintf("Rename %q => %q?", result.From, result.To)) {
		result.Declined = true
		return result, nil
	}

	if err := os.Rename(result.From, result.To); err != nil {
		return result, errors.Errorf("renaming %s to %s: %w", result.From, result.To, err)
	}
	result.Renamed = true

	return result, nil
}
