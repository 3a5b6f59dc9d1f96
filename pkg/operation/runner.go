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
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rsr/pkg/status"
	"github.com/walteh/rsr/pkg/text"
)

// 🏃 Runner walks a directory tree and dispatches matched files
type Runner struct {
	BaseOperation
	names    *text.Matcher
	contents *text.Matcher
	excludes []string

	rewriter *Rewriter
	searcher *Searcher
	renamer  *Renamer

	root    string
	summary *status.Summary
}

// 🏗️ NewRunner creates a runner. names filters and renames files, contents
// searches or rewrites what is inside them.
func NewRunner(names, contents *text.Matcher, opts Options) *Runner {
	return &Runner{
		BaseOperation: NewBaseOperation(opts),
		names:         names,
		contents:      contents,
		excludes:      opts.Excludes,
		rewriter:      NewRewriter(contents, opts),
		searcher:      NewSearcher(contents, opts),
		renamer:       NewRenamer(names, opts),
	}
}

// 🏃 Run processes every file below root. Errors are reported as they happen
// and never end the walk early.
func (r *Runner) Run(ctx context.Context, root string) *status.Summary {
	r.root = root
	r.summary = status.NewSummary()

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Str("names", pattern(r.names)).
		Str("contents", pattern(r.contents)).
		Bool("rewrite", r.contents.HasReplace()).
		Bool("search", r.contents.HasSearch()).
		Bool("rename", r.names.HasReplace()).
		Msg("starting run")

	r.handleDirectory(ctx, root)
	return r.summary
}

// 📂 handleDirectory processes the entries of dir in file system order
func (r *Runner) handleDirectory(ctx context.Context, dir string) {
	entries, err := readDirUnsorted(dir)
	if err != nil && len(entries) == 0 {
		r.infof("Skipping %s, error iterating directory: %v", dir, err)
		r.summary.Track(status.StatusSkipped)
		return
	}
	if err != nil {
		r.infof("Ignoring unreadable entries within %s: %v", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if r.excluded(path) {
			r.infof("Skipping %s, excluded", path)
			r.summary.Track(status.StatusSkipped)
			continue
		}
		if entry.IsDir() {
			r.handleDirectory(ctx, path)
			continue
		}
		r.handleFile(ctx, path)
	}
}

// 📄 handleFile filters path by name and runs the configured actions on it
func (r *Runner) handleFile(ctx context.Context, path string) {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		r.infof("Skipping %q as the filename could not be parsed", path)
		r.summary.Track(status.StatusSkipped)
		return
	}
	if strings.HasSuffix(name, TempSuffix) {
		r.infof("Skipping %s, leftover temporary file", path)
		r.summary.Track(status.StatusSkipped)
		return
	}
	if !r.names.Matches(name) {
		return
	}
	r.summary.Track(status.StatusMatched)

	acted := false
	switch {
	case r.contents.HasReplace():
		acted = true
		r.rewrite(ctx, path)
	case r.contents.HasSearch():
		acted = true
		r.search(ctx, path)
	}

	if r.names.HasReplace() {
		result, err := r.renamer.Rename(ctx, path)
		switch {
		case err != nil:
			acted = true
			r.report(err)
			r.summary.Track(status.StatusFailed)
		case result.Renamed:
			acted = true
			r.summary.Track(status.StatusRenamed)
		case result.Declined:
			acted = true
			r.summary.Track(status.StatusDeclined)
		}
	}

	if !acted {
		r.infof("%s", path)
		r.summary.Track(status.StatusListed)
	}
}

func (r *Runner) rewrite(ctx context.Context, path string) {
	result, err := r.rewriter.Rewrite(ctx, path)
	if result != nil {
		r.summary.LinesChanged += result.Changed
		r.summary.LinesDeclined += result.Declined
	}
	switch {
	case IsSkip(err):
		r.report(err)
		r.summary.Track(status.StatusSkipped)
	case err != nil:
		r.report(err)
		r.summary.Track(status.StatusFailed)
	default:
		r.summary.Track(status.StatusRewritten)
	}
}

func (r *Runner) search(ctx context.Context, path string) {
	result, err := r.searcher.Search(ctx, path)
	if result != nil {
		r.summary.MatchingLines += len(result.Matches)
	}
	switch {
	case IsSkip(err):
		r.report(err)
		r.summary.Track(status.StatusSkipped)
	case err != nil:
		r.report(err)
		r.summary.Track(status.StatusFailed)
	default:
		r.summary.Track(status.StatusSearched)
	}
}

// 🚫 excluded reports whether path, relative to the root, matches an exclude glob
func (r *Runner) excluded(path string) bool {
	if len(r.excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range r.excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// pattern returns the expression behind m, or "" when it matches everything
func pattern(m *text.Matcher) string {
	if re := m.Search(); re != nil {
		return re.String()
	}
	return ""
}

// readDirUnsorted lists dir in the order the file system yields entries.
// Entries read before an error are returned along with it.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
