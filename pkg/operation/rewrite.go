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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/rsr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// TempSuffix is appended to a file's name to form the name of its rewrite target
const TempSuffix = ".rsr_tmp"

// TempPath returns the temporary sibling used while rewriting path
func TempPath(path string) string {
	return path + TempSuffix
}

// 📄 RewriteResult describes one rewritten file
type RewriteResult struct {
	Path      string // File path
	Lines     int    // Lines read
	Changed   int    // Lines written in replaced form
	Declined  int    // Replacements the user turned down
	Committed bool   // Whether the temporary file replaced the original
}

// ✏️ Rewriter replaces matches line by line and commits the result by renaming
// a temporary sibling over the original
type Rewriter struct {
	BaseOperation
	matcher *text.Matcher

	// wrapWriter lets tests interfere with writes to the temporary file
	wrapWriter func(io.Writer) io.Writer
}

// 🏭 NewRewriter creates a Rewriter applying matcher's replacement
func NewRewriter(matcher *text.Matcher, opts Options) *Rewriter {
	return &Rewriter{
		BaseOperation: NewBaseOperation(opts),
		matcher:       matcher,
	}
}

// 🔒 rewriteSession owns the handles of one file being rewritten
type rewriteSession struct {
	path    string
	tmpPath string
	src     *os.File
	tmp     *os.File
	reader  *bufio.Reader
	writer  *bufio.Writer
	line    int
	result  *RewriteResult
}

// 🏃 Rewrite rewrites path. The original is only ever replaced by a rename
// once every line has been written; on failure the temporary file is removed
// and the original left as it was. A failed final rename leaves both files on
// disk.
func (r *Rewriter) Rewrite(ctx context.Context, path string) (*RewriteResult, error) {
	logger := zerolog.Ctx(ctx)

	src, err := os.Open(path)
	if err != nil {
		return nil, &SkipError{Path: path, Err: errors.Errorf("opening file: %w", err)}
	}

	tmpPath := TempPath(path)
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		src.Close()
		return nil, errors.Errorf("rewriting %s: creating temporary file %s: %w", path, tmpPath, err)
	}

	var out io.Writer = tmp
	if r.wrapWriter != nil {
		out = r.wrapWriter(tmp)
	}

	s := &rewriteSession{
		path:    path,
		tmpPath: tmpPath,
		src:     src,
		tmp:     tmp,
		reader:  bufio.NewReader(src),
		writer:  bufio.NewWriter(out),
		result:  &RewriteResult{Path: path},
	}

	if err := r.stream(ctx, s); err != nil {
		s.abort()
		return s.result, errors.Errorf("rewriting %s: %w", path, err)
	}

	if err := s.finish(); err != nil {
		s.abort()
		return s.result, errors.Errorf("rewriting %s: %w", path, err)
	}

	r.copyPermissions(s)

	if err := os.Rename(tmpPath, path); err != nil {
		return s.result, errors.Errorf("rewriting %s: renaming temporary file %s over original: %w", path, tmpPath, err)
	}
	s.result.Committed = true

	logger.Debug().
		Str("file", path).
		Int("lines", s.result.Lines).
		Int("changed", s.result.Changed).
		Int("declined", s.result.Declined).
		Msg("rewrote file")

	return s.result, nil
}

// 🔄 stream copies every line to the temporary file, replaced where the
// replacement differs and was confirmed
func (r *Rewriter) stream(ctx context.Context, s *rewriteSession) error {
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Errorf("reading line %d: %w", s.line+1, err)
		}
		if line == "" {
			return nil
		}
		s.line++

		next := line
		replaced := r.matcher.Replace(line)
		if replaced.Changed() {
			if r.Confirm.Confirm(ctx, r.question(s, line, replaced.String())) {
				next = replaced.String()
				s.result.Changed++
			} else {
				s.result.Declined++
			}
		}

		if _, werr := s.writer.WriteString(next); werr != nil {
			return errors.Errorf("writing line %d to %s: %w", s.line, s.tmpPath, werr)
		}
		s.result.Lines++

		if err != nil {
			// final line had no terminator
			return nil
		}
	}
}

// 📝 question builds the confirmation text for one changed line
func (r *Rewriter) question(s *rewriteSession, before, after string) string {
	return fmt.Sprintf("%s:%d\n\t%s\n\t=>\n\t%s",
		s.path,
		s.line,
		strings.TrimSpace(before),
		strings.TrimSpace(after))
}

// 🔐 copyPermissions gives the temporary file the original's mode. Failure is
// reported but does not stop the commit.
func (r *Rewriter) copyPermissions(s *rewriteSession) {
	info, err := os.Stat(s.path)
	if err != nil {
		r.Logger.Warningf("could not read permissions of %s, permissions may have changed: %v", s.path, err)
		return
	}
	mode := info.Mode() & (os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky)
	if err := os.Chmod(s.tmpPath, mode); err != nil {
		r.Logger.Warningf("failed to match permissions for %s, permissions may have changed: %v", s.path, err)
	}
}

// finish flushes and closes both handles
func (s *rewriteSession) finish() error {
	s.src.Close()
	if err := s.writer.Flush(); err != nil {
		return errors.Errorf("writing %s: %w", s.tmpPath, err)
	}
	if err := s.tmp.Close(); err != nil {
		return errors.Errorf("closing %s: %w", s.tmpPath, err)
	}
	return nil
}

// abort closes both handles and removes the temporary file
func (s *rewriteSession) abort() {
	s.src.Close()
	s.tmp.Close()
	os.Remove(s.tmpPath)
}
