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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/rsr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 SearchMatch is one matching line
type SearchMatch struct {
	Line int    // 1-based line number
	Text string // Line without surrounding whitespace
}

// 📄 SearchResult describes one searched file
type SearchResult struct {
	Path    string
	Lines   int
	Matches []SearchMatch
}

// 🔍 Searcher reports the lines of a file that match, without changing it
type Searcher struct {
	BaseOperation
	matcher *text.Matcher
}

// 🏭 NewSearcher creates a Searcher for matcher's search pattern
func NewSearcher(matcher *text.Matcher, opts Options) *Searcher {
	return &Searcher{
		BaseOperation: NewBaseOperation(opts),
		matcher:       matcher,
	}
}

// 🏃 Search prints every matching line of path as it is found, unless running
// quietly. A read error stops the search; lines already printed stay printed.
func (s *Searcher) Search(ctx context.Context, path string) (*SearchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SkipError{Path: path, Err: errors.Errorf("opening file: %w", err)}
	}
	defer f.Close()

	result := &SearchResult{Path: path}
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return result, errors.Errorf("searching %s: reading line %d: %w", path, result.Lines+1, err)
		}
		if line == "" {
			break
		}
		result.Lines++

		if s.matcher.Matches(line) {
			match := SearchMatch{Line: result.Lines, Text: strings.TrimSpace(line)}
			result.Matches = append(result.Matches, match)
			if s.Verbosity.Informational() {
				s.Logger.Match(path, match.Line, match.Text)
			}
		}

		if err != nil {
			break
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Int("lines", result.Lines).
		Int("matches", len(result.Matches)).
		Msg("searched file")

	return result, nil
}
