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
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rsr/pkg/log"
	"github.com/walteh/rsr/pkg/text"
)

func TestSearcher_Search(t *testing.T) {
	ctx, logger, buf := newTestEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "alpha\nbeta\n  alpha again  \n"
	writeFile(t, path, content)

	s := NewSearcher(text.New(regexp.MustCompile(`alpha`), nil), Options{Logger: logger})
	result, err := s.Search(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Lines)
	assert.Equal(t, []SearchMatch{
		{Line: 1, Text: "alpha"},
		{Line: 3, Text: "alpha again"},
	}, result.Matches)
	assert.Equal(t, path+":1       alpha\n"+path+":3       alpha again\n", buf.String())
	assert.Equal(t, content, readFile(t, path), "searching never mutates")
	assert.Equal(t, []string{"notes.txt"}, listDir(t, dir))
}

func TestSearcher_QuietHidesMatches(t *testing.T) {
	ctx, logger, buf := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "x\nfoo")

	s := NewSearcher(text.New(regexp.MustCompile(`foo`), nil), Options{Logger: logger, Verbosity: log.VerbosityQuiet})
	result, err := s.Search(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []SearchMatch{{Line: 2, Text: "foo"}}, result.Matches, "matches are still collected")
	assert.Empty(t, buf.String())
}

func TestSearcher_Errors(t *testing.T) {
	ctx, logger, _ := newTestEnv(t)
	dir := t.TempDir()
	s := NewSearcher(text.New(regexp.MustCompile(`foo`), nil), Options{Logger: logger})

	_, err := s.Search(ctx, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, IsSkip(err))

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	result, err := s.Search(ctx, sub)
	require.Error(t, err)
	assert.False(t, IsSkip(err))
	assert.Contains(t, err.Error(), "reading line 1")
	require.NotNil(t, result)
	assert.Empty(t, result.Matches)
}
