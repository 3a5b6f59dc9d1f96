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

package text

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestMatcher_Matches(t *testing.T) {
	tests := []struct {
		name    string
		search  *regexp.Regexp
		replace *string
		text    string
		want    bool
	}{
		{
			name: "no_search_matches_anything",
			text: "whatever",
			want: true,
		},
		{
			name: "no_search_matches_empty",
			text: "",
			want: true,
		},
		{
			name:   "search_hit",
			search: regexp.MustCompile(`foo`),
			text:   "a foo b",
			want:   true,
		},
		{
			name:   "search_miss",
			search: regexp.MustCompile(`foo`),
			text:   "a bar b",
			want:   false,
		},
		{
			name:    "coerced_search_matches_anything",
			replace: ptr("x"),
			text:    "report.txt",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.search, tt.replace)
			assert.Equal(t, tt.want, m.Matches(tt.text))
		})
	}
}

func TestMatcher_Replace(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		replace     *string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "every_match",
			search:      `o`,
			replace:     ptr("0"),
			text:        "foo boo",
			want:        "f00 b00",
			wantChanged: true,
		},
		{
			name:        "numbered_groups",
			search:      `(\w+)@(\w+)`,
			replace:     ptr("$2 at $1"),
			text:        "user@host",
			want:        "host at user",
			wantChanged: true,
		},
		{
			name:        "named_groups",
			search:      `(?P<year>\d{4})-(?P<month>\d{2})`,
			replace:     ptr("${month}/${year}"),
			text:        "2024-05",
			want:        "05/2024",
			wantChanged: true,
		},
		{
			name:        "empty_template_deletes",
			search:      `-`,
			replace:     ptr(""),
			text:        "a-b-c",
			want:        "abc",
			wantChanged: true,
		},
		{
			name:        "no_match",
			search:      `zzz`,
			replace:     ptr("y"),
			text:        "hello\n",
			want:        "hello\n",
			wantChanged: false,
		},
		{
			name:        "identical_output",
			search:      `a`,
			replace:     ptr("a"),
			text:        "banana",
			want:        "banana",
			wantChanged: false,
		},
		{
			name:        "search_without_template",
			search:      `foo`,
			text:        "foo bar",
			want:        "foo bar",
			wantChanged: false,
		},
		{
			name:        "template_without_search_keeps_terminator",
			replace:     ptr("X"),
			text:        "foo\n",
			want:        "X\n",
			wantChanged: true,
		},
		{
			name:        "template_without_search_whole_name",
			replace:     ptr("renamed.txt"),
			text:        "report.txt",
			want:        "renamed.txt",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var search *regexp.Regexp
			if tt.search != "" {
				search = regexp.MustCompile(tt.search)
			}
			m := New(search, tt.replace)
			got := m.Replace(tt.text)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantChanged, got.Changed())
		})
	}
}

func TestMatcher_NoSearchIsPassthrough(t *testing.T) {
	m := New(nil, nil)
	for _, text := range []string{"", "a", "line\n", "  spaced  ", "ünïcode"} {
		assert.True(t, m.Matches(text))
		got := m.Replace(text)
		assert.Equal(t, text, got.String())
		assert.False(t, got.Changed())
	}
	assert.False(t, m.HasSearch())
	assert.False(t, m.HasReplace())
}

func TestMatcher_Coercion(t *testing.T) {
	m := New(nil, ptr("y"))
	assert.True(t, m.HasSearch())
	assert.True(t, m.HasReplace())
	require.NotNil(t, m.Search())
	assert.Equal(t, MatchEverything, m.Search().String())

	m = New(regexp.MustCompile(`x`), nil)
	assert.True(t, m.HasSearch())
	assert.False(t, m.HasReplace())
}

func TestCompile(t *testing.T) {
	re, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, re)

	re, err = Compile(ptr(`.*\.txt`))
	require.NoError(t, err)
	require.NotNil(t, re)
	assert.True(t, re.MatchString("a.txt"))

	re, err = Compile(ptr(`(`))
	require.Error(t, err)
	assert.Nil(t, re)
	assert.Contains(t, err.Error(), `compiling "("`)
}
