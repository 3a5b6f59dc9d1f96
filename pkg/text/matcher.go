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

	"gitlab.com/tozd/go/errors"
)

// MatchEverything is the pattern used when a replacement template is given
// without a search pattern. It spans the text up to the first line break, so a
// line keeps its terminator.
const MatchEverything = "^.*"

var matchEverything = regexp.MustCompile(MatchEverything)

// 🔍 Matcher pairs an optional search pattern with an optional replacement
// template. A Matcher is immutable and safe to share.
type Matcher struct {
	search  *regexp.Regexp
	replace *string
}

// 🏭 New creates a Matcher. When replace is set and search is nil, search
// becomes MatchEverything so the template always has something to expand into.
func New(search *regexp.Regexp, replace *string) *Matcher {
	if search == nil && replace != nil {
		search = matchEverything
	}
	return &Matcher{
		search:  search,
		replace: replace,
	}
}

// Matches reports whether text contains a match. A Matcher without a search
// pattern matches everything.
func (m *Matcher) Matches(text string) bool {
	if m.search == nil {
		return true
	}
	return m.search.MatchString(text)
}

// HasSearch reports whether a search pattern is configured.
func (m *Matcher) HasSearch() bool {
	return m.search != nil
}

// HasReplace reports whether a replacement template is configured.
func (m *Matcher) HasReplace() bool {
	return m.replace != nil
}

// Search returns the configured search pattern, or nil.
func (m *Matcher) Search() *regexp.Regexp {
	return m.search
}

// Replace substitutes every non-overlapping match of the search pattern with
// the template. The template may reference groups as $1, ${1} or ${name}.
// Text without a match is handed back as is.
func (m *Matcher) Replace(text string) Replacement {
	if m.search == nil || m.replace == nil {
		return borrowed(text)
	}
	if !m.search.MatchString(text) {
		return borrowed(text)
	}
	out := m.search.ReplaceAllString(text, *m.replace)
	if out == text {
		return borrowed(text)
	}
	return owned(out)
}

// 📝 Replacement is the result of Matcher.Replace. It either refers to the
// input unchanged or holds newly built text.
type Replacement struct {
	text    string
	changed bool
}

func borrowed(text string) Replacement {
	return Replacement{text: text}
}

func owned(text string) Replacement {
	return Replacement{text: text, changed: true}
}

// String returns the resulting text.
func (r Replacement) String() string {
	return r.text
}

// Changed reports whether the result differs from the input.
func (r Replacement) Changed() bool {
	return r.changed
}

// Compile compiles an optional pattern. A nil expression yields a nil
// pattern and no error.
func Compile(expr *string) (*regexp.Regexp, error) {
	if expr == nil {
		return nil, nil
	}
	re, err := regexp.Compile(*expr)
	if err != nil {
		return nil, errors.Errorf("compiling %q: %w", *expr, err)
	}
	return re, nil
}
