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

package status

import (
	"strconv"
)

// 📊 FileStatus is what happened to a file during a run
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusMatched              // File name passed the filter
	StatusListed               // Matched file was only printed
	StatusRewritten            // Contents were rewritten and committed
	StatusSearched             // Contents were searched
	StatusRenamed              // File was renamed
	StatusDeclined             // A proposed rename was turned down
	StatusSkipped              // File or directory was passed over
	StatusFailed               // An intended action failed
)

// statusOrder is the row order of the summary table
var statusOrder = []FileStatus{
	StatusMatched,
	StatusListed,
	StatusRewritten,
	StatusSearched,
	StatusRenamed,
	StatusDeclined,
	StatusSkipped,
	StatusFailed,
}

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusListed:
		return "listed"
	case StatusRewritten:
		return "rewritten"
	case StatusSearched:
		return "searched"
	case StatusRenamed:
		return "renamed"
	case StatusDeclined:
		return "declined"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📈 Summary tallies file outcomes and line counts of one run
type Summary struct {
	files map[FileStatus]int

	LinesChanged  int // Lines written in replaced form
	LinesDeclined int // Line replacements turned down
	MatchingLines int // Lines reported by a search
}

// 🏭 NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{
		files: make(map[FileStatus]int),
	}
}

// Track counts one file with the given status
func (s *Summary) Track(status FileStatus) {
	s.files[status]++
}

// Count returns how many files were tracked with status
func (s *Summary) Count(status FileStatus) int {
	return s.files[status]
}

// Failed reports whether any intended action failed
func (s *Summary) Failed() bool {
	return s.files[StatusFailed] > 0
}

// Rows returns the summary as label/value pairs, files first, then lines
func (s *Summary) Rows() [][]string {
	rows := make([][]string, 0, len(statusOrder)+3)
	for _, status := range statusOrder {
		rows = append(rows, []string{"files " + status.String(), strconv.Itoa(s.files[status])})
	}
	rows = append(rows,
		[]string{"lines changed", strconv.Itoa(s.LinesChanged)},
		[]string{"lines declined", strconv.Itoa(s.LinesDeclined)},
		[]string{"matching lines", strconv.Itoa(s.MatchingLines)},
	)
	return rows
}
