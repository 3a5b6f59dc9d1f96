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
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 🎯 FormatSummary renders s as a two column table
func FormatSummary(s *Summary) (string, error) {
	data := append([][]string{{"outcome", "count"}}, s.Rows()...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}
