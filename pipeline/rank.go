// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package pipeline

import (
	"sort"

	"github.com/fincomb/fincomb/data"
)

// DefaultTopN is the leaderboard length used when the caller does not
// override it.
const DefaultTopN = 5

// TopN builds, for each industry, the leaderboard of the rows with the
// highest rankColumn value in the most recent fiscal year found
// anywhere in the input (a global maximum, not per-group). Sorting is
// descending and stable: ties keep their original relative order and
// null values sort after every valid value. Industries with no rows in
// the latest year are omitted. The input is never mutated, so a second
// invocation over the same frame yields an identical result.
//
// The returned year is the global latest year; when the frame holds no
// integer years the result is empty and the year is zero.
func TopN(frame *data.Frame, rankColumn string, n int) (map[string][]data.Row, int, error) {
	if err := requireColumns(frame, []string{data.ColCompType, data.ColYear, rankColumn}); err != nil {
		return nil, 0, err
	}

	if n <= 0 {
		n = DefaultTopN
	}

	latestYear := 0
	haveYear := false
	for _, row := range frame.Rows {
		year, ok := row.Get(data.ColYear).Int()
		if !ok {
			continue
		}
		if !haveYear || year > latestYear {
			latestYear = year
			haveYear = true
		}
	}

	boards := make(map[string][]data.Row)
	if !haveYear {
		return boards, 0, nil
	}

	for _, row := range frame.Rows {
		year, ok := row.Get(data.ColYear).Int()
		if !ok || year != latestYear {
			continue
		}
		industry := row.Get(data.ColCompType).String()
		boards[industry] = append(boards[industry], row)
	}

	for industry, rows := range boards {
		sort.SliceStable(rows, func(i, j int) bool {
			// descending with nulls last
			vi := rows[i].Get(rankColumn).Float()
			vj := rows[j].Get(rankColumn).Float()
			switch {
			case !vi.Valid:
				return false
			case !vj.Valid:
				return true
			default:
				return vi.Float64 > vj.Float64
			}
		})
		if len(rows) > n {
			rows = rows[:n]
		}
		boards[industry] = rows
	}

	return boards, latestYear, nil
}
