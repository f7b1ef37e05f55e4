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

// Grouping selects the aggregation dimensions. A typed key avoids
// stringly-typed column lists at the call sites.
type Grouping int

const (
	// ByIndustry groups on comp_type alone.
	ByIndustry Grouping = iota
	// ByYearIndustry groups on (Year, comp_type).
	ByYearIndustry
)

// GroupKey identifies one partition. Year is meaningful only for
// ByYearIndustry groupings and is zero otherwise.
type GroupKey struct {
	Year     int
	Industry string
}

// GroupMeans holds the per-column arithmetic means for one partition.
// A column with no non-null observations in the partition has a null
// mean.
type GroupMeans struct {
	Key   GroupKey
	Means map[string]data.Float
}

// Aggregate partitions the frame by the grouping key and computes, per
// requested column, the arithmetic mean over non-null values only.
// Null ratios are excluded from the mean, not treated as zero. Group
// order in the result is first-seen row order; callers needing a
// canonical order sort explicitly (see SortGroupMeans).
func Aggregate(frame *data.Frame, grouping Grouping, columns []string) ([]GroupMeans, error) {
	required := append([]string{data.ColCompType}, columns...)
	if grouping == ByYearIndustry {
		required = append(required, data.ColYear)
	}
	if err := requireColumns(frame, required); err != nil {
		return nil, err
	}

	type accumulator struct {
		sum   map[string]float64
		count map[string]int
	}

	order := make([]GroupKey, 0)
	partitions := make(map[GroupKey]*accumulator)

	for _, row := range frame.Rows {
		key := GroupKey{Industry: row.Get(data.ColCompType).String()}
		if grouping == ByYearIndustry {
			year, ok := row.Get(data.ColYear).Int()
			if !ok {
				continue
			}
			key.Year = year
		}

		acc, ok := partitions[key]
		if !ok {
			acc = &accumulator{
				sum:   make(map[string]float64, len(columns)),
				count: make(map[string]int, len(columns)),
			}
			partitions[key] = acc
			order = append(order, key)
		}

		for _, col := range columns {
			value := row.Get(col).Float()
			if !value.Valid {
				continue
			}
			acc.sum[col] += value.Float64
			acc.count[col]++
		}
	}

	groups := make([]GroupMeans, 0, len(order))
	for _, key := range order {
		acc := partitions[key]
		means := make(map[string]data.Float, len(columns))
		for _, col := range columns {
			if acc.count[col] == 0 {
				means[col] = data.NullFloat()
				continue
			}
			means[col] = data.F(acc.sum[col] / float64(acc.count[col]))
		}
		groups = append(groups, GroupMeans{Key: key, Means: means})
	}

	return groups, nil
}

// SortGroupMeans orders groups chronologically, then by industry name.
// Aggregate itself leaves group order unspecified.
func SortGroupMeans(groups []GroupMeans) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Key.Year != groups[j].Key.Year {
			return groups[i].Key.Year < groups[j].Key.Year
		}
		return groups[i].Key.Industry < groups[j].Key.Industry
	})
}
