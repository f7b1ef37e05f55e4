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
	"github.com/fincomb/fincomb/data"
)

// joinKey is the composite key both statement tables share.
type joinKey struct {
	company  string
	compType string
	year     int
}

// rowKey extracts the join key from a row. Rows with a null company or
// comp_type, or without an integer year, cannot participate in the
// join and report ok=false.
func rowKey(row data.Row) (joinKey, bool) {
	company := row.Get(data.ColCompany)
	compType := row.Get(data.ColCompType)
	if company.IsNull() || compType.IsNull() {
		return joinKey{}, false
	}

	year, ok := row.Get(data.ColYear).Int()
	if !ok {
		return joinKey{}, false
	}

	return joinKey{
		company:  company.String(),
		compType: compType.String(),
		year:     year,
	}, true
}

// Join performs an inner join of the two statement frames on
// (company, comp_type, Year). Standard relational semantics apply: a
// left row appears once per matching right row, so duplicate keys fan
// out rather than fail. Keys present in only one input are silently
// dropped. Output rows carry the union of both sides' columns with the
// key columns appearing once, ordered by left row order and then right
// row order within a key.
func Join(left, right *data.Frame) (*data.Frame, error) {
	if err := requireColumns(left, data.KeyColumns); err != nil {
		return nil, err
	}
	if err := requireColumns(right, data.KeyColumns); err != nil {
		return nil, err
	}

	// index the right side, preserving row order per key
	index := make(map[joinKey][]data.Row, len(right.Rows))
	for _, row := range right.Rows {
		key, ok := rowKey(row)
		if !ok {
			continue
		}
		index[key] = append(index[key], row)
	}

	columns := append([]string{}, left.Columns...)
	for _, col := range right.Columns {
		if !left.HasColumn(col) {
			columns = append(columns, col)
		}
	}

	joined := data.NewFrame("joined", columns)
	for _, leftRow := range left.Rows {
		key, ok := rowKey(leftRow)
		if !ok {
			continue
		}

		for _, rightRow := range index[key] {
			merged := leftRow.Clone()
			for _, col := range right.Columns {
				if col == data.ColCompany || col == data.ColCompType || col == data.ColYear {
					continue
				}
				merged[col] = rightRow.Get(col)
			}
			joined.Append(merged)
		}
	}

	return joined, nil
}
