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
package data

import "strings"

// Row maps column names to cells. Columns absent from the map read as
// null; extra columns pass through the pipeline untouched.
type Row map[string]Cell

// Get returns the cell for a column, or the null cell when the row has
// no entry for it.
func (row Row) Get(column string) Cell {
	if cell, ok := row[column]; ok {
		return cell
	}
	return Null()
}

// Clone returns an independent copy of the row. Pipeline stages never
// mutate their input rows; stages that add columns clone first.
func (row Row) Clone() Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Frame is an ordered collection of rows with a declared column list.
// Each pipeline stage consumes a frame and returns a new one.
type Frame struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewFrame creates an empty frame with the given name and columns.
func NewFrame(name string, columns []string) *Frame {
	return &Frame{
		Name:    name,
		Columns: append([]string{}, columns...),
	}
}

// Append adds a row to the frame.
func (frame *Frame) Append(row Row) {
	frame.Rows = append(frame.Rows, row)
}

// HasColumn reports whether the frame declares the named column.
func (frame *Frame) HasColumn(name string) bool {
	for _, col := range frame.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required columns the frame does
// not declare, preserving the requested order.
func (frame *Frame) MissingColumns(required []string) []string {
	var missing []string
	for _, col := range required {
		if !frame.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// NullCounts reports, per column, the number of rows holding a null
// cell. The counts are diagnostic output only; they never alter the
// pipeline's behavior.
func (frame *Frame) NullCounts() map[string]int {
	counts := make(map[string]int, len(frame.Columns))
	for _, col := range frame.Columns {
		counts[col] = 0
	}
	for _, row := range frame.Rows {
		for _, col := range frame.Columns {
			if row.Get(col).IsNull() {
				counts[col]++
			}
		}
	}
	return counts
}

// DuplicateRows reports how many rows are exact copies of an earlier
// row across every declared column. Duplicate join keys fan out during
// the join, so this count surfaces them without correcting them.
func (frame *Frame) DuplicateRows() int {
	seen := make(map[string]bool, len(frame.Rows))
	duplicates := 0
	var sb strings.Builder
	for _, row := range frame.Rows {
		sb.Reset()
		for _, col := range frame.Columns {
			cell := row.Get(col)
			sb.WriteString(cell.String())
			// kind prefix keeps the text "1" distinct from the number 1
			sb.WriteByte(byte('0' + cell.Kind))
			sb.WriteByte(0x1f)
		}
		key := sb.String()
		if seen[key] {
			duplicates++
		}
		seen[key] = true
	}
	return duplicates
}
