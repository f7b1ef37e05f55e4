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

import (
	"math"
	"strconv"
)

// Float is an explicitly nullable float64. It replaces implicit NaN
// propagation: every derived ratio, group mean, and correlation
// coefficient is a Float, and a Float with Valid=false is the single
// representation of "no value" throughout the pipeline.
type Float struct {
	Float64 float64
	Valid   bool
}

// F wraps a float64 in a valid Float.
func F(v float64) Float {
	return Float{Float64: v, Valid: true}
}

// NullFloat returns the null Float.
func NullFloat() Float {
	return Float{}
}

// Ptr returns a pointer to the value, or nil when the Float is null.
// Database and parquet writers use this to map nulls onto SQL NULL and
// OPTIONAL fields.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// CellKind discriminates the three value kinds a tabular cell may hold.
type CellKind int

const (
	NullCell CellKind = iota
	TextCell
	NumberCell
)

// Cell is one value in a tabular frame: text, a number, or null. Raw
// statement files carry text identifiers (company, comp_type) alongside
// numeric line items, so both kinds travel through the same row maps.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Text builds a text cell.
func Text(s string) Cell {
	return Cell{Kind: TextCell, Text: s}
}

// Number builds a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: NumberCell, Number: v}
}

// Null builds the null cell.
func Null() Cell {
	return Cell{Kind: NullCell}
}

// FloatCell lifts a nullable Float into a cell.
func FloatCell(f Float) Cell {
	if !f.Valid {
		return Null()
	}
	return Number(f.Float64)
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == NullCell
}

// Float returns the cell's numeric value as a nullable Float. Text
// cells have no numeric value and return null.
func (c Cell) Float() Float {
	if c.Kind != NumberCell {
		return NullFloat()
	}
	return F(c.Number)
}

// Int returns the cell's value as an integer when the cell is numeric
// and holds a whole number. Join keys (Year) are read through this.
func (c Cell) Int() (int, bool) {
	if c.Kind != NumberCell {
		return 0, false
	}
	if c.Number != math.Trunc(c.Number) {
		return 0, false
	}
	return int(c.Number), true
}

// String renders the cell for display and duplicate detection.
func (c Cell) String() string {
	switch c.Kind {
	case TextCell:
		return c.Text
	case NumberCell:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and value.
func (c Cell) Equal(other Cell) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case TextCell:
		return c.Text == other.Text
	case NumberCell:
		return c.Number == other.Number
	default:
		return true
	}
}
