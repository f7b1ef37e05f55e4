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
	"math"

	"github.com/fincomb/fincomb/data"
)

// CorrelationMatrix is the symmetric field-by-field matrix of Pearson
// coefficients. Coef[i][j] correlates Fields[i] with Fields[j]; a null
// coefficient marks a pair with no complete observations or a field
// with zero variance, reported rather than omitted.
type CorrelationMatrix struct {
	Fields []string
	Coef   [][]data.Float
}

// At returns the coefficient for a pair of fields by name.
func (m *CorrelationMatrix) At(a, b string) data.Float {
	ai, bi := -1, -1
	for idx, field := range m.Fields {
		if field == a {
			ai = idx
		}
		if field == b {
			bi = idx
		}
	}
	if ai < 0 || bi < 0 {
		return data.NullFloat()
	}
	return m.Coef[ai][bi]
}

// Correlate computes the pairwise Pearson correlation matrix over the
// selected columns. Each pair uses only the rows where both columns
// are non-null (pairwise-complete observations), so different pairs
// may draw on different row subsets. The diagonal is exactly 1 for any
// column with non-zero variance over its available observations.
func Correlate(frame *data.Frame, columns []string) (*CorrelationMatrix, error) {
	if err := requireColumns(frame, columns); err != nil {
		return nil, err
	}

	matrix := &CorrelationMatrix{
		Fields: append([]string{}, columns...),
		Coef:   make([][]data.Float, len(columns)),
	}
	for i := range matrix.Coef {
		matrix.Coef[i] = make([]data.Float, len(columns))
	}

	for i := 0; i < len(columns); i++ {
		for j := i; j < len(columns); j++ {
			coef := pearson(frame, columns[i], columns[j], i == j)
			matrix.Coef[i][j] = coef
			matrix.Coef[j][i] = coef
		}
	}

	return matrix, nil
}

// pearson computes the Pearson coefficient for one column pair over
// pairwise-complete rows. Zero variance in either column yields null.
// The diagonal is pinned to exactly 1 instead of trusting floating
// point to land there.
func pearson(frame *data.Frame, colX, colY string, diagonal bool) data.Float {
	var (
		n                          float64
		sumX, sumY, sumXY          float64
		sumXSquared, sumYSquared   float64
	)

	for _, row := range frame.Rows {
		x := row.Get(colX).Float()
		y := row.Get(colY).Float()
		if !x.Valid || !y.Valid {
			continue
		}

		n++
		sumX += x.Float64
		sumY += y.Float64
		sumXY += x.Float64 * y.Float64
		sumXSquared += x.Float64 * x.Float64
		sumYSquared += y.Float64 * y.Float64
	}

	if n == 0 {
		return data.NullFloat()
	}

	varX := n*sumXSquared - sumX*sumX
	varY := n*sumYSquared - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return data.NullFloat()
	}

	if diagonal {
		return data.F(1)
	}

	return data.F((n*sumXY - sumX*sumY) / math.Sqrt(varX*varY))
}
