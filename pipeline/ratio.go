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

// Operating income stands in for net income in every profitability
// ratio. This isolates operational performance from non-operating
// items such as taxes, interest, and one-off charges.
const netIncomeProxy = data.ColOperatingIncome

// ratioFormulas defines the five derived columns. Each is a plain
// quotient of two raw line items.
var ratioFormulas = []struct {
	Column      string
	Numerator   string
	Denominator string
}{
	{data.ColNetProfitMargin, netIncomeProxy, data.ColTotalRevenue},
	{data.ColROE, netIncomeProxy, data.ColTotalStockholderEquity},
	{data.ColROA, netIncomeProxy, data.ColTotalAssets},
	{data.ColDebtToEquity, data.ColTotalLiab, data.ColTotalStockholderEquity},
	{data.ColCurrentRatio, data.ColTotalCurrentAssets, data.ColTotalCurrentLiabilities},
}

// divide computes num/den under the pipeline's gap rules: a null
// operand or a denominator of exactly zero yields null, never an
// arithmetic fault and never a silent zero. Negative denominators
// divide normally.
func divide(num, den data.Float) data.Float {
	if !num.Valid || !den.Valid || den.Float64 == 0 {
		return data.NullFloat()
	}
	return data.F(num.Float64 / den.Float64)
}

// DeriveRatios extends every joined row with the five ratio columns.
// All other columns pass through unchanged. The input frame must carry
// every raw line item referenced by a formula; a missing column is a
// SchemaError, a missing value in a present column is a null ratio.
func DeriveRatios(frame *data.Frame) (*data.Frame, error) {
	required := append([]string{}, data.BalanceSheetColumns...)
	required = append(required, data.IncomeStatementColumns...)
	if err := requireColumns(frame, required); err != nil {
		return nil, err
	}

	columns := append([]string{}, frame.Columns...)
	for _, formula := range ratioFormulas {
		columns = append(columns, formula.Column)
	}

	derived := data.NewFrame("derived", columns)
	for _, row := range frame.Rows {
		out := row.Clone()
		for _, formula := range ratioFormulas {
			num := row.Get(formula.Numerator).Float()
			den := row.Get(formula.Denominator).Float()
			out[formula.Column] = data.FloatCell(divide(num, den))
		}
		derived.Append(out)
	}

	return derived, nil
}
