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

// Column names follow the headers emitted by the statement exports we
// ingest; they are referenced through these constants everywhere else.
const (
	ColCompany  = "company"
	ColCompType = "comp_type"
	ColYear     = "Year"

	ColTotalAssets             = "Total Assets"
	ColTotalLiab               = "Total Liab"
	ColTotalStockholderEquity  = "Total Stockholder Equity"
	ColTotalCurrentAssets      = "Total Current Assets"
	ColTotalCurrentLiabilities = "Total Current Liabilities"

	ColTotalRevenue    = "Total Revenue"
	ColOperatingIncome = "Operating Income"

	ColNetProfitMargin = "Net_Profit_Margin"
	ColROE             = "ROE"
	ColROA             = "ROA"
	ColDebtToEquity    = "Debt_to_Equity"
	ColCurrentRatio    = "Current_Ratio"
)

// KeyColumns is the composite join key shared by both statement tables.
var KeyColumns = []string{ColCompany, ColCompType, ColYear}

// BalanceSheetColumns are the raw line items required from the balance
// sheet table.
var BalanceSheetColumns = []string{
	ColTotalAssets,
	ColTotalLiab,
	ColTotalStockholderEquity,
	ColTotalCurrentAssets,
	ColTotalCurrentLiabilities,
}

// IncomeStatementColumns are the raw line items required from the
// income statement table.
var IncomeStatementColumns = []string{
	ColTotalRevenue,
	ColOperatingIncome,
}

// RatioColumns lists the five derived ratio columns in report order.
var RatioColumns = []string{
	ColNetProfitMargin,
	ColROE,
	ColROA,
	ColDebtToEquity,
	ColCurrentRatio,
}
