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
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fincomb/fincomb/data"
	"github.com/fincomb/fincomb/pipeline"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// leaderboardColumns are the ratio columns shown for each leaderboard
// entry alongside the company name.
var leaderboardColumns = []string{data.ColROE, data.ColNetProfitMargin, data.ColDebtToEquity}

// Input collects everything one pipeline run produced. The report is a
// pure function over it; nothing here reaches back into the pipeline.
type Input struct {
	BalanceSheetFile    string
	IncomeStatementFile string

	NumJoined     int
	NumDuplicates int
	NullCounts    map[string]int

	IndustryMeans     []pipeline.GroupMeans
	YearIndustryMeans []pipeline.GroupMeans

	Leaderboards map[string][]data.Row
	LatestYear   int
	TopN         int

	Correlations *pipeline.CorrelationMatrix
}

// Build renders the analysis results as a markdown document.
func Build(in *Input) string {
	p := message.NewPrinter(language.English)
	builder := &strings.Builder{}

	fmt.Fprintf(builder, "# Financial Ratio Analysis\n\n")
	fmt.Fprintf(builder, "Balance sheet: %s\n\n", in.BalanceSheetFile)
	fmt.Fprintf(builder, "Income statement: %s\n\n", in.IncomeStatementFile)

	writeDiagnostics(builder, p, in)
	writeIndustryMeans(builder, in)
	writeYearIndustryMeans(builder, in)
	writeLeaderboards(builder, in)
	writeCorrelations(builder, in)

	return builder.String()
}

func writeDiagnostics(builder *strings.Builder, p *message.Printer, in *Input) {
	builder.WriteString("## Data Quality\n\n")
	p.Fprintf(builder, "  * Joined Records: %d\n", in.NumJoined)
	p.Fprintf(builder, "  * Duplicate Rows: %d\n\n", in.NumDuplicates)

	columns := make([]string, 0, len(in.NullCounts))
	for col, count := range in.NullCounts {
		if count > 0 {
			columns = append(columns, col)
		}
	}

	if len(columns) == 0 {
		builder.WriteString("No null values detected.\n\n")
		return
	}

	sort.Strings(columns)
	builder.WriteString("| Column | Null Values |\n|---|---|\n")
	for _, col := range columns {
		p.Fprintf(builder, "| %s | %d |\n", col, in.NullCounts[col])
	}
	builder.WriteString("\n")
}

func writeIndustryMeans(builder *strings.Builder, in *Input) {
	builder.WriteString("## Average Ratios by Industry\n\n")
	writeMeansHeader(builder, "Industry")

	groups := append([]pipeline.GroupMeans{}, in.IndustryMeans...)
	pipeline.SortGroupMeans(groups)
	for _, group := range groups {
		fmt.Fprintf(builder, "| %s |", group.Key.Industry)
		for _, col := range data.RatioColumns {
			fmt.Fprintf(builder, " %s |", formatFloat(group.Means[col]))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}

func writeYearIndustryMeans(builder *strings.Builder, in *Input) {
	builder.WriteString("## Average Ratios by Year and Industry\n\n")
	writeMeansHeader(builder, "Year | Industry")

	groups := append([]pipeline.GroupMeans{}, in.YearIndustryMeans...)
	pipeline.SortGroupMeans(groups)
	for _, group := range groups {
		fmt.Fprintf(builder, "| %d | %s |", group.Key.Year, group.Key.Industry)
		for _, col := range data.RatioColumns {
			fmt.Fprintf(builder, " %s |", formatFloat(group.Means[col]))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}

func writeMeansHeader(builder *strings.Builder, keyHeader string) {
	fmt.Fprintf(builder, "| %s |", keyHeader)
	for _, col := range data.RatioColumns {
		fmt.Fprintf(builder, " %s |", col)
	}
	builder.WriteString("\n|---|")
	for range data.RatioColumns {
		builder.WriteString("---|")
	}
	if strings.Contains(keyHeader, "|") {
		builder.WriteString("---|")
	}
	builder.WriteString("\n")
}

func writeLeaderboards(builder *strings.Builder, in *Input) {
	fmt.Fprintf(builder, "## Top %d Companies by ROE (%d)\n\n", in.TopN, in.LatestYear)

	industries := make([]string, 0, len(in.Leaderboards))
	for industry := range in.Leaderboards {
		industries = append(industries, industry)
	}
	sort.Strings(industries)

	for _, industry := range industries {
		fmt.Fprintf(builder, "### %s\n\n", industry)
		builder.WriteString("| Company |")
		for _, col := range leaderboardColumns {
			fmt.Fprintf(builder, " %s |", col)
		}
		builder.WriteString("\n|---|")
		for range leaderboardColumns {
			builder.WriteString("---|")
		}
		builder.WriteString("\n")

		for _, row := range in.Leaderboards[industry] {
			fmt.Fprintf(builder, "| %s |", row.Get(data.ColCompany).String())
			for _, col := range leaderboardColumns {
				fmt.Fprintf(builder, " %s |", formatFloat(row.Get(col).Float()))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}
}

func writeCorrelations(builder *strings.Builder, in *Input) {
	builder.WriteString("## Ratio Correlations\n\n")
	if in.Correlations == nil {
		return
	}

	builder.WriteString("| |")
	for _, field := range in.Correlations.Fields {
		fmt.Fprintf(builder, " %s |", field)
	}
	builder.WriteString("\n|---|")
	for range in.Correlations.Fields {
		builder.WriteString("---|")
	}
	builder.WriteString("\n")

	for i, field := range in.Correlations.Fields {
		fmt.Fprintf(builder, "| %s |", field)
		for j := range in.Correlations.Fields {
			fmt.Fprintf(builder, " %s |", formatFloat(in.Correlations.Coef[i][j]))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}

// formatFloat renders a nullable value for the report; nulls show as
// "null" rather than being dropped or zeroed.
func formatFloat(f data.Float) string {
	if !f.Valid {
		return "null"
	}
	return fmt.Sprintf("%.4f", f.Float64)
}
