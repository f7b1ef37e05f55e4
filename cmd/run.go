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
package cmd

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fincomb/fincomb/data"
	"github.com/fincomb/fincomb/healthcheck"
	"github.com/fincomb/fincomb/library"
	"github.com/fincomb/fincomb/loader"
	"github.com/fincomb/fincomb/pipeline"
	"github.com/fincomb/fincomb/report"
	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <balance-sheet-file> <income-statement-file>",
	Short: "Run the ratio analysis pipeline",
	Long: `The run sub-command loads the two statement exports, joins them on
(company, comp_type, Year), derives the five financial ratios, and prints
the analysis report: industry averages, industry averages by year, the
top companies by ROE in the most recent year, and the ratio correlation
matrix.

Data-quality gaps never abort a run: zero denominators and missing line
items produce null ratios, which are excluded from averages and reported
in the diagnostics section. Only a missing required column stops the
pipeline.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		startTime := time.Now()
		checkID := viper.GetString("healthchecks.checkid")

		if err := runAnalysis(ctx, args[0], args[1], startTime); err != nil {
			if checkID != "" {
				if pingErr := healthcheck.Fail(checkID); pingErr != nil {
					log.Error().Err(pingErr).Msg("could not signal failed run to healthcheck")
				}
			}
			log.Fatal().Err(err).Msg("analysis failed")
		}

		if checkID != "" {
			if err := healthcheck.Ping(checkID); err != nil {
				log.Error().Err(err).Msg("could not ping healthcheck")
			}
		}
	},
}

// runAnalysis executes the pipeline over the two statement exports and
// renders the report. It returns instead of exiting on failure so the
// caller can signal a monitored run before terminating.
func runAnalysis(ctx context.Context, balanceSheetFile, incomeStatementFile string, startTime time.Time) error {
	balanceSheet, err := loader.Load(balanceSheetFile, "balance_sheet")
	if err != nil {
		return fmt.Errorf("load balance sheet %s: %w", balanceSheetFile, err)
	}

	incomeStatement, err := loader.Load(incomeStatementFile, "income_statement")
	if err != nil {
		return fmt.Errorf("load income statement %s: %w", incomeStatementFile, err)
	}

	joined, err := pipeline.Join(balanceSheet, incomeStatement)
	if err != nil {
		return fmt.Errorf("join statement tables: %w", err)
	}

	derived, err := pipeline.DeriveRatios(joined)
	if err != nil {
		return fmt.Errorf("derive ratios: %w", err)
	}

	industryMeans, err := pipeline.Aggregate(derived, pipeline.ByIndustry, data.RatioColumns)
	if err != nil {
		return fmt.Errorf("aggregate by industry: %w", err)
	}

	yearIndustryMeans, err := pipeline.Aggregate(derived, pipeline.ByYearIndustry, data.RatioColumns)
	if err != nil {
		return fmt.Errorf("aggregate by year and industry: %w", err)
	}

	topN := viper.GetInt("ranking.topn")
	if topN <= 0 {
		topN = pipeline.DefaultTopN
	}
	boards, latestYear, err := pipeline.TopN(derived, data.ColROE, topN)
	if err != nil {
		return fmt.Errorf("rank companies: %w", err)
	}

	correlations, err := pipeline.Correlate(derived, data.RatioColumns)
	if err != nil {
		return fmt.Errorf("compute correlations: %w", err)
	}

	numDuplicates := joined.DuplicateRows()
	nullCounts := joined.NullCounts()

	doc := report.Build(&report.Input{
		BalanceSheetFile:    balanceSheetFile,
		IncomeStatementFile: incomeStatementFile,
		NumJoined:           len(derived.Rows),
		NumDuplicates:       numDuplicates,
		NullCounts:          nullCounts,
		IndustryMeans:       industryMeans,
		YearIndustryMeans:   yearIndustryMeans,
		Leaderboards:        boards,
		LatestYear:          latestYear,
		TopN:                topN,
		Correlations:        correlations,
	})

	r, _ := glamour.NewTermRenderer(
		// detect background color and pick either the default dark or light theme
		glamour.WithAutoStyle(),
		// wrap output at specific width (default is 80)
		glamour.WithWordWrap(120),
	)

	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("render analysis report: %w", err)
	}

	fmt.Print(out)

	endTime := time.Now()

	if viper.GetBool("save") {
		run := &data.AnalysisRun{
			ID:                  uuid.New(),
			StartTime:           startTime,
			EndTime:             endTime,
			BalanceSheetFile:    balanceSheetFile,
			IncomeStatementFile: incomeStatementFile,
			NumJoined:           len(derived.Rows),
			NumDuplicates:       numDuplicates,
			NullCounts:          nullCounts,
			LatestYear:          latestYear,
		}

		if currentUser, err := user.Current(); err == nil {
			run.CreatedBy = currentUser.Username
		}

		myLibrary, err := library.NewFromDB(ctx, viper.GetString("db.url"))
		if err != nil {
			return fmt.Errorf("connect to library: %w", err)
		}
		defer myLibrary.Close()

		records := data.RatioRecordsFromFrame(derived)
		if err := myLibrary.SaveRun(ctx, run, records); err != nil {
			return fmt.Errorf("save analysis run: %w", err)
		}
	}

	runTime := endTime.Sub(startTime)
	log.Info().Str("RunTime", durafmt.Parse(runTime).String()).Int("NumJoined", len(derived.Rows)).
		Int("LatestYear", latestYear).Msg("analysis complete")
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("top", "n", pipeline.DefaultTopN, "number of companies per leaderboard")
	if err := viper.BindPFlag("ranking.topn", runCmd.Flags().Lookup("top")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for top failed")
	}

	runCmd.Flags().Bool("save", false, "save results to the library database")
	if err := viper.BindPFlag("save", runCmd.Flags().Lookup("save")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for save failed")
	}
}
