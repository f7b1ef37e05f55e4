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
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// AnalysisRun records one execution of the pipeline: where the inputs
// came from, how many rows survived the join, and the data-quality
// diagnostics (null counts, duplicate rows) collected along the way.
// Diagnostics are informational; a run with gaps is still a successful
// run.
type AnalysisRun struct {
	ID uuid.UUID

	StartTime time.Time
	EndTime   time.Time

	BalanceSheetFile    string
	IncomeStatementFile string

	NumJoined     int
	NumDuplicates int
	NullCounts    map[string]int

	LatestYear int
	CreatedBy  string
}

// SaveDB writes the run summary to the analysis_runs table. Null
// counts are stored as a JSONB document keyed by column name.
func (run *AnalysisRun) SaveDB(ctx context.Context, dbConn *pgxpool.Conn) error {
	nullCounts, err := json.Marshal(run.NullCounts)
	if err != nil {
		return err
	}

	_, err = dbConn.Exec(ctx, `INSERT INTO analysis_runs (
		"id",
		"start_time",
		"end_time",
		"balance_sheet_file",
		"income_statement_file",
		"num_joined",
		"num_duplicates",
		"null_counts",
		"latest_year",
		"created_by"
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`,
		run.ID,
		run.StartTime,
		run.EndTime,
		run.BalanceSheetFile,
		run.IncomeStatementFile,
		run.NumJoined,
		run.NumDuplicates,
		nullCounts,
		run.LatestYear,
		run.CreatedBy,
	)
	if err != nil {
		log.Error().Err(err).Str("RunID", run.ID.String()).Msg("error saving analysis run to database")
	}

	return err
}
