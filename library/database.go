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
package library

import (
	"context"
	"time"

	"github.com/fincomb/fincomb/data"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const ratioRecordsTable = "ratio_records"

// Library is the analysis results database: every saved pipeline run
// plus the derived ratio records it produced.
type Library struct {
	DBUrl string
	Name  string
	Owner string

	Pool *pgxpool.Pool
}

// Connect to the database configured for the library
func (myLibrary *Library) Connect(ctx context.Context) error {
	if myLibrary.Pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, myLibrary.DBUrl)
	if err != nil {
		return err
	}
	myLibrary.Pool = pool

	return nil
}

// Close the database pool
func (myLibrary *Library) Close() {
	myLibrary.Pool.Close()
}

// NewFromDB creates a new library object with values from the database
func NewFromDB(ctx context.Context, dbURL string) (*Library, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	myLibrary := Library{
		DBUrl: dbURL,
		Pool:  pool,
	}

	if err := conn.QueryRow(ctx, "SELECT name, owner FROM library").Scan(&myLibrary.Name, &myLibrary.Owner); err != nil {
		conn.Release()
		pool.Close()
		return nil, err
	}

	conn.Release()
	return &myLibrary, nil
}

// SaveDB creates a new record in the library table for this library
func (myLibrary *Library) SaveDB(ctx context.Context) error {
	conn, err := myLibrary.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `INSERT INTO library ("name", "owner") VALUES ($1, $2)`, myLibrary.Name, myLibrary.Owner)
	return err
}

// SaveRun persists a run summary and the derived ratio records it
// produced. Records that fail to save are logged and skipped; one bad
// row does not abort the rest of the batch.
func (myLibrary *Library) SaveRun(ctx context.Context, run *data.AnalysisRun, records []*data.RatioRecord) error {
	conn, err := myLibrary.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if err := run.SaveDB(ctx, conn); err != nil {
		return err
	}

	saved := 0
	for _, record := range records {
		if err := record.SaveDB(ctx, ratioRecordsTable, run.ID, conn); err != nil {
			continue
		}
		saved++
	}

	log.Info().Str("RunID", run.ID.String()).Int("NumRecords", saved).Msg("saved analysis run")
	return nil
}

// NumRuns returns the total count of analysis runs stored in the library
func (myLibrary *Library) NumRuns(ctx context.Context) (int, error) {
	conn, err := myLibrary.Pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	count := 0
	err = conn.QueryRow(ctx, "SELECT count(*) FROM analysis_runs").Scan(&count)
	return count, err
}

// TotalRecords returns the total number of ratio records in the library
func (myLibrary *Library) TotalRecords(ctx context.Context) (int, error) {
	conn, err := myLibrary.Pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	count := 0
	err = conn.QueryRow(ctx, "SELECT count(*) FROM ratio_records").Scan(&count)
	return count, err
}

// LastUpdated returns the date the library last stored a run
func (myLibrary *Library) LastUpdated(ctx context.Context) (time.Time, error) {
	conn, err := myLibrary.Pool.Acquire(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer conn.Release()

	var lastUpdated time.Time
	err = conn.QueryRow(ctx, "SELECT coalesce(max(end_time), '0001-01-01'::timestamp) FROM analysis_runs").Scan(&lastUpdated)
	if err != nil {
		return time.Time{}, err
	}

	return lastUpdated, nil
}

// RunRow mirrors the analysis_runs table for scanning.
type RunRow struct {
	ID                  string    `db:"id"`
	StartTime           time.Time `db:"start_time"`
	EndTime             time.Time `db:"end_time"`
	BalanceSheetFile    string    `db:"balance_sheet_file"`
	IncomeStatementFile string    `db:"income_statement_file"`
	NumJoined           int       `db:"num_joined"`
	NumDuplicates       int       `db:"num_duplicates"`
	LatestYear          int       `db:"latest_year"`
	CreatedBy           string    `db:"created_by"`
}

// Runs returns the stored analysis runs, newest first.
func (myLibrary *Library) Runs(ctx context.Context) ([]*RunRow, error) {
	var runs []*RunRow
	err := pgxscan.Select(ctx, myLibrary.Pool, &runs,
		`SELECT id, start_time, end_time, balance_sheet_file, income_statement_file,
num_joined, num_duplicates, latest_year, coalesce(created_by, '') as created_by
FROM analysis_runs ORDER BY end_time DESC`)
	return runs, err
}
