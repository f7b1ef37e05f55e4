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
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// RatioRecord is the flattened form of one derived row, used when
// persisting results to the library database or exporting to parquet.
// Nullable line items and ratios are pointers so SQL NULL and parquet
// OPTIONAL fields round-trip without sentinel values.
type RatioRecord struct {
	Company  string `json:"company" parquet:"name=company, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CompType string `json:"comp_type" parquet:"name=comp_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Year     int32  `json:"year" parquet:"name=year, type=INT32"`

	TotalAssets             *float64 `json:"total_assets" parquet:"name=total_assets, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalLiab               *float64 `json:"total_liab" parquet:"name=total_liab, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalStockholderEquity  *float64 `json:"total_stockholder_equity" parquet:"name=total_stockholder_equity, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalCurrentAssets      *float64 `json:"total_current_assets" parquet:"name=total_current_assets, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalCurrentLiabilities *float64 `json:"total_current_liabilities" parquet:"name=total_current_liabilities, type=DOUBLE, repetitiontype=OPTIONAL"`
	TotalRevenue            *float64 `json:"total_revenue" parquet:"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"`
	OperatingIncome         *float64 `json:"operating_income" parquet:"name=operating_income, type=DOUBLE, repetitiontype=OPTIONAL"`

	NetProfitMargin *float64 `json:"net_profit_margin" parquet:"name=net_profit_margin, type=DOUBLE, repetitiontype=OPTIONAL"`
	ROE             *float64 `json:"roe" parquet:"name=roe, type=DOUBLE, repetitiontype=OPTIONAL"`
	ROA             *float64 `json:"roa" parquet:"name=roa, type=DOUBLE, repetitiontype=OPTIONAL"`
	DebtToEquity    *float64 `json:"debt_to_equity" parquet:"name=debt_to_equity, type=DOUBLE, repetitiontype=OPTIONAL"`
	CurrentRatio    *float64 `json:"current_ratio" parquet:"name=current_ratio, type=DOUBLE, repetitiontype=OPTIONAL"`
}

// RatioRecordsFromFrame flattens a derived frame into records. Rows
// without a usable key (missing company or non-integer year) are
// skipped; the join has already dropped them from any keyed output.
func RatioRecordsFromFrame(frame *Frame) []*RatioRecord {
	records := make([]*RatioRecord, 0, len(frame.Rows))
	for _, row := range frame.Rows {
		year, ok := row.Get(ColYear).Int()
		if !ok {
			continue
		}

		record := &RatioRecord{
			Company:  row.Get(ColCompany).String(),
			CompType: row.Get(ColCompType).String(),
			Year:     int32(year),

			TotalAssets:             row.Get(ColTotalAssets).Float().Ptr(),
			TotalLiab:               row.Get(ColTotalLiab).Float().Ptr(),
			TotalStockholderEquity:  row.Get(ColTotalStockholderEquity).Float().Ptr(),
			TotalCurrentAssets:      row.Get(ColTotalCurrentAssets).Float().Ptr(),
			TotalCurrentLiabilities: row.Get(ColTotalCurrentLiabilities).Float().Ptr(),
			TotalRevenue:            row.Get(ColTotalRevenue).Float().Ptr(),
			OperatingIncome:         row.Get(ColOperatingIncome).Float().Ptr(),

			NetProfitMargin: row.Get(ColNetProfitMargin).Float().Ptr(),
			ROE:             row.Get(ColROE).Float().Ptr(),
			ROA:             row.Get(ColROA).Float().Ptr(),
			DebtToEquity:    row.Get(ColDebtToEquity).Float().Ptr(),
			CurrentRatio:    row.Get(ColCurrentRatio).Float().Ptr(),
		}
		records = append(records, record)
	}
	return records
}

// SaveDB writes the record to the given table, linked to the analysis
// run that produced it.
func (record *RatioRecord) SaveDB(ctx context.Context, tbl string, runID uuid.UUID, dbConn *pgxpool.Conn) error {
	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err := tx.Commit(ctx); err != nil {
			log.Error().Err(err).Msg("error committing ratio record transaction to database")
		}
	}()

	sql := fmt.Sprintf(`INSERT INTO %s (
		"run_id",
		"company",
		"comp_type",
		"year",
		"total_assets",
		"total_liab",
		"total_stockholder_equity",
		"total_current_assets",
		"total_current_liabilities",
		"total_revenue",
		"operating_income",
		"net_profit_margin",
		"roe",
		"roa",
		"debt_to_equity",
		"current_ratio"
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
	)`, tbl)

	_, err = tx.Exec(ctx, sql,
		runID,
		record.Company,
		record.CompType,
		record.Year,
		record.TotalAssets,
		record.TotalLiab,
		record.TotalStockholderEquity,
		record.TotalCurrentAssets,
		record.TotalCurrentLiabilities,
		record.TotalRevenue,
		record.OperatingIncome,
		record.NetProfitMargin,
		record.ROE,
		record.ROA,
		record.DebtToEquity,
		record.CurrentRatio,
	)
	if err != nil {
		log.Error().Err(err).Str("Company", record.Company).Int32("Year", record.Year).Msg("error saving ratio record to database")
	}

	return err
}
