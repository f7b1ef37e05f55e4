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
package export

import (
	"github.com/fincomb/fincomb/data"
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// Parquet writes the derived ratio records to a parquet file. Null
// line items and ratios become parquet OPTIONAL nulls.
func Parquet(fn string, records []*data.RatioRecord) error {
	fw, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create parquet file")
		return err
	}
	defer func() {
		if err := fw.Close(); err != nil {
			log.Error().Err(err).Str("FileName", fn).Msg("error closing parquet file")
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(data.RatioRecord), 1)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create parquet writer")
		return err
	}

	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := pw.Write(record); err != nil {
			log.Error().Err(err).Str("Company", record.Company).Msg("cannot write ratio record to parquet")
			return err
		}
	}

	if err := pw.WriteStop(); err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot finalize parquet file")
		return err
	}

	log.Info().Str("FileName", fn).Int("NumRecords", len(records)).Msg("exported ratio records to parquet")
	return nil
}
