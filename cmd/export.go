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
	"github.com/fincomb/fincomb/backblaze"
	"github.com/fincomb/fincomb/data"
	"github.com/fincomb/fincomb/export"
	"github.com/fincomb/fincomb/loader"
	"github.com/fincomb/fincomb/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var upload bool

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <balance-sheet-file> <income-statement-file> <output.parquet>",
	Short: "Export derived ratio records to parquet",
	Long: `The export sub-command runs the join and ratio derivation stages and
writes the resulting records to a parquet file. With --upload the file
is also copied to the configured Backblaze B2 bucket.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		balanceSheet, err := loader.Load(args[0], "balance_sheet")
		if err != nil {
			log.Fatal().Err(err).Str("FileName", args[0]).Msg("could not load balance sheet")
		}

		incomeStatement, err := loader.Load(args[1], "income_statement")
		if err != nil {
			log.Fatal().Err(err).Str("FileName", args[1]).Msg("could not load income statement")
		}

		joined, err := pipeline.Join(balanceSheet, incomeStatement)
		if err != nil {
			log.Fatal().Err(err).Msg("could not join statement tables")
		}

		derived, err := pipeline.DeriveRatios(joined)
		if err != nil {
			log.Fatal().Err(err).Msg("could not derive ratios")
		}

		records := data.RatioRecordsFromFrame(derived)
		if err := export.Parquet(args[2], records); err != nil {
			log.Fatal().Err(err).Str("FileName", args[2]).Msg("could not export parquet file")
		}

		if upload {
			bucketName := viper.GetString("backblaze.bucket")
			if bucketName == "" {
				log.Fatal().Msg("backblaze.bucket is not configured")
			}
			if err := backblaze.Upload(args[2], bucketName, "ratios"); err != nil {
				log.Fatal().Err(err).Msg("could not upload export")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&upload, "upload", false, "upload the parquet file to Backblaze B2")
}
