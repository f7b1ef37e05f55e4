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
	"errors"

	"github.com/fincomb/fincomb/db"
	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply library database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		err := db.Migrate(viper.GetString("db.url"))
		if err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.Info().Msg("database schema is up to date")
				return
			}
			log.Fatal().Err(err).Msg("could not migrate database")
		}

		log.Info().Msg("database migrations applied")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
