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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fincomb/fincomb/db"
	"github.com/fincomb/fincomb/healthcheck"
	"github.com/fincomb/fincomb/library"
	"github.com/fincomb/fincomb/pipeline"
	"github.com/golang-migrate/migrate/v4"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type configFile struct {
	DB struct {
		URL string `toml:"url"`
	} `toml:"db"`
	Ranking struct {
		TopN int `toml:"topn"`
	} `toml:"ranking"`
	HealthChecks struct {
		APIKey  string `toml:"apikey,omitempty"`
		CheckID string `toml:"checkid,omitempty"`
	} `toml:"healthchecks"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather library configuration and setup the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var (
			monitored bool
			topN      = strconv.Itoa(pipeline.DefaultTopN)
			apiKey    string
		)

		myLibrary := &library.Library{}

		form := huh.NewForm(
			// Gather details about the library and who owns it
			huh.NewGroup(
				huh.NewInput().
					Title("Give the library a name:").
					Value(&myLibrary.Name),

				huh.NewInput().
					Title("Who owns the library?").
					Value(&myLibrary.Owner),
			),

			// Get details about the database
			huh.NewGroup(
				huh.NewInput().
					Title("Provide the DSN for connecting to your PostgreSQL database (postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...])").
					Value(&myLibrary.DBUrl).
					Validate(func(dsn string) error {
						_, err := pgx.ParseConfig(dsn)
						return err
					}),
			),

			// Analysis defaults
			huh.NewGroup(
				huh.NewInput().
					Title("How many companies per leaderboard?").
					Value(&topN).
					Validate(func(val string) error {
						n, err := strconv.Atoi(val)
						if err != nil {
							return err
						}
						if n <= 0 {
							return errors.New("must be a positive integer")
						}
						return nil
					}),

				huh.NewConfirm().
					Title("Should a healthchecks.io monitor be created for scheduled runs?").
					Value(&monitored),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("failed to create wizard")
		}

		if monitored {
			keyForm := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Provide your healthchecks.io API key:").
						Value(&apiKey),
				),
			)
			if err := keyForm.Run(); err != nil {
				log.Fatal().Err(err).Msg("failed to create wizard")
			}
		}

		if err := db.Migrate(myLibrary.DBUrl); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("could not initialize database schema")
		}

		if err := myLibrary.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to library")
		}
		defer myLibrary.Close()

		if err := myLibrary.SaveDB(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not save library record")
		}

		config := configFile{}
		config.DB.URL = myLibrary.DBUrl
		config.Ranking.TopN, _ = strconv.Atoi(topN)

		if monitored {
			config.HealthChecks.APIKey = apiKey
			checkSlug := slug.Make(fmt.Sprintf("fincomb %s", myLibrary.Name))
			checkID, err := healthcheck.Create(
				fmt.Sprintf("fincomb %s", myLibrary.Name),
				checkSlug,
				[]string{"fincomb"},
				"0 6 * * 1-5",
			)
			if err != nil {
				log.Error().Err(err).Msg("could not create healthcheck monitor")
			} else {
				config.HealthChecks.CheckID = checkID
			}
		}

		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configPath := filepath.Join(home, ".fincomb.toml")
		configBytes, err := toml.Marshal(config)
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize configuration")
		}

		if err := os.WriteFile(configPath, configBytes, 0600); err != nil {
			log.Fatal().Err(err).Str("ConfigFN", configPath).Msg("could not write configuration file")
		}

		// Print library summary
		{
			var sb strings.Builder
			keyword := func(s string) string {
				return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
			}

			isMonitored := "no"
			if config.HealthChecks.CheckID != "" {
				isMonitored = "yes"
			}

			fmt.Fprintf(&sb,
				"%s\n\nName: %s\nOwner: %s\nDatabase: %s\nLeaderboard size: %s\nMonitored: %s\nConfig: %s\n",
				lipgloss.NewStyle().Bold(true).Render("NEW LIBRARY"),
				keyword(myLibrary.Name),
				keyword(myLibrary.Owner),
				keyword(myLibrary.DBUrl),
				keyword(topN),
				keyword(isMonitored),
				keyword(configPath),
			)

			fmt.Println(
				lipgloss.NewStyle().
					Width(60).
					BorderStyle(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("63")).
					Padding(1, 2).
					Render(sb.String()),
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
