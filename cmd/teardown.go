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
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/fincomb/fincomb/healthcheck"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// teardownCmd represents the teardown command
var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Remove the fincomb configuration and its healthcheck monitor",
	Long: `The teardown sub-command deletes the healthchecks.io monitor created by
init (when one is configured) and removes the configuration file. The
library database and the runs stored in it are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Remove the fincomb configuration and healthcheck monitor?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("failed to create wizard")
		}
		if !confirmed {
			return
		}

		if checkID := viper.GetString("healthchecks.checkid"); checkID != "" {
			if err := healthcheck.Delete(checkID); err != nil {
				log.Error().Err(err).Str("CheckID", checkID).Msg("could not delete healthcheck monitor")
			} else {
				log.Info().Str("CheckID", checkID).Msg("deleted healthcheck monitor")
			}
		}

		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configPath := filepath.Join(home, ".fincomb.toml")
		if err := os.Remove(configPath); err != nil {
			if os.IsNotExist(err) {
				log.Info().Str("ConfigFN", configPath).Msg("no configuration file to remove")
				return
			}
			log.Fatal().Err(err).Str("ConfigFN", configPath).Msg("could not remove configuration file")
		}

		log.Info().Str("ConfigFN", configPath).Msg("removed configuration file")
	},
}

func init() {
	rootCmd.AddCommand(teardownCmd)
}
