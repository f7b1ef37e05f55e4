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
	"fmt"
	"strings"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary returns a description of the library in markdown
func (myLibrary *Library) Summary(ctx context.Context) (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString(fmt.Sprintf("# %s\n", myLibrary.Name))
	builder.WriteString("## Details\n\n")
	builder.WriteString(fmt.Sprintf("Owner: %s\n\n", myLibrary.Owner))
	builder.WriteString(fmt.Sprintf("Database: %s\n\n", myLibrary.DBUrl))

	numRuns, err := myLibrary.NumRuns(ctx)
	if err != nil {
		return "", err
	}
	p.Fprintf(&builder, "  * Analysis Runs: %d\n", numRuns)

	totalRecords, err := myLibrary.TotalRecords(ctx)
	if err != nil {
		return "", err
	}
	p.Fprintf(&builder, "  * Ratio Records: %d\n\n", totalRecords)

	lastUpdated, err := myLibrary.LastUpdated(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(fmt.Sprintf("Last updated: %s\n\n", timeago.English.Format(lastUpdated)))

	runs, err := myLibrary.Runs(ctx)
	if err != nil {
		return "", err
	}

	if len(runs) > 0 {
		builder.WriteString("## Recent Runs\n\n")
		builder.WriteString("| Run | Finished | Joined | Duplicates | Latest Year |\n")
		builder.WriteString("|---|---|---|---|---|\n")
		for idx, run := range runs {
			if idx == 10 {
				break
			}
			p.Fprintf(&builder, "| %s | %s | %d | %d | %d |\n",
				run.ID[:8], timeago.English.Format(run.EndTime), run.NumJoined, run.NumDuplicates, run.LatestYear)
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
