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
package loader

import (
	"errors"
	"io"

	"github.com/fincomb/fincomb/data"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook contains no sheets")

// XLSX loads spreadsheet statement exports. Only the first sheet is
// read; the first row is the header.
type XLSX struct{}

func (x *XLSX) Name() string {
	return "xlsx"
}

func (x *XLSX) Extensions() []string {
	return []string{"xlsx"}
}

func (x *XLSX) Read(r io.Reader, name string) (*data.Frame, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Error().Err(err).Str("Table", name).Msg("error closing workbook")
		}
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	header := rows[0]
	frame := data.NewFrame(name, header)
	for _, raw := range rows[1:] {
		row := make(data.Row, len(header))
		for idx, col := range header {
			if idx < len(raw) {
				row[col] = parseCell(raw[idx])
			} else {
				// excelize trims trailing empty cells
				row[col] = data.Null()
			}
		}
		frame.Append(row)
	}

	return frame, nil
}
