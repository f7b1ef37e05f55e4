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
	"bytes"
	"encoding/csv"
	"io"

	"github.com/fincomb/fincomb/data"
	"github.com/gocarina/gocsv"
)

// CSV loads comma-separated statement exports. The first row is the
// header; column order in the file becomes column order in the frame.
type CSV struct{}

func (c *CSV) Name() string {
	return "csv"
}

func (c *CSV) Extensions() []string {
	return []string{"csv"}
}

func (c *CSV) Read(r io.Reader, name string) (*data.Frame, error) {
	// read the header separately so the frame preserves column order;
	// gocsv's map decoding keys cells by header name
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	header, err := csv.NewReader(bytes.NewReader(content)).Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTable
		}
		return nil, err
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	frame := data.NewFrame(name, header)
	for _, raw := range rows {
		row := make(data.Row, len(header))
		for _, col := range header {
			row[col] = parseCell(raw[col])
		}
		frame.Append(row)
	}

	return frame, nil
}
