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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fincomb/fincomb/data"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownFormat = errors.New("no loader registered for file format")
	ErrEmptyTable    = errors.New("table has no header row")
)

// Format reads one tabular file format into a frame. The frame name is
// supplied by the caller and identifies the table in schema errors.
type Format interface {
	Name() string
	Extensions() []string
	Read(r io.Reader, name string) (*data.Frame, error)
}

// Map registers the available formats by file extension.
var Map = map[string]Format{}

func register(format Format) {
	for _, ext := range format.Extensions() {
		Map[ext] = format
	}
}

func init() {
	register(&CSV{})
	register(&XLSX{})
}

// Load reads the file at path into a frame, selecting the format by
// file extension.
func Load(path, name string) (*data.Frame, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format, ok := Map[ext]
	if !ok {
		log.Error().Str("Path", path).Str("Extension", ext).Msg("unknown statement file format")
		return nil, ErrUnknownFormat
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	frame, err := format.Read(fh, name)
	if err != nil {
		return nil, err
	}

	log.Info().Str("Path", path).Str("Table", name).Int("Rows", len(frame.Rows)).Msg("loaded statement file")
	return frame, nil
}

// parseCell converts one raw text value into a cell: empty strings are
// null, values that parse as floats are numbers, everything else is
// text.
func parseCell(raw string) data.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return data.Null()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return data.Number(v)
	}
	return data.Text(trimmed)
}
