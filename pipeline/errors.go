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
package pipeline

import (
	"fmt"
	"strings"

	"github.com/fincomb/fincomb/data"
)

// SchemaError reports required columns missing from an input table.
// It is the only fatal condition the pipeline raises: it is detected
// before any derived computation begins and no partial result is
// produced. Data-quality gaps (nulls, zero denominators, duplicate
// keys) are never errors.
type SchemaError struct {
	Table   string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing required columns: %s", e.Table, strings.Join(e.Columns, ", "))
}

// requireColumns returns a SchemaError naming every required column
// the frame does not declare, or nil when the schema is satisfied.
func requireColumns(frame *data.Frame, required []string) error {
	if missing := frame.MissingColumns(required); len(missing) > 0 {
		return &SchemaError{Table: frame.Name, Columns: missing}
	}
	return nil
}
