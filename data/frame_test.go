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
package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fincomb/fincomb/data"
)

var _ = Describe("Row", func() {
	It("reads absent columns as null", func() {
		row := data.Row{"a": data.Number(1)}
		Expect(row.Get("missing").IsNull()).To(BeTrue())
	})

	It("clones independently", func() {
		row := data.Row{"a": data.Number(1)}
		clone := row.Clone()
		clone["a"] = data.Number(2)

		Expect(row.Get("a").Float().Float64).To(Equal(1.0))
	})
})

var _ = Describe("Frame", func() {
	Describe("MissingColumns", func() {
		It("reports required columns not declared, in request order", func() {
			frame := data.NewFrame("t", []string{"a", "c"})
			Expect(frame.MissingColumns([]string{"a", "b", "c", "d"})).To(Equal([]string{"b", "d"}))
		})

		It("is empty when everything is present", func() {
			frame := data.NewFrame("t", []string{"a", "b"})
			Expect(frame.MissingColumns([]string{"a", "b"})).To(BeEmpty())
		})
	})

	Describe("NullCounts", func() {
		It("counts nulls and absent cells per column", func() {
			frame := data.NewFrame("t", []string{"a", "b"})
			frame.Append(data.Row{"a": data.Number(1), "b": data.Null()})
			frame.Append(data.Row{"a": data.Number(2)})

			counts := frame.NullCounts()
			Expect(counts["a"]).To(Equal(0))
			Expect(counts["b"]).To(Equal(2))
		})

		It("reports zero for every column of an empty frame", func() {
			frame := data.NewFrame("t", []string{"a"})
			Expect(frame.NullCounts()).To(Equal(map[string]int{"a": 0}))
		})
	})

	Describe("DuplicateRows", func() {
		It("counts repeats of earlier rows", func() {
			frame := data.NewFrame("t", []string{"a", "b"})
			frame.Append(data.Row{"a": data.Text("x"), "b": data.Number(1)})
			frame.Append(data.Row{"a": data.Text("x"), "b": data.Number(1)})
			frame.Append(data.Row{"a": data.Text("x"), "b": data.Number(1)})
			frame.Append(data.Row{"a": data.Text("x"), "b": data.Number(2)})

			Expect(frame.DuplicateRows()).To(Equal(2))
		})

		It("does not conflate a text value with an equal-looking number", func() {
			frame := data.NewFrame("t", []string{"a"})
			frame.Append(data.Row{"a": data.Text("1")})
			frame.Append(data.Row{"a": data.Number(1)})

			Expect(frame.DuplicateRows()).To(Equal(0))
		})

		It("ignores columns the frame does not declare", func() {
			frame := data.NewFrame("t", []string{"a"})
			frame.Append(data.Row{"a": data.Number(1), "extra": data.Text("x")})
			frame.Append(data.Row{"a": data.Number(1), "extra": data.Text("y")})

			Expect(frame.DuplicateRows()).To(Equal(1))
		})
	})
})
