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

var _ = Describe("Float", func() {
	It("round-trips through Ptr for valid values", func() {
		p := data.F(1.5).Ptr()
		Expect(p).ToNot(BeNil())
		Expect(*p).To(Equal(1.5))
	})

	It("maps null to a nil pointer", func() {
		Expect(data.NullFloat().Ptr()).To(BeNil())
	})
})

var _ = Describe("Cell", func() {
	Describe("Float", func() {
		It("exposes numeric cells as valid floats", func() {
			f := data.Number(2.5).Float()
			Expect(f.Valid).To(BeTrue())
			Expect(f.Float64).To(Equal(2.5))
		})

		It("treats text and null cells as null floats", func() {
			Expect(data.Text("50").Float().Valid).To(BeFalse())
			Expect(data.Null().Float().Valid).To(BeFalse())
		})
	})

	Describe("Int", func() {
		It("reads whole numbers", func() {
			year, ok := data.Number(2021).Int()
			Expect(ok).To(BeTrue())
			Expect(year).To(Equal(2021))
		})

		It("rejects fractional values", func() {
			_, ok := data.Number(2021.5).Int()
			Expect(ok).To(BeFalse())
		})

		It("rejects text and null cells", func() {
			_, ok := data.Text("2021").Int()
			Expect(ok).To(BeFalse())

			_, ok = data.Null().Int()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("FloatCell", func() {
		It("lifts valid floats into numeric cells", func() {
			Expect(data.FloatCell(data.F(0.4))).To(Equal(data.Number(0.4)))
		})

		It("lifts null floats into null cells", func() {
			Expect(data.FloatCell(data.NullFloat()).IsNull()).To(BeTrue())
		})
	})

	Describe("Equal", func() {
		It("distinguishes the text \"1\" from the number 1", func() {
			Expect(data.Text("1").Equal(data.Number(1))).To(BeFalse())
		})

		It("compares values within a kind", func() {
			Expect(data.Number(1).Equal(data.Number(1))).To(BeTrue())
			Expect(data.Number(1).Equal(data.Number(2))).To(BeFalse())
			Expect(data.Text("a").Equal(data.Text("a"))).To(BeTrue())
			Expect(data.Null().Equal(data.Null())).To(BeTrue())
		})
	})

	Describe("String", func() {
		It("renders numbers without trailing zeros", func() {
			Expect(data.Number(100).String()).To(Equal("100"))
			Expect(data.Number(0.5).String()).To(Equal("0.5"))
		})

		It("renders null as the empty string", func() {
			Expect(data.Null().String()).To(Equal(""))
		})
	})
})
