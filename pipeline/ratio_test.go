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
package pipeline_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fincomb/fincomb/data"
	"github.com/fincomb/fincomb/pipeline"
)

// joinAndDerive runs the first two pipeline stages over a single
// balance sheet / income statement pair.
func joinAndDerive(bs, is data.Row) data.Row {
	joined, err := pipeline.Join(newBalanceSheet(bs), newIncomeStatement(is))
	Expect(err).ToNot(HaveOccurred())

	derived, err := pipeline.DeriveRatios(joined)
	Expect(err).ToNot(HaveOccurred())
	Expect(derived.Rows).To(HaveLen(1))
	return derived.Rows[0]
}

var _ = Describe("DeriveRatios", func() {
	Context("with the reference filing", func() {
		// company A, Tech, 2021: assets=100, equity=50, liab=50,
		// current assets=40, current liabilities=20, revenue=200,
		// operating income=20
		var row data.Row

		BeforeEach(func() {
			row = joinAndDerive(
				bsRow("A", "Tech", 2021, 100, 50, 50, 40, 20),
				isRow("A", "Tech", 2021, 200, 20),
			)
		})

		It("computes net profit margin from operating income", func() {
			Expect(row.Get(data.ColNetProfitMargin).Float().Float64).To(BeNumerically("~", 0.10, 1e-12))
		})

		It("computes ROE", func() {
			Expect(row.Get(data.ColROE).Float().Float64).To(BeNumerically("~", 0.40, 1e-12))
		})

		It("computes ROA", func() {
			Expect(row.Get(data.ColROA).Float().Float64).To(BeNumerically("~", 0.20, 1e-12))
		})

		It("computes debt to equity", func() {
			Expect(row.Get(data.ColDebtToEquity).Float().Float64).To(BeNumerically("~", 1.00, 1e-12))
		})

		It("computes current ratio", func() {
			Expect(row.Get(data.ColCurrentRatio).Float().Float64).To(BeNumerically("~", 2.00, 1e-12))
		})

		It("passes raw columns through unchanged", func() {
			Expect(row.Get(data.ColTotalAssets).Float().Float64).To(Equal(100.0))
			Expect(row.Get(data.ColCompany).String()).To(Equal("A"))
		})
	})

	Context("when stockholder equity is exactly zero", func() {
		It("nulls ROE and debt to equity but keeps the other ratios", func() {
			row := joinAndDerive(
				bsRow("A", "Tech", 2021, 100, 50, 0, 40, 20),
				isRow("A", "Tech", 2021, 200, 20),
			)

			Expect(row.Get(data.ColROE).IsNull()).To(BeTrue())
			Expect(row.Get(data.ColDebtToEquity).IsNull()).To(BeTrue())
			Expect(row.Get(data.ColROA).Float().Valid).To(BeTrue())
			Expect(row.Get(data.ColNetProfitMargin).Float().Valid).To(BeTrue())
		})

		It("nulls the ratio even when the numerator is also zero", func() {
			row := joinAndDerive(
				bsRow("A", "Tech", 2021, 100, 0, 0, 40, 20),
				isRow("A", "Tech", 2021, 200, 0),
			)

			Expect(row.Get(data.ColROE).IsNull()).To(BeTrue())
			Expect(row.Get(data.ColDebtToEquity).IsNull()).To(BeTrue())
		})
	})

	Context("with negative equity", func() {
		It("divides normally and keeps the sign", func() {
			row := joinAndDerive(
				bsRow("A", "Tech", 2021, 100, 150, -50, 40, 20),
				isRow("A", "Tech", 2021, 200, 20),
			)

			Expect(row.Get(data.ColROE).Float().Float64).To(BeNumerically("~", -0.40, 1e-12))
			Expect(row.Get(data.ColDebtToEquity).Float().Float64).To(BeNumerically("~", -3.00, 1e-12))
		})
	})

	Context("with null operands", func() {
		It("propagates a null numerator", func() {
			row := joinAndDerive(
				bsRow("A", "Tech", 2021, 100, 50, 50, 40, 20),
				data.Row{
					data.ColCompany:         data.Text("A"),
					data.ColCompType:        data.Text("Tech"),
					data.ColYear:            data.Number(2021),
					data.ColTotalRevenue:    data.Number(200),
					data.ColOperatingIncome: data.Null(),
				},
			)

			Expect(row.Get(data.ColNetProfitMargin).IsNull()).To(BeTrue())
			Expect(row.Get(data.ColROE).IsNull()).To(BeTrue())
			Expect(row.Get(data.ColROA).IsNull()).To(BeTrue())
			// formulas that do not use operating income still compute
			Expect(row.Get(data.ColDebtToEquity).Float().Valid).To(BeTrue())
			Expect(row.Get(data.ColCurrentRatio).Float().Valid).To(BeTrue())
		})

		It("propagates a null denominator", func() {
			row := joinAndDerive(
				data.Row{
					data.ColCompany:                 data.Text("A"),
					data.ColCompType:                data.Text("Tech"),
					data.ColYear:                    data.Number(2021),
					data.ColTotalAssets:             data.Number(100),
					data.ColTotalLiab:               data.Number(50),
					data.ColTotalStockholderEquity:  data.Number(50),
					data.ColTotalCurrentAssets:      data.Number(40),
					data.ColTotalCurrentLiabilities: data.Null(),
				},
				isRow("A", "Tech", 2021, 200, 20),
			)

			Expect(row.Get(data.ColCurrentRatio).IsNull()).To(BeTrue())
		})
	})

	Context("when a required raw column is missing", func() {
		It("fails with a SchemaError before computing anything", func() {
			frame := data.NewFrame("joined", append([]string{}, data.KeyColumns...))
			frame.Append(data.Row{
				data.ColCompany:  data.Text("A"),
				data.ColCompType: data.Text("Tech"),
				data.ColYear:     data.Number(2021),
			})

			_, err := pipeline.DeriveRatios(frame)
			Expect(err).To(HaveOccurred())

			var schemaErr *pipeline.SchemaError
			Expect(errors.As(err, &schemaErr)).To(BeTrue())
			Expect(schemaErr.Columns).To(ContainElement(data.ColTotalRevenue))
		})
	})

	It("does not mutate the input frame", func() {
		joined, err := pipeline.Join(
			newBalanceSheet(bsRow("A", "Tech", 2021, 100, 50, 50, 40, 20)),
			newIncomeStatement(isRow("A", "Tech", 2021, 200, 20)),
		)
		Expect(err).ToNot(HaveOccurred())

		_, err = pipeline.DeriveRatios(joined)
		Expect(err).ToNot(HaveOccurred())

		Expect(joined.Columns).ToNot(ContainElement(data.ColROE))
		Expect(joined.Rows[0].Get(data.ColROE).IsNull()).To(BeTrue())
	})
})
