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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fincomb/fincomb/data"
	"github.com/fincomb/fincomb/pipeline"
)

func roe(v float64) map[string]data.Float {
	return map[string]data.Float{data.ColROE: data.F(v)}
}

func companies(rows []data.Row) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Get(data.ColCompany).String())
	}
	return out
}

var _ = Describe("TopN", func() {
	It("restricts leaderboards to the most recent year across the whole dataset", func() {
		frame := newDerivedFrame(
			derivedRow("Old", "Tech", 2019, roe(9.0)),
			derivedRow("A", "Tech", 2021, roe(0.1)),
			// Retail's latest filing is 2020, but the global latest year is 2021
			derivedRow("R", "Retail", 2020, roe(5.0)),
		)

		boards, latestYear, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(latestYear).To(Equal(2021))
		Expect(boards).To(HaveKey("Tech"))
		Expect(boards).ToNot(HaveKey("Retail"))
		Expect(companies(boards["Tech"])).To(Equal([]string{"A"}))
	})

	It("sorts descending by the ranking column", func() {
		frame := newDerivedFrame(
			derivedRow("Low", "Tech", 2021, roe(0.1)),
			derivedRow("High", "Tech", 2021, roe(0.9)),
			derivedRow("Mid", "Tech", 2021, roe(0.5)),
		)

		boards, _, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies(boards["Tech"])).To(Equal([]string{"High", "Mid", "Low"}))
	})

	It("bounds every leaderboard at N rows", func() {
		frame := newDerivedFrame(
			derivedRow("A", "Tech", 2021, roe(0.5)),
			derivedRow("B", "Tech", 2021, roe(0.4)),
			derivedRow("C", "Tech", 2021, roe(0.3)),
			derivedRow("D", "Tech", 2021, roe(0.2)),
		)

		boards, _, err := pipeline.TopN(frame, data.ColROE, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(boards["Tech"]).To(HaveLen(2))
		Expect(companies(boards["Tech"])).To(Equal([]string{"A", "B"}))
	})

	It("keeps original relative order for ties", func() {
		frame := newDerivedFrame(
			derivedRow("First", "Tech", 2021, roe(0.5)),
			derivedRow("Second", "Tech", 2021, roe(0.5)),
			derivedRow("Third", "Tech", 2021, roe(0.5)),
		)

		boards, _, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies(boards["Tech"])).To(Equal([]string{"First", "Second", "Third"}))
	})

	It("sorts null ranking values last", func() {
		frame := newDerivedFrame(
			derivedRow("NoROE", "Tech", 2021, map[string]data.Float{data.ColROE: data.NullFloat()}),
			derivedRow("A", "Tech", 2021, roe(0.1)),
			derivedRow("B", "Tech", 2021, roe(-3.0)),
		)

		boards, _, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies(boards["Tech"])).To(Equal([]string{"A", "B", "NoROE"}))
	})

	It("is idempotent over unchanged input", func() {
		frame := newDerivedFrame(
			derivedRow("B", "Tech", 2021, roe(0.4)),
			derivedRow("A", "Tech", 2021, roe(0.4)),
			derivedRow("C", "Retail", 2021, roe(0.2)),
		)

		first, firstYear, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())

		second, secondYear, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())

		Expect(secondYear).To(Equal(firstYear))
		Expect(companies(second["Tech"])).To(Equal(companies(first["Tech"])))
		Expect(companies(second["Retail"])).To(Equal(companies(first["Retail"])))
	})

	It("does not mutate the input frame's row order", func() {
		frame := newDerivedFrame(
			derivedRow("Low", "Tech", 2021, roe(0.1)),
			derivedRow("High", "Tech", 2021, roe(0.9)),
		)

		_, _, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())

		Expect(frame.Rows[0].Get(data.ColCompany).String()).To(Equal("Low"))
		Expect(frame.Rows[1].Get(data.ColCompany).String()).To(Equal("High"))
	})

	It("returns an empty result when no row has an integer year", func() {
		frame := data.NewFrame("derived", append(append([]string{}, data.KeyColumns...), data.ColROE))
		frame.Append(data.Row{
			data.ColCompany:  data.Text("A"),
			data.ColCompType: data.Text("Tech"),
			data.ColYear:     data.Null(),
			data.ColROE:      data.Number(0.5),
		})

		boards, latestYear, err := pipeline.TopN(frame, data.ColROE, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(boards).To(BeEmpty())
		Expect(latestYear).To(Equal(0))
	})

	It("falls back to the default leaderboard size for non-positive N", func() {
		frame := newDerivedFrame(
			derivedRow("A", "Tech", 2021, roe(0.7)),
			derivedRow("B", "Tech", 2021, roe(0.6)),
			derivedRow("C", "Tech", 2021, roe(0.5)),
			derivedRow("D", "Tech", 2021, roe(0.4)),
			derivedRow("E", "Tech", 2021, roe(0.3)),
			derivedRow("F", "Tech", 2021, roe(0.2)),
		)

		boards, _, err := pipeline.TopN(frame, data.ColROE, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(boards["Tech"]).To(HaveLen(pipeline.DefaultTopN))
	})
})
