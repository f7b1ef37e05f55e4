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
package loader_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fincomb/fincomb/loader"
)

var _ = Describe("Load", func() {
	It("selects the format by file extension", func() {
		path := filepath.Join(GinkgoT().TempDir(), "statements.CSV")
		Expect(os.WriteFile(path, []byte("company,Year\nAcme,2021\n"), 0644)).To(Succeed())

		frame, err := loader.Load(path, "balance_sheet")
		Expect(err).ToNot(HaveOccurred())
		Expect(frame.Name).To(Equal("balance_sheet"))
		Expect(frame.Rows).To(HaveLen(1))
	})

	It("fails for an unregistered extension", func() {
		path := filepath.Join(GinkgoT().TempDir(), "statements.json")
		Expect(os.WriteFile(path, []byte("{}"), 0644)).To(Succeed())

		_, err := loader.Load(path, "balance_sheet")
		Expect(err).To(MatchError(loader.ErrUnknownFormat))
	})

	It("fails when the file does not exist", func() {
		_, err := loader.Load(filepath.Join(GinkgoT().TempDir(), "missing.csv"), "balance_sheet")
		Expect(err).To(HaveOccurred())
	})
})
