/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package selene_test

import (
	"github.com/botobag/selene"
	"github.com/botobag/selene/concurrent/future"
	"github.com/botobag/selene/internal/testutil"
	"github.com/botobag/selene/sdl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseSchema", func() {
	It("parses SDL text into a document", func() {
		document, err := selene.ParseSchema(`type Hello {
  str: String
}`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(document.Definitions).Should(HaveLen(1))
		Expect(document.Definitions[0].TypeName().Value()).Should(Equal("Hello"))
	})

	It("reports syntax errors", func() {
		_, err := selene.ParseSchema("type Hello { }")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageContainSubstring("Expected Name, found }"),
			testutil.KindIs(sdl.ErrKindSyntax),
		))
	})
})

var _ = Describe("CreateSchema", func() {
	It("parses and materializes in one call", func() {
		schema, err := selene.CreateSchema(`type Hello {
  str(int: Int = 2): String
}`, "Hello")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.Query().Name()).Should(Equal("Hello"))
	})

	It("fails on an unknown query type", func() {
		_, err := selene.CreateSchema(`type Hello {
  str: String
}`, "Wat")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Specified query type Wat not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedQueryType),
		))
	})
})

var _ = Describe("CreateSchemaAsync", func() {
	It("resolves to the same schema CreateSchema would produce", func() {
		f := selene.CreateSchemaAsync(`type Hello {
  str: String
}`, "Hello")

		result, err := future.BlockOn(f)
		Expect(err).ShouldNot(HaveOccurred())

		schema, ok := result.(*sdl.Schema)
		Expect(ok).Should(BeTrue())
		Expect(schema.Query().Name()).Should(Equal("Hello"))
	})

	It("resolves to an error on a malformed document", func() {
		f := selene.CreateSchemaAsync("type", "Hello")

		_, err := future.BlockOn(f)
		Expect(err).Should(testutil.MatchSDLError(
			testutil.KindIs(sdl.ErrKindSyntax),
		))
	})
})

var _ = Describe("PrintSchema", func() {
	It("round-trips a schema through parse, materialize and print", func() {
		schema, err := selene.CreateSchema("type Hello{str(int:Int=2):String}", "Hello")
		Expect(err).ShouldNot(HaveOccurred())

		printed := selene.PrintSchema(schema)
		Expect(printed).Should(Equal(`
type Hello {
  str(int: Int = 2): String
}
`))

		// Printed text materializes back to an equivalent schema that prints identically.
		reparsed, err := selene.CreateSchema(printed, "Hello")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(selene.PrintSchema(reparsed)).Should(Equal(printed))
	})
})
