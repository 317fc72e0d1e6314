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

package sdl_test

import (
	"github.com/botobag/selene/internal/testutil"
	"github.com/botobag/selene/sdl"
	"github.com/botobag/selene/sdl/ast"
	"github.com/botobag/selene/sdl/parser"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseDocument(text string) ast.Document {
	document, err := parser.Parse(sdl.NewSource(&sdl.SourceConfig{
		Body: sdl.SourceBody(text),
	}))
	Expect(err).ShouldNot(HaveOccurred())
	return document
}

func buildSchema(text string, queryTypeName string) (*sdl.Schema, error) {
	return sdl.BuildSchema(parseDocument(text), queryTypeName)
}

func mustBuildSchema(text string, queryTypeName string) *sdl.Schema {
	schema, err := buildSchema(text, queryTypeName)
	Expect(err).ShouldNot(HaveOccurred())
	return schema
}

var _ = Describe("BuildSchema", func() {
	It("builds a schema from a simple document", func() {
		schema := mustBuildSchema(`type Hello {
  str(int: Int = 2): String
}`, "Hello")

		query := schema.Query()
		Expect(query.Name()).Should(Equal("Hello"))
		Expect(schema.TypeMap().Size()).Should(Equal(1))
		Expect(schema.TypeMap().Lookup("Hello")).Should(BeIdenticalTo(query))

		str := query.FieldNamed("str")
		Expect(str).ShouldNot(BeNil())
		// Built-in scalars resolve to the shared singletons.
		Expect(str.Type()).Should(BeIdenticalTo(sdl.String()))

		Expect(str.Args()).Should(HaveLen(1))
		arg := str.Args()[0]
		Expect(arg.Name()).Should(Equal("int"))
		Expect(arg.Type()).Should(BeIdenticalTo(sdl.Int()))
		Expect(arg.HasDefaultValue()).Should(BeTrue())
		Expect(arg.DefaultValue()).Should(Equal(2))
	})

	It("resolves a self-referential type to a single instance", func() {
		schema := mustBuildSchema(`type Recurse {
  str: String
  recurse: Recurse
}`, "Recurse")

		query := schema.Query()
		Expect(query.FieldNamed("recurse").Type()).Should(BeIdenticalTo(query))
	})

	It("resolves mutually recursive types to shared instances", func() {
		schema := mustBuildSchema(`type First {
  second: Second
}
type Second {
  first: First
}`, "First")

		first := schema.TypeMap().Lookup("First").(*sdl.Object)
		second := schema.TypeMap().Lookup("Second").(*sdl.Object)
		Expect(first.FieldNamed("second").Type()).Should(BeIdenticalTo(second))
		Expect(second.FieldNamed("first").Type()).Should(BeIdenticalTo(first))
	})

	It("resolves forward references", func() {
		schema := mustBuildSchema(`type Query {
  color: Color
}
enum Color { RED GREEN }`, "Query")

		color := schema.TypeMap().Lookup("Color").(*sdl.Enum)
		Expect(schema.Query().FieldNamed("color").Type()).Should(BeIdenticalTo(color))
		Expect(color.ValueNamed("RED")).ShouldNot(BeNil())
		Expect(color.ValueNamed("GREEN")).ShouldNot(BeNil())
		Expect(color.ValueNamed("BLUE")).Should(BeNil())
	})

	It("resolves wrapping types", func() {
		schema := mustBuildSchema(`type Query {
  strs: [String]
  ids: [ID!]!
}`, "Query")

		strs := schema.Query().FieldNamed("strs").Type()
		list, ok := strs.(*sdl.List)
		Expect(ok).Should(BeTrue())
		Expect(list.ElementType()).Should(BeIdenticalTo(sdl.String()))

		ids := schema.Query().FieldNamed("ids").Type()
		Expect(ids.String()).Should(Equal("[ID!]!"))
	})

	It("links objects to their declared interfaces", func() {
		schema := mustBuildSchema(`interface Node {
  id: ID!
}
type Query implements Node {
  id: ID!
}
type Entry implements Node {
  id: ID!
}`, "Query")

		node := schema.TypeMap().Lookup("Node").(*sdl.Interface)
		query := schema.Query()
		Expect(query.Interfaces()).Should(HaveLen(1))
		Expect(query.Interfaces()[0]).Should(BeIdenticalTo(node))

		entry := schema.TypeMap().Lookup("Entry").(*sdl.Object)
		Expect(schema.PossibleTypes(node)).Should(Equal([]*sdl.Object{query, entry}))
	})

	It("links unions to their member types", func() {
		schema := mustBuildSchema(`type Query {
  id: ID
}
type Entry {
  id: ID
}
union Feed = Query | Entry`, "Query")

		feed := schema.TypeMap().Lookup("Feed").(*sdl.Union)
		query := schema.Query()
		entry := schema.TypeMap().Lookup("Entry").(*sdl.Object)
		Expect(feed.PossibleTypes()).Should(Equal([]*sdl.Object{query, entry}))
		Expect(schema.PossibleTypes(feed)).Should(Equal([]*sdl.Object{query, entry}))
	})

	It("builds custom scalar types", func() {
		schema := mustBuildSchema(`scalar Url
type Query {
  url: Url
}`, "Query")

		url, ok := schema.TypeMap().Lookup("Url").(*sdl.Scalar)
		Expect(ok).Should(BeTrue())
		Expect(url.Name()).Should(Equal("Url"))
		Expect(schema.Query().FieldNamed("url").Type()).Should(BeIdenticalTo(url))
	})

	It("builds input object types", func() {
		schema := mustBuildSchema(`type Query {
  search(filter: Filter = {tags: ["new"], limit: 5}): String
}
input Filter {
  tags: [String]
  limit: Int = 10
}`, "Query")

		filter := schema.TypeMap().Lookup("Filter").(*sdl.InputObject)
		Expect(filter.Fields()).Should(HaveLen(2))

		limit := filter.FieldNamed("limit")
		Expect(limit.HasDefaultValue()).Should(BeTrue())
		Expect(limit.DefaultValue()).Should(Equal(10))

		tags := filter.FieldNamed("tags")
		Expect(tags.HasDefaultValue()).Should(BeFalse())
		Expect(tags.DefaultValue()).Should(BeNil())

		// Input object defaults keep their fields in literal order.
		arg := schema.Query().FieldNamed("search").Args()[0]
		Expect(arg.DefaultValue()).Should(Equal([]sdl.InputFieldValue{
			{Name: "tags", Value: []interface{}{"new"}},
			{Name: "limit", Value: 5},
		}))
	})

	It("coerces a single value default to a list of one element", func() {
		schema := mustBuildSchema(`type Query {
  f(x: [Int] = 3): String
}`, "Query")

		arg := schema.Query().FieldNamed("f").Args()[0]
		Expect(arg.DefaultValue()).Should(Equal([]interface{}{3}))
	})

	It("accepts null default for nullable types only", func() {
		schema := mustBuildSchema(`type Query {
  f(x: Int = null): String
}`, "Query")
		arg := schema.Query().FieldNamed("f").Args()[0]
		Expect(arg.HasDefaultValue()).Should(BeTrue())
		Expect(arg.DefaultValue()).Should(BeNil())

		_, err := buildSchema(`type Query {
  f(x: Int! = null): String
}`, "Query")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Expected value of type Int!, found null."),
			testutil.KindIs(sdl.ErrKindCoercion),
		))
	})

	It("rejects default values that do not coerce", func() {
		_, err := buildSchema(`type Query {
  f(x: Int = "three"): String
}`, "Query")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Int cannot represent three: not an integer"),
			testutil.KindIs(sdl.ErrKindCoercion),
		))

		_, err = buildSchema(`type Query {
  f(x: Int = 2147483648): String
}`, "Query")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Int cannot represent 2147483648: value too large for 32-bit signed integer"),
			testutil.KindIs(sdl.ErrKindCoercion),
		))

		_, err = buildSchema(`type Query {
  f(c: Color = BLUE): String
}
enum Color { RED GREEN }`, "Query")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Color cannot represent BLUE: not a value of the enum"),
			testutil.KindIs(sdl.ErrKindCoercion),
		))

		_, err = buildSchema(`type Query {
  f(p: Point = {z: 1}): String
}
input Point {
  x: Int
}`, "Query")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual(`Field "z" is not defined by type Point.`),
			testutil.KindIs(sdl.ErrKindCoercion),
		))
	})

	It("reports unresolvable type references", func() {
		// In a field type.
		_, err := buildSchema(`type Hello {
  bar: Bar
}`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Type Bar not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedType),
		))

		// In an implements clause; the message does not depend on where the reference appears.
		_, err = buildSchema(`type Hello implements Bar {
  str: String
}`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Type Bar not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedType),
		))

		// In a union member list.
		_, err = buildSchema(`type Hello {
  str: String
}
union Feed = Hello | Bar`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Type Bar not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedType),
		))

		// In an argument type.
		_, err = buildSchema(`type Hello {
  str(x: Bar): String
}`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Type Bar not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedType),
		))
	})

	It("reports an unresolvable query type", func() {
		_, err := buildSchema(`type Hello {
  str: String
}`, "Wat")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Specified query type Wat not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedQueryType),
		))

		// A query type that names a non-object definition is just as unresolvable.
		_, err = buildSchema(`scalar Wat
type Hello {
  str: String
}`, "Wat")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual("Specified query type Wat not found in document"),
			testutil.KindIs(sdl.ErrKindUnresolvedQueryType),
		))
	})

	It("reports duplicate type names", func() {
		_, err := buildSchema(`type Hello {
  str: String
}
enum Hello { WORLD }`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageEqual(`Schema must contain uniquely named types but contains multiple types named "Hello".`),
			testutil.KindIs(sdl.ErrKindDuplicateType),
		))
	})

	It("rejects implementing a non-interface type", func() {
		_, err := buildSchema(`type World {
  str: String
}
type Hello implements World {
  str: String
}`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageContainSubstring("must only implement Interface types"),
			testutil.KindIs(sdl.ErrKindValidation),
		))
	})

	It("rejects non-object union members", func() {
		_, err := buildSchema(`type Hello {
  str: String
}
enum Color { RED }
union Feed = Hello | Color`, "Hello")
		Expect(err).Should(testutil.MatchSDLError(
			testutil.MessageContainSubstring("can only include Object types"),
			testutil.KindIs(sdl.ErrKindValidation),
		))
	})
})

var _ = Describe("Schema", func() {
	Describe("TypeFromAST", func() {
		parseTypeNode := func(text string) ast.Type {
			t, err := parser.ParseType(sdl.NewSource(&sdl.SourceConfig{
				Body: sdl.SourceBody(text),
			}))
			Expect(err).ShouldNot(HaveOccurred())
			return t
		}

		It("resolves type nodes against the schema", func() {
			schema := mustBuildSchema(`type Hello {
  str: String
}`, "Hello")

			t, err := schema.TypeFromAST(parseTypeNode("[Hello!]"))
			Expect(err).ShouldNot(HaveOccurred())

			list, ok := t.(*sdl.List)
			Expect(ok).Should(BeTrue())
			nonNull, ok := list.ElementType().(*sdl.NonNull)
			Expect(ok).Should(BeTrue())
			Expect(nonNull.InnerType()).Should(BeIdenticalTo(schema.Query()))

			builtin, err := schema.TypeFromAST(parseTypeNode("Boolean"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(builtin).Should(BeIdenticalTo(sdl.Boolean()))
		})

		It("reports unknown names", func() {
			schema := mustBuildSchema(`type Hello {
  str: String
}`, "Hello")

			_, err := schema.TypeFromAST(parseTypeNode("Bar"))
			Expect(err).Should(testutil.MatchSDLError(
				testutil.MessageEqual("Type Bar not found in document"),
				testutil.KindIs(sdl.ErrKindUnresolvedType),
			))
		})
	})
})
