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

// literal parses an SDL value literal for feeding a coercer directly.
func literal(text string) ast.Value {
	value, err := parser.ParseValue(sdl.NewSource(&sdl.SourceConfig{
		Body: sdl.SourceBody(text),
	}))
	Expect(err).ShouldNot(HaveOccurred())
	return value
}

func expectCoercionError(t *sdl.Scalar, text string, message string) {
	_, err := t.CoerceLiteralValue(literal(text))
	Expect(err).Should(testutil.MatchSDLError(
		testutil.MessageEqual(message),
		testutil.KindIs(sdl.ErrKindCoercion),
	))
}

var _ = Describe("Built-in scalars", func() {
	Describe("Int", func() {
		It("coerces integer literals to int", func() {
			Expect(sdl.Int().CoerceLiteralValue(literal("2"))).Should(Equal(2))
			Expect(sdl.Int().CoerceLiteralValue(literal("-42"))).Should(Equal(-42))
			Expect(sdl.Int().CoerceLiteralValue(literal("2147483647"))).Should(Equal(2147483647))
			Expect(sdl.Int().CoerceLiteralValue(literal("-2147483648"))).Should(Equal(-2147483648))
		})

		It("rejects non-integer literals", func() {
			expectCoercionError(sdl.Int(), "2.5", "Int cannot represent 2.5: not an integer")
			expectCoercionError(sdl.Int(), `"two"`, "Int cannot represent two: not an integer")
			expectCoercionError(sdl.Int(), "true", "Int cannot represent true: not an integer")
		})

		It("rejects values outside the 32-bit range", func() {
			expectCoercionError(sdl.Int(), "2147483648",
				"Int cannot represent 2147483648: value too large for 32-bit signed integer")
			expectCoercionError(sdl.Int(), "-2147483649",
				"Int cannot represent -2147483649: value too small for 32-bit signed integer")
		})
	})

	Describe("Float", func() {
		It("coerces float and integer literals to float64", func() {
			Expect(sdl.Float().CoerceLiteralValue(literal("3.14"))).Should(Equal(3.14))
			Expect(sdl.Float().CoerceLiteralValue(literal("42"))).Should(Equal(float64(42)))
			Expect(sdl.Float().CoerceLiteralValue(literal("1.234E-2"))).Should(Equal(1.234e-2))
		})

		It("rejects non-numeric literals", func() {
			expectCoercionError(sdl.Float(), `"pi"`, "Float cannot represent pi: not a numeric value")
			expectCoercionError(sdl.Float(), "false", "Float cannot represent false: not a numeric value")
		})
	})

	Describe("String", func() {
		It("coerces string literals to string", func() {
			Expect(sdl.String().CoerceLiteralValue(literal(`"hello"`))).Should(Equal("hello"))
			Expect(sdl.String().CoerceLiteralValue(literal(`""`))).Should(Equal(""))
		})

		It("rejects non-string literals", func() {
			expectCoercionError(sdl.String(), "1", "String cannot represent 1: not a string value")
			expectCoercionError(sdl.String(), "true", "String cannot represent true: not a string value")
		})
	})

	Describe("Boolean", func() {
		It("coerces boolean literals to bool", func() {
			Expect(sdl.Boolean().CoerceLiteralValue(literal("true"))).Should(Equal(true))
			Expect(sdl.Boolean().CoerceLiteralValue(literal("false"))).Should(Equal(false))
		})

		It("rejects non-boolean literals", func() {
			expectCoercionError(sdl.Boolean(), "1", "Boolean cannot represent 1: not a boolean value")
			expectCoercionError(sdl.Boolean(), `"true"`, "Boolean cannot represent true: not a boolean value")
		})
	})

	Describe("ID", func() {
		It("coerces string and integer literals to string", func() {
			Expect(sdl.ID().CoerceLiteralValue(literal(`"4"`))).Should(Equal("4"))
			Expect(sdl.ID().CoerceLiteralValue(literal("4"))).Should(Equal("4"))
		})

		It("rejects other literals", func() {
			expectCoercionError(sdl.ID(), "true", "ID cannot represent true: not a valid ID value")
			expectCoercionError(sdl.ID(), "1.5", "ID cannot represent 1.5: not a valid ID value")
		})
	})

	Describe("BuiltinScalar", func() {
		It("looks up the singleton instances by name", func() {
			for name, instance := range map[string]*sdl.Scalar{
				"Int":     sdl.Int(),
				"Float":   sdl.Float(),
				"String":  sdl.String(),
				"Boolean": sdl.Boolean(),
				"ID":      sdl.ID(),
			} {
				t, ok := sdl.BuiltinScalar(name)
				Expect(ok).Should(BeTrue(), name)
				Expect(t).Should(BeIdenticalTo(instance), name)
			}
		})

		It("reports unknown names", func() {
			_, ok := sdl.BuiltinScalar("DateTime")
			Expect(ok).Should(BeFalse())
		})
	})
})

var _ = Describe("NewScalar", func() {
	It("passes literal values through unconverted", func() {
		url := sdl.NewScalar("Url")
		Expect(url.Name()).Should(Equal("Url"))
		Expect(url.String()).Should(Equal("Url"))
		Expect(url.CoerceLiteralValue(literal(`"https://example.org"`))).Should(
			Equal("https://example.org"))
		Expect(url.CoerceLiteralValue(literal("42"))).Should(Equal(int32(42)))
	})
})
