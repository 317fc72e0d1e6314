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

package lexer_test

import (
	"github.com/botobag/selene/internal/testutil"
	"github.com/botobag/selene/sdl"
	"github.com/botobag/selene/sdl/lexer"
	"github.com/botobag/selene/sdl/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

func lexOne(str string) (*token.Token, error) {
	lexer := lexer.New(sdl.NewSource(&sdl.SourceConfig{
		Body: sdl.SourceBody(str),
	}))
	return lexer.Advance()
}

func expectSyntaxError(text string, message string, location sdl.ErrorLocation) {
	_, err := lexOne(text)
	Expect(err).Should(testutil.MatchSDLError(
		testutil.MessageContainSubstring(message),
		testutil.LocationEqual(location),
		testutil.KindIs(sdl.ErrKindSyntax),
	))
}

// A custom Gomega matcher to skip matching Prev and Next fields in the Token.
func MatchToken(token *token.Token) types.GomegaMatcher {
	return PointTo(MatchFields(IgnoreExtras, Fields{
		"Kind":     Equal(token.Kind),
		"Location": Equal(token.Location),
		"Length":   Equal(token.Length),
		"Value":    Equal(token.Value),
	}))
}

var _ = Describe("Lexer", func() {
	It("disallows uncommon control characters", func() {
		expectSyntaxError(
			"\u0007",
			`Cannot contain the invalid character "\u0007"`,
			sdl.ErrorLocation{
				Line:   1,
				Column: 1,
			},
		)
	})

	It("accepts BOM header", func() {
		Expect(lexOne("\ufeff foo")).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(5),
			Length:   3,
			Value:    "foo",
		}))
	})

	It("skips whitespace and comments", func() {
		Expect(lexOne(`

    foo


`)).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(7),
			Length:   3,
			Value:    "foo",
		}))

		Expect(lexOne(`
    #comment
    foo#comment
`)).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(19),
			Length:   3,
			Value:    "foo",
		}))

		Expect(lexOne(",,,foo,,,")).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(4),
			Length:   3,
			Value:    "foo",
		}))
	})

	It("lexes names", func() {
		Expect(lexOne("simple")).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(1),
			Length:   6,
			Value:    "simple",
		}))

		Expect(lexOne("_with_underscore99")).Should(MatchToken(&token.Token{
			Kind:     token.KindName,
			Location: token.SourceLocation(1),
			Length:   18,
			Value:    "_with_underscore99",
		}))
	})

	It("lexes strings", func() {
		Expect(lexOne(`"simple"`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   8,
			Value:    "simple",
		}))

		Expect(lexOne(`""`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   2,
			Value:    "",
		}))

		Expect(lexOne(`" white space "`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   15,
			Value:    " white space ",
		}))

		Expect(lexOne(`"quote \""`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   10,
			Value:    `quote "`,
		}))

		Expect(lexOne(`"escaped \n\r\b\t\f"`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   20,
			Value:    "escaped \n\r\b\t\f",
		}))

		Expect(lexOne(`"unicode \u1234\u5678\u90AB\uCDEF"`)).Should(MatchToken(&token.Token{
			Kind:     token.KindString,
			Location: token.SourceLocation(1),
			Length:   34,
			Value:    "unicode \u1234\u5678\u90AB\uCDEF",
		}))
	})

	It("lex reports useful string errors", func() {
		expectSyntaxError(`"`, "Unterminated string", sdl.ErrorLocation{
			Line:   1,
			Column: 2,
		})

		expectSyntaxError(`"no end quote`, "Unterminated string", sdl.ErrorLocation{
			Line:   1,
			Column: 14,
		})

		expectSyntaxError("'single quotes'",
			"Unexpected single quote character ('), did you mean to use a double quote (\")?",
			sdl.ErrorLocation{
				Line:   1,
				Column: 1,
			})

		expectSyntaxError(`"bad \z esc"`, `Invalid character escape sequence: \z.`, sdl.ErrorLocation{
			Line:   1,
			Column: 7,
		})

		expectSyntaxError(`"bad \u1 esc"`, `Invalid character escape sequence: \u1 es.`, sdl.ErrorLocation{
			Line:   1,
			Column: 7,
		})

		expectSyntaxError("\"multi\nline\"", "Unterminated string", sdl.ErrorLocation{
			Line:   1,
			Column: 7,
		})
	})

	It("lexes numbers", func() {
		Expect(lexOne("4")).Should(MatchToken(&token.Token{
			Kind:     token.KindInt,
			Location: token.SourceLocation(1),
			Length:   1,
			Value:    "4",
		}))

		Expect(lexOne("-9")).Should(MatchToken(&token.Token{
			Kind:     token.KindInt,
			Location: token.SourceLocation(1),
			Length:   2,
			Value:    "-9",
		}))

		Expect(lexOne("0")).Should(MatchToken(&token.Token{
			Kind:     token.KindInt,
			Location: token.SourceLocation(1),
			Length:   1,
			Value:    "0",
		}))

		Expect(lexOne("4.123")).Should(MatchToken(&token.Token{
			Kind:     token.KindFloat,
			Location: token.SourceLocation(1),
			Length:   5,
			Value:    "4.123",
		}))

		Expect(lexOne("123e4")).Should(MatchToken(&token.Token{
			Kind:     token.KindFloat,
			Location: token.SourceLocation(1),
			Length:   5,
			Value:    "123e4",
		}))

		Expect(lexOne("1.234E-2")).Should(MatchToken(&token.Token{
			Kind:     token.KindFloat,
			Location: token.SourceLocation(1),
			Length:   8,
			Value:    "1.234E-2",
		}))
	})

	It("lex reports useful number errors", func() {
		expectSyntaxError("00", "Invalid number, unexpected digit after 0: \"0\".", sdl.ErrorLocation{
			Line:   1,
			Column: 2,
		})

		expectSyntaxError("-", "Invalid number, expected digit after '-' but got: <EOF>.", sdl.ErrorLocation{
			Line:   1,
			Column: 2,
		})

		expectSyntaxError("1.", "Invalid number, expected digit after decimal point ('.') but got: <EOF>.", sdl.ErrorLocation{
			Line:   1,
			Column: 3,
		})

		expectSyntaxError("1.A", "Invalid number, expected digit after decimal point ('.') but got: \"A\".", sdl.ErrorLocation{
			Line:   1,
			Column: 3,
		})

		expectSyntaxError("1.0e", "Invalid number, expected digit but got: <EOF>.", sdl.ErrorLocation{
			Line:   1,
			Column: 5,
		})
	})

	It("lexes punctuation", func() {
		punctuations := map[string]token.Kind{
			"!": token.KindBang,
			"(": token.KindLeftParen,
			")": token.KindRightParen,
			":": token.KindColon,
			"=": token.KindEquals,
			"[": token.KindLeftBracket,
			"]": token.KindRightBracket,
			"{": token.KindLeftBrace,
			"|": token.KindPipe,
			"}": token.KindRightBrace,
		}

		for text, kind := range punctuations {
			Expect(lexOne(text)).Should(MatchToken(&token.Token{
				Kind:     kind,
				Location: token.SourceLocation(1),
				Length:   1,
				Value:    "",
			}), text)
		}
	})

	It("lex reports useful unknown character error", func() {
		expectSyntaxError("..", "Cannot parse the unexpected character \".\".", sdl.ErrorLocation{
			Line:   1,
			Column: 1,
		})

		expectSyntaxError("?", "Cannot parse the unexpected character \"?\".", sdl.ErrorLocation{
			Line:   1,
			Column: 1,
		})
	})

	It("produces double linked list of tokens including comments", func() {
		source := sdl.NewSource(&sdl.SourceConfig{
			Body: sdl.SourceBody(`{
	#comment
	field
}`),
		})

		lex := lexer.New(source)
		startToken := lex.Token()
		var endToken *token.Token
		for {
			tok, err := lex.Advance()
			Expect(err).ShouldNot(HaveOccurred())
			endToken = tok
			// Lexer advances over comments; they should not be returned here.
			Expect(tok.Kind).ShouldNot(Equal(token.KindComment))
			if tok.Kind == token.KindEOF {
				break
			}
		}

		var kinds []token.Kind
		for tok := startToken; tok != nil; tok = tok.Next {
			if tok.Prev != nil {
				// Tokens are linked both ways.
				Expect(tok.Prev.Next).Should(Equal(tok))
			}
			kinds = append(kinds, tok.Kind)
		}

		Expect(kinds).Should(Equal([]token.Kind{
			token.KindSOF,
			token.KindLeftBrace,
			token.KindComment,
			token.KindName,
			token.KindRightBrace,
			token.KindEOF,
		}))

		Expect(endToken.Kind).Should(Equal(token.KindEOF))
	})
})
