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

// Package selene composes the SDL compiler stages (sdl/parser, sdl and the printer) into
// one-call entry points. The stages remain usable individually via their own packages.
package selene

import (
	"github.com/botobag/selene/concurrent/future"
	"github.com/botobag/selene/sdl"
	"github.com/botobag/selene/sdl/ast"
	"github.com/botobag/selene/sdl/parser"
)

// ParseSchema parses SDL text into a Document.
func ParseSchema(text string) (ast.Document, error) {
	return parser.Parse(sdl.NewSource(&sdl.SourceConfig{
		Body: sdl.SourceBody(text),
	}))
}

// CreateSchema parses the given SDL text and materializes it into a Schema anchored at the object
// type named queryTypeName. Each call is self-contained; concurrent calls share no state.
func CreateSchema(text string, queryTypeName string) (*sdl.Schema, error) {
	document, err := ParseSchema(text)
	if err != nil {
		return nil, err
	}
	return sdl.BuildSchema(document, queryTypeName)
}

// CreateSchemaAsync is the asynchronous variant of CreateSchema. The returned future resolves to a
// *sdl.Schema. It is a convenience veneer over the same synchronous pipeline; no partial schema is
// ever observable.
func CreateSchemaAsync(text string, queryTypeName string) future.Future {
	return future.Async(func() (interface{}, error) {
		return CreateSchema(text, queryTypeName)
	})
}

// PrintSchema renders a schema back into canonical SDL text.
func PrintSchema(schema *sdl.Schema) string {
	return sdl.PrintSchema(schema)
}
