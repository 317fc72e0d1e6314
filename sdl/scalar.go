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

package sdl

import (
	"github.com/botobag/selene/sdl/ast"
)

// ScalarLiteralCoercer coerces a value literal in the document into the internal value of a scalar
// type. It is consulted when a default value is given to an argument or input field of the scalar
// type.
type ScalarLiteralCoercer interface {
	// CoerceLiteralValue coerces the given value literal. The AST never contains a NullValue when
	// this is called; null handling happens before the scalar is consulted.
	CoerceLiteralValue(value ast.Value) (interface{}, error)
}

// Scalar represents a leaf type. The five built-in scalars are shared process-wide singletons (see
// Int, Float, String, Boolean and ID); scalars declared in a document get a fresh instance per
// materialization.
type Scalar struct {
	name    string
	coercer ScalarLiteralCoercer
}

var _ Type = (*Scalar)(nil)

// NewScalar creates a scalar type declared by a document. Such a scalar has no intrinsic value
// semantics so its coercer accepts any literal as-is.
func NewScalar(name string) *Scalar {
	return &Scalar{
		name:    name,
		coercer: passthroughCoercer{},
	}
}

// sdlType implements Type.
func (*Scalar) sdlType() {}

// Name implements TypeWithName.
func (scalar *Scalar) Name() string {
	return scalar.name
}

// CoerceLiteralValue coerces the given value literal into the scalar's internal value.
func (scalar *Scalar) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	return scalar.coercer.CoerceLiteralValue(value)
}

// String implements Type.
func (scalar *Scalar) String() string {
	return scalar.name
}

// passthroughCoercer takes the literal value as the internal value without further interpretation.
type passthroughCoercer struct{}

var _ ScalarLiteralCoercer = passthroughCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (passthroughCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	return value.Interface(), nil
}
