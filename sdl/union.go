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

// Union represents a type materialized from a union type definition.
type Union struct {
	name          string
	possibleTypes []*Object
}

var _ Type = (*Union)(nil)

// sdlType implements Type.
func (*Union) sdlType() {}

// Name implements TypeWithName.
func (union *Union) Name() string {
	return union.name
}

// PossibleTypes returns the member object types of the union, in declaration order.
func (union *Union) PossibleTypes() []*Object {
	return union.possibleTypes
}

// String implements Type.
func (union *Union) String() string {
	return union.name
}
