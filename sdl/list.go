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

// List is a wrapping type that represents a list of its element type. Lists of the same element
// type built by different call sites are distinct values; compare element types, not List
// identities.
type List struct {
	elementType Type
}

var _ Type = (*List)(nil)

// NewListOfType returns a List wrapping the given element type.
func NewListOfType(elementType Type) *List {
	return &List{
		elementType: elementType,
	}
}

// sdlType implements Type.
func (*List) sdlType() {}

// ElementType returns the type of elements in the list.
func (list *List) ElementType() Type {
	return list.elementType
}

// String implements Type.
func (list *List) String() string {
	return "[" + list.elementType.String() + "]"
}
