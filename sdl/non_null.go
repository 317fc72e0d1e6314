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

// NonNull is a wrapping type that forbids the null value for its inner type. The inner type of a
// NonNull is always a nullable type; "!!" cannot be written in a document and is never built here.
type NonNull struct {
	innerType Type
}

var _ Type = (*NonNull)(nil)

// NewNonNullOfType returns a NonNull wrapping the given inner type.
func NewNonNullOfType(innerType Type) *NonNull {
	return &NonNull{
		innerType: innerType,
	}
}

// sdlType implements Type.
func (*NonNull) sdlType() {}

// InnerType returns the type being wrapped by the NonNull.
func (nonNull *NonNull) InnerType() Type {
	return nonNull.innerType
}

// String implements Type.
func (nonNull *NonNull) String() string {
	return nonNull.innerType.String() + "!"
}
