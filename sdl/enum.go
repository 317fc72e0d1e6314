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

// EnumValue describes one value in an Enum.
type EnumValue struct {
	name string
}

// Name returns the name of the enum value as it appears in the document.
func (value *EnumValue) Name() string {
	return value.name
}

// Enum represents a type materialized from an enum type definition. The internal value of an enum
// value is its name (a string).
type Enum struct {
	name   string
	values []*EnumValue
}

var _ Type = (*Enum)(nil)

// sdlType implements Type.
func (*Enum) sdlType() {}

// Name implements TypeWithName.
func (enum *Enum) Name() string {
	return enum.name
}

// Values returns the values in the enum, in declaration order.
func (enum *Enum) Values() []*EnumValue {
	return enum.values
}

// ValueNamed looks up an enum value with the given name. It returns nil if no such value exists.
func (enum *Enum) ValueNamed(name string) *EnumValue {
	for _, value := range enum.values {
		if value.name == name {
			return value
		}
	}
	return nil
}

// String implements Type.
func (enum *Enum) String() string {
	return enum.name
}
