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

// Interface represents a type materialized from an interface type definition.
type Interface struct {
	name   string
	fields []*Field
}

var (
	_ Type           = (*Interface)(nil)
	_ TypeWithFields = (*Interface)(nil)
)

// sdlType implements Type.
func (*Interface) sdlType() {}

// Name implements TypeWithName.
func (iface *Interface) Name() string {
	return iface.name
}

// Fields implements TypeWithFields.
func (iface *Interface) Fields() []*Field {
	return iface.fields
}

// FieldNamed implements TypeWithFields.
func (iface *Interface) FieldNamed(name string) *Field {
	for _, field := range iface.fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// String implements Type.
func (iface *Interface) String() string {
	return iface.name
}
