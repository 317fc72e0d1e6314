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

// Object represents a type materialized from an object type definition. Fields and interfaces keep
// their declaration order.
//
// An Object under construction may be referenced (e.g., by its own fields) before its fields are
// resolved. The builder allocates the Object first and fills in fields and interfaces afterwards so
// all references in a schema share one instance.
type Object struct {
	name       string
	interfaces []*Interface
	fields     []*Field
}

var (
	_ Type           = (*Object)(nil)
	_ TypeWithFields = (*Object)(nil)
)

// sdlType implements Type.
func (*Object) sdlType() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Interfaces returns the interfaces the object declares to implement, in declaration order.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}

// Fields implements TypeWithFields.
func (o *Object) Fields() []*Field {
	return o.fields
}

// FieldNamed implements TypeWithFields.
func (o *Object) FieldNamed(name string) *Field {
	for _, field := range o.fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// String implements Type.
func (o *Object) String() string {
	return o.name
}
