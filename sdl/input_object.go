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

// InputObject represents a type materialized from an input object type definition.
type InputObject struct {
	name   string
	fields []*InputField
}

var _ Type = (*InputObject)(nil)

// sdlType implements Type.
func (*InputObject) sdlType() {}

// Name implements TypeWithName.
func (inputObject *InputObject) Name() string {
	return inputObject.name
}

// Fields returns the input fields in the type, in declaration order.
func (inputObject *InputObject) Fields() []*InputField {
	return inputObject.fields
}

// FieldNamed looks up an input field with the given name. It returns nil if no such field exists.
func (inputObject *InputObject) FieldNamed(name string) *InputField {
	for _, field := range inputObject.fields {
		if field.name == name {
			return field
		}
	}
	return nil
}

// String implements Type.
func (inputObject *InputObject) String() string {
	return inputObject.name
}
