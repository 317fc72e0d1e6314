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
	"fmt"
)

//===----------------------------------------------------------------------------------------====//
// Type
//===----------------------------------------------------------------------------------------====//

// Type is the base interface implemented by every materialized type in a Schema. A Type is one of
// the named types (Scalar, Object, Interface, Union, Enum or InputObject) or a wrapping type (List
// or NonNull) applied to another type.
type Type interface {
	// String returns the notation that denotes the type in an SDL document, such as "[Foo!]".
	fmt.Stringer

	// sdlType is a special mark to indicate a Type. It makes sure that only types defined in this
	// package can be assigned to Type.
	sdlType()
}

// TypeWithName is implemented by named types to provide access to their name.
type TypeWithName interface {
	// Name of the type
	Name() string
}

// TypeWithFields is implemented by types that define a set of fields, currently Object and
// Interface.
type TypeWithFields interface {
	TypeWithName

	// Fields in the type in the order they were declared
	Fields() []*Field

	// FieldNamed looks up a field with the given name. It returns nil if no such field exists.
	FieldNamed(name string) *Field
}

// The following types all implement Type.
var (
	_ Type = (*Scalar)(nil)
	_ Type = (*Object)(nil)
	_ Type = (*Interface)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Enum)(nil)
	_ Type = (*InputObject)(nil)
	_ Type = (*List)(nil)
	_ Type = (*NonNull)(nil)
)

//===----------------------------------------------------------------------------------------====//
// Type Predicates
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf returns the underlying named type of the given type by unwrapping any List and
// NonNull modifiers.
func NamedTypeOf(t Type) Type {
	for {
		switch ttype := t.(type) {
		case *List:
			t = ttype.ElementType()
		case *NonNull:
			t = ttype.InnerType()
		default:
			return t
		}
	}
}

// NullableTypeOf unwraps one level of NonNull (if any) from the given type.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(*NonNull); ok {
		return nonNull.InnerType()
	}
	return t
}

// IsInputType returns true if the given type can be used as the type of a field argument or an
// input object field.
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType returns true if the given type can be used as the type of a field.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}

// IsCompositeType returns true if the given type is one that can have fields or members selected
// from it.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsLeafType returns true if the given type has no sub-structure.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	}
	return false
}

// IsWrappingType returns true if the given type wraps another type.
func IsWrappingType(t Type) bool {
	switch t.(type) {
	case *List, *NonNull:
		return true
	}
	return false
}

// IsNamedType returns true if the given type is not a wrapping type.
func IsNamedType(t Type) bool {
	return !IsWrappingType(t)
}

//===----------------------------------------------------------------------------------------====//
// Field
//===----------------------------------------------------------------------------------------====//

// Field describes a field in an Object or Interface type. Instances are created by the schema
// builder; once built they are read-only.
type Field struct {
	name  string
	args  []*Argument
	ttype Type
}

// Name returns the field name.
func (field *Field) Name() string {
	return field.name
}

// Args returns the field arguments in the order they were declared. It returns nil for a field
// that takes no arguments.
func (field *Field) Args() []*Argument {
	return field.args
}

// Type returns the type of value yielded by the field.
func (field *Field) Type() Type {
	return field.ttype
}

// Argument describes an argument taken by a Field.
type Argument struct {
	name         string
	ttype        Type
	defaultValue interface{}
	hasDefault   bool
}

// Name returns the argument name.
func (arg *Argument) Name() string {
	return arg.name
}

// Type returns the type of value that can be given to the argument.
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument declares a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.hasDefault
}

// DefaultValue returns the default value for the argument. Note that a nil return could mean the
// argument has no default or has an explicit null default. Use HasDefaultValue to tell the two
// apart.
func (arg *Argument) DefaultValue() interface{} {
	return arg.defaultValue
}

// InputField describes a field in an InputObject type.
type InputField struct {
	name         string
	ttype        Type
	defaultValue interface{}
	hasDefault   bool
}

// Name returns the input field name.
func (field *InputField) Name() string {
	return field.name
}

// Type returns the type of value that can be assigned to the field.
func (field *InputField) Type() Type {
	return field.ttype
}

// HasDefaultValue returns true if the field declares a default value.
func (field *InputField) HasDefaultValue() bool {
	return field.hasDefault
}

// DefaultValue returns the default value for the field.
func (field *InputField) DefaultValue() interface{} {
	return field.defaultValue
}

// InputFieldValue pairs an input object field name with its coerced value. An input object literal
// materializes into an []InputFieldValue rather than a map so the field order in the document is
// kept.
type InputFieldValue struct {
	Name  string
	Value interface{}
}
