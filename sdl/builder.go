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

	"github.com/botobag/selene/sdl/ast"
)

// BuildSchema materializes a parsed document into a Schema anchored at the object type named
// queryTypeName.
//
// Materialization runs in two passes. The first pass allocates one (still empty) type object per
// definition and indexes it by name; the second pass resolves the body of each definition against
// the index. Because every name already maps to its final object before any body is resolved,
// forward references and reference cycles (self-referential and mutually-recursive types) resolve
// to shared instances with no special handling. Definition order in the document never affects the
// result.
func BuildSchema(document ast.Document, queryTypeName string) (*Schema, error) {
	const op Op = "sdl.BuildSchema"

	builder := newSchemaBuilder()

	if err := builder.registerDefinitions(document); err != nil {
		return nil, err
	}

	// The root must be known before type bodies are resolved; an unresolvable query type is
	// reported even when the rest of the document has problems of its own.
	query, ok := builder.typeMap.Lookup(queryTypeName).(*Object)
	if !ok {
		return nil, NewError(
			fmt.Sprintf("Specified query type %s not found in document", queryTypeName),
			op, ErrKindUnresolvedQueryType)
	}

	for _, definition := range document.Definitions {
		if err := builder.resolveDefinition(definition); err != nil {
			return nil, err
		}
	}

	return &Schema{
		query:           query,
		typeMap:         builder.typeMap,
		implementations: builder.implementations,
	}, nil
}

// schemaBuilder holds the state shared by the two materialization passes.
type schemaBuilder struct {
	typeMap         TypeMap
	implementations map[string][]*Object
}

func newSchemaBuilder() *schemaBuilder {
	return &schemaBuilder{
		typeMap:         newTypeMap(),
		implementations: map[string][]*Object{},
	}
}

//===----------------------------------------------------------------------------------------====//
// Pass 1: definition registration
//===----------------------------------------------------------------------------------------====//

// registerDefinitions indexes every definition in the document by name. Each name maps to the type
// object that the second pass will fill in, so any reference encountered later resolves to the same
// instance. A name defined twice is an ErrKindDuplicateType error.
func (builder *schemaBuilder) registerDefinitions(document ast.Document) error {
	for _, definition := range document.Definitions {
		name := definition.TypeName().Value()

		var t Type
		switch definition.(type) {
		case *ast.ScalarDefinition:
			t = NewScalar(name)
		case *ast.ObjectDefinition:
			t = &Object{name: name}
		case *ast.InterfaceDefinition:
			t = &Interface{name: name}
		case *ast.UnionDefinition:
			t = &Union{name: name}
		case *ast.EnumDefinition:
			t = &Enum{name: name}
		case *ast.InputObjectDefinition:
			t = &InputObject{name: name}
		default:
			return NewError(
				fmt.Sprintf("unexpected definition node %T", definition), ErrKindInternal)
		}

		if err := builder.typeMap.add(name, t); err != nil {
			return err
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Pass 2: reference resolution
//===----------------------------------------------------------------------------------------====//

// resolveDefinition fills in the body of the type object registered for the given definition.
func (builder *schemaBuilder) resolveDefinition(definition ast.Definition) error {
	name := definition.TypeName().Value()

	switch definition := definition.(type) {
	case *ast.ScalarDefinition:
		// A scalar definition has no body to resolve.
		return nil

	case *ast.ObjectDefinition:
		return builder.resolveObject(builder.typeMap.Lookup(name).(*Object), definition)

	case *ast.InterfaceDefinition:
		iface := builder.typeMap.Lookup(name).(*Interface)
		fields, err := builder.buildFields(definition.Fields)
		if err != nil {
			return err
		}
		iface.fields = fields
		return nil

	case *ast.UnionDefinition:
		return builder.resolveUnion(builder.typeMap.Lookup(name).(*Union), definition)

	case *ast.EnumDefinition:
		enum := builder.typeMap.Lookup(name).(*Enum)
		values := make([]*EnumValue, len(definition.Values))
		for i, value := range definition.Values {
			values[i] = &EnumValue{name: value.Value()}
		}
		enum.values = values
		return nil

	case *ast.InputObjectDefinition:
		inputObject := builder.typeMap.Lookup(name).(*InputObject)
		fields := make([]*InputField, len(definition.Fields))
		for i, fieldDefinition := range definition.Fields {
			ttype, defaultValue, hasDefault, err := builder.buildInputValue(fieldDefinition)
			if err != nil {
				return err
			}
			fields[i] = &InputField{
				name:         fieldDefinition.Name.Value(),
				ttype:        ttype,
				defaultValue: defaultValue,
				hasDefault:   hasDefault,
			}
		}
		inputObject.fields = fields
		return nil
	}

	return NewError(fmt.Sprintf("unexpected definition node %T", definition), ErrKindInternal)
}

func (builder *schemaBuilder) resolveObject(object *Object, definition *ast.ObjectDefinition) error {
	if numInterfaces := len(definition.Interfaces); numInterfaces > 0 {
		interfaces := make([]*Interface, numInterfaces)
		for i, interfaceName := range definition.Interfaces {
			t, err := builder.lookupNamed(interfaceName.Value())
			if err != nil {
				return err
			}
			iface, ok := t.(*Interface)
			if !ok {
				return NewError(
					fmt.Sprintf("Type %s must only implement Interface types, it cannot implement %v.",
						object.name, t),
					ErrKindValidation)
			}
			interfaces[i] = iface
			builder.implementations[iface.name] = append(builder.implementations[iface.name], object)
		}
		object.interfaces = interfaces
	}

	fields, err := builder.buildFields(definition.Fields)
	if err != nil {
		return err
	}
	object.fields = fields
	return nil
}

func (builder *schemaBuilder) resolveUnion(union *Union, definition *ast.UnionDefinition) error {
	possibleTypes := make([]*Object, len(definition.Members))
	for i, memberName := range definition.Members {
		t, err := builder.lookupNamed(memberName.Value())
		if err != nil {
			return err
		}
		object, ok := t.(*Object)
		if !ok {
			return NewError(
				fmt.Sprintf("Union %s can only include Object types, it cannot include %v.",
					union.name, t),
				ErrKindValidation)
		}
		possibleTypes[i] = object
	}
	union.possibleTypes = possibleTypes
	return nil
}

// buildFields materializes the field list of an object or interface definition.
func (builder *schemaBuilder) buildFields(definitions []*ast.FieldDefinition) ([]*Field, error) {
	fields := make([]*Field, len(definitions))
	for i, definition := range definitions {
		ttype, err := builder.resolveType(definition.Type)
		if err != nil {
			return nil, err
		}

		var args []*Argument
		if numArgs := len(definition.Arguments); numArgs > 0 {
			args = make([]*Argument, numArgs)
			for j, argDefinition := range definition.Arguments {
				argType, defaultValue, hasDefault, err := builder.buildInputValue(argDefinition)
				if err != nil {
					return nil, err
				}
				args[j] = &Argument{
					name:         argDefinition.Name.Value(),
					ttype:        argType,
					defaultValue: defaultValue,
					hasDefault:   hasDefault,
				}
			}
		}

		fields[i] = &Field{
			name:  definition.Name.Value(),
			args:  args,
			ttype: ttype,
		}
	}
	return fields, nil
}

// buildInputValue materializes the type and (optional) default value of an argument or input field
// definition.
func (builder *schemaBuilder) buildInputValue(definition *ast.InputValueDefinition) (Type, interface{}, bool, error) {
	ttype, err := builder.resolveType(definition.Type)
	if err != nil {
		return nil, nil, false, err
	}

	if definition.DefaultValue == nil {
		return ttype, nil, false, nil
	}

	defaultValue, err := coerceInputLiteral(ttype, definition.DefaultValue)
	if err != nil {
		return nil, nil, false, err
	}
	return ttype, defaultValue, true, nil
}

// resolveType materializes a type reference. List and non-null nodes map onto the corresponding
// wrapping types; the innermost name resolves to a built-in scalar or to the type registered for a
// definition in the document. An unknown name is an ErrKindUnresolvedType error regardless of where
// the reference appears.
func (builder *schemaBuilder) resolveType(t ast.Type) (Type, error) {
	switch t := t.(type) {
	case ast.NamedType:
		return builder.lookupNamed(t.Name.Value())

	case ast.ListType:
		elementType, err := builder.resolveType(t.ItemType)
		if err != nil {
			return nil, err
		}
		return NewListOfType(elementType), nil

	case ast.NonNullType:
		innerType, err := builder.resolveType(t.Type)
		if err != nil {
			return nil, err
		}
		return NewNonNullOfType(innerType), nil
	}

	return nil, NewError(fmt.Sprintf("unexpected type node %T", t), ErrKindInternal)
}

func (builder *schemaBuilder) lookupNamed(name string) (Type, error) {
	if builtin, ok := BuiltinScalar(name); ok {
		return builtin, nil
	}
	if t := builder.typeMap.Lookup(name); t != nil {
		return t, nil
	}
	return nil, NewError(
		fmt.Sprintf("Type %s not found in document", name), ErrKindUnresolvedType)
}

//===----------------------------------------------------------------------------------------====//
// Default value coercion
//===----------------------------------------------------------------------------------------====//

// coerceInputLiteral coerces a default value literal into the internal value for the given type.
func coerceInputLiteral(t Type, value ast.Value) (interface{}, error) {
	// null is valid for any nullable type and invalid for any non-null type.
	if _, isNull := value.(ast.NullValue); isNull {
		if _, nonNull := t.(*NonNull); nonNull {
			return nil, NewCoercionError("Expected value of type %v, found null.", t)
		}
		return nil, nil
	}

	switch t := t.(type) {
	case *NonNull:
		return coerceInputLiteral(t.InnerType(), value)

	case *List:
		if listValue, ok := value.(ast.ListValue); ok {
			items := listValue.Values()
			result := make([]interface{}, len(items))
			for i, item := range items {
				v, err := coerceInputLiteral(t.ElementType(), item)
				if err != nil {
					return nil, err
				}
				result[i] = v
			}
			return result, nil
		}

		// A single value coerces to a list of one element.
		v, err := coerceInputLiteral(t.ElementType(), value)
		if err != nil {
			return nil, err
		}
		return []interface{}{v}, nil

	case *Scalar:
		return t.CoerceLiteralValue(value)

	case *Enum:
		enumValue, ok := value.(ast.EnumValue)
		if !ok {
			return nil, NewCoercionError(
				"%s cannot represent %v: not a value of the enum", t.name, value.Interface())
		}
		name := enumValue.Value()
		if t.ValueNamed(name) == nil {
			return nil, NewCoercionError(
				"%s cannot represent %s: not a value of the enum", t.name, name)
		}
		// The internal value of an enum value is its name.
		return name, nil

	case *InputObject:
		objectValue, ok := value.(ast.ObjectValue)
		if !ok {
			return nil, NewCoercionError(
				"%s cannot represent %v: not an input object value", t.name, value.Interface())
		}
		objectFields := objectValue.Fields()
		result := make([]InputFieldValue, len(objectFields))
		for i, objectField := range objectFields {
			fieldName := objectField.Name.Value()
			field := t.FieldNamed(fieldName)
			if field == nil {
				return nil, NewCoercionError("Field %q is not defined by type %s.", fieldName, t.name)
			}
			v, err := coerceInputLiteral(field.ttype, objectField.Value)
			if err != nil {
				return nil, err
			}
			result[i] = InputFieldValue{
				Name:  fieldName,
				Value: v,
			}
		}
		return result, nil
	}

	// Object, Interface and Union types cannot take a value literal.
	return nil, NewCoercionError("%v cannot be used as an input type", t)
}
