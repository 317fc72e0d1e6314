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

// TypeMap maps the name of each type defined in a document to its materialized Type. Iteration
// follows the order in which definitions appear in the document; built-in scalars are not members
// of the map.
type TypeMap struct {
	types map[string]Type
	names []string
}

func newTypeMap() TypeMap {
	return TypeMap{
		types: map[string]Type{},
	}
}

// add registers a type under the given name. It reports an error when the name is taken.
func (typeMap *TypeMap) add(name string, t Type) error {
	if _, exists := typeMap.types[name]; exists {
		return NewError(
			fmt.Sprintf("Schema must contain uniquely named types but contains multiple types named %q.", name),
			ErrKindDuplicateType)
	}
	typeMap.types[name] = t
	typeMap.names = append(typeMap.names, name)
	return nil
}

// Lookup finds the type with the given name. It returns nil if the document defines no such type.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Size returns the number of types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.names)
}

// Types returns the types in the map in document order.
func (typeMap TypeMap) Types() []Type {
	types := make([]Type, len(typeMap.names))
	for i, name := range typeMap.names {
		types[i] = typeMap.types[name]
	}
	return types
}

// Schema is a materialized type graph. It is the result of resolving every name reference in a
// parsed document against the document's own definitions (plus the built-in scalars), anchored at a
// designated query type. A Schema is immutable once built.
type Schema struct {
	query           *Object
	typeMap         TypeMap
	implementations map[string][]*Object
}

// Query returns the object type that serves as the entry point of the schema.
func (schema *Schema) Query() *Object {
	return schema.query
}

// TypeMap returns the map containing all named types defined by the document.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// PossibleTypes returns the object types that could concretely fulfill the given abstract type: the
// declared members for a Union and the implementing objects for an Interface. The result is nil for
// any other type.
func (schema *Schema) PossibleTypes(t Type) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t.Name()]
	}
	return nil
}

// TypeFromAST resolves a type node against the schema. The structure of the node maps directly
// onto wrapping types: a list node produces a List and a non-null node produces a NonNull. It
// returns an ErrKindUnresolvedType error when the innermost name is neither defined by the document
// nor a built-in scalar.
func (schema *Schema) TypeFromAST(t ast.Type) (Type, error) {
	switch t := t.(type) {
	case ast.NamedType:
		name := t.Name.Value()
		if builtin, ok := BuiltinScalar(name); ok {
			return builtin, nil
		}
		if resolved := schema.typeMap.Lookup(name); resolved != nil {
			return resolved, nil
		}
		return nil, NewError(
			fmt.Sprintf("Type %s not found in document", name), ErrKindUnresolvedType)

	case ast.ListType:
		elementType, err := schema.TypeFromAST(t.ItemType)
		if err != nil {
			return nil, err
		}
		return NewListOfType(elementType), nil

	case ast.NonNullType:
		innerType, err := schema.TypeFromAST(t.Type)
		if err != nil {
			return nil, err
		}
		return NewNonNullOfType(innerType), nil
	}

	return nil, NewError(fmt.Sprintf("unexpected type node %T", t), ErrKindInternal)
}
