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

package ast

import (
	"github.com/botobag/selene/sdl/token"
)

// Node represents a node in an AST tree from parsing SDL text.
type Node interface {
	// TokenRange indicates the region of the Node in the source.
	TokenRange() token.Range
}

// Name represents a name.
type Name struct {
	// Token is the lexical token that contains the name (usually scanned by lexer) and also
	// indicates the location in the source; Its kind must be an token.KindName.
	Token *token.Token
}

var _ Node = Name{}

// Value returns the name in string.
func (node Name) Value() string {
	return node.Token.Value
}

// TokenRange implements Node.
func (node Name) TokenRange() token.Range {
	return token.Range{
		First: node.Token,
		Last:  node.Token,
	}
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

// Document represents a complete SDL document: an ordered sequence of type definitions. The order
// is significant; the printer reproduces declaration order.
type Document struct {
	// Definitions defined in the document.
	Definitions []Definition
}

var _ Node = Document{}

// TokenRange implements Node.
func (node Document) TokenRange() token.Range {
	if len(node.Definitions) == 0 {
		return token.Range{
			First: nil,
			Last:  nil,
		}
	}
	// The first token of a valid Document is always SOF and the last token is EOF. The location of
	// SOF is NoSourceLocation which should use with caution. (And the location of EOF is the
	// document size.)
	return token.Range{
		First: node.Definitions[0].TokenRange().First.Prev,
		Last:  node.Definitions[len(node.Definitions)-1].TokenRange().Last.Next,
	}
}

// Definition represents an SDL type definition. It is a tagged variant over the six definition
// kinds: Scalar, Object, Interface, Union, Enum and InputObject.
type Definition interface {
	Node

	// TypeName returns the name given to the type being defined. Names are unique within a
	// Document; the schema builder rejects duplicates.
	TypeName() Name

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition node can be assigned to Definition.
	definitionNode()
}

var (
	_ Definition = (*ScalarDefinition)(nil)
	_ Definition = (*ObjectDefinition)(nil)
	_ Definition = (*InterfaceDefinition)(nil)
	_ Definition = (*UnionDefinition)(nil)
	_ Definition = (*EnumDefinition)(nil)
	_ Definition = (*InputObjectDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// Field and Input Value Definitions
//===----------------------------------------------------------------------------------------====//

// FieldDefinition describes a field in an Object or Interface definition.
type FieldDefinition struct {
	// Name of the field
	Name Name

	// Arguments taken by the field; empty when the field declares no argument list.
	Arguments []*InputValueDefinition

	// Type of value yielded by the field
	Type Type
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range {
	return token.Range{
		First: node.Name.Token,
		Last:  node.Type.TokenRange().Last,
	}
}

// InputValueDefinition describes a field argument or an InputObject field: a name, a type
// reference and an optional literal default value.
type InputValueDefinition struct {
	// Name of the input value
	Name Name

	// Type of the value accepted by the input
	Type Type

	// DefaultValue is the literal assigned to the input when no value is supplied; nil when the
	// definition doesn't specify one.
	DefaultValue Value
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	var lastToken *token.Token
	if node.DefaultValue != nil {
		lastToken = node.DefaultValue.TokenRange().Last
	} else {
		lastToken = node.Type.TokenRange().Last
	}
	return token.Range{
		First: node.Name.Token,
		Last:  lastToken,
	}
}

//===----------------------------------------------------------------------------------------====//
// Scalar Definition
//===----------------------------------------------------------------------------------------====//

// ScalarDefinition declares a custom scalar type: "scalar Name".
type ScalarDefinition struct {
	// Keyword is the "scalar" token that starts the definition.
	Keyword *token.Token

	// Name of the scalar
	Name Name
}

// TypeName implements Definition.
func (definition *ScalarDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *ScalarDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		Last:  definition.Name.Token,
	}
}

// definitionNode implements Definition.
func (*ScalarDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Object Definition
//===----------------------------------------------------------------------------------------====//

// ObjectDefinition declares an object type: "type Name [implements I1, I2] { fields }".
type ObjectDefinition struct {
	// Keyword is the "type" token that starts the definition.
	Keyword *token.Token

	// Name of the object
	Name Name

	// Interfaces contains names of the interfaces implemented by the object, in declaration order.
	Interfaces []Name

	// Fields in the object, in declaration order
	Fields []*FieldDefinition
}

// TypeName implements Definition.
func (definition *ObjectDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *ObjectDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		// Find right brace "}" token after the last field.
		Last: definition.Fields[len(definition.Fields)-1].TokenRange().Last.Next,
	}
}

// definitionNode implements Definition.
func (*ObjectDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Interface Definition
//===----------------------------------------------------------------------------------------====//

// InterfaceDefinition declares an interface type: "interface Name { fields }".
type InterfaceDefinition struct {
	// Keyword is the "interface" token that starts the definition.
	Keyword *token.Token

	// Name of the interface
	Name Name

	// Fields in the interface, in declaration order
	Fields []*FieldDefinition
}

// TypeName implements Definition.
func (definition *InterfaceDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *InterfaceDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		Last:  definition.Fields[len(definition.Fields)-1].TokenRange().Last.Next,
	}
}

// definitionNode implements Definition.
func (*InterfaceDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Union Definition
//===----------------------------------------------------------------------------------------====//

// UnionDefinition declares a union type: "union Name = Member1 | Member2". A union has at least
// one member.
type UnionDefinition struct {
	// Keyword is the "union" token that starts the definition.
	Keyword *token.Token

	// Name of the union
	Name Name

	// Members contains names of the union member types, in declaration order
	Members []Name
}

// TypeName implements Definition.
func (definition *UnionDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *UnionDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		Last:  definition.Members[len(definition.Members)-1].Token,
	}
}

// definitionNode implements Definition.
func (*UnionDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Enum Definition
//===----------------------------------------------------------------------------------------====//

// EnumDefinition declares an enum type: "enum Name { VALUE1 VALUE2 }". An enum has at least one
// value.
type EnumDefinition struct {
	// Keyword is the "enum" token that starts the definition.
	Keyword *token.Token

	// Name of the enum
	Name Name

	// Values contains names of the enum values, in declaration order
	Values []Name
}

// TypeName implements Definition.
func (definition *EnumDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *EnumDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		// Find right brace "}" token after the last value.
		Last: definition.Values[len(definition.Values)-1].Token.Next,
	}
}

// definitionNode implements Definition.
func (*EnumDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// InputObject Definition
//===----------------------------------------------------------------------------------------====//

// InputObjectDefinition declares an input object type: "input Name { field: Type [= default] }".
type InputObjectDefinition struct {
	// Keyword is the "input" token that starts the definition.
	Keyword *token.Token

	// Name of the input object
	Name Name

	// Fields in the input object, in declaration order
	Fields []*InputValueDefinition
}

// TypeName implements Definition.
func (definition *InputObjectDefinition) TypeName() Name {
	return definition.Name
}

// TokenRange implements Node.
func (definition *InputObjectDefinition) TokenRange() token.Range {
	return token.Range{
		First: definition.Keyword,
		Last:  definition.Fields[len(definition.Fields)-1].TokenRange().Last.Next,
	}
}

// definitionNode implements Definition.
func (*InputObjectDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Type Reference
//===----------------------------------------------------------------------------------------====//

// Type describes a reference to a type of data: a named type, possibly wrapped in List and
// NonNull modifiers.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node. It makes sure that only type node can be
	// assigned to Type.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NullableType is a Type that can be wrapped in NonNullType. More specifically, NamedType and
// ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

var (
	_ NullableType = NamedType{}
	_ NullableType = ListType{}
)

// NamedType refers to a named type.
type NamedType struct {
	// Name of the type referred by this node
	Name Name
}

// TokenRange implements Node.
func (t NamedType) TokenRange() token.Range {
	return t.Name.TokenRange()
}

// typeNode implements Type.
func (NamedType) typeNode() {}

// nullableTypeNode implements NullableType.
func (NamedType) nullableTypeNode() {}

// ListType referes to a list type of an item type.
type ListType struct {
	// ItemType specifies the type of item in the list.
	ItemType Type
}

// TokenRange implements Node.
func (t ListType) TokenRange() token.Range {
	var r token.Range

	// Find the innermost NameType. Push the intermediate Type to stack.
	stack := []Type{t}

	ttype := t.ItemType
	for r.First == nil {
		switch x := ttype.(type) {
		case NamedType:
			// Set r.First to exit the loop.
			r.First = x.Name.Token
			r.Last = x.Name.Token

		case ListType:
			stack = append(stack, ttype)
			// Unwrap the item type.
			ttype = x.ItemType

		case NonNullType:
			stack = append(stack, ttype)
			// Unwrap the nullable type.
			ttype = x.Type
		}
	}

	// Now, unwind stack to derive the first and last token of the ListType.
	for len(stack) > 0 {
		// Pop one from stack.
		ttype, stack = stack[len(stack)-1], stack[:len(stack)-1]
		switch ttype.(type) {
		case ListType:
			r.First = r.First.Prev // left bracket
			r.Last = r.Last.Next   // right bracket

		case NonNullType:
			r.Last = r.Last.Next // bang!
		}
	}

	return r
}

// typeNode implements Type
func (ListType) typeNode() {}

// nullableTypeNode implements NullableType.
func (ListType) nullableTypeNode() {}

// NonNullType refers to a type that doesn't accept null value.
type NonNullType struct {
	// Type wrapped in this non-null type; Can only be an NamedType or an ListType.
	Type NullableType
}

// TokenRange implements Node.
func (t NonNullType) TokenRange() token.Range {
	r := t.Type.TokenRange()
	// NonNullType ends with bang (!) token which should be next to the last token of the inner type.
	r.Last = r.Last.Next
	return r
}

// typeNode implements Type.
func (NonNullType) typeNode() {}
