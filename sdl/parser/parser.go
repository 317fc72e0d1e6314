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

package parser

import (
	"fmt"

	"github.com/botobag/selene/sdl"
	"github.com/botobag/selene/sdl/ast"
	"github.com/botobag/selene/sdl/lexer"
	"github.com/botobag/selene/sdl/token"
)

// parser holds internal state during parsing.
type parser struct {
	// The lexer for tokenization
	lexer *lexer.Lexer
}

func newParser(source *sdl.Source) (*parser, error) {
	if source == nil {
		return nil, sdl.NewError("Must provide Source. Received: nil")
	}
	return &parser{
		lexer: lexer.New(source),
	}, nil
}

// If the next token is of the given kind, return true after advancing the lexer. Otherwise, do not
// change the parser state and return false.
func (p *parser) skip(tokenKind token.Kind) (bool, error) {
	if p.lexer.Token().Kind == tokenKind {
		if _, err := p.lexer.Advance(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// If the next token is of the given kind, return that token after advancing the lexer. Otherwise,
// do not change the parser state and throw an error.
func (p *parser) expect(tokenKind token.Kind) (*token.Token, error) {
	token := p.lexer.Token()
	if token.Kind == tokenKind {
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return token, nil
	}
	return nil, sdl.NewSyntaxError(
		p.lexer.Source(),
		token.Location,
		fmt.Sprintf("Expected %v, found %s", tokenKind, token.Description()))
}

// If the next token is a keyword with the given value, return true after advancing the lexer.
// Otherwise, do not change the parser state and return false.
func (p *parser) skipKeyword(keyword string) (bool, error) {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == keyword {
		_, err := p.lexer.Advance()
		if err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// If the next token is a keyword with the given value, return that token after advancing the
// lexer. Otherwise, do not change the parser state and throw an error.
func (p *parser) expectKeyword(keyword string) (*token.Token, error) {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == keyword {
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return tok, nil
	}

	tok := p.peek()
	return nil, sdl.NewSyntaxError(p.lexer.Source(), tok.Location,
		fmt.Sprintf(`Expected "%s", found %s`, keyword, tok.Description()))
}

// Peek return current token without consume it.
func (p *parser) peek() *token.Token {
	return p.lexer.Token()
}

// Helper function for creating an error when an unexpected lexed token is encountered.
func (p *parser) unexpected() error {
	token := p.lexer.Token()
	return sdl.NewSyntaxError(
		p.lexer.Source(), token.Location, fmt.Sprintf("Unexpected %s", token.Description()))
}

// Converts a name lex token into a name parse node.
func (p *parser) parseName() (ast.Name, error) {
	token, err := p.expect(token.KindName)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{
		Token: token,
	}, nil
}

//	Document ::
//		TypeDefinition+
func (p *parser) parseDocument() (ast.Document, error) {
	// Expect SOF.
	if _, err := p.expect(token.KindSOF); err != nil {
		return ast.Document{}, err
	}

	definitions := make([]ast.Definition, 0, 1)
	for {
		definition, err := p.parseDefinition()
		if err != nil {
			return ast.Document{}, err
		}

		definitions = append(definitions, definition)

		// Stop on encountering an EOF token.
		stop, err := p.skip(token.KindEOF)
		if err != nil {
			return ast.Document{}, err
		}

		if stop {
			break
		}
	}

	return ast.Document{
		Definitions: definitions,
	}, nil
}

//	TypeDefinition ::
//		ScalarTypeDefinition
//		ObjectTypeDefinition
//		InterfaceTypeDefinition
//		UnionTypeDefinition
//		EnumTypeDefinition
//		InputObjectTypeDefinition
func (p *parser) parseDefinition() (ast.Definition, error) {
	tok := p.peek()
	if tok.Kind == token.KindName {
		switch tok.Value {
		case "scalar":
			return p.parseScalarDefinition()
		case "type":
			return p.parseObjectDefinition()
		case "interface":
			return p.parseInterfaceDefinition()
		case "union":
			return p.parseUnionDefinition()
		case "enum":
			return p.parseEnumDefinition()
		case "input":
			return p.parseInputObjectDefinition()
		}
	}

	return nil, p.unexpected()
}

//	ScalarTypeDefinition ::
//		scalar Name
func (p *parser) parseScalarDefinition() (*ast.ScalarDefinition, error) {
	keyword, err := p.expectKeyword("scalar")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	return &ast.ScalarDefinition{
		Keyword: keyword,
		Name:    name,
	}, nil
}

//	ObjectTypeDefinition ::
//		type Name ImplementsInterfaces? FieldsDefinition
func (p *parser) parseObjectDefinition() (*ast.ObjectDefinition, error) {
	keyword, err := p.expectKeyword("type")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectDefinition{
		Keyword:    keyword,
		Name:       name,
		Interfaces: interfaces,
		Fields:     fields,
	}, nil
}

//	ImplementsInterfaces ::
//		implements NamedType+
//
// Note that interface names are separated by commas which the lexer treats as insignificant; the
// list simply runs until a non-name token (the "{" opening the fields).
func (p *parser) parseImplementsInterfaces() ([]ast.Name, error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil {
		return nil, err
	}
	if !hasImplements {
		return nil, nil
	}

	var interfaces []ast.Name
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, name)

		if p.peek().Kind != token.KindName {
			break
		}
	}
	return interfaces, nil
}

//	InterfaceTypeDefinition ::
//		interface Name FieldsDefinition
func (p *parser) parseInterfaceDefinition() (*ast.InterfaceDefinition, error) {
	keyword, err := p.expectKeyword("interface")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceDefinition{
		Keyword: keyword,
		Name:    name,
		Fields:  fields,
	}, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}

	return fields, nil
}

//	FieldDefinition ::
//		Name ArgumentsDefinition? : Type
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	return &ast.FieldDefinition{
		Name:      name,
		Arguments: arguments,
		Type:      fieldType,
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}

	return arguments, nil
}

//	InputValueDefinition ::
//		Name : Type DefaultValue?
//
//	DefaultValue ::
//		= Value
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	hasDefault, err := p.skip(token.KindEquals)
	if err != nil {
		return nil, err
	}
	if hasDefault {
		if defaultValue, err = p.parseValue(); err != nil {
			return nil, err
		}
	}

	return &ast.InputValueDefinition{
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
	}, nil
}

//	UnionTypeDefinition ::
//		union Name = UnionMemberTypes
//
//	UnionMemberTypes ::
//		NamedType
//		UnionMemberTypes | NamedType
func (p *parser) parseUnionDefinition() (*ast.UnionDefinition, error) {
	keyword, err := p.expectKeyword("union")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindEquals); err != nil {
		return nil, err
	}

	var members []ast.Name
	for {
		member, err := p.parseName()
		if err != nil {
			return nil, err
		}
		members = append(members, member)

		more, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		} else if !more {
			break
		}
	}

	return &ast.UnionDefinition{
		Keyword: keyword,
		Name:    name,
		Members: members,
	}, nil
}

//	EnumTypeDefinition ::
//		enum Name { EnumValue+ }
func (p *parser) parseEnumDefinition() (*ast.EnumDefinition, error) {
	keyword, err := p.expectKeyword("enum")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var values []ast.Name
	for {
		value, err := p.parseName()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}

	return &ast.EnumDefinition{
		Keyword: keyword,
		Name:    name,
		Values:  values,
	}, nil
}

//	InputObjectTypeDefinition ::
//		input Name { InputValueDefinition+ }
func (p *parser) parseInputObjectDefinition() (*ast.InputObjectDefinition, error) {
	keyword, err := p.expectKeyword("input")
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}

	return &ast.InputObjectDefinition{
		Keyword: keyword,
		Name:    name,
		Fields:  fields,
	}, nil
}

//	Value ::
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue
//		ObjectValue
//
//	BooleanValue::
//		true or false
//
//	NullValue::
//		null
//
//	EnumValue ::
//		Name but not true or false or null
func (p *parser) parseValue() (ast.Value, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindInt:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return ast.IntValue{
			Token: tok,
		}, nil

	case token.KindFloat:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return ast.FloatValue{
			Token: tok,
		}, nil

	case token.KindString:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return ast.StringValue{
			Token: tok,
		}, nil

	case token.KindName:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}

		switch tok.Value {
		case "true", "false":
			return ast.BooleanValue{
				Token: tok,
			}, nil

		case "null":
			return ast.NullValue{
				Token: tok,
			}, nil

		default:
			return ast.EnumValue{
				Token: tok,
			}, nil
		}

	case token.KindLeftBracket:
		return p.parseListValue()

	case token.KindLeftBrace:
		return p.parseObjectValue()
	}

	return nil, p.unexpected()
}

//	ListValue ::
//		[ ]
//		[ Value+ ]
func (p *parser) parseListValue() (ast.ListValue, error) {
	startToken, err := p.expect(token.KindLeftBracket)
	if err != nil {
		return ast.ListValue{}, err
	}

	var values []ast.Value
	for {
		// Stop on ] token.
		stop, err := p.skip(token.KindRightBracket)
		if err != nil {
			return ast.ListValue{}, err
		}
		if stop {
			break
		}

		value, err := p.parseValue()
		if err != nil {
			return ast.ListValue{}, err
		}

		values = append(values, value)
	}

	if len(values) == 0 {
		// Store the start token for empty list value.
		return ast.ListValue{
			ValuesOrStartToken: startToken,
		}, nil
	}
	return ast.ListValue{
		ValuesOrStartToken: values,
	}, nil
}

//	ObjectValue ::
//		{ }
//		{ ObjectField+ }
func (p *parser) parseObjectValue() (ast.ObjectValue, error) {
	startToken, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return ast.ObjectValue{}, err
	}

	var fields []*ast.ObjectField
	for {
		// Stop on } token.
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return ast.ObjectValue{}, err
		}
		if stop {
			break
		}

		// Parse a ObjectField.
		field, err := p.parseObjectField()
		if err != nil {
			return ast.ObjectValue{}, err
		}

		fields = append(fields, field)
	}

	if len(fields) == 0 {
		// Store the start token for empty object value.
		return ast.ObjectValue{
			FieldsOrStartToken: startToken,
		}, nil
	}
	return ast.ObjectValue{
		FieldsOrStartToken: fields,
	}, nil
}

//	ObjectField ::
//		Name : Value
func (p *parser) parseObjectField() (*ast.ObjectField, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectField{
		Name:  name,
		Value: value,
	}, nil
}

//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
//	NamedType ::
//		Name
//
//	ListType ::
//		[ Type ]
//
//	NonNullType ::
//		NamedType !
//		ListType !
func (p *parser) parseType() (ast.Type, error) {
	var t ast.Type

	// See how many level are the innermost named type nested in the list.
	listLevel := 0
	for {
		isOpeningList, err := p.skip(token.KindLeftBracket)
		if err != nil {
			return nil, err
		} else if isOpeningList {
			listLevel++
		} else {
			// Must be a Name.
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}

			t = ast.NamedType{
				Name: name,
			}

			// Stop when innermost named type is reached. No opening list is allowed.
			break
		}
	}

	for listLevel > 0 {
		isNonNull, err := p.skip(token.KindBang)
		if err != nil {
			return nil, err
		} else if isNonNull {
			t = ast.NonNullType{
				// Must be a nullable type because we only allow at most one "!" when closing the list.
				Type: t.(ast.NullableType),
			}
		}

		if _, err := p.expect(token.KindRightBracket); err != nil {
			return nil, err
		}

		t = ast.ListType{
			ItemType: t,
		}
		listLevel--
	}

	// The result type could be further wrapped into a non-null type.
	isNonNull, err := p.skip(token.KindBang)
	if err != nil {
		return nil, err
	} else if isNonNull {
		t = ast.NonNullType{
			Type: t.(ast.NullableType),
		}
	}

	return t, nil
}
