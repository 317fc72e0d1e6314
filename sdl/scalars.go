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
	"math"
	"strconv"

	"github.com/botobag/selene/sdl/ast"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +----------+---------------------------------+
// | SDL Type | Go Type ("internal value type") |
// +----------+---------------------------------+
// | Int      | int                             |
// | Float    | float64                         |
// | String   | string                          |
// | Boolean  | bool                            |
// | ID       | string                          |
// +----------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceLiteralValue is
// fixed to the one given in the table for each type. Therefore, for example, when you read an Int
// argument default, you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger       string = "not an integer"
	coercionErrorIntegerTooLarge         = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall         = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric              = "not a numeric value"
	coercionErrorNonString               = "not a string value"
	coercionErrorNonBoolean              = "not a boolean value"
	coercionErrorNonID                   = "not a valid ID value"
)

//===----------------------------------------------------------------------------------------====//
// Int
//===----------------------------------------------------------------------------------------====//
// The Int scalar type represents a signed 32-bit numeric non-fractional value.

// intCoercer implements literal coercion for the Int type.
type intCoercer struct{}

var _ ScalarLiteralCoercer = intCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (intCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	intValue, ok := value.(ast.IntValue)
	if !ok {
		return nil, NewCoercionError("Int cannot represent %v: %s", value.Interface(), coercionErrorNonInteger)
	}

	v, err := intValue.Int64Value()
	if err != nil {
		return nil, NewCoercionError("Int cannot represent %s: %s", intValue.String(), coercionErrorNonInteger)
	}
	if v > math.MaxInt32 {
		return nil, NewCoercionError("Int cannot represent %s: %s", intValue.String(), coercionErrorIntegerTooLarge)
	}
	if v < math.MinInt32 {
		return nil, NewCoercionError("Int cannot represent %s: %s", intValue.String(), coercionErrorIntegerTooSmall)
	}
	return int(v), nil
}

var intTypeInstance = &Scalar{
	name:    "Int",
	coercer: intCoercer{},
}

// Int returns the built-in Int scalar type.
func Int() *Scalar {
	return intTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// Float
//===----------------------------------------------------------------------------------------====//
// The Float scalar type represents a signed double-precision fractional value.

// floatCoercer implements literal coercion for the Float type.
type floatCoercer struct{}

var _ ScalarLiteralCoercer = floatCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (floatCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	// Both integer and float literals coerce to Float.
	switch value := value.(type) {
	case ast.IntValue:
		v, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return nil, NewCoercionError("Float cannot represent %s: %s", value.String(), coercionErrorNonNumeric)
		}
		return v, nil

	case ast.FloatValue:
		v, err := value.FloatValue()
		if err != nil {
			return nil, NewCoercionError("Float cannot represent %s: %s", value.String(), coercionErrorNonNumeric)
		}
		return v, nil
	}
	return nil, NewCoercionError("Float cannot represent %v: %s", value.Interface(), coercionErrorNonNumeric)
}

var floatTypeInstance = &Scalar{
	name:    "Float",
	coercer: floatCoercer{},
}

// Float returns the built-in Float scalar type.
func Float() *Scalar {
	return floatTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// String
//===----------------------------------------------------------------------------------------====//
// The String scalar type represents textual data as UTF-8 character sequences.

// stringCoercer implements literal coercion for the String type.
type stringCoercer struct{}

var _ ScalarLiteralCoercer = stringCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (stringCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	stringValue, ok := value.(ast.StringValue)
	if !ok {
		return nil, NewCoercionError("String cannot represent %v: %s", value.Interface(), coercionErrorNonString)
	}
	return stringValue.Value(), nil
}

var stringTypeInstance = &Scalar{
	name:    "String",
	coercer: stringCoercer{},
}

// String returns the built-in String scalar type.
func String() *Scalar {
	return stringTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// Boolean
//===----------------------------------------------------------------------------------------====//
// The Boolean scalar type represents true or false.

// booleanCoercer implements literal coercion for the Boolean type.
type booleanCoercer struct{}

var _ ScalarLiteralCoercer = booleanCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (booleanCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	booleanValue, ok := value.(ast.BooleanValue)
	if !ok {
		return nil, NewCoercionError("Boolean cannot represent %v: %s", value.Interface(), coercionErrorNonBoolean)
	}
	return booleanValue.Value(), nil
}

var booleanTypeInstance = &Scalar{
	name:    "Boolean",
	coercer: booleanCoercer{},
}

// Boolean returns the built-in Boolean scalar type.
func Boolean() *Scalar {
	return booleanTypeInstance
}

//===----------------------------------------------------------------------------------------====//
// ID
//===----------------------------------------------------------------------------------------====//
// The ID scalar type represents a unique identifier. It is serialized in the same way as a String
// but accepts both string and integer literals.

// idCoercer implements literal coercion for the ID type.
type idCoercer struct{}

var _ ScalarLiteralCoercer = idCoercer{}

// CoerceLiteralValue implements ScalarLiteralCoercer.
func (idCoercer) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	switch value := value.(type) {
	case ast.StringValue:
		return value.Value(), nil
	case ast.IntValue:
		return value.String(), nil
	}
	return nil, NewCoercionError("ID cannot represent %v: %s", value.Interface(), coercionErrorNonID)
}

var idTypeInstance = &Scalar{
	name:    "ID",
	coercer: idCoercer{},
}

// ID returns the built-in ID scalar type.
func ID() *Scalar {
	return idTypeInstance
}

// BuiltinScalar looks up a built-in scalar type by name. The second return value reports whether
// the name denotes a built-in scalar. References to built-in scalars resolve without a
// corresponding definition in the document.
func BuiltinScalar(name string) (*Scalar, bool) {
	switch name {
	case "Int":
		return intTypeInstance, true
	case "Float":
		return floatTypeInstance, true
	case "String":
		return stringTypeInstance, true
	case "Boolean":
		return booleanTypeInstance, true
	case "ID":
		return idTypeInstance, true
	}
	return nil, false
}
