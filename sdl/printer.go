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
	"strconv"

	"github.com/botobag/selene/internal/util"
)

// PrintSchema renders a schema back into canonical SDL text. The output is deterministic,
// re-parseable, and a fixpoint: printing the schema materialized from the output reproduces the
// output byte for byte.
//
// Each type defined by the document becomes one block; blocks follow document order and are
// separated by a blank line, with a single newline before the first block and after the last.
// Built-in scalars are not printed.
func PrintSchema(schema *Schema) string {
	var b util.StringBuilder

	types := schema.TypeMap().Types()
	for i, t := range types {
		if i == 0 {
			b.WriteRune('\n')
		} else {
			b.WriteString("\n\n")
		}
		printTypeBlock(&b, t)
	}
	b.WriteRune('\n')

	return b.String()
}

func printTypeBlock(b *util.StringBuilder, t Type) {
	switch t := t.(type) {
	case *Scalar:
		b.WriteString("scalar ")
		b.WriteString(t.Name())

	case *Object:
		b.WriteString("type ")
		b.WriteString(t.Name())
		if interfaces := t.Interfaces(); len(interfaces) > 0 {
			b.WriteString(" implements ")
			for i, iface := range interfaces {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(iface.Name())
			}
		}
		printFields(b, t.Fields())

	case *Interface:
		b.WriteString("interface ")
		b.WriteString(t.Name())
		printFields(b, t.Fields())

	case *Union:
		b.WriteString("union ")
		b.WriteString(t.Name())
		b.WriteString(" = ")
		for i, member := range t.PossibleTypes() {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(member.Name())
		}

	case *Enum:
		b.WriteString("enum ")
		b.WriteString(t.Name())
		b.WriteString(" {\n")
		for _, value := range t.Values() {
			b.WriteString("  ")
			b.WriteString(value.Name())
			b.WriteRune('\n')
		}
		b.WriteRune('}')

	case *InputObject:
		b.WriteString("input ")
		b.WriteString(t.Name())
		b.WriteString(" {\n")
		for _, field := range t.Fields() {
			b.WriteString("  ")
			b.WriteString(field.Name())
			b.WriteString(": ")
			b.WriteString(field.Type().String())
			if field.HasDefaultValue() {
				b.WriteString(" = ")
				printValue(b, field.Type(), field.DefaultValue())
			}
			b.WriteRune('\n')
		}
		b.WriteRune('}')
	}
}

// printFields renders the field block shared by object and interface types.
func printFields(b *util.StringBuilder, fields []*Field) {
	b.WriteString(" {\n")
	for _, field := range fields {
		b.WriteString("  ")
		b.WriteString(field.Name())
		if args := field.Args(); len(args) > 0 {
			b.WriteRune('(')
			for i, arg := range args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(arg.Name())
				b.WriteString(": ")
				b.WriteString(arg.Type().String())
				if arg.HasDefaultValue() {
					b.WriteString(" = ")
					printValue(b, arg.Type(), arg.DefaultValue())
				}
			}
			b.WriteRune(')')
		}
		b.WriteString(": ")
		b.WriteString(field.Type().String())
		b.WriteRune('\n')
	}
	b.WriteRune('}')
}

// printValue renders a materialized default value as a value literal. Rendering mirrors the source
// literal form: integers print without quotes or decimal point and enum values print as bare names.
// ID defaults are the exception: they render from their coerced string value, so an integral ID
// default prints quoted.
func printValue(b *util.StringBuilder, t Type, value interface{}) {
	if value == nil {
		b.WriteString("null")
		return
	}

	switch t := NullableTypeOf(t).(type) {
	case *List:
		if values, ok := value.([]interface{}); ok {
			b.WriteRune('[')
			for i, v := range values {
				if i > 0 {
					b.WriteString(", ")
				}
				printValue(b, t.ElementType(), v)
			}
			b.WriteRune(']')
			return
		}

	case *Enum:
		// The internal value of an enum value is its name; print it bare.
		if name, ok := value.(string); ok {
			b.WriteString(name)
			return
		}

	case *InputObject:
		if fields, ok := value.([]InputFieldValue); ok {
			b.WriteRune('{')
			for i, fieldValue := range fields {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fieldValue.Name)
				b.WriteString(": ")
				var fieldType Type
				if field := t.FieldNamed(fieldValue.Name); field != nil {
					fieldType = field.Type()
				}
				printValue(b, fieldType, fieldValue.Value)
			}
			b.WriteRune('}')
			return
		}
	}

	switch value := value.(type) {
	case int:
		b.WriteString(strconv.Itoa(value))
	case float64:
		b.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	case bool:
		b.WriteString(strconv.FormatBool(value))
	case string:
		b.WriteString(strconv.Quote(value))
	default:
		b.WriteString(fmt.Sprintf("%v", value))
	}
}
