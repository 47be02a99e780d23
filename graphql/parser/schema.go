/**
 * Copyright (c) 2018, The Artemis Authors.
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

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/schema"
	"github.com/botobag/gqldoc/graphql/token"
)

// schemaParser parses type system documents into a schema.Writer.
type schemaParser struct {
	*parser
	w *schema.Writer
}

func newSchemaParser(source *token.Source, w *schema.Writer, options ParseOptions) *schemaParser {
	return &schemaParser{
		parser: newParser(source, w.Writer, options),
		w:      w,
	}
}

//	Document ::
//		TypeSystemDefinitionOrExtension+
func (p *schemaParser) parseDocument() (*schema.Document, error) {
	if _, err := p.expect(token.KindSOF); err != nil {
		return nil, err
	}

	for {
		if err := p.parseDefinition(); err != nil {
			return nil, err
		}

		stop, err := p.skip(token.KindEOF)
		if err != nil {
			return nil, err
		} else if stop {
			return p.w.Finish(), nil
		}
	}
}

type optionalDescription = ast.Optional[schema.DescriptionID]

//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
//	TypeSystemExtension ::
//		extend SchemaExtension
//		extend TypeExtension
//
//	TypeDefinition ::
//		ScalarTypeDefinition
//		ObjectTypeDefinition
//		InterfaceTypeDefinition
//		UnionTypeDefinition
//		EnumTypeDefinition
//		InputObjectTypeDefinition
func (p *schemaParser) parseDefinition() error {
	start := p.peek()

	// Many definitions begin with a description and require a lookahead.
	description, err := p.parseDescription()
	if err != nil {
		return err
	}

	keyword := p.peek()
	extend := false
	if keyword.Kind == token.KindName && keyword.Value == "extend" {
		if description.IsSome() {
			return graphql.NewSyntaxError(p.lexer.Source(), start.Location(),
				"Unexpected description, descriptions are supported only on type definitions.")
		}
		if _, err := p.advance(); err != nil {
			return err
		}
		keyword = p.peek()
		extend = true
	}

	if keyword.Kind == token.KindName {
		switch keyword.Value {
		case "schema":
			return p.parseSchemaDefinition(start, description, extend)
		case "scalar":
			return p.parseScalarTypeDefinition(start, description, extend)
		case "type":
			return p.parseObjectTypeDefinition(start, description, extend)
		case "interface":
			return p.parseInterfaceTypeDefinition(start, description, extend)
		case "union":
			return p.parseUnionTypeDefinition(start, description, extend)
		case "enum":
			return p.parseEnumTypeDefinition(start, description, extend)
		case "input":
			return p.parseInputObjectTypeDefinition(start, description, extend)
		case "directive":
			if !extend {
				return p.parseDirectiveDefinition(start, description)
			}
		}
	}

	return p.unexpectedToken(keyword)
}

//	Description ::
//		StringValue
func (p *schemaParser) parseDescription() (optionalDescription, error) {
	tok := p.peek()
	if tok.Kind != token.KindString && tok.Kind != token.KindBlockString {
		return ast.None[schema.DescriptionID](), nil
	}

	literal, _, err := p.parseStringLiteral()
	if err != nil {
		return ast.None[schema.DescriptionID](), err
	}

	return ast.Some(p.w.Description(schema.DescriptionRecord{
		Literal: literal,
		Span:    tok.Span,
	})), nil
}

//	SchemaDefinition ::
//		Description? schema Directives[Const]? { RootOperationTypeDefinition+ }
//
//	SchemaExtension ::
//		extend schema Directives[Const]? { RootOperationTypeDefinition+ }
//		extend schema Directives[Const]
func (p *schemaParser) parseSchemaDefinition(start token.Token, description optionalDescription, extend bool) error {
	if _, err := p.expectKeyword("schema"); err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	var numRootOperations int
	if extend {
		numRootOperations, err = p.optionalMany(token.KindLeftBrace, p.parseRootOperationTypeDefinition, token.KindRightBrace)
	} else {
		numRootOperations, err = p.many(token.KindLeftBrace, p.parseRootOperationTypeDefinition, token.KindRightBrace)
	}
	if err != nil {
		return err
	}
	rootOperations := p.w.RootOperationTypeRange(numRootOperations)

	record := schema.SchemaDefinitionRecord{
		Description:    description,
		Directives:     directives,
		RootOperations: rootOperations,
		Span:           p.spanSince(start.Span),
	}

	if extend {
		if directives.IsEmpty() && rootOperations.IsEmpty() {
			return p.unexpected()
		}
		p.w.SchemaExtension(record)
	} else {
		p.w.SchemaDefinition(record)
	}
	return nil
}

//	RootOperationTypeDefinition ::
//		OperationType : NamedType
func (p *schemaParser) parseRootOperationTypeDefinition() error {
	start := p.peek()

	operation, err := p.parseOperationType()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return err
	}

	name, nameToken, err := p.parseName()
	if err != nil {
		return err
	}

	p.w.RootOperationTypeDefinition(schema.RootOperationTypeDefinitionRecord{
		OperationType: operation,
		NamedType:     name,
		Span:          start.Span.Cover(nameToken.Span),
	})
	return nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
//
//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *schemaParser) parseScalarTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	if _, err := p.expectKeyword("scalar"); err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	record := schema.ScalarDefinitionRecord{
		Name:        name,
		Description: description,
		Directives:  directives,
		Span:        p.spanSince(start.Span),
	}

	if extend {
		if directives.IsEmpty() {
			return p.unexpected()
		}
		p.w.ScalarExtension(record)
	} else {
		p.w.ScalarDefinition(record)
	}
	return nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
//
//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *schemaParser) parseObjectTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	record, err := p.parseFieldsContainer("type", start, description, extend)
	if err != nil {
		return err
	}

	if extend {
		p.w.ObjectExtension(record)
	} else {
		p.w.ObjectDefinition(record)
	}
	return nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
//
//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives[Const]
//		extend interface Name ImplementsInterfaces
func (p *schemaParser) parseInterfaceTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	record, err := p.parseFieldsContainer("interface", start, description, extend)
	if err != nil {
		return err
	}

	if extend {
		p.w.InterfaceExtension(schema.InterfaceDefinitionRecord(record))
	} else {
		p.w.InterfaceDefinition(schema.InterfaceDefinitionRecord(record))
	}
	return nil
}

// parseFieldsContainer parses the common structure of object and interface types.
func (p *schemaParser) parseFieldsContainer(
	keyword string,
	start token.Token,
	description optionalDescription,
	extend bool) (schema.ObjectDefinitionRecord, error) {

	if _, err := p.expectKeyword(keyword); err != nil {
		return schema.ObjectDefinitionRecord{}, err
	}

	name, _, err := p.parseName()
	if err != nil {
		return schema.ObjectDefinitionRecord{}, err
	}

	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return schema.ObjectDefinitionRecord{}, err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return schema.ObjectDefinitionRecord{}, err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return schema.ObjectDefinitionRecord{}, err
	}

	if extend && implements.IsEmpty() && directives.IsEmpty() && fields.IsEmpty() {
		return schema.ObjectDefinitionRecord{}, p.unexpected()
	}

	return schema.ObjectDefinitionRecord{
		Name:        name,
		Description: description,
		Implements:  implements,
		Directives:  directives,
		Fields:      fields,
		Span:        p.spanSince(start.Span),
	}, nil
}

//	ImplementsInterfaces ::
//		ImplementsInterfaces & NamedType
//		implements &? NamedType
func (p *schemaParser) parseImplementsInterfaces() (ast.IDRange[schema.NamedTypeID], error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil {
		return ast.IDRange[schema.NamedTypeID]{}, err
	} else if !hasImplements {
		return p.w.NamedTypeRange(0), nil
	}

	count, err := p.parseNamedTypeList(token.KindAmp)
	if err != nil {
		return ast.IDRange[schema.NamedTypeID]{}, err
	}
	return p.w.NamedTypeRange(count), nil
}

// parseNamedTypeList parses one or more named types separated by separator. A leading separator is
// allowed.
func (p *schemaParser) parseNamedTypeList(separator token.Kind) (int, error) {
	// Optional leading separator
	if _, err := p.skip(separator); err != nil {
		return 0, err
	}

	count := 0
	for {
		name, nameToken, err := p.parseName()
		if err != nil {
			return 0, err
		}
		p.w.NamedType(schema.NamedTypeRecord{
			Name: name,
			Span: nameToken.Span,
		})
		count++

		more, err := p.skip(separator)
		if err != nil {
			return 0, err
		} else if !more {
			return count, nil
		}
	}
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *schemaParser) parseFieldsDefinition() (ast.IDRange[schema.FieldDefinitionID], error) {
	count, err := p.optionalMany(token.KindLeftBrace, p.parseFieldDefinition, token.KindRightBrace)
	if err != nil {
		return ast.IDRange[schema.FieldDefinitionID]{}, err
	}
	return p.w.FieldDefinitionRange(count), nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *schemaParser) parseFieldDefinition() error {
	start := p.peek()

	description, err := p.parseDescription()
	if err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	arguments, err := p.parseArgumentDefinitions()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return err
	}

	t, err := p.parseType()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	p.w.FieldDefinition(schema.FieldDefinitionRecord{
		Name:        name,
		Description: description,
		Arguments:   arguments,
		Type:        t,
		Directives:  directives,
		Span:        p.spanSince(start.Span),
	})
	return nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *schemaParser) parseArgumentDefinitions() (ast.IDRange[schema.InputValueDefinitionID], error) {
	count, err := p.optionalMany(token.KindLeftParen, p.parseInputValueDefinition, token.KindRightParen)
	if err != nil {
		return ast.IDRange[schema.InputValueDefinitionID]{}, err
	}
	return p.w.InputValueDefinitionRange(count), nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
func (p *schemaParser) parseInputValueDefinition() error {
	start := p.peek()

	description, err := p.parseDescription()
	if err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return err
	}

	t, err := p.parseType()
	if err != nil {
		return err
	}

	defaultValue, err := p.parseDefaultValue()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	p.w.InputValueDefinition(schema.InputValueDefinitionRecord{
		Name:         name,
		Description:  description,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
		Span:         p.spanSince(start.Span),
	})
	return nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
//
//	UnionMemberTypes ::
//		UnionMemberTypes | NamedType
//		= |? NamedType
//
//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *schemaParser) parseUnionTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	if _, err := p.expectKeyword("union"); err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	numMembers := 0
	hasMembers, err := p.skip(token.KindEquals)
	if err != nil {
		return err
	} else if hasMembers {
		numMembers, err = p.parseNamedTypeList(token.KindPipe)
		if err != nil {
			return err
		}
	}
	members := p.w.NamedTypeRange(numMembers)

	record := schema.UnionDefinitionRecord{
		Name:        name,
		Description: description,
		Directives:  directives,
		Members:     members,
		Span:        p.spanSince(start.Span),
	}

	if extend {
		if directives.IsEmpty() && members.IsEmpty() {
			return p.unexpected()
		}
		p.w.UnionExtension(record)
	} else {
		p.w.UnionDefinition(record)
	}
	return nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
//
//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
//
//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *schemaParser) parseEnumTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	if _, err := p.expectKeyword("enum"); err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	numValues, err := p.optionalMany(token.KindLeftBrace, p.parseEnumValueDefinition, token.KindRightBrace)
	if err != nil {
		return err
	}
	values := p.w.EnumValueDefinitionRange(numValues)

	record := schema.EnumDefinitionRecord{
		Name:        name,
		Description: description,
		Directives:  directives,
		Values:      values,
		Span:        p.spanSince(start.Span),
	}

	if extend {
		if directives.IsEmpty() && values.IsEmpty() {
			return p.unexpected()
		}
		p.w.EnumExtension(record)
	} else {
		p.w.EnumDefinition(record)
	}
	return nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
//
//	EnumValue ::
//		Name but not true, false or null
func (p *schemaParser) parseEnumValueDefinition() error {
	start := p.peek()

	description, err := p.parseDescription()
	if err != nil {
		return err
	}

	if tok := p.peek(); tok.Kind == token.KindName {
		switch tok.Value {
		case "true", "false", "null":
			return graphql.NewSyntaxError(p.lexer.Source(), tok.Location(),
				fmt.Sprintf("%s is reserved and cannot be used for an enum value.", tok.Description()))
		}
	}

	value, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	p.w.EnumValueDefinition(schema.EnumValueDefinitionRecord{
		Value:       value,
		Description: description,
		Directives:  directives,
		Span:        p.spanSince(start.Span),
	})
	return nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
//
//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
//
//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *schemaParser) parseInputObjectTypeDefinition(start token.Token, description optionalDescription, extend bool) error {
	if _, err := p.expectKeyword("input"); err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	numFields, err := p.optionalMany(token.KindLeftBrace, p.parseInputValueDefinition, token.KindRightBrace)
	if err != nil {
		return err
	}
	fields := p.w.InputValueDefinitionRange(numFields)

	record := schema.InputObjectDefinitionRecord{
		Name:        name,
		Description: description,
		Directives:  directives,
		Fields:      fields,
		Span:        p.spanSince(start.Span),
	}

	if extend {
		if directives.IsEmpty() && fields.IsEmpty() {
			return p.unexpected()
		}
		p.w.InputObjectExtension(record)
	} else {
		p.w.InputObjectDefinition(record)
	}
	return nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
//
//	DirectiveLocations ::
//		DirectiveLocations | DirectiveLocation
//		|? DirectiveLocation
func (p *schemaParser) parseDirectiveDefinition(start token.Token, description optionalDescription) error {
	if _, err := p.expectKeyword("directive"); err != nil {
		return err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	arguments, err := p.parseArgumentDefinitions()
	if err != nil {
		return err
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return err
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return err
	}

	// Optional leading pipe
	if _, err := p.skip(token.KindPipe); err != nil {
		return err
	}

	numLocations := 0
	for {
		if err := p.parseDirectiveLocation(); err != nil {
			return err
		}
		numLocations++

		more, err := p.skip(token.KindPipe)
		if err != nil {
			return err
		} else if !more {
			break
		}
	}

	p.w.DirectiveDefinition(schema.DirectiveDefinitionRecord{
		Name:        name,
		Description: description,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   p.w.DirectiveLocationRange(numLocations),
		Span:        p.spanSince(start.Span),
	})
	return nil
}

//	DirectiveLocation ::
//		ExecutableDirectiveLocation
//		TypeSystemDirectiveLocation
func (p *schemaParser) parseDirectiveLocation() error {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return err
	}

	location, ok := schema.DirectiveLocationFromName(tok.Value)
	if !ok {
		return p.unexpectedToken(tok)
	}

	p.w.DirectiveLocation(schema.DirectiveLocationRecord{
		Location: location,
		Span:     tok.Span,
	})
	return nil
}
