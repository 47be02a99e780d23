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

package schema

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/iterator"
)

// SchemaDefinitionID identifies a schema definition or extension.
type SchemaDefinitionID uint32

// RootOperationTypeDefinitionID identifies an operation type declared in a schema definition.
type RootOperationTypeDefinitionID uint32

// ScalarDefinitionID identifies a scalar type definition or extension.
type ScalarDefinitionID uint32

// ObjectDefinitionID identifies an object type definition or extension.
type ObjectDefinitionID uint32

// InterfaceDefinitionID identifies an interface type definition or extension.
type InterfaceDefinitionID uint32

// UnionDefinitionID identifies a union type definition or extension.
type UnionDefinitionID uint32

// EnumDefinitionID identifies an enum type definition or extension.
type EnumDefinitionID uint32

// EnumValueDefinitionID identifies a value declared in an enum.
type EnumValueDefinitionID uint32

// InputObjectDefinitionID identifies an input object type definition or extension.
type InputObjectDefinitionID uint32

// FieldDefinitionID identifies a field of an object or an interface.
type FieldDefinitionID uint32

// InputValueDefinitionID identifies an argument definition or an input object field.
type InputValueDefinitionID uint32

// DirectiveDefinitionID identifies a directive definition.
type DirectiveDefinitionID uint32

// DirectiveLocationID identifies a location in a directive definition.
type DirectiveLocationID uint32

// DescriptionID identifies a description.
type DescriptionID uint32

// NamedTypeID identifies a type name in an implements list or in union members.
type NamedTypeID uint32

// DefinitionID is the position of a definition in the document.
type DefinitionID uint32

// DefinitionKind tags an entry in the definition list.
type DefinitionKind uint8

// Enumeration of DefinitionKind
const (
	DefinitionKindSchema DefinitionKind = iota
	DefinitionKindScalar
	DefinitionKindObject
	DefinitionKindInterface
	DefinitionKindUnion
	DefinitionKindEnum
	DefinitionKindInputObject
	DefinitionKindDirective
	DefinitionKindSchemaExtension
	DefinitionKindScalarExtension
	DefinitionKindObjectExtension
	DefinitionKindInterfaceExtension
	DefinitionKindUnionExtension
	DefinitionKindEnumExtension
	DefinitionKindInputObjectExtension
)

var definitionKindNames = [...]string{
	DefinitionKindSchema:               "SchemaDefinition",
	DefinitionKindScalar:               "ScalarTypeDefinition",
	DefinitionKindObject:               "ObjectTypeDefinition",
	DefinitionKindInterface:            "InterfaceTypeDefinition",
	DefinitionKindUnion:                "UnionTypeDefinition",
	DefinitionKindEnum:                 "EnumTypeDefinition",
	DefinitionKindInputObject:          "InputObjectTypeDefinition",
	DefinitionKindDirective:            "DirectiveDefinition",
	DefinitionKindSchemaExtension:      "SchemaExtension",
	DefinitionKindScalarExtension:      "ScalarTypeExtension",
	DefinitionKindObjectExtension:      "ObjectTypeExtension",
	DefinitionKindInterfaceExtension:   "InterfaceTypeExtension",
	DefinitionKindUnionExtension:       "UnionTypeExtension",
	DefinitionKindEnumExtension:        "EnumTypeExtension",
	DefinitionKindInputObjectExtension: "InputObjectTypeExtension",
}

func (kind DefinitionKind) String() string {
	if int(kind) < len(definitionKindNames) {
		return definitionKindNames[kind]
	}
	return "UnknownDefinition"
}

// IsExtension returns true for the kinds of "extend" definitions.
func (kind DefinitionKind) IsExtension() bool {
	return kind >= DefinitionKindSchemaExtension
}

// base maps an extension kind to the kind of definition it extends.
func (kind DefinitionKind) base() DefinitionKind {
	if kind.IsExtension() {
		return kind - DefinitionKindSchemaExtension
	}
	return kind
}

// DefinitionRecord is an entry in the definition list. ID indexes the arena selected by Kind. An
// extension is stored in the same arena as the definition it extends.
type DefinitionRecord struct {
	Kind DefinitionKind
	ID   uint32
}

// Document is a type system document.
type Document struct {
	store *ast.Store

	definitions          []DefinitionRecord
	schemaDefinitions    []SchemaDefinitionRecord
	rootOperationTypes   []RootOperationTypeDefinitionRecord
	scalarDefinitions    []ScalarDefinitionRecord
	objectDefinitions    []ObjectDefinitionRecord
	interfaceDefinitions []InterfaceDefinitionRecord
	unionDefinitions     []UnionDefinitionRecord
	enumDefinitions      []EnumDefinitionRecord
	enumValueDefinitions []EnumValueDefinitionRecord
	inputObjects         []InputObjectDefinitionRecord
	fieldDefinitions     []FieldDefinitionRecord
	inputValues          []InputValueDefinitionRecord
	directiveDefinitions []DirectiveDefinitionRecord
	directiveLocations   []DirectiveLocationRecord
	descriptions         []DescriptionRecord
	namedTypes           []NamedTypeRecord
}

// clone copies the document arenas. The store is copied by the ast.Writer that continues it.
func (doc *Document) clone() *Document {
	return &Document{
		definitions:          cloneSlice(doc.definitions),
		schemaDefinitions:    cloneSlice(doc.schemaDefinitions),
		rootOperationTypes:   cloneSlice(doc.rootOperationTypes),
		scalarDefinitions:    cloneSlice(doc.scalarDefinitions),
		objectDefinitions:    cloneSlice(doc.objectDefinitions),
		interfaceDefinitions: cloneSlice(doc.interfaceDefinitions),
		unionDefinitions:     cloneSlice(doc.unionDefinitions),
		enumDefinitions:      cloneSlice(doc.enumDefinitions),
		enumValueDefinitions: cloneSlice(doc.enumValueDefinitions),
		inputObjects:         cloneSlice(doc.inputObjects),
		fieldDefinitions:     cloneSlice(doc.fieldDefinitions),
		inputValues:          cloneSlice(doc.inputValues),
		directiveDefinitions: cloneSlice(doc.directiveDefinitions),
		directiveLocations:   cloneSlice(doc.directiveLocations),
		descriptions:         cloneSlice(doc.descriptions),
		namedTypes:           cloneSlice(doc.namedTypes),
	}
}

func cloneSlice[T any](s []T) []T {
	return append([]T(nil), s...)
}

// Strings returns the string table of the document.
func (doc *Document) Strings() ast.StringTable {
	return doc.store.Strings()
}

// NumBlockStrings returns the number of block strings in the document.
func (doc *Document) NumBlockStrings() int {
	return doc.store.NumBlockStrings()
}

// Definitions returns the definitions in source order.
func (doc *Document) Definitions() iterator.Iter[DefinitionID, Definition] {
	return ast.ReadRange[Definition](ast.NewIDRange(0, DefinitionID(len(doc.definitions))), doc)
}

// NumDefinitions returns the number of definitions in the document.
func (doc *Document) NumDefinitions() int {
	return len(doc.definitions)
}

// LookupType returns the first type definition (not extension) with the given name.
func (doc *Document) LookupType(name string) (TypeDefinition, bool) {
	nameID, exists := doc.Strings().Find(name)
	if !exists {
		return TypeDefinition{}, false
	}
	for i, def := range doc.definitions {
		if def.Kind.IsExtension() {
			continue
		}
		if t, ok := DefinitionID(i).Read(doc).AsType(); ok && t.nameID() == nameID {
			return t, true
		}
	}
	return TypeDefinition{}, false
}

// LookupDirective returns the definition of the directive with the given name.
func (doc *Document) LookupDirective(name string) (DirectiveDefinition, bool) {
	nameID, exists := doc.Strings().Find(name)
	if !exists {
		return DirectiveDefinition{}, false
	}
	for i := range doc.directiveDefinitions {
		if doc.directiveDefinitions[i].Name == nameID {
			return DirectiveDefinition{DirectiveDefinitionID(i), doc}, true
		}
	}
	return DirectiveDefinition{}, false
}

//===----------------------------------------------------------------------------------------====//
// Definition
//===----------------------------------------------------------------------------------------====//

// Definition reads an entry in the definition list. It is one of a schema definition, a type
// definition or a directive definition, or an extension of the former two.
type Definition struct {
	id  DefinitionID
	doc *Document
}

// Read returns the reader for the definition.
func (id DefinitionID) Read(doc *Document) Definition {
	return Definition{id, doc}
}

// ID returns the position of the definition in the document.
func (def Definition) ID() DefinitionID {
	return def.id
}

// Record returns the underlying tag.
func (def Definition) Record() DefinitionRecord {
	return def.doc.definitions[def.id]
}

// Kind returns the kind of definition.
func (def Definition) Kind() DefinitionKind {
	return def.Record().Kind
}

// IsExtension returns true for "extend" definitions.
func (def Definition) IsExtension() bool {
	return def.Kind().IsExtension()
}

// AsSchema returns the schema definition or extension.
func (def Definition) AsSchema() (SchemaDefinition, bool) {
	record := def.Record()
	if record.Kind.base() != DefinitionKindSchema {
		return SchemaDefinition{}, false
	}
	return SchemaDefinition{SchemaDefinitionID(record.ID), def.doc}, true
}

// AsType returns the type definition or extension.
func (def Definition) AsType() (TypeDefinition, bool) {
	record := def.Record()
	switch kind := record.Kind.base(); kind {
	case DefinitionKindScalar,
		DefinitionKindObject,
		DefinitionKindInterface,
		DefinitionKindUnion,
		DefinitionKindEnum,
		DefinitionKindInputObject:
		return TypeDefinition{TypeDefinitionKind(kind), record.ID, def.doc}, true
	}
	return TypeDefinition{}, false
}

// AsDirective returns the directive definition.
func (def Definition) AsDirective() (DirectiveDefinition, bool) {
	record := def.Record()
	if record.Kind != DefinitionKindDirective {
		return DirectiveDefinition{}, false
	}
	return DirectiveDefinition{DirectiveDefinitionID(record.ID), def.doc}, true
}

// Span returns the source span of the definition.
func (def Definition) Span() token.Span {
	if schema, ok := def.AsSchema(); ok {
		return schema.Span()
	}
	if t, ok := def.AsType(); ok {
		return t.Span()
	}
	directive, _ := def.AsDirective()
	return directive.Span()
}

// String returns the canonical form of the definition.
func (def Definition) String() string {
	var p printer
	p.printDefinition(def)
	return p.String()
}

//===----------------------------------------------------------------------------------------====//
// TypeDefinition
//===----------------------------------------------------------------------------------------====//

// TypeDefinitionKind distinguishes the six kinds of named types.
type TypeDefinitionKind uint8

// Enumeration of TypeDefinitionKind; values coincide with the DefinitionKind of the definition.
const (
	TypeDefinitionKindScalar      = TypeDefinitionKind(DefinitionKindScalar)
	TypeDefinitionKindObject      = TypeDefinitionKind(DefinitionKindObject)
	TypeDefinitionKindInterface   = TypeDefinitionKind(DefinitionKindInterface)
	TypeDefinitionKindUnion       = TypeDefinitionKind(DefinitionKindUnion)
	TypeDefinitionKindEnum        = TypeDefinitionKind(DefinitionKindEnum)
	TypeDefinitionKindInputObject = TypeDefinitionKind(DefinitionKindInputObject)
)

func (kind TypeDefinitionKind) String() string {
	return DefinitionKind(kind).String()
}

// TypeDefinition reads a named type definition or extension of any kind.
type TypeDefinition struct {
	kind TypeDefinitionKind
	id   uint32
	doc  *Document
}

// Kind returns the kind of type.
func (t TypeDefinition) Kind() TypeDefinitionKind {
	return t.kind
}

// AsScalar returns the scalar definition.
func (t TypeDefinition) AsScalar() (ScalarDefinition, bool) {
	return ScalarDefinition{ScalarDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindScalar
}

// AsObject returns the object definition.
func (t TypeDefinition) AsObject() (ObjectDefinition, bool) {
	return ObjectDefinition{ObjectDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindObject
}

// AsInterface returns the interface definition.
func (t TypeDefinition) AsInterface() (InterfaceDefinition, bool) {
	return InterfaceDefinition{InterfaceDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindInterface
}

// AsUnion returns the union definition.
func (t TypeDefinition) AsUnion() (UnionDefinition, bool) {
	return UnionDefinition{UnionDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindUnion
}

// AsEnum returns the enum definition.
func (t TypeDefinition) AsEnum() (EnumDefinition, bool) {
	return EnumDefinition{EnumDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindEnum
}

// AsInputObject returns the input object definition.
func (t TypeDefinition) AsInputObject() (InputObjectDefinition, bool) {
	return InputObjectDefinition{InputObjectDefinitionID(t.id), t.doc}, t.kind == TypeDefinitionKindInputObject
}

// header returns the fields shared by all type definitions.
func (t TypeDefinition) header() (name ast.StringID, description ast.Optional[DescriptionID], directives ast.IDRange[ast.DirectiveID], span token.Span) {
	doc := t.doc
	switch t.kind {
	case TypeDefinitionKindScalar:
		r := &doc.scalarDefinitions[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	case TypeDefinitionKindObject:
		r := &doc.objectDefinitions[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	case TypeDefinitionKindInterface:
		r := &doc.interfaceDefinitions[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	case TypeDefinitionKindUnion:
		r := &doc.unionDefinitions[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	case TypeDefinitionKindEnum:
		r := &doc.enumDefinitions[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	case TypeDefinitionKindInputObject:
		r := &doc.inputObjects[t.id]
		return r.Name, r.Description, r.Directives, r.Span
	}
	panic("unknown type definition kind " + t.kind.String())
}

func (t TypeDefinition) nameID() ast.StringID {
	name, _, _, _ := t.header()
	return name
}

// Name returns the type name.
func (t TypeDefinition) Name() string {
	return t.doc.store.LookupString(t.nameID())
}

// Description returns the description of the type if it has one.
func (t TypeDefinition) Description() (Description, bool) {
	_, description, _, _ := t.header()
	return readDescription(description, t.doc)
}

// Directives returns the directives applied to the type.
func (t TypeDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	_, _, directives, _ := t.header()
	return t.doc.store.Directives(directives)
}

// Span returns the source span of the type definition.
func (t TypeDefinition) Span() token.Span {
	_, _, _, span := t.header()
	return span
}
