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
)

// Writer builds a Document. Children are pushed before their parent; a parent refers to its
// children by the range returned from the finalizer of their kind.
type Writer struct {
	*ast.Writer

	doc *Document

	rootOperationCursor ast.RangeCursor[RootOperationTypeDefinitionID]
	fieldCursor         ast.RangeCursor[FieldDefinitionID]
	inputValueCursor    ast.RangeCursor[InputValueDefinitionID]
	enumValueCursor     ast.RangeCursor[EnumValueDefinitionID]
	namedTypeCursor     ast.RangeCursor[NamedTypeID]
	locationCursor      ast.RangeCursor[DirectiveLocationID]
}

// NewWriter creates a writer for a new document.
func NewWriter() *Writer {
	return newWriter(&Document{}, ast.NewWriter())
}

// Update creates a writer which continues building a copy of doc. doc itself is not modified.
func Update(doc *Document) *Writer {
	return newWriter(doc.clone(), ast.ResumeWriter(doc.store))
}

func newWriter(doc *Document, w *ast.Writer) *Writer {
	doc.store = w.Store()
	return &Writer{
		Writer:              w,
		doc:                 doc,
		rootOperationCursor: ast.NewRangeCursor("root operation type", RootOperationTypeDefinitionID(len(doc.rootOperationTypes))),
		fieldCursor:         ast.NewRangeCursor("field definition", FieldDefinitionID(len(doc.fieldDefinitions))),
		inputValueCursor:    ast.NewRangeCursor("input value definition", InputValueDefinitionID(len(doc.inputValues))),
		enumValueCursor:     ast.NewRangeCursor("enum value definition", EnumValueDefinitionID(len(doc.enumValueDefinitions))),
		namedTypeCursor:     ast.NewRangeCursor("named type", NamedTypeID(len(doc.namedTypes))),
		locationCursor:      ast.NewRangeCursor("directive location", DirectiveLocationID(len(doc.directiveLocations))),
	}
}

func (w *Writer) document() *Document {
	if w.doc == nil {
		panic("schema writer is already finished")
	}
	return w.doc
}

// Finish returns the document. It panics if any record was pushed without being grouped into a
// range. The writer cannot be used afterward.
func (w *Writer) Finish() *Document {
	doc := w.document()
	w.rootOperationCursor.Check(len(doc.rootOperationTypes))
	w.fieldCursor.Check(len(doc.fieldDefinitions))
	w.inputValueCursor.Check(len(doc.inputValues))
	w.enumValueCursor.Check(len(doc.enumValueDefinitions))
	w.namedTypeCursor.Check(len(doc.namedTypes))
	w.locationCursor.Check(len(doc.directiveLocations))
	w.Writer.Close()
	w.doc = nil
	return doc
}

func (w *Writer) define(kind DefinitionKind, id uint32) {
	doc := w.document()
	doc.definitions = append(doc.definitions, DefinitionRecord{kind, id})
}

// push appends record to arena and returns its index.
func push[T any](arena *[]T, record T) uint32 {
	id := uint32(len(*arena))
	*arena = append(*arena, record)
	return id
}

// SchemaDefinition pushes a schema definition.
func (w *Writer) SchemaDefinition(record SchemaDefinitionRecord) SchemaDefinitionID {
	id := push(&w.document().schemaDefinitions, record)
	w.define(DefinitionKindSchema, id)
	return SchemaDefinitionID(id)
}

// SchemaExtension pushes a schema extension.
func (w *Writer) SchemaExtension(record SchemaDefinitionRecord) SchemaDefinitionID {
	id := push(&w.document().schemaDefinitions, record)
	w.define(DefinitionKindSchemaExtension, id)
	return SchemaDefinitionID(id)
}

// RootOperationTypeDefinition pushes an operation type of a schema definition.
func (w *Writer) RootOperationTypeDefinition(record RootOperationTypeDefinitionRecord) RootOperationTypeDefinitionID {
	return RootOperationTypeDefinitionID(push(&w.document().rootOperationTypes, record))
}

// RootOperationTypeRange groups the root operation types pushed since the previous call.
func (w *Writer) RootOperationTypeRange(expected int) ast.IDRange[RootOperationTypeDefinitionID] {
	return w.rootOperationCursor.Finish(len(w.document().rootOperationTypes), expected)
}

// ScalarDefinition pushes a scalar type definition.
func (w *Writer) ScalarDefinition(record ScalarDefinitionRecord) ScalarDefinitionID {
	id := push(&w.document().scalarDefinitions, record)
	w.define(DefinitionKindScalar, id)
	return ScalarDefinitionID(id)
}

// ScalarExtension pushes a scalar type extension.
func (w *Writer) ScalarExtension(record ScalarDefinitionRecord) ScalarDefinitionID {
	id := push(&w.document().scalarDefinitions, record)
	w.define(DefinitionKindScalarExtension, id)
	return ScalarDefinitionID(id)
}

// ObjectDefinition pushes an object type definition.
func (w *Writer) ObjectDefinition(record ObjectDefinitionRecord) ObjectDefinitionID {
	id := push(&w.document().objectDefinitions, record)
	w.define(DefinitionKindObject, id)
	return ObjectDefinitionID(id)
}

// ObjectExtension pushes an object type extension.
func (w *Writer) ObjectExtension(record ObjectDefinitionRecord) ObjectDefinitionID {
	id := push(&w.document().objectDefinitions, record)
	w.define(DefinitionKindObjectExtension, id)
	return ObjectDefinitionID(id)
}

// InterfaceDefinition pushes an interface type definition.
func (w *Writer) InterfaceDefinition(record InterfaceDefinitionRecord) InterfaceDefinitionID {
	id := push(&w.document().interfaceDefinitions, record)
	w.define(DefinitionKindInterface, id)
	return InterfaceDefinitionID(id)
}

// InterfaceExtension pushes an interface type extension.
func (w *Writer) InterfaceExtension(record InterfaceDefinitionRecord) InterfaceDefinitionID {
	id := push(&w.document().interfaceDefinitions, record)
	w.define(DefinitionKindInterfaceExtension, id)
	return InterfaceDefinitionID(id)
}

// UnionDefinition pushes a union type definition.
func (w *Writer) UnionDefinition(record UnionDefinitionRecord) UnionDefinitionID {
	id := push(&w.document().unionDefinitions, record)
	w.define(DefinitionKindUnion, id)
	return UnionDefinitionID(id)
}

// UnionExtension pushes a union type extension.
func (w *Writer) UnionExtension(record UnionDefinitionRecord) UnionDefinitionID {
	id := push(&w.document().unionDefinitions, record)
	w.define(DefinitionKindUnionExtension, id)
	return UnionDefinitionID(id)
}

// EnumDefinition pushes an enum type definition.
func (w *Writer) EnumDefinition(record EnumDefinitionRecord) EnumDefinitionID {
	id := push(&w.document().enumDefinitions, record)
	w.define(DefinitionKindEnum, id)
	return EnumDefinitionID(id)
}

// EnumExtension pushes an enum type extension.
func (w *Writer) EnumExtension(record EnumDefinitionRecord) EnumDefinitionID {
	id := push(&w.document().enumDefinitions, record)
	w.define(DefinitionKindEnumExtension, id)
	return EnumDefinitionID(id)
}

// EnumValueDefinition pushes a value of an enum.
func (w *Writer) EnumValueDefinition(record EnumValueDefinitionRecord) EnumValueDefinitionID {
	return EnumValueDefinitionID(push(&w.document().enumValueDefinitions, record))
}

// EnumValueDefinitionRange groups the enum values pushed since the previous call.
func (w *Writer) EnumValueDefinitionRange(expected int) ast.IDRange[EnumValueDefinitionID] {
	return w.enumValueCursor.Finish(len(w.document().enumValueDefinitions), expected)
}

// InputObjectDefinition pushes an input object type definition.
func (w *Writer) InputObjectDefinition(record InputObjectDefinitionRecord) InputObjectDefinitionID {
	id := push(&w.document().inputObjects, record)
	w.define(DefinitionKindInputObject, id)
	return InputObjectDefinitionID(id)
}

// InputObjectExtension pushes an input object type extension.
func (w *Writer) InputObjectExtension(record InputObjectDefinitionRecord) InputObjectDefinitionID {
	id := push(&w.document().inputObjects, record)
	w.define(DefinitionKindInputObjectExtension, id)
	return InputObjectDefinitionID(id)
}

// FieldDefinition pushes a field of an object or an interface.
func (w *Writer) FieldDefinition(record FieldDefinitionRecord) FieldDefinitionID {
	return FieldDefinitionID(push(&w.document().fieldDefinitions, record))
}

// FieldDefinitionRange groups the fields pushed since the previous call.
func (w *Writer) FieldDefinitionRange(expected int) ast.IDRange[FieldDefinitionID] {
	return w.fieldCursor.Finish(len(w.document().fieldDefinitions), expected)
}

// InputValueDefinition pushes an argument definition or a field of an input object.
func (w *Writer) InputValueDefinition(record InputValueDefinitionRecord) InputValueDefinitionID {
	return InputValueDefinitionID(push(&w.document().inputValues, record))
}

// InputValueDefinitionRange groups the input values pushed since the previous call.
func (w *Writer) InputValueDefinitionRange(expected int) ast.IDRange[InputValueDefinitionID] {
	return w.inputValueCursor.Finish(len(w.document().inputValues), expected)
}

// DirectiveDefinition pushes a directive definition.
func (w *Writer) DirectiveDefinition(record DirectiveDefinitionRecord) DirectiveDefinitionID {
	id := push(&w.document().directiveDefinitions, record)
	w.define(DefinitionKindDirective, id)
	return DirectiveDefinitionID(id)
}

// DirectiveLocation pushes a location of a directive definition.
func (w *Writer) DirectiveLocation(record DirectiveLocationRecord) DirectiveLocationID {
	return DirectiveLocationID(push(&w.document().directiveLocations, record))
}

// DirectiveLocationRange groups the directive locations pushed since the previous call.
func (w *Writer) DirectiveLocationRange(expected int) ast.IDRange[DirectiveLocationID] {
	return w.locationCursor.Finish(len(w.document().directiveLocations), expected)
}

// Description pushes a description.
func (w *Writer) Description(record DescriptionRecord) DescriptionID {
	return DescriptionID(push(&w.document().descriptions, record))
}

// NamedType pushes a type name of an implements list or of union members.
func (w *Writer) NamedType(record NamedTypeRecord) NamedTypeID {
	return NamedTypeID(push(&w.document().namedTypes, record))
}

// NamedTypeRange groups the named types pushed since the previous call.
func (w *Writer) NamedTypeRange(expected int) ast.IDRange[NamedTypeID] {
	return w.namedTypeCursor.Finish(len(w.document().namedTypes), expected)
}

// BuiltinScalars lists the scalar types every schema has.
var BuiltinScalars = []string{"Int", "Float", "String", "Boolean", "ID"}

// AddBuiltinScalars pushes definitions for the scalar types in BuiltinScalars.
func AddBuiltinScalars(w *Writer) {
	for _, name := range BuiltinScalars {
		w.ScalarDefinition(ScalarDefinitionRecord{
			Name:       w.Ident(name),
			Directives: w.DirectiveRange(0),
		})
	}
}
