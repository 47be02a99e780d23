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

//===----------------------------------------------------------------------------------------====//
// Records
//===----------------------------------------------------------------------------------------====//

// SchemaDefinitionRecord stores "schema { ... }" or "extend schema ...".
type SchemaDefinitionRecord struct {
	Description    ast.Optional[DescriptionID]
	Directives     ast.IDRange[ast.DirectiveID]
	RootOperations ast.IDRange[RootOperationTypeDefinitionID]
	Span           token.Span
}

// RootOperationTypeDefinitionRecord stores "query: Query" in a schema definition.
type RootOperationTypeDefinitionRecord struct {
	OperationType ast.OperationType
	NamedType     ast.StringID
	Span          token.Span
}

// ScalarDefinitionRecord stores a scalar type definition.
type ScalarDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Directives  ast.IDRange[ast.DirectiveID]
	Span        token.Span
}

// ObjectDefinitionRecord stores an object type definition.
type ObjectDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Implements  ast.IDRange[NamedTypeID]
	Directives  ast.IDRange[ast.DirectiveID]
	Fields      ast.IDRange[FieldDefinitionID]
	Span        token.Span
}

// InterfaceDefinitionRecord stores an interface type definition.
type InterfaceDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Implements  ast.IDRange[NamedTypeID]
	Directives  ast.IDRange[ast.DirectiveID]
	Fields      ast.IDRange[FieldDefinitionID]
	Span        token.Span
}

// UnionDefinitionRecord stores a union type definition.
type UnionDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Directives  ast.IDRange[ast.DirectiveID]
	Members     ast.IDRange[NamedTypeID]
	Span        token.Span
}

// EnumDefinitionRecord stores an enum type definition.
type EnumDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Directives  ast.IDRange[ast.DirectiveID]
	Values      ast.IDRange[EnumValueDefinitionID]
	Span        token.Span
}

// EnumValueDefinitionRecord stores a value in an enum type definition.
type EnumValueDefinitionRecord struct {
	Value       ast.StringID
	Description ast.Optional[DescriptionID]
	Directives  ast.IDRange[ast.DirectiveID]
	Span        token.Span
}

// InputObjectDefinitionRecord stores an input object type definition.
type InputObjectDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Directives  ast.IDRange[ast.DirectiveID]
	Fields      ast.IDRange[InputValueDefinitionID]
	Span        token.Span
}

// FieldDefinitionRecord stores a field of an object or an interface type.
type FieldDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Arguments   ast.IDRange[InputValueDefinitionID]
	Type        ast.TypeID
	Directives  ast.IDRange[ast.DirectiveID]
	Span        token.Span
}

// InputValueDefinitionRecord stores an argument definition or a field of an input object.
type InputValueDefinitionRecord struct {
	Name         ast.StringID
	Description  ast.Optional[DescriptionID]
	Type         ast.TypeID
	DefaultValue ast.Optional[ast.ValueID]
	Directives   ast.IDRange[ast.DirectiveID]
	Span         token.Span
}

// DirectiveDefinitionRecord stores a directive definition.
type DirectiveDefinitionRecord struct {
	Name        ast.StringID
	Description ast.Optional[DescriptionID]
	Arguments   ast.IDRange[InputValueDefinitionID]
	Repeatable  bool
	Locations   ast.IDRange[DirectiveLocationID]
	Span        token.Span
}

// DirectiveLocationRecord stores a location in a directive definition.
type DirectiveLocationRecord struct {
	Location DirectiveLocation
	Span     token.Span
}

// DescriptionRecord stores the description of a definition.
type DescriptionRecord struct {
	Literal ast.StringLiteralRecord
	Span    token.Span
}

// NamedTypeRecord stores a type name in an implements list or in union members.
type NamedTypeRecord struct {
	Name ast.StringID
	Span token.Span
}

//===----------------------------------------------------------------------------------------====//
// Description and NamedType
//===----------------------------------------------------------------------------------------====//

// Description reads a description.
type Description struct {
	id  DescriptionID
	doc *Document
}

// Read returns the reader for the description.
func (id DescriptionID) Read(doc *Document) Description {
	return Description{id, doc}
}

func readDescription(description ast.Optional[DescriptionID], doc *Document) (Description, bool) {
	id, ok := description.Get()
	if !ok {
		return Description{}, false
	}
	return Description{id, doc}, true
}

// Literal returns the string literal of the description.
func (d Description) Literal() ast.StringLiteral {
	return d.doc.descriptions[d.id].Literal.Read(d.doc.store)
}

// Value returns the text of the description.
func (d Description) Value() string {
	return d.Literal().Value()
}

// IsBlock returns true if the description is written as a block string.
func (d Description) IsBlock() bool {
	return d.Literal().IsBlock()
}

// Span returns the source span of the description.
func (d Description) Span() token.Span {
	return d.doc.descriptions[d.id].Span
}

// NamedType reads a type name in an implements list or in union members.
type NamedType struct {
	id  NamedTypeID
	doc *Document
}

// Read returns the reader for the named type.
func (id NamedTypeID) Read(doc *Document) NamedType {
	return NamedType{id, doc}
}

// Name returns the type name.
func (t NamedType) Name() string {
	return t.doc.store.LookupString(t.doc.namedTypes[t.id].Name)
}

// Span returns the source span of the name.
func (t NamedType) Span() token.Span {
	return t.doc.namedTypes[t.id].Span
}

//===----------------------------------------------------------------------------------------====//
// SchemaDefinition
//===----------------------------------------------------------------------------------------====//

// SchemaDefinition reads a schema definition or extension.
type SchemaDefinition struct {
	id  SchemaDefinitionID
	doc *Document
}

// Read returns the reader for the schema definition.
func (id SchemaDefinitionID) Read(doc *Document) SchemaDefinition {
	return SchemaDefinition{id, doc}
}

// Record returns the underlying record.
func (def SchemaDefinition) Record() SchemaDefinitionRecord {
	return def.doc.schemaDefinitions[def.id]
}

// Description returns the description of the schema if it has one.
func (def SchemaDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the schema.
func (def SchemaDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// RootOperations returns the root operation types.
func (def SchemaDefinition) RootOperations() iterator.Iter[RootOperationTypeDefinitionID, RootOperationTypeDefinition] {
	return ast.ReadRange[RootOperationTypeDefinition](def.Record().RootOperations, def.doc)
}

// Span returns the source span of the definition.
func (def SchemaDefinition) Span() token.Span {
	return def.Record().Span
}

// RootOperationTypeDefinition reads an operation type declared in a schema definition.
type RootOperationTypeDefinition struct {
	id  RootOperationTypeDefinitionID
	doc *Document
}

// Read returns the reader for the root operation type.
func (id RootOperationTypeDefinitionID) Read(doc *Document) RootOperationTypeDefinition {
	return RootOperationTypeDefinition{id, doc}
}

// OperationType returns the operation.
func (def RootOperationTypeDefinition) OperationType() ast.OperationType {
	return def.doc.rootOperationTypes[def.id].OperationType
}

// NamedType returns the name of the root type.
func (def RootOperationTypeDefinition) NamedType() string {
	return def.doc.store.LookupString(def.doc.rootOperationTypes[def.id].NamedType)
}

// Span returns the source span of the definition.
func (def RootOperationTypeDefinition) Span() token.Span {
	return def.doc.rootOperationTypes[def.id].Span
}

//===----------------------------------------------------------------------------------------====//
// Type definitions
//===----------------------------------------------------------------------------------------====//

// ScalarDefinition reads a scalar type definition.
type ScalarDefinition struct {
	id  ScalarDefinitionID
	doc *Document
}

// Read returns the reader for the scalar definition.
func (id ScalarDefinitionID) Read(doc *Document) ScalarDefinition {
	return ScalarDefinition{id, doc}
}

// Record returns the underlying record.
func (def ScalarDefinition) Record() ScalarDefinitionRecord {
	return def.doc.scalarDefinitions[def.id]
}

// Name returns the type name.
func (def ScalarDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def ScalarDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the type.
func (def ScalarDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Span returns the source span of the definition.
func (def ScalarDefinition) Span() token.Span {
	return def.Record().Span
}

// ObjectDefinition reads an object type definition.
type ObjectDefinition struct {
	id  ObjectDefinitionID
	doc *Document
}

// Read returns the reader for the object definition.
func (id ObjectDefinitionID) Read(doc *Document) ObjectDefinition {
	return ObjectDefinition{id, doc}
}

// Record returns the underlying record.
func (def ObjectDefinition) Record() ObjectDefinitionRecord {
	return def.doc.objectDefinitions[def.id]
}

// Name returns the type name.
func (def ObjectDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def ObjectDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Implements returns the interfaces implemented by the object.
func (def ObjectDefinition) Implements() iterator.Iter[NamedTypeID, NamedType] {
	return ast.ReadRange[NamedType](def.Record().Implements, def.doc)
}

// Directives returns the directives applied to the type.
func (def ObjectDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Fields returns the fields of the object.
func (def ObjectDefinition) Fields() iterator.Iter[FieldDefinitionID, FieldDefinition] {
	return ast.ReadRange[FieldDefinition](def.Record().Fields, def.doc)
}

// Span returns the source span of the definition.
func (def ObjectDefinition) Span() token.Span {
	return def.Record().Span
}

// InterfaceDefinition reads an interface type definition.
type InterfaceDefinition struct {
	id  InterfaceDefinitionID
	doc *Document
}

// Read returns the reader for the interface definition.
func (id InterfaceDefinitionID) Read(doc *Document) InterfaceDefinition {
	return InterfaceDefinition{id, doc}
}

// Record returns the underlying record.
func (def InterfaceDefinition) Record() InterfaceDefinitionRecord {
	return def.doc.interfaceDefinitions[def.id]
}

// Name returns the type name.
func (def InterfaceDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def InterfaceDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Implements returns the interfaces implemented by the interface.
func (def InterfaceDefinition) Implements() iterator.Iter[NamedTypeID, NamedType] {
	return ast.ReadRange[NamedType](def.Record().Implements, def.doc)
}

// Directives returns the directives applied to the type.
func (def InterfaceDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Fields returns the fields of the interface.
func (def InterfaceDefinition) Fields() iterator.Iter[FieldDefinitionID, FieldDefinition] {
	return ast.ReadRange[FieldDefinition](def.Record().Fields, def.doc)
}

// Span returns the source span of the definition.
func (def InterfaceDefinition) Span() token.Span {
	return def.Record().Span
}

// UnionDefinition reads a union type definition.
type UnionDefinition struct {
	id  UnionDefinitionID
	doc *Document
}

// Read returns the reader for the union definition.
func (id UnionDefinitionID) Read(doc *Document) UnionDefinition {
	return UnionDefinition{id, doc}
}

// Record returns the underlying record.
func (def UnionDefinition) Record() UnionDefinitionRecord {
	return def.doc.unionDefinitions[def.id]
}

// Name returns the type name.
func (def UnionDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def UnionDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the type.
func (def UnionDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Members returns the possible types of the union.
func (def UnionDefinition) Members() iterator.Iter[NamedTypeID, NamedType] {
	return ast.ReadRange[NamedType](def.Record().Members, def.doc)
}

// Span returns the source span of the definition.
func (def UnionDefinition) Span() token.Span {
	return def.Record().Span
}

// EnumDefinition reads an enum type definition.
type EnumDefinition struct {
	id  EnumDefinitionID
	doc *Document
}

// Read returns the reader for the enum definition.
func (id EnumDefinitionID) Read(doc *Document) EnumDefinition {
	return EnumDefinition{id, doc}
}

// Record returns the underlying record.
func (def EnumDefinition) Record() EnumDefinitionRecord {
	return def.doc.enumDefinitions[def.id]
}

// Name returns the type name.
func (def EnumDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def EnumDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the type.
func (def EnumDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Values returns the values of the enum.
func (def EnumDefinition) Values() iterator.Iter[EnumValueDefinitionID, EnumValueDefinition] {
	return ast.ReadRange[EnumValueDefinition](def.Record().Values, def.doc)
}

// Span returns the source span of the definition.
func (def EnumDefinition) Span() token.Span {
	return def.Record().Span
}

// EnumValueDefinition reads a value in an enum type definition.
type EnumValueDefinition struct {
	id  EnumValueDefinitionID
	doc *Document
}

// Read returns the reader for the enum value.
func (id EnumValueDefinitionID) Read(doc *Document) EnumValueDefinition {
	return EnumValueDefinition{id, doc}
}

// Record returns the underlying record.
func (def EnumValueDefinition) Record() EnumValueDefinitionRecord {
	return def.doc.enumValueDefinitions[def.id]
}

// Value returns the name of the enum value.
func (def EnumValueDefinition) Value() string {
	return def.doc.store.LookupString(def.Record().Value)
}

// Description returns the description of the value if it has one.
func (def EnumValueDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the value.
func (def EnumValueDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Span returns the source span of the definition.
func (def EnumValueDefinition) Span() token.Span {
	return def.Record().Span
}

// InputObjectDefinition reads an input object type definition.
type InputObjectDefinition struct {
	id  InputObjectDefinitionID
	doc *Document
}

// Read returns the reader for the input object definition.
func (id InputObjectDefinitionID) Read(doc *Document) InputObjectDefinition {
	return InputObjectDefinition{id, doc}
}

// Record returns the underlying record.
func (def InputObjectDefinition) Record() InputObjectDefinitionRecord {
	return def.doc.inputObjects[def.id]
}

// Name returns the type name.
func (def InputObjectDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the type if it has one.
func (def InputObjectDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Directives returns the directives applied to the type.
func (def InputObjectDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Fields returns the fields of the input object.
func (def InputObjectDefinition) Fields() iterator.Iter[InputValueDefinitionID, InputValueDefinition] {
	return ast.ReadRange[InputValueDefinition](def.Record().Fields, def.doc)
}

// Span returns the source span of the definition.
func (def InputObjectDefinition) Span() token.Span {
	return def.Record().Span
}

//===----------------------------------------------------------------------------------------====//
// Fields and input values
//===----------------------------------------------------------------------------------------====//

// FieldDefinition reads a field of an object or an interface.
type FieldDefinition struct {
	id  FieldDefinitionID
	doc *Document
}

// Read returns the reader for the field.
func (id FieldDefinitionID) Read(doc *Document) FieldDefinition {
	return FieldDefinition{id, doc}
}

// Record returns the underlying record.
func (def FieldDefinition) Record() FieldDefinitionRecord {
	return def.doc.fieldDefinitions[def.id]
}

// Name returns the field name.
func (def FieldDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the field if it has one.
func (def FieldDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Arguments returns the argument definitions.
func (def FieldDefinition) Arguments() iterator.Iter[InputValueDefinitionID, InputValueDefinition] {
	return ast.ReadRange[InputValueDefinition](def.Record().Arguments, def.doc)
}

// Type returns the type of the field.
func (def FieldDefinition) Type() ast.Type {
	return def.Record().Type.Read(def.doc.store)
}

// Directives returns the directives applied to the field.
func (def FieldDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Span returns the source span of the definition.
func (def FieldDefinition) Span() token.Span {
	return def.Record().Span
}

// InputValueDefinition reads an argument definition or a field of an input object.
type InputValueDefinition struct {
	id  InputValueDefinitionID
	doc *Document
}

// Read returns the reader for the input value.
func (id InputValueDefinitionID) Read(doc *Document) InputValueDefinition {
	return InputValueDefinition{id, doc}
}

// Record returns the underlying record.
func (def InputValueDefinition) Record() InputValueDefinitionRecord {
	return def.doc.inputValues[def.id]
}

// Name returns the name of the argument or the field.
func (def InputValueDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description if there is one.
func (def InputValueDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Type returns the input type.
func (def InputValueDefinition) Type() ast.Type {
	return def.Record().Type.Read(def.doc.store)
}

// DefaultValue returns the default value if there is one.
func (def InputValueDefinition) DefaultValue() (ast.Value, bool) {
	id, ok := def.Record().DefaultValue.Get()
	if !ok {
		return ast.Value{}, false
	}
	return id.Read(def.doc.store), true
}

// Directives returns the directives applied to the input value.
func (def InputValueDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return def.doc.store.Directives(def.Record().Directives)
}

// Span returns the source span of the definition.
func (def InputValueDefinition) Span() token.Span {
	return def.Record().Span
}

//===----------------------------------------------------------------------------------------====//
// DirectiveDefinition
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition reads a directive definition.
type DirectiveDefinition struct {
	id  DirectiveDefinitionID
	doc *Document
}

// Read returns the reader for the directive definition.
func (id DirectiveDefinitionID) Read(doc *Document) DirectiveDefinition {
	return DirectiveDefinition{id, doc}
}

// Record returns the underlying record.
func (def DirectiveDefinition) Record() DirectiveDefinitionRecord {
	return def.doc.directiveDefinitions[def.id]
}

// Name returns the directive name without "@".
func (def DirectiveDefinition) Name() string {
	return def.doc.store.LookupString(def.Record().Name)
}

// Description returns the description of the directive if it has one.
func (def DirectiveDefinition) Description() (Description, bool) {
	return readDescription(def.Record().Description, def.doc)
}

// Arguments returns the argument definitions.
func (def DirectiveDefinition) Arguments() iterator.Iter[InputValueDefinitionID, InputValueDefinition] {
	return ast.ReadRange[InputValueDefinition](def.Record().Arguments, def.doc)
}

// IsRepeatable returns true if the directive may be applied more than once at a location.
func (def DirectiveDefinition) IsRepeatable() bool {
	return def.Record().Repeatable
}

// Locations returns the locations where the directive may be applied.
func (def DirectiveDefinition) Locations() iterator.Iter[DirectiveLocationID, Location] {
	return ast.ReadRange[Location](def.Record().Locations, def.doc)
}

// Span returns the source span of the definition.
func (def DirectiveDefinition) Span() token.Span {
	return def.Record().Span
}

// Location reads a location in a directive definition.
type Location struct {
	id  DirectiveLocationID
	doc *Document
}

// Read returns the reader for the directive location.
func (id DirectiveLocationID) Read(doc *Document) Location {
	return Location{id, doc}
}

// Value returns the location.
func (loc Location) Value() DirectiveLocation {
	return loc.doc.directiveLocations[loc.id].Location
}

// Span returns the source span of the location name.
func (loc Location) Span() token.Span {
	return loc.doc.directiveLocations[loc.id].Span
}
