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

package ast

import (
	"github.com/botobag/gqldoc/graphql/internal/lexer"
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/iterator"
)

// ValueKind distinguishes input values.
type ValueKind uint8

// Enumeration of ValueKind
const (
	ValueKindVariable ValueKind = iota
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

func (kind ValueKind) String() string {
	switch kind {
	case ValueKindVariable:
		return "Variable"
	case ValueKindInt:
		return "IntValue"
	case ValueKindFloat:
		return "FloatValue"
	case ValueKindString:
		return "StringValue"
	case ValueKindBoolean:
		return "BooleanValue"
	case ValueKindNull:
		return "NullValue"
	case ValueKindEnum:
		return "EnumValue"
	case ValueKindList:
		return "ListValue"
	case ValueKindObject:
		return "ObjectValue"
	}
	return "UnknownValue"
}

// StringLiteralKind tells how a string literal was written.
type StringLiteralKind uint8

// Enumeration of StringLiteralKind
const (
	// "..."
	StringLiteralQuoted StringLiteralKind = iota

	// """..."""
	StringLiteralBlock
)

// StringLiteralRecord stores a string value or a description. A quoted string is stored decoded and
// interned. A block string is stored as written between the triple quotes and is not deduplicated.
type StringLiteralRecord struct {
	Kind   StringLiteralKind
	Quoted StringID
	Block  BlockStringID
}

// QuotedString creates a record for a quoted string.
func QuotedString(id StringID) StringLiteralRecord {
	return StringLiteralRecord{
		Kind:   StringLiteralQuoted,
		Quoted: id,
	}
}

// BlockString creates a record for a block string.
func BlockString(id BlockStringID) StringLiteralRecord {
	return StringLiteralRecord{
		Kind:  StringLiteralBlock,
		Block: id,
	}
}

// StringLiteral reads a string literal from a Store.
type StringLiteral struct {
	record StringLiteralRecord
	store  *Store
}

// Read returns the reader for the string literal.
func (record StringLiteralRecord) Read(store *Store) StringLiteral {
	return StringLiteral{record, store}
}

// Kind returns how the string was written.
func (s StringLiteral) Kind() StringLiteralKind {
	return s.record.Kind
}

// IsBlock returns true for a block string.
func (s StringLiteral) IsBlock() bool {
	return s.record.Kind == StringLiteralBlock
}

// Value returns the string value. Block strings have their common indentation and leading and
// trailing blank lines removed.
func (s StringLiteral) Value() string {
	if s.IsBlock() {
		return lexer.BlockStringRawValue(s.store.LookupBlockString(s.record.Block))
	}
	return s.store.LookupString(s.record.Quoted)
}

// Raw returns the text between the triple quotes for a block string and the decoded value for a
// quoted string.
func (s StringLiteral) Raw() string {
	if s.IsBlock() {
		return s.store.LookupBlockString(s.record.Block)
	}
	return s.store.LookupString(s.record.Quoted)
}

// ValueRecord stores an input value. Only the fields that correspond to Kind are meaningful.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Values
type ValueRecord struct {
	Kind ValueKind
	Span token.Span

	// Variable name, enum value or the literal text of an int or a float
	Text StringID

	// ValueKindString
	String StringLiteralRecord

	// ValueKindBoolean
	Boolean bool

	// ValueKindList
	List IDRange[ValueID]

	// ValueKindObject
	Object IDRange[ObjectFieldID]
}

// ObjectFieldRecord stores a field in an object value.
type ObjectFieldRecord struct {
	Name  StringID
	Value ValueID
	Span  token.Span
}

// Value reads an input value from a Store.
type Value struct {
	id    ValueID
	store *Store
}

// Read returns the reader for the value.
func (id ValueID) Read(store *Store) Value {
	return Value{id, store}
}

// ID returns the ID of the value.
func (v Value) ID() ValueID {
	return v.id
}

// Record returns the underlying record.
func (v Value) Record() ValueRecord {
	return v.store.values[v.id]
}

// Kind returns the kind of value.
func (v Value) Kind() ValueKind {
	return v.Record().Kind
}

// Span returns the source span of the value.
func (v Value) Span() token.Span {
	return v.Record().Span
}

// Text returns the variable name (without "$"), the enum value or the literal text of a number.
// Empty for the other kinds.
func (v Value) Text() string {
	switch record := v.Record(); record.Kind {
	case ValueKindVariable, ValueKindInt, ValueKindFloat, ValueKindEnum:
		return v.store.LookupString(record.Text)
	}
	return ""
}

// StringLiteral returns the literal of a string value.
func (v Value) StringLiteral() (StringLiteral, bool) {
	record := v.Record()
	if record.Kind != ValueKindString {
		return StringLiteral{}, false
	}
	return record.String.Read(v.store), true
}

// Boolean returns the value of a boolean value.
func (v Value) Boolean() bool {
	return v.Record().Boolean
}

// IsNull returns true for the null literal.
func (v Value) IsNull() bool {
	return v.Kind() == ValueKindNull
}

// List returns the items of a list value. Empty for the other kinds.
func (v Value) List() iterator.Iter[ValueID, Value] {
	record := v.Record()
	if record.Kind != ValueKindList {
		return iterator.Empty[ValueID, Value]()
	}
	return ReadRange[Value](record.List, v.store)
}

// Fields returns the fields of an object value. Empty for the other kinds.
func (v Value) Fields() iterator.Iter[ObjectFieldID, ObjectField] {
	record := v.Record()
	if record.Kind != ValueKindObject {
		return iterator.Empty[ObjectFieldID, ObjectField]()
	}
	return ReadRange[ObjectField](record.Object, v.store)
}

// String returns the canonical form of the value.
func (v Value) String() string {
	var p Printer
	p.PrintValue(v)
	return p.String()
}

// ObjectField reads a field in an object value from a Store.
type ObjectField struct {
	id    ObjectFieldID
	store *Store
}

// Read returns the reader for the object field.
func (id ObjectFieldID) Read(store *Store) ObjectField {
	return ObjectField{id, store}
}

// ID returns the ID of the field.
func (field ObjectField) ID() ObjectFieldID {
	return field.id
}

// Name returns the field name.
func (field ObjectField) Name() string {
	return field.store.LookupString(field.store.objectFields[field.id].Name)
}

// Value returns the field value.
func (field ObjectField) Value() Value {
	return Value{field.store.objectFields[field.id].Value, field.store}
}

// Span returns the source span of the field.
func (field ObjectField) Span() token.Span {
	return field.store.objectFields[field.id].Span
}
