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
	"github.com/botobag/gqldoc/graphql/token"
)

// TypeKind distinguishes type references.
type TypeKind uint8

// Enumeration of TypeKind
const (
	TypeKindNamed TypeKind = iota
	TypeKindList
	TypeKindNonNull
)

func (kind TypeKind) String() string {
	switch kind {
	case TypeKindNamed:
		return "NamedType"
	case TypeKindList:
		return "ListType"
	case TypeKindNonNull:
		return "NonNullType"
	}
	return "UnknownType"
}

// TypeRecord stores a type reference.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-References
type TypeRecord struct {
	Kind TypeKind

	// Name of the type for TypeKindNamed
	Name StringID

	// The wrapped type for TypeKindList and TypeKindNonNull
	OfType TypeID

	Span token.Span
}

// Type reads a type reference from a Store.
type Type struct {
	id    TypeID
	store *Store
}

// Read returns the reader for the type.
func (id TypeID) Read(store *Store) Type {
	return Type{id, store}
}

// ID returns the ID of the type.
func (t Type) ID() TypeID {
	return t.id
}

// Record returns the underlying record.
func (t Type) Record() TypeRecord {
	return t.store.types[t.id]
}

// Kind returns the kind of type reference.
func (t Type) Kind() TypeKind {
	return t.Record().Kind
}

// Span returns the source span of the type.
func (t Type) Span() token.Span {
	return t.Record().Span
}

// Name returns the type name for a named type and empty string otherwise.
func (t Type) Name() string {
	record := t.Record()
	if record.Kind != TypeKindNamed {
		return ""
	}
	return t.store.LookupString(record.Name)
}

// OfType returns the wrapped type of a list or non-null type. It returns false for named types.
func (t Type) OfType() (Type, bool) {
	record := t.Record()
	if record.Kind == TypeKindNamed {
		return Type{}, false
	}
	return Type{record.OfType, t.store}, true
}

// NamedType unwraps all list and non-null wrappers and returns the name of the innermost type.
func (t Type) NamedType() string {
	for {
		record := t.Record()
		if record.Kind == TypeKindNamed {
			return t.store.LookupString(record.Name)
		}
		t = Type{record.OfType, t.store}
	}
}

// String returns the canonical form of the type (e.g., "[String!]!").
func (t Type) String() string {
	var p Printer
	p.PrintType(t)
	return p.String()
}
