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

// Package ast contains the storage shared by arena-backed GraphQL documents.
//
// A document keeps every node in a flat slice per node kind (an "arena") and refers to nodes by
// small integer IDs. The storage-only form of a node is a Record which holds nothing but IDs,
// ranges of IDs, spans and primitive values. Nodes are navigated through Readers: tiny value types
// that pair an ID with the storage and compute their results from the arenas on every call.
//
// This package provides the pieces common to type system documents (package schema) and
// executable documents (package executable): the string table, types, values, directives and
// arguments.
package ast

import (
	"fmt"
)

//===----------------------------------------------------------------------------------------====//
// IDs
//===----------------------------------------------------------------------------------------====//

// StringID identifies an interned string.
type StringID uint32

// BlockStringID identifies a block string blob. Block strings are never deduplicated.
type BlockStringID uint32

// TypeID identifies a type reference (e.g., "[Int!]").
type TypeID uint32

// ValueID identifies an input value.
type ValueID uint32

// ObjectFieldID identifies a field in an object value.
type ObjectFieldID uint32

// DirectiveID identifies an applied directive.
type DirectiveID uint32

// ArgumentID identifies an argument passed to a field or a directive.
type ArgumentID uint32

//===----------------------------------------------------------------------------------------====//
// IDRange
//===----------------------------------------------------------------------------------------====//

// IDRange is a half-open run [Start, End) of IDs of one kind. Children of a node are written
// contiguously so a node refers to all of them with one IDRange.
type IDRange[T ~uint32] struct {
	Start T
	End   T
}

// NewIDRange creates an IDRange over [start, end).
func NewIDRange[T ~uint32](start, end T) IDRange[T] {
	if end < start {
		panic(fmt.Sprintf("invalid ID range [%d, %d)", start, end))
	}
	return IDRange[T]{start, end}
}

// Len returns the number of IDs in the range.
func (r IDRange[T]) Len() int {
	return int(r.End - r.Start)
}

// IsEmpty returns true if the range contains no ID.
func (r IDRange[T]) IsEmpty() bool {
	return r.End == r.Start
}

// At returns the i-th ID in the range.
func (r IDRange[T]) At(i int) T {
	if i < 0 || i >= r.Len() {
		panic(fmt.Sprintf("index %d out of ID range [%d, %d)", i, r.Start, r.End))
	}
	return r.Start + T(i)
}

// Contains returns true if id is in the range.
func (r IDRange[T]) Contains(id T) bool {
	return id >= r.Start && id < r.End
}

// Optional holds a child that may be absent such as a description or a default value.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome returns true if the value is present.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

//===----------------------------------------------------------------------------------------====//
// Operation Type
//===----------------------------------------------------------------------------------------====//

// OperationType specifies the type of operation model.
//
// Reference: https://facebook.github.io/graphql/June2018/#OperationType
type OperationType uint8

// Enumeration of OperationType
const (
	OperationTypeQuery OperationType = iota
	OperationTypeMutation
	OperationTypeSubscription
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	}
	return "unknown operation"
}

// OperationTypeFromKeyword maps "query", "mutation" and "subscription" to the OperationType.
func OperationTypeFromKeyword(keyword string) (OperationType, bool) {
	switch keyword {
	case "query":
		return OperationTypeQuery, true
	case "mutation":
		return OperationTypeMutation, true
	case "subscription":
		return OperationTypeSubscription, true
	}
	return OperationTypeQuery, false
}
