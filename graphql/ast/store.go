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
	"fmt"
)

// Store owns the arenas shared by all kinds of documents. Only a Writer appends to a Store, and
// every Writer owns its Store; a Store handed out by a closed Writer is never modified again.
type Store struct {
	strings      Strings
	blockStrings []string
	types        []TypeRecord
	values       []ValueRecord
	objectFields []ObjectFieldRecord
	directives   []DirectiveRecord
	arguments    []ArgumentRecord
}

// Strings returns the string table.
func (store *Store) Strings() StringTable {
	return StringTable{&store.strings}
}

// LookupString returns the interned string with the given ID.
func (store *Store) LookupString(id StringID) string {
	return store.strings.Lookup(id)
}

// LookupBlockString returns the raw text of the block string with the given ID.
func (store *Store) LookupBlockString(id BlockStringID) string {
	return store.blockStrings[id]
}

// NumBlockStrings returns the number of block strings in the store.
func (store *Store) NumBlockStrings() int {
	return len(store.blockStrings)
}

// TypeRecord returns the record of the given type.
func (store *Store) TypeRecord(id TypeID) TypeRecord {
	return store.types[id]
}

// ValueRecord returns the record of the given value.
func (store *Store) ValueRecord(id ValueID) ValueRecord {
	return store.values[id]
}

// ObjectFieldRecord returns the record of the given object field.
func (store *Store) ObjectFieldRecord(id ObjectFieldID) ObjectFieldRecord {
	return store.objectFields[id]
}

// DirectiveRecord returns the record of the given directive.
func (store *Store) DirectiveRecord(id DirectiveID) DirectiveRecord {
	return store.directives[id]
}

// ArgumentRecord returns the record of the given argument.
func (store *Store) ArgumentRecord(id ArgumentID) ArgumentRecord {
	return store.arguments[id]
}

func (store *Store) clone() Store {
	return Store{
		strings:      store.strings.clone(),
		blockStrings: cloneSlice(store.blockStrings),
		types:        cloneSlice(store.types),
		values:       cloneSlice(store.values),
		objectFields: cloneSlice(store.objectFields),
		directives:   cloneSlice(store.directives),
		arguments:    cloneSlice(store.arguments),
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s))
	copy(result, s)
	return result
}

//===----------------------------------------------------------------------------------------====//
// Range Cursor
//===----------------------------------------------------------------------------------------====//

// UnknownCount can be passed to range finalizers when the number of children is not known by the
// caller. It skips the count check.
const UnknownCount = -1

// RangeCursor tracks the first ID of a kind that hasn't been assigned to a range yet. Records of
// the kind are pushed one by one; finalizing the range captures everything pushed since the
// previous finalization.
type RangeCursor[T ~uint32] struct {
	kind  string
	start T
}

// NewRangeCursor creates a cursor for records of the given kind (used in panic messages) whose next
// range begins at start.
func NewRangeCursor[T ~uint32](kind string, start T) RangeCursor[T] {
	return RangeCursor[T]{
		kind:  kind,
		start: start,
	}
}

// Finish captures [start, current) as a range and moves the cursor to current. A mismatch between
// the number of IDs captured and expected means the grammar and the builder disagree about the
// shape of a node, so it panics.
func (cursor *RangeCursor[T]) Finish(current int, expected int) IDRange[T] {
	end := T(current)
	r := NewIDRange(cursor.start, end)
	if expected != UnknownCount && r.Len() != expected {
		panic(fmt.Sprintf("%s range has %d records but %d were expected", cursor.kind, r.Len(), expected))
	}
	cursor.start = end
	return r
}

// Pending returns the number of records pushed since the last Finish.
func (cursor RangeCursor[T]) Pending(current int) int {
	return current - int(cursor.start)
}

// Check panics if some records were pushed but never assigned to a range.
func (cursor RangeCursor[T]) Check(current int) {
	if n := cursor.Pending(current); n != 0 {
		panic(fmt.Sprintf("%d %s records were pushed but never assigned to a range", n, cursor.kind))
	}
}

//===----------------------------------------------------------------------------------------====//
// Writer
//===----------------------------------------------------------------------------------------====//

// Writer appends records to a Store. Each push returns the ID of the new record.
//
// Directives and arguments are pushed one at a time and grouped with DirectiveRange and
// ArgumentRange. Values and object fields may nest in themselves, so the children of a list or an
// object are pushed in one burst with Values and ObjectFields once their own children are written.
type Writer struct {
	store           *Store
	directiveCursor RangeCursor[DirectiveID]
	argumentCursor  RangeCursor[ArgumentID]
}

// NewWriter creates a Writer over an empty Store.
func NewWriter() *Writer {
	return newWriter(&Store{})
}

// ResumeWriter creates a Writer over a copy of base. Ranges start after the records already in
// base, and base itself is left untouched.
func ResumeWriter(base *Store) *Writer {
	store := base.clone()
	return newWriter(&store)
}

func newWriter(store *Store) *Writer {
	return &Writer{
		store:           store,
		directiveCursor: NewRangeCursor("directive", DirectiveID(len(store.directives))),
		argumentCursor:  NewRangeCursor("argument", ArgumentID(len(store.arguments))),
	}
}

// Store returns the store being written. It panics once the writer is closed.
func (w *Writer) Store() *Store {
	return w.target()
}

func (w *Writer) target() *Store {
	if w.store == nil {
		panic("writer is already closed")
	}
	return w.store
}

// Ident interns a name.
func (w *Writer) Ident(name string) StringID {
	return w.target().strings.Intern(name)
}

// Intern interns a string value.
func (w *Writer) Intern(str string) StringID {
	return w.target().strings.Intern(str)
}

// BlockString appends the raw text of a block string. Unlike Intern, it always creates a new entry.
func (w *Writer) BlockString(raw string) BlockStringID {
	store := w.target()
	id := BlockStringID(len(store.blockStrings))
	store.blockStrings = append(store.blockStrings, raw)
	return id
}

// Type pushes a type reference.
func (w *Writer) Type(record TypeRecord) TypeID {
	store := w.target()
	id := TypeID(len(store.types))
	store.types = append(store.types, record)
	return id
}

// TypeName is a shorthand to push a reference to a named type.
func (w *Writer) TypeName(name string) TypeID {
	return w.Type(TypeRecord{
		Kind: TypeKindNamed,
		Name: w.Ident(name),
	})
}

// ListOf is a shorthand to push a list type wrapping ofType.
func (w *Writer) ListOf(ofType TypeID) TypeID {
	return w.Type(TypeRecord{
		Kind:   TypeKindList,
		OfType: ofType,
	})
}

// NonNullOf is a shorthand to push a non-null type wrapping ofType.
func (w *Writer) NonNullOf(ofType TypeID) TypeID {
	return w.Type(TypeRecord{
		Kind:   TypeKindNonNull,
		OfType: ofType,
	})
}

// Value pushes a single value.
func (w *Writer) Value(record ValueRecord) ValueID {
	store := w.target()
	id := ValueID(len(store.values))
	store.values = append(store.values, record)
	return id
}

// Values pushes items of a list value in one burst and returns their range.
func (w *Writer) Values(records []ValueRecord) IDRange[ValueID] {
	store := w.target()
	start := ValueID(len(store.values))
	store.values = append(store.values, records...)
	return NewIDRange(start, ValueID(len(store.values)))
}

// ObjectFields pushes fields of an object value in one burst and returns their range.
func (w *Writer) ObjectFields(records []ObjectFieldRecord) IDRange[ObjectFieldID] {
	store := w.target()
	start := ObjectFieldID(len(store.objectFields))
	store.objectFields = append(store.objectFields, records...)
	return NewIDRange(start, ObjectFieldID(len(store.objectFields)))
}

// Directive pushes an applied directive.
func (w *Writer) Directive(record DirectiveRecord) DirectiveID {
	store := w.target()
	id := DirectiveID(len(store.directives))
	store.directives = append(store.directives, record)
	return id
}

// DirectiveRange groups the directives pushed since the previous call into a range.
func (w *Writer) DirectiveRange(expected int) IDRange[DirectiveID] {
	return w.directiveCursor.Finish(len(w.target().directives), expected)
}

// Argument pushes an argument.
func (w *Writer) Argument(record ArgumentRecord) ArgumentID {
	store := w.target()
	id := ArgumentID(len(store.arguments))
	store.arguments = append(store.arguments, record)
	return id
}

// ArgumentRange groups the arguments pushed since the previous call into a range.
func (w *Writer) ArgumentRange(expected int) IDRange[ArgumentID] {
	return w.argumentCursor.Finish(len(w.target().arguments), expected)
}

// Check panics if there are directives or arguments that were never grouped into a range.
func (w *Writer) Check() {
	store := w.target()
	w.directiveCursor.Check(len(store.directives))
	w.argumentCursor.Check(len(store.arguments))
}

// Close checks the writer, detaches it from the store and returns the store. Any further push
// panics.
func (w *Writer) Close() *Store {
	w.Check()
	store := w.store
	w.store = nil
	return store
}
