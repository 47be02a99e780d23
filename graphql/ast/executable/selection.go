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

package executable

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/iterator"
)

// Selection reads an entry in a selection set. It is one of a field, an inline fragment or a
// fragment spread.
type Selection struct {
	id  SelectionID
	doc *Document
}

// Read returns the reader for the selection.
func (id SelectionID) Read(doc *Document) Selection {
	return Selection{id, doc}
}

// Record returns the tag of the selection.
func (selection Selection) Record() SelectionRecord {
	return selection.doc.selections[selection.id]
}

// Kind returns the kind of selection.
func (selection Selection) Kind() SelectionKind {
	return selection.Record().Kind
}

// AsField returns the field selection.
func (selection Selection) AsField() (FieldSelection, bool) {
	record := selection.Record()
	return FieldSelection{FieldSelectionID(record.ID), selection.doc}, record.Kind == SelectionKindField
}

// AsInlineFragment returns the inline fragment.
func (selection Selection) AsInlineFragment() (InlineFragment, bool) {
	record := selection.Record()
	return InlineFragment{InlineFragmentID(record.ID), selection.doc}, record.Kind == SelectionKindInlineFragment
}

// AsFragmentSpread returns the fragment spread.
func (selection Selection) AsFragmentSpread() (FragmentSpread, bool) {
	record := selection.Record()
	return FragmentSpread{FragmentSpreadID(record.ID), selection.doc}, record.Kind == SelectionKindFragmentSpread
}

// directives returns the directive range of any kind of selection.
func (selection Selection) directives() ast.IDRange[ast.DirectiveID] {
	record := selection.Record()
	switch record.Kind {
	case SelectionKindField:
		return selection.doc.fields[record.ID].Directives
	case SelectionKindInlineFragment:
		return selection.doc.inlineFragments[record.ID].Directives
	}
	return selection.doc.fragmentSpreads[record.ID].Directives
}

// Directives returns the directives applied to the selection.
func (selection Selection) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return selection.doc.store.Directives(selection.directives())
}

// Span returns the source span of the selection.
func (selection Selection) Span() token.Span {
	record := selection.Record()
	switch record.Kind {
	case SelectionKindField:
		return selection.doc.fields[record.ID].Span
	case SelectionKindInlineFragment:
		return selection.doc.inlineFragments[record.ID].Span
	}
	return selection.doc.fragmentSpreads[record.ID].Span
}

// String returns the canonical form of the selection.
func (selection Selection) String() string {
	var p printer
	p.printSelection(selection)
	return p.String()
}

// FieldSelection reads a field in a selection set.
type FieldSelection struct {
	id  FieldSelectionID
	doc *Document
}

// Read returns the reader for the field.
func (id FieldSelectionID) Read(doc *Document) FieldSelection {
	return FieldSelection{id, doc}
}

// Record returns the underlying record.
func (field FieldSelection) Record() FieldSelectionRecord {
	return field.doc.fields[field.id]
}

// Alias returns the alias of the field if there is one.
func (field FieldSelection) Alias() (string, bool) {
	return lookupOptional(field.Record().Alias, field.doc)
}

// Name returns the field name.
func (field FieldSelection) Name() string {
	return field.doc.store.LookupString(field.Record().Name)
}

// ResponseKey returns the alias if there is one and the name otherwise.
func (field FieldSelection) ResponseKey() string {
	if alias, ok := field.Alias(); ok {
		return alias
	}
	return field.Name()
}

// Arguments returns the arguments passed to the field.
func (field FieldSelection) Arguments() iterator.Iter[ast.ArgumentID, ast.Argument] {
	return field.doc.store.Arguments(field.Record().Arguments)
}

// Directives returns the directives applied to the field.
func (field FieldSelection) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return field.doc.store.Directives(field.Record().Directives)
}

// SelectionSet returns the sub-selections. Empty for fields of leaf types.
func (field FieldSelection) SelectionSet() iterator.Iter[SelectionID, Selection] {
	return ast.ReadRange[Selection](field.Record().SelectionSet, field.doc)
}

// Span returns the source span of the field.
func (field FieldSelection) Span() token.Span {
	return field.Record().Span
}

// InlineFragment reads an inline fragment.
type InlineFragment struct {
	id  InlineFragmentID
	doc *Document
}

// Read returns the reader for the inline fragment.
func (id InlineFragmentID) Read(doc *Document) InlineFragment {
	return InlineFragment{id, doc}
}

// Record returns the underlying record.
func (fragment InlineFragment) Record() InlineFragmentRecord {
	return fragment.doc.inlineFragments[fragment.id]
}

// TypeCondition returns the type condition if there is one.
func (fragment InlineFragment) TypeCondition() (string, bool) {
	return lookupOptional(fragment.Record().TypeCondition, fragment.doc)
}

// Directives returns the directives applied to the fragment.
func (fragment InlineFragment) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return fragment.doc.store.Directives(fragment.Record().Directives)
}

// SelectionSet returns the selections of the fragment.
func (fragment InlineFragment) SelectionSet() iterator.Iter[SelectionID, Selection] {
	return ast.ReadRange[Selection](fragment.Record().SelectionSet, fragment.doc)
}

// Span returns the source span of the fragment.
func (fragment InlineFragment) Span() token.Span {
	return fragment.Record().Span
}

// FragmentSpread reads a fragment spread.
type FragmentSpread struct {
	id  FragmentSpreadID
	doc *Document
}

// Read returns the reader for the fragment spread.
func (id FragmentSpreadID) Read(doc *Document) FragmentSpread {
	return FragmentSpread{id, doc}
}

// Record returns the underlying record.
func (spread FragmentSpread) Record() FragmentSpreadRecord {
	return spread.doc.fragmentSpreads[spread.id]
}

// FragmentName returns the name of the spread fragment.
func (spread FragmentSpread) FragmentName() string {
	return spread.doc.store.LookupString(spread.Record().FragmentName)
}

// Directives returns the directives applied to the spread.
func (spread FragmentSpread) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return spread.doc.store.Directives(spread.Record().Directives)
}

// Span returns the source span of the spread.
func (spread FragmentSpread) Span() token.Span {
	return spread.Record().Span
}
