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

// OperationDefinitionID identifies an operation definition.
type OperationDefinitionID uint32

// FragmentDefinitionID identifies a fragment definition.
type FragmentDefinitionID uint32

// VariableDefinitionID identifies a variable definition.
type VariableDefinitionID uint32

// SelectionID identifies an entry in a selection set.
type SelectionID uint32

// FieldSelectionID identifies a field selection.
type FieldSelectionID uint32

// InlineFragmentID identifies an inline fragment.
type InlineFragmentID uint32

// FragmentSpreadID identifies a fragment spread.
type FragmentSpreadID uint32

// DefinitionID is the position of a definition in the document.
type DefinitionID uint32

// DefinitionKind tags an entry in the definition list.
type DefinitionKind uint8

// Enumeration of DefinitionKind
const (
	DefinitionKindOperation DefinitionKind = iota
	DefinitionKindFragment
)

func (kind DefinitionKind) String() string {
	switch kind {
	case DefinitionKindOperation:
		return "OperationDefinition"
	case DefinitionKindFragment:
		return "FragmentDefinition"
	}
	return "UnknownDefinition"
}

// DefinitionRecord is an entry in the definition list.
type DefinitionRecord struct {
	Kind DefinitionKind
	ID   uint32
}

// SelectionKind tags an entry in a selection set.
type SelectionKind uint8

// Enumeration of SelectionKind
const (
	SelectionKindField SelectionKind = iota
	SelectionKindInlineFragment
	SelectionKindFragmentSpread
)

func (kind SelectionKind) String() string {
	switch kind {
	case SelectionKindField:
		return "Field"
	case SelectionKindInlineFragment:
		return "InlineFragment"
	case SelectionKindFragmentSpread:
		return "FragmentSpread"
	}
	return "UnknownSelection"
}

// SelectionRecord is an entry in a selection set. ID indexes the arena selected by Kind.
type SelectionRecord struct {
	Kind SelectionKind
	ID   uint32
}

// Selection returns the entry referring to the field.
func (id FieldSelectionID) Selection() SelectionRecord {
	return SelectionRecord{SelectionKindField, uint32(id)}
}

// Selection returns the entry referring to the inline fragment.
func (id InlineFragmentID) Selection() SelectionRecord {
	return SelectionRecord{SelectionKindInlineFragment, uint32(id)}
}

// Selection returns the entry referring to the fragment spread.
func (id FragmentSpreadID) Selection() SelectionRecord {
	return SelectionRecord{SelectionKindFragmentSpread, uint32(id)}
}

// OperationDefinitionRecord stores an operation.
type OperationDefinitionRecord struct {
	OperationType       ast.OperationType
	Name                ast.Optional[ast.StringID]
	VariableDefinitions ast.IDRange[VariableDefinitionID]
	Directives          ast.IDRange[ast.DirectiveID]
	SelectionSet        ast.IDRange[SelectionID]
	Span                token.Span
}

// FragmentDefinitionRecord stores a fragment definition. VariableDefinitions is only non-empty
// when the experimental fragment variables are enabled in the parser.
type FragmentDefinitionRecord struct {
	Name                ast.StringID
	VariableDefinitions ast.IDRange[VariableDefinitionID]
	TypeCondition       ast.StringID
	Directives          ast.IDRange[ast.DirectiveID]
	SelectionSet        ast.IDRange[SelectionID]
	Span                token.Span
}

// VariableDefinitionRecord stores "$name: Type = default @directives".
type VariableDefinitionRecord struct {
	Name         ast.StringID
	Type         ast.TypeID
	DefaultValue ast.Optional[ast.ValueID]
	Directives   ast.IDRange[ast.DirectiveID]
	Span         token.Span
}

// FieldSelectionRecord stores a field in a selection set.
type FieldSelectionRecord struct {
	Alias        ast.Optional[ast.StringID]
	Name         ast.StringID
	Arguments    ast.IDRange[ast.ArgumentID]
	Directives   ast.IDRange[ast.DirectiveID]
	SelectionSet ast.IDRange[SelectionID]
	Span         token.Span
}

// InlineFragmentRecord stores an inline fragment.
type InlineFragmentRecord struct {
	TypeCondition ast.Optional[ast.StringID]
	Directives    ast.IDRange[ast.DirectiveID]
	SelectionSet  ast.IDRange[SelectionID]
	Span          token.Span
}

// FragmentSpreadRecord stores a fragment spread.
type FragmentSpreadRecord struct {
	FragmentName ast.StringID
	Directives   ast.IDRange[ast.DirectiveID]
	Span         token.Span
}

// Document is an executable document.
type Document struct {
	store *ast.Store

	definitions         []DefinitionRecord
	operations          []OperationDefinitionRecord
	fragments           []FragmentDefinitionRecord
	variableDefinitions []VariableDefinitionRecord
	selections          []SelectionRecord
	fields              []FieldSelectionRecord
	inlineFragments     []InlineFragmentRecord
	fragmentSpreads     []FragmentSpreadRecord
}

// Strings returns the string table of the document.
func (doc *Document) Strings() ast.StringTable {
	return doc.store.Strings()
}

// Definitions returns the definitions in source order.
func (doc *Document) Definitions() iterator.Iter[DefinitionID, Definition] {
	return ast.ReadRange[Definition](ast.NewIDRange(0, DefinitionID(len(doc.definitions))), doc)
}

// NumDefinitions returns the number of definitions in the document.
func (doc *Document) NumDefinitions() int {
	return len(doc.definitions)
}

// Operations returns the operations in source order.
func (doc *Document) Operations() iterator.Iter[OperationDefinitionID, OperationDefinition] {
	return ast.ReadRange[OperationDefinition](ast.NewIDRange(0, OperationDefinitionID(len(doc.operations))), doc)
}

// Fragments returns the fragment definitions in source order.
func (doc *Document) Fragments() iterator.Iter[FragmentDefinitionID, FragmentDefinition] {
	return ast.ReadRange[FragmentDefinition](ast.NewIDRange(0, FragmentDefinitionID(len(doc.fragments))), doc)
}

// Operation finds the operation with the given name. An empty name selects the only operation in
// the document; it fails when the document has more than one.
func (doc *Document) Operation(name string) (OperationDefinition, bool) {
	if len(name) == 0 {
		if len(doc.operations) != 1 {
			return OperationDefinition{}, false
		}
		return OperationDefinition{0, doc}, true
	}

	nameID, exists := doc.Strings().Find(name)
	if !exists {
		return OperationDefinition{}, false
	}
	for i := range doc.operations {
		if id, ok := doc.operations[i].Name.Get(); ok && id == nameID {
			return OperationDefinition{OperationDefinitionID(i), doc}, true
		}
	}
	return OperationDefinition{}, false
}

// Fragment finds the fragment definition with the given name.
func (doc *Document) Fragment(name string) (FragmentDefinition, bool) {
	nameID, exists := doc.Strings().Find(name)
	if !exists {
		return FragmentDefinition{}, false
	}
	for i := range doc.fragments {
		if doc.fragments[i].Name == nameID {
			return FragmentDefinition{FragmentDefinitionID(i), doc}, true
		}
	}
	return FragmentDefinition{}, false
}

// Definition reads an operation or a fragment definition in the definition list.
type Definition struct {
	id  DefinitionID
	doc *Document
}

// Read returns the reader for the definition.
func (id DefinitionID) Read(doc *Document) Definition {
	return Definition{id, doc}
}

// Kind returns the kind of definition.
func (def Definition) Kind() DefinitionKind {
	return def.doc.definitions[def.id].Kind
}

// AsOperation returns the operation definition.
func (def Definition) AsOperation() (OperationDefinition, bool) {
	record := def.doc.definitions[def.id]
	return OperationDefinition{OperationDefinitionID(record.ID), def.doc}, record.Kind == DefinitionKindOperation
}

// AsFragment returns the fragment definition.
func (def Definition) AsFragment() (FragmentDefinition, bool) {
	record := def.doc.definitions[def.id]
	return FragmentDefinition{FragmentDefinitionID(record.ID), def.doc}, record.Kind == DefinitionKindFragment
}

// Span returns the source span of the definition.
func (def Definition) Span() token.Span {
	if operation, ok := def.AsOperation(); ok {
		return operation.Span()
	}
	fragment, _ := def.AsFragment()
	return fragment.Span()
}

// String returns the canonical form of the definition.
func (def Definition) String() string {
	var p printer
	p.printDefinition(def)
	return p.String()
}
