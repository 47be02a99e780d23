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

// OperationDefinition reads an operation.
type OperationDefinition struct {
	id  OperationDefinitionID
	doc *Document
}

// Read returns the reader for the operation.
func (id OperationDefinitionID) Read(doc *Document) OperationDefinition {
	return OperationDefinition{id, doc}
}

// Record returns the underlying record.
func (op OperationDefinition) Record() OperationDefinitionRecord {
	return op.doc.operations[op.id]
}

// OperationType returns the type of the operation.
func (op OperationDefinition) OperationType() ast.OperationType {
	return op.Record().OperationType
}

// Name returns the operation name. Anonymous operations have no name.
func (op OperationDefinition) Name() (string, bool) {
	return lookupOptional(op.Record().Name, op.doc)
}

// VariableDefinitions returns the variables of the operation.
func (op OperationDefinition) VariableDefinitions() iterator.Iter[VariableDefinitionID, VariableDefinition] {
	return ast.ReadRange[VariableDefinition](op.Record().VariableDefinitions, op.doc)
}

// Directives returns the directives applied to the operation.
func (op OperationDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return op.doc.store.Directives(op.Record().Directives)
}

// SelectionSet returns the top-level selections.
func (op OperationDefinition) SelectionSet() iterator.Iter[SelectionID, Selection] {
	return ast.ReadRange[Selection](op.Record().SelectionSet, op.doc)
}

// Span returns the source span of the operation.
func (op OperationDefinition) Span() token.Span {
	return op.Record().Span
}

// FragmentDefinition reads a fragment definition.
type FragmentDefinition struct {
	id  FragmentDefinitionID
	doc *Document
}

// Read returns the reader for the fragment definition.
func (id FragmentDefinitionID) Read(doc *Document) FragmentDefinition {
	return FragmentDefinition{id, doc}
}

// Record returns the underlying record.
func (fragment FragmentDefinition) Record() FragmentDefinitionRecord {
	return fragment.doc.fragments[fragment.id]
}

// Name returns the fragment name.
func (fragment FragmentDefinition) Name() string {
	return fragment.doc.store.LookupString(fragment.Record().Name)
}

// VariableDefinitions returns the experimental fragment variables.
func (fragment FragmentDefinition) VariableDefinitions() iterator.Iter[VariableDefinitionID, VariableDefinition] {
	return ast.ReadRange[VariableDefinition](fragment.Record().VariableDefinitions, fragment.doc)
}

// TypeCondition returns the name of the type that the fragment applies to.
func (fragment FragmentDefinition) TypeCondition() string {
	return fragment.doc.store.LookupString(fragment.Record().TypeCondition)
}

// Directives returns the directives applied to the fragment.
func (fragment FragmentDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return fragment.doc.store.Directives(fragment.Record().Directives)
}

// SelectionSet returns the selections of the fragment.
func (fragment FragmentDefinition) SelectionSet() iterator.Iter[SelectionID, Selection] {
	return ast.ReadRange[Selection](fragment.Record().SelectionSet, fragment.doc)
}

// Span returns the source span of the fragment definition.
func (fragment FragmentDefinition) Span() token.Span {
	return fragment.Record().Span
}

// VariableDefinition reads a variable definition.
type VariableDefinition struct {
	id  VariableDefinitionID
	doc *Document
}

// Read returns the reader for the variable definition.
func (id VariableDefinitionID) Read(doc *Document) VariableDefinition {
	return VariableDefinition{id, doc}
}

// Record returns the underlying record.
func (v VariableDefinition) Record() VariableDefinitionRecord {
	return v.doc.variableDefinitions[v.id]
}

// Name returns the variable name without "$".
func (v VariableDefinition) Name() string {
	return v.doc.store.LookupString(v.Record().Name)
}

// Type returns the type of the variable.
func (v VariableDefinition) Type() ast.Type {
	return v.Record().Type.Read(v.doc.store)
}

// DefaultValue returns the default value if there is one.
func (v VariableDefinition) DefaultValue() (ast.Value, bool) {
	id, ok := v.Record().DefaultValue.Get()
	if !ok {
		return ast.Value{}, false
	}
	return id.Read(v.doc.store), true
}

// Directives returns the directives applied to the variable definition.
func (v VariableDefinition) Directives() iterator.Iter[ast.DirectiveID, ast.Directive] {
	return v.doc.store.Directives(v.Record().Directives)
}

// Span returns the source span of the variable definition.
func (v VariableDefinition) Span() token.Span {
	return v.Record().Span
}

func lookupOptional(id ast.Optional[ast.StringID], doc *Document) (string, bool) {
	if id, ok := id.Get(); ok {
		return doc.store.LookupString(id), true
	}
	return "", false
}
