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
)

// Writer builds a Document.
//
// Selection sets nest in themselves so their entries are pushed in one burst with Selections after
// the nested selection sets of every entry are written.
type Writer struct {
	*ast.Writer

	doc *Document

	variableCursor ast.RangeCursor[VariableDefinitionID]
}

// NewWriter creates a writer for a new document.
func NewWriter() *Writer {
	w := ast.NewWriter()
	doc := &Document{store: w.Store()}
	return &Writer{
		Writer:         w,
		doc:            doc,
		variableCursor: ast.NewRangeCursor[VariableDefinitionID]("variable definition", 0),
	}
}

func (w *Writer) document() *Document {
	if w.doc == nil {
		panic("executable writer is already finished")
	}
	return w.doc
}

// Finish returns the document. The writer cannot be used afterward.
func (w *Writer) Finish() *Document {
	doc := w.document()
	w.variableCursor.Check(len(doc.variableDefinitions))
	w.Writer.Close()
	w.doc = nil
	return doc
}

func push[T any](arena *[]T, record T) uint32 {
	id := uint32(len(*arena))
	*arena = append(*arena, record)
	return id
}

// OperationDefinition pushes an operation.
func (w *Writer) OperationDefinition(record OperationDefinitionRecord) OperationDefinitionID {
	doc := w.document()
	id := push(&doc.operations, record)
	doc.definitions = append(doc.definitions, DefinitionRecord{DefinitionKindOperation, id})
	return OperationDefinitionID(id)
}

// FragmentDefinition pushes a fragment definition.
func (w *Writer) FragmentDefinition(record FragmentDefinitionRecord) FragmentDefinitionID {
	doc := w.document()
	id := push(&doc.fragments, record)
	doc.definitions = append(doc.definitions, DefinitionRecord{DefinitionKindFragment, id})
	return FragmentDefinitionID(id)
}

// VariableDefinition pushes a variable definition.
func (w *Writer) VariableDefinition(record VariableDefinitionRecord) VariableDefinitionID {
	return VariableDefinitionID(push(&w.document().variableDefinitions, record))
}

// VariableDefinitionRange groups the variable definitions pushed since the previous call.
func (w *Writer) VariableDefinitionRange(expected int) ast.IDRange[VariableDefinitionID] {
	return w.variableCursor.Finish(len(w.document().variableDefinitions), expected)
}

// FieldSelection pushes a field. The field becomes part of a selection set once its entry is
// pushed with Selections.
func (w *Writer) FieldSelection(record FieldSelectionRecord) FieldSelectionID {
	return FieldSelectionID(push(&w.document().fields, record))
}

// InlineFragment pushes an inline fragment.
func (w *Writer) InlineFragment(record InlineFragmentRecord) InlineFragmentID {
	return InlineFragmentID(push(&w.document().inlineFragments, record))
}

// FragmentSpread pushes a fragment spread.
func (w *Writer) FragmentSpread(record FragmentSpreadRecord) FragmentSpreadID {
	return FragmentSpreadID(push(&w.document().fragmentSpreads, record))
}

// Selections pushes the entries of one selection set and returns their range.
func (w *Writer) Selections(records []SelectionRecord) ast.IDRange[SelectionID] {
	doc := w.document()
	start := SelectionID(len(doc.selections))
	doc.selections = append(doc.selections, records...)
	return ast.NewIDRange(start, SelectionID(len(doc.selections)))
}
