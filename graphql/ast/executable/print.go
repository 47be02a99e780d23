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

// String returns the canonical form of the document.
func (doc *Document) String() string {
	var p printer
	p.printDocument(doc)
	return p.String()
}

type printer struct {
	ast.Printer
}

func (p *printer) printDocument(doc *Document) {
	if len(doc.definitions) == 0 {
		return
	}
	for def := range doc.Definitions().All() {
		if def.id > 0 {
			p.WriteString("\n\n")
		}
		p.printDefinition(def)
	}
	p.WriteString("\n")
}

func (p *printer) printDefinition(def Definition) {
	if operation, ok := def.AsOperation(); ok {
		p.printOperationDefinition(operation)
	} else if fragment, ok := def.AsFragment(); ok {
		p.printFragmentDefinition(fragment)
	}
}

// IsQueryShorthand returns true if the operation can be written as a bare selection set: an
// anonymous query without variables or directives.
func (op OperationDefinition) IsQueryShorthand() bool {
	record := op.Record()
	return record.OperationType == ast.OperationTypeQuery &&
		!record.Name.IsSome() &&
		record.VariableDefinitions.IsEmpty() &&
		record.Directives.IsEmpty()
}

func (p *printer) printOperationDefinition(op OperationDefinition) {
	record := op.Record()
	if op.IsQueryShorthand() {
		p.printSelectionSet(record.SelectionSet, op.doc)
		return
	}

	p.WriteString(record.OperationType.String())
	name, hasName := op.Name()
	if hasName || !record.VariableDefinitions.IsEmpty() {
		p.WriteString(" ")
		p.WriteString(name)
		p.printVariableDefinitions(record.VariableDefinitions, op.doc)
	}
	p.PrintDirectives(record.Directives, op.doc.store)
	if !record.SelectionSet.IsEmpty() {
		p.WriteString(" ")
		p.printSelectionSet(record.SelectionSet, op.doc)
	}
}

func (p *printer) printVariableDefinitions(r ast.IDRange[VariableDefinitionID], doc *Document) {
	if r.IsEmpty() {
		return
	}
	p.WriteString("(")
	for id := r.Start; id < r.End; id++ {
		if id != r.Start {
			p.WriteString(", ")
		}
		v := id.Read(doc)
		p.WriteString("$")
		p.WriteString(v.Name())
		p.WriteString(": ")
		p.PrintType(v.Type())
		if value, ok := v.DefaultValue(); ok {
			p.WriteString(" = ")
			p.PrintValue(value)
		}
		p.PrintDirectives(v.Record().Directives, doc.store)
	}
	p.WriteString(")")
}

func (p *printer) printFragmentDefinition(fragment FragmentDefinition) {
	record := fragment.Record()
	p.WriteString("fragment ")
	p.WriteString(fragment.Name())
	p.printVariableDefinitions(record.VariableDefinitions, fragment.doc)
	p.WriteString(" on ")
	p.WriteString(fragment.TypeCondition())
	p.PrintDirectives(record.Directives, fragment.doc.store)
	p.WriteString(" ")
	p.printSelectionSet(record.SelectionSet, fragment.doc)
}

func (p *printer) printSelectionSet(r ast.IDRange[SelectionID], doc *Document) {
	if r.IsEmpty() {
		return
	}
	p.BeginBlock()
	for id := r.Start; id < r.End; id++ {
		p.WriteNewLineWithIndent()
		p.printSelection(id.Read(doc))
	}
	p.EndBlock()
}

func (p *printer) printSelection(selection Selection) {
	doc := selection.doc
	switch selection.Kind() {
	case SelectionKindField:
		field, _ := selection.AsField()
		record := field.Record()
		if alias, ok := field.Alias(); ok {
			p.WriteString(alias)
			p.WriteString(": ")
		}
		p.WriteString(field.Name())
		p.PrintArguments(record.Arguments, doc.store)
		p.PrintDirectives(record.Directives, doc.store)
		if !record.SelectionSet.IsEmpty() {
			p.WriteString(" ")
			p.printSelectionSet(record.SelectionSet, doc)
		}

	case SelectionKindInlineFragment:
		fragment, _ := selection.AsInlineFragment()
		record := fragment.Record()
		p.WriteString("...")
		if typeCondition, ok := fragment.TypeCondition(); ok {
			p.WriteString(" on ")
			p.WriteString(typeCondition)
		}
		p.PrintDirectives(record.Directives, doc.store)
		if !record.SelectionSet.IsEmpty() {
			p.WriteString(" ")
			p.printSelectionSet(record.SelectionSet, doc)
		}

	case SelectionKindFragmentSpread:
		spread, _ := selection.AsFragmentSpread()
		p.WriteString("...")
		p.WriteString(spread.FragmentName())
		p.PrintDirectives(spread.Record().Directives, doc.store)
	}
}
