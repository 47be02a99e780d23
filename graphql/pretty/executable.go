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

package pretty

import (
	"github.com/botobag/gqldoc/graphql/ast/executable"
	"github.com/botobag/gqldoc/iterator"
)

// Executable lays out an executable document.
func Executable(doc *executable.Document, opts Options) string {
	var definitions []Doc
	for def := range doc.Definitions().All() {
		if operation, ok := def.AsOperation(); ok {
			definitions = append(definitions, operationDefinition(operation))
		} else if fragment, ok := def.AsFragment(); ok {
			definitions = append(definitions, fragmentDefinition(fragment))
		}
	}
	return document(definitions, opts)
}

func operationDefinition(op executable.OperationDefinition) Doc {
	if op.IsQueryShorthand() {
		return selectionSet(op.SelectionSet())
	}

	docs := []Doc{Text(op.OperationType().String())}
	name, hasName := op.Name()
	variables := op.VariableDefinitions()
	if hasName || variables.Len() > 0 {
		docs = append(docs, Text(" "+name), variableDefinitions(variables))
	}
	docs = append(docs, directives(op.Directives()))
	if set := op.SelectionSet(); set.Len() > 0 {
		docs = append(docs, Text(" "), selectionSet(set))
	}
	return Concat(docs...)
}

func fragmentDefinition(fragment executable.FragmentDefinition) Doc {
	return Concat(
		Text("fragment "+fragment.Name()),
		variableDefinitions(fragment.VariableDefinitions()),
		Text(" on "+fragment.TypeCondition()),
		directives(fragment.Directives()),
		Text(" "),
		selectionSet(fragment.SelectionSet()),
	)
}

func variableDefinitions(it iterator.Iter[executable.VariableDefinitionID, executable.VariableDefinition]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var items []Doc
	for variable := range it.All() {
		item := []Doc{Text("$" + variable.Name() + ": "), typeRef(variable.Type())}
		if defaultValue, ok := variable.DefaultValue(); ok {
			item = append(item, Text(" = "), value(defaultValue))
		}
		item = append(item, directives(variable.Directives()))
		items = append(items, Concat(item...))
	}
	return delimited("(", items, ")")
}

// selectionSet renders nothing for an empty selection set.
func selectionSet(it iterator.Iter[executable.SelectionID, executable.Selection]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var items []Doc
	for s := range it.All() {
		items = append(items, selection(s))
	}
	return block(items)
}

func selection(s executable.Selection) Doc {
	switch s.Kind() {
	case executable.SelectionKindField:
		field, _ := s.AsField()
		var docs []Doc
		if alias, ok := field.Alias(); ok {
			docs = append(docs, Text(alias+": "))
		}
		docs = append(docs,
			Text(field.Name()),
			arguments(field.Arguments()),
			directives(field.Directives()))
		if set := field.SelectionSet(); set.Len() > 0 {
			docs = append(docs, Text(" "), selectionSet(set))
		}
		return Concat(docs...)

	case executable.SelectionKindInlineFragment:
		fragment, _ := s.AsInlineFragment()
		docs := []Doc{Text("...")}
		if typeCondition, ok := fragment.TypeCondition(); ok {
			docs = append(docs, Text(" on "+typeCondition))
		}
		docs = append(docs,
			directives(fragment.Directives()),
			Text(" "),
			selectionSet(fragment.SelectionSet()))
		return Concat(docs...)

	case executable.SelectionKindFragmentSpread:
		spread, _ := s.AsFragmentSpread()
		return Concat(
			Text("..."+spread.FragmentName()),
			directives(spread.Directives()))
	}

	return Empty()
}
