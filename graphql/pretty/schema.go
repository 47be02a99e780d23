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
	"github.com/botobag/gqldoc/graphql/ast/schema"
	"github.com/botobag/gqldoc/iterator"
)

// Schema lays out a type system document.
func Schema(doc *schema.Document, opts Options) string {
	var definitions []Doc
	for def := range doc.Definitions().All() {
		definitions = append(definitions, schemaDefinition(def))
	}
	return document(definitions, opts)
}

func schemaDefinition(def schema.Definition) Doc {
	var body Doc
	if s, ok := def.AsSchema(); ok {
		body = schemaBlock(s)
	} else if t, ok := def.AsType(); ok {
		body = typeDefinition(t)
	} else if directive, ok := def.AsDirective(); ok {
		body = directiveDefinition(directive)
	} else {
		return Empty()
	}

	if def.IsExtension() {
		return Concat(Text("extend "), body)
	}
	return body
}

// description renders a description followed by a line break, or nothing.
func description(d schema.Description, ok bool) Doc {
	if !ok {
		return Empty()
	}
	return Concat(stringLiteral(d.Literal()), HardLine())
}

func schemaBlock(def schema.SchemaDefinition) Doc {
	docs := []Doc{
		description(def.Description()),
		Text("schema"),
		directives(def.Directives()),
	}
	var operations []Doc
	for op := range def.RootOperations().All() {
		operations = append(operations, Text(op.OperationType().String()+": "+op.NamedType()))
	}
	if len(operations) > 0 {
		docs = append(docs, Text(" "), block(operations))
	}
	return Concat(docs...)
}

func typeDefinition(t schema.TypeDefinition) Doc {
	switch t.Kind() {
	case schema.TypeDefinitionKindScalar:
		return Concat(
			description(t.Description()),
			Text("scalar "+t.Name()),
			directives(t.Directives()))

	case schema.TypeDefinitionKindObject:
		def, _ := t.AsObject()
		return Concat(
			description(def.Description()),
			Text("type "+def.Name()),
			implements(def.Implements()),
			directives(def.Directives()),
			fieldDefinitions(def.Fields()))

	case schema.TypeDefinitionKindInterface:
		def, _ := t.AsInterface()
		return Concat(
			description(def.Description()),
			Text("interface "+def.Name()),
			implements(def.Implements()),
			directives(def.Directives()),
			fieldDefinitions(def.Fields()))

	case schema.TypeDefinitionKindUnion:
		def, _ := t.AsUnion()
		var members []Doc
		for member := range def.Members().All() {
			members = append(members, Text(member.Name()))
		}
		return Concat(
			description(def.Description()),
			Text("union "+def.Name()),
			directives(def.Directives()),
			alternatives(" =", members))

	case schema.TypeDefinitionKindEnum:
		def, _ := t.AsEnum()
		var values []Doc
		for value := range def.Values().All() {
			values = append(values, Concat(
				description(value.Description()),
				Text(value.Value()),
				directives(value.Directives())))
		}
		docs := []Doc{
			description(def.Description()),
			Text("enum " + def.Name()),
			directives(def.Directives()),
		}
		if len(values) > 0 {
			docs = append(docs, Text(" "), block(values))
		}
		return Concat(docs...)

	case schema.TypeDefinitionKindInputObject:
		def, _ := t.AsInputObject()
		var fields []Doc
		for field := range def.Fields().All() {
			fields = append(fields, inputValueDefinition(field))
		}
		docs := []Doc{
			description(def.Description()),
			Text("input " + def.Name()),
			directives(def.Directives()),
		}
		if len(fields) > 0 {
			docs = append(docs, Text(" "), block(fields))
		}
		return Concat(docs...)
	}

	return Empty()
}

func directiveDefinition(def schema.DirectiveDefinition) Doc {
	docs := []Doc{
		description(def.Description()),
		Text("directive @" + def.Name()),
		argumentDefinitions(def.Arguments()),
	}
	if def.IsRepeatable() {
		docs = append(docs, Text(" repeatable"))
	}
	var locations []Doc
	for location := range def.Locations().All() {
		locations = append(locations, Text(string(location.Value())))
	}
	docs = append(docs, alternatives(" on", locations))
	return Concat(docs...)
}

// alternatives lays out a "|" separated list after keyword. Broken, each alternative goes on its own
// line with the separator in front.
func alternatives(keyword string, items []Doc) Doc {
	if len(items) == 0 {
		return Empty()
	}
	return Group(Concat(
		Text(keyword),
		Nest(indentWidth, Concat(
			Line(),
			Join(Concat(Line(), Text("| ")), items),
		)),
	))
}

func implements(it iterator.Iter[schema.NamedTypeID, schema.NamedType]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var names []Doc
	for t := range it.All() {
		names = append(names, Text(t.Name()))
	}
	return Concat(Text(" implements "), Join(Text(" & "), names))
}

func fieldDefinitions(it iterator.Iter[schema.FieldDefinitionID, schema.FieldDefinition]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var fields []Doc
	for field := range it.All() {
		fields = append(fields, Concat(
			description(field.Description()),
			Text(field.Name()),
			argumentDefinitions(field.Arguments()),
			Text(": "),
			typeRef(field.Type()),
			directives(field.Directives())))
	}
	return Concat(Text(" "), block(fields))
}

func argumentDefinitions(it iterator.Iter[schema.InputValueDefinitionID, schema.InputValueDefinition]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var items []Doc
	for def := range it.All() {
		items = append(items, inputValueDefinition(def))
	}
	return delimited("(", items, ")")
}

func inputValueDefinition(def schema.InputValueDefinition) Doc {
	docs := []Doc{
		description(def.Description()),
		Text(def.Name() + ": "),
		typeRef(def.Type()),
	}
	if defaultValue, ok := def.DefaultValue(); ok {
		docs = append(docs, Text(" = "), value(defaultValue))
	}
	docs = append(docs, directives(def.Directives()))
	return Concat(docs...)
}
