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

package schema

import (
	"github.com/botobag/gqldoc/graphql/ast"
)

// String returns the canonical SDL of the document.
func (doc *Document) String() string {
	var p printer
	p.printDocument(doc)
	return p.String()
}

// ToSDL is an alias of String.
func (doc *Document) ToSDL() string {
	return doc.String()
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
	if def.IsExtension() {
		p.WriteString("extend ")
	}

	if schema, ok := def.AsSchema(); ok {
		p.printSchemaDefinition(schema)
	} else if t, ok := def.AsType(); ok {
		p.printTypeDefinition(t)
	} else if directive, ok := def.AsDirective(); ok {
		p.printDirectiveDefinition(directive)
	}
}

// printDescription prints the description followed by a line break when there is one.
func (p *printer) printDescription(description Description, ok bool) {
	if !ok {
		return
	}
	p.PrintStringLiteral(description.Literal(), "")
	p.WriteNewLineWithIndent()
}

func (p *printer) printSchemaDefinition(def SchemaDefinition) {
	record := def.Record()
	p.printDescription(def.Description())
	p.WriteString("schema")
	p.PrintDirectives(record.Directives, def.doc.store)
	if record.RootOperations.IsEmpty() {
		return
	}
	p.WriteString(" ")
	p.BeginBlock()
	for op := range def.RootOperations().All() {
		p.WriteNewLineWithIndent()
		p.WriteString(op.OperationType().String())
		p.WriteString(": ")
		p.WriteString(op.NamedType())
	}
	p.EndBlock()
}

func (p *printer) printTypeDefinition(t TypeDefinition) {
	doc := t.doc
	p.printDescription(t.Description())

	switch t.Kind() {
	case TypeDefinitionKindScalar:
		p.WriteString("scalar ")
		p.WriteString(t.Name())
		_, _, directives, _ := t.header()
		p.PrintDirectives(directives, doc.store)

	case TypeDefinitionKindObject:
		def, _ := t.AsObject()
		record := def.Record()
		p.WriteString("type ")
		p.WriteString(def.Name())
		p.printImplements(record.Implements, doc)
		p.PrintDirectives(record.Directives, doc.store)
		p.printFieldDefinitions(record.Fields, doc)

	case TypeDefinitionKindInterface:
		def, _ := t.AsInterface()
		record := def.Record()
		p.WriteString("interface ")
		p.WriteString(def.Name())
		p.printImplements(record.Implements, doc)
		p.PrintDirectives(record.Directives, doc.store)
		p.printFieldDefinitions(record.Fields, doc)

	case TypeDefinitionKindUnion:
		def, _ := t.AsUnion()
		record := def.Record()
		p.WriteString("union ")
		p.WriteString(def.Name())
		p.PrintDirectives(record.Directives, doc.store)
		for id := record.Members.Start; id < record.Members.End; id++ {
			if id == record.Members.Start {
				p.WriteString(" = ")
			} else {
				p.WriteString(" | ")
			}
			p.WriteString(id.Read(doc).Name())
		}

	case TypeDefinitionKindEnum:
		def, _ := t.AsEnum()
		record := def.Record()
		p.WriteString("enum ")
		p.WriteString(def.Name())
		p.PrintDirectives(record.Directives, doc.store)
		if !record.Values.IsEmpty() {
			p.WriteString(" ")
			p.BeginBlock()
			for value := range def.Values().All() {
				p.WriteNewLineWithIndent()
				p.printDescription(value.Description())
				p.WriteString(value.Value())
				p.PrintDirectives(value.Record().Directives, doc.store)
			}
			p.EndBlock()
		}

	case TypeDefinitionKindInputObject:
		def, _ := t.AsInputObject()
		record := def.Record()
		p.WriteString("input ")
		p.WriteString(def.Name())
		p.PrintDirectives(record.Directives, doc.store)
		if !record.Fields.IsEmpty() {
			p.WriteString(" ")
			p.BeginBlock()
			for field := range def.Fields().All() {
				p.WriteNewLineWithIndent()
				p.printInputValueDefinition(field)
			}
			p.EndBlock()
		}
	}
}

func (p *printer) printImplements(r ast.IDRange[NamedTypeID], doc *Document) {
	for id := r.Start; id < r.End; id++ {
		if id == r.Start {
			p.WriteString(" implements ")
		} else {
			p.WriteString(" & ")
		}
		p.WriteString(id.Read(doc).Name())
	}
}

func (p *printer) printFieldDefinitions(r ast.IDRange[FieldDefinitionID], doc *Document) {
	if r.IsEmpty() {
		return
	}
	p.WriteString(" ")
	p.BeginBlock()
	for id := r.Start; id < r.End; id++ {
		field := id.Read(doc)
		record := field.Record()
		p.WriteNewLineWithIndent()
		p.printDescription(field.Description())
		p.WriteString(field.Name())
		p.printArgumentDefinitions(record.Arguments, doc)
		p.WriteString(": ")
		p.PrintType(field.Type())
		p.PrintDirectives(record.Directives, doc.store)
	}
	p.EndBlock()
}

// printArgumentDefinitions prints argument definitions on one line unless any of them has a
// description, in which case each goes on its own line.
func (p *printer) printArgumentDefinitions(r ast.IDRange[InputValueDefinitionID], doc *Document) {
	if r.IsEmpty() {
		return
	}

	multiline := false
	for id := r.Start; id < r.End; id++ {
		if doc.inputValues[id].Description.IsSome() {
			multiline = true
			break
		}
	}

	p.WriteString("(")
	if multiline {
		p.BeginIndent()
		for id := r.Start; id < r.End; id++ {
			p.WriteNewLineWithIndent()
			p.printInputValueDefinition(id.Read(doc))
		}
		p.EndIndent()
		p.WriteNewLineWithIndent()
	} else {
		for id := r.Start; id < r.End; id++ {
			if id != r.Start {
				p.WriteString(", ")
			}
			p.printInputValueDefinition(id.Read(doc))
		}
	}
	p.WriteString(")")
}

func (p *printer) printInputValueDefinition(def InputValueDefinition) {
	record := def.Record()
	p.printDescription(def.Description())
	p.WriteString(def.Name())
	p.WriteString(": ")
	p.PrintType(def.Type())
	if value, ok := def.DefaultValue(); ok {
		p.WriteString(" = ")
		p.PrintValue(value)
	}
	p.PrintDirectives(record.Directives, def.doc.store)
}

func (p *printer) printDirectiveDefinition(def DirectiveDefinition) {
	record := def.Record()
	p.printDescription(def.Description())
	p.WriteString("directive @")
	p.WriteString(def.Name())
	p.printArgumentDefinitions(record.Arguments, def.doc)
	if record.Repeatable {
		p.WriteString(" repeatable")
	}
	p.WriteString(" on ")
	for id := record.Locations.Start; id < record.Locations.End; id++ {
		if id != record.Locations.Start {
			p.WriteString(" | ")
		}
		p.WriteString(string(id.Read(def.doc).Value()))
	}
}
