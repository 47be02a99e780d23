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

package schema_test

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/schema"
	"github.com/botobag/gqldoc/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// writeObject pushes "type <name> { <field>: String }" with the given extension flag.
func writeObject(w *schema.Writer, name string, field string, extension bool) schema.ObjectDefinitionID {
	w.FieldDefinition(schema.FieldDefinitionRecord{
		Name:       w.Ident(field),
		Arguments:  w.InputValueDefinitionRange(0),
		Type:       w.TypeName("String"),
		Directives: w.DirectiveRange(0),
	})
	record := schema.ObjectDefinitionRecord{
		Name:       w.Ident(name),
		Implements: w.NamedTypeRange(0),
		Directives: w.DirectiveRange(0),
		Fields:     w.FieldDefinitionRange(1),
	}
	if extension {
		return w.ObjectExtension(record)
	}
	return w.ObjectDefinition(record)
}

var _ = Describe("Writer", func() {
	It("keeps definitions in the order they were written", func() {
		w := schema.NewWriter()
		w.ScalarDefinition(schema.ScalarDefinitionRecord{
			Name:       w.Ident("Date"),
			Directives: w.DirectiveRange(0),
		})
		writeObject(w, "Query", "hello", false)
		w.DirectiveLocation(schema.DirectiveLocationRecord{Location: schema.DirectiveLocationField})
		w.DirectiveDefinition(schema.DirectiveDefinitionRecord{
			Name:      w.Ident("cached"),
			Arguments: w.InputValueDefinitionRange(0),
			Locations: w.DirectiveLocationRange(1),
		})
		writeObject(w, "Query", "world", true)
		doc := w.Finish()

		var kinds []schema.DefinitionKind
		for def := range doc.Definitions().All() {
			kinds = append(kinds, def.Kind())
		}
		Expect(kinds).Should(Equal([]schema.DefinitionKind{
			schema.DefinitionKindScalar,
			schema.DefinitionKindObject,
			schema.DefinitionKindDirective,
			schema.DefinitionKindObjectExtension,
		}))

		// The extension shares the arena of object definitions.
		ext, ok := doc.Definitions().Collect()[3].AsType()
		Expect(ok).Should(BeTrue())
		object, ok := ext.AsObject()
		Expect(ok).Should(BeTrue())
		Expect(object.Record().Fields).Should(Equal(ast.NewIDRange[schema.FieldDefinitionID](1, 2)))

		Expect(doc.String()).Should(Equal(util.Dedent(`
			scalar Date

			type Query {
			  hello: String
			}

			directive @cached on FIELD

			extend type Query {
			  world: String
			}
		`)))
	})

	It("panics on a count mismatch", func() {
		w := schema.NewWriter()
		w.EnumValueDefinition(schema.EnumValueDefinitionRecord{Value: w.Ident("A"), Directives: w.DirectiveRange(0)})
		Expect(func() { w.EnumValueDefinitionRange(2) }).Should(Panic())
	})

	It("panics when finishing with records outside any range", func() {
		w := schema.NewWriter()
		w.NamedType(schema.NamedTypeRecord{Name: w.Ident("Node")})
		Expect(func() { w.Finish() }).Should(Panic())
	})

	It("cannot be used after Finish", func() {
		w := schema.NewWriter()
		w.Finish()
		Expect(func() { w.Finish() }).Should(Panic())
		Expect(func() {
			w.ScalarDefinition(schema.ScalarDefinitionRecord{})
		}).Should(Panic())
		Expect(func() { w.Ident("x") }).Should(Panic())
	})

	It("adds builtin scalars", func() {
		w := schema.NewWriter()
		schema.AddBuiltinScalars(w)
		doc := w.Finish()

		Expect(doc.NumDefinitions()).Should(Equal(5))
		t, ok := doc.LookupType("Boolean")
		Expect(ok).Should(BeTrue())
		Expect(t.Kind()).Should(Equal(schema.TypeDefinitionKindScalar))
		_, ok = doc.LookupType("Date")
		Expect(ok).Should(BeFalse())
	})

	It("updates a copy of an existing document", func() {
		w := schema.NewWriter()
		writeObject(w, "Query", "hello", false)
		original := w.Finish()

		w = schema.Update(original)
		writeObject(w, "Query", "world", true)
		updated := w.Finish()

		Expect(original.NumDefinitions()).Should(Equal(1))
		Expect(updated.NumDefinitions()).Should(Equal(2))
		Expect(original.Strings().Len()).Should(Equal(3))

		def := updated.Definitions().Collect()[1]
		Expect(def.IsExtension()).Should(BeTrue())
		t, _ := def.AsType()
		object, _ := t.AsObject()
		fields := object.Fields().Collect()
		Expect(fields).Should(HaveLen(1))
		Expect(fields[0].Name()).Should(Equal("world"))
	})

	It("leaves a finished document unchanged while a copy grows", func() {
		w := schema.NewWriter()
		w.ScalarDefinition(schema.ScalarDefinitionRecord{
			Name:       w.Ident("Date"),
			Directives: w.DirectiveRange(0),
		})
		doc := w.Finish()
		sdl := doc.ToSDL()
		Expect(doc.Strings().Len()).Should(Equal(1))

		u := schema.Update(doc)
		u.ObjectDefinition(schema.ObjectDefinitionRecord{
			Name:       u.Ident("Injected"),
			Implements: u.NamedTypeRange(0),
			Directives: u.DirectiveRange(0),
			Fields:     u.FieldDefinitionRange(0),
		})
		u.Type(ast.TypeRecord{Kind: ast.TypeKindNamed, Name: u.Ident("X")})
		u.BlockString("text")

		Expect(doc.Strings().Len()).Should(Equal(1))
		Expect(doc.NumBlockStrings()).Should(Equal(0))
		_, found := doc.Strings().Find("Injected")
		Expect(found).Should(BeFalse())
		Expect(doc.NumDefinitions()).Should(Equal(1))
		Expect(doc.ToSDL()).Should(Equal(sdl))

		updated := u.Finish()
		Expect(updated.Strings().Len()).Should(Equal(3))
		Expect(updated.NumDefinitions()).Should(Equal(2))
	})
})

var _ = Describe("Document", func() {
	It("prints descriptions and argument definitions", func() {
		w := schema.NewWriter()

		// type Query { "greeting" hello("who to greet" name: String = "world"): String! @deprecated }
		defaultValue := w.Value(ast.ValueRecord{
			Kind:   ast.ValueKindString,
			String: ast.QuotedString(w.Intern("world")),
		})
		w.InputValueDefinition(schema.InputValueDefinitionRecord{
			Name: w.Ident("name"),
			Description: ast.Some(w.Description(schema.DescriptionRecord{
				Literal: ast.QuotedString(w.Intern("who to greet")),
			})),
			Type:         w.TypeName("String"),
			DefaultValue: ast.Some(defaultValue),
			Directives:   w.DirectiveRange(0),
		})
		args := w.InputValueDefinitionRange(1)
		w.Directive(ast.DirectiveRecord{Name: w.Ident("deprecated"), Arguments: w.ArgumentRange(0)})
		w.FieldDefinition(schema.FieldDefinitionRecord{
			Name: w.Ident("hello"),
			Description: ast.Some(w.Description(schema.DescriptionRecord{
				Literal: ast.BlockString(w.BlockString("greeting")),
			})),
			Arguments:  args,
			Type:       w.NonNullOf(w.TypeName("String")),
			Directives: w.DirectiveRange(1),
		})
		w.ObjectDefinition(schema.ObjectDefinitionRecord{
			Name:       w.Ident("Query"),
			Implements: w.NamedTypeRange(0),
			Directives: w.DirectiveRange(0),
			Fields:     w.FieldDefinitionRange(1),
		})
		doc := w.Finish()

		Expect(doc.ToSDL()).Should(Equal(util.Dedent(`
			type Query {
			  """greeting"""
			  hello(
			    "who to greet"
			    name: String = "world"
			  ): String! @deprecated
			}
		`)))

		t, ok := doc.LookupType("Query")
		Expect(ok).Should(BeTrue())
		object, _ := t.AsObject()
		fieldIter := object.Fields()
		field, err := fieldIter.Next()
		Expect(err).ShouldNot(HaveOccurred())
		description, ok := field.Description()
		Expect(ok).Should(BeTrue())
		Expect(description.IsBlock()).Should(BeTrue())
		Expect(description.Value()).Should(Equal("greeting"))

		arg := field.Arguments().Collect()[0]
		value, ok := arg.DefaultValue()
		Expect(ok).Should(BeTrue())
		Expect(value.String()).Should(Equal(`"world"`))
	})

	It("prints nothing for an empty document", func() {
		Expect(schema.NewWriter().Finish().String()).Should(BeEmpty())
	})
})
