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

package parser_test

import (
	"os"

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/schema"
	"github.com/botobag/gqldoc/graphql/parser"
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func parseSchema(s string) (*schema.Document, error) {
	return parser.Parse(newSource(s))
}

func expectSchemaSyntaxError(text string, message string, location graphql.ErrorLocation) {
	_, err := parseSchema(text)
	Expect(err).Should(matchSyntaxError(message, location))
}

func lookupObject(doc *schema.Document, name string) schema.ObjectDefinition {
	t, ok := doc.LookupType(name)
	Expect(ok).Should(BeTrue())
	object, ok := t.AsObject()
	Expect(ok).Should(BeTrue())
	return object
}

var _ = Describe("Schema Parser", func() {
	// graphql-js/src/language/__tests__/schema-parser-test.js
	It("parses simple type", func() {
		doc, err := parseSchema(`
      type Hello {
        world: String
      }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(doc.NumDefinitions()).Should(Equal(1))

		hello := lookupObject(doc, "Hello")
		Expect(hello.Span()).Should(Equal(token.NewSpan(7, 49)))
		_, hasDescription := hello.Description()
		Expect(hasDescription).Should(BeFalse())

		fields := hello.Fields().Collect()
		Expect(fields).Should(HaveLen(1))
		Expect(fields[0].Name()).Should(Equal("world"))
		Expect(fields[0].Type().String()).Should(Equal("String"))
		Expect(fields[0].Arguments().Len()).Should(Equal(0))
	})

	It("parses with description string", func() {
		doc, err := parseSchema(`
      "Description"
      type Hello {
        world: String
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		description, ok := lookupObject(doc, "Hello").Description()
		Expect(ok).Should(BeTrue())
		Expect(description.IsBlock()).Should(BeFalse())
		Expect(description.Value()).Should(Equal("Description"))
		Expect(description.Span()).Should(Equal(token.NewSpan(7, 20)))
	})

	It("parses with description multi-line string", func() {
		doc, err := parseSchema(`
      """
      Description
      """
      # Even with comments between them
      type Hello {
        world: String
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		description, ok := lookupObject(doc, "Hello").Description()
		Expect(ok).Should(BeTrue())
		Expect(description.IsBlock()).Should(BeTrue())
		Expect(description.Value()).Should(Equal("Description"))
	})

	It("parses schema with description string", func() {
		doc, err := parseSchema(`
      "Description"
      schema {
        query: Foo
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		def, _ := doc.Definitions().Collect()[0].AsSchema()
		description, ok := def.Description()
		Expect(ok).Should(BeTrue())
		Expect(description.Value()).Should(Equal("Description"))

		operations := def.RootOperations().Collect()
		Expect(operations).Should(HaveLen(1))
		Expect(operations[0].OperationType()).Should(Equal(ast.OperationTypeQuery))
		Expect(operations[0].NamedType()).Should(Equal("Foo"))
	})

	It("rejects description on extensions", func() {
		expectSchemaSyntaxError(
			`"Description" extend type Hello { world: String }`,
			"Unexpected description, descriptions are supported only on type definitions.",
			graphql.ErrorLocation{Line: 1, Column: 1})

		expectSchemaSyntaxError(
			`"Description" extend schema @directive`,
			"Unexpected description, descriptions are supported only on type definitions.",
			graphql.ErrorLocation{Line: 1, Column: 1})
	})

	It("parses object extensions", func() {
		doc, err := parseSchema(`
      extend type Hello {
        world: String
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		def := doc.Definitions().Collect()[0]
		Expect(def.Kind()).Should(Equal(schema.DefinitionKindObjectExtension))
		Expect(def.IsExtension()).Should(BeTrue())
		Expect(def.Span()).Should(Equal(token.NewSpan(7, 56)))

		// Extensions are not definitions of the type.
		_, ok := doc.LookupType("Hello")
		Expect(ok).Should(BeFalse())
	})

	It("parses extensions without fields", func() {
		for _, test := range []struct {
			text string
			kind schema.DefinitionKind
		}{
			{"extend type Hello implements Greeting", schema.DefinitionKindObjectExtension},
			{"extend interface Hello implements Greeting", schema.DefinitionKindInterfaceExtension},
			{"extend type Hello @greeting", schema.DefinitionKindObjectExtension},
			{"extend scalar Hello @greeting", schema.DefinitionKindScalarExtension},
			{"extend union Hello @greeting", schema.DefinitionKindUnionExtension},
			{"extend union Hello = World", schema.DefinitionKindUnionExtension},
			{"extend enum Hello @greeting", schema.DefinitionKindEnumExtension},
			{"extend input Hello @greeting", schema.DefinitionKindInputObjectExtension},
			{"extend schema @greeting", schema.DefinitionKindSchemaExtension},
		} {
			doc, err := parseSchema(test.text)
			Expect(err).ShouldNot(HaveOccurred(), test.text)
			Expect(doc.Definitions().Collect()[0].Kind()).Should(Equal(test.kind), test.text)
			Expect(doc.String()).Should(Equal(test.text + "\n"))
		}
	})

	It("parses schema extensions with operation types", func() {
		doc, err := parseSchema("extend schema { subscription: Subscription }")
		Expect(err).ShouldNot(HaveOccurred())

		def, ok := doc.Definitions().Collect()[0].AsSchema()
		Expect(ok).Should(BeTrue())
		Expect(def.RootOperations().Len()).Should(Equal(1))
		Expect(doc.String()).Should(Equal("extend schema {\n  subscription: Subscription\n}\n"))
	})

	It("rejects extensions without anything to extend", func() {
		for _, text := range []string{
			"extend type Hello",
			"extend scalar Hello",
			"extend interface Hello",
			"extend union Hello",
			"extend enum Hello",
			"extend input Hello",
		} {
			expectSchemaSyntaxError(text, "Unexpected <EOF>", graphql.ErrorLocation{
				Line:   1,
				Column: uint(len(text) + 1),
			})
		}

		expectSchemaSyntaxError("extend schema", "Unexpected <EOF>", graphql.ErrorLocation{
			Line:   1,
			Column: 14,
		})

		expectSchemaSyntaxError("extend directive @foo on FIELD", `Unexpected Name "directive"`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 8,
			})
	})

	It("parses simple non-null type, list type and nested types", func() {
		doc, err := parseSchema(`
      type Hello {
        a: String!
        b: [String]
        c: [[String!]!]
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		var types []string
		for field := range lookupObject(doc, "Hello").Fields().All() {
			types = append(types, field.Type().String())
		}
		Expect(types).Should(Equal([]string{"String!", "[String]", "[[String!]!]"}))
	})

	It("parses implements lists", func() {
		for _, text := range []string{
			"type Hello implements World & Wide { field: String }",
			"type Hello implements & World & Wide { field: String }",
		} {
			doc, err := parseSchema(text)
			Expect(err).ShouldNot(HaveOccurred())

			var names []string
			for named := range lookupObject(doc, "Hello").Implements().All() {
				names = append(names, named.Name())
			}
			Expect(names).Should(Equal([]string{"World", "Wide"}))
			Expect(doc.String()).Should(Equal(util.Dedent(`
        type Hello implements World & Wide {
          field: String
        }
      `)))
		}
	})

	It("rejects implements lists with trailing separators", func() {
		expectSchemaSyntaxError("type Hello implements World & {}", "Expected Name, found {",
			graphql.ErrorLocation{
				Line:   1,
				Column: 31,
			})
	})

	It("parses interfaces implementing interfaces", func() {
		doc, err := parseSchema("interface Hello implements World { field: String }")
		Expect(err).ShouldNot(HaveOccurred())

		t, ok := doc.LookupType("Hello")
		Expect(ok).Should(BeTrue())
		Expect(t.Kind()).Should(Equal(schema.TypeDefinitionKindInterface))
		iface, _ := t.AsInterface()
		Expect(iface.Implements().Len()).Should(Equal(1))
	})

	It("parses field with arguments", func() {
		doc, err := parseSchema(`
      type Hello {
        world(flag: Boolean = true, things: [String] @deprecated): String
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		field := lookupObject(doc, "Hello").Fields().Collect()[0]
		arguments := field.Arguments().Collect()
		Expect(arguments).Should(HaveLen(2))
		Expect(arguments[0].Name()).Should(Equal("flag"))
		defaultValue, ok := arguments[0].DefaultValue()
		Expect(ok).Should(BeTrue())
		Expect(defaultValue.Boolean()).Should(BeTrue())

		Expect(arguments[1].Type().String()).Should(Equal("[String]"))
		_, ok = arguments[1].DefaultValue()
		Expect(ok).Should(BeFalse())
		Expect(arguments[1].Directives().Len()).Should(Equal(1))
	})

	It("parses unions", func() {
		for _, text := range []string{
			"union Hello = Wo | Rld",
			"union Hello = | Wo | Rld",
		} {
			doc, err := parseSchema(text)
			Expect(err).ShouldNot(HaveOccurred())

			t, _ := doc.LookupType("Hello")
			union, ok := t.AsUnion()
			Expect(ok).Should(BeTrue())

			var members []string
			for member := range union.Members().All() {
				members = append(members, member.Name())
			}
			Expect(members).Should(Equal([]string{"Wo", "Rld"}))
			Expect(doc.String()).Should(Equal("union Hello = Wo | Rld\n"))
		}
	})

	It("rejects unions with invalid member lists", func() {
		expectSchemaSyntaxError("union Hello = || Wo | Rld", "Expected Name, found |",
			graphql.ErrorLocation{
				Line:   1,
				Column: 16,
			})

		expectSchemaSyntaxError("union Hello = Wo | Rld |", "Expected Name, found <EOF>",
			graphql.ErrorLocation{
				Line:   1,
				Column: 25,
			})
	})

	It("parses enums", func() {
		doc, err := parseSchema(`enum Hello { WORLD, "desc" MARS @deprecated }`)
		Expect(err).ShouldNot(HaveOccurred())

		t, _ := doc.LookupType("Hello")
		enum, ok := t.AsEnum()
		Expect(ok).Should(BeTrue())

		values := enum.Values().Collect()
		Expect(values).Should(HaveLen(2))
		Expect(values[0].Value()).Should(Equal("WORLD"))
		description, ok := values[1].Description()
		Expect(ok).Should(BeTrue())
		Expect(description.Value()).Should(Equal("desc"))
		Expect(values[1].Directives().Len()).Should(Equal(1))
	})

	It("rejects reserved names as enum values", func() {
		for _, name := range []string{"true", "false", "null"} {
			expectSchemaSyntaxError("enum Hello { "+name+" }",
				`Name "`+name+`" is reserved and cannot be used for an enum value.`,
				graphql.ErrorLocation{
					Line:   1,
					Column: 14,
				})
		}
	})

	It("parses input objects", func() {
		doc, err := parseSchema(`
      input Hello {
        world: String = "earth"
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		t, _ := doc.LookupType("Hello")
		input, ok := t.AsInputObject()
		Expect(ok).Should(BeTrue())
		fields := input.Fields().Collect()
		Expect(fields).Should(HaveLen(1))
		defaultValue, _ := fields[0].DefaultValue()
		literal, _ := defaultValue.StringLiteral()
		Expect(literal.Value()).Should(Equal("earth"))
	})

	It("rejects input objects with arguments", func() {
		expectSchemaSyntaxError(`
      input Hello {
        world(foo: Int): String
      }`, "Expected :, found (", graphql.ErrorLocation{
			Line:   3,
			Column: 14,
		})
	})

	It("parses directive definitions", func() {
		doc, err := parseSchema(`
      directive @foo(arg: Int) repeatable on
        | FIELD
        | FRAGMENT_SPREAD`)
		Expect(err).ShouldNot(HaveOccurred())

		directive, ok := doc.LookupDirective("foo")
		Expect(ok).Should(BeTrue())
		Expect(directive.IsRepeatable()).Should(BeTrue())
		Expect(directive.Arguments().Len()).Should(Equal(1))

		var locations []schema.DirectiveLocation
		for location := range directive.Locations().All() {
			locations = append(locations, location.Value())
		}
		Expect(locations).Should(Equal([]schema.DirectiveLocation{
			schema.DirectiveLocationField,
			schema.DirectiveLocationFragmentSpread,
		}))
		Expect(doc.String()).Should(Equal("directive @foo(arg: Int) repeatable on FIELD | FRAGMENT_SPREAD\n"))
	})

	It("rejects unknown directive locations", func() {
		expectSchemaSyntaxError("directive @foo on FIELD | INCORRECT_LOCATION",
			`Unexpected Name "INCORRECT_LOCATION"`,
			graphql.ErrorLocation{
				Line:   1,
				Column: 27,
			})
	})

	It("rejects executable definitions", func() {
		expectSchemaSyntaxError("{ field }", "Unexpected {", graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})

		expectSchemaSyntaxError("query Foo { field }", `Unexpected Name "query"`, graphql.ErrorLocation{
			Line:   1,
			Column: 1,
		})
	})

	It("keeps definitions and extensions in source order", func() {
		doc, err := parseSchema(`
      scalar A
      type B { f: A }
      directive @c on FIELD_DEFINITION
      extend type B @c
    `)
		Expect(err).ShouldNot(HaveOccurred())

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

		Expect(doc.String()).Should(Equal(util.Dedent(`
      scalar A

      type B {
        f: A
      }

      directive @c on FIELD_DEFINITION

      extend type B @c
    `)))
	})

	It("prints descriptions and argument definitions", func() {
		doc, err := parseSchema(`
      """
      The root
        query type.
      """
      type Query {
        "Look up a node"
        node("The ID" id: ID!, other: Int = 1): Node @deprecated(reason: "use nodes")
      }`)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(doc.String()).Should(Equal(`"""
The root
  query type.
"""
type Query {
  "Look up a node"
  node(
    "The ID"
    id: ID!
    other: Int = 1
  ): Node @deprecated(reason: "use nodes")
}
`))
	})

	It("parses schema kitchen sink", func() {
		kitchenSink, err := os.ReadFile("./schema-kitchen-sink.graphql")
		Expect(err).ShouldNot(HaveOccurred())

		doc, err := parseSchema(string(kitchenSink))
		Expect(err).ShouldNot(HaveOccurred())

		foo := lookupObject(doc, "Foo")
		Expect(foo.Fields().Len()).Should(Equal(7))
		description, ok := foo.Description()
		Expect(ok).Should(BeTrue())
		Expect(description.Value()).Should(Equal("This is a description\nof the `Foo` type."))

		directive, ok := doc.LookupDirective("myRepeatableDir")
		Expect(ok).Should(BeTrue())
		Expect(directive.IsRepeatable()).Should(BeTrue())
	})

	It("prints schema kitchen sink in a form that parses to the same document", func() {
		kitchenSink, err := os.ReadFile("./schema-kitchen-sink.graphql")
		Expect(err).ShouldNot(HaveOccurred())

		doc, err := parseSchema(string(kitchenSink))
		Expect(err).ShouldNot(HaveOccurred())

		printed := doc.ToSDL()
		reparsed, err := parseSchema(printed)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(reparsed.ToSDL()).Should(Equal(printed))
		Expect(reparsed.NumDefinitions()).Should(Equal(doc.NumDefinitions()))
		Expect(reparsed.NumBlockStrings()).Should(Equal(doc.NumBlockStrings()))
	})

	Describe("ExtendSchema", func() {
		It("adds definitions to a copy of the document", func() {
			base, err := parseSchema("type Query { a: Int }")
			Expect(err).ShouldNot(HaveOccurred())

			extended, err := parser.ExtendSchema(base, newSource(`
        extend type Query { b: Date }
        scalar Date
      `))
			Expect(err).ShouldNot(HaveOccurred())

			Expect(base.NumDefinitions()).Should(Equal(1))
			Expect(base.String()).Should(Equal("type Query {\n  a: Int\n}\n"))

			Expect(extended.NumDefinitions()).Should(Equal(3))
			Expect(extended.String()).Should(Equal(util.Dedent(`
        type Query {
          a: Int
        }

        extend type Query {
          b: Date
        }

        scalar Date
      `)))

			_, ok := extended.LookupType("Date")
			Expect(ok).Should(BeTrue())
			_, ok = base.LookupType("Date")
			Expect(ok).Should(BeFalse())
		})

		It("leaves the document untouched on errors", func() {
			base, err := parseSchema("type Query { a: Int }")
			Expect(err).ShouldNot(HaveOccurred())

			_, err = parser.ExtendSchema(base, newSource("extend type Query"))
			Expect(err).Should(HaveOccurred())
			Expect(base.NumDefinitions()).Should(Equal(1))
		})
	})
})
