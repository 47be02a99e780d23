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

package executable_test

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/executable"
	"github.com/botobag/gqldoc/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// leaf pushes a field without arguments, directives and sub-selections.
func leaf(w *executable.Writer, name string) executable.SelectionRecord {
	return w.FieldSelection(executable.FieldSelectionRecord{
		Name:       w.Ident(name),
		Arguments:  w.ArgumentRange(0),
		Directives: w.DirectiveRange(0),
	}).Selection()
}

// writeUserQuery writes:
//
//	query Q($id: ID = 1) {
//	  u: user(id: $id) {
//	    ...F
//	    ... on User @include(if: true) {
//	      name
//	    }
//	  }
//	}
//
//	fragment F on User {
//	  id
//	}
func writeUserQuery() *executable.Document {
	w := executable.NewWriter()

	w.VariableDefinition(executable.VariableDefinitionRecord{
		Name:         w.Ident("id"),
		Type:         w.TypeName("ID"),
		DefaultValue: ast.Some(w.Value(ast.ValueRecord{Kind: ast.ValueKindInt, Text: w.Intern("1")})),
		Directives:   w.DirectiveRange(0),
	})
	variables := w.VariableDefinitionRange(1)

	w.Argument(ast.ArgumentRecord{
		Name:  w.Ident("id"),
		Value: w.Value(ast.ValueRecord{Kind: ast.ValueKindVariable, Text: w.Ident("id")}),
	})
	userArgs := w.ArgumentRange(1)
	userDirectives := w.DirectiveRange(0)

	spread := w.FragmentSpread(executable.FragmentSpreadRecord{
		FragmentName: w.Ident("F"),
		Directives:   w.DirectiveRange(0),
	}).Selection()

	w.Argument(ast.ArgumentRecord{
		Name:  w.Ident("if"),
		Value: w.Value(ast.ValueRecord{Kind: ast.ValueKindBoolean, Boolean: true}),
	})
	w.Directive(ast.DirectiveRecord{Name: w.Ident("include"), Arguments: w.ArgumentRange(1)})
	inlineDirectives := w.DirectiveRange(1)
	inline := w.InlineFragment(executable.InlineFragmentRecord{
		TypeCondition: ast.Some(w.Ident("User")),
		Directives:    inlineDirectives,
		SelectionSet:  w.Selections([]executable.SelectionRecord{leaf(w, "name")}),
	}).Selection()

	user := w.FieldSelection(executable.FieldSelectionRecord{
		Alias:        ast.Some(w.Ident("u")),
		Name:         w.Ident("user"),
		Arguments:    userArgs,
		Directives:   userDirectives,
		SelectionSet: w.Selections([]executable.SelectionRecord{spread, inline}),
	}).Selection()

	w.OperationDefinition(executable.OperationDefinitionRecord{
		OperationType:       ast.OperationTypeQuery,
		Name:                ast.Some(w.Ident("Q")),
		VariableDefinitions: variables,
		Directives:          w.DirectiveRange(0),
		SelectionSet:        w.Selections([]executable.SelectionRecord{user}),
	})

	fragmentVariables := w.VariableDefinitionRange(0)
	fragmentDirectives := w.DirectiveRange(0)
	w.FragmentDefinition(executable.FragmentDefinitionRecord{
		Name:                w.Ident("F"),
		VariableDefinitions: fragmentVariables,
		TypeCondition:       w.Ident("User"),
		Directives:          fragmentDirectives,
		SelectionSet:        w.Selections([]executable.SelectionRecord{leaf(w, "id")}),
	})

	return w.Finish()
}

var _ = Describe("Writer", func() {
	It("builds a document with nested selection sets", func() {
		doc := writeUserQuery()

		Expect(doc.String()).Should(Equal(util.Dedent(`
			query Q($id: ID = 1) {
			  u: user(id: $id) {
			    ...F
			    ... on User @include(if: true) {
			      name
			    }
			  }
			}

			fragment F on User {
			  id
			}
		`)))
	})

	It("reads selections", func() {
		doc := writeUserQuery()

		op, ok := doc.Operation("Q")
		Expect(ok).Should(BeTrue())
		Expect(op.IsQueryShorthand()).Should(BeFalse())

		name, ok := op.Name()
		Expect(ok).Should(BeTrue())
		Expect(name).Should(Equal("Q"))
		Expect(op.VariableDefinitions().Len()).Should(Equal(1))

		selections := op.SelectionSet().Collect()
		Expect(selections).Should(HaveLen(1))
		user, ok := selections[0].AsField()
		Expect(ok).Should(BeTrue())
		Expect(user.ResponseKey()).Should(Equal("u"))
		Expect(user.Name()).Should(Equal("user"))

		children := user.SelectionSet()
		Expect(children.Len()).Should(Equal(2))

		first, err := children.Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(first.Kind()).Should(Equal(executable.SelectionKindFragmentSpread))
		spread, _ := first.AsFragmentSpread()
		Expect(spread.FragmentName()).Should(Equal("F"))

		second, err := children.Next()
		Expect(err).ShouldNot(HaveOccurred())
		inline, ok := second.AsInlineFragment()
		Expect(ok).Should(BeTrue())
		typeCondition, _ := inline.TypeCondition()
		Expect(typeCondition).Should(Equal("User"))
		Expect(second.Directives().Collect()[0].Name()).Should(Equal("include"))

		fragment, ok := doc.Fragment("F")
		Expect(ok).Should(BeTrue())
		Expect(fragment.TypeCondition()).Should(Equal("User"))
		Expect(fragment.SelectionSet().Len()).Should(Equal(1))
	})

	It("selects the only operation without a name", func() {
		doc := writeUserQuery()
		_, ok := doc.Operation("")
		Expect(ok).Should(BeTrue())
		_, ok = doc.Operation("Unknown")
		Expect(ok).Should(BeFalse())
	})

	It("prints an anonymous query as a selection set", func() {
		w := executable.NewWriter()
		w.OperationDefinition(executable.OperationDefinitionRecord{
			VariableDefinitions: w.VariableDefinitionRange(0),
			Directives:          w.DirectiveRange(0),
			SelectionSet:        w.Selections([]executable.SelectionRecord{leaf(w, "hello")}),
		})
		doc := w.Finish()
		Expect(doc.String()).Should(Equal("{\n  hello\n}\n"))
	})

	It("panics when finishing with pending variable definitions", func() {
		w := executable.NewWriter()
		w.VariableDefinition(executable.VariableDefinitionRecord{Name: w.Ident("x")})
		Expect(func() { w.Finish() }).Should(Panic())
	})
})
