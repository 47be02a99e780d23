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

package ast_test

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Strings", func() {
	It("deduplicates equal strings", func() {
		var table ast.Strings
		a := table.Intern("foo")
		b := table.Intern("bar")
		c := table.Intern("foo")

		Expect(a).Should(Equal(c))
		Expect(a).ShouldNot(Equal(b))
		Expect(table.Len()).Should(Equal(2))
		Expect(table.Lookup(a)).Should(Equal("foo"))
		Expect(table.Lookup(b)).Should(Equal("bar"))

		id, ok := table.Find("bar")
		Expect(ok).Should(BeTrue())
		Expect(id).Should(Equal(b))

		_, ok = table.Find("baz")
		Expect(ok).Should(BeFalse())
	})
})

var _ = Describe("IDRange", func() {
	It("is half-open", func() {
		r := ast.NewIDRange[ast.ValueID](2, 5)
		Expect(r.Len()).Should(Equal(3))
		Expect(r.IsEmpty()).Should(BeFalse())
		Expect(r.At(0)).Should(Equal(ast.ValueID(2)))
		Expect(r.At(2)).Should(Equal(ast.ValueID(4)))
		Expect(r.Contains(5)).Should(BeFalse())
		Expect(func() { r.At(3) }).Should(Panic())
	})

	It("rejects a reversed range", func() {
		Expect(func() { ast.NewIDRange[ast.ValueID](3, 2) }).Should(Panic())
	})
})

var _ = Describe("Optional", func() {
	It("holds a value or nothing", func() {
		value, ok := ast.Some(ast.StringID(3)).Get()
		Expect(ok).Should(BeTrue())
		Expect(value).Should(Equal(ast.StringID(3)))
		Expect(ast.None[ast.StringID]().IsSome()).Should(BeFalse())
	})
})

var _ = Describe("Writer", func() {
	var (
		w     *ast.Writer
		store *ast.Store
	)

	BeforeEach(func() {
		w = ast.NewWriter()
		store = w.Store()
	})

	It("does not deduplicate block strings", func() {
		a := w.BlockString("hello")
		b := w.BlockString("hello")
		Expect(a).ShouldNot(Equal(b))
		Expect(store.NumBlockStrings()).Should(Equal(2))
		Expect(store.LookupBlockString(b)).Should(Equal("hello"))
	})

	It("groups arguments and directives into ranges", func() {
		w.Argument(ast.ArgumentRecord{
			Name:  w.Ident("if"),
			Value: w.Value(ast.ValueRecord{Kind: ast.ValueKindBoolean, Boolean: true}),
		})
		args := w.ArgumentRange(1)
		Expect(args).Should(Equal(ast.NewIDRange[ast.ArgumentID](0, 1)))

		w.Directive(ast.DirectiveRecord{Name: w.Ident("skip"), Arguments: args})
		w.Directive(ast.DirectiveRecord{Name: w.Ident("deprecated"), Arguments: w.ArgumentRange(0)})
		directives := w.DirectiveRange(2)
		Expect(directives.Len()).Should(Equal(2))

		iter := store.Directives(directives)
		Expect(iter.Len()).Should(Equal(2))
		var names []string
		for directive := range iter.All() {
			names = append(names, directive.String())
		}
		Expect(names).Should(Equal([]string{"@skip(if: true)", "@deprecated"}))

		w.Check()
	})

	It("accepts any count with UnknownCount", func() {
		w.Directive(ast.DirectiveRecord{Name: w.Ident("a")})
		w.Directive(ast.DirectiveRecord{Name: w.Ident("b")})
		Expect(w.DirectiveRange(ast.UnknownCount).Len()).Should(Equal(2))
	})

	It("panics when the count doesn't match", func() {
		w.Argument(ast.ArgumentRecord{
			Name:  w.Ident("x"),
			Value: w.Value(ast.ValueRecord{Kind: ast.ValueKindNull}),
		})
		Expect(func() { w.ArgumentRange(2) }).Should(Panic())
	})

	It("panics on records which were never grouped", func() {
		w.Directive(ast.DirectiveRecord{Name: w.Ident("orphan")})
		Expect(func() { w.Check() }).Should(Panic())
	})

	It("writes nested values in bursts", func() {
		// {a: [1, $v], b: ENUM}
		one := ast.ValueRecord{Kind: ast.ValueKindInt, Text: w.Intern("1")}
		variable := ast.ValueRecord{Kind: ast.ValueKindVariable, Text: w.Ident("v")}
		items := w.Values([]ast.ValueRecord{one, variable})
		list := w.Value(ast.ValueRecord{Kind: ast.ValueKindList, List: items})
		enum := w.Value(ast.ValueRecord{Kind: ast.ValueKindEnum, Text: w.Ident("ENUM")})
		fields := w.ObjectFields([]ast.ObjectFieldRecord{
			{Name: w.Ident("a"), Value: list},
			{Name: w.Ident("b"), Value: enum},
		})
		object := w.Value(ast.ValueRecord{Kind: ast.ValueKindObject, Object: fields})

		v := object.Read(store)
		Expect(v.Kind()).Should(Equal(ast.ValueKindObject))
		Expect(v.String()).Should(Equal("{a: [1, $v], b: ENUM}"))
		Expect(v.Fields().Len()).Should(Equal(2))

		fieldIter := v.Fields()
		first, err := fieldIter.Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(first.Name()).Should(Equal("a"))
		Expect(first.Value().List().Collect()).Should(HaveLen(2))
		Expect(first.Value().Fields().Len()).Should(Equal(0))
	})

	It("rejects pushes after close", func() {
		Expect(w.Close()).Should(BeIdenticalTo(store))
		Expect(func() { w.Ident("late") }).Should(Panic())
		Expect(func() { w.Store() }).Should(Panic())
	})

	It("continues appending after existing records", func() {
		w.Directive(ast.DirectiveRecord{Name: w.Ident("a")})
		w.DirectiveRange(1)

		w.Close()

		w2 := ast.ResumeWriter(store)
		w2.Directive(ast.DirectiveRecord{Name: w2.Ident("b")})
		w2.BlockString("text")
		Expect(w2.DirectiveRange(1)).Should(Equal(ast.NewIDRange[ast.DirectiveID](1, 2)))
		resumed := w2.Close()

		Expect(store.Strings().Len()).Should(Equal(1))
		Expect(store.NumBlockStrings()).Should(Equal(0))
		_, found := store.Strings().Find("b")
		Expect(found).Should(BeFalse())
		Expect(store.Directives(ast.NewIDRange[ast.DirectiveID](0, 1)).Len()).Should(Equal(1))

		Expect(resumed).ShouldNot(BeIdenticalTo(store))
		Expect(resumed.Strings().Len()).Should(Equal(2))
		Expect(resumed.Strings().Lookup(1)).Should(Equal("b"))
		Expect(resumed.NumBlockStrings()).Should(Equal(1))
	})
})

var _ = Describe("Type", func() {
	It("reads wrapped types", func() {
		w := ast.NewWriter()
		store := w.Store()
		t := w.NonNullOf(w.ListOf(w.NonNullOf(w.TypeName("String")))).Read(store)

		Expect(t.String()).Should(Equal("[String!]!"))
		Expect(t.Kind()).Should(Equal(ast.TypeKindNonNull))
		Expect(t.NamedType()).Should(Equal("String"))
		Expect(t.Name()).Should(BeEmpty())

		list, ok := t.OfType()
		Expect(ok).Should(BeTrue())
		Expect(list.Kind()).Should(Equal(ast.TypeKindList))

		named := w.Type(ast.TypeRecord{Kind: ast.TypeKindNamed, Name: w.Ident("ID"), Span: token.NewSpan(3, 5)}).Read(store)
		_, ok = named.OfType()
		Expect(ok).Should(BeFalse())
		Expect(named.Span()).Should(Equal(token.NewSpan(3, 5)))
	})
})
