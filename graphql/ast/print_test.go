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

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Printer", func() {
	DescribeTable("quotes strings",
		func(value string, expected string) {
			Expect(ast.QuoteString(value)).Should(Equal(expected))
		},
		Entry("plain", "hello", `"hello"`),
		Entry("quote and backslash", `a"b\c`, `"a\"b\\c"`),
		Entry("control characters", "a\nb\tc", `"a\nb\tc"`),
		Entry("no HTML escaping", "<a&b>", `"<a&b>"`),
	)

	DescribeTable("prints block strings",
		func(value string, expected string) {
			var p ast.Printer
			p.PrintBlockString(value, "")
			Expect(p.String()).Should(Equal(expected))
		},
		Entry("single line", "hello", `"""hello"""`),
		Entry("multiple lines", "hello\n  world", "\"\"\"\nhello\n  world\n\"\"\""),
		Entry("leading space", "  hello", `"""  hello"""`),
		Entry("trailing quote", `say "hi"`, "\"\"\"\nsay \"hi\"\n\"\"\""),
		Entry("leading space with trailing quote", ` "hi"`, "\"\"\" \"hi\"\n\"\"\""),
		Entry("trailing backslash", `C:\`, "\"\"\"\nC:\\\n\"\"\""),
		Entry("triple quotes", `a """ b`, `"""a \""" b"""`),
		Entry("empty", "", `""""""`),
	)

	It("indents block strings in blocks", func() {
		var p ast.Printer
		p.BeginBlock()
		p.WriteNewLineWithIndent()
		p.PrintBlockString("a\n\nb", "  ")
		p.EndBlock()
		Expect(p.String()).Should(Equal("{\n  \"\"\"\n    a\n\n    b\n  \"\"\"\n}"))
	})

	It("lays out block strings", func() {
		layout := ast.LayoutBlockString("one\ntwo")
		Expect(layout).Should(Equal(ast.BlockStringLayout{
			Lines:         []string{"one", "two"},
			LeadingBreak:  true,
			TrailingBreak: true,
		}))
	})
})
