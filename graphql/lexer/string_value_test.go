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

package lexer_test

import (
	"errors"

	"github.com/botobag/gqldoc/graphql/lexer"
	"github.com/botobag/gqldoc/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// decode runs StringValue over the raw contents of a quoted string that starts at offset 0.
func decode(raw string) (string, error) {
	return lexer.StringValue(raw, token.NewSpan(0, uint(len(raw))+2))
}

func expectEscapeError(raw string, kind lexer.EscapeErrorKind, char rune, errSpan token.Span) {
	_, err := decode(raw)
	Expect(err).Should(HaveOccurred())

	var escapeErr *lexer.EscapeError
	Expect(errors.As(err, &escapeErr)).Should(BeTrue())
	Expect(*escapeErr).Should(Equal(lexer.EscapeError{
		Kind: kind,
		Char: char,
		Span: errSpan,
	}))
}

var _ = Describe("StringValue", func() {
	DescribeTable("decodes escape sequences",
		func(raw string, expected string) {
			Expect(decode(raw)).Should(Equal(expected))
		},
		Entry("no escapes", `simple`, "simple"),
		Entry("empty", ``, ""),
		Entry("escaped quote", `quote \"`, `quote "`),
		Entry("control escapes", `escaped \n\r\b\t\f`, "escaped \n\r\b\t\f"),
		Entry("slashes", `slashes \\ \/`, `slashes \ /`),
		Entry("fixed width unicode", `\u0041`, "A"),
		Entry("several unicode", `unicode \u1234\u5678\u90AB\uCDEF`, "unicode \u1234\u5678\u90AB\uCDEF"),
		Entry("variable width unicode", `\u{1F600} and \u{41}`, "\U0001F600 and A"),
		Entry("surrogate pair", `\uD83D\uDE00`, "\U0001F600"),
		Entry("lowercase hex digits", `h\u00e9llo`, "h\u00e9llo"),
	)

	It("reports unknown escape characters", func() {
		expectEscapeError(`\q`, lexer.UnknownEscapeChar, 'q', token.NewSpan(1, 3))
		expectEscapeError("ab\\\u00e9", lexer.UnknownEscapeChar, '\u00e9', token.NewSpan(3, 6))
	})

	It("reports malformed code points", func() {
		expectEscapeError(`\u12`, lexer.MalformedCodePoint, 0, token.NewSpan(1, 5))
		expectEscapeError(`\uXYZW`, lexer.MalformedCodePoint, 0, token.NewSpan(1, 7))
		expectEscapeError(`\u{}`, lexer.MalformedCodePoint, 0, token.NewSpan(1, 5))
		expectEscapeError(`\u{41`, lexer.MalformedCodePoint, 0, token.NewSpan(1, 6))
	})

	It("reports unknown code points", func() {
		expectEscapeError(`\uDE00`, lexer.UnknownCodePoint, 0, token.NewSpan(1, 7))
		expectEscapeError(`\uD83Dx`, lexer.UnknownCodePoint, 0, token.NewSpan(1, 7))
		expectEscapeError(`\u{110000}`, lexer.UnknownCodePoint, 0, token.NewSpan(1, 11))
	})

	It("formats messages", func() {
		_, err := decode(`\q`)
		Expect(err.Error()).Should(Equal(`Invalid character escape sequence: \q.`))
	})
})
