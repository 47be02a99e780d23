/**
 * Copyright (c) 2019, The Artemis Authors.
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

package util

import (
	"strings"
)

// Dedent strips the indentation of the first line from every line of s, so GraphQL documents can
// be written as indented raw string literals in tests. Leading newlines and trailing spaces and
// tabs are dropped.
func Dedent(s string) string {
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, " \t")

	body := strings.TrimLeft(s, " \t")
	indent := s[:len(s)-len(body)]
	if indent == "" {
		return s
	}
	return strings.ReplaceAll(body, "\n"+indent, "\n")
}
