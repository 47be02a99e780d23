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

package lexer

import (
	"strings"
)

// BlockStringValue computes the value of a block string from its raw text, much like Python's
// docstring trim: the indentation common to all lines but the first is removed, then leading and
// trailing blank lines are dropped and the lines are joined with "\n". Lines may be terminated by
// "\r\n", "\n" or "\r".
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#BlockStringValue()
func BlockStringValue(raw string) string {
	lines := splitLines(raw)

	indent := commonIndent(lines)
	for i := 1; indent > 0 && i < len(lines); i++ {
		if len(lines[i]) < indent {
			lines[i] = ""
		} else {
			lines[i] = lines[i][indent:]
		}
	}

	first, last := 0, len(lines)
	for first < last && isBlank(lines[first]) {
		first++
	}
	for last > first && isBlank(lines[last-1]) {
		last--
	}

	return strings.Join(lines[first:last], "\n")
}

// BlockStringRawValue is BlockStringValue applied after unescaping \""" in raw, the text between the
// triple quotes as it appears in the source.
func BlockStringRawValue(raw string) string {
	return BlockStringValue(strings.ReplaceAll(raw, `\"""`, `"""`))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// commonIndent returns the smallest indentation among the non-blank lines after the first.
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines[1:] {
		n := indentLen(line)
		if n == len(line) {
			continue
		}
		if indent < 0 || n < indent {
			indent = n
		}
		if indent == 0 {
			break
		}
	}
	return indent
}

// indentLen counts the spaces and tabs that start line.
func indentLen(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(line string) bool {
	return indentLen(line) == len(line)
}
