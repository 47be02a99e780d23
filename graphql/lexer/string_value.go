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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/botobag/gqldoc/graphql/token"
)

// EscapeErrorKind classifies an invalid escape sequence in a quoted string.
type EscapeErrorKind uint8

// Enumeration of EscapeErrorKind
const (
	// The digits after \u are missing, not hexadecimal or the braces are unbalanced.
	MalformedCodePoint EscapeErrorKind = iota + 1

	// The escape denotes a value that is not a Unicode scalar value (e.g., a lone surrogate).
	UnknownCodePoint

	// The character after the backslash does not start any escape sequence.
	UnknownEscapeChar
)

func (kind EscapeErrorKind) String() string {
	switch kind {
	case MalformedCodePoint:
		return "MalformedCodePoint"
	case UnknownCodePoint:
		return "UnknownCodePoint"
	case UnknownEscapeChar:
		return "UnknownEscapeChar"
	}
	return "UnknownEscapeErrorKind"
}

// EscapeError reports an invalid escape sequence found while decoding a quoted string.
type EscapeError struct {
	Kind EscapeErrorKind

	// The offending character for UnknownEscapeChar. Zero for the other kinds.
	Char rune

	// Span of the escape sequence in the source
	Span token.Span
}

var _ error = (*EscapeError)(nil)

// Error implements Go's error interface.
func (e *EscapeError) Error() string {
	switch e.Kind {
	case UnknownEscapeChar:
		return fmt.Sprintf("Invalid character escape sequence: \\%c.", e.Char)
	case UnknownCodePoint:
		return "Invalid Unicode code point in escape sequence."
	}
	return "Malformed Unicode escape sequence."
}

// StringValue decodes escape sequences in the raw contents of a quoted string. span is the span of
// the whole string token including its quotes; it is used to locate the escape in errors.
//
//	EscapedCharacter :: one of
//		"	\	/	b	f	n	r	t
//
//	EscapedUnicode ::
//		/[0-9A-Fa-f]{4}/
//		{ /[0-9A-Fa-f]+/ }
//
// Surrogate pairs written as two consecutive \uXXXX escapes are combined.
func StringValue(raw string, span token.Span) (string, error) {
	// Fast path: nothing to decode.
	if strings.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}

	// Offset of raw in the source body, skipping the opening quote.
	base := span.Start + 1

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		char := raw[i]
		if char != '\\' {
			b.WriteByte(char)
			i++
			continue
		}

		if i+1 >= len(raw) {
			return "", &EscapeError{
				Kind: UnknownEscapeChar,
				Span: token.NewSpan(base+uint(i), base+uint(i)+1),
			}
		}

		switch escaped := raw[i+1]; escaped {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')

		case 'u':
			r, n, err := decodeUnicodeEscape(raw[i:], base+uint(i))
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
			continue

		default:
			r, size := utf8.DecodeRuneInString(raw[i+1:])
			return "", &EscapeError{
				Kind: UnknownEscapeChar,
				Char: r,
				Span: token.NewSpan(base+uint(i), base+uint(i+1+size)),
			}
		}
		i += 2
	}

	return b.String(), nil
}

// decodeUnicodeEscape decodes a \u escape at the beginning of s. pos is the offset of s in the
// source body. It returns the rune and the number of bytes consumed.
func decodeUnicodeEscape(s string, pos uint) (rune, int, error) {
	r, n, ok := readCodePoint(s)
	if !ok {
		return 0, 0, &EscapeError{
			Kind: MalformedCodePoint,
			Span: token.NewSpan(pos, pos+uint(escapeExtent(s))),
		}
	}

	switch {
	case isLeadingSurrogate(r):
		// Must be followed by a trailing surrogate.
		if trail, m, ok := readCodePoint(s[n:]); ok && isTrailingSurrogate(trail) {
			return (r-0xD800)<<10 + (trail - 0xDC00) + 0x10000, n + m, nil
		}
		fallthrough

	case isTrailingSurrogate(r), r > utf8.MaxRune:
		return 0, 0, &EscapeError{
			Kind: UnknownCodePoint,
			Span: token.NewSpan(pos, pos+uint(n)),
		}
	}

	return r, n, nil
}

// readCodePoint reads "\uXXXX" or "\u{X...}" at the beginning of s.
func readCodePoint(s string) (rune, int, bool) {
	if len(s) < 2 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0, false
	}

	if len(s) > 2 && s[2] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 || end == 3 {
			return 0, 0, false
		}
		var r rune
		for i := 3; i < end; i++ {
			d := char2hex(s[i])
			if d < 0 {
				return 0, 0, false
			}
			r = r<<4 | d
			// Stop accumulating before overflow; anything this large is out of range anyway.
			if r > utf8.MaxRune {
				r = utf8.MaxRune + 1
			}
		}
		return r, end + 1, true
	}

	if len(s) < 6 {
		return 0, 0, false
	}
	r := uniCharCode(s[2], s[3], s[4], s[5])
	if r < 0 {
		return 0, 0, false
	}
	return r, 6, true
}

// escapeExtent returns the length of the (possibly malformed) escape sequence at the beginning of s
// for error reporting.
func escapeExtent(s string) int {
	n := 2
	for n < len(s) && n < 6 && s[n] != '\\' && s[n] != '"' {
		n++
	}
	return n
}

func isLeadingSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDBFF
}

func isTrailingSurrogate(r rune) bool {
	return r >= 0xDC00 && r <= 0xDFFF
}

// Converts four hexadecimal chars to the integer that the string represents. For example,
// uniCharCode('0','0','0','f') will return 15, and uniCharCode('0','0','f','f') returns 255.
//
// Returns a negative number on error, if a char was invalid.
//
// This is implemented by noting that char2hex() returns -1 on error, which means the result of
// ORing the char2hex() will also be negative.
func uniCharCode(a byte, b byte, c byte, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

// Converts a hex character to its integer value.
//
// '0' becomes 0, '9' becomes 9
// 'A' becomes 10, 'F' becomes 15
// 'a' becomes 10, 'f' becomes 15
//
// Returns -1 on error.
func char2hex(a byte) rune {
	if a >= '0' && a <= '9' {
		return rune(a - '0')
	} else if a >= 'A' && a <= 'F' {
		return rune(a - 55)
	} else if a >= 'a' && a <= 'f' {
		return rune(a - 87)
	}
	return -1
}
