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

package token

import (
	"fmt"
)

// Kind describes the different kinds of tokens that the lexer emits.
type Kind int

// Enumeration of Kind
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Appendix-Grammar-Summary.Lexical-Tokens.
const (
	// <SOF>
	KindSOF Kind = iota + 1
	// <EOF>
	KindEOF
	// !
	KindBang
	// $
	KindDollar
	// &
	KindAmp
	// (
	KindLeftParen
	// )
	KindRightParen
	// ...
	KindSpread
	// :
	KindColon
	// =
	KindEquals
	// @
	KindAt
	// [
	KindLeftBracket
	// ]
	KindRightBracket
	// {
	KindLeftBrace
	// |
	KindPipe
	// }
	KindRightBrace
	// Ref: https://facebook.github.io/graphql/June2018/#Name
	KindName
	// Ref: https://facebook.github.io/graphql/June2018/#IntValue
	KindInt
	// Ref: https://facebook.github.io/graphql/June2018/#sec-Float-Value
	KindFloat
	// Ref: https://facebook.github.io/graphql/June2018/#sec-String-Value
	KindString
	// Ref: https://facebook.github.io/graphql/June2018/#sec-String-Value
	KindBlockString
)

var kindNames = [...]string{
	KindSOF:          "<SOF>",
	KindEOF:          "<EOF>",
	KindBang:         "!",
	KindDollar:       "$",
	KindAmp:          "&",
	KindLeftParen:    "(",
	KindRightParen:   ")",
	KindSpread:       "...",
	KindColon:        ":",
	KindEquals:       "=",
	KindAt:           "@",
	KindLeftBracket:  "[",
	KindRightBracket: "]",
	KindLeftBrace:    "{",
	KindPipe:         "|",
	KindRightBrace:   "}",
	KindName:         "Name",
	KindInt:          "Int",
	KindFloat:        "Float",
	KindString:       "String",
	KindBlockString:  "BlockString",
}

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	if kind > 0 && int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// HasValue reports whether tokens of the kind carry text in Token.Value.
func (kind Kind) HasValue() bool {
	return kind >= KindName && kind <= KindBlockString
}

// Token represents a range of characters represented by a lexical token within a Source.
type Token struct {
	// The kind of Token.
	Kind Kind

	// Byte range of the token in the source body
	Span Span

	// For punctuation tokens, this is empty. For names and numbers, this is the text of the token.
	// For strings, this is the raw text between the quotes with escape sequences left as is so the
	// consumer can decide how (and whether) to decode it.
	Value string
}

// Location returns the location at which the token begins.
func (token Token) Location() SourceLocation {
	return token.Span.Location()
}

// Description describes the token for error messages, e.g. `Name "foo"` or `{`.
func (token Token) Description() string {
	if token.Kind.HasValue() {
		return fmt.Sprintf(`%s "%s"`, token.Kind, token.Value)
	}
	return token.Kind.String()
}
