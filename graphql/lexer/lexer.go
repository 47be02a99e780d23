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

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/token"
)

// Lexer is the return type of New.
type Lexer struct {
	source *token.Source

	// The currently focused non-ignored token
	token token.Token

	// The token after the current one if Lookahead has read it
	next    token.Token
	hasNext bool

	// Current offest into the source body; Moved by only consume() and consumeIgnored().
	bytePos uint

	// This caches the value of source.Body().Size().
	bodySize uint
}

// New initializes a Lexer for given Source object. A Lexer is a stateful stream generator in that
// every time it is advanced, it returns the next token in the Source. Assuming the source lexes,
// the final Token emitted by the lexer will be of kind EOF, after which the lexer will repeatedly
// return the same EOF token whenever called.
//
// Comments and insignificant commas are skipped. String tokens carry their raw text (escape
// sequences untouched); see StringValue for decoding.
func New(source *token.Source) *Lexer {
	return &Lexer{
		source: source,
		token: token.Token{
			Kind: token.KindSOF,
		},
		bodySize: source.Body().Size(),
	}
}

// Source returns the source being lexed.
func (lexer *Lexer) Source() *token.Source {
	return lexer.source
}

// Token returns current token being lexed.
func (lexer *Lexer) Token() token.Token {
	return lexer.token
}

// Advance the token stream to the next non-ignored token.
func (lexer *Lexer) Advance() (token.Token, error) {
	nextToken, err := lexer.Lookahead()
	if err != nil {
		return token.Token{}, err
	}
	lexer.token = nextToken
	lexer.hasNext = false
	return nextToken, nil
}

// Lookahead looks ahead and returns the next non-ignored token, but does not switch current token.
func (lexer *Lexer) Lookahead() (token.Token, error) {
	if lexer.token.Kind == token.KindEOF {
		return lexer.token, nil
	}
	if !lexer.hasNext {
		nextToken, err := lexer.lexToken()
		if err != nil {
			return token.Token{}, err
		}
		lexer.next, lexer.hasNext = nextToken, true
	}
	return lexer.next, nil
}

// Location returns SourceLocation for the current position in the source.
func (lexer *Lexer) Location() token.SourceLocation {
	return lexer.LocationWithPos(lexer.bytePos)
}

// LocationWithPos returns SourceLocation for the specified position in the source.
func (lexer *Lexer) LocationWithPos(bytePos uint) token.SourceLocation {
	return lexer.source.LocationFromPos(bytePos)
}

// peek peeks the next byte at bytePos without consume it.
func (lexer *Lexer) peek() byte {
	return lexer.source.Body().At(lexer.bytePos)
}

// consume reads a byte at current bytePos and then advances the bytePos. Return the byte.
func (lexer *Lexer) consume() byte {
	b := lexer.source.Body().At(lexer.bytePos)
	if lexer.bytePos < lexer.bodySize {
		lexer.bytePos++
	}
	return b
}

// consumeIgnored consumes whitespace, commas and comments starting at current bytePos until it
// finds a significant character.
func (lexer *Lexer) consumeIgnored() {
	body := lexer.source.Body()
	bodySize := lexer.bodySize

	// Cache bytePos locally. Will update back before return.
	bytePos := lexer.bytePos

	// Handle BOM at the beginning of source specially.
	if bytePos == 0 && bodySize >= 3 {
		if body[0] == '\xEF' && body[1] == '\xBB' && body[2] == '\xBF' {
			bytePos += 3
		}
	}

	for bytePos < bodySize {
		switch body[bytePos] {
		case '\t', ' ', ',', '\n', '\r':
			bytePos++

		case '#':
			//	Comment ::
			//		# CommentChar*
			//
			//	CommentChar ::
			//		SourceCharacter but not LineTerminator
			bytePos++
			for bytePos < bodySize {
				char := body[bytePos]
				if char > 0x1F || char == '\t' {
					bytePos++
					continue
				}
				break
			}

		default:
			lexer.bytePos = bytePos
			return
		}
	}

	lexer.bytePos = bytePos
}

// consumeDigits consumes bytes that represent a digit (i.e., from "0" to "9"). This is used by
// lexNumber as helper function. Return the rune that contains the first non-digits.
func (lexer *Lexer) consumeDigits() byte {
	for {
		char := lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
		} else {
			return char
		}
	}
}

func (lexer *Lexer) charAtPosToStr(bytePos uint) string {
	if bytePos >= lexer.bodySize {
		return "<EOF>"
	}

	// Try to decode a rune at bytePos.
	r, _ := lexer.source.Body().RuneAt(bytePos)

	// Print as ASCII for printable range.
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}

	// Print the escaped form. e.g. `"\\u0007"`
	return fmt.Sprintf(`"\u%04X"`, r)
}

// newUnexpectedCharacter creates a syntax error to indicate an unexpected character at the given
// offset was encountered.
func (lexer *Lexer) newUnexpectedCharacterError(bytePos uint) error {
	var message string

	char := lexer.source.Body().At(bytePos)
	if (char < 0x0020) && (char != 0x0009) && (char != 0x000a) && (char != 0x000d) {
		message = fmt.Sprintf("Cannot contain the invalid character %s.", lexer.charAtPosToStr(bytePos))
	} else if char == '\'' {
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	} else {
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", lexer.charAtPosToStr(bytePos))
	}

	return graphql.NewSyntaxError(lexer.source, lexer.LocationWithPos(bytePos), message)
}

func (lexer *Lexer) makeToken(kind token.Kind, startPos uint) token.Token {
	return token.Token{
		Kind: kind,
		Span: token.NewSpan(startPos, lexer.bytePos),
	}
}

func (lexer *Lexer) makeTokenWithValue(kind token.Kind, startPos uint, value string) token.Token {
	return token.Token{
		Kind:  kind,
		Span:  token.NewSpan(startPos, lexer.bytePos),
		Value: value,
	}
}

// lexToken gets the next token from the source starting at the lexer.bytePos. This skips over
// ignored tokens until it finds the next lexable token, then lexes punctuators immediately or calls
// the appropriate helper function for more complicated tokens.
func (lexer *Lexer) lexToken() (token.Token, error) {
	lexer.consumeIgnored()

	startPos := lexer.bytePos
	if startPos >= lexer.bodySize {
		return lexer.makeToken(token.KindEOF, startPos), nil
	}

	// lexSimpleToken lexes a byte and produces a token of the given type with location information.
	lexSimpleToken := func(kind token.Kind) (token.Token, error) {
		lexer.consume()
		return lexer.makeToken(kind, startPos), nil
	}

	switch char := lexer.peek(); char {
	case '!':
		return lexSimpleToken(token.KindBang)
	case '$':
		return lexSimpleToken(token.KindDollar)
	case '&':
		return lexSimpleToken(token.KindAmp)
	case '(':
		return lexSimpleToken(token.KindLeftParen)
	case ')':
		return lexSimpleToken(token.KindRightParen)
	case '.':
		// Consume the dot.
		lexer.consume()
		if lexer.peek() != '.' {
			return token.Token{}, lexer.newUnexpectedCharacterError(startPos)
		}

		// Consume the dot again.
		lexer.consume()
		if lexer.peek() != '.' {
			return token.Token{}, lexer.newUnexpectedCharacterError(startPos)
		}

		// Consume the last dot.
		lexer.consume()
		return lexer.makeToken(token.KindSpread, startPos), nil
	case ':':
		return lexSimpleToken(token.KindColon)
	case '=':
		return lexSimpleToken(token.KindEquals)
	case '@':
		return lexSimpleToken(token.KindAt)
	case '[':
		return lexSimpleToken(token.KindLeftBracket)
	case ']':
		return lexSimpleToken(token.KindRightBracket)
	case '{':
		return lexSimpleToken(token.KindLeftBrace)
	case '|':
		return lexSimpleToken(token.KindPipe)
	case '}':
		return lexSimpleToken(token.KindRightBrace)

	case '"':
		if lexer.source.Body().At(startPos+1) == '"' && lexer.source.Body().At(startPos+2) == '"' {
			return lexer.lexBlockString()
		}
		return lexer.lexString()

	default:
		if isNameStart(char) {
			return lexer.lexName(), nil
		}
		if char == '-' || (char >= '0' && char <= '9') {
			return lexer.lexNumber()
		}
	}

	return token.Token{}, lexer.newUnexpectedCharacterError(startPos)
}

// isNameStart matches /[_A-Za-z]/.
func isNameStart(char byte) bool {
	return char == '_' || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

// lexNumber reads a number token from the source file, either a float [0] or an int [1] depending
// on whether a decimal point appears.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Float-Value
// [1]: https://facebook.github.io/graphql/June2018/#sec-Int-Value
func (lexer *Lexer) lexNumber() (token.Token, error) {
	// Remember where the token begins.
	startPos := lexer.bytePos

	char := lexer.consume()
	tokenKind := token.KindInt

	if char == '-' {
		char = lexer.peek()
		if char < '0' || char > '9' {
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))
		}
		lexer.consume()
	}

	if char == '0' {
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))
		}
	} else {
		// char must be "1" .. "9". Consume all digits.
		char = lexer.consumeDigits()
	}

	if char == '.' {
		tokenKind = token.KindFloat

		// Consume the decimal point.
		lexer.consume()

		// Expect at least one digits.
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
			char = lexer.consumeDigits()
		} else {
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))
		}
	}

	if char == 'E' || char == 'e' {
		// Consume "E" or "e".
		lexer.consume()
		tokenKind = token.KindFloat

		char = lexer.peek()
		if char == '+' || char == '-' {
			lexer.consume()
		}

		// Expect at least one digits.
		char = lexer.peek()
		if char >= '0' && char <= '9' {
			lexer.consume()
			char = lexer.consumeDigits()
		} else {
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid number, expected digit but got: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))
		}
	}

	// Numbers cannot be followed by . or NameStart
	if char == '.' || isNameStart(char) {
		return token.Token{}, graphql.NewSyntaxError(
			lexer.source,
			lexer.Location(),
			fmt.Sprintf("Invalid number, expected digit but got: %s.",
				lexer.charAtPosToStr(lexer.bytePos)))
	}

	return lexer.makeTokenWithValue(
		tokenKind,
		startPos,
		string(lexer.source.Body()[startPos:lexer.bytePos])), nil
}

// lexString reads a string token from the source file. The token value is the text between the
// quotes as it appears in the source; escape sequences are only skipped over here and decoded later
// by StringValue.
//
//	StringValue ::
//		" StringCharacter* "
//
//	StringCharacter ::
//		SourceCharacter but not " or \ or LineTerminator
//		\u EscapedUnicode
//		\ EscapedCharacter
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String-Value
func (lexer *Lexer) lexString() (token.Token, error) {
	startPos := lexer.bytePos

	// Consume the opening quote.
	lexer.consume()
	valueStart := lexer.bytePos

	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()

		// Exit when encounter a LineTerminator.
		if char == '\n' || char == '\r' {
			break
		}

		if char == '"' {
			value := string(lexer.source.Body()[valueStart:lexer.bytePos])
			// Consume the closing quote (").
			lexer.consume()
			return lexer.makeTokenWithValue(token.KindString, startPos, value), nil
		}

		// Make sure the character is a valid SourceCharacter.
		if char < 0x0020 && char != '\t' {
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid character within String: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))
		}

		lexer.consume()

		// Skip the escaped character so an escaped quote doesn't terminate the string.
		if char == '\\' {
			if next := lexer.peek(); next != '\n' && next != '\r' {
				lexer.consume()
			}
		}
	}

	return token.Token{}, graphql.NewSyntaxError(lexer.source, lexer.Location(), "Unterminated string.")
}

// lexBlockString reads a block string token from the source file. The token value is the raw text
// between the triple quotes. Escaped triple quotes (\""") are kept as is.
//
//	BlockStringCharacter ::
//		SourceCharacter but not """ or \"""
//		\"""
func (lexer *Lexer) lexBlockString() (token.Token, error) {
	startPos := lexer.bytePos
	body := lexer.source.Body()

	// Consume the opening triple-quote (""").
	lexer.bytePos += 3
	valueStart := lexer.bytePos

	for lexer.bytePos < lexer.bodySize {
		char := lexer.peek()

		switch {
		case char == '"' && body.At(lexer.bytePos+1) == '"' && body.At(lexer.bytePos+2) == '"':
			value := string(body[valueStart:lexer.bytePos])
			lexer.bytePos += 3
			return lexer.makeTokenWithValue(token.KindBlockString, startPos, value), nil

		case char == '\\' &&
			body.At(lexer.bytePos+1) == '"' &&
			body.At(lexer.bytePos+2) == '"' &&
			body.At(lexer.bytePos+3) == '"':
			lexer.bytePos += 4

		case char < 0x0020 && char != '\t' && char != '\r' && char != '\n':
			return token.Token{}, graphql.NewSyntaxError(
				lexer.source,
				lexer.Location(),
				fmt.Sprintf("Invalid character within String: %s.",
					lexer.charAtPosToStr(lexer.bytePos)))

		default:
			lexer.consume()
		}
	}

	return token.Token{}, graphql.NewSyntaxError(lexer.source, lexer.Location(), "Unterminated string.")
}

// lexName lexes a Name token from source.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
func (lexer *Lexer) lexName() token.Token {
	startPos := lexer.bytePos

	// Consume one rune which was read in lexToken before here.
	lexer.consume()

	for {
		char := lexer.peek()
		if isNameStart(char) || (char >= '0' && char <= '9') {
			lexer.consume()
			continue
		}
		break
	}

	return lexer.makeTokenWithValue(
		token.KindName,
		startPos,
		string(lexer.source.Body()[startPos:lexer.bytePos]),
	)
}
