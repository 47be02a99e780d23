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

package parser

import (
	"errors"
	"fmt"

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/lexer"
	"github.com/botobag/gqldoc/graphql/token"
)

// parser holds the state shared by the grammars of both kinds of documents: the lexer and the
// writer of types, values, directives and arguments.
type parser struct {
	// The lexer for tokenization
	lexer *lexer.Lexer

	// Writer for the records shared by all documents
	writer *ast.Writer

	// The configuration options
	options ParseOptions

	// Span of the token consumed last
	lastSpan token.Span
}

func newParser(source *token.Source, writer *ast.Writer, options ParseOptions) *parser {
	return &parser{
		lexer:   lexer.New(source),
		writer:  writer,
		options: options,
	}
}

// parseStandalone parses a single construct with parseFunc which must fill the whole source.
func (p *parser) parseStandalone(parseFunc func() (uint32, error)) (uint32, error) {
	if _, err := p.expect(token.KindSOF); err != nil {
		return 0, err
	}

	id, err := parseFunc()
	if err != nil {
		return 0, err
	}

	if _, err := p.expect(token.KindEOF); err != nil {
		return 0, err
	}

	return id, nil
}

// advance consumes the current token.
func (p *parser) advance() (token.Token, error) {
	p.lastSpan = p.lexer.Token().Span
	return p.lexer.Advance()
}

// If the next token is of the given kind, return true after advancing the lexer. Otherwise, do not
// change the parser state and return false.
func (p *parser) skip(tokenKind token.Kind) (bool, error) {
	if p.lexer.Token().Kind == tokenKind {
		if _, err := p.advance(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// If the next token is of the given kind, return that token after advancing the lexer. Otherwise,
// do not change the parser state and throw an error.
func (p *parser) expect(tokenKind token.Kind) (token.Token, error) {
	tok := p.lexer.Token()
	if tok.Kind == tokenKind {
		if _, err := p.advance(); err != nil {
			return token.Token{}, err
		}
		return tok, nil
	}
	return token.Token{}, graphql.NewSyntaxError(
		p.lexer.Source(),
		tok.Location(),
		fmt.Sprintf("Expected %v, found %s", tokenKind, tok.Description()))
}

// If the next token is a keyword with the given value, return true after advancing the lexer.
// Otherwise, do not change the parser state and return false.
func (p *parser) skipKeyword(keyword string) (bool, error) {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == keyword {
		if _, err := p.advance(); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// If the next token is a keyword with the given value, advance the lexer. Otherwise, do not change
// the parser state and throw an error.
func (p *parser) expectKeyword(keyword string) (token.Token, error) {
	tok := p.peek()
	hasKeyword, err := p.skipKeyword(keyword)
	if err != nil {
		return token.Token{}, err
	} else if !hasKeyword {
		return token.Token{}, graphql.NewSyntaxError(p.lexer.Source(), tok.Location(),
			fmt.Sprintf(`Expected "%s", found %s`, keyword, tok.Description()))
	}
	return tok, nil
}

// Peek return current token without consume it.
func (p *parser) peek() token.Token {
	return p.lexer.Token()
}

// Helper function for creating an error when an unexpected lexed token is encountered.
func (p *parser) unexpected() error {
	return p.unexpectedToken(p.lexer.Token())
}

func (p *parser) unexpectedToken(tok token.Token) error {
	return graphql.NewSyntaxError(
		p.lexer.Source(), tok.Location(), fmt.Sprintf("Unexpected %s", tok.Description()))
}

// spanSince returns the span from start to the end of the token consumed last.
func (p *parser) spanSince(start token.Span) token.Span {
	return start.Cover(p.lastSpan)
}

// Converts a name lex token into an interned string.
func (p *parser) parseName() (ast.StringID, token.Token, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return 0, tok, err
	}
	return p.writer.Ident(tok.Value), tok, nil
}

//	StringValue ::
//		" StringCharacter* "
//		""" BlockStringCharacter* """
func (p *parser) parseStringLiteral() (ast.StringLiteralRecord, token.Token, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindString:
		value, err := lexer.StringValue(tok.Value, tok.Span)
		if err != nil {
			return ast.StringLiteralRecord{}, tok, p.escapeError(err)
		}
		if _, err := p.advance(); err != nil {
			return ast.StringLiteralRecord{}, tok, err
		}
		return ast.QuotedString(p.writer.Intern(value)), tok, nil

	case token.KindBlockString:
		if _, err := p.advance(); err != nil {
			return ast.StringLiteralRecord{}, tok, err
		}
		return ast.BlockString(p.writer.BlockString(tok.Value)), tok, nil
	}

	return ast.StringLiteralRecord{}, tok, p.unexpected()
}

// escapeError converts an error from decoding a string into a syntax error at the escape sequence.
func (p *parser) escapeError(err error) error {
	var escapeErr *lexer.EscapeError
	if !errors.As(err, &escapeErr) {
		return err
	}
	return graphql.NewSyntaxError(
		p.lexer.Source(),
		escapeErr.Span.Location(),
		escapeErr.Error(),
		escapeErr,
		graphql.ErrorExtensions{
			"code": escapeErr.Kind.String(),
		})
}

//	Value ::
//		Variable
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue
//		ObjectValue
//
//	BooleanValue::
//		true or false
//
//	NullValue::
//		null
//
//	EnumValue ::
//		Name but not true or false or null
//
// The returned record is not pushed; the caller decides whether it goes alone (Writer.Value) or in
// a burst with its siblings (Writer.Values).
func (p *parser) parseValue(isConst bool) (ast.ValueRecord, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindDollar:
		if !isConst {
			return p.parseVariable()
		}

	case token.KindInt, token.KindFloat:
		if _, err := p.advance(); err != nil {
			return ast.ValueRecord{}, err
		}
		kind := ast.ValueKindInt
		if tok.Kind == token.KindFloat {
			kind = ast.ValueKindFloat
		}
		return ast.ValueRecord{
			Kind: kind,
			Span: tok.Span,
			Text: p.writer.Intern(tok.Value),
		}, nil

	case token.KindString, token.KindBlockString:
		literal, _, err := p.parseStringLiteral()
		if err != nil {
			return ast.ValueRecord{}, err
		}
		return ast.ValueRecord{
			Kind:   ast.ValueKindString,
			Span:   tok.Span,
			String: literal,
		}, nil

	case token.KindName:
		if _, err := p.advance(); err != nil {
			return ast.ValueRecord{}, err
		}

		switch tok.Value {
		case "true", "false":
			return ast.ValueRecord{
				Kind:    ast.ValueKindBoolean,
				Span:    tok.Span,
				Boolean: tok.Value == "true",
			}, nil

		case "null":
			return ast.ValueRecord{
				Kind: ast.ValueKindNull,
				Span: tok.Span,
			}, nil

		default:
			return ast.ValueRecord{
				Kind: ast.ValueKindEnum,
				Span: tok.Span,
				Text: p.writer.Ident(tok.Value),
			}, nil
		}

	case token.KindLeftBracket:
		return p.parseListValue(isConst)

	case token.KindLeftBrace:
		return p.parseObjectValue(isConst)
	}

	return ast.ValueRecord{}, p.unexpected()
}

//	ListValue ::
//		[ ]
//		[ Value+ ]
func (p *parser) parseListValue(isConst bool) (ast.ValueRecord, error) {
	startToken, err := p.expect(token.KindLeftBracket)
	if err != nil {
		return ast.ValueRecord{}, err
	}

	var values []ast.ValueRecord
	for {
		// Stop on ] token.
		endToken := p.peek()
		stop, err := p.skip(token.KindRightBracket)
		if err != nil {
			return ast.ValueRecord{}, err
		}
		if stop {
			return ast.ValueRecord{
				Kind: ast.ValueKindList,
				Span: startToken.Span.Cover(endToken.Span),
				List: p.writer.Values(values),
			}, nil
		}

		value, err := p.parseValue(isConst)
		if err != nil {
			return ast.ValueRecord{}, err
		}

		values = append(values, value)
	}
}

//	ObjectValue ::
//		{ }
//		{ ObjectField+ }
//
//	ObjectField ::
//		Name : Value
func (p *parser) parseObjectValue(isConst bool) (ast.ValueRecord, error) {
	startToken, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return ast.ValueRecord{}, err
	}

	var fields []ast.ObjectFieldRecord
	for {
		// Stop on } token.
		endToken := p.peek()
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return ast.ValueRecord{}, err
		}
		if stop {
			return ast.ValueRecord{
				Kind:   ast.ValueKindObject,
				Span:   startToken.Span.Cover(endToken.Span),
				Object: p.writer.ObjectFields(fields),
			}, nil
		}

		name, nameToken, err := p.parseName()
		if err != nil {
			return ast.ValueRecord{}, err
		}

		if _, err := p.expect(token.KindColon); err != nil {
			return ast.ValueRecord{}, err
		}

		value, err := p.parseValue(isConst)
		if err != nil {
			return ast.ValueRecord{}, err
		}

		fields = append(fields, ast.ObjectFieldRecord{
			Name:  name,
			Value: p.writer.Value(value),
			Span:  nameToken.Span.Cover(value.Span),
		})
	}
}

//	Variable ::
//		$ Name
func (p *parser) parseVariable() (ast.ValueRecord, error) {
	dollar, err := p.expect(token.KindDollar)
	if err != nil {
		return ast.ValueRecord{}, err
	}

	name, nameToken, err := p.parseName()
	if err != nil {
		return ast.ValueRecord{}, err
	}

	return ast.ValueRecord{
		Kind: ast.ValueKindVariable,
		Span: dollar.Span.Cover(nameToken.Span),
		Text: name,
	}, nil
}

//	DefaultValue ::
//		= Value
func (p *parser) parseDefaultValue() (ast.Optional[ast.ValueID], error) {
	hasDefault, err := p.skip(token.KindEquals)
	if err != nil || !hasDefault {
		return ast.None[ast.ValueID](), err
	}

	value, err := p.parseValue(true /* isConst */)
	if err != nil {
		return ast.None[ast.ValueID](), err
	}

	return ast.Some(p.writer.Value(value)), nil
}

//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
//	NamedType ::
//		Name
//
//	ListType ::
//		[ Type ]
//
//	NonNullType ::
//		NamedType !
//		ListType !
func (p *parser) parseType() (ast.TypeID, error) {
	// See how many level are the innermost named type nested in the list.
	var openings []token.Span
	for {
		tok := p.peek()
		isOpeningList, err := p.skip(token.KindLeftBracket)
		if err != nil {
			return 0, err
		} else if !isOpeningList {
			break
		}
		openings = append(openings, tok.Span)
	}

	// Must be a Name.
	name, nameToken, err := p.parseName()
	if err != nil {
		return 0, err
	}
	span := nameToken.Span
	t := p.writer.Type(ast.TypeRecord{
		Kind: ast.TypeKindNamed,
		Name: name,
		Span: span,
	})

	for level := len(openings); ; level-- {
		bang := p.peek()
		isNonNull, err := p.skip(token.KindBang)
		if err != nil {
			return 0, err
		} else if isNonNull {
			span = span.Cover(bang.Span)
			t = p.writer.Type(ast.TypeRecord{
				Kind:   ast.TypeKindNonNull,
				OfType: t,
				Span:   span,
			})
		}

		// Stop when all lists are closed.
		if level == 0 {
			return t, nil
		}

		closing, err := p.expect(token.KindRightBracket)
		if err != nil {
			return 0, err
		}
		span = openings[level-1].Cover(closing.Span)
		t = p.writer.Type(ast.TypeRecord{
			Kind:   ast.TypeKindList,
			OfType: t,
			Span:   span,
		})
	}
}

//	Directives ::
//		Directive+
//
// Directives are optional everywhere so this returns an empty range when there's no "@".
func (p *parser) parseDirectives(isConst bool) (ast.IDRange[ast.DirectiveID], error) {
	count := 0
	for p.peek().Kind == token.KindAt {
		if err := p.parseDirective(isConst); err != nil {
			return ast.IDRange[ast.DirectiveID]{}, err
		}
		count++
	}
	return p.writer.DirectiveRange(count), nil
}

//	Directive ::
//		@ Name Arguments?
func (p *parser) parseDirective(isConst bool) error {
	at, err := p.expect(token.KindAt)
	if err != nil {
		return err
	}

	name, nameToken, err := p.parseName()
	if err != nil {
		return err
	}

	arguments, end, err := p.parseArguments(isConst)
	if err != nil {
		return err
	}
	if arguments.IsEmpty() {
		end = nameToken.Span
	}

	p.writer.Directive(ast.DirectiveRecord{
		Name:      name,
		Arguments: arguments,
		Span:      at.Span.Cover(end),
	})
	return nil
}

//	Arguments ::
//		( Argument+ )
//
// Returns an empty range when there's no "(" and the span of ")" otherwise.
func (p *parser) parseArguments(isConst bool) (ast.IDRange[ast.ArgumentID], token.Span, error) {
	if p.peek().Kind != token.KindLeftParen {
		return p.writer.ArgumentRange(0), token.Span{}, nil
	}

	if _, err := p.expect(token.KindLeftParen); err != nil {
		return ast.IDRange[ast.ArgumentID]{}, token.Span{}, err
	}

	count := 0
	for {
		if err := p.parseArgument(isConst); err != nil {
			return ast.IDRange[ast.ArgumentID]{}, token.Span{}, err
		}
		count++

		// Stop on ) token.
		closing := p.peek()
		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return ast.IDRange[ast.ArgumentID]{}, token.Span{}, err
		}

		if stop {
			return p.writer.ArgumentRange(count), closing.Span, nil
		}
	}
}

//	Argument ::
//		Name : Value
func (p *parser) parseArgument(isConst bool) error {
	name, nameToken, err := p.parseName()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return err
	}

	p.writer.Argument(ast.ArgumentRecord{
		Name:  name,
		Value: p.writer.Value(value),
		Span:  nameToken.Span.Cover(value.Span),
	})
	return nil
}

// optionalMany parses a list of items delimited by openKind and closeKind. When the list is
// present, it must have at least one item. It returns the number of items parsed.
func (p *parser) optionalMany(openKind token.Kind, parseFunc func() error, closeKind token.Kind) (int, error) {
	if p.peek().Kind != openKind {
		return 0, nil
	}

	if _, err := p.expect(openKind); err != nil {
		return 0, err
	}

	count := 0
	for {
		if err := parseFunc(); err != nil {
			return 0, err
		}
		count++

		stop, err := p.skip(closeKind)
		if err != nil {
			return 0, err
		} else if stop {
			return count, nil
		}
	}
}

//	OperationType : one of
//		query mutation subscription
func (p *parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return ast.OperationTypeQuery, err
	}

	switch tok.Value {
	case "query":
		return ast.OperationTypeQuery, nil
	case "mutation":
		return ast.OperationTypeMutation, nil
	case "subscription":
		return ast.OperationTypeSubscription, nil
	}

	return ast.OperationTypeQuery, p.unexpectedToken(tok)
}

// many is like optionalMany but the list must be present.
func (p *parser) many(openKind token.Kind, parseFunc func() error, closeKind token.Kind) (int, error) {
	if p.peek().Kind != openKind {
		_, err := p.expect(openKind)
		return 0, err
	}
	return p.optionalMany(openKind, parseFunc, closeKind)
}
