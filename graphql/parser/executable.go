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
	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/executable"
	"github.com/botobag/gqldoc/graphql/token"
)

// executableParser parses executable documents into an executable.Writer.
type executableParser struct {
	*parser
	w *executable.Writer
}

func newExecutableParser(source *token.Source, options ParseOptions) *executableParser {
	w := executable.NewWriter()
	return &executableParser{
		parser: newParser(source, w.Writer, options),
		w:      w,
	}
}

//	Document ::
//		ExecutableDefinition+
func (p *executableParser) parseDocument() (*executable.Document, error) {
	if _, err := p.expect(token.KindSOF); err != nil {
		return nil, err
	}

	for {
		if err := p.parseDefinition(); err != nil {
			return nil, err
		}

		stop, err := p.skip(token.KindEOF)
		if err != nil {
			return nil, err
		} else if stop {
			return p.w.Finish(), nil
		}
	}
}

//	ExecutableDefinition ::
//		OperationDefinition
//		FragmentDefinition
func (p *executableParser) parseDefinition() error {
	tok := p.peek()
	switch tok.Kind {
	case token.KindLeftBrace:
		return p.parseOperationDefinition()

	case token.KindName:
		switch tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()

		case "fragment":
			return p.parseFragmentDefinition()
		}
	}

	return p.unexpected()
}

//	OperationDefinition ::
//		SelectionSet
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
func (p *executableParser) parseOperationDefinition() error {
	start := p.peek()
	if start.Kind == token.KindLeftBrace {
		variableDefinitions := p.w.VariableDefinitionRange(0)
		directives := p.writer.DirectiveRange(0)

		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return err
		}

		p.w.OperationDefinition(executable.OperationDefinitionRecord{
			OperationType:       ast.OperationTypeQuery,
			Name:                ast.None[ast.StringID](),
			VariableDefinitions: variableDefinitions,
			Directives:          directives,
			SelectionSet:        selectionSet,
			Span:                p.spanSince(start.Span),
		})
		return nil
	}

	operation, err := p.parseOperationType()
	if err != nil {
		return err
	}

	name := ast.None[ast.StringID]()
	if p.peek().Kind == token.KindName {
		id, _, err := p.parseName()
		if err != nil {
			return err
		}
		name = ast.Some(id)
	}

	variableDefinitions, err := p.parseVariableDefinitions()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(false /* isConst */)
	if err != nil {
		return err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return err
	}

	p.w.OperationDefinition(executable.OperationDefinitionRecord{
		OperationType:       operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Span:                p.spanSince(start.Span),
	})
	return nil
}

//	VariableDefinitions ::
//		( VariableDefinition+ )
func (p *executableParser) parseVariableDefinitions() (ast.IDRange[executable.VariableDefinitionID], error) {
	count, err := p.optionalMany(token.KindLeftParen, p.parseVariableDefinition, token.KindRightParen)
	if err != nil {
		return ast.IDRange[executable.VariableDefinitionID]{}, err
	}
	return p.w.VariableDefinitionRange(count), nil
}

//	VariableDefinition ::
//		Variable : Type DefaultValue? Directives[Const]?
func (p *executableParser) parseVariableDefinition() error {
	start, err := p.expect(token.KindDollar)
	if err != nil {
		return err
	}

	name, _, err := p.parseName()
	if err != nil {
		return err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return err
	}

	t, err := p.parseType()
	if err != nil {
		return err
	}

	defaultValue, err := p.parseDefaultValue()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return err
	}

	p.w.VariableDefinition(executable.VariableDefinitionRecord{
		Name:         name,
		Type:         t,
		DefaultValue: defaultValue,
		Directives:   directives,
		Span:         p.spanSince(start.Span),
	})
	return nil
}

//	SelectionSet ::
//		{ Selection+ }
func (p *executableParser) parseSelectionSet() (ast.IDRange[executable.SelectionID], error) {
	var selections []executable.SelectionRecord
	_, err := p.many(token.KindLeftBrace, func() error {
		selection, err := p.parseSelection()
		if err != nil {
			return err
		}
		selections = append(selections, selection)
		return nil
	}, token.KindRightBrace)
	if err != nil {
		return ast.IDRange[executable.SelectionID]{}, err
	}

	return p.w.Selections(selections), nil
}

//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
func (p *executableParser) parseSelection() (executable.SelectionRecord, error) {
	if p.peek().Kind == token.KindSpread {
		return p.parseFragment()
	}
	return p.parseField()
}

//	Field ::
//		Alias? Name Arguments? Directives? SelectionSet?
//
//	Alias ::
//		Name :
func (p *executableParser) parseField() (executable.SelectionRecord, error) {
	start := p.peek()

	nameOrAlias, _, err := p.parseName()
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	alias := ast.None[ast.StringID]()
	name := nameOrAlias

	hasAlias, err := p.skip(token.KindColon)
	if err != nil {
		return executable.SelectionRecord{}, err
	} else if hasAlias {
		alias = ast.Some(nameOrAlias)
		name, _, err = p.parseName()
		if err != nil {
			return executable.SelectionRecord{}, err
		}
	}

	arguments, _, err := p.parseArguments(false /* isConst */)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	directives, err := p.parseDirectives(false /* isConst */)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	var selectionSet ast.IDRange[executable.SelectionID]
	if p.peek().Kind == token.KindLeftBrace {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return executable.SelectionRecord{}, err
		}
	} else {
		selectionSet = p.w.Selections(nil)
	}

	return p.w.FieldSelection(executable.FieldSelectionRecord{
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
		Span:         p.spanSince(start.Span),
	}).Selection(), nil
}

// Corresponds to both fragment spreads and inline fragments.
//
//	FragmentSpread ::
//		... FragmentName Directives?
//
//	InlineFragment ::
//		... TypeCondition? Directives? SelectionSet
func (p *executableParser) parseFragment() (executable.SelectionRecord, error) {
	start, err := p.expect(token.KindSpread)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	hasTypeCondition, err := p.skipKeyword("on")
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	if !hasTypeCondition && p.peek().Kind == token.KindName {
		name, _, err := p.parseName()
		if err != nil {
			return executable.SelectionRecord{}, err
		}

		directives, err := p.parseDirectives(false /* isConst */)
		if err != nil {
			return executable.SelectionRecord{}, err
		}

		return p.w.FragmentSpread(executable.FragmentSpreadRecord{
			FragmentName: name,
			Directives:   directives,
			Span:         p.spanSince(start.Span),
		}).Selection(), nil
	}

	typeCondition := ast.None[ast.StringID]()
	if hasTypeCondition {
		name, _, err := p.parseName()
		if err != nil {
			return executable.SelectionRecord{}, err
		}
		typeCondition = ast.Some(name)
	}

	directives, err := p.parseDirectives(false /* isConst */)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	return p.w.InlineFragment(executable.InlineFragmentRecord{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Span:          p.spanSince(start.Span),
	}).Selection(), nil
}

//	FragmentDefinition ::
//		fragment FragmentName TypeCondition Directives? SelectionSet
//
//	TypeCondition ::
//		on NamedType
func (p *executableParser) parseFragmentDefinition() error {
	start, err := p.expectKeyword("fragment")
	if err != nil {
		return err
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return err
	}

	// Experimental support for defining variables within fragments changes the grammar of
	// FragmentDefinition:
	//
	//	fragment FragmentName VariableDefinitions? TypeCondition Directives? SelectionSet
	var variableDefinitions ast.IDRange[executable.VariableDefinitionID]
	if p.options.ExperimentalFragmentVariables {
		variableDefinitions, err = p.parseVariableDefinitions()
		if err != nil {
			return err
		}
	} else {
		variableDefinitions = p.w.VariableDefinitionRange(0)
	}

	if _, err := p.expectKeyword("on"); err != nil {
		return err
	}

	typeCondition, _, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseDirectives(false /* isConst */)
	if err != nil {
		return err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return err
	}

	p.w.FragmentDefinition(executable.FragmentDefinitionRecord{
		Name:                name,
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Span:                p.spanSince(start.Span),
	})
	return nil
}

//	FragmentName ::
//		Name but not on
func (p *executableParser) parseFragmentName() (ast.StringID, error) {
	if tok := p.peek(); tok.Kind == token.KindName && tok.Value == "on" {
		return 0, graphql.NewSyntaxError(p.lexer.Source(), tok.Location(),
			`Expected a fragment name before "on"`)
	}
	name, _, err := p.parseName()
	return name, err
}
