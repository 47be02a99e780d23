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
	"context"

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/graphql/ast/executable"
	"github.com/botobag/gqldoc/graphql/ast/schema"
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/graphql/trace"
)

// ParseOptions contains configuration options to control parser behavior.
type ParseOptions struct {
	// EXPERIMENTAL:
	//
	// If enabled, the parser will understand and parse variable definitions contained in a fragment
	// definition. They'll be represented in the `VariableDefinitions` field of the
	// FragmentDefinitionRecord.
	//
	// The syntax is identical to normal, query-defined variables. For example:
	//
	//   fragment A($var: Boolean = false) on T  {
	//     ...
	//   }
	//
	// Note: this feature is experimental and may change or be removed in the future.
	//
	// See https://github.com/facebook/graphql/issues/204.
	ExperimentalFragmentVariables bool

	// Tracer is notified when parsing starts and finishes. Defaults to trace.NoopTracer.
	Tracer trace.Tracer
}

// ParseOption configures ParseOptions.
type ParseOption func(options *ParseOptions)

// EnableFragmentVariables enables ExperimentalFragmentVariables.
func EnableFragmentVariables() ParseOption {
	return func(options *ParseOptions) {
		options.ExperimentalFragmentVariables = true
	}
}

// WithTracer sets the tracer to be notified about parsing.
func WithTracer(tracer trace.Tracer) ParseOption {
	return func(options *ParseOptions) {
		options.Tracer = tracer
	}
}

func newParseOptions(opts []ParseOption) ParseOptions {
	options := ParseOptions{
		Tracer: trace.NoopTracer{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Parse parses the given GraphQL type system document.
func Parse(source *token.Source, opts ...ParseOption) (*schema.Document, error) {
	return ParseContext(context.Background(), source, opts...)
}

// ParseContext is like Parse with a context passed to the tracer.
func ParseContext(ctx context.Context, source *token.Source, opts ...ParseOption) (*schema.Document, error) {
	if source == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}
	options := newParseOptions(opts)
	_, finish := options.Tracer.TraceParse(ctx, trace.DocumentKindSchema, source)

	doc, err := newSchemaParser(source, schema.NewWriter(), options).parseDocument()
	if err != nil {
		finish(0, err)
		return nil, err
	}
	finish(doc.NumDefinitions(), nil)
	return doc, nil
}

// ExtendSchema parses a type system document that adds definitions and extensions to doc. The
// result is a new document containing the definitions of both; doc is not modified.
func ExtendSchema(doc *schema.Document, source *token.Source, opts ...ParseOption) (*schema.Document, error) {
	if source == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}
	options := newParseOptions(opts)
	_, finish := options.Tracer.TraceParse(context.Background(), trace.DocumentKindSchema, source)

	result, err := newSchemaParser(source, schema.Update(doc), options).parseDocument()
	if err != nil {
		finish(0, err)
		return nil, err
	}
	finish(result.NumDefinitions()-doc.NumDefinitions(), nil)
	return result, nil
}

// ParseExecutable parses the given GraphQL executable document (operations and fragments).
func ParseExecutable(source *token.Source, opts ...ParseOption) (*executable.Document, error) {
	return ParseExecutableContext(context.Background(), source, opts...)
}

// ParseExecutableContext is like ParseExecutable with a context passed to the tracer.
func ParseExecutableContext(ctx context.Context, source *token.Source, opts ...ParseOption) (*executable.Document, error) {
	if source == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}
	options := newParseOptions(opts)
	_, finish := options.Tracer.TraceParse(ctx, trace.DocumentKindExecutable, source)

	doc, err := newExecutableParser(source, options).parseDocument()
	if err != nil {
		finish(0, err)
		return nil, err
	}
	finish(doc.NumDefinitions(), nil)
	return doc, nil
}

// ParseValue parses a string containing a GraphQL value (e.g., `[42]`). The value lives in a
// document of its own.
func ParseValue(source *token.Source, opts ...ParseOption) (ast.Value, error) {
	if source == nil {
		return ast.Value{}, graphql.NewError("Must provide Source. Received: nil")
	}
	options := newParseOptions(opts)
	_, finish := options.Tracer.TraceParse(context.Background(), trace.DocumentKindValue, source)

	p := newParser(source, ast.NewWriter(), options)
	id, err := p.parseStandalone(func() (uint32, error) {
		value, err := p.parseValue(false /* isConst */)
		if err != nil {
			return 0, err
		}
		return uint32(p.writer.Value(value)), nil
	})
	finish(0, err)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.ValueID(id).Read(p.writer.Close()), nil
}

// ParseType parses a string containing a GraphQL type (e.g., `[Int!]`). The type lives in a
// document of its own.
func ParseType(source *token.Source, opts ...ParseOption) (ast.Type, error) {
	if source == nil {
		return ast.Type{}, graphql.NewError("Must provide Source. Received: nil")
	}
	options := newParseOptions(opts)
	_, finish := options.Tracer.TraceParse(context.Background(), trace.DocumentKindType, source)

	p := newParser(source, ast.NewWriter(), options)
	id, err := p.parseStandalone(func() (uint32, error) {
		t, err := p.parseType()
		return uint32(t), err
	})
	finish(0, err)
	if err != nil {
		return ast.Type{}, err
	}
	return ast.TypeID(id).Read(p.writer.Close()), nil
}
