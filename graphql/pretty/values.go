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

package pretty

import (
	"github.com/botobag/gqldoc/graphql/ast"
	"github.com/botobag/gqldoc/iterator"
)

// DefaultWidth is the line width used when Options.Width is zero.
const DefaultWidth = 80

const indentWidth = 2

// Options configures the layout.
type Options struct {
	// Width is the target line width. Zero means DefaultWidth.
	Width int
}

func (opts Options) width() int {
	if opts.Width <= 0 {
		return DefaultWidth
	}
	return opts.Width
}

// Value lays out a single value.
func Value(v ast.Value, opts Options) string {
	return Render(value(v), opts.width())
}

// delimited lays out items between open and close. The items go on one line without a trailing
// comma when they fit; otherwise each goes on its own line followed by a comma.
func delimited(open string, items []Doc, close string) Doc {
	if len(items) == 0 {
		return Text(open + close)
	}
	return Group(Concat(
		Text(open),
		Nest(indentWidth, Concat(
			SoftLine(),
			Join(Concat(Text(","), Line()), items),
			FlatAlt(Text(","), Empty()),
		)),
		SoftLine(),
		Text(close),
	))
}

// block lays out items one per line between braces.
func block(items []Doc) Doc {
	docs := make([]Doc, 0, 2*len(items))
	for _, item := range items {
		docs = append(docs, HardLine(), item)
	}
	return Concat(
		Text("{"),
		Nest(indentWidth, Concat(docs...)),
		HardLine(),
		Text("}"),
	)
}

func value(v ast.Value) Doc {
	switch v.Kind() {
	case ast.ValueKindVariable:
		return Text("$" + v.Text())

	case ast.ValueKindString:
		literal, _ := v.StringLiteral()
		return stringLiteral(literal)

	case ast.ValueKindList:
		var items []Doc
		for item := range v.List().All() {
			items = append(items, value(item))
		}
		return delimited("[", items, "]")

	case ast.ValueKindObject:
		var fields []Doc
		for field := range v.Fields().All() {
			fields = append(fields, Concat(Text(field.Name()+": "), value(field.Value())))
		}
		return delimited("{", fields, "}")
	}

	// Scalars print the same in every layout.
	return Text(v.String())
}

func stringLiteral(s ast.StringLiteral) Doc {
	if !s.IsBlock() {
		return Text(ast.QuoteString(s.Value()))
	}

	layout := ast.LayoutBlockString(s.Value())
	docs := []Doc{Text(`"""`)}
	if layout.LeadingBreak {
		docs = append(docs, HardLine())
	}
	for i, line := range layout.Lines {
		if i > 0 {
			docs = append(docs, HardLine())
		}
		docs = append(docs, Text(line))
	}
	if layout.TrailingBreak {
		docs = append(docs, HardLine())
	}
	docs = append(docs, Text(`"""`))
	return Concat(docs...)
}

func typeRef(t ast.Type) Doc {
	return Text(t.String())
}

func arguments(it iterator.Iter[ast.ArgumentID, ast.Argument]) Doc {
	if it.Len() == 0 {
		return Empty()
	}
	var items []Doc
	for argument := range it.All() {
		items = append(items, Concat(Text(argument.Name()+": "), value(argument.Value())))
	}
	return delimited("(", items, ")")
}

// directives lays out applied directives, each preceded by a space.
func directives(it iterator.Iter[ast.DirectiveID, ast.Directive]) Doc {
	var docs []Doc
	for directive := range it.All() {
		docs = append(docs, Text(" @"+directive.Name()), arguments(directive.Arguments()))
	}
	return Concat(docs...)
}

// document joins definitions with a blank line and terminates the output with a line break.
func document(definitions []Doc, opts Options) string {
	if len(definitions) == 0 {
		return ""
	}
	return Render(Concat(
		Join(Concat(HardLine(), HardLine()), definitions),
		HardLine(),
	), opts.width())
}
