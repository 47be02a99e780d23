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

package gqlfmt

import (
	"github.com/botobag/gqldoc/graphql/parser"
	"github.com/botobag/gqldoc/graphql/pretty"
	"github.com/botobag/gqldoc/graphql/token"
)

// Settings controls how a document is formatted.
type Settings struct {
	// Target line width for the pretty layout. Zero means pretty.DefaultWidth.
	Width int

	// Print the canonical form instead of the pretty layout.
	Canonical bool

	// Parse the input as an executable document instead of a type system document.
	Executable bool
}

// Format parses src and returns its formatted text. name identifies the source in errors.
func Format(name string, src []byte, settings Settings) (string, error) {
	source := token.NewSource(&token.SourceConfig{
		Name: name,
		Body: token.SourceBody(src),
	})
	opts := pretty.Options{Width: settings.Width}

	if settings.Executable {
		doc, err := parser.ParseExecutable(source)
		if err != nil {
			return "", err
		}
		if settings.Canonical {
			return doc.String(), nil
		}
		return pretty.Executable(doc, opts), nil
	}

	doc, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	if settings.Canonical {
		return doc.String(), nil
	}
	return pretty.Schema(doc, opts), nil
}
