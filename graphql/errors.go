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

package graphql

import (
	"fmt"

	"github.com/botobag/gqldoc/graphql/token"
)

//===----------------------------------------------------------------------------------------====//
// Syntax Error
//===----------------------------------------------------------------------------------------====//

type syntaxError struct {
	source      *token.Source
	location    token.SourceLocation
	description string
	cause       error
}

var (
	_ error              = (*syntaxError)(nil)
	_ ErrorWithLocations = (*syntaxError)(nil)
)

// Error implements Go's error interface.
func (e *syntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s", e.description)
}

// Unwrap returns the error that caused the syntax error (if any).
func (e *syntaxError) Unwrap() error {
	return e.cause
}

// Locations implements ErrorWithLocations.
func (e *syntaxError) Locations() []ErrorLocation {
	locInfo := e.source.LocationInfoOf(e.location)
	return []ErrorLocation{
		{
			Line:   locInfo.Line,
			Column: locInfo.Column,
		},
	}
}

// NewSyntaxError produces an error representing a syntax error, containing useful descriptive
// information about the syntax error's position in the source. Additional arguments are passed to
// NewError; an error among them is recorded as the cause so errors.As can retrieve it.
func NewSyntaxError(source *token.Source, location token.SourceLocation, description string, args ...interface{}) error {
	e := &syntaxError{
		source:      source,
		location:    location,
		description: description,
	}
	for _, arg := range args {
		if cause, ok := arg.(error); ok {
			e.cause = cause
		}
	}
	filtered := make([]interface{}, 0, len(args)+2)
	filtered = append(filtered, e, ErrKindSyntax)
	for _, arg := range args {
		if _, ok := arg.(error); !ok {
			filtered = append(filtered, arg)
		}
	}
	return NewError(e.Error(), filtered...)
}
