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

// Package trace provides hooks to observe parsing.
package trace

import (
	"context"

	"github.com/botobag/gqldoc/graphql/token"
)

// DocumentKind names what is being parsed.
type DocumentKind string

// Enumeration of DocumentKind
const (
	DocumentKindSchema     DocumentKind = "schema"
	DocumentKindExecutable DocumentKind = "executable"
	DocumentKindValue      DocumentKind = "value"
	DocumentKindType       DocumentKind = "type"
)

// ParseFinishFunc is called when parsing completes. definitions is the number of definitions in the
// parsed document (zero for values and types).
type ParseFinishFunc = func(definitions int, err error)

// Tracer is notified when parsing of a source starts. The returned function is called when it
// finishes.
type Tracer interface {
	TraceParse(ctx context.Context, kind DocumentKind, source *token.Source) (context.Context, ParseFinishFunc)
}

// NoopTracer traces nothing.
type NoopTracer struct{}

var _ Tracer = NoopTracer{}

// TraceParse implements Tracer.
func (NoopTracer) TraceParse(ctx context.Context, kind DocumentKind, source *token.Source) (context.Context, ParseFinishFunc) {
	return ctx, noop
}

func noop(int, error) {}
