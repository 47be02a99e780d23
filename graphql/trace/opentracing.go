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

package trace

import (
	"context"

	"github.com/botobag/gqldoc/graphql/token"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// OpenTracingTracer creates an OpenTracing span for each parse from the span in the context (if
// any).
type OpenTracingTracer struct{}

var _ Tracer = OpenTracingTracer{}

// TraceParse implements Tracer.
func (OpenTracingTracer) TraceParse(ctx context.Context, kind DocumentKind, source *token.Source) (context.Context, ParseFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL parse")
	span.SetTag("graphql.document.kind", string(kind))
	span.SetTag("graphql.source.name", source.Name())
	span.SetTag("graphql.source.size", source.Body().Size())

	return spanCtx, func(definitions int, err error) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		} else {
			span.SetTag("graphql.definitions", definitions)
		}
		span.Finish()
	}
}
