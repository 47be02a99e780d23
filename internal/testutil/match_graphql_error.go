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

package testutil

import (
	"github.com/botobag/gqldoc/graphql"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher adds a field expectation for a *graphql.Error.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageContainSubstring expects the error message to contain s.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// LocationEqual expects location to be the only location of the error.
func LocationEqual(location graphql.ErrorLocation) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Locations"] = gomega.Equal([]graphql.ErrorLocation{location})
	}
}

// KindIs expects the error to be of the given kind.
func KindIs(errKind graphql.ErrKind) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Kind"] = gomega.Equal(errKind)
	}
}

// MatchGraphQLError matches a *graphql.Error against all given field expectations. Fields without
// an expectation are ignored.
//
//		Expect(err).Should(MatchGraphQLError(
//			MessageContainSubstring("Unterminated string"),
//			KindIs(graphql.ErrKindSyntax),
//		))
func MatchGraphQLError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}

// MatchSyntaxError matches a syntax error reported at the given line and column whose message
// contains message.
func MatchSyntaxError(message string, line uint, column uint) types.GomegaMatcher {
	return MatchGraphQLError(
		MessageContainSubstring(message),
		LocationEqual(graphql.ErrorLocation{Line: line, Column: column}),
		KindIs(graphql.ErrKindSyntax),
	)
}
