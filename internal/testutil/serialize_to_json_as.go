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
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/onsi/gomega/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type serializeToJSONAsMatcher struct {
	expected interface{}
}

// SerializeToJSONAs encodes the actual value to JSON and decodes it back into the type of expected.
// It succeeds when the result deep-equals expected after the same encode/decode round.
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return serializeToJSONAsMatcher{
		expected: expected,
	}
}

// decodeAs passes v through JSON into a new value of type t.
func decodeAs(v interface{}, t reflect.Type) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %T into JSON: %s", v, err)
	}
	decoded := reflect.New(t).Interface()
	if err := json.Unmarshal(data, decoded); err != nil {
		return nil, fmt.Errorf("cannot decode %s into type %s: %s", data, t, err)
	}
	return decoded, nil
}

// Match implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) Match(actual interface{}) (success bool, err error) {
	t := reflect.TypeOf(matcher.expected)

	decodedActual, err := decodeAs(actual, t)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher: actual: %s", err)
	}
	decodedExpected, err := decodeAs(matcher.expected, t)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher: expected: %s", err)
	}

	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nto serialize to JSON value as\n\t%#v", actual, matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to serialize to JSON value as\n\t%#v", actual, matcher.expected)
}
