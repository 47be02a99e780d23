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
	"log"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "graphql/parser.Parse".
type Op string

// ErrKind classifies an Error.
type ErrKind uint8

// Enumeration of ErrKind
const (
	// Unclassified error. It is not printed in the error message.
	ErrKindOther ErrKind = iota

	// Malformed GraphQL source text
	ErrKindSyntax

	// A bug in this module or in a caller driving a writer
	ErrKindInternal
)

var errKindNames = [...]string{
	ErrKindOther:    "other error",
	ErrKindSyntax:   "syntax error",
	ErrKindInternal: "internal error",
}

func (k ErrKind) String() string {
	if int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return "unknown error kind"
}

// ErrorExtensions is the "extensions" entry of a GraphQL error, used for vendor-specific data such as
// an error code.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation is a 1-based line and column in a source.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ErrorWithLocations is implemented by errors that know where they occurred. NewError copies the
// locations of such an underlying error when none are given.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// ErrorWithExtensions is implemented by errors that carry extensions. NewError copies the extensions
// of such an underlying error when none are given.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// An Error is an error found while handling a GraphQL document. It serializes to JSON in the shape
// of a GraphQL response error [0]. Op and Kind are for programmers: they show in Error() but not in
// the JSON form.
//
// [0] https://facebook.github.io/graphql/June2018/#sec-Errors
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Locations within the source document which correspond to this error
	Locations []ErrorLocation

	// Extensions contains data to be added to in the error response
	Extensions ErrorExtensions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an Error from a message and arguments of the following types: ErrorLocation,
// []ErrorLocation, ErrorExtensions, error (the cause), Op and ErrKind. Locations, extensions and kind
// that are not given are taken from the cause. The design follows upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		if !e.apply(arg) {
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	if e.Err != nil {
		e.inherit(e.Err)
	}

	return e
}

func (e *Error) apply(arg interface{}) bool {
	switch arg := arg.(type) {
	case ErrorLocation:
		e.Locations = []ErrorLocation{arg}
	case []ErrorLocation:
		e.Locations = arg
	case ErrorExtensions:
		e.Extensions = arg
	case error:
		e.Err = arg
	case Op:
		e.Op = arg
	case ErrKind:
		e.Kind = arg
	default:
		return false
	}
	return true
}

// inherit fills locations, extensions and kind that were not given from cause.
func (e *Error) inherit(cause error) {
	prev, isError := cause.(*Error)

	if len(e.Locations) == 0 {
		if withLocations, ok := cause.(ErrorWithLocations); ok {
			e.Locations = withLocations.Locations()
		} else if isError && len(prev.Locations) > 0 {
			e.Locations = append([]ErrorLocation(nil), prev.Locations...)
		}
	}

	if e.Extensions == nil {
		if withExtensions, ok := cause.(ErrorWithExtensions); ok {
			e.Extensions = withExtensions.Extensions()
		} else if isError {
			e.Extensions = prev.Extensions
		}
	}

	if e.Kind == ErrKindOther && isError {
		e.Kind = prev.Kind
	}
}

// WrapError builds an Error with message around err.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is WrapError with a format string.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Unwrap returns the underlying error so errors.Is and errors.As can reach it.
func (e *Error) Unwrap() error {
	return e.Err
}

// Location returns the first location of the error.
func (e *Error) Location() (ErrorLocation, bool) {
	if len(e.Locations) == 0 {
		return ErrorLocation{}, false
	}
	return e.Locations[0], true
}

// Error implements Go's error interface. A chain of Errors prints one per line; locations, kind and
// extensions repeated by the next error in the chain are omitted.
func (e *Error) Error() string {
	var (
		b     strings.Builder
		outer *Error
	)
	for current := e; current != nil; {
		wrote := current.writeTo(&b, outer)
		cause := current.Err
		outer, current = current, nil

		switch cause := cause.(type) {
		case nil:
		case *Error:
			if wrote {
				b.WriteString(":\n  ")
			}
			current = cause
		default:
			if wrote {
				b.WriteString(": ")
			}
			b.WriteString(cause.Error())
		}
	}
	return b.String()
}

// writeTo prints e without its cause and reports whether it wrote anything. outer is the Error
// wrapping e, if any.
func (e *Error) writeTo(b *strings.Builder, outer *Error) bool {
	var parts []string
	if len(e.Op) > 0 {
		parts = append(parts, string(e.Op))
	}
	if len(e.Message) > 0 {
		parts = append(parts, e.Message)
	}
	text := strings.Join(parts, ": ")

	if e.Locations != nil && (outer == nil || !reflect.DeepEqual(outer.Locations, e.Locations)) {
		if len(text) == 0 {
			text = "At "
		} else {
			text += " at "
		}
		text += fmt.Sprintf("%+v", e.Locations)
	}

	if e.Kind != ErrKindOther && (outer == nil || outer.Kind != e.Kind) {
		if len(text) > 0 {
			text += ": "
		}
		text += e.Kind.String()
	}

	if len(e.Extensions) > 0 && (outer == nil || !reflect.DeepEqual(outer.Extensions, e.Extensions)) {
		if len(text) > 0 {
			text += " (additional info: "
		}
		text += fmt.Sprintf("%v)", e.Extensions)
	}

	b.WriteString(text)
	return len(text) > 0
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// encodeError writes an Error as a GraphQL response error. Extensions are written in key order.
func encodeError(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if len(err.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i, location := range err.Locations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(location.Column)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	if len(err.Extensions) > 0 {
		keys := make([]string, 0, len(err.Extensions))
		for key := range err.Extensions {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		for i, key := range keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(key)
			stream.WriteVal(err.Extensions[key])
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

// Errors is a list of Error. It is a struct rather than a slice so checks go through HaveOccurred
// instead of comparing against nil.
type Errors struct {
	Errors []*Error
}

// Emplace builds an Error from the arguments (see NewError) and appends it.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends errors. Errors that are not an *Error are wrapped with their own message.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		gqlErr, ok := err.(*Error)
		if !ok {
			gqlErr = &Error{Message: err.Error(), Err: err}
			gqlErr.inherit(err)
		}
		errs.Errors = append(errs.Errors, gqlErr)
	}
}

// HaveOccurred reports whether errs is not empty.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// MarshalJSON encodes errs as a JSON array of errors.
func (errs Errors) MarshalJSON() ([]byte, error) {
	if errs.Errors == nil {
		return []byte("[]"), nil
	}
	return jsoniter.Marshal(errs.Errors)
}

func init() {
	jsoniter.RegisterTypeEncoderFunc("graphql.Error", encodeError, func(ptr unsafe.Pointer) bool {
		return (*Error)(ptr) == nil
	})
}
