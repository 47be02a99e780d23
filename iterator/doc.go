/**
 * Copyright (c) 2019, The Artemis Authors.
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

// Package iterator provides the iterator used to walk children of a node in an arena-backed GraphQL
// document. The pattern draws inspiration from the Iterator Guidelines established for Google Cloud
// Client Libraries for Go [0].
//
// An "iterable" resource provides a method named after its elements (in plural) which returns an
// iterator over them. For example,
//
//	// Fields returns an iterator over the fields defined in the object.
//	func (def ObjectDefinition) Fields() iterator.Iter[FieldDefinitionID, FieldDefinition] {
//		...
//	}
//
// The iterator has a method Next for iterating over individual elements. Next returns Done to
// indicate that there's no more element:
//
//	iter := object.Fields()
//	for {
//		field, err := iter.Next()
//		if err == iterator.Done {
//			break
//		}
//		process(field)
//	}
//
// Iterators are plain values. Copying one (or calling Clone) yields an independent iterator that
// starts from the copied position, so a sequence can be walked any number of times. Len reports
// how many elements are left. All adapts the iterator to a range-over-func sequence:
//
//	for field := range object.Fields().All() {
//		process(field)
//	}
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
