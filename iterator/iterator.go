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

package iterator

import (
	"iter"
)

// done is defined to serve as type for Done. It allows us to define an immutable global variable.
type done int

// Error implements Go's error inteface for "done".
func (done) Error() string {
	return "no more items in iterator"
}

var _ error = done(0)

// Done is returned by an iterator's Next method when the iteration is complete; when there are no
// more items to return.
const Done done = 0

// Iter lazily produces a value for each ID in the half-open range [next, end). The value for an ID
// is computed by the read function on demand; nothing is materialized up front.
type Iter[ID ~uint32, R any] struct {
	next ID
	end  ID
	read func(ID) R
}

// New creates an iterator over IDs in [start, end) which resolves each ID with read.
func New[ID ~uint32, R any](start, end ID, read func(ID) R) Iter[ID, R] {
	if end < start {
		end = start
	}
	return Iter[ID, R]{
		next: start,
		end:  end,
		read: read,
	}
}

// Empty returns an iterator that yields nothing.
func Empty[ID ~uint32, R any]() Iter[ID, R] {
	return Iter[ID, R]{}
}

// Next returns the next element in the iteration. It returns Done when there's no more element.
func (iter *Iter[ID, R]) Next() (R, error) {
	if iter.next >= iter.end {
		var zero R
		return zero, Done
	}
	id := iter.next
	iter.next++
	return iter.read(id), nil
}

// Len returns the number of elements left in the iteration.
func (iter Iter[ID, R]) Len() int {
	return int(iter.end - iter.next)
}

// Clone returns a copy of the iterator which iterates independently from the current position.
func (iter Iter[ID, R]) Clone() Iter[ID, R] {
	return iter
}

// Collect drains the remaining elements into a slice.
func (iter Iter[ID, R]) Collect() []R {
	result := make([]R, 0, iter.Len())
	for {
		r, err := iter.Next()
		if err == Done {
			return result
		}
		result = append(result, r)
	}
}

// All returns a sequence over the remaining elements. The receiver is copied so the sequence can be
// ranged over more than once.
func (it Iter[ID, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		cursor := it
		for {
			r, err := cursor.Next()
			if err == Done || !yield(r) {
				return
			}
		}
	}
}
