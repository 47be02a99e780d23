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

package ast

import (
	"github.com/botobag/gqldoc/iterator"
)

// Readable is satisfied by IDs that can be resolved to a reader of type R from a document of type
// D.
type Readable[D any, R any] interface {
	~uint32
	Read(doc D) R
}

// ReadRange returns an iterator which resolves every ID in r to its reader on demand.
func ReadRange[R any, ID Readable[D, R], D any](r IDRange[ID], doc D) iterator.Iter[ID, R] {
	return iterator.New(r.Start, r.End, func(id ID) R {
		return id.Read(doc)
	})
}
