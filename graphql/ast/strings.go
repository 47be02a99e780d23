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

// Strings is a deduplicating string table. Equal strings are stored once and share one StringID.
// A Strings belongs to exactly one document; IDs from different tables are unrelated.
type Strings struct {
	index  map[string]StringID
	values []string
}

// Intern returns the ID of str, adding it to the table if it is not there yet.
func (table *Strings) Intern(str string) StringID {
	if id, exists := table.index[str]; exists {
		return id
	}
	if table.index == nil {
		table.index = make(map[string]StringID)
	}
	id := StringID(len(table.values))
	table.values = append(table.values, str)
	table.index[str] = id
	return id
}

// Find returns the ID of str if it has been interned.
func (table *Strings) Find(str string) (StringID, bool) {
	id, exists := table.index[str]
	return id, exists
}

// Lookup returns the string with the given ID.
func (table *Strings) Lookup(id StringID) string {
	return table.values[id]
}

// Len returns the number of distinct strings in the table.
func (table *Strings) Len() int {
	return len(table.values)
}

// StringTable is a read-only view of the Strings of a store.
type StringTable struct {
	table *Strings
}

// Find returns the ID of str if it has been interned.
func (view StringTable) Find(str string) (StringID, bool) {
	return view.table.Find(str)
}

// Lookup returns the string with the given ID.
func (view StringTable) Lookup(id StringID) string {
	return view.table.Lookup(id)
}

// Len returns the number of distinct strings in the table.
func (view StringTable) Len() int {
	return view.table.Len()
}

func (table *Strings) clone() Strings {
	result := Strings{
		index:  make(map[string]StringID, len(table.index)),
		values: make([]string, len(table.values)),
	}
	copy(result.values, table.values)
	for str, id := range table.index {
		result.index[str] = id
	}
	return result
}
