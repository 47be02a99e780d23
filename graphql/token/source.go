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

package token

import (
	"sort"
	"sync"
	"unicode/utf8"
)

// SourceBody contains contents of a GraphQL document in a byte sequence.
type SourceBody []byte

// RuneAt decodes the rune at pos and the number of bytes it occupies. It returns -1 at <EOF>.
func (body SourceBody) RuneAt(pos uint) (rune, uint) {
	if uint(len(body)) <= pos {
		return -1, 0
	}

	if c := body[pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}

	r, n := utf8.DecodeRune(body[pos:])
	return r, uint(n)
}

// At returns the byte at pos or 0 past the end of the body.
func (body SourceBody) At(pos uint) byte {
	if body.Size() <= pos {
		return 0
	}
	return body[pos]
}

// Size returns the body size in bytes.
func (body SourceBody) Size() uint {
	return uint(len(body))
}

// SourceLocationInfo is the name, line and column of a SourceLocation.
type SourceLocationInfo struct {
	Name   string
	Line   uint
	Column uint
}

// SourceConfig specifies configuration of a Source.
type SourceConfig struct {
	Body SourceBody

	// Name, LineOffset and ColumnOffset are optional. A document embedded at line 40 of Foo.graphql
	// would use Name "Foo.graphql" and LineOffset 40. Both offsets are 0-indexed.
	Name         string
	LineOffset   uint
	ColumnOffset uint
}

// lineBreak is the byte range of a "\r\n", "\n" or "\r" sequence in the body.
type lineBreak struct {
	start uint
	end   uint
}

// Source is a GraphQL source text. Line and column lookups are answered from a table of line breaks
// built on first use.
type Source struct {
	config SourceConfig

	breaksOnce sync.Once
	breaks     []lineBreak
}

// NewSource initializes a Source instance from given config.
func NewSource(config *SourceConfig) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = "GraphQL request"
	}
	return source
}

// Body returns the source text.
func (source *Source) Body() SourceBody {
	return source.config.Body
}

// Name returns the name used in diagnostics.
func (source *Source) Name() string {
	return source.config.Name
}

// LineOffset returns the line offset added to reported lines.
func (source *Source) LineOffset() uint {
	return source.config.LineOffset
}

// ColumnOffset returns the column offset added to reported columns.
func (source *Source) ColumnOffset() uint {
	return source.config.ColumnOffset
}

// LocationFromPos returns the SourceLocation of the 0-based byte position in the body. The position
// just past the end is accepted.
func (source *Source) LocationFromPos(bytePos uint) SourceLocation {
	if bytePos > source.Body().Size() {
		panic("illegal byte position value")
	}
	return SourceLocation(bytePos + 1)
}

// PosFromLocation is the inverse of LocationFromPos.
func (source *Source) PosFromLocation(location SourceLocation) uint {
	if !location.IsValid() || uint(location) > (source.Body().Size()+1) {
		panic("illegal location value")
	}
	return uint(location) - 1
}

func (source *Source) lineBreaks() []lineBreak {
	source.breaksOnce.Do(func() {
		body := source.Body()
		size := body.Size()
		for i := uint(0); i < size; i++ {
			switch body[i] {
			case '\r':
				if i+1 < size && body[i+1] == '\n' {
					source.breaks = append(source.breaks, lineBreak{i, i + 2})
					i++
				} else {
					source.breaks = append(source.breaks, lineBreak{i, i + 1})
				}
			case '\n':
				source.breaks = append(source.breaks, lineBreak{i, i + 1})
			}
		}
	})
	return source.breaks
}

// LocationInfoOf returns the line and column of loc. Columns count bytes. The "\n" of a "\r\n"
// pair reports column 0 of the following line.
func (source *Source) LocationInfoOf(loc SourceLocation) SourceLocationInfo {
	// NoSourceLocation (e.g., the <SOF> token) has no line.
	if !loc.IsValid() {
		return SourceLocationInfo{
			Name: source.Name(),
		}
	}

	position := uint(loc) - 1
	if size := source.Body().Size(); position > size {
		position = size
	}

	breaks := source.lineBreaks()
	// Number of line breaks that start before position
	n := sort.Search(len(breaks), func(i int) bool {
		return breaks[i].start >= position
	})

	column := position + 1
	if n > 0 {
		column = position + 1 - breaks[n-1].end
	}

	return SourceLocationInfo{
		Name:   source.Name(),
		Line:   source.LineOffset() + uint(n) + 1,
		Column: source.ColumnOffset() + column,
	}
}

// LineText returns the text of the given 1-based line without its terminator. Line offsets are not
// applied.
func (source *Source) LineText(line uint) (string, bool) {
	breaks := source.lineBreaks()
	if line == 0 || line > uint(len(breaks))+1 {
		return "", false
	}

	var start uint
	if line > 1 {
		start = breaks[line-2].end
	}
	end := source.Body().Size()
	if line <= uint(len(breaks)) {
		end = breaks[line-1].start
	}
	return string(source.Body()[start:end]), true
}
