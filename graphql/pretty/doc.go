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

// Package pretty lays out GraphQL documents within a target line width.
//
// Layouts are described with a small document algebra in the style of Wadler's "A prettier
// printer": Text, Line, SoftLine, HardLine, Nest, Group, FlatAlt and Concat. Render chooses for
// every Group whether it fits on the rest of the current line (flat) or must be broken.
package pretty

import (
	"strings"
	"unicode/utf8"
)

// Doc is a layout document. The zero value is the empty document.
type Doc struct {
	kind     docKind
	text     string
	indent   int
	children []Doc
}

type docKind uint8

const (
	kindEmpty docKind = iota
	kindText
	kindHardLine
	kindConcat
	kindNest
	kindGroup
	// children[0] is used in break mode and children[1] in flat mode.
	kindFlatAlt
)

// Empty is the document that renders nothing.
func Empty() Doc {
	return Doc{}
}

// Text is a string without line breaks.
func Text(s string) Doc {
	if len(s) == 0 {
		return Doc{}
	}
	return Doc{kind: kindText, text: s}
}

// HardLine always breaks the line. A group containing a HardLine never fits.
func HardLine() Doc {
	return Doc{kind: kindHardLine}
}

// FlatAlt renders broken when its enclosing group breaks and flat otherwise.
func FlatAlt(broken, flat Doc) Doc {
	return Doc{kind: kindFlatAlt, children: []Doc{broken, flat}}
}

// Line is a line break which becomes a space when the group fits.
func Line() Doc {
	return FlatAlt(HardLine(), Text(" "))
}

// SoftLine is a line break which disappears when the group fits.
func SoftLine() Doc {
	return FlatAlt(HardLine(), Empty())
}

// Concat renders docs one after another.
func Concat(docs ...Doc) Doc {
	children := make([]Doc, 0, len(docs))
	for _, doc := range docs {
		if doc.kind != kindEmpty {
			children = append(children, doc)
		}
	}
	switch len(children) {
	case 0:
		return Doc{}
	case 1:
		return children[0]
	}
	return Doc{kind: kindConcat, children: children}
}

// Nest increases the indentation of lines broken within doc by indent.
func Nest(indent int, doc Doc) Doc {
	if doc.kind == kindEmpty {
		return doc
	}
	return Doc{kind: kindNest, indent: indent, children: []Doc{doc}}
}

// Group renders doc flat when it fits on the rest of the line and broken otherwise.
func Group(doc Doc) Doc {
	if doc.kind == kindEmpty {
		return doc
	}
	return Doc{kind: kindGroup, children: []Doc{doc}}
}

// Join concatenates docs with separator between each pair.
func Join(separator Doc, docs []Doc) Doc {
	result := make([]Doc, 0, 2*len(docs))
	for i, doc := range docs {
		if i > 0 {
			result = append(result, separator)
		}
		result = append(result, doc)
	}
	return Concat(result...)
}

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type command struct {
	indent int
	mode   mode
	doc    Doc
}

// Render lays out doc within width columns. Lines never carry trailing white space: indentation is
// only written before text.
func Render(doc Doc, width int) string {
	var (
		b      strings.Builder
		column int
		// Indentation to write before the next text on a fresh line
		pendingIndent = -1
		stack         = []command{{0, modeBreak, doc}}
	)

	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cmd.doc.kind {
		case kindText:
			if pendingIndent >= 0 {
				b.WriteString(strings.Repeat(" ", pendingIndent))
				column = pendingIndent
				pendingIndent = -1
			}
			b.WriteString(cmd.doc.text)
			column += utf8.RuneCountInString(cmd.doc.text)

		case kindHardLine:
			b.WriteByte('\n')
			column = 0
			pendingIndent = cmd.indent

		case kindConcat:
			for i := len(cmd.doc.children) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[i]})
			}

		case kindNest:
			stack = append(stack, command{cmd.indent + cmd.doc.indent, cmd.mode, cmd.doc.children[0]})

		case kindGroup:
			next := command{cmd.indent, modeFlat, cmd.doc.children[0]}
			if cmd.mode == modeBreak {
				start := column
				if pendingIndent >= 0 {
					start = pendingIndent
				}
				if !fits(width-start, next, stack) {
					next.mode = modeBreak
				}
			}
			stack = append(stack, next)

		case kindFlatAlt:
			if cmd.mode == modeFlat {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[1]})
			} else {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[0]})
			}
		}
	}

	return b.String()
}

// fits reports whether next rendered flat, followed by rest up to its first line break, takes no
// more than width columns.
func fits(width int, next command, rest []command) bool {
	stack := []command{next}
	for width >= 0 {
		if len(stack) == 0 {
			if len(rest) == 0 {
				return true
			}
			stack = append(stack, rest[len(rest)-1])
			rest = rest[:len(rest)-1]
		}

		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cmd.doc.kind {
		case kindText:
			width -= utf8.RuneCountInString(cmd.doc.text)

		case kindHardLine:
			// A forced break inside the candidate group makes it impossible to be flat. Elsewhere it
			// ends the line being measured.
			return cmd.mode == modeBreak

		case kindConcat:
			for i := len(cmd.doc.children) - 1; i >= 0; i-- {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[i]})
			}

		case kindNest:
			stack = append(stack, command{cmd.indent + cmd.doc.indent, cmd.mode, cmd.doc.children[0]})

		case kindGroup:
			stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[0]})

		case kindFlatAlt:
			if cmd.mode == modeFlat {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[1]})
			} else {
				stack = append(stack, command{cmd.indent, cmd.mode, cmd.doc.children[0]})
			}
		}
	}
	return false
}
