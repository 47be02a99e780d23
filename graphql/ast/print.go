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
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Printer writes the canonical form of nodes. The canonical form puts one definition, field or
// selection per line, indents blocks by two spaces and writes arguments and values on a single
// line. Schema and executable documents build their printers on top of it.
type Printer struct {
	strings.Builder
	indentLevel int
}

// BeginBlock writes "{" and increases the indentation for lines in the block.
func (p *Printer) BeginBlock() {
	p.WriteString("{")
	p.indentLevel++
}

// EndBlock restores the indentation and writes "}" on a new line.
func (p *Printer) EndBlock() {
	p.indentLevel--
	p.WriteNewLineWithIndent()
	p.WriteString("}")
}

// BeginIndent increases the indentation without writing anything.
func (p *Printer) BeginIndent() {
	p.indentLevel++
}

// EndIndent decreases the indentation.
func (p *Printer) EndIndent() {
	p.indentLevel--
}

// WriteNewLineWithIndent starts a new line at the current indentation.
func (p *Printer) WriteNewLineWithIndent() {
	p.WriteString("\n")
	p.WriteIndent()
}

// WriteIndent writes the indentation of the current level.
func (p *Printer) WriteIndent() {
	p.WriteString(p.Indentation())
}

// Indentation returns the white spaces of the current level.
func (p *Printer) Indentation() string {
	return strings.Repeat(" ", 2*p.indentLevel)
}

// PrintType prints a type reference.
func (p *Printer) PrintType(t Type) {
	record := t.Record()
	switch record.Kind {
	case TypeKindNamed:
		p.WriteString(t.store.LookupString(record.Name))
	case TypeKindList:
		p.WriteString("[")
		p.PrintType(Type{record.OfType, t.store})
		p.WriteString("]")
	case TypeKindNonNull:
		p.PrintType(Type{record.OfType, t.store})
		p.WriteString("!")
	}
}

// PrintValue prints an input value on a single line except for block strings.
func (p *Printer) PrintValue(v Value) {
	record := v.Record()
	switch record.Kind {
	case ValueKindVariable:
		p.WriteString("$")
		p.WriteString(v.store.LookupString(record.Text))

	case ValueKindInt, ValueKindFloat, ValueKindEnum:
		p.WriteString(v.store.LookupString(record.Text))

	case ValueKindString:
		p.PrintStringLiteral(record.String.Read(v.store), "  ")

	case ValueKindBoolean:
		if record.Boolean {
			p.WriteString("true")
		} else {
			p.WriteString("false")
		}

	case ValueKindNull:
		p.WriteString("null")

	case ValueKindList:
		p.WriteString("[")
		for id := record.List.Start; id < record.List.End; id++ {
			if id != record.List.Start {
				p.WriteString(", ")
			}
			p.PrintValue(Value{id, v.store})
		}
		p.WriteString("]")

	case ValueKindObject:
		p.WriteString("{")
		for id := record.Object.Start; id < record.Object.End; id++ {
			if id != record.Object.Start {
				p.WriteString(", ")
			}
			field := ObjectField{id, v.store}
			p.WriteString(field.Name())
			p.WriteString(": ")
			p.PrintValue(field.Value())
		}
		p.WriteString("}")
	}
}

// PrintStringLiteral prints a quoted string with JSON escaping or a block string in its indented
// form. blockIndent is added to the current indentation for lines of a block string.
func (p *Printer) PrintStringLiteral(s StringLiteral, blockIndent string) {
	if s.IsBlock() {
		p.PrintBlockString(s.Value(), blockIndent)
	} else {
		p.WriteString(QuoteString(s.Value()))
	}
}

// PrintBlockString prints value as a block string.
func (p *Printer) PrintBlockString(value string, blockIndent string) {
	var (
		layout      = LayoutBlockString(value)
		indentation = p.Indentation() + blockIndent
	)

	p.WriteString(`"""`)
	if layout.LeadingBreak {
		p.WriteString("\n")
		p.WriteString(indentation)
	}
	for i, line := range layout.Lines {
		if i > 0 {
			p.WriteString("\n")
			if len(line) > 0 {
				p.WriteString(indentation)
			}
		}
		p.WriteString(line)
	}
	if layout.TrailingBreak {
		p.WriteNewLineWithIndent()
	}
	p.WriteString(`"""`)
}

// PrintDirective prints an applied directive.
func (p *Printer) PrintDirective(directive Directive) {
	p.WriteString("@")
	p.WriteString(directive.Name())
	p.PrintArguments(directive.store.directives[directive.id].Arguments, directive.store)
}

// PrintDirectives prints directives in r separated by a space. Each directive is preceded by a
// space so the output can directly follow the directive owner.
func (p *Printer) PrintDirectives(r IDRange[DirectiveID], store *Store) {
	for id := r.Start; id < r.End; id++ {
		p.WriteString(" ")
		p.PrintDirective(Directive{id, store})
	}
}

// PrintArguments prints "(name: value, ...)". Nothing is printed for an empty range.
func (p *Printer) PrintArguments(r IDRange[ArgumentID], store *Store) {
	if r.IsEmpty() {
		return
	}
	p.WriteString("(")
	for id := r.Start; id < r.End; id++ {
		if id != r.Start {
			p.WriteString(", ")
		}
		arg := Argument{id, store}
		p.WriteString(arg.Name())
		p.WriteString(": ")
		p.PrintValue(arg.Value())
	}
	p.WriteString(")")
}

// BlockStringLayout describes how a block string value is laid out between its triple quotes.
type BlockStringLayout struct {
	// Lines of the value with `"""` escaped
	Lines []string

	// Whether to break the line after the opening quotes
	LeadingBreak bool

	// Whether to break the line before the closing quotes
	TrailingBreak bool
}

// LayoutBlockString computes the layout of value in the indented block form which adds a leading
// and a trailing line break. A single-line value which starts with white space doesn't get the
// leading break because it would be stripped as indentation. A value ending with a quote or a
// backslash always gets the trailing break so it doesn't merge with the closing quotes.
func LayoutBlockString(value string) BlockStringLayout {
	var (
		isSingleLine     = !strings.ContainsRune(value, '\n')
		hasLeadingSpace  = len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
		hasTrailingQuote = len(value) > 0 && (value[len(value)-1] == '"' || value[len(value)-1] == '\\')
		multipleLines    = !isSingleLine || hasTrailingQuote
	)

	return BlockStringLayout{
		Lines:         strings.Split(strings.Replace(value, `"""`, `\"""`, -1), "\n"),
		LeadingBreak:  multipleLines && !(isSingleLine && hasLeadingSpace),
		TrailingBreak: multipleLines,
	}
}

var quoteConfig = jsoniter.Config{
	EscapeHTML: false,
}.Froze()

// QuoteString returns s as a quoted GraphQL string. GraphQL string escapes are a superset of JSON's
// so JSON encoding is used.
func QuoteString(s string) string {
	stream := quoteConfig.BorrowStream(nil)
	defer quoteConfig.ReturnStream(stream)
	stream.WriteString(s)
	return string(stream.Buffer())
}
