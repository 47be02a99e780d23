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
	"github.com/botobag/gqldoc/graphql/token"
	"github.com/botobag/gqldoc/iterator"
)

// DirectiveRecord stores an applied directive (e.g., "@include(if: $foo)").
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives
type DirectiveRecord struct {
	Name      StringID
	Arguments IDRange[ArgumentID]
	Span      token.Span
}

// ArgumentRecord stores a named argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Arguments
type ArgumentRecord struct {
	Name  StringID
	Value ValueID
	Span  token.Span
}

// Directive reads an applied directive from a Store.
type Directive struct {
	id    DirectiveID
	store *Store
}

// Read returns the reader for the directive.
func (id DirectiveID) Read(store *Store) Directive {
	return Directive{id, store}
}

// ID returns the ID of the directive.
func (directive Directive) ID() DirectiveID {
	return directive.id
}

// Name returns the directive name without "@".
func (directive Directive) Name() string {
	return directive.store.LookupString(directive.store.directives[directive.id].Name)
}

// Arguments returns the arguments passed to the directive.
func (directive Directive) Arguments() iterator.Iter[ArgumentID, Argument] {
	return ReadRange[Argument](directive.store.directives[directive.id].Arguments, directive.store)
}

// Span returns the source span of the directive.
func (directive Directive) Span() token.Span {
	return directive.store.directives[directive.id].Span
}

// String returns the canonical form of the directive.
func (directive Directive) String() string {
	var p Printer
	p.PrintDirective(directive)
	return p.String()
}

// Argument reads an argument from a Store.
type Argument struct {
	id    ArgumentID
	store *Store
}

// Read returns the reader for the argument.
func (id ArgumentID) Read(store *Store) Argument {
	return Argument{id, store}
}

// ID returns the ID of the argument.
func (arg Argument) ID() ArgumentID {
	return arg.id
}

// Name returns the argument name.
func (arg Argument) Name() string {
	return arg.store.LookupString(arg.store.arguments[arg.id].Name)
}

// Value returns the argument value.
func (arg Argument) Value() Value {
	return Value{arg.store.arguments[arg.id].Value, arg.store}
}

// Span returns the source span of the argument.
func (arg Argument) Span() token.Span {
	return arg.store.arguments[arg.id].Span
}

// Directives returns readers for the directives in r.
func (store *Store) Directives(r IDRange[DirectiveID]) iterator.Iter[DirectiveID, Directive] {
	return ReadRange[Directive](r, store)
}

// Arguments returns readers for the arguments in r.
func (store *Store) Arguments(r IDRange[ArgumentID]) iterator.Iter[ArgumentID, Argument] {
	return ReadRange[Argument](r, store)
}
