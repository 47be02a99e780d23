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

package gqlfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/botobag/gqldoc/graphql"
	"github.com/botobag/gqldoc/graphql/token"

	jsoniter "github.com/json-iterator/go"
)

// Errors returned by Formatter.Finish
var (
	ErrFormatting   = errors.New("some documents could not be formatted")
	ErrNotFormatted = errors.New("some documents are not formatted")
)

// StdinName names standard input in arguments and messages.
const StdinName = "-"

// Formatter formats a sequence of files and accumulates their failures.
type Formatter struct {
	Settings Settings

	// Rewrite files in place instead of printing the result.
	Write bool

	// Print a diff for every file that is not formatted instead of the result.
	Check bool

	// Report errors as a JSON array of GraphQL errors when Finish is called.
	JSON bool

	// Color diffs
	Color bool

	Stdin  io.Reader
	Out    io.Writer
	ErrOut io.Writer

	errs      graphql.Errors
	failed    bool
	differs   bool
}

// FormatFile formats the file at path. StdinName reads from Stdin.
func (f *Formatter) FormatFile(path string) {
	var (
		src []byte
		err error
	)
	if path == StdinName {
		src, err = io.ReadAll(f.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		f.report(path, nil, err)
		return
	}
	f.FormatSource(path, src)
}

// FormatSource formats src read from path.
func (f *Formatter) FormatSource(path string, src []byte) {
	formatted, err := Format(path, src, f.Settings)
	if err != nil {
		f.report(path, src, err)
		return
	}

	switch {
	case f.Check:
		if diff := Diff(path, string(src), formatted, f.Color); len(diff) > 0 {
			f.differs = true
			io.WriteString(f.Out, diff)
		}

	case f.Write && path != StdinName:
		if formatted == string(src) {
			return
		}
		if err := writeFile(path, formatted); err != nil {
			f.report(path, nil, err)
		}

	default:
		io.WriteString(f.Out, formatted)
	}
}

// Finish flushes errors collected in JSON mode and reports the overall outcome.
func (f *Formatter) Finish() error {
	if f.JSON && f.errs.HaveOccurred() {
		data, err := jsoniter.Marshal(f.errs)
		if err != nil {
			return err
		}
		fmt.Fprintln(f.ErrOut, string(data))
	}

	switch {
	case f.failed:
		return ErrFormatting
	case f.differs:
		return ErrNotFormatted
	}
	return nil
}

func (f *Formatter) report(path string, src []byte, err error) {
	f.failed = true

	var gqlErr *graphql.Error
	isGraphQLError := errors.As(err, &gqlErr)

	if !f.JSON {
		if !isGraphQLError {
			fmt.Fprintf(f.ErrOut, "%s: %s\n", path, err)
			return
		}
		location, ok := gqlErr.Location()
		if !ok {
			fmt.Fprintf(f.ErrOut, "%s: %s\n", path, gqlErr.Message)
			return
		}
		fmt.Fprintf(f.ErrOut, "%s:%d:%d: %s\n", path, location.Line, location.Column, gqlErr.Message)
		io.WriteString(f.ErrOut, snippet(src, location))
		return
	}

	extensions := graphql.ErrorExtensions{"file": path}
	if isGraphQLError {
		for key, value := range gqlErr.Extensions {
			extensions[key] = value
		}
		f.errs.Append(graphql.NewError(gqlErr.Message, gqlErr.Locations, extensions, gqlErr))
		return
	}
	f.errs.Append(graphql.NewError(err.Error(), extensions, err))
}

// snippet quotes the source line of location with a caret under its column.
func snippet(src []byte, location graphql.ErrorLocation) string {
	source := token.NewSource(&token.SourceConfig{
		Body: token.SourceBody(src),
	})
	line, ok := source.LineText(location.Line)
	if !ok || location.Column == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	prefix := line
	if column := int(location.Column) - 1; column < len(prefix) {
		prefix = prefix[:column]
	}
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("^\n")
	return b.String()
}

func writeFile(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}
