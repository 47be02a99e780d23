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
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the line differences between before and after in unified style without hunk
// headers. It returns an empty string when they are equal.
func Diff(name string, before, after string, colored bool) string {
	if before == after {
		return ""
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		out     strings.Builder
		deleted = painter(colored, color.FgRed)
		added   = painter(colored, color.FgGreen)
		header  = painter(colored, color.Bold)
	)
	out.WriteString(header("--- " + name))
	out.WriteByte('\n')
	out.WriteString(header("+++ " + name + " (formatted)"))
	out.WriteByte('\n')
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				out.WriteString(deleted("-" + line))
			case diffpatch.DiffInsert:
				out.WriteString(added("+" + line))
			case diffpatch.DiffEqual:
				out.WriteString(" " + line)
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// splitLines splits s into lines without their terminators.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func painter(colored bool, attr color.Attribute) func(string) string {
	if !colored {
		return func(s string) string { return s }
	}
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string {
		return c.Sprint(s)
	}
}
