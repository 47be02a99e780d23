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

package gqlfmt_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/gqldoc/internal/gqlfmt"
	"github.com/botobag/gqldoc/internal/testutil"

	jsoniter "github.com/json-iterator/go"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gqlfmt")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	writeConfig := func(content string) string {
		path := filepath.Join(dir, gqlfmt.DefaultConfigFile)
		Expect(os.WriteFile(path, []byte(content), 0644)).Should(Succeed())
		return path
	}

	It("treats a missing optional file as empty", func() {
		config, err := gqlfmt.LoadConfig(filepath.Join(dir, "missing.yaml"), false)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(Equal(gqlfmt.Config{}))
	})

	It("fails on a missing required file", func() {
		_, err := gqlfmt.LoadConfig(filepath.Join(dir, "missing.yaml"), true)
		Expect(err).Should(HaveOccurred())
	})

	It("loads settings", func() {
		config, err := gqlfmt.LoadConfig(writeConfig("width: 40\ncanonical: true\n"), true)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(config).Should(Equal(gqlfmt.Config{Width: 40, Canonical: true}))
	})

	It("rejects negative widths", func() {
		_, err := gqlfmt.LoadConfig(writeConfig("width: -1\n"), true)
		Expect(err).Should(MatchError(ContainSubstring("width must not be negative")))
	})

	It("lets flags take precedence", func() {
		config := gqlfmt.Config{Width: 40, Executable: true}
		Expect(config.Settings(gqlfmt.Settings{})).Should(Equal(gqlfmt.Settings{
			Width:      40,
			Executable: true,
		}))
		Expect(config.Settings(gqlfmt.Settings{Width: 60, Canonical: true})).Should(Equal(gqlfmt.Settings{
			Width:      60,
			Canonical:  true,
			Executable: true,
		}))
	})
})

var _ = Describe("Format", func() {
	It("pretty prints type system documents", func() {
		Expect(gqlfmt.Format("a.graphql", []byte("type A{a:Int}"), gqlfmt.Settings{})).
			Should(Equal("type A {\n  a: Int\n}\n"))
	})

	It("pretty prints executable documents", func() {
		Expect(gqlfmt.Format("q.graphql", []byte("{a(x:[1,2])}"), gqlfmt.Settings{Executable: true})).
			Should(Equal("{\n  a(x: [1, 2])\n}\n"))
	})

	It("prints the canonical form", func() {
		Expect(gqlfmt.Format("q.graphql", []byte("query Q{a}"), gqlfmt.Settings{
			Executable: true,
			Canonical:  true,
		})).Should(Equal("query Q {\n  a\n}\n"))
	})

	It("respects the width", func() {
		formatted, err := gqlfmt.Format("q.graphql", []byte("{a(first:1,second:2)}"), gqlfmt.Settings{
			Executable: true,
			Width:      10,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(formatted).Should(Equal("{\n  a(\n    first: 1,\n    second: 2,\n  )\n}\n"))
	})

	It("reports syntax errors", func() {
		_, err := gqlfmt.Format("a.graphql", []byte("type"), gqlfmt.Settings{})
		Expect(err).Should(MatchError(ContainSubstring("Syntax Error")))
	})
})

var _ = Describe("Diff", func() {
	It("returns nothing for equal inputs", func() {
		Expect(gqlfmt.Diff("f", "a\n", "a\n", false)).Should(BeEmpty())
	})

	It("prints changed lines", func() {
		Expect(gqlfmt.Diff("f", "a\nb\nc\n", "a\nB\nc\n", false)).Should(Equal(
			"--- f\n+++ f (formatted)\n a\n-b\n+B\n c\n"))
	})

	It("colors changed lines", func() {
		Expect(gqlfmt.Diff("f", "a\n", "b\n", true)).Should(ContainSubstring("\x1b["))
	})
})

var _ = Describe("Formatter", func() {
	var (
		out    *bytes.Buffer
		errOut *bytes.Buffer
		dir    string
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		errOut = &bytes.Buffer{}
		var err error
		dir, err = os.MkdirTemp("", "gqlfmt")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	newFormatter := func() *gqlfmt.Formatter {
		return &gqlfmt.Formatter{
			Stdin:  strings.NewReader("scalar   S"),
			Out:    out,
			ErrOut: errOut,
		}
	}

	It("formats standard input", func() {
		f := newFormatter()
		f.FormatFile(gqlfmt.StdinName)
		Expect(f.Finish()).Should(Succeed())
		Expect(out.String()).Should(Equal("scalar S\n"))
	})

	It("reports unformatted files in check mode", func() {
		f := newFormatter()
		f.Check = true
		f.FormatSource("ok.graphql", []byte("scalar S\n"))
		Expect(out.String()).Should(BeEmpty())

		f.FormatSource("bad.graphql", []byte("scalar   S\n"))
		Expect(out.String()).Should(ContainSubstring("-scalar   S\n+scalar S\n"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrNotFormatted))
	})

	It("rewrites files in place", func() {
		path := filepath.Join(dir, "schema.graphql")
		Expect(os.WriteFile(path, []byte("type A{a:Int}"), 0600)).Should(Succeed())

		f := newFormatter()
		f.Write = true
		f.FormatFile(path)
		Expect(f.Finish()).Should(Succeed())
		Expect(out.String()).Should(BeEmpty())

		content, err := os.ReadFile(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(content)).Should(Equal("type A {\n  a: Int\n}\n"))

		info, err := os.Stat(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(info.Mode().Perm()).Should(Equal(os.FileMode(0600)))
	})

	It("reports errors as text", func() {
		f := newFormatter()
		f.FormatSource("bad.graphql", []byte("type"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrFormatting))
		Expect(errOut.String()).Should(Equal(
			"bad.graphql:1:5: Syntax Error: Expected Name, found <EOF>\n" +
				"type\n" +
				"    ^\n"))
	})

	It("points at the error in its line", func() {
		f := newFormatter()
		f.FormatSource("bad.graphql", []byte("type A {\n\tb: [Int\n}"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrFormatting))
		Expect(errOut.String()).Should(Equal(
			"bad.graphql:3:1: Syntax Error: Expected ], found }\n" +
				"}\n" +
				"^\n"))
	})

	It("reports missing files", func() {
		f := newFormatter()
		f.FormatFile(filepath.Join(dir, "missing.graphql"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrFormatting))
		Expect(errOut.String()).Should(HavePrefix(filepath.Join(dir, "missing.graphql") + ": "))
	})

	It("reports errors as JSON", func() {
		f := newFormatter()
		f.JSON = true
		f.FormatSource("bad.graphql", []byte("type"))
		f.FormatFile(filepath.Join(dir, "missing.graphql"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrFormatting))

		var errs []map[string]interface{}
		Expect(jsoniter.Unmarshal(errOut.Bytes(), &errs)).Should(Succeed())
		Expect(errs).Should(HaveLen(2))

		Expect(errs[0]["message"]).Should(HavePrefix("Syntax Error"))
		Expect(errs[0]).Should(HaveKey("locations"))
		Expect(errs[0]["extensions"]).Should(HaveKeyWithValue("file", "bad.graphql"))

		Expect(errs[1]["extensions"]).Should(HaveKeyWithValue("file", filepath.Join(dir, "missing.graphql")))
	})

	It("serializes syntax errors as GraphQL errors", func() {
		f := newFormatter()
		f.JSON = true
		f.FormatSource("bad.graphql", []byte("type"))
		Expect(f.Finish()).Should(MatchError(gqlfmt.ErrFormatting))

		Expect(jsoniter.RawMessage(bytes.TrimSpace(errOut.Bytes()))).Should(testutil.SerializeToJSONAs([]map[string]interface{}{
			{
				"message": "Syntax Error: Expected Name, found <EOF>",
				"locations": []map[string]interface{}{
					{"line": 1, "column": 5},
				},
				"extensions": map[string]interface{}{
					"file": "bad.graphql",
				},
			},
		}))
	})
})
