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

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// Flags are the command line options of gqlfmt.
type Flags struct {
	Write      bool   `cli:"name=w desc='write the result to the source file instead of stdout'"`
	Check      bool   `cli:"name=check desc='print diffs of unformatted files and exit with 1'"`
	Width      int    `cli:"name=width desc='target line width (default 80)'"`
	Canonical  bool   `cli:"name=canonical desc='print the canonical form instead of the pretty layout'"`
	Executable bool   `cli:"name=executable aliases=e desc='parse executable documents instead of SDL'"`
	JSON       bool   `cli:"name=json desc='report errors as a JSON array of GraphQL errors'"`
	Color      bool   `cli:"name=color desc='color diffs (default when stdout is a terminal)'"`
	Config     string `cli:"name=config desc='configuration file (default .gqlfmt.yaml)'"`

	Command *cli.Command
}

// Command returns the gqlfmt command.
func Command() *cli.Command {
	flags := &Flags{}
	opts, err := cli.StructOpts(flags)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&flags.Command, "gqlfmt").
		WithSynopsis("gqlfmt [opts] [files]").
		WithDescription("gqlfmt formats GraphQL documents. Without files it reads standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(flags, cc, args)
		})
}

func run(flags *Flags, cc *cli.Context, args []string) error {
	args, err := flags.Command.Parse(cc, args)
	if err != nil {
		flags.Command.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}
	if flags.Write && flags.Check {
		return fmt.Errorf("%w: -w and -check are mutually exclusive", cli.ErrUsage)
	}
	if flags.Width < 0 {
		return fmt.Errorf("%w: -width must not be negative", cli.ErrUsage)
	}

	configPath, required := flags.Config, true
	if len(configPath) == 0 {
		configPath, required = DefaultConfigFile, false
	}
	config, err := LoadConfig(configPath, required)
	if err != nil {
		return err
	}

	f := &Formatter{
		Settings: config.Settings(Settings{
			Width:      flags.Width,
			Canonical:  flags.Canonical,
			Executable: flags.Executable,
		}),
		Write:  flags.Write,
		Check:  flags.Check,
		JSON:   flags.JSON,
		Color:  flags.Color || isTerminal(cc.Out),
		Stdin:  os.Stdin,
		Out:    cc.Out,
		ErrOut: os.Stderr,
	}

	if len(args) == 0 {
		args = []string{StdinName}
	}
	for _, arg := range args {
		f.FormatFile(arg)
	}

	if err := f.Finish(); err != nil {
		if errors.Is(err, ErrFormatting) || errors.Is(err, ErrNotFormatted) {
			return cli.ExitCodeErr(1)
		}
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}
