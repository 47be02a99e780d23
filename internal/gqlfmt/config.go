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
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the configuration file looked up in the working directory when no -config is
// given.
const DefaultConfigFile = ".gqlfmt.yaml"

// Config is the content of a configuration file. Command line flags take precedence.
type Config struct {
	Width      int  `yaml:"width"`
	Canonical  bool `yaml:"canonical"`
	Executable bool `yaml:"executable"`
}

// LoadConfig reads the configuration from path. A missing file yields the zero Config unless
// required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if config.Width < 0 {
		return config, fmt.Errorf("%s: width must not be negative, got %d", path, config.Width)
	}
	return config, nil
}

// Settings resolves the formatting settings from flags, falling back to config.
func (config Config) Settings(flags Settings) Settings {
	if flags.Width == 0 {
		flags.Width = config.Width
	}
	flags.Canonical = flags.Canonical || config.Canonical
	flags.Executable = flags.Executable || config.Executable
	return flags
}
