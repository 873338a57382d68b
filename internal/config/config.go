// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the caltime command from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gonih.org/datetime"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Sources of the ISO calendar.
const (
	FormatterPure = "pure" // computed by the datetime package
	FormatterHost = "host" // delegated to the host strftime formatter
)

// Config holds the settings of the caltime command.
type Config struct {
	// Separator is put between date and time in ISO output. It must be a
	// single byte.
	Separator string `yaml:"separator"`

	// Layout, if set, replaces ISO output. It uses the layout language of
	// datetime.Instant.Format.
	Layout string `yaml:"layout,omitempty"`

	// Format is the output format, "text" or "json".
	Format string `yaml:"format"`

	// Formatter selects how ISO weeks are computed, "pure" or "host".
	Formatter string `yaml:"formatter"`

	// Now, if set, fixes the current Instant.
	Now *datetime.Instant `yaml:"now,omitempty"`

	// Offset is added to the current Instant, e.g. "-1d" for yesterday.
	Offset datetime.Duration `yaml:"offset,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Separator: "T",
		Format:    FormatText,
		Formatter: FormatterPure,
	}
}

// Load reads the YAML file at path. Keys missing from the file keep their
// default value. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse is like Load, but reads the YAML document from data.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Validate checks that all settings have a supported value.
func (c *Config) Validate() error {
	if len(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single byte, got %q", c.Separator)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	switch c.Formatter {
	case FormatterPure, FormatterHost:
	default:
		return fmt.Errorf("formatter must be %q or %q, got %q", FormatterPure, FormatterHost, c.Formatter)
	}
	if c.Now != nil && !c.Now.IsValid() {
		return fmt.Errorf("now is not a valid instant: %v", c.Now)
	}
	return nil
}

// Sep returns Separator as a byte.
func (c *Config) Sep() byte {
	return c.Separator[0]
}

// Marshal returns c as a YAML document.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
