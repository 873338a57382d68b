// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the caltime command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
	"gonih.org/datetime/internal/config"
)

// RootOptions holds global flags for all commands, and the state derived
// from them before a command runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Separator  string
	Layout     string

	Config *config.Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command of caltime.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "caltime",
		Short: "caltime - calendar arithmetic",
		Long: `Calendar arithmetic on date-times with millisecond resolution.

Instants are written as 2006-01-02T15:04:05.000, 2006-01-02 15:04:05 or
2006-01-02. Durations are written like 1d-2h3m4s5ms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Separator, "sep", "T", "separator between date and time")
	cmd.PersistentFlags().StringVar(&opts.Layout, "layout", "", "output layout, e.g. \"Mon Jan _2 15:04:05 2006\"")

	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewOrdinalCommand(opts))
	cmd.AddCommand(NewFromOrdinalCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewValidCommand(opts))
	cmd.AddCommand(NewStrftimeCommand(opts))

	return cmd
}

// setup loads the config file, applies flags on top of it and creates the
// logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Logger = newLogger(cmd.ErrOrStderr(), o.Verbose)

	c := config.Default()
	if o.ConfigPath != "" {
		var err error
		if c, err = config.Load(o.ConfigPath); err != nil {
			f := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
			return f.Fail(ExitCommandError, ErrCodeConfig, err)
		}
		o.Logger.Debug("config loaded", "path", o.ConfigPath)
	}

	flags := cmd.Flags()
	if flags.Changed("format") || o.ConfigPath == "" {
		c.Format = o.Format
	}
	if flags.Changed("sep") {
		c.Separator = o.Separator
	}
	if flags.Changed("layout") {
		c.Layout = o.Layout
	}
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if err := c.Validate(); err != nil {
		f := &OutputFormatter{Format: c.Format, Writer: cmd.OutOrStdout()}
		return f.Fail(ExitCommandError, ErrCodeConfig, err)
	}
	o.Config = c
	return nil
}

// newLogger returns a logger writing to w, at debug level if verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// formatter returns the OutputFormatter of cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Config.Format, Writer: cmd.OutOrStdout()}
}

// format returns t as configured, with the layout or in ISO form.
func (o *RootOptions) format(t datetime.Instant) string {
	if o.Config.Layout != "" {
		return t.Format(o.Config.Layout)
	}
	return t.ISOFormat(o.Config.Sep())
}

// now returns the current Instant, honoring the config file.
func (o *RootOptions) now() (datetime.Instant, error) {
	var (
		t   datetime.Instant
		err error
	)
	if o.Config.Now != nil {
		t = *o.Config.Now
	} else if t, err = datetime.Now(); err != nil {
		return datetime.Instant{}, err
	}
	return t.Add(o.Config.Offset), nil
}

// layouts are tried in order to parse an Instant argument.
var layouts = []string{
	datetime.ISO8601,
	datetime.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	datetime.DateOnly,
}

// parseInstant parses an Instant argument. "now" is the current Instant.
func (o *RootOptions) parseInstant(s string) (datetime.Instant, error) {
	if s == "now" {
		return o.now()
	}
	var first error
	for _, l := range layouts {
		t, err := datetime.Parse(l, s)
		if err == nil {
			o.Logger.Debug("parsed instant", "value", s, "layout", l, "instant", t)
			return t, nil
		}
		if first == nil {
			first = err
		}
	}
	return datetime.Instant{}, first
}
