// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
)

// InstantResult is the JSON payload of commands printing an Instant.
type InstantResult struct {
	Instant datetime.Instant `json:"instant"`
}

// DiffResult is the JSON payload of the diff command.
type DiffResult struct {
	Duration     datetime.Duration `json:"duration"`
	TotalSeconds float64           `json:"total_seconds"`
}

// OrdinalResult is the JSON payload of the ordinal command.
type OrdinalResult struct {
	Ordinal float64 `json:"ordinal"`
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current local date and time",
		Long: `Print the current local date and time.

The config keys "now" and "offset" fix the current time or shift it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			t, err := rootOpts.now()
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeHost, err)
			}
			return f.Success(rootOpts.format(t), InstantResult{t})
		},
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <instant> <duration>",
		Short: "Add a duration to an instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(rootOpts, cmd, args, datetime.Instant.Add)
		},
	}
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <instant> <duration>",
		Short: "Subtract a duration from an instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(rootOpts, cmd, args, datetime.Instant.SubDuration)
		},
	}
}

func runShift(opts *RootOptions, cmd *cobra.Command, args []string, shift func(datetime.Instant, datetime.Duration) datetime.Instant) error {
	f := opts.formatter(cmd)
	t, err := opts.parseInstant(args[0])
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgument, err)
	}
	d, err := datetime.ParseDuration(args[1])
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgument, err)
	}
	r := shift(t, d)
	opts.Logger.Debug("shifted", "instant", t, "duration", d, "result", r)
	return f.Success(opts.format(r), InstantResult{r})
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the duration a-b",
		Long: `Print the duration a-b.

All fields of the duration have the same sign, which is negative if a is
before b. Days are not carried into months or years.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			a, err := rootOpts.parseInstant(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgument, err)
			}
			b, err := rootOpts.parseInstant(args[1])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgument, err)
			}
			d := a.Sub(b)
			text := fmt.Sprintf("%v (%ss)", d, strconv.FormatFloat(d.TotalSeconds(), 'f', -1, 64))
			return f.Success(text, DiffResult{d, d.TotalSeconds()})
		},
	}
}

// NewOrdinalCommand creates the ordinal command.
func NewOrdinalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <instant>",
		Short: "Print the ordinal day number of an instant",
		Long: `Print the ordinal day number of an instant.

Day 1 is 0001-01-01. The time of day is the fractional part.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			t, err := rootOpts.parseInstant(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgument, err)
			}
			x := t.Ordinal()
			return f.Success(strconv.FormatFloat(x, 'f', -1, 64), OrdinalResult{x})
		},
	}
}

// NewFromOrdinalCommand creates the from-ordinal command.
func NewFromOrdinalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "from-ordinal <ordinal>",
		Short: "Print the instant of an ordinal day number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgument, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return f.Fail(ExitCommandError, ErrCodeArgument, fmt.Errorf("ordinal %v is not finite", x))
			}
			t := datetime.FromOrdinal(x)
			if !t.IsValid() {
				return f.Fail(ExitFailure, ErrCodeInvalid, fmt.Errorf("ordinal %v is before 0001-01-01", x))
			}
			return f.Success(rootOpts.format(t), InstantResult{t})
		},
	}
}
