// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
	"gonih.org/datetime/internal/config"
)

// InfoResult is the JSON payload of the info command.
type InfoResult struct {
	Instant     datetime.Instant `json:"instant"`
	Weekday     string           `json:"weekday"`
	YearDay     int              `json:"year_day"`
	ISOYear     int              `json:"iso_year"`
	ISOWeek     int              `json:"iso_week"`
	ISOWeekday  int              `json:"iso_weekday"`
	Ordinal     float64          `json:"ordinal"`
	LeapYear    bool             `json:"leap_year"`
	DaysInMonth int              `json:"days_in_month"`
	DaysInYear  int              `json:"days_in_year"`
	Unix        int64            `json:"unix"`
}

// ValidResult is the JSON payload of the valid command.
type ValidResult struct {
	Valid      bool             `json:"valid"`
	Instant    datetime.Instant `json:"instant"`
	Normalized datetime.Instant `json:"normalized"`
}

// StrftimeResult is the JSON payload of the strftime command.
type StrftimeResult struct {
	Text string `json:"text"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <instant>",
		Short: "Print calendar facts about an instant",
		Long: `Print calendar facts about an instant: weekday, day of the year,
ISO week, ordinal day number and seconds since the Unix epoch.

With "formatter: host" in the config file, the ISO week is computed by the
host strftime formatter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, cmd, args[0])
		},
	}
}

func runInfo(opts *RootOptions, cmd *cobra.Command, arg string) error {
	f := opts.formatter(cmd)
	t, err := opts.parseInstant(arg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeArgument, err)
	}

	r := InfoResult{
		Instant:     t,
		Weekday:     t.WeekdayLong(),
		YearDay:     t.YearDay(),
		Ordinal:     t.Ordinal(),
		LeapYear:    datetime.IsLeapYear(t.Year()),
		DaysInMonth: datetime.DaysInMonth(t.Month(), t.Year()),
		DaysInYear:  datetime.DaysInYear(t.Year()),
	}
	if opts.Config.Formatter == config.FormatterHost {
		r.ISOYear, r.ISOWeek, r.ISOWeekday, err = t.ISOCalendarVia(datetime.HostFormatter)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeHost, err)
		}
	} else {
		r.ISOYear, r.ISOWeek, r.ISOWeekday = t.ISOCalendar()
	}
	if r.Unix, err = t.SecondsSinceEpoch(); err != nil {
		return f.Fail(ExitCommandError, ErrCodeHost, err)
	}
	opts.Logger.Debug("info", "instant", t, "formatter", opts.Config.Formatter)

	var b strings.Builder
	for _, l := range [...]struct {
		key string
		val any
	}{
		{"instant", opts.format(t)},
		{"weekday", r.Weekday},
		{"year day", r.YearDay},
		{"iso week", fmt.Sprintf("%04d-W%02d-%d", r.ISOYear, r.ISOWeek, r.ISOWeekday)},
		{"ordinal", strconv.FormatFloat(r.Ordinal, 'f', -1, 64)},
		{"leap year", r.LeapYear},
		{"month days", r.DaysInMonth},
		{"year days", r.DaysInYear},
		{"unix", r.Unix},
	} {
		fmt.Fprintf(&b, "%-11s %v\n", l.key+":", l.val)
	}
	return f.Success(strings.TrimSuffix(b.String(), "\n"), r)
}

// NewValidCommand creates the valid command.
func NewValidCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "valid <year> <month> <day> [<hour> <minute> <second> <millisecond>]",
		Short: "Check whether calendar fields form a valid instant",
		Long: `Check whether calendar fields form a valid instant.

Prints the canonical form the fields normalize to, and exits with status 1
if they are not valid.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 && len(args) != 7 {
				return fmt.Errorf("accepts 3 or 7 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValid(rootOpts, cmd, args)
		},
	}
}

func runValid(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)
	var v [7]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeArgument, err)
		}
		v[i] = n
	}
	t := datetime.Of(v[0], time.Month(v[1]), v[2], v[3], v[4], v[5], v[6])
	r := ValidResult{Valid: t.IsValid(), Instant: t, Normalized: t.Normalize()}

	text := "valid"
	if !r.Valid {
		text = "invalid, normalizes to " + opts.format(r.Normalized)
	}
	if err := f.Success(text, r); err != nil {
		return err
	}
	if !r.Valid {
		return &ExitError{Code: ExitFailure, Message: "invalid instant " + t.String()}
	}
	return nil
}

// NewStrftimeCommand creates the strftime command.
func NewStrftimeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strftime <instant> <pattern>",
		Short: "Format an instant with the host strftime formatter",
		Long: `Format an instant with the host strftime formatter.

Supported directives are %Y %m %d %H %M %S %j %a %A %b %B %u %w %G %V %s and
%%. Milliseconds are not available.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			t, err := rootOpts.parseInstant(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeArgument, err)
			}
			s, err := t.Strftime(args[1])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeHost, err)
			}
			return f.Success(s, StrftimeResult{s})
		},
	}
}
