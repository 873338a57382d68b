// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strftime is the boundary to a host time formatter in the style of
// C's strftime(3).
//
// A Formatter renders a broken-down time [TM] according to a pattern of
// %-directives. [Host] implements the directives on top of package time;
// other implementations can be swapped in wherever a Formatter is accepted.
// [Scan] reads the numeric output of a Formatter back into integers.
//
// The supported directives are
//
//	%Y  year, at least four digits
//	%m  month, 01-12
//	%d  day of the month, 01-31
//	%H  hour, 00-23
//	%M  minute, 00-59
//	%S  second, 00-59
//	%j  day of the year, 001-366
//	%a  abbreviated English weekday name
//	%A  English weekday name
//	%b  abbreviated English month name
//	%B  English month name
//	%u  ISO 8601 weekday, 1 (Monday) - 7
//	%w  weekday, 0 (Sunday) - 6
//	%G  ISO 8601 week-based year, at least four digits
//	%V  ISO 8601 week number, 01-53
//	%s  seconds since 1970-01-01T00:00:00
//	%%  a literal %
package strftime

import (
	"fmt"
	"strconv"
	"time"
)

// TM is a broken-down time, field for field like C's struct tm.
type TM struct {
	Sec   int // seconds after the minute, 0-59
	Min   int // minutes after the hour, 0-59
	Hour  int // hours since midnight, 0-23
	MDay  int // day of the month, 1-31
	Mon   int // months since January, 0-11
	Year  int // years since 1900
	WDay  int // days since Sunday, 0-6
	YDay  int // days since January 1, 0-365
	IsDST int // daylight saving time flag
}

// A Formatter formats a TM according to a pattern.
type Formatter interface {
	Format(tm TM, pattern string) (string, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(tm TM, pattern string) (string, error)

// Format calls f(tm, pattern).
func (f FormatterFunc) Format(tm TM, pattern string) (string, error) {
	return f(tm, pattern)
}

// Host is a Formatter implemented with package time.
//
// The calendar fields of the TM are interpreted in Location, which is also
// the reference for %s. WDay and YDay are recomputed from the calendar
// fields, as mktime(3) does.
type Host struct {
	// Location is the location of the broken-down time. If nil, UTC is used.
	Location *time.Location
}

// Format implements Formatter.
func (h Host) Format(tm TM, pattern string) (string, error) {
	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(tm.Year+1900, time.Month(tm.Mon+1), tm.MDay, tm.Hour, tm.Min, tm.Sec, 0, loc)

	b := make([]byte, 0, 2*len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b = append(b, c)
			continue
		}
		i++
		if i == len(pattern) {
			return "", &Error{Pattern: pattern, Message: "trailing %"}
		}
		switch d := pattern[i]; d {
		case '%':
			b = append(b, '%')
		case 'Y':
			b = appendPadded(b, int64(t.Year()), 4)
		case 'm':
			b = appendPadded(b, int64(t.Month()), 2)
		case 'd':
			b = appendPadded(b, int64(t.Day()), 2)
		case 'H':
			b = appendPadded(b, int64(t.Hour()), 2)
		case 'M':
			b = appendPadded(b, int64(t.Minute()), 2)
		case 'S':
			b = appendPadded(b, int64(t.Second()), 2)
		case 'j':
			b = appendPadded(b, int64(t.YearDay()), 3)
		case 'a':
			b = append(b, t.Weekday().String()[:3]...)
		case 'A':
			b = append(b, t.Weekday().String()...)
		case 'b':
			b = append(b, t.Month().String()[:3]...)
		case 'B':
			b = append(b, t.Month().String()...)
		case 'u':
			wd := int64(t.Weekday())
			if wd == 0 {
				wd = 7
			}
			b = strconv.AppendInt(b, wd, 10)
		case 'w':
			b = strconv.AppendInt(b, int64(t.Weekday()), 10)
		case 'G':
			year, _ := t.ISOWeek()
			b = appendPadded(b, int64(year), 4)
		case 'V':
			_, week := t.ISOWeek()
			b = appendPadded(b, int64(week), 2)
		case 's':
			b = strconv.AppendInt(b, t.Unix(), 10)
		default:
			return "", &Error{Pattern: pattern, Message: fmt.Sprintf("unsupported directive %%%c", d)}
		}
	}
	return string(b), nil
}

func appendPadded(b []byte, x int64, width int) []byte {
	if x < 0 {
		b = append(b, '-')
		x = -x
	}
	var buf [20]byte
	s := strconv.AppendInt(buf[:0], x, 10)
	for w := len(s); w < width; w++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

// Error describes an invalid pattern or an input that does not match it.
type Error struct {
	Pattern string
	Value   string
	Message string
}

// Error returns the string representation of an Error.
func (e *Error) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("strftime %q: %s", e.Pattern, e.Message)
	}
	return fmt.Sprintf("strftime %q: scanning %q: %s", e.Pattern, e.Value, e.Message)
}
