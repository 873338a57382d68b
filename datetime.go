// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime contains a calendar datetime type with millisecond
// resolution and a signed multi-field duration type.
//
// The standard library time package models a point in time in a specific
// location. Arithmetic on a time.Time goes through an absolute clock, which
// makes it awkward to reason about calendar fields directly:
//
//   - There is no value that means "the 31st of December, 23:59" without also
//     choosing a location, and with it daylight savings rules.
//   - time.Duration can only represent ~292 years and has no notion of days.
//   - Differences between two dates are not expressible as calendar units.
//
// This package provides an Instant type, which stores the calendar fields
// year, month, day, hour, minute, second and millisecond of the proleptic
// Gregorian calendar, and a Duration type holding days, hours, minutes,
// seconds and milliseconds. Adding a Duration carries overflow from smaller
// to larger units, taking varying month lengths and leap years into account.
// Instants can be converted to and from an ordinal day number, a continuous
// count of days where 0001-01-01T00:00:00.000 is day 1.0, which is used to
// compute the difference between two Instants.
//
// Instants are not validated on construction. Use [Instant.IsValid] before
// relying on calendar semantics for values built with [Of]. All results of
// the arithmetic methods are in canonical form, as long as their inputs are.
package datetime

import (
	"fmt"
	"time"
)

// An Instant is a date and clock time in the proleptic Gregorian calendar,
// with millisecond resolution and without a time zone.
//
// The zero value of Instant is 0001-01-01T00:00:00.000, the epoch of the
// ordinal day count.
//
// Instants can be compared with ==, which agrees with [Instant.Equal].
type Instant struct {
	// year, month and day are stored relative to the epoch, so that the
	// zero value is 0001-01-01.
	year  int
	month int
	day   int

	hour int
	min  int
	sec  int
	msec int
}

// Of returns the Instant with the given fields.
//
// Unlike [time.Date], Of does not normalize its arguments. For example,
// October 32 stays October 32 and is reported as invalid by
// [Instant.IsValid]. Use [Instant.Normalize] to get the canonical form.
func Of(year int, month time.Month, day, hour, min, sec, msec int) Instant {
	return Instant{
		year:  year - internalYear,
		month: int(month) - 1,
		day:   day - 1,
		hour:  hour,
		min:   min,
		sec:   sec,
		msec:  msec,
	}
}

// Date returns the Instant at midnight of the given date.
func Date(year int, month time.Month, day int) Instant {
	return Of(year, month, day, 0, 0, 0, 0)
}

// FromTime returns the Instant with the calendar and clock fields of t in
// t's location. Sub-millisecond precision is truncated.
func FromTime(t time.Time) Instant {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return Of(year, month, day, hour, min, sec, t.Nanosecond()/int(time.Millisecond))
}

// Time returns the moment in time with the fields of t in the given location.
func (t Instant) Time(loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.hour, t.min, t.sec, t.msec*int(time.Millisecond), loc)
}

// Date returns the year, month and day of t.
func (t Instant) Date() (year int, month time.Month, day int) {
	return t.Year(), t.Month(), t.Day()
}

// Clock returns the hour, minute, second and millisecond of t.
func (t Instant) Clock() (hour, min, sec, msec int) {
	return t.hour, t.min, t.sec, t.msec
}

// Year returns the year of t.
func (t Instant) Year() int { return t.year + internalYear }

// Month returns the month of the year of t.
func (t Instant) Month() time.Month { return time.Month(t.month + 1) }

// Day returns the day of the month of t.
func (t Instant) Day() int { return t.day + 1 }

// Hour returns the hour of t.
func (t Instant) Hour() int { return t.hour }

// Minute returns the minute of t.
func (t Instant) Minute() int { return t.min }

// Second returns the second of t.
func (t Instant) Second() int { return t.sec }

// Millisecond returns the millisecond of t.
func (t Instant) Millisecond() int { return t.msec }

// IsValid reports whether all fields of t are in their canonical ranges: the
// year is positive, the month in [1, 12], the day in [1, DaysInMonth], the
// hour in [0, 23], minute and second in [0, 59] and the millisecond in
// [0, 999].
func (t Instant) IsValid() bool {
	year, month, day := t.Date()
	return year >= 1 &&
		month >= time.January && month <= time.December &&
		day >= 1 && day <= DaysInMonth(month, year) &&
		t.hour >= 0 && t.hour < hoursPerDay &&
		t.min >= 0 && t.min < minutesPerHour &&
		t.sec >= 0 && t.sec < secondsPerMinute &&
		t.msec >= 0 && t.msec < msecPerSecond
}

// YearDay returns the day of the year of t, in the range [1,365] for non-leap
// years, and [1,366] in leap years.
func (t Instant) YearDay() int {
	year, month, day := t.Date()
	return daysBeforeMonth(month, year) + day
}

// GoString implements fmt.GoStringer and formats t to be printed in Go source
// code.
func (t Instant) GoString() string {
	year, month, day := t.Date()
	return fmt.Sprintf("datetime.Of(%d, %d, %d, %d, %d, %d, %d)", year, month, day, t.hour, t.min, t.sec, t.msec)
}

// String returns t formatted as ISO 8601, using 'T' as a separator.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use t.MarshalText.
func (t Instant) String() string {
	return t.ISOFormat('T')
}

// MarshalText implements the encoding.TextMarshaler interface. The instant is
// formatted in ISO 8601 format.
func (t Instant) MarshalText() ([]byte, error) {
	return t.AppendISOFormat(make([]byte, 0, len(ISO8601)), 'T'), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// instant must be in ISO 8601 format, as produced by MarshalText.
func (t *Instant) UnmarshalText(b []byte) error {
	v, err := Parse(ISO8601, string(b))
	if err == nil {
		*t = v
	}
	return err
}
