// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
)

// A Duration is a signed time interval made of days, hours, minutes, seconds
// and milliseconds.
//
// The fields are independent and each carries its own sign. A Duration is
// never normalized: Duration{Days: 1, Hours: -2} is a valid Duration of 22
// hours, distinct from Duration{Hours: 22}. Use [Duration.TotalSeconds] to
// compare durations by length.
type Duration struct {
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// TotalSeconds returns the length of d in seconds.
func (d Duration) TotalSeconds() float64 {
	return float64(d.Days)*secondsPerDay +
		float64(d.Hours)*minutesPerHour*secondsPerMinute +
		float64(d.Minutes)*secondsPerMinute +
		float64(d.Seconds) +
		float64(d.Milliseconds)*0.001
}

// Neg returns -d, negating every field.
func (d Duration) Neg() Duration {
	return Duration{
		Days:         -d.Days,
		Hours:        -d.Hours,
		Minutes:      -d.Minutes,
		Seconds:      -d.Seconds,
		Milliseconds: -d.Milliseconds,
	}
}

// durationUnits are the suffixes of the textual representation of a
// Duration. "ms" must come before "m" and "s".
var durationUnits = [...]struct {
	suffix string
	field  func(*Duration) *int
}{
	{"d", func(d *Duration) *int { return &d.Days }},
	{"h", func(d *Duration) *int { return &d.Hours }},
	{"ms", func(d *Duration) *int { return &d.Milliseconds }},
	{"m", func(d *Duration) *int { return &d.Minutes }},
	{"s", func(d *Duration) *int { return &d.Seconds }},
}

// String returns d in the form "1d-2h3m4s5ms". Zero fields are omitted, the
// zero Duration is "0s".
func (d Duration) String() string {
	return string(d.AppendText(nil))
}

// AppendText appends the textual representation of d, as returned by String,
// to b.
func (d Duration) AppendText(b []byte) []byte {
	start := len(b)
	for _, f := range [...]struct {
		n      int
		suffix string
	}{
		{d.Days, "d"},
		{d.Hours, "h"},
		{d.Minutes, "m"},
		{d.Seconds, "s"},
		{d.Milliseconds, "ms"},
	} {
		if f.n == 0 {
			continue
		}
		b = strconv.AppendInt(b, int64(f.n), 10)
		b = append(b, f.suffix...)
	}
	if len(b) == start {
		b = append(b, "0s"...)
	}
	return b
}

// ParseDuration parses the textual representation of a Duration, as returned
// by [Duration.String]. Each unit is a signed decimal integer followed by one
// of "d", "h", "m", "s" or "ms". Units may appear in any order, but at most
// once.
func ParseDuration(s string) (Duration, error) {
	var (
		d    Duration
		seen [len(durationUnits)]bool
		in   = s
	)
	if s == "" {
		return d, &DurationError{Value: in, Message: "empty duration"}
	}
	for s != "" {
		i := 0
		if s[0] == '+' || s[0] == '-' {
			i++
		}
		j := i
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
		if j == i {
			return Duration{}, &DurationError{Value: in, Message: "expected number at " + strconv.Quote(s)}
		}
		n, err := strconv.Atoi(s[:j])
		if err != nil {
			return Duration{}, &DurationError{Value: in, Message: "invalid number " + strconv.Quote(s[:j]), Err: err}
		}
		s = s[j:]
		found := false
		for k, u := range durationUnits {
			rest, ok := strings.CutPrefix(s, u.suffix)
			if !ok {
				continue
			}
			if seen[k] {
				return Duration{}, &DurationError{Value: in, Message: "duplicate unit " + strconv.Quote(u.suffix)}
			}
			seen[k] = true
			*u.field(&d) = n
			s, found = rest, true
			break
		}
		if !found {
			return Duration{}, &DurationError{Value: in, Message: "missing unit at " + strconv.Quote(s)}
		}
	}
	return d, nil
}

// MarshalText implements the encoding.TextMarshaler interface, using the
// format of String.
func (d Duration) MarshalText() ([]byte, error) {
	return d.AppendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface, using
// ParseDuration.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := ParseDuration(string(b))
	if err == nil {
		*d = v
	}
	return err
}

// DurationError describes a problem parsing a Duration.
type DurationError struct {
	Value   string
	Message string
	Err     error
}

// Error returns the string representation of a DurationError.
func (e *DurationError) Error() string {
	return fmt.Sprintf("parsing duration %q: %s", e.Value, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *DurationError) Unwrap() error {
	return e.Err
}
