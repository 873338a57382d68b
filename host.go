// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"time"

	"gonih.org/datetime/strftime"
)

// HostFormatter is the formatter used by [Instant.Strftime] and
// [Instant.SecondsSinceEpoch]. Intentionally exported so that it can be
// replaced, for example by a binding to the C library. The default formats in
// UTC.
var HostFormatter strftime.Formatter = strftime.Host{}

// NowFunc returns the current local time. Intentionally exported so that it
// can be overridden, for example by applications that require deterministic
// results.
var NowFunc = func() (time.Time, error) {
	return time.Now(), nil
}

// HostError is returned when the host clock or time formatter fails or
// returns data that does not describe a valid Instant.
type HostError struct {
	Op  string // "now", "strftime", "isocalendar" or "epoch"
	Err error
}

// Error returns the string representation of a HostError.
func (e *HostError) Error() string {
	return fmt.Sprintf("datetime: host %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *HostError) Unwrap() error {
	return e.Err
}

// Now returns the current Instant, as reported by NowFunc.
func Now() (Instant, error) {
	if NowFunc == nil {
		return Instant{}, &HostError{Op: "now", Err: errors.New("no clock")}
	}
	tm, err := NowFunc()
	if err != nil {
		return Instant{}, &HostError{Op: "now", Err: err}
	}
	t := FromTime(tm)
	if !t.IsValid() {
		return Instant{}, &HostError{Op: "now", Err: fmt.Errorf("clock returned %v, outside the calendar", tm)}
	}
	return t, nil
}

// TM returns the broken-down time of t. Milliseconds are dropped.
func (t Instant) TM() strftime.TM {
	year, month, day := t.Date()
	return strftime.TM{
		Sec:   t.sec,
		Min:   t.min,
		Hour:  t.hour,
		MDay:  day,
		Mon:   int(month) - 1,
		Year:  year - 1900,
		WDay:  int(t.Weekday()),
		YDay:  t.YearDay() - 1,
		IsDST: 0,
	}
}

// Strftime formats t with HostFormatter. See package [strftime] for the
// pattern language.
func (t Instant) Strftime(pattern string) (string, error) {
	return t.strftime(HostFormatter, "strftime", pattern)
}

func (t Instant) strftime(f strftime.Formatter, op, pattern string) (string, error) {
	if f == nil {
		return "", &HostError{Op: op, Err: errors.New("no formatter")}
	}
	s, err := f.Format(t.TM(), pattern)
	if err != nil {
		return "", &HostError{Op: op, Err: err}
	}
	return s, nil
}

// scan formats t with f and reads back the numeric directives.
func (t Instant) scan(f strftime.Formatter, op, pattern string) (strftime.Fields, error) {
	s, err := t.strftime(f, op, pattern)
	if err != nil {
		return nil, err
	}
	fields, err := strftime.Scan(s, pattern)
	if err != nil {
		return nil, &HostError{Op: op, Err: err}
	}
	return fields, nil
}

// SecondsSinceEpoch returns the number of seconds from the Unix epoch
// 1970-01-01T00:00:00 to t, as reported by HostFormatter's %s. Milliseconds
// are dropped.
func (t Instant) SecondsSinceEpoch() (int64, error) {
	f, err := t.scan(HostFormatter, "epoch", "%s")
	if err != nil {
		return 0, err
	}
	return f['s'], nil
}

// ISOCalendarVia is like [Instant.ISOCalendar], but delegates the computation
// to f, using the directives %G, %V and %u.
func (t Instant) ISOCalendarVia(f strftime.Formatter) (year, week, weekday int, err error) {
	fields, err := t.scan(f, "isocalendar", "%G %V %u")
	if err != nil {
		return 0, 0, 0, err
	}
	year, week, weekday = int(fields['G']), int(fields['V']), int(fields['u'])
	if week < 1 || week > 53 || weekday < 1 || weekday > 7 {
		return 0, 0, 0, &HostError{Op: "isocalendar", Err: fmt.Errorf("week %d, weekday %d out of range", week, weekday)}
	}
	return year, week, weekday, nil
}
