// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "time"

// Weekday returns the day of the week of t, computed with Zeller's
// congruence.
func (t Instant) Weekday() time.Weekday {
	year, month, q := t.Year(), int(t.Month()), t.Day()
	// January and February count as months 13 and 14 of the previous year.
	if month <= 2 {
		month += 12
		year--
	}
	j, k := norm(0, year, 100)
	j4, _ := norm(0, j, 4)
	_, h := norm(0, q+13*(month+1)/5+k+k/4+j4+5*j, 7)
	// h is 0 for Saturday.
	return time.Weekday((h + 6) % 7)
}

// WeekdayShort returns the abbreviated English name of the day of the week of
// t, e.g. "Sat".
func (t Instant) WeekdayShort() string {
	return shortDayNames[t.Weekday()]
}

// WeekdayLong returns the English name of the day of the week of t, e.g.
// "Saturday".
func (t Instant) WeekdayLong() string {
	return longDayNames[t.Weekday()]
}

// ISOCalendar returns the ISO 8601 year, week number and day of the week of
// t. Week ranges from 1 to 53 and weekday from 1 (Monday) to 7 (Sunday).
// Jan 01 to Jan 03 of year n might belong to week 52 or 53 of year n-1, and
// Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (t Instant) ISOCalendar() (year, week, weekday int) {
	// See this comment for an explanation:
	// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=544

	wd := t.Weekday()
	offset := int(time.Thursday - wd)
	if offset == 4 {
		offset = -3
	}
	thu := Date(t.Year(), t.Month(), t.Day()).AddDays(offset)
	weekday = int(wd)
	if weekday == 0 {
		weekday = 7
	}
	return thu.Year(), (thu.YearDay()-1)/7 + 1, weekday
}
