// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"math/rand"
	"testing"
	"time"

	"gonih.org/datetime/strftime"
)

func TestWeekday(t *testing.T) {
	tcs := []struct {
		t     Instant
		want  time.Weekday
		short string
		long  string
	}{
		{Date(2000, 1, 1), time.Saturday, "Sat", "Saturday"},
		{Date(1, 1, 1), time.Monday, "Mon", "Monday"},
		{Date(2024, 2, 29), time.Thursday, "Thu", "Thursday"},
		{Date(1900, 3, 1), time.Thursday, "Thu", "Thursday"},
		{Date(2023, 10, 25), time.Wednesday, "Wed", "Wednesday"},
		{Date(2024, 12, 29), time.Sunday, "Sun", "Sunday"},
	}
	for _, tc := range tcs {
		if got := tc.t.Weekday(); got != tc.want {
			t.Errorf("%v.Weekday() = %v, want %v", tc.t, got, tc.want)
		}
		if got := tc.t.WeekdayShort(); got != tc.short {
			t.Errorf("%v.WeekdayShort() = %q, want %q", tc.t, got, tc.short)
		}
		if got := tc.t.WeekdayLong(); got != tc.long {
			t.Errorf("%v.WeekdayLong() = %q, want %q", tc.t, got, tc.long)
		}
	}
}

func TestWeekdayMatchesTime(t *testing.T) {
	d := Date(1, 1, 1)
	for i := 0; i < 800*366; i++ {
		if got, want := d.Weekday(), utc(d).Weekday(); got != want {
			t.Fatalf("%v.Weekday() = %v, want %v", d, got, want)
		}
		d = d.AddDays(1)
	}
	d = Date(1583, 1, 1)
	for i := 0; i < 1000*366; i++ {
		if got, want := d.Weekday(), utc(d).Weekday(); got != want {
			t.Fatalf("%v.Weekday() = %v, want %v", d, got, want)
		}
		d = d.AddDays(1)
	}
}

func TestISOCalendar(t *testing.T) {
	tcs := []struct {
		t                   Instant
		year, week, weekday int
	}{
		{Date(2000, 1, 1), 1999, 52, 6},
		{Date(2024, 12, 30), 2025, 1, 1},
		{Date(2021, 1, 3), 2020, 53, 7},
		{Date(2026, 10, 19), 2026, 43, 1},
	}
	for _, tc := range tcs {
		year, week, weekday := tc.t.ISOCalendar()
		if year != tc.year || week != tc.week || weekday != tc.weekday {
			t.Errorf("%v.ISOCalendar() = (%d, %d, %d), want (%d, %d, %d)", tc.t, year, week, weekday, tc.year, tc.week, tc.weekday)
		}
	}

	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		d := randInstant(rnd, 9999)
		year, week, weekday := d.ISOCalendar()
		wantYear, wantWeek := utc(d).ISOWeek()
		wantWeekday := int(utc(d).Weekday())
		if wantWeekday == 0 {
			wantWeekday = 7
		}
		if year != wantYear || week != wantWeek || weekday != wantWeekday {
			t.Fatalf("%v.ISOCalendar() = (%d, %d, %d), want (%d, %d, %d)", d, year, week, weekday, wantYear, wantWeek, wantWeekday)
		}

		hy, hw, hd, err := d.ISOCalendarVia(strftime.Host{})
		if err != nil {
			t.Fatalf("%v.ISOCalendarVia(strftime.Host{}) = %v", d, err)
		}
		if hy != year || hw != week || hd != weekday {
			t.Fatalf("%v.ISOCalendarVia(strftime.Host{}) = (%d, %d, %d), want (%d, %d, %d)", d, hy, hw, hd, year, week, weekday)
		}
	}
}
