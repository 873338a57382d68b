// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "time"

const (
	msecPerSecond    = 1000
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24

	secondsPerDay = hoursPerDay * minutesPerHour * secondsPerMinute
	msecPerDay    = secondsPerDay * msecPerSecond
)

// unit is a clock field of an Instant, in carry order.
type unit int

const (
	unitMillisecond unit = iota
	unitSecond
	unitMinute
	unitHour
	unitDay
)

// modulus[u] is the number of u in the next larger unit.
var modulus = [...]int{
	unitMillisecond: msecPerSecond,
	unitSecond:      secondsPerMinute,
	unitMinute:      minutesPerHour,
	unitHour:        hoursPerDay,
}

// field returns a pointer to the clock field of t for u.
func (t *Instant) field(u unit) *int {
	switch u {
	case unitMillisecond:
		return &t.msec
	case unitSecond:
		return &t.sec
	case unitMinute:
		return &t.min
	case unitHour:
		return &t.hour
	}
	panic("datetime: invalid unit")
}

// add returns t with n added to the field for u. Overflow and underflow are
// carried into the next larger unit until a unit stays in range. If all is
// set, the carry continues through all larger units even if the carry is
// zero, which canonicalizes them as well.
//
// n is split into a carry and a remainder before it is added, so any int can
// be added without overflowing the field.
func (t Instant) add(u unit, n int, all bool) Instant {
	for ; u < unitDay; u++ {
		f := t.field(u)
		q, r := norm(0, n, modulus[u])
		c, v := norm(0, *f, modulus[u])
		c2, v := norm(0, v+r, modulus[u])
		*f = v
		n = q + c + c2
		if !all && n == 0 {
			return t
		}
	}
	return t.addDays(n)
}

// addDays returns t with n days added, walking over months until the day is
// in range for its month. The month is wrapped into the year first, like
// Normalize does.
func (t Instant) addDays(n int) Instant {
	year, month := norm(t.Year(), t.month, 12)
	month++

	// Whole 400 year cycles map a canonical month onto itself. Both n and the
	// day are reduced separately, so the loops below walk fewer than 800
	// years.
	day := t.Day()
	year += 400 * (n/daysPer400Years + day/daysPer400Years)
	day = day%daysPer400Years + n%daysPer400Years

	for day > DaysInMonth(time.Month(month), year) {
		day -= DaysInMonth(time.Month(month), year)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += DaysInMonth(time.Month(month), year)
	}
	return Of(year, time.Month(month), day, t.hour, t.min, t.sec, t.msec)
}

// AddMilliseconds returns t with n milliseconds added, carrying into the
// larger units as needed.
func (t Instant) AddMilliseconds(n int) Instant {
	return t.add(unitMillisecond, n, false)
}

// AddSeconds returns t with n seconds added, carrying into the larger units as
// needed.
func (t Instant) AddSeconds(n int) Instant {
	return t.add(unitSecond, n, false)
}

// AddMinutes returns t with n minutes added, carrying into the larger units as
// needed.
func (t Instant) AddMinutes(n int) Instant {
	return t.add(unitMinute, n, false)
}

// AddHours returns t with n hours added, carrying into the days as needed.
func (t Instant) AddHours(n int) Instant {
	return t.add(unitHour, n, false)
}

// AddDays returns t with n days added. The day of the month is carried into
// the month and year, so adding one day to December 31 yields January 1 of
// the next year.
func (t Instant) AddDays(n int) Instant {
	return t.addDays(n)
}

// Normalize returns the canonical form of t. Out of range fields are carried
// into the next larger unit, starting at the milliseconds. For example, the
// 32nd of October at 24:00 normalizes to November 2 at 00:00.
//
// The year is not normalized; a result before year 1 is not valid.
func (t Instant) Normalize() Instant {
	t.year, t.month = norm(t.year, t.month, 12)
	return t.add(unitMillisecond, 0, true)
}

// Add returns t+d. The milliseconds of d are added first, then the seconds,
// minutes, hours and days, each carried into the larger units.
func (t Instant) Add(d Duration) Instant {
	return t.AddMilliseconds(d.Milliseconds).
		AddSeconds(d.Seconds).
		AddMinutes(d.Minutes).
		AddHours(d.Hours).
		AddDays(d.Days)
}

// SubDuration returns t-d. It is equivalent to t.Add(d.Neg()).
func (t Instant) SubDuration(d Duration) Instant {
	return t.Add(d.Neg())
}
