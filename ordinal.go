// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "math"

// Epoch is the ordinal day number of 0001-01-01T00:00:00.000, the zero value
// of Instant.
const Epoch = 1.0

// Ordinal returns the ordinal day number of t: the number of days in the
// years before t, plus the day of the year, plus the time of day as a
// fraction of a day. The zero Instant has ordinal Epoch.
func (t Instant) Ordinal() float64 {
	days := daysBeforeYear(t.Year()) + t.YearDay()
	frac := float64(t.hour)/hoursPerDay +
		float64(t.min)/(hoursPerDay*minutesPerHour) +
		(float64(t.sec)+float64(t.msec)/msecPerSecond)/secondsPerDay
	return float64(days) + frac
}

// FromOrdinal returns the Instant with the ordinal day number x. It is the
// inverse of [Instant.Ordinal], up to a millisecond.
//
// The fraction of x is expanded into hours, minutes and seconds by successive
// multiplication, and the remainder is rounded to the nearest millisecond.
func FromOrdinal(x float64) Instant {
	whole := math.Floor(x)
	year, month, day, _ := absDate(uint64(int64(whole)-Epoch+internalToAbsolute), true)

	f := (x - whole) * hoursPerDay
	hour := min(math.Floor(f), hoursPerDay-1)
	f = (f - hour) * minutesPerHour
	minute := min(math.Floor(f), minutesPerHour-1)
	f = (f - minute) * secondsPerMinute
	sec := min(math.Floor(f), secondsPerMinute-1)
	msec := math.Round((f - sec) * msecPerSecond)

	t := Of(year, month, day, int(hour), int(minute), int(sec), int(msec))
	if t.msec >= msecPerSecond {
		// Accumulated rounding error can push the fraction to the next
		// second.
		t.msec = 0
		t = t.AddSeconds(1)
	}
	return t
}
