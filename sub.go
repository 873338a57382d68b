// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "math"

// Sub returns the Duration t-u. All fields of the result have the same sign;
// it is negative if t is before u.
//
// The difference is computed on the ordinal day axis and rounded to the
// nearest millisecond. Days are not carried into months or years, so the
// result can be added back to u to get t.
func (t Instant) Sub(u Instant) Duration {
	x := t.Ordinal() - u.Ordinal()
	sign := int64(1)
	if x < 0 {
		sign = -1
		x = -x
	}

	// Rounded to whole milliseconds before splitting into units.
	total := int64(math.Round(x * msecPerDay))
	var v [unitDay + 1]int64
	for u := unitMillisecond; u < unitDay; u++ {
		total, v[u] = norm(0, total, int64(modulus[u]))
	}
	v[unitDay] = total

	return Duration{
		Days:         int(sign * v[unitDay]),
		Hours:        int(sign * v[unitHour]),
		Minutes:      int(sign * v[unitMinute]),
		Seconds:      int(sign * v[unitSecond]),
		Milliseconds: int(sign * v[unitMillisecond]),
	}
}
