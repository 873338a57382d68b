// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

// fields returns the fields of t, most significant first.
func (t Instant) fields() [7]int {
	return [7]int{t.year, t.month, t.day, t.hour, t.min, t.sec, t.msec}
}

// Compare returns -1 if a is before b, +1 if a is after b and 0 if they are
// equal. Instants are ordered by year, month, day, hour, minute, second and
// millisecond. The order is structural: invalid Instants are compared field
// by field, like valid ones.
//
// Compare can be used with [slices.SortFunc].
func Compare(a, b Instant) int {
	fa, fb := a.fields(), b.fields()
	for i := range fa {
		switch {
		case fa[i] > fb[i]:
			return +1
		case fa[i] < fb[i]:
			return -1
		}
	}
	return 0
}

// Compare compares t and u, returning -1, 0 or +1 like [Compare].
//
// t >= u is Compare(t, u) >= 0 or, equivalently, !t.Before(u).
func (t Instant) Compare(u Instant) int {
	return Compare(t, u)
}

// After reports whether t is after u.
func (t Instant) After(u Instant) bool {
	return Compare(t, u) > 0
}

// Before reports whether t is before u.
func (t Instant) Before(u Instant) bool {
	return u.After(t)
}

// Equal reports whether all fields of t and u are equal.
func (t Instant) Equal(u Instant) bool {
	return t == u
}
