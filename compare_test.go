// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"math/rand"
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	base := Of(2024, 5, 17, 12, 30, 15, 250)
	tcs := []struct {
		a, b Instant
		want int
	}{
		{base, base, 0},
		{Of(2025, 1, 1, 0, 0, 0, 0), base, +1},
		{Of(2024, 6, 1, 0, 0, 0, 0), base, +1},
		{Of(2024, 5, 18, 0, 0, 0, 0), base, +1},
		{Of(2024, 5, 17, 13, 0, 0, 0), base, +1},
		{Of(2024, 5, 17, 12, 31, 0, 0), base, +1},
		{Of(2024, 5, 17, 12, 30, 16, 0), base, +1},
		{Of(2024, 5, 17, 12, 30, 15, 251), base, +1},
		{Of(2024, 5, 17, 12, 30, 15, 249), base, -1},
		{Of(2023, 12, 31, 23, 59, 59, 999), base, -1},
		// Invalid Instants are compared structurally.
		{Of(2024, 4, 31, 0, 0, 0, 0), Of(2024, 5, 1, 0, 0, 0, 0), -1},
		{Of(2024, 5, 17, 99, 0, 0, 0), Of(2024, 5, 18, 0, 0, 0, 0), -1},
	}
	for _, tc := range tcs {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Compare(tc.a); got != -tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tc.b, tc.a, got, -tc.want)
		}
		if got := tc.a.After(tc.b); got != (tc.want > 0) {
			t.Errorf("%v.After(%v) = %v, want %v", tc.a, tc.b, got, tc.want > 0)
		}
		if got := tc.a.Before(tc.b); got != (tc.want < 0) {
			t.Errorf("%v.Before(%v) = %v, want %v", tc.a, tc.b, got, tc.want < 0)
		}
		if got := tc.a.Equal(tc.b); got != (tc.want == 0) {
			t.Errorf("%v.Equal(%v) = %v, want %v", tc.a, tc.b, got, tc.want == 0)
		}
	}
}

// TestTotalOrder checks that exactly one of a > b, a < b and a == b holds,
// and that the order agrees with package time for valid Instants.
func TestTotalOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		a, b := randInstant(rnd, 3), randInstant(rnd, 3)
		if i%10 == 0 {
			b = a
		}
		n := 0
		for _, ok := range []bool{a.After(b), a.Before(b), a.Equal(b)} {
			if ok {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%v, %v: After = %v, Before = %v, Equal = %v", a, b, a.After(b), a.Before(b), a.Equal(b))
		}
		if ge, want := !a.Before(b), a.After(b) || a.Equal(b); ge != want {
			t.Fatalf("%v >= %v is %v, want %v", a, b, ge, want)
		}
		if got, want := a.Compare(b), utc(a).Compare(utc(b)); got != want {
			t.Fatalf("%v.Compare(%v) = %d, want %d", a, b, got, want)
		}
	}
}

func TestSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	s := make([]Instant, 100)
	for i := range s {
		s[i] = randInstant(rnd, 3000)
	}
	slices.SortFunc(s, Compare)
	for i := 1; i < len(s); i++ {
		if s[i].Ordinal() < s[i-1].Ordinal() {
			t.Errorf("sorted[%d] = %v is before sorted[%d] = %v", i, s[i], i-1, s[i-1])
		}
	}
}
