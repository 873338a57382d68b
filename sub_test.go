// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// millis returns the length of d in whole milliseconds.
func millis(d Duration) int64 {
	return (((int64(d.Days)*24+int64(d.Hours))*60+int64(d.Minutes))*60+int64(d.Seconds))*1000 + int64(d.Milliseconds)
}

func TestSub(t *testing.T) {
	tcs := []struct {
		a, b Instant
		want Duration
	}{
		{Of(2024, 1, 1, 0, 0, 0, 0), Of(2024, 1, 1, 0, 0, 0, 0), Duration{}},
		{Of(2025, 1, 1, 0, 0, 0, 100), Of(2024, 12, 31, 23, 59, 59, 500), Duration{Milliseconds: 600}},
		{Of(2024, 12, 31, 23, 59, 59, 500), Of(2025, 1, 1, 0, 0, 0, 100), Duration{Milliseconds: -600}},
		{Of(2024, 3, 1, 0, 0, 0, 0), Of(2024, 2, 28, 0, 0, 0, 0), Duration{Days: 2}},
		{Of(2023, 3, 1, 0, 0, 0, 0), Of(2023, 2, 28, 0, 0, 0, 0), Duration{Days: 1}},
		{Of(2024, 1, 2, 1, 2, 3, 4), Of(2024, 1, 1, 0, 0, 0, 0), Duration{Days: 1, Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 4}},
		{Of(2024, 1, 1, 0, 0, 0, 0), Of(2024, 1, 2, 1, 2, 3, 4), Duration{Days: -1, Hours: -1, Minutes: -2, Seconds: -3, Milliseconds: -4}},
		{Of(2024, 1, 2, 0, 0, 0, 0), Of(2024, 1, 1, 23, 59, 59, 999), Duration{Milliseconds: 1}},
		{Of(2001, 1, 1, 0, 0, 0, 0), Of(2000, 1, 1, 0, 0, 0, 0), Duration{Days: 366}},
		{Of(9999, 12, 31, 23, 59, 59, 999), Of(1, 1, 1, 0, 0, 0, 0), Duration{Days: 3652058, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999}},
	}
	for _, tc := range tcs {
		got := tc.a.Sub(tc.b)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%v.Sub(%v) mismatch (-want +got):\n%s", tc.a, tc.b, diff)
		}
	}
}

func TestSubMatchesTime(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		a, b := randInstant(rnd, 9999), randInstant(rnd, 9999)
		if i%4 == 0 {
			// Nearby Instants have small fields.
			b = a.AddMilliseconds(rnd.Intn(200_000_000) - 100_000_000)
		}
		d := a.Sub(b)
		if got, want := millis(d), utc(a).UnixMilli()-utc(b).UnixMilli(); got != want {
			t.Fatalf("%v.Sub(%v) = %v (%dms), want %dms", a, b, d, got, want)
		}
		if got := b.Add(d); got != a {
			t.Fatalf("%v.Add(%v.Sub(%v)) = %v, want %v", b, a, b, got, a)
		}
		checkCanonical(t, d)
	}
}

// checkCanonical checks that all fields of d share a sign and are in the
// range of their unit.
func checkCanonical(t *testing.T, d Duration) {
	t.Helper()
	if d.Days < 0 || d.Hours < 0 || d.Minutes < 0 || d.Seconds < 0 || d.Milliseconds < 0 {
		d = d.Neg()
	}
	if d.Days < 0 || d.Hours < 0 || d.Minutes < 0 || d.Seconds < 0 || d.Milliseconds < 0 ||
		d.Hours >= 24 || d.Minutes >= 60 || d.Seconds >= 60 || d.Milliseconds >= 1000 {
		t.Errorf("Sub returned %#v, which mixes signs or is out of range", d)
	}
}

func TestSubSign(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b := randInstant(rnd, 3000), randInstant(rnd, 3000)
		if !a.Before(b) {
			a, b = b, a
		}
		if a == b {
			continue
		}
		d := a.Sub(b)
		if d.TotalSeconds() >= 0 {
			t.Errorf("%v.Sub(%v).TotalSeconds() = %v, want negative", a, b, d.TotalSeconds())
		}
		want := (b.Ordinal() - a.Ordinal()) * secondsPerDay
		if got := -d.TotalSeconds(); math.Abs(got-want) > 0.001 {
			t.Errorf("-%v.Sub(%v).TotalSeconds() = %v, want %v", a, b, got, want)
		}
	}
}
