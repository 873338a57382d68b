// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTotalSeconds(t *testing.T) {
	tcs := []struct {
		d    Duration
		want float64
	}{
		{Duration{}, 0},
		{Duration{Days: 1}, 86400},
		{Duration{Hours: 1}, 3600},
		{Duration{Minutes: 1}, 60},
		{Duration{Seconds: 1}, 1},
		{Duration{Milliseconds: 500}, 0.5},
		{Duration{Days: 1, Hours: -2}, 79200},
		{Duration{Days: -1, Hours: -2, Minutes: -3, Seconds: -4, Milliseconds: -250}, -93784.25},
	}
	for _, tc := range tcs {
		if got := tc.d.TotalSeconds(); got != tc.want {
			t.Errorf("%v.TotalSeconds() = %v, want %v", tc.d, got, tc.want)
		}
		if got := tc.d.Neg().TotalSeconds(); got != -tc.want {
			t.Errorf("%v.Neg().TotalSeconds() = %v, want %v", tc.d, got, -tc.want)
		}
	}
}

func TestNeg(t *testing.T) {
	d := Duration{Days: 1, Hours: -2, Minutes: 3, Seconds: -4, Milliseconds: 5}
	want := Duration{Days: -1, Hours: 2, Minutes: -3, Seconds: 4, Milliseconds: -5}
	if diff := cmp.Diff(want, d.Neg()); diff != "" {
		t.Errorf("Neg() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d, d.Neg().Neg()); diff != "" {
		t.Errorf("Neg().Neg() mismatch (-want +got):\n%s", diff)
	}
}

func TestDurationString(t *testing.T) {
	tcs := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "0s"},
		{Duration{Days: 1, Hours: -2}, "1d-2h"},
		{Duration{Milliseconds: 600}, "600ms"},
		{Duration{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Milliseconds: 5}, "1d2h3m4s5ms"},
		{Duration{Minutes: -90}, "-90m"},
	}
	for _, tc := range tcs {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.d, got, tc.want)
		}
		got, err := ParseDuration(tc.want)
		if err != nil {
			t.Errorf("ParseDuration(%q) = _, %v, want <nil>", tc.want, err)
			continue
		}
		if diff := cmp.Diff(tc.d, got); diff != "" {
			t.Errorf("ParseDuration(%q) mismatch (-want +got):\n%s", tc.want, diff)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tcs := []struct {
		in      string
		want    Duration
		wantErr bool
	}{
		{"5ms3m", Duration{Minutes: 3, Milliseconds: 5}, false},
		{"+1d-1d", Duration{}, true},
		{"-0s", Duration{}, false},
		{"+3h", Duration{Hours: 3}, false},
		{"", Duration{}, true},
		{"1", Duration{}, true},
		{"d", Duration{}, true},
		{"1x", Duration{}, true},
		{"1d 2h", Duration{}, true},
		{"1h1h", Duration{}, true},
		{"99999999999999999999d", Duration{}, true},
	}
	for _, tc := range tcs {
		got, err := ParseDuration(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDuration(%q) = _, %v, want error: %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil {
			var de *DurationError
			if !errors.As(err, &de) {
				t.Errorf("ParseDuration(%q) returned %T, want *DurationError", tc.in, err)
			}
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseDuration(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}

	_, err := ParseDuration("99999999999999999999d")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("ParseDuration of an overflowing number = %v, want wrapping %v", err, strconv.ErrRange)
	}
}

func FuzzParseDuration(f *testing.F) {
	f.Add("1d-2h3m4s5ms")
	f.Add("0s")
	f.Fuzz(func(t *testing.T, s string) {
		d, err := ParseDuration(s)
		if err != nil {
			return
		}
		got, err := ParseDuration(d.String())
		if err != nil {
			t.Fatalf("ParseDuration(%q) = _, %v, want <nil>", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDuration(%q) = %#v, want %#v", d.String(), got, d)
		}
	})
}
