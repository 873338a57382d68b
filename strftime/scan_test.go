// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strftime

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	tcs := []struct {
		value   string
		pattern string
		want    Fields
		wantErr bool
	}{
		{"", "", Fields{}, false},
		{"2024-02-29", "%Y-%m-%d", Fields{'Y': 2024, 'm': 2, 'd': 29}, false},
		{"0930", "%H%M", Fields{'H': 9, 'M': 30}, false},
		{"2024 09 4", "%G %V %u", Fields{'G': 2024, 'V': 9, 'u': 4}, false},
		{"-62135596800", "%s", Fields{'s': -62135596800}, false},
		{"Thursday, 29 Feb", "%A, %d %b", Fields{'d': 29}, false},
		{"100%", "100%%", Fields{}, false},
		{"060", "%j", Fields{'j': 60}, false},
		{"12345-01", "%Y-%m", Fields{'Y': 12345, 'm': 1}, false},
		{"2024-02-29 ", "%Y-%m-%d", nil, true},
		{"2024/02/29", "%Y-%m-%d", nil, true},
		{"x", "%H", nil, true},
		{"", "%H", nil, true},
		{"-", "%s", nil, true},
		{"1, 2", "%A, %d", nil, true},
		{"12", "%Q", nil, true},
		{"1", "", nil, true},
	}
	for _, tc := range tcs {
		got, err := Scan(tc.value, tc.pattern)
		if (err != nil) != tc.wantErr {
			t.Errorf("Scan(%q, %q) = %v, %v, want error: %v", tc.value, tc.pattern, got, err, tc.wantErr)
			continue
		}
		if err != nil {
			var se *Error
			if !errors.As(err, &se) || se.Value != tc.value {
				t.Errorf("Scan(%q, %q) = %v, want *Error with Value %q", tc.value, tc.pattern, err, tc.value)
			}
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Scan(%q, %q) mismatch (-want +got):\n%s", tc.value, tc.pattern, diff)
		}
	}
}

// TestScanHost checks that Scan reads back what Host formats.
func TestScanHost(t *testing.T) {
	const pattern = "%Y-%m-%d %H:%M:%S %j %u %w %G %V %s %a %B"
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		tt := time.Unix(rnd.Int63n(400_000_000_000)-200_000_000_000, 0).UTC()
		s, err := Host{}.Format(tmOf(tt), pattern)
		if err != nil {
			t.Fatalf("Format(%v) = _, %v", tt, err)
		}
		f, err := Scan(s, pattern)
		if err != nil {
			t.Fatalf("Scan(%q) = _, %v", s, err)
		}
		isoYear, isoWeek := tt.ISOWeek()
		wd := int64(tt.Weekday())
		uwd := wd
		if uwd == 0 {
			uwd = 7
		}
		want := Fields{
			'Y': int64(tt.Year()),
			'm': int64(tt.Month()),
			'd': int64(tt.Day()),
			'H': int64(tt.Hour()),
			'M': int64(tt.Minute()),
			'S': int64(tt.Second()),
			'j': int64(tt.YearDay()),
			'u': uwd,
			'w': wd,
			'G': int64(isoYear),
			'V': int64(isoWeek),
			's': tt.Unix(),
		}
		if diff := cmp.Diff(want, f); diff != "" {
			t.Fatalf("Scan(%q) mismatch (-want +got):\n%s", s, diff)
		}
	}
}
