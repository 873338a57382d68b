// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strftime

import (
	"fmt"
	"strconv"
	"strings"
)

// widths are the fixed widths of the numeric directives. Directives without
// an entry are read as long as there are digits.
var widths = map[byte]int{
	'm': 2, 'd': 2, 'H': 2, 'M': 2, 'S': 2, 'V': 2,
	'j': 3,
	'u': 1, 'w': 1,
}

// Fields holds the numeric values read by Scan, keyed by directive letter.
type Fields map[byte]int64

// Scan reads value, the output of a Formatter for pattern, and returns the
// values of its numeric directives. Literal text must match exactly. Numeric
// directives of fixed width consume at most that many digits, so "%H%M"
// scans "0930"; %Y, %G and %s read all digits. Name directives (%a, %A, %b,
// %B) are skipped over as a run of letters.
func Scan(value, pattern string) (Fields, error) {
	in := value
	fail := func(msg string) (Fields, error) {
		return nil, &Error{Pattern: pattern, Value: in, Message: msg}
	}

	f := make(Fields)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) || pattern[i+1] == '%' {
			if c == '%' {
				i++
			}
			if value == "" || value[0] != c {
				return fail(fmt.Sprintf("expected %q", c))
			}
			value = value[1:]
			continue
		}
		i++
		d := pattern[i]
		switch d {
		case 'a', 'A', 'b', 'B':
			n := strings.IndexFunc(value, func(r rune) bool {
				return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
			})
			if n < 0 {
				n = len(value)
			}
			if n == 0 {
				return fail(fmt.Sprintf("expected name for %%%c", d))
			}
			value = value[n:]
		case 'Y', 'm', 'd', 'H', 'M', 'S', 'j', 'u', 'w', 'G', 'V', 's':
			n := 0
			if n < len(value) && value[n] == '-' {
				n++
			}
			limit := len(value)
			if w := widths[d]; w > 0 {
				limit = min(limit, n+w)
			}
			for n < limit && '0' <= value[n] && value[n] <= '9' {
				n++
			}
			x, err := strconv.ParseInt(value[:n], 10, 64)
			if err != nil {
				return fail(fmt.Sprintf("expected number for %%%c", d))
			}
			f[d] = x
			value = value[n:]
		default:
			return fail(fmt.Sprintf("unsupported directive %%%c", d))
		}
	}
	if value != "" {
		return fail("extra text: " + strconv.Quote(value))
	}
	return f, nil
}
