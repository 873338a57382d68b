// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gonih.org/datetime/internal/cache"
)

// These are predefined layouts for use in [Instant.Format] and [Parse]. The
// reference time used in these layouts is the specific time:
//
//	January 2, 2006 at 15:04:05.000
//
// The reference is chosen for compatibility with package [time].
//
// The format specification works the same as [time.Layout], restricted to
// the components an Instant has. Specifically, the recognized components are
//
//	Year: "2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//	Hour: "15"
//	Minute: "04"
//	Second: "05"
//	Millisecond: ".000"
//
// Everything else, including 12-hour clocks and time zones, is a literal.
const (
	Layout   = "01/02 15:04:05.000 '06" // The reference time, in numerical order
	ISO8601  = "2006-01-02T15:04:05.000"
	RFC822   = "02 Jan 06 15:04"
	RFC1123  = "Mon, 02 Jan 2006 15:04:05"
	DateTime = "2006-01-02 15:04:05"
	DateOnly = "2006-01-02"
	TimeOnly = "15:04:05"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// ISOFormat returns t as YYYY-MM-DD<sep>hh:mm:ss.mmm. Every field is zero
// padded to its width; years past 9999 use as many digits as they need.
func (t Instant) ISOFormat(sep byte) string {
	var buf [len(ISO8601)]byte
	return string(t.AppendISOFormat(buf[:0], sep))
}

// AppendISOFormat is like ISOFormat but appends the textual representation
// to b and returns the extended buffer.
func (t Instant) AppendISOFormat(b []byte, sep byte) []byte {
	b = appendInt(b, t.Year(), 4)
	b = append(b, '-')
	b = appendInt(b, int(t.Month()), 2)
	b = append(b, '-')
	b = appendInt(b, t.Day(), 2)
	b = append(b, sep)
	b = appendInt(b, t.hour, 2)
	b = append(b, ':')
	b = appendInt(b, t.min, 2)
	b = append(b, ':')
	b = appendInt(b, t.sec, 2)
	b = append(b, '.')
	return appendInt(b, t.msec, 3)
}

// appendInt appends the decimal form of x to b, left-padded with zeros to
// width digits. A minus sign does not count towards the width.
func appendInt(b []byte, x int, width int) []byte {
	u := uint(x)
	if x < 0 {
		b = append(b, '-')
		u = uint(-x)
	}

	var buf [20]byte
	i := len(buf)
	for u >= 10 {
		i--
		q := u / 10
		buf[i] = byte('0' + u - q*10)
		u = q
	}
	i--
	buf[i] = byte('0' + u)

	for w := len(buf) - i; w < width; w++ {
		b = append(b, '0')
	}
	return append(b, buf[i:]...)
}

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// program is a compiled layout.
type program []inst

// Size implements cache.Sizer, so that long layouts take up more room in the
// cache.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opHour
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // package time treats this as "_"+opLongYear, but it is simpler to just handle it with an extra opcode
	opUnderDay
	opUnderYearDay
	opZeroMinute
	opZeroSecond
	opMillisecond

	opInvalid
)

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	switch op {
	case opLiteral:
		return "<literal>"
	case opLongMonth:
		return "January"
	case opMonth:
		return "Jan"
	case opLongWeekDay:
		return "Monday"
	case opWeekDay:
		return "Mon"
	case opZeroYearDay:
		return "002"
	case opZeroMonth:
		return "01"
	case opZeroDay:
		return "02"
	case opYear:
		return "06"
	case opHour:
		return "15"
	case opNumMonth:
		return "1"
	case opLongYear:
		return "2006"
	case opDay:
		return "2"
	case opUnderLongYear:
		return "_2006"
	case opUnderDay:
		return "_2"
	case opUnderYearDay:
		return "__2"
	case opZeroMinute:
		return "04"
	case opZeroSecond:
		return "05"
	case opMillisecond:
		return ".000"
	}
	panic("invalid fmtOp")
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// memoize compiled layout strings.
var memo cache.Cache[string, program]

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) program {
	var prog program
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			if op == opMillisecond && isDigit(suffix, 0) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// Format returns a textual representation of t formatted according to the
// layout defined by the argument. See the documentation for the constant
// called Layout to see how to represent the layout format.
func (t Instant) Format(layout string) string {
	const bufSize = 64
	var b []byte
	max := len(layout) + 10
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	return string(t.AppendFormat(b, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (t Instant) AppendFormat(b []byte, layout string) []byte {
	year, month, day := t.Date()

	prog := memo.Get(layout, parseLayout)

	for _, i := range prog {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := year % 100
			if y < 0 {
				y = -y
			}
			b = appendInt(b, y, 2)
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			b = appendInt(b, year, 4)
		case opMonth:
			b = append(b, month.String()[:3]...)
		case opLongMonth:
			b = append(b, month.String()...)
		case opNumMonth:
			b = appendInt(b, int(month), 0)
		case opZeroMonth:
			b = appendInt(b, int(month), 2)
		case opWeekDay:
			b = append(b, t.WeekdayShort()...)
		case opLongWeekDay:
			b = append(b, t.WeekdayLong()...)
		case opDay:
			b = appendInt(b, day, 0)
		case opUnderDay:
			if day < 10 {
				b = append(b, ' ')
			}
			b = appendInt(b, day, 0)
		case opZeroDay:
			b = appendInt(b, day, 2)
		case opUnderYearDay:
			yday := t.YearDay()
			if yday < 100 {
				b = append(b, ' ')
				if yday < 10 {
					b = append(b, ' ')
				}
			}
			b = appendInt(b, yday, 0)
		case opZeroYearDay:
			b = appendInt(b, t.YearDay(), 3)
		case opHour:
			b = appendInt(b, t.hour, 2)
		case opZeroMinute:
			b = appendInt(b, t.min, 2)
		case opZeroSecond:
			b = appendInt(b, t.sec, 2)
		case opMillisecond:
			b = append(b, '.')
			b = appendInt(b, t.msec, 3)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// Parse parses a formatted string and returns the Instant it represents. See
// the documentation for the constant called Layout to see how to represent
// the format. The second argument must be parseable using the format string
// (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. Years must be in the range 0000…9999. The day of the week
// is checked for syntax but is otherwise ignored.
//
// For layouts specifying the two-digit year 06, a value NN >= 69 will be
// treated as 19NN and a value NN < 69 will be treated as 20NN.
//
// The millisecond ".000" accepts a comma instead of the period. A value may
// carry a fraction after the seconds even if the layout has none, in which
// case it is truncated to milliseconds.
//
// Unlike [Of], Parse validates the ranges of all fields.
func Parse(layout, value string) (Instant, error) {
	p := newParser(value)
	var (
		// kept around for error reporting
		alayout, avalue = layout, value
		year            int
		month           int = -1
		day             int = -1
		yday            int = -1
		hour, min, sec  int
		msec            int
	)

	prog := memo.Get(layout, parseLayout)

	// Execute the parsing instructions
	for k, i := range prog {
		p.setInst(i)
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opYear:
			year = p.atoi(2)
			if year >= 69 { // Unix time starts Dec 31 1969 in some time zones
				year += 1900
			} else {
				year += 2000
			}
		case opUnderLongYear:
			p.accept("_")
			fallthrough
		case opLongYear:
			p.peekDigit()
			year = p.atoi(4)
		case opMonth:
			month = p.lookup(shortMonthNames) + 1
		case opLongMonth:
			month = p.lookup(longMonthNames) + 1
		case opNumMonth, opZeroMonth:
			month = p.num(i.op == opZeroMonth)
			if month <= 0 || 12 < month {
				return Instant{}, p.err(alayout, avalue, "month out of range")
			}
		case opWeekDay:
			// ignore weekday, except for parsing
			p.lookup(shortDayNames)
		case opLongWeekDay:
			// ignore weekday, except for parsing
			p.lookup(longDayNames)
		case opUnderDay:
			p.skipByte(' ')
			fallthrough
		case opDay, opZeroDay:
			day = p.num(i.op == opZeroDay)
		case opUnderYearDay:
			p.skipByte(' ')
			p.skipByte(' ')
			fallthrough
		case opZeroYearDay:
			yday = p.num3(i.op == opZeroYearDay)
		case opHour:
			hour = p.num(false)
			if hour >= hoursPerDay {
				return Instant{}, p.err(alayout, avalue, "hour out of range")
			}
		case opZeroMinute:
			min = p.num(true)
			if min >= minutesPerHour {
				return Instant{}, p.err(alayout, avalue, "minute out of range")
			}
		case opZeroSecond:
			sec = p.num(true)
			if sec >= secondsPerMinute {
				return Instant{}, p.err(alayout, avalue, "second out of range")
			}
			if !fracFollows(prog[k+1:]) {
				msec = p.fraction()
			}
		case opMillisecond:
			if p.value != "" && (p.value[0] == '.' || p.value[0] == ',') {
				p.value = p.value[1:]
				msec = p.getnumN(3, true)
			} else {
				p.parseFailed()
			}
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return Instant{}, p.err(alayout, avalue, "")
		}
	}
	if len(p.value) > 0 {
		return Instant{}, p.err(alayout, avalue, "extra text: "+strconv.Quote(p.value))
	}
	p.finish()

	// Validate the parsed date
	if yday >= 0 {
		var (
			d int
			m int
		)
		if IsLeapYear(year) {
			if yday == 31+29 {
				m = int(time.February)
				d = 29
			} else if yday > 31+29 {
				yday--
			}
		}
		if yday < 1 || yday > 365 {
			return Instant{}, p.err(alayout, avalue, "day-of-year out of range")
		}
		if m == 0 {
			m = (yday-1)/31 + 1
			if daysBefore[m] < yday {
				m++
			}
			d = yday - daysBefore[m-1]
		}
		// If month, day already seen, yday's m, d must match.
		// Otherwise, set them from m, d.
		if month >= 0 && month != m {
			return Instant{}, p.err(alayout, avalue, "day-of-year does not match month")
		}
		month = m
		if day >= 0 && day != d {
			return Instant{}, p.err(alayout, avalue, "day-of-year does not match day")
		}
		day = d
	} else {
		if month < 0 {
			month = int(time.January)
		}
		if day < 0 {
			day = 1
		}
	}
	// Validate the day of the month.
	if day < 1 || day > DaysInMonth(time.Month(month), year) {
		return Instant{}, p.err(alayout, avalue, "day out of range")
	}
	return Of(year, time.Month(month), day, hour, min, sec, msec), nil
}

// fracFollows reports whether the next operator in prog is opMillisecond.
func fracFollows(prog program) bool {
	for _, i := range prog {
		if i.op != opLiteral {
			return i.op == opMillisecond
		}
	}
	return false
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

type parser struct {
	inst   inst
	hasErr bool
	value  string
	valEl  string
}

func newParser(value string) *parser {
	return &parser{
		value: value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

func (p *parser) err(layout, value, msg string) error {
	// The strings.Clone calls keep the input from escaping in the happy path,
	// at the cost of an extra allocation when reporting an error.
	v := strings.Clone(value)
	if msg == "" {
		ve := strings.Clone(p.valEl)
		le := strings.Clone(p.inst.String())
		return &ParseError{
			Layout:     layout,
			Value:      v,
			LayoutElem: le,
			ValueElem:  ve,
		}
	}
	return &ParseError{
		Layout:  layout,
		Value:   v,
		Message: msg,
	}
}

// skipByte skips the given byte, if the input starts with it.
func (p *parser) skipByte(b byte) {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// atoi accepts the next i bytes of input as an integer.
func (p *parser) atoi(i int) int {
	if len(p.value) < i {
		p.parseFailed()
		return 0
	}
	v, err := strconv.Atoi(p.value[:i])
	if err != nil {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return v
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// num3 parses s[:1], s[:2] or s[:3] (fixed forces s[:3]) as a decimal integer.
func (p *parser) num3(fixed bool) int {
	return p.getnumN(3, fixed)
}

// fraction accepts a fractional second that the layout does not ask for,
// like "05" matching "05.123". The fraction is truncated to milliseconds.
func (p *parser) fraction() int {
	if len(p.value) < 2 || (p.value[0] != '.' && p.value[0] != ',') || !isDigit(p.value, 1) {
		return 0
	}
	n, scale := 0, 100
	i := 1
	for ; isDigit(p.value, i); i++ {
		n += int(p.value[i]-'0') * scale
		scale /= 10
	}
	p.value = p.value[i:]
	return n
}

// peekDigit ensures that the current value starts with a digit, without
// advancing the input.
func (p *parser) peekDigit() {
	if !isDigit(p.value, 0) {
		p.parseFailed()
	}
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// ParseError describes a problem parsing an Instant.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing time %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing time %q: %s", e.Value, e.Message)
}
