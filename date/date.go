// Package date implements a day-granular calendar date for value dates read from
// trade sheets. Unlike time.Time, the zero Date is meaningful: it is the Invalid
// sentinel produced when a cell cannot be interpreted as a date.
package date

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// invalidText is how an Invalid date renders.
const invalidText = "Invalid Date"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// Invalid is the sentinel for a date that could not be parsed. It is the zero value.
var Invalid = Date{}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the day of t, in t's location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// IsValid reports whether d is a real calendar day.
func (d Date) IsValid() bool { return d != Invalid }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns midnight UTC of that day. It panics on Invalid.
func (d Date) Time() time.Time {
	if !d.IsValid() {
		panic("date: Time called on Invalid date")
	}
	return d.time()
}

// Before reports whether the day d is before x, using the Compare order.
func (d Date) Before(x Date) bool { return Compare(d, x) < 0 }

// After reports whether the day d is after x, using the Compare order.
func (d Date) After(x Date) bool { return Compare(d, x) > 0 }

// Add returns a new Date with the given number of days added.
// Adding to Invalid returns Invalid.
func (d Date) Add(i int) Date {
	if !d.IsValid() {
		return Invalid
	}
	return New(d.y, d.m, d.d+i)
}

// String format the date in its standard format.
func (d Date) String() string {
	if !d.IsValid() {
		return invalidText
	}
	return d.time().Format(DateFormat)
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or after b.
// Invalid dates sort after every valid date and are equal to each other.
func Compare(a, b Date) int {
	switch {
	case !a.IsValid() && !b.IsValid():
		return 0
	case !a.IsValid():
		return 1
	case !b.IsValid():
		return -1
	}
	return a.time().Compare(b.time())
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Invalid, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return FromTime(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Spreadsheet serial day counts are only recognised in this open range,
// roughly 1927 to 2173.
const (
	minSerial = 10000
	maxSerial = 100000
)

// serialEpoch is day zero of the 1900 spreadsheet date system, shifted by the
// Lotus 1-2-3 leap year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// FromSerial converts a spreadsheet serial day count into a Date. The fractional
// part (time of day) is dropped. It returns false when serial is outside the
// recognised range.
func FromSerial(serial float64) (Date, bool) {
	if math.IsNaN(serial) || serial <= minSerial || serial >= maxSerial {
		return Invalid, false
	}
	days := int(math.Floor(serial))
	return FromTime(serialEpoch.AddDate(0, 0, days)), true
}

// textLayouts are the free-text layouts accepted by ParseText, most specific first.
var textLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	readDateFormat,
	"2006/1/2",
	"2006.1.2",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
	"Mon, 2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	"20060102",
}

// ParseText parses a free-text calendar date, trying the serial day count form first
// and then every known layout. Slash dates are read month first.
func ParseText(str string) (Date, bool) {
	s := strings.TrimSpace(str)
	if s == "" {
		return Invalid, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if d, ok := FromSerial(f); ok {
			return d, true
		}
	}
	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), true
		}
	}
	return Invalid, false
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
// The empty string decodes to Invalid.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Invalid
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON encodes the date in its standard format, and Invalid as "".
func (j Date) MarshalJSON() ([]byte, error) {
	str := ""
	if j.IsValid() {
		str = j.String()
	}
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
