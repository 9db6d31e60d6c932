package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.February, 30)
	if want := New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
	if !got.IsValid() {
		t.Errorf("New() returned an invalid date")
	}
}

func TestFromSerial(t *testing.T) {
	testCases := []struct {
		serial float64
		want   Date
		ok     bool
	}{
		{44340, New(2021, time.May, 24), true},
		{44340.75, New(2021, time.May, 24), true},
		{45658, New(2025, time.January, 1), true},
		{10000, Invalid, false},
		{100000, Invalid, false},
		{42, Invalid, false},
	}
	for _, tc := range testCases {
		got, ok := FromSerial(tc.serial)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromSerial(%v) = %v, %v, want %v, %v", tc.serial, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseText(t *testing.T) {
	testCases := []struct {
		input string
		want  Date
	}{
		{"2021-05-24", New(2021, time.May, 24)},
		{"2021-5-4", New(2021, time.May, 4)},
		{" 24 May 2021 ", New(2021, time.May, 24)},
		{"24-May-2021", New(2021, time.May, 24)},
		{"May 24, 2021", New(2021, time.May, 24)},
		{"05/24/2021", New(2021, time.May, 24)},
		{"2021-05-24T23:10:00Z", New(2021, time.May, 24)},
		{"2021-05-24 08:30:00", New(2021, time.May, 24)},
		{"44340", New(2021, time.May, 24)},
		{"20210524", New(2021, time.May, 24)},
		{"", Invalid},
		{"not a date", Invalid},
		{"1234", Invalid},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseText(tc.input)
			if got != tc.want {
				t.Errorf("ParseText(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if ok != tc.want.IsValid() {
				t.Errorf("ParseText(%q) ok = %v, want %v", tc.input, ok, tc.want.IsValid())
			}
		})
	}
}

func TestCompare(t *testing.T) {
	d1 := New(2021, time.May, 24)
	d2 := New(2021, time.May, 25)

	testCases := []struct {
		name string
		a, b Date
		want int
	}{
		{"before", d1, d2, -1},
		{"after", d2, d1, 1},
		{"equal", d1, d1, 0},
		{"invalid after valid", Invalid, d2, 1},
		{"valid before invalid", d1, Invalid, -1},
		{"invalid equal invalid", Invalid, Invalid, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	var d Date
	if d.IsValid() {
		t.Errorf("zero Date is valid, want Invalid")
	}
	if got := d.String(); got != "Invalid Date" {
		t.Errorf("Invalid.String() = %q, want %q", got, "Invalid Date")
	}
	if got := d.Add(3); got.IsValid() {
		t.Errorf("Invalid.Add(3) = %v, want Invalid", got)
	}
}

func TestJSON(t *testing.T) {
	for _, d := range []Date{New(2021, time.May, 24), Invalid} {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("json.Marshal(%v) failed: %v", d, err)
		}
		var got Date
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
		}
		if got != d {
			t.Errorf("json round trip of %v = %v (%s)", d, got, data)
		}
	}
}
