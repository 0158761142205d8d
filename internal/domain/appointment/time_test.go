package appointment

import "testing"

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{in: "2:30 PM", expected: "14:30"},
		{in: "12:00 PM", expected: "12:00"},
		{in: "12:00 AM", expected: "00:00"},
		{in: "12:30 AM", expected: "00:30"},
		{in: "1:05 AM", expected: "01:05"},
		{in: "11:59 PM", expected: "23:59"},
		{in: "09:15", expected: "09:15"},
		{in: "14:30", expected: "14:30"},
		{in: "0:00", expected: "00:00"},
		{in: "23:45", expected: "23:45"},
		{in: "2:30 pm", expected: "14:30"},
		{in: "  7:45 AM ", expected: "07:45"},
	}

	for _, c := range cases {
		got, err := To24Hour(c.in)
		if err != nil {
			t.Fatalf("To24Hour(%q) returned error: %v", c.in, err)
		}
		if got != c.expected {
			t.Fatalf("To24Hour(%q): expected %s, got %s", c.in, c.expected, got)
		}
	}
}

func TestTo24HourRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"25:00",
		"13:00 PM",
		"0:30 AM",
		"12:60",
		"noon",
		"12",
		"7:5:9",
	}

	for _, in := range cases {
		if _, err := To24Hour(in); err == nil {
			t.Fatalf("To24Hour(%q): expected error, got none", in)
		}
	}
}
