package utils

import (
	"testing"

	"backend/internal/domain"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"92981234567", "92 98123-4567"},
		{"5592981234567", "92 98123-4567"},
		{"(92) 98123-4567", "92 98123-4567"},
		{"+55 (11) 99876-0001", "92 99876-0001"},
		{"11987654321", "92 98765-4321"},
	}
	for _, tc := range cases {
		got, err := FormatPhone(tc.in, "92")
		if err != nil {
			t.Errorf("FormatPhone(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPhoneRejectsShortNumbers(t *testing.T) {
	for _, in := range []string{"", "abc", "981234567", "9812345", "55 9 8123"} {
		if _, err := FormatPhone(in, "92"); err == nil {
			t.Errorf("FormatPhone(%q) = nil error, want validation error", in)
		} else if !domain.IsValidation(err) {
			t.Errorf("FormatPhone(%q) error = %v, want ValidationError", in, err)
		}
	}
}

func TestFormatName(t *testing.T) {
	if got := FormatName("  joão  "); got != "JOÃO" {
		t.Errorf("FormatName = %q, want JOÃO", got)
	}
	// idempotent
	once := FormatName("maria da silva")
	if twice := FormatName(once); twice != once {
		t.Errorf("FormatName not idempotent: %q vs %q", once, twice)
	}
}
