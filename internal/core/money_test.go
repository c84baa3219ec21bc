package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.0", "1", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{"0", "0", true},
		{" 2.50 ", "2.5", true},
		{"1 250.75", "1250.75", true},
		{"100_000", "100000", true},
		{"-1", "", false},
		{"+1", "", false},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParsePositiveAmount(t *testing.T) {
	if _, err := ParsePositiveAmount("0"); err == nil {
		t.Fatalf("expected error for zero")
	}
	if d, err := ParsePositiveAmount("0.01"); err != nil || !d.Equal(decimal.RequireFromString("0.01")) {
		t.Fatalf("expected 0.01, got %s (err=%v)", d, err)
	}
}

func TestPercentAndSum(t *testing.T) {
	if got := Percent(decimal.NewFromInt(1000), decimal.NewFromInt(15)); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected 150, got %s", got)
	}
	if got := Sum(decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.RequireFromString("0.5")); !got.Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("expected 3.5, got %s", got)
	}
	if got := Sum(); !got.IsZero() {
		t.Fatalf("expected 0, got %s", got)
	}
}
