package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"buildledger/internal/core"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		want    core.PeriodFilter
		wantErr error
	}{
		{"default", url.Values{}, core.PeriodMonth, nil},
		{"week", url.Values{"period": {"week"}}, core.PeriodWeek, nil},
		{"mixed case", url.Values{"period": {" Year "}}, core.PeriodYear, nil},
		{"invalid", url.Values{"period": {"decade"}}, "", core.ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("period = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		want    string
		wantErr bool
	}{
		{"defaults to today", url.Values{}, "2025-01-08", false},
		{"explicit", url.Values{"date": {"2024-12-31"}}, "2024-12-31", false},
		{"wrong layout", url.Values{"date": {"31/12/2024"}}, "", true},
		{"impossible day", url.Values{"date": {"2025-02-30"}}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateParam(tt.query, "date", fixedNow)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("date = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string    `json:"name"`
		Count int       `json:"count"`
		Date  core.Date `json:"date"`
	}
	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr string
	}{
		{"valid", `{"name":"a","count":2,"date":"2025-01-08"}`, maxBodyBytes, ""},
		{"empty", ``, maxBodyBytes, "empty body"},
		{"syntax", `{"name":`, maxBodyBytes, "malformed JSON"},
		{"type", `{"count":"two"}`, maxBodyBytes, `field "count"`},
		{"domain", `{"date":"yesterday"}`, maxBodyBytes, "bad request"},
		{"too large", `{"name":"` + strings.Repeat("x", 64) + `"}`, 16, "exceeds 16 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := decodeJSON(httptest.NewRecorder(), r, &p, tt.limit)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p.Name != "a" || p.Count != 2 || p.Date.String() != "2025-01-08" {
					t.Fatalf("decoded %+v", p)
				}
				return
			}
			if !errors.Is(err, ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := map[string]string{
		"  plain  ":           "plain",
		"line\nbreak":         "line\nbreak",
		"bell\a and null\x00": "bell and null",
		"ইট\tবালি":            "ইট\tবালি",
	}
	for in, want := range tests {
		if got := sanitizeInput(in); got != want {
			t.Fatalf("sanitizeInput(%q) = %q, want %q", in, got, want)
		}
	}
}
