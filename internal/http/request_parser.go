package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
)

const (
	maxBodyBytes   = 1 << 20
	maxBackupBytes = 32 << 20
)

var (
	// ErrBadRequest wraps every failure to read or decode a request.
	ErrBadRequest    = errors.New("bad request")
	errRouteNotFound = errors.New("route not found")
)

// decodeJSON reads one JSON document of at most limit bytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, limit int64) error {
	body, err := readBody(w, r, limit)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrBadRequest)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("%w: malformed JSON at offset %d", ErrBadRequest, syntaxErr.Offset)
		case errors.As(err, &typeErr):
			return fmt.Errorf("%w: field %q has the wrong type", ErrBadRequest, typeErr.Field)
		default:
			return fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
	}
	return nil
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrBadRequest, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return body, nil
}

// ParsePeriod reads ?period=, defaulting to the current month.
func ParsePeriod(query url.Values) (core.PeriodFilter, error) {
	v := strings.ToLower(strings.TrimSpace(query.Get("period")))
	if v == "" {
		return core.PeriodMonth, nil
	}
	p := core.PeriodFilter(v)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidPeriod, v)
	}
	return p, nil
}

// ParseDateParam reads a YYYY-MM-DD query value, defaulting to today.
func ParseDateParam(query url.Values, name string, now time.Time) (core.Date, error) {
	v := strings.TrimSpace(query.Get(name))
	if v == "" {
		return core.DateOf(now), nil
	}
	return core.ParseDate(v)
}

// amountOrZero treats a missing decimal as zero.
func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// sanitizeInput trims and drops control characters other than tab and newlines.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
