package tax

import (
	"fmt"
	"time"

	"buildledger/internal/core"
)

// Year is a Bangladesh fiscal year, 1 July to 30 June.
type Year struct {
	Start core.Date `json:"start"`
	End   core.Date `json:"end"`
}

// CurrentYear returns the fiscal year containing now.
func CurrentYear(now time.Time) Year {
	y := now.Year()
	if now.Month() < time.July {
		y--
	}
	return Year{Start: core.NewDate(y, 7, 1), End: core.NewDate(y+1, 6, 30)}
}

// Label renders e.g. "2024-25".
func (y Year) Label() string {
	return fmt.Sprintf("%d-%02d", y.Start.Year(), y.End.Year()%100)
}

// Contains reports whether d falls within the year.
func (y Year) Contains(d core.Date) bool {
	return !d.Before(y.Start) && !y.End.Before(d)
}
