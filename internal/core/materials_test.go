package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCalculateMaterials(t *testing.T) {
	cases := []struct {
		area   string
		floors int
		want   [5]int64 // cement, sand, bricks, steel, aggregate
	}{
		{"1000", 1, [5]int64{400, 816, 8000, 4000, 608}},
		{"1000", 2, [5]int64{800, 1632, 16000, 8000, 1216}},
		{"1", 1, [5]int64{1, 1, 8, 4, 1}},
		{"1200", 0, [5]int64{480, 980, 9600, 4800, 730}}, // floors < 1 count as 1
	}
	for i, tc := range cases {
		q := CalculateMaterials(decimal.RequireFromString(tc.area), tc.floors)
		got := [5]decimal.Decimal{q.Cement, q.Sand, q.Bricks, q.Steel, q.Aggregate}
		for j := range got {
			if !got[j].Equal(decimal.NewFromInt(tc.want[j])) {
				t.Fatalf("case %d material %d expected %d, got %s", i, j, tc.want[j], got[j])
			}
		}
	}
}

func TestNewMaterialEstimate(t *testing.T) {
	e, err := NewMaterialEstimate(" Ground floor ", decimal.NewFromInt(1000), 1, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Name != "Ground floor" || !e.Cement.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected estimate %+v", e)
	}
	if _, err := NewMaterialEstimate("x", decimal.Zero, 1, time.Now()); !errors.Is(err, ErrInvalidArea) {
		t.Fatalf("expected ErrInvalidArea, got %v", err)
	}
	if _, err := NewMaterialEstimate("x", decimal.NewFromInt(10), 0, time.Now()); !errors.Is(err, ErrInvalidFloors) {
		t.Fatalf("expected ErrInvalidFloors, got %v", err)
	}
}
