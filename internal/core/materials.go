package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Per square foot of built-up area.
var (
	cementPerSqFt    = decimal.RequireFromString("0.4")   // bags
	sandPerSqFt      = decimal.RequireFromString("0.816") // cft
	bricksPerSqFt    = decimal.NewFromInt(8)              // pcs
	steelPerSqFt     = decimal.NewFromInt(4)              // kg
	aggregatePerSqFt = decimal.RequireFromString("0.608") // cft
)

// MaterialQuantities are the rounded-up quantities needed for an area.
type MaterialQuantities struct {
	Cement    decimal.Decimal `json:"cement"`
	Sand      decimal.Decimal `json:"sand"`
	Bricks    decimal.Decimal `json:"bricks"`
	Steel     decimal.Decimal `json:"steel"`
	Aggregate decimal.Decimal `json:"aggregate"`
}

// MaterialEstimate is a saved calculation.
type MaterialEstimate struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Area   decimal.Decimal `json:"area"`
	Floors int             `json:"floors"`
	MaterialQuantities
	CreatedAt time.Time `json:"createdAt"`
}

// CalculateMaterials returns ceil(area*floors*coefficient) for each material.
// Floors below one count as one.
func CalculateMaterials(area decimal.Decimal, floors int) MaterialQuantities {
	if floors < 1 {
		floors = 1
	}
	total := area.Mul(decimal.NewFromInt(int64(floors)))
	return MaterialQuantities{
		Cement:    total.Mul(cementPerSqFt).Ceil(),
		Sand:      total.Mul(sandPerSqFt).Ceil(),
		Bricks:    total.Mul(bricksPerSqFt).Ceil(),
		Steel:     total.Mul(steelPerSqFt).Ceil(),
		Aggregate: total.Mul(aggregatePerSqFt).Ceil(),
	}
}

// NewMaterialEstimate validates the inputs and computes the quantities.
func NewMaterialEstimate(name string, area decimal.Decimal, floors int, now time.Time) (MaterialEstimate, error) {
	e := MaterialEstimate{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		Area:      area,
		Floors:    floors,
		CreatedAt: now.UTC(),
	}
	if err := e.Validate(); err != nil {
		return MaterialEstimate{}, err
	}
	e.MaterialQuantities = CalculateMaterials(area, floors)
	return e, nil
}

func (e MaterialEstimate) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if e.Name == "" {
		return ErrEmptyName
	}
	if !e.Area.IsPositive() {
		return ErrInvalidArea
	}
	if e.Floors < 1 {
		return ErrInvalidFloors
	}
	return nil
}
