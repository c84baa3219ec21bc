package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CompanionPrefix prefixes the id of the expense derived from a paid labor payment.
const CompanionPrefix = "labor_"

// OvertimeMultiplier is applied to the hourly rate when no overtime rate is given.
var OvertimeMultiplier = decimal.NewFromFloat(1.5)

// LaborInput carries the fields a user enters for a weekly labor payment.
type LaborInput struct {
	Worker        Worker
	WeekOf        Date // any day of the week; aligned to Monday
	DaysWorked    int
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	// OvertimeRate defaults to HourlyRate*1.5 when zero.
	OvertimeRate decimal.Decimal
	IsPaid       bool
	Notes        string
}

// DefaultOvertimeRate returns hourlyRate*1.5.
func DefaultOvertimeRate(hourlyRate decimal.Decimal) decimal.Decimal {
	return hourlyRate.Mul(OvertimeMultiplier)
}

// LaborTotal is regularHours*hourlyRate + overtimeHours*overtimeRate.
func LaborTotal(regularHours, hourlyRate, overtimeHours, overtimeRate decimal.Decimal) decimal.Decimal {
	return regularHours.Mul(hourlyRate).Add(overtimeHours.Mul(overtimeRate))
}

// NewLaborPayment builds a payment with a fresh id, a Monday-aligned week
// and a computed total.
func NewLaborPayment(in LaborInput, now time.Time) (LaborPayment, error) {
	if strings.TrimSpace(in.Worker.Name) == "" {
		return LaborPayment{}, ErrEmptyName
	}
	if in.WeekOf.IsZero() {
		in.WeekOf = DateOf(now)
	}
	overtimeRate := in.OvertimeRate
	if overtimeRate.IsZero() {
		overtimeRate = DefaultOvertimeRate(in.Worker.HourlyRate)
	}
	p := LaborPayment{
		ID:            NewID(),
		WorkerID:      in.Worker.ID,
		WorkerName:    in.Worker.Name,
		DaysWorked:    in.DaysWorked,
		RegularHours:  in.RegularHours,
		OvertimeHours: in.OvertimeHours,
		HourlyRate:    in.Worker.HourlyRate,
		OvertimeRate:  overtimeRate,
		WeekStart:     WeekStart(in.WeekOf),
		IsPaid:        in.IsPaid,
		Notes:         in.Notes,
		CreatedAt:     now.UTC(),
	}
	p.TotalAmount = LaborTotal(p.RegularHours, p.HourlyRate, p.OvertimeHours, p.OvertimeRate)
	if err := p.Validate(); err != nil {
		return LaborPayment{}, err
	}
	return p, nil
}

// CompanionID is the transaction id mirroring payment id.
func CompanionID(paymentID string) string {
	return CompanionPrefix + paymentID
}

// IsCompanionID reports whether a transaction id was derived from a labor payment.
func IsCompanionID(id string) bool {
	return strings.HasPrefix(id, CompanionPrefix)
}

// CompanionTransaction derives the expense recorded for a paid labor payment.
func CompanionTransaction(p LaborPayment, now time.Time) Transaction {
	return Transaction{
		ID:          CompanionID(p.ID),
		Type:        Expense,
		Amount:      p.TotalAmount,
		Category:    CategoryLabor,
		Description: fmt.Sprintf("Salary: %s (%dd, %shrs)", p.WorkerName, p.DaysWorked, p.TotalHours().String()),
		Date:        p.WeekStart,
		CreatedAt:   now.UTC(),
	}
}

// WorkAmount prices a piece of work. Days*hoursPerDay*hourlyRate wins when all
// three are set, then quantity*unitPrice, otherwise zero.
func WorkAmount(days, hoursPerDay, hourlyRate, quantity, unitPrice decimal.Decimal) decimal.Decimal {
	if !days.IsZero() && !hoursPerDay.IsZero() && !hourlyRate.IsZero() {
		return days.Mul(hoursPerDay).Mul(hourlyRate)
	}
	if !quantity.IsZero() && !unitPrice.IsZero() {
		return quantity.Mul(unitPrice)
	}
	return decimal.Zero
}

// WorkFormulaText renders "days×hours×rate", or "" when any factor is missing.
func WorkFormulaText(days, hoursPerDay, hourlyRate decimal.Decimal) string {
	if days.IsZero() || hoursPerDay.IsZero() || hourlyRate.IsZero() {
		return ""
	}
	return days.String() + "×" + hoursPerDay.String() + "×" + hourlyRate.String()
}
