package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

type AlertType string

const (
	AlertOverBudget       AlertType = "over-budget"
	AlertApproachingLimit AlertType = "approaching-limit"
	AlertOnTrack          AlertType = "on-track"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

var (
	approachingRatio = decimal.RequireFromString("0.9")
	itemOverRatio    = decimal.RequireFromString("1.2")
)

type (
	CategoryTotal struct {
		CategoryID   string          `json:"categoryId"`
		CategoryName string          `json:"categoryName"`
		Estimated    decimal.Decimal `json:"estimated"`
		Actual       decimal.Decimal `json:"actual"`
		Variance     decimal.Decimal `json:"variance"`
	}

	Alert struct {
		Type      AlertType `json:"type"`
		Message   string    `json:"message"`
		MessageBn string    `json:"messageBn"`
		Severity  Severity  `json:"severity"`
	}

	Formatted struct {
		TotalEstimated  string `json:"formattedTotalEstimated"`
		TotalActual     string `json:"formattedTotalActual"`
		Variance        string `json:"formattedVariance"`
		VariancePercent string `json:"formattedVariancePercent"`
		Status          string `json:"status"`
		StatusBn        string `json:"statusBn"`
	}

	Report struct {
		Summary           string `json:"summary"`
		CategoryBreakdown string `json:"categoryBreakdown"`
		Alerts            string `json:"alerts"`
	}
)

func categoryName(id string) (string, string) {
	if c, ok := refdata.CategoryByID(id); ok {
		return c.Name, c.NameBn
	}
	return id, id
}

// ByCategory totals items per category in order of first appearance.
func ByCategory(b Budget) []CategoryTotal {
	var out []CategoryTotal
	index := map[string]int{}
	for _, it := range b.Items {
		i, ok := index[it.CategoryID]
		if !ok {
			name, _ := categoryName(it.CategoryID)
			out = append(out, CategoryTotal{CategoryID: it.CategoryID, CategoryName: name, Estimated: decimal.Zero, Actual: decimal.Zero})
			i = len(out) - 1
			index[it.CategoryID] = i
		}
		out[i].Estimated = out[i].Estimated.Add(it.EstimatedAmount)
		out[i].Actual = out[i].Actual.Add(it.ActualAmount)
	}
	for i := range out {
		out[i].Variance = out[i].Actual.Sub(out[i].Estimated)
	}
	return out
}

// Format renders the totals. A zero variance counts as over budget.
func Format(b Budget) Formatted {
	f := Formatted{
		TotalEstimated:  refdata.FormatCurrency(b.TotalEstimated, b.Currency),
		TotalActual:     refdata.FormatCurrency(b.TotalActual, b.Currency),
		Variance:        refdata.FormatCurrency(b.Variance.Abs(), b.Currency),
		VariancePercent: b.VariancePercent.Abs().StringFixed(1) + "%",
		Status:          "Under Budget",
		StatusBn:        "বাজেটের মধ্যে",
	}
	if !b.Variance.IsNegative() {
		f.Status = "Over Budget"
		f.StatusBn = "বাজেট অতিক্রম"
	}
	return f
}

// CheckAlerts returns one overall alert followed by a warning for every item
// whose actual exceeds 120% of its estimate.
func CheckAlerts(b Budget) []Alert {
	var alerts []Alert
	switch {
	case b.TotalActual.GreaterThan(b.TotalEstimated):
		alerts = append(alerts, Alert{
			Type:      AlertOverBudget,
			Message:   "Total expenses have exceeded the budget!",
			MessageBn: "মোট খরচ বাজেট অতিক্রম করেছে!",
			Severity:  SeverityError,
		})
	case b.TotalActual.GreaterThan(b.TotalEstimated.Mul(approachingRatio)):
		alerts = append(alerts, Alert{
			Type:      AlertApproachingLimit,
			Message:   "Expenses are approaching the budget limit (90%)",
			MessageBn: "খরচ বাজেট সীমার কাছাকাছি (৯০%)",
			Severity:  SeverityWarning,
		})
	default:
		alerts = append(alerts, Alert{
			Type:      AlertOnTrack,
			Message:   "Budget is on track",
			MessageBn: "বাজেট ঠিক আছে",
			Severity:  SeveritySuccess,
		})
	}

	for _, it := range b.Items {
		if it.ActualAmount.GreaterThan(it.EstimatedAmount.Mul(itemOverRatio)) {
			name, nameBn := categoryName(it.CategoryID)
			alerts = append(alerts, Alert{
				Type:      AlertOverBudget,
				Message:   name + ": Significantly over budget",
				MessageBn: nameBn + ": উল্লেখযোগ্যভাবে বাজেট অতিক্রম",
				Severity:  SeverityWarning,
			})
		}
	}
	return alerts
}

// GenerateReport renders a plain-text report in three parts.
func GenerateReport(b Budget) Report {
	f := Format(b)
	summary := fmt.Sprintf("Budget Report: %s\nProject: %s\n\nTotal Estimated: %s\nTotal Actual: %s\nVariance: %s (%s)\nStatus: %s",
		b.Name, b.ProjectName, f.TotalEstimated, f.TotalActual, f.Variance, f.VariancePercent, f.Status)

	var cats []string
	for _, c := range ByCategory(b) {
		cats = append(cats, fmt.Sprintf("%s: %s estimated, %s actual",
			c.CategoryName, refdata.FormatCurrency(c.Estimated, b.Currency), refdata.FormatCurrency(c.Actual, b.Currency)))
	}

	var alerts []string
	for _, a := range CheckAlerts(b) {
		alerts = append(alerts, fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Severity)), a.Message))
	}

	return Report{
		Summary:           summary,
		CategoryBreakdown: strings.Join(cats, "\n"),
		Alerts:            strings.Join(alerts, "\n"),
	}
}

func (r Report) String() string {
	return r.Summary + "\n\n" + r.CategoryBreakdown + "\n\n" + r.Alerts
}
