package budget

import (
	"strings"
)

// ExportCSV renders the budget lines and totals. Descriptions are quoted.
func ExportCSV(b Budget) string {
	var sb strings.Builder
	sb.WriteString("Budget Report\n")
	sb.WriteString("Name," + b.Name + "\n")
	sb.WriteString("Project," + b.ProjectName + "\n")
	sb.WriteString("Status," + string(b.Status) + "\n\n")

	sb.WriteString("Category,Description,Estimated,Actual,Variance\n")
	for _, it := range b.Items {
		name, _ := categoryName(it.CategoryID)
		sb.WriteString(name + ",")
		sb.WriteString(`"` + strings.ReplaceAll(it.Description, `"`, `""`) + `",`)
		sb.WriteString(it.EstimatedAmount.String() + "," + it.ActualAmount.String() + ",")
		sb.WriteString(it.ActualAmount.Sub(it.EstimatedAmount).String() + "\n")
	}

	sb.WriteString("\nSummary\n")
	sb.WriteString("Total Estimated," + b.TotalEstimated.String() + "\n")
	sb.WriteString("Total Actual," + b.TotalActual.String() + "\n")
	sb.WriteString("Variance," + b.Variance.String() + "\n")
	return sb.String()
}
