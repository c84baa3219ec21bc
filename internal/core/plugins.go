package core

const (
	pluginVersion = "1.0.0"
	pluginAuthor  = "BuildLedger Team"
)

// DefaultPlugins is the catalog shown before the user has toggled anything.
func DefaultPlugins() []Plugin {
	return []Plugin{
		{ID: "invoice-generator", Name: "Invoice Generator", Description: "Create and send professional invoices to clients", Version: pluginVersion, Icon: "file-text", Author: pluginAuthor},
		{ID: "project-tracker", Name: "Project Tracker", Description: "Track expenses and income by construction project", Version: pluginVersion, Icon: "folder", Author: pluginAuthor},
		{ID: "tax-calculator", Name: "Tax Calculator", Description: "Estimate taxes and generate tax reports", Version: pluginVersion, Icon: "percent", Author: pluginAuthor},
		{ID: "receipt-scanner", Name: "Receipt Scanner", Description: "Scan receipts and auto-create expense entries", Version: pluginVersion, Icon: "camera", Author: pluginAuthor},
		{ID: "budget-planner", Name: "Budget Planner", Description: "Set budgets and get alerts when exceeding limits", Version: pluginVersion, Icon: "pie-chart", Author: pluginAuthor},
		{ID: "export-reports", Name: "Export Reports", Description: "Export financial data to PDF or Excel", Version: pluginVersion, Icon: "download", Author: pluginAuthor},
	}
}
