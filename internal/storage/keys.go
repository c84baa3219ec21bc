package storage

// Storage keys. One JSON document per key.
const (
	KeyTransactions      = "@buildledger_transactions"
	KeyLaborPayments     = "@buildledger_labor_payments"
	KeyWorkers           = "@buildledger_workers"
	KeyPlugins           = "@buildledger_plugins"
	KeySettings          = "@buildledger_settings"
	KeyMaterialEstimates = "@buildledger_material_estimates"
	KeyInvoices          = "@buildledger_invoices"
	KeyBudgets           = "@buildledger_budgets"
	KeyCurrencySettings  = "@buildledger_currency_settings"
)

// AllKeys lists every key the application owns.
func AllKeys() []string {
	return []string{
		KeyTransactions,
		KeyLaborPayments,
		KeyWorkers,
		KeyPlugins,
		KeySettings,
		KeyMaterialEstimates,
		KeyInvoices,
		KeyBudgets,
		KeyCurrencySettings,
	}
}
