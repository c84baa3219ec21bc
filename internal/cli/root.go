package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"buildledger/internal/backup"
	"buildledger/internal/core"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

var version = "1.0.0"

// App carries what every command needs. Commands write to Out only.
type App struct {
	Repo   *storage.Repository
	Backup *backup.Service
	Logger *log.Logger
	Out    io.Writer
	Now    func() time.Time

	asJSON bool
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Logger == nil {
		app.Logger = log.Default()
	}
	app.Logger = app.Logger.WithComponent(log.ComponentCLI)

	root := &cobra.Command{
		Use:   "buildledger",
		Short: "Construction accounting for Bangladesh",
		Long: `buildledger keeps the books of a construction business: income and
expenses, weekly labor payments, invoices, budgets, material estimates and
Bangladesh VAT and income tax.

Data lives in the store selected by DATA_BACKEND (memory, sqlite, postgres,
redis). A .env file in the working directory is loaded first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)
	root.PersistentFlags().BoolVar(&app.asJSON, "json", false, "Print results as JSON")

	root.AddCommand(
		newTaxCommand(app),
		newMaterialsCommand(app),
		newPricesCommand(app),
		newTransactionsCommand(app),
		newWorkersCommand(app),
		newLaborCommand(app),
		newInvoiceCommand(app),
		newBudgetCommand(app),
		newBackupCommand(app),
		newExportCommand(app),
		newPluginsCommand(app),
		newCurrencyCommand(app),
	)
	return root
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// print writes v as JSON with --json, otherwise calls text.
func (a *App) print(v any, text func(w io.Writer)) error {
	if a.asJSON {
		return a.printJSON(v)
	}
	text(a.Out)
	return nil
}

// table prints rows aligned under headers.
func (a *App) table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func (a *App) count(n int, noun string) {
	if n != 1 {
		noun += "s"
	}
	fmt.Fprintf(a.Out, "%s %s\n", humanize.Comma(int64(n)), noun)
}

func (a *App) today() core.Date {
	return core.DateOf(a.Now())
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q is not a number: %w", name, s, core.ErrInvalidAmount)
	}
	return d, nil
}

// decimalFlag reads a string flag holding a number; empty means zero.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	s, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return parseAmount(name, s)
}

// dateFlag reads a YYYY-MM-DD flag, defaulting to today.
func (a *App) dateFlag(cmd *cobra.Command, name string) (core.Date, error) {
	s, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(s) == "" {
		return a.today(), nil
	}
	return core.ParseDate(s)
}
