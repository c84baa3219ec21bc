package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"buildledger/internal/core"
	"buildledger/internal/storage"
)

func newTransactionsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Income and expense records",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			category, _ := cmd.Flags().GetString("category")
			var txs []core.Transaction
			for _, t := range app.Repo.ListTransactions(cmd.Context()) {
				if typ != "" && string(t.Type) != typ {
					continue
				}
				if category != "" && string(t.Category) != category {
					continue
				}
				txs = append(txs, t)
			}
			return app.print(txs, func(w io.Writer) {
				rows := make([][]string, 0, len(txs))
				for _, t := range txs {
					rows = append(rows, []string{t.Date.String(), string(t.Type), string(t.Category), taka(t.Amount), t.Description, t.ID})
				}
				app.table([]string{"DATE", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION", "ID"}, rows)
				app.count(len(txs), "transaction")
			})
		},
	}
	list.Flags().String("type", "", "Only income or expense")
	list.Flags().String("category", "", "Only one category")

	add := &cobra.Command{
		Use:   "add <income|expense> <amount> <description>",
		Short: "Record a transaction",
		Example: `  buildledger transactions add expense 5200 "10 bags cement" --category materials
  buildledger transactions add income 200000 "First installment" --date 2025-01-06`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			date, err := app.dateFlag(cmd, "date")
			if err != nil {
				return err
			}
			typ := core.TransactionType(strings.ToLower(args[0]))
			category, _ := cmd.Flags().GetString("category")
			if category == "" {
				category = string(core.CategoryOther)
				if typ == core.Income {
					category = string(core.CategoryIncome)
				}
			}
			t := core.Transaction{
				ID:          core.NewID(),
				Type:        typ,
				Amount:      amount,
				Category:    core.TransactionCategory(category),
				Description: strings.TrimSpace(args[2]),
				Date:        date,
				CreatedAt:   app.Now().UTC(),
			}
			if err := app.Repo.SaveTransaction(cmd.Context(), t); err != nil {
				return err
			}
			return app.print(t, func(w io.Writer) {
				fmt.Fprintf(w, "Recorded %s of %s (%s)\n", t.Type, taka(t.Amount), t.ID)
			})
		},
	}
	add.Flags().String("category", "", "materials, labor, equipment, other or income")
	add.Flags().String("date", "", "Date as YYYY-MM-DD (default today)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Repo.DeleteTransaction(cmd.Context(), args[0])
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Income, expenses and profit for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := cmd.Flags().GetString("period")
			period := core.PeriodFilter(strings.ToLower(p))
			if !period.IsValid() {
				return fmt.Errorf("%w: %q", core.ErrInvalidPeriod, p)
			}
			s, err := app.Repo.GetFinancialSummary(cmd.Context(), period, app.Now())
			if err != nil {
				return err
			}
			return app.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Income:   %s\nExpenses: %s\nProfit:   %s\n\n", taka(s.TotalIncome), taka(s.TotalExpenses), taka(s.NetProfit))
				rows := make([][]string, 0, len(s.ByCategory))
				for _, c := range s.ByCategory {
					rows = append(rows, []string{string(c.Category), taka(c.Amount)})
				}
				app.table([]string{"CATEGORY", "AMOUNT"}, rows)
				app.count(s.Count, "transaction")
			})
		},
	}
	summary.Flags().String("period", string(core.PeriodMonth), "week, month or year")

	cmd.AddCommand(list, add, del, summary)
	return cmd
}

func newWorkersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Workers and their hourly rates",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "All workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := app.Repo.ListWorkers(cmd.Context())
			return app.print(ws, func(w io.Writer) {
				rows := make([][]string, 0, len(ws))
				for _, wk := range ws {
					rows = append(rows, []string{wk.ID, wk.Name, taka(wk.HourlyRate)})
				}
				app.table([]string{"ID", "NAME", "HOURLY RATE"}, rows)
				app.count(len(ws), "worker")
			})
		},
	}

	add := &cobra.Command{
		Use:     "add <name> <hourly-rate>",
		Short:   "Add a worker",
		Example: `  buildledger workers add "Rahim Mia" 100`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := parseAmount("hourly rate", args[1])
			if err != nil {
				return err
			}
			wk := core.Worker{
				ID:         core.NewID(),
				Name:       strings.TrimSpace(args[0]),
				HourlyRate: rate,
				CreatedAt:  app.Now().UTC(),
			}
			if err := app.Repo.SaveWorker(cmd.Context(), wk); err != nil {
				return err
			}
			return app.print(wk, func(w io.Writer) {
				fmt.Fprintf(w, "Added %s at %s/hr (%s)\n", wk.Name, taka(wk.HourlyRate), wk.ID)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a worker; their payments are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Repo.DeleteWorker(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func newLaborCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labor",
		Short: "Weekly labor payments",
	}

	printPayments := func(ps []core.LaborPayment) error {
		return app.print(ps, func(w io.Writer) {
			rows := make([][]string, 0, len(ps))
			for _, p := range ps {
				paid := "no"
				if p.IsPaid {
					paid = "yes"
				}
				rows = append(rows, []string{p.WeekStart.String(), p.WorkerName, strconv.Itoa(p.DaysWorked), p.TotalHours().String(), taka(p.TotalAmount), paid, p.ID})
			}
			app.table([]string{"WEEK", "WORKER", "DAYS", "HOURS", "AMOUNT", "PAID", "ID"}, rows)
			app.count(len(ps), "payment")
		})
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Labor payments, optionally for one week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := app.Repo.ListLaborPayments(cmd.Context())
			if s, _ := cmd.Flags().GetString("week"); s != "" {
				d, err := core.ParseDate(s)
				if err != nil {
					return err
				}
				start := core.WeekStart(d)
				var week []core.LaborPayment
				for _, p := range ps {
					if p.WeekStart.Equal(start.Time) {
						week = append(week, p)
					}
				}
				ps = week
			}
			return printPayments(ps)
		},
	}
	list.Flags().String("week", "", "Any day of the week to show")

	add := &cobra.Command{
		Use:     "add <worker-id>",
		Short:   "Record a week of work for a worker",
		Example: "  buildledger labor add 0193... --days 6 --hours 48 --overtime 4 --paid",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wk, err := app.Repo.GetWorker(ctx, args[0])
			if err != nil {
				return err
			}
			week, err := app.dateFlag(cmd, "week")
			if err != nil {
				return err
			}
			hours, err := decimalFlag(cmd, "hours")
			if err != nil {
				return err
			}
			overtime, err := decimalFlag(cmd, "overtime")
			if err != nil {
				return err
			}
			overtimeRate, err := decimalFlag(cmd, "overtime-rate")
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			paid, _ := cmd.Flags().GetBool("paid")
			notes, _ := cmd.Flags().GetString("notes")

			p, err := core.NewLaborPayment(core.LaborInput{
				Worker:        wk,
				WeekOf:        week,
				DaysWorked:    days,
				RegularHours:  hours,
				OvertimeHours: overtime,
				OvertimeRate:  overtimeRate,
				IsPaid:        paid,
				Notes:         notes,
			}, app.Now())
			if err != nil {
				return err
			}
			if err := app.Repo.SaveLaborPayment(ctx, p); err != nil {
				return err
			}
			return app.print(p, func(w io.Writer) {
				fmt.Fprintf(w, "Recorded %s for %s, week of %s (%s)\n", taka(p.TotalAmount), p.WorkerName, p.WeekStart, p.ID)
			})
		},
	}
	add.Flags().String("week", "", "Any day of the week worked (default today)")
	add.Flags().Int("days", 0, "Days worked")
	add.Flags().String("hours", "", "Regular hours")
	add.Flags().String("overtime", "", "Overtime hours")
	add.Flags().String("overtime-rate", "", "Overtime rate (default 1.5x hourly)")
	add.Flags().Bool("paid", false, "Mark as paid and record the expense")
	add.Flags().String("notes", "", "Notes")

	pay := &cobra.Command{
		Use:   "pay <payment-id>",
		Short: "Mark a payment paid and record its labor expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, p := range app.Repo.ListLaborPayments(ctx) {
				if p.ID != args[0] {
					continue
				}
				p.IsPaid = true
				if err := app.Repo.SaveLaborPayment(ctx, p); err != nil {
					return err
				}
				return app.print(p, func(w io.Writer) {
					fmt.Fprintf(w, "Paid %s to %s\n", taka(p.TotalAmount), p.WorkerName)
				})
			}
			return fmt.Errorf("labor payment %s: %w", args[0], storage.ErrNotFound)
		},
	}

	del := &cobra.Command{
		Use:   "delete <payment-id>",
		Short: "Delete a payment and its labor expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Repo.DeleteLaborPayment(cmd.Context(), args[0])
		},
	}

	week := &cobra.Command{
		Use:   "week [date]",
		Short: "Payroll totals for the week containing date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := app.today()
			if len(args) == 1 {
				var err error
				if d, err = core.ParseDate(args[0]); err != nil {
					return err
				}
			}
			s := app.Repo.GetWeekSummary(cmd.Context(), d)
			return app.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Week %s\nPayments: %d\nPayroll:  %s\nPaid:     %s\nUnpaid:   %s\n",
					s.Range, s.Payments, taka(s.TotalPayroll), taka(s.Paid), taka(s.Unpaid))
			})
		},
	}

	cmd.AddCommand(list, add, pay, del, week)
	return cmd
}
