package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"buildledger/internal/budget"
	"buildledger/internal/invoice"
)

// parseItem reads "description:quantity:unit:unit-price".
func parseItem(s string) (invoice.ItemInput, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return invoice.ItemInput{}, fmt.Errorf("item %q: want description:quantity:unit:price", s)
	}
	qty, err := parseAmount("quantity", parts[1])
	if err != nil {
		return invoice.ItemInput{}, err
	}
	price, err := parseAmount("price", parts[3])
	if err != nil {
		return invoice.ItemInput{}, err
	}
	return invoice.ItemInput{
		Description: strings.TrimSpace(parts[0]),
		Quantity:    qty,
		Unit:        strings.TrimSpace(parts[2]),
		UnitPrice:   price,
	}, nil
}

// writeFileOrOut writes doc to the --output file, or to Out when unset.
func (a *App) writeFileOrOut(cmd *cobra.Command, doc []byte) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := a.Out.Write(doc)
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(a.Out, "Wrote %s\n", path)
	return nil
}

func newInvoiceCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoice",
		Aliases: []string{"invoices"},
		Short:   "Invoices with VAT, discounts and payments",
	}

	templates := &cobra.Command{
		Use:   "templates",
		Short: "Built-in invoice templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := invoice.Templates()
			return app.print(ts, func(w io.Writer) {
				rows := make([][]string, 0, len(ts))
				for _, t := range ts {
					rows = append(rows, []string{t.ID, t.Name, fmt.Sprint(len(t.Items)), t.DefaultVATRate.String() + "%"})
				}
				app.table([]string{"ID", "NAME", "ITEMS", "VAT"}, rows)
			})
		},
	}

	create := &cobra.Command{
		Use:   "new",
		Short: "Create a draft invoice from a template or from items",
		Example: `  buildledger invoice new --template construction-full --seller "J&S Construction" --buyer "Karim"
  buildledger invoice new --seller "J&S" --buyer "Karim" --item "Cement:10:bag:520" --discount 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sellerName, _ := cmd.Flags().GetString("seller")
			buyerName, _ := cmd.Flags().GetString("buyer")
			sellerAddr, _ := cmd.Flags().GetString("seller-address")
			buyerAddr, _ := cmd.Flags().GetString("buyer-address")
			seller := invoice.Seller{Name: sellerName, Address: sellerAddr}
			buyer := invoice.Buyer{Name: buyerName, Address: buyerAddr}

			var opts invoice.Options
			if cmd.Flags().Changed("discount") {
				d, err := decimalFlag(cmd, "discount")
				if err != nil {
					return err
				}
				opts.DiscountPercent = &d
			}
			if cmd.Flags().Changed("vat") {
				v, err := decimalFlag(cmd, "vat")
				if err != nil {
					return err
				}
				opts.VATRate = &v
			}
			if p, _ := cmd.Flags().GetString("project"); p != "" {
				opts.Project = &invoice.Project{Name: p}
			}
			if cmd.Flags().Changed("due") {
				due, err := app.dateFlag(cmd, "due")
				if err != nil {
					return err
				}
				opts.DueDate = &due
			}

			var inv invoice.Invoice
			if tpl, _ := cmd.Flags().GetString("template"); tpl != "" {
				var err error
				if inv, err = invoice.FromTemplate(tpl, seller, buyer, opts); err != nil {
					return err
				}
			} else {
				specs, _ := cmd.Flags().GetStringArray("item")
				items := make([]invoice.ItemInput, 0, len(specs))
				for _, s := range specs {
					it, err := parseItem(s)
					if err != nil {
						return err
					}
					items = append(items, it)
				}
				inv = invoice.New(seller, buyer, items, opts)
			}
			if err := app.Repo.SaveInvoice(cmd.Context(), inv); err != nil {
				return err
			}
			return app.print(inv, func(w io.Writer) {
				f := invoice.Format(inv)
				fmt.Fprintf(w, "Invoice %s (%s)\nSubtotal: %s\nDiscount: %s\nVAT:      %s\nTotal:    %s\n",
					inv.InvoiceNumber, inv.ID, f.Subtotal, f.Discount, f.VAT, f.Total)
			})
		},
	}
	create.Flags().String("template", "", "Template id")
	create.Flags().String("seller", "", "Seller name")
	create.Flags().String("seller-address", "", "Seller address")
	create.Flags().String("buyer", "", "Buyer name")
	create.Flags().String("buyer-address", "", "Buyer address")
	create.Flags().String("project", "", "Project name")
	create.Flags().StringArray("item", nil, "Item as description:quantity:unit:price (repeatable)")
	create.Flags().String("discount", "", "Discount percent")
	create.Flags().String("vat", "", "VAT rate percent")
	create.Flags().String("due", "", "Due date as YYYY-MM-DD")
	_ = create.MarkFlagRequired("seller")
	_ = create.MarkFlagRequired("buyer")

	list := &cobra.Command{
		Use:   "list",
		Short: "All invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			invs := app.Repo.ListInvoices(cmd.Context())
			return app.print(invs, func(w io.Writer) {
				rows := make([][]string, 0, len(invs))
				for _, inv := range invs {
					rows = append(rows, []string{inv.InvoiceNumber, inv.Date.String(), inv.Buyer.Name, string(inv.Status), taka(inv.TotalAmount), taka(inv.BalanceDue), inv.ID})
				}
				app.table([]string{"NUMBER", "DATE", "BUYER", "STATUS", "TOTAL", "BALANCE", "ID"}, rows)
				app.count(len(invs), "invoice")
			})
		},
	}

	pay := &cobra.Command{
		Use:   "pay <invoice-id> <amount-paid>",
		Short: "Record the total paid so far; a full payment marks it paid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			inv, err := app.Repo.GetInvoice(ctx, args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			status := inv.Status
			if status == invoice.StatusDraft {
				status = invoice.StatusSent
			}
			if inv, err = invoice.UpdateStatus(inv, status, &amount); err != nil {
				return err
			}
			if err := app.Repo.SaveInvoice(ctx, inv); err != nil {
				return err
			}
			return app.print(inv, func(w io.Writer) {
				fmt.Fprintf(w, "%s is %s, balance %s\n", inv.InvoiceNumber, inv.Status, taka(inv.BalanceDue))
			})
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Invoiced, paid, outstanding and overdue totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := invoice.Summarize(app.Repo.ListInvoices(cmd.Context()), app.Now())
			return app.print(s, func(w io.Writer) {
				app.table([]string{"", "AMOUNT", "COUNT"}, [][]string{
					{"Invoiced", taka(s.TotalInvoiced), fmt.Sprint(s.InvoiceCount)},
					{"Paid", taka(s.TotalPaid), fmt.Sprint(s.PaidCount)},
					{"Outstanding", taka(s.TotalOutstanding), ""},
					{"Overdue", taka(s.TotalOverdue), fmt.Sprint(s.OverdueCount)},
				})
			})
		},
	}

	csv := &cobra.Command{
		Use:   "csv <invoice-id>",
		Short: "Export one invoice as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Repo.GetInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.writeFileOrOut(cmd, []byte(invoice.ExportCSV(inv)))
		},
	}
	csv.Flags().StringP("output", "o", "", "Output file path (default: stdout)")

	cmd.AddCommand(templates, create, list, pay, summary, csv)
	return cmd
}

func newBudgetCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budget",
		Aliases: []string{"budgets"},
		Short:   "Project budgets against actual spending",
	}

	templates := &cobra.Command{
		Use:   "templates",
		Short: "Built-in budget templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := budget.Templates()
			return app.print(ts, func(w io.Writer) {
				rows := make([][]string, 0, len(ts))
				for _, t := range ts {
					rows = append(rows, []string{t.ID, t.Name, fmt.Sprint(len(t.Items))})
				}
				app.table([]string{"ID", "NAME", "ITEMS"}, rows)
			})
		},
	}

	create := &cobra.Command{
		Use:     "new <project-name>",
		Short:   "Create a budget, empty or from a template",
		Example: `  buildledger budget new "Mirpur house" --template residential-1200`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			address, _ := cmd.Flags().GetString("address")
			opts := budget.Options{ProjectAddress: address}

			var b budget.Budget
			if tpl, _ := cmd.Flags().GetString("template"); tpl != "" {
				var err error
				if b, err = budget.FromTemplate(tpl, args[0], opts); err != nil {
					return err
				}
				if name != "" {
					b.Name = name
				}
			} else {
				if name == "" {
					name = args[0]
				}
				b = budget.New(name, args[0], opts)
			}
			if err := app.Repo.SaveBudget(cmd.Context(), b); err != nil {
				return err
			}
			return app.print(b, func(w io.Writer) {
				fmt.Fprintf(w, "Budget %s for %s: %d items, %s estimated (%s)\n",
					b.Name, b.ProjectName, len(b.Items), taka(b.TotalEstimated), b.ID)
			})
		},
	}
	create.Flags().String("template", "", "Template id")
	create.Flags().String("name", "", "Budget name (default: template or project name)")
	create.Flags().String("address", "", "Project address")

	list := &cobra.Command{
		Use:   "list",
		Short: "All budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs := app.Repo.ListBudgets(cmd.Context())
			return app.print(bs, func(w io.Writer) {
				rows := make([][]string, 0, len(bs))
				for _, b := range bs {
					rows = append(rows, []string{b.Name, b.ProjectName, string(b.Status), taka(b.TotalEstimated), taka(b.TotalActual), b.ID})
				}
				app.table([]string{"NAME", "PROJECT", "STATUS", "ESTIMATED", "ACTUAL", "ID"}, rows)
				app.count(len(bs), "budget")
			})
		},
	}

	actual := &cobra.Command{
		Use:   "actual <budget-id> <item-id> <amount>",
		Short: "Record what one item actually cost",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := app.Repo.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}
			if !b.HasItem(args[1]) {
				return fmt.Errorf("%w: %s", budget.ErrItemNotFound, args[1])
			}
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			b = budget.UpdateItemActual(b, args[1], amount)
			if err := app.Repo.SaveBudget(ctx, b); err != nil {
				return err
			}
			return app.print(b, func(w io.Writer) {
				f := budget.Format(b)
				fmt.Fprintf(w, "Actual %s of %s estimated, variance %s (%s)\n", f.TotalActual, f.TotalEstimated, f.Variance, f.VariancePercent)
			})
		},
	}

	alerts := &cobra.Command{
		Use:   "alerts <budget-id>",
		Short: "Over-budget and approaching-limit warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Repo.GetBudget(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			as := budget.CheckAlerts(b)
			return app.print(as, func(w io.Writer) {
				for _, a := range as {
					fmt.Fprintf(w, "[%s] %s\n", strings.ToUpper(string(a.Severity)), a.Message)
				}
			})
		},
	}

	report := &cobra.Command{
		Use:   "report <budget-id>",
		Short: "Text report with category breakdown and alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Repo.GetBudget(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := budget.GenerateReport(b)
			return app.print(r, func(w io.Writer) { fmt.Fprintln(w, r.String()) })
		},
	}

	csv := &cobra.Command{
		Use:   "csv <budget-id>",
		Short: "Export one budget as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Repo.GetBudget(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.writeFileOrOut(cmd, []byte(budget.ExportCSV(b)))
		},
	}
	csv.Flags().StringP("output", "o", "", "Output file path (default: stdout)")

	cmd.AddCommand(templates, create, list, actual, alerts, report, csv)
	return cmd
}

func newPluginsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Optional features and whether they are enabled",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "All plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := app.Repo.ListPlugins(cmd.Context())
			return app.print(ps, func(w io.Writer) {
				rows := make([][]string, 0, len(ps))
				for _, p := range ps {
					rows = append(rows, []string{p.ID, p.Name, fmt.Sprint(p.IsInstalled), fmt.Sprint(p.IsEnabled)})
				}
				app.table([]string{"ID", "NAME", "INSTALLED", "ENABLED"}, rows)
			})
		},
	}

	toggle := &cobra.Command{
		Use:     "toggle <plugin-id>",
		Short:   "Install, enable or disable a plugin",
		Example: "  buildledger plugins toggle tax-calculator --installed --enabled=false",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installed, _ := cmd.Flags().GetBool("installed")
			enabled, _ := cmd.Flags().GetBool("enabled")
			p, err := app.Repo.TogglePlugin(cmd.Context(), args[0], installed, enabled)
			if err != nil {
				return err
			}
			return app.print(p, func(w io.Writer) {
				fmt.Fprintf(w, "%s: installed=%t enabled=%t\n", p.ID, p.IsInstalled, p.IsEnabled)
			})
		},
	}
	toggle.Flags().Bool("installed", true, "Whether the plugin is installed")
	toggle.Flags().Bool("enabled", true, "Whether the plugin is enabled")

	cmd.AddCommand(list, toggle)
	return cmd
}
