package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"buildledger/internal/core"
	"buildledger/internal/refdata"
	"buildledger/internal/tax"
)

func taka(d decimal.Decimal) string {
	return refdata.FormatCurrency(d, refdata.DefaultCurrencyCode)
}

func newTaxCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "VAT and income tax calculators",
	}

	income := &cobra.Command{
		Use:     "income <annual-income>",
		Short:   "Income tax across the individual slabs",
		Example: "  buildledger tax income 1600000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("income", args[0])
			if err != nil {
				return err
			}
			res := tax.IncomeTax(amount)
			return app.print(res, func(w io.Writer) {
				rows := make([][]string, 0, len(res.Breakdown))
				for _, b := range res.Breakdown {
					rows = append(rows, []string{b.Slab.Description, b.Slab.Rate.String() + "%", taka(b.TaxableAmount), taka(b.Tax)})
				}
				app.table([]string{"SLAB", "RATE", "TAXABLE", "TAX"}, rows)
				fmt.Fprintf(w, "\nTotal tax: %s (effective %s%%)\n", taka(res.TotalTax), res.EffectiveRate.StringFixed(2))
			})
		},
	}

	vat := &cobra.Command{
		Use:   "vat <amount>",
		Short: "VAT on an amount, or extracted from a VAT-inclusive price",
		Example: `  buildledger tax vat 10000
  buildledger tax vat 1150 --inclusive
  buildledger tax vat 5000 --material bricks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[0])
			if err != nil {
				return err
			}
			if amount.IsNegative() {
				return core.ErrInvalidAmount
			}
			rate := refdata.VATStandard
			if m, _ := cmd.Flags().GetString("material"); m != "" {
				rate = tax.MaterialVATRate(strings.ToLower(m))
			}
			if r, _ := cmd.Flags().GetString("rate"); r != "" {
				if rate, err = parseAmount("rate", r); err != nil {
					return err
				}
			}
			base, v, total := amount, tax.VAT(amount, rate), tax.PriceWithVAT(amount, rate)
			if inclusive, _ := cmd.Flags().GetBool("inclusive"); inclusive {
				base, v = tax.ExtractVATFromInclusive(amount, rate)
				total = amount
			}
			out := map[string]decimal.Decimal{"base": base, "vat": v, "total": total, "rate": rate}
			return app.print(out, func(w io.Writer) {
				fmt.Fprintf(w, "Base:  %s\nVAT:   %s (%s%%)\nTotal: %s\n", taka(base), taka(v), rate.String(), taka(total))
			})
		},
	}
	vat.Flags().Bool("inclusive", false, "Treat the amount as VAT-inclusive")
	vat.Flags().String("material", "", "Material category whose VAT class applies")
	vat.Flags().String("rate", "", "Explicit VAT rate in percent")

	rebate := &cobra.Command{
		Use:   "rebate <investment>",
		Short: "Investment rebate on income tax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("investment", args[0])
			if err != nil {
				return err
			}
			res := tax.InvestmentRebate(amount)
			return app.print(res, func(w io.Writer) {
				fmt.Fprintf(w, "Eligible investment: %s\nRebate: %s\n", taka(res.EligibleAmount), taka(res.RebateAmount))
			})
		},
	}

	summary := &cobra.Command{
		Use:     "summary",
		Short:   "Full income tax computation with deductions and rebate",
		Example: "  buildledger tax summary --income 1200000 --deductions 100000 --investment 200000",
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]decimal.Decimal
			for i, name := range []string{"income", "deductions", "investment"} {
				v, err := decimalFlag(cmd, name)
				if err != nil {
					return err
				}
				vals[i] = v
			}
			res := tax.Calculate(vals[0], vals[1], vals[2])
			return app.print(res, func(w io.Writer) {
				app.table([]string{"", "AMOUNT"}, [][]string{
					{"Gross income", taka(res.GrossIncome)},
					{"Deductions", taka(res.Deductions)},
					{"Taxable income", taka(res.TaxableIncome)},
					{"Tax before rebate", taka(res.TaxBeforeRebate)},
					{"Investment rebate", taka(res.InvestmentRebate)},
					{"Final tax", taka(res.FinalTax)},
					{"Monthly", taka(res.MonthlyTax)},
				})
			})
		},
	}
	summary.Flags().String("income", "", "Gross annual income")
	summary.Flags().String("deductions", "", "Allowable deductions")
	summary.Flags().String("investment", "", "Eligible investment")
	_ = summary.MarkFlagRequired("income")

	year := &cobra.Command{
		Use:   "year",
		Short: "Current fiscal year (July to June)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y := tax.CurrentYear(app.Now())
			return app.print(map[string]string{"label": y.Label(), "start": y.Start.String(), "end": y.End.String()}, func(w io.Writer) {
				fmt.Fprintf(w, "FY %s (%s to %s)\n", y.Label(), y.Start, y.End)
			})
		},
	}

	cmd.AddCommand(income, vat, rebate, summary, year)
	return cmd
}

func newMaterialsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Material quantity estimates by built-up area",
	}

	printQuantities := func(w io.Writer, q core.MaterialQuantities) {
		app.table([]string{"MATERIAL", "QUANTITY"}, [][]string{
			{"Cement (bags)", q.Cement.String()},
			{"Sand (cft)", q.Sand.String()},
			{"Bricks (pcs)", q.Bricks.String()},
			{"Steel (kg)", q.Steel.String()},
			{"Aggregate (cft)", q.Aggregate.String()},
		})
	}

	estimate := &cobra.Command{
		Use:     "estimate <area-sqft>",
		Short:   "Quantities for an area without saving",
		Example: "  buildledger materials estimate 1200 --floors 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := parseAmount("area", args[0])
			if err != nil {
				return err
			}
			if !area.IsPositive() {
				return core.ErrInvalidArea
			}
			floors, _ := cmd.Flags().GetInt("floors")
			q := core.CalculateMaterials(area, floors)
			return app.print(q, func(w io.Writer) { printQuantities(w, q) })
		},
	}
	estimate.Flags().Int("floors", 1, "Number of floors")

	save := &cobra.Command{
		Use:   "save <name> <area-sqft>",
		Short: "Compute and save an estimate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := parseAmount("area", args[1])
			if err != nil {
				return err
			}
			floors, _ := cmd.Flags().GetInt("floors")
			e, err := core.NewMaterialEstimate(args[0], area, floors, app.Now())
			if err != nil {
				return err
			}
			if err := app.Repo.SaveMaterialEstimate(cmd.Context(), e); err != nil {
				return err
			}
			return app.print(e, func(w io.Writer) {
				fmt.Fprintf(w, "Saved estimate %s (%s)\n", e.Name, e.ID)
				printQuantities(w, e.MaterialQuantities)
			})
		},
	}
	save.Flags().Int("floors", 1, "Number of floors")

	list := &cobra.Command{
		Use:   "list",
		Short: "Saved estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			es := app.Repo.ListMaterialEstimates(cmd.Context())
			return app.print(es, func(w io.Writer) {
				rows := make([][]string, 0, len(es))
				for _, e := range es {
					rows = append(rows, []string{e.ID, e.Name, e.Area.String(), strconv.Itoa(e.Floors), e.Cement.String(), e.Bricks.String()})
				}
				app.table([]string{"ID", "NAME", "AREA", "FLOORS", "CEMENT", "BRICKS"}, rows)
				app.count(len(es), "estimate")
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Repo.DeleteMaterialEstimate(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(estimate, save, list, del)
	return cmd
}

func newPricesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Market prices of materials and labor",
	}

	printItems := func(items []refdata.PriceItem) error {
		return app.print(items, func(w io.Writer) {
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.ID, it.Name, it.Unit, taka(it.Price)})
			}
			app.table([]string{"ID", "ITEM", "UNIT", "PRICE"}, rows)
			app.count(len(items), "item")
		})
	}

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search items by English or Bangla name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printItems(refdata.SearchPriceItems(args[0]))
		},
	}

	list := &cobra.Command{
		Use:   "list [category]",
		Short: "All items, or the items of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, ok := refdata.PriceCategoryByID(args[0])
				if !ok {
					return fmt.Errorf("price category %q not found", args[0])
				}
				return printItems(c.Items)
			}
			var items []refdata.PriceItem
			for _, c := range refdata.AllPriceCategories() {
				items = append(items, c.Items...)
			}
			return printItems(items)
		},
	}

	cmd.AddCommand(search, list)
	return cmd
}

func newCurrencyCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Currencies, conversion and display settings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := refdata.AllCurrencies()
			return app.print(cs, func(w io.Writer) {
				rows := make([][]string, 0, len(cs))
				for _, c := range cs {
					rows = append(rows, []string{c.Code, c.Symbol, c.Name})
				}
				app.table([]string{"CODE", "SYMBOL", "NAME"}, rows)
			})
		},
	}

	convert := &cobra.Command{
		Use:     "convert <amount> <from> <to>",
		Short:   "Convert through BDT at the built-in rates",
		Example: "  buildledger currency convert 100 USD BDT",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[0])
			if err != nil {
				return err
			}
			from, to := strings.ToUpper(args[1]), strings.ToUpper(args[2])
			converted := refdata.ConvertCurrency(amount, from, to)
			formatted := refdata.FormatCurrency(converted, to)
			return app.print(map[string]any{"amount": converted, "currency": to, "formatted": formatted}, func(w io.Writer) {
				fmt.Fprintln(w, formatted)
			})
		},
	}

	settings := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the currency settings",
		Example: `  buildledger currency settings
  buildledger currency settings --display USD --show-both`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := app.Repo.GetCurrencySettings(ctx)
			changed := false
			if v, _ := cmd.Flags().GetString("default"); v != "" {
				s.DefaultCurrency, changed = strings.ToUpper(v), true
			}
			if v, _ := cmd.Flags().GetString("display"); v != "" {
				s.DisplayCurrency, changed = strings.ToUpper(v), true
			}
			if v, _ := cmd.Flags().GetString("secondary"); v != "" {
				s.SecondaryCurrency, changed = strings.ToUpper(v), true
			}
			if cmd.Flags().Changed("show-both") {
				s.ShowBothCurrencies, _ = cmd.Flags().GetBool("show-both")
				changed = true
			}
			if changed {
				if err := app.Repo.SaveCurrencySettings(ctx, s); err != nil {
					return err
				}
			}
			return app.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Default: %s\nDisplay: %s\nSecondary: %s\nShow both: %t\n",
					s.DefaultCurrency, s.DisplayCurrency, s.SecondaryCurrency, s.ShowBothCurrencies)
			})
		},
	}
	settings.Flags().String("default", "", "Default currency code")
	settings.Flags().String("display", "", "Display currency code")
	settings.Flags().String("secondary", "", "Secondary currency code")
	settings.Flags().Bool("show-both", false, "Show amounts in both currencies")

	cmd.AddCommand(list, convert, settings)
	return cmd
}
