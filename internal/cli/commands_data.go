package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"buildledger/internal/backup"
	"buildledger/internal/export"
)

func newBackupCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "JSON backup, restore and storage statistics",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Write a JSON backup of every collection",
		Example: `  buildledger backup create
  buildledger backup create -o /mnt/usb/ledger.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Backup.Create(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := backup.ExportJSON(d)
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				path = backup.Filename(d.CreatedAt)
			}
			if path == "-" {
				_, err := app.Out.Write(raw)
				return err
			}
			if err := os.WriteFile(path, raw, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			s := backup.Summarize(d)
			fmt.Fprintf(app.Out, "Wrote %s (%s): %s transactions, %s labor payments, %s workers, %s invoices, %s budgets\n",
				path, humanize.Bytes(uint64(len(raw))),
				humanize.Comma(int64(s.TotalTransactions)), humanize.Comma(int64(s.TotalLaborPayments)),
				humanize.Comma(int64(s.TotalWorkers)), humanize.Comma(int64(s.TotalInvoices)), humanize.Comma(int64(s.TotalBudgets)))
			return nil
		},
	}
	create.Flags().StringP("output", "o", "", "Output file, - for stdout (default: dated file name)")

	readBundle := func(path string) (*backup.Data, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return backup.ImportJSON(raw)
	}

	restore := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all data with a backup",
		Long: `Replace all data with the contents of a backup file. Records that are not
in the backup are removed. The file is validated before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readBundle(args[0])
			if err != nil {
				return err
			}
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("restore overwrites all data; rerun with --yes")
			}
			if err := app.Backup.Restore(cmd.Context(), d); err != nil {
				return err
			}
			app.Logger.Info("Backup restored", "file", args[0], "created_at", d.CreatedAt)
			s := backup.Summarize(d)
			return app.print(s, func(w io.Writer) {
				fmt.Fprintf(w, "Restored backup from %s\n", s.CreatedDate)
			})
		},
	}
	restore.Flags().Bool("yes", false, "Confirm overwriting existing data")

	summary := &cobra.Command{
		Use:   "summary [file]",
		Short: "Record counts of a backup file, or of the current data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				d   *backup.Data
				err error
			)
			if len(args) == 1 {
				d, err = readBundle(args[0])
			} else {
				d, err = app.Backup.Create(cmd.Context())
			}
			if err != nil {
				return err
			}
			s := backup.Summarize(d)
			return app.print(s, func(w io.Writer) {
				app.table([]string{"COLLECTION", "RECORDS"}, [][]string{
					{"Transactions", humanize.Comma(int64(s.TotalTransactions))},
					{"Labor payments", humanize.Comma(int64(s.TotalLaborPayments))},
					{"Workers", humanize.Comma(int64(s.TotalWorkers))},
					{"Invoices", humanize.Comma(int64(s.TotalInvoices))},
					{"Budgets", humanize.Comma(int64(s.TotalBudgets))},
				})
				fmt.Fprintf(w, "\nCreated %s, app version %s\n", s.CreatedDate, s.AppVersion)
			})
		},
	}

	clearAll := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("clear deletes all data; rerun with --yes")
			}
			if err := app.Backup.ClearAll(cmd.Context()); err != nil {
				return err
			}
			app.Logger.Warn("All data cleared")
			fmt.Fprintln(app.Out, "All data cleared")
			return nil
		},
	}
	clearAll.Flags().Bool("yes", false, "Confirm deleting all data")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Size of every stored key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Backup.StorageStats(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(st, func(w io.Writer) {
				rows := make([][]string, 0, len(st.Items))
				for _, it := range st.Items {
					rows = append(rows, []string{it.Key, backup.FormatBytes(int64(it.Size))})
				}
				app.table([]string{"KEY", "SIZE"}, rows)
				fmt.Fprintf(w, "\n%s keys, %s total\n", humanize.Comma(int64(st.ItemCount)), backup.FormatBytes(int64(st.TotalSize)))
			})
		},
	}

	cmd.AddCommand(create, restore, summary, clearAll, stats)
	return cmd
}

func newExportCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "CSV and spreadsheet exports",
	}

	csv := &cobra.Command{
		Use:   "csv <transactions|labor|workers|invoices>",
		Short: "One collection as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Backup.Create(cmd.Context())
			if err != nil {
				return err
			}
			b := export.All(d)
			docs := map[string]string{
				"transactions": b.Transactions,
				"labor":        b.LaborPayments,
				"workers":      b.Workers,
				"invoices":     b.Invoices,
			}
			doc, ok := docs[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown collection %q: want transactions, labor, workers or invoices", args[0])
			}
			return app.writeFileOrOut(cmd, []byte(doc))
		},
	}
	csv.Flags().StringP("output", "o", "", "Output file path (default: stdout)")

	excel := &cobra.Command{
		Use:   "excel",
		Short: "Complete report as an Excel-readable .xls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Backup.Create(cmd.Context())
			if err != nil {
				return err
			}
			doc, err := export.CompleteReport(d, app.Now())
			if err != nil {
				return err
			}
			return app.writeFileOrOut(cmd, []byte(doc))
		},
	}
	excel.Flags().StringP("output", "o", "", "Output file path (default: stdout)")

	xlsx := &cobra.Command{
		Use:     "xlsx <file>",
		Short:   "Workbook with one sheet per collection",
		Example: "  buildledger export xlsx ledger.xlsx",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Backup.Create(cmd.Context())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := export.Workbook(d, &buf); err != nil {
				return err
			}
			if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Fprintf(app.Out, "Wrote %s (%s)\n", args[0], humanize.Bytes(uint64(buf.Len())))
			return nil
		},
	}

	cmd.AddCommand(csv, excel, xlsx)
	return cmd
}
